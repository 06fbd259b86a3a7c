// Package dialogue runs one interview turn through a fixed task graph:
// concurrent classification, persona assignment, and company-context
// resolution, joined at a routing decision that dispatches exactly one
// generation or evaluation stage.
package dialogue

import "github.com/jparkk0517/NLP-team-project/internal/classify"

// Stage identifies one terminal node of the graph.
type Stage string

// The five terminal stages. Every traversal runs exactly one of them.
const (
	StageGenerateQuestion    Stage = "generate_question"
	StageGenerateFollowup    Stage = "generate_followup"
	StageEvaluate            Stage = "evaluate"
	StageGenerateModelAnswer Stage = "generate_model_answer"
	StageFallback            Stage = "fallback"
)

// RouteFor maps a classifier label to a stage. The mapping is a pure
// function of the label and is total: anything unrecognized routes to
// StageFallback, so the graph can never dead-end on bad classifier output.
func RouteFor(label classify.Label) Stage {
	switch label {
	case classify.LabelQuestion:
		return StageGenerateQuestion
	case classify.LabelFollowup:
		return StageGenerateFollowup
	case classify.LabelAnswer, classify.LabelEvaluate:
		return StageEvaluate
	case classify.LabelModelAnswer:
		return StageGenerateModelAnswer
	default:
		return StageFallback
	}
}
