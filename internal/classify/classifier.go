// Package classify maps applicant utterances to dialogue intent labels.
package classify

import (
	"context"
	"strings"

	"github.com/jparkk0517/NLP-team-project/internal/llm"
	"github.com/jparkk0517/NLP-team-project/internal/prompts"
)

// Label is one of the closed set of dialogue intents.
type Label string

// The closed label set. LabelOther is the catch-all: anything that is not
// recognizably one of the others must end up here.
const (
	LabelQuestion    Label = "question"
	LabelFollowup    Label = "followup"
	LabelModelAnswer Label = "model_answer"
	LabelAnswer      Label = "answer"
	LabelEvaluate    Label = "evaluate"
	LabelOther       Label = "other"
)

// Classifier decides the intent of one utterance given the recent
// conversation. Implementations must always return a label from the closed
// set; ambiguity is resolved to LabelOther, never to an error.
type Classifier interface {
	Classify(ctx context.Context, utterance, history string) (Label, error)
}

// LLMClassifier is the production Classifier backed by a generation call.
type LLMClassifier struct {
	client llm.Client
	// evaluateEnabled controls whether the explicit "evaluate" label is
	// part of the deployed label set. When disabled it coerces to answer.
	evaluateEnabled bool
}

// NewLLMClassifier creates a classifier using the given LLM client.
func NewLLMClassifier(client llm.Client, evaluateEnabled bool) *LLMClassifier {
	return &LLMClassifier{client: client, evaluateEnabled: evaluateEnabled}
}

// Classify asks the model for a single intent word and coerces anything
// unparseable to LabelOther. Only transport-level failures surface as
// errors; the caller is expected to fall back to LabelOther on those too.
func (c *LLMClassifier) Classify(ctx context.Context, utterance, history string) (Label, error) {
	template := prompts.MustGet("dialogue.json", "classify-intent")
	prompt := prompts.Format(template, map[string]string{
		"Input":   utterance,
		"History": history,
	})

	raw, err := c.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return LabelOther, err
	}

	label := Normalize(raw)
	if label == LabelEvaluate && !c.evaluateEnabled {
		label = LabelAnswer
	}
	return label, nil
}

// Normalize coerces raw model output to a label from the closed set.
// Unrecognized output becomes LabelOther.
func Normalize(raw string) Label {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.Trim(cleaned, `"'.`)

	switch Label(cleaned) {
	case LabelQuestion, LabelFollowup, LabelModelAnswer, LabelAnswer, LabelEvaluate, LabelOther:
		return Label(cleaned)
	}

	// Some models answer with the camel-cased label from older prompt
	// revisions.
	if cleaned == "modelanswer" {
		return LabelModelAnswer
	}
	return LabelOther
}
