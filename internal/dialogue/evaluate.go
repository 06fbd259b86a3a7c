package dialogue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jparkk0517/NLP-team-project/internal/classify"
	"github.com/jparkk0517/NLP-team-project/internal/llm"
	"github.com/jparkk0517/NLP-team-project/internal/persona"
	"github.com/jparkk0517/NLP-team-project/internal/prompts"
	"github.com/jparkk0517/NLP-team-project/internal/schemas"
	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// evaluate scores the applicant's answer on the four rubric dimensions.
// The presentation depends on what triggered the stage: a plain answer
// gets conversational feedback with the scores kept private, an explicit
// evaluation request gets the scores spelled out.
func (g *Graph) evaluate(ctx context.Context, st *State, res *Result) error {
	question := g.questionRef(st)
	answer := g.answerUnderEvaluation(st)

	assessment, err := g.scoreAnswer(ctx, st, question.Content, answer)
	if err != nil {
		return err
	}
	res.Assessment = assessment

	res.Category = types.CategoryEvaluation
	res.ParentID = question.ID

	if st.Label == classify.LabelAnswer {
		// Conversational mode: the applicant just answered; the log
		// records their answer and the agent reacts without numbers.
		res.LogUserTurn = true
		res.UserTurnParentID = question.ID

		feedback, err := g.conversationalFeedback(ctx, st, question.Content, answer, assessment)
		if err != nil {
			return err
		}
		res.Content = feedback
		return nil
	}

	res.Content = assessment.Render()
	return nil
}

// answerUnderEvaluation picks which text is being judged: the utterance
// itself when the applicant just answered, otherwise the most recent
// recorded answer.
func (g *Graph) answerUnderEvaluation(st *State) string {
	if st.Label == classify.LabelAnswer {
		return st.Input
	}
	if latest, ok := g.log.Latest(types.CategoryAnswer); ok {
		return latest.Content
	}
	return st.Input
}

// scoreAnswer asks for the structured four-score assessment and validates
// it against the embedded schema before trusting any number in it.
func (g *Graph) scoreAnswer(ctx context.Context, st *State, question, answer string) (*types.Assessment, error) {
	prompt := prompts.Format(prompts.MustGet("assessment.json", "evaluate-answer"), map[string]string{
		"JD":       st.JD,
		"Resume":   st.Resume,
		"Company":  st.CompanyContext,
		"Question": question,
		"Answer":   answer,
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("answer evaluation failed: %w", err)
	}

	cleaned := []byte(llm.CleanJSONBlock(raw))
	if err := schemas.Validate(schemas.SchemaAssessment, cleaned); err != nil {
		return nil, err
	}

	var assessment types.Assessment
	if err := json.Unmarshal(cleaned, &assessment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assessment: %w", err)
	}
	assessment.Normalize()
	return &assessment, nil
}

// conversationalFeedback reacts to the answer in the persona's voice. The
// scores inform the reaction but are never shown.
func (g *Graph) conversationalFeedback(ctx context.Context, st *State, question, answer string, assessment *types.Assessment) (string, error) {
	prompt := prompts.Format(prompts.MustGet("assessment.json", "conversational-feedback"), map[string]string{
		"Persona":    persona.Describe(st.Persona),
		"Question":   question,
		"Answer":     answer,
		"Assessment": assessment.Render(),
	})

	feedback, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("feedback generation failed: %w", err)
	}
	return strings.TrimSpace(feedback), nil
}

// OverallAssessment scores the whole interview so far from the rendered
// question/answer transcript.
func (g *Graph) OverallAssessment(ctx context.Context, resume, jd string) (*types.Assessment, error) {
	transcript := g.log.RenderText(types.CategoryQuestion, types.CategoryAnswer)

	company := g.ResolveCompany(ctx, jd)

	prompt := prompts.Format(prompts.MustGet("assessment.json", "overall-assessment"), map[string]string{
		"JD":      jd,
		"Resume":  resume,
		"Company": company,
		"History": transcript,
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("overall assessment failed: %w", err)
	}

	cleaned := []byte(llm.CleanJSONBlock(raw))
	if err := schemas.Validate(schemas.SchemaAssessment, cleaned); err != nil {
		return nil, err
	}

	var assessment types.Assessment
	if err := json.Unmarshal(cleaned, &assessment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assessment: %w", err)
	}
	assessment.Normalize()
	return &assessment, nil
}
