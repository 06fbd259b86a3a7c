package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/jparkk0517/NLP-team-project/internal/llm"
	"github.com/jparkk0517/NLP-team-project/internal/persona"
	"github.com/jparkk0517/NLP-team-project/internal/prompts"
)

// generateModelAnswer produces the best-possible answer to the referenced
// question. The first stage plans a situation/task/action/result outline
// from the resume; the second writes first-person prose from the plan.
// The plan itself never leaves this function.
func (g *Graph) generateModelAnswer(ctx context.Context, st *State) (string, error) {
	question := g.questionRef(st).Content
	if question == "" {
		// No question on record yet; answer whatever was asked for.
		question = st.Input
	}
	return g.ComposeModelAnswer(ctx, question, st)
}

// ComposeModelAnswer runs the two-stage model-answer chain for an
// explicit question text. The ranker calls this repeatedly with identical
// inputs to harvest candidate diversity from sampling alone.
func (g *Graph) ComposeModelAnswer(ctx context.Context, question string, st *State) (string, error) {
	personaText := persona.Describe(st.Persona)

	reasoningPrompt := prompts.Format(prompts.MustGet("dialogue.json", "model-answer-reasoning"), map[string]string{
		"Question": question,
		"Resume":   st.Resume,
		"JD":       st.JD,
		"Company":  st.CompanyContext,
		"Persona":  personaText,
	})
	plan, err := g.client.GenerateContent(ctx, reasoningPrompt, llm.TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("model answer planning failed: %w", err)
	}

	actingPrompt := prompts.Format(prompts.MustGet("dialogue.json", "model-answer-acting"), map[string]string{
		"Reasoning": plan,
		"Question":  question,
	})
	answer, err := g.client.GenerateContent(ctx, actingPrompt, llm.TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("model answer generation failed: %w", err)
	}

	return strings.TrimSpace(answer), nil
}
