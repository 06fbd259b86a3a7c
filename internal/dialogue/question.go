package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/jparkk0517/NLP-team-project/internal/llm"
	"github.com/jparkk0517/NLP-team-project/internal/persona"
	"github.com/jparkk0517/NLP-team-project/internal/prompts"
)

// generateQuestion runs the two-stage question chain: a reasoning pass
// over resume, JD, and company material, then an acting pass that turns
// the reasoning into one concrete question. Only the acting output leaves
// this function.
func (g *Graph) generateQuestion(ctx context.Context, st *State) (string, error) {
	personaText := persona.Describe(st.Persona)

	reasoningPrompt := prompts.Format(prompts.MustGet("dialogue.json", "question-reasoning"), map[string]string{
		"Resume":  st.Resume,
		"JD":      st.JD,
		"Company": st.CompanyContext,
		"Persona": personaText,
	})
	reasoning, err := g.client.GenerateContent(ctx, reasoningPrompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("question reasoning failed: %w", err)
	}

	actingPrompt := prompts.Format(prompts.MustGet("dialogue.json", "question-acting"), map[string]string{
		"Reasoning": reasoning,
		"Persona":   personaText,
	})
	question, err := g.client.GenerateContent(ctx, actingPrompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("question generation failed: %w", err)
	}

	return strings.TrimSpace(question), nil
}

// InitialQuestion generates the opening greeting question for an empty
// log. It is a single-stage call; there is no prior reasoning context to
// build on yet.
func (g *Graph) InitialQuestion(ctx context.Context, resume, jd string) (string, error) {
	company := g.ResolveCompany(ctx, jd)

	prompt := prompts.Format(prompts.MustGet("dialogue.json", "initial-question"), map[string]string{
		"Resume":  resume,
		"JD":      jd,
		"Company": company,
	})
	question, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("initial question generation failed: %w", err)
	}
	return strings.TrimSpace(question), nil
}
