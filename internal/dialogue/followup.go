package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/jparkk0517/NLP-team-project/internal/llm"
	"github.com/jparkk0517/NLP-team-project/internal/persona"
	"github.com/jparkk0517/NLP-team-project/internal/prompts"
)

// generateFollowup runs the two-stage follow-up chain. Unlike a fresh
// question it is conditioned on the rendered conversation and the
// applicant's latest utterance, so it digs into what was just said.
func (g *Graph) generateFollowup(ctx context.Context, st *State) (string, error) {
	personaText := persona.Describe(st.Persona)

	reasoningPrompt := prompts.Format(prompts.MustGet("dialogue.json", "followup-reasoning"), map[string]string{
		"History": st.History,
		"Input":   st.Input,
		"Resume":  st.Resume,
		"JD":      st.JD,
		"Company": st.CompanyContext,
		"Persona": personaText,
	})
	reasoning, err := g.client.GenerateContent(ctx, reasoningPrompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("followup reasoning failed: %w", err)
	}

	actingPrompt := prompts.Format(prompts.MustGet("dialogue.json", "followup-acting"), map[string]string{
		"Input":     st.Input,
		"Reasoning": reasoning,
	})
	followup, err := g.client.GenerateContent(ctx, actingPrompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("followup generation failed: %w", err)
	}

	return strings.TrimSpace(followup), nil
}
