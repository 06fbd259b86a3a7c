package persona

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jparkk0517/NLP-team-project/internal/llm"
	"github.com/jparkk0517/NLP-team-project/internal/prompts"
	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// NoPersona is the sentinel returned when no registered persona fits the
// current turn. It is the empty string, which can never collide with a
// real persona id.
const NoPersona = ""

// SelectionInput carries the candidate context the selector grounds its
// decision in.
type SelectionInput struct {
	Resume       string
	JD           string
	Utterance    string
	LastQuestion string
}

// Selector picks one persona id from a catalog for the current turn, or
// NoPersona when nothing fits. Selection is per turn, not session-sticky,
// so different personas can interview the same candidate across threads.
type Selector interface {
	Select(ctx context.Context, input SelectionInput, catalog []types.Persona) (string, error)
}

// LLMSelector is the production Selector backed by a generation call over
// the serialized persona catalog.
type LLMSelector struct {
	client llm.Client
}

// NewLLMSelector creates a selector using the given LLM client.
func NewLLMSelector(client llm.Client) *LLMSelector {
	return &LLMSelector{client: client}
}

type selectionResponse struct {
	PersonaID string `json:"persona_id"`
}

// Select returns the id of the best-fit persona from the catalog, or
// NoPersona when the catalog is empty or the model declines to pick one.
// A model answer naming an id outside the catalog is treated as NoPersona
// rather than trusted.
func (s *LLMSelector) Select(ctx context.Context, input SelectionInput, catalog []types.Persona) (string, error) {
	if len(catalog) == 0 {
		return NoPersona, nil
	}

	serialized, err := json.Marshal(catalog)
	if err != nil {
		return NoPersona, fmt.Errorf("failed to serialize persona catalog: %w", err)
	}

	template := prompts.MustGet("persona.json", "select-interviewer")
	prompt := prompts.Format(template, map[string]string{
		"Personas":     string(serialized),
		"Resume":       input.Resume,
		"JD":           input.JD,
		"Input":        input.Utterance,
		"LastQuestion": input.LastQuestion,
	})

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return NoPersona, fmt.Errorf("persona selection failed: %w", err)
	}

	var resp selectionResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		// Unparseable selection output degrades to no persona.
		return NoPersona, nil
	}

	chosen := strings.TrimSpace(resp.PersonaID)
	if chosen == "" || strings.EqualFold(chosen, "none") || strings.EqualFold(chosen, "null") {
		return NoPersona, nil
	}

	for _, p := range catalog {
		if p.ID == chosen {
			return chosen, nil
		}
	}
	return NoPersona, nil
}

// Describe renders a persona as prompt text. An empty persona renders as
// an empty string so prompts degrade cleanly when no persona is assigned.
func Describe(p *types.Persona) string {
	if p == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are %s, a %s on the interview panel.", p.Name, roleLabel(p.RoleType)))
	if len(p.Interests) > 0 {
		sb.WriteString(fmt.Sprintf(" You usually care about %s.", strings.Join(p.Interests, ", ")))
	}
	if p.CommunicationStyle != "" {
		sb.WriteString(fmt.Sprintf(" You talk to applicants in a %s manner.", p.CommunicationStyle))
	}
	return sb.String()
}

func roleLabel(r types.RoleType) string {
	switch r {
	case types.RoleDeveloper:
		return "developer"
	case types.RoleDesigner:
		return "designer"
	case types.RoleProductManager:
		return "product manager"
	default:
		return "generalist interviewer"
	}
}
