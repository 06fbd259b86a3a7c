package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/jparkk0517/NLP-team-project/internal/llm"
)

// fallback handles out-of-domain input by passing the raw utterance to
// the model with no specialized prompt.
func (g *Graph) fallback(ctx context.Context, st *State) (string, error) {
	reply, err := g.client.GenerateContent(ctx, st.Input, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("fallback generation failed: %w", err)
	}
	return strings.TrimSpace(reply), nil
}
