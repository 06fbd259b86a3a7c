// Package ranking generates candidate model answers and selects the best
// one by pairwise comparison against the original.
package ranking

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jparkk0517/NLP-team-project/internal/llm"
	"github.com/jparkk0517/NLP-team-project/internal/prompts"
	"github.com/jparkk0517/NLP-team-project/internal/schemas"
	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// ComparisonParseError means the comparison model returned output that
// does not parse as a five-criterion comparison. It is a hard failure:
// guessing a winner from corrupted scores would silently corrupt the
// selection.
type ComparisonParseError struct {
	Raw string
	Err error
}

func (e *ComparisonParseError) Error() string {
	return fmt.Sprintf("comparison output unparseable: %v", e.Err)
}

func (e *ComparisonParseError) Unwrap() error {
	return e.Err
}

// Comparer judges one candidate answer against the original.
type Comparer interface {
	Compare(ctx context.Context, question, original, candidate string) (*types.ComparisonResult, error)
}

// LLMComparer is the production Comparer backed by a structured
// generation call validated against the comparison schema.
type LLMComparer struct {
	client llm.Client
}

// NewLLMComparer creates a comparer using the given LLM client.
func NewLLMComparer(client llm.Client) *LLMComparer {
	return &LLMComparer{client: client}
}

// Compare scores candidate against original on the five fixed criteria.
// Malformed model output becomes a ComparisonParseError.
func (c *LLMComparer) Compare(ctx context.Context, question, original, candidate string) (*types.ComparisonResult, error) {
	prompt := prompts.Format(prompts.MustGet("ranking.json", "compare-model-answers"), map[string]string{
		"Question":  question,
		"Original":  original,
		"Candidate": candidate,
	})

	raw, err := c.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("comparison generation failed: %w", err)
	}

	cleaned := []byte(llm.CleanJSONBlock(raw))
	if err := schemas.Validate(schemas.SchemaComparison, cleaned); err != nil {
		return nil, &ComparisonParseError{Raw: raw, Err: err}
	}

	var result types.ComparisonResult
	if err := json.Unmarshal(cleaned, &result); err != nil {
		return nil, &ComparisonParseError{Raw: raw, Err: err}
	}
	return &result, nil
}
