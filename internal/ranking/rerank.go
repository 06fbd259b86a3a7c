package ranking

import (
	"context"
	"fmt"

	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// DefaultCandidates is how many candidate answers the ranker generates.
const DefaultCandidates = 3

// CandidateFunc produces one candidate answer for a question. The ranker
// calls it repeatedly with the same question; diversity comes from model
// sampling, not from varying the inputs.
type CandidateFunc func(ctx context.Context, question string) (string, error)

// Ranker generates candidates and picks the best by comparison against
// the original answer.
type Ranker struct {
	comparer   Comparer
	candidates int
}

// NewRanker creates a Ranker with the default candidate count.
func NewRanker(comparer Comparer) *Ranker {
	return &Ranker{comparer: comparer, candidates: DefaultCandidates}
}

// WithCandidates overrides how many candidates are generated.
func (r *Ranker) WithCandidates(n int) *Ranker {
	if n > 0 {
		r.candidates = n
	}
	return r
}

// Rerank generates candidates for the question, compares each against
// the original answer, and returns the best candidate with its
// comparison. Selection uses a strict greater-than on the overall
// reranked total, so an exact tie keeps the earliest candidate.
func (r *Ranker) Rerank(ctx context.Context, question, original string, generate CandidateFunc) (string, *types.ComparisonResult, error) {
	var (
		bestAnswer     string
		bestComparison *types.ComparisonResult
	)

	for i := 0; i < r.candidates; i++ {
		candidate, err := generate(ctx, question)
		if err != nil {
			return "", nil, fmt.Errorf("candidate generation %d failed: %w", i+1, err)
		}

		comparison, err := r.comparer.Compare(ctx, question, original, candidate)
		if err != nil {
			return "", nil, err
		}

		if bestComparison == nil || comparison.Overall.RerankedTotal > bestComparison.Overall.RerankedTotal {
			bestAnswer = candidate
			bestComparison = comparison
		}
	}

	return bestAnswer, bestComparison, nil
}
