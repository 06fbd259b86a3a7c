package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonResult_ByCriterion(t *testing.T) {
	result := &ComparisonResult{
		Specificity: CriterionScore{OriginalScore: 5, RerankedScore: 8, Better: "reranked"},
		Expertise:   CriterionScore{OriginalScore: 7, RerankedScore: 6, Better: "original"},
	}

	score, ok := result.ByCriterion(CriterionSpecificity)
	require.True(t, ok)
	assert.Equal(t, 8, score.RerankedScore)

	score, ok = result.ByCriterion(CriterionExpertise)
	require.True(t, ok)
	assert.Equal(t, "original", score.Better)

	_, ok = result.ByCriterion("charisma")
	assert.False(t, ok)
}

func TestCriteria_CanonicalOrder(t *testing.T) {
	want := []Criterion{
		CriterionSpecificity,
		CriterionRelevance,
		CriterionStructure,
		CriterionCompanyFit,
		CriterionExpertise,
	}
	assert.Equal(t, want, Criteria())
}

func TestComparisonResult_Unmarshal(t *testing.T) {
	payload := `{
		"specificity": {"original_score": 6, "reranked_score": 9, "rationale": "more concrete metrics", "better": "reranked"},
		"relevance": {"original_score": 7, "reranked_score": 7, "rationale": "both on topic", "better": "original"},
		"structure": {"original_score": 5, "reranked_score": 8, "rationale": "clear STAR framing", "better": "reranked"},
		"company_fit": {"original_score": 6, "reranked_score": 7, "rationale": "mentions core values", "better": "reranked"},
		"expertise": {"original_score": 8, "reranked_score": 8, "rationale": "equal depth", "better": "original"},
		"overall": {"original_total": 32, "reranked_total": 39, "better": "reranked", "summary": "reranked answer is stronger"}
	}`

	var result ComparisonResult
	require.NoError(t, json.Unmarshal([]byte(payload), &result))
	assert.Equal(t, 39, result.Overall.RerankedTotal)
	assert.Equal(t, "reranked", result.Overall.Better)
	assert.Equal(t, 9, result.Specificity.RerankedScore)
}
