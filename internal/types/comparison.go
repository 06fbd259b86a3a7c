package types

// Criterion names one of the five comparison dimensions used when judging
// a reranked model answer against the original.
type Criterion string

// Criterion constants define the fixed comparison dimensions.
const (
	CriterionSpecificity Criterion = "specificity"
	CriterionRelevance   Criterion = "relevance"
	CriterionStructure   Criterion = "structure"
	CriterionCompanyFit  Criterion = "company_fit"
	CriterionExpertise   Criterion = "expertise"
)

// Criteria returns the comparison dimensions in their canonical order.
func Criteria() []Criterion {
	return []Criterion{
		CriterionSpecificity,
		CriterionRelevance,
		CriterionStructure,
		CriterionCompanyFit,
		CriterionExpertise,
	}
}

// CriterionScore holds one dimension of a pairwise answer comparison.
// Scores range 1-10 and are produced by the comparison model, not computed
// locally.
type CriterionScore struct {
	OriginalScore int    `json:"original_score"`
	RerankedScore int    `json:"reranked_score"`
	Rationale     string `json:"rationale"`
	Better        string `json:"better"` // "original" | "reranked"
}

// OverallComparison aggregates the per-criterion scores. The totals are
// opaque values supplied by the comparison model; the ranker compares them
// but never recomputes them from the criterion scores.
type OverallComparison struct {
	OriginalTotal int    `json:"original_total"`
	RerankedTotal int    `json:"reranked_total"`
	Better        string `json:"better"`
	Summary       string `json:"summary"`
}

// ComparisonResult is the immutable outcome of comparing one reranked
// candidate answer against the original model answer.
type ComparisonResult struct {
	Specificity CriterionScore    `json:"specificity"`
	Relevance   CriterionScore    `json:"relevance"`
	Structure   CriterionScore    `json:"structure"`
	CompanyFit  CriterionScore    `json:"company_fit"`
	Expertise   CriterionScore    `json:"expertise"`
	Overall     OverallComparison `json:"overall"`
}

// ByCriterion returns the score for a named dimension. The second return
// is false for an unknown criterion.
func (c *ComparisonResult) ByCriterion(name Criterion) (CriterionScore, bool) {
	switch name {
	case CriterionSpecificity:
		return c.Specificity, true
	case CriterionRelevance:
		return c.Relevance, true
	case CriterionStructure:
		return c.Structure, true
	case CriterionCompanyFit:
		return c.CompanyFit, true
	case CriterionExpertise:
		return c.Expertise, true
	}
	return CriterionScore{}, false
}
