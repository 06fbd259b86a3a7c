package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jparkk0517/NLP-team-project/internal/types"
)

func TestPrintTurn(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTurn(&types.Turn{
		ID:       "ab12cd34",
		Category: types.CategoryQuestion,
		Speaker:  types.SpeakerAgent,
		Content:  "Tell me about a hard bug.",
		PersonaSnapshot: &types.Persona{
			ID: "ef56ab78", Name: "CTO", RoleType: types.RoleDeveloper,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Turn ab12cd34")
	assert.Contains(t, out, "CTO (developer)")
	assert.Contains(t, out, "Tell me about a hard bug.")
}

func TestPrintTurn_NilSafe(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTurn(nil)
	assert.Empty(t, buf.String())
}

func TestPrintTranscript_TruncatesLongLogs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	turns := make([]types.Turn, 12)
	for i := range turns {
		turns[i] = types.Turn{Category: types.CategoryQuestion, Speaker: types.SpeakerAgent, Content: "q"}
	}
	p.PrintTranscript(turns)

	assert.Contains(t, buf.String(), "4 earlier turns")
}

func TestPrintComparison(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintComparison(&types.ComparisonResult{
		Specificity: types.CriterionScore{OriginalScore: 6, RerankedScore: 8, Better: "reranked"},
		Overall:     types.OverallComparison{OriginalTotal: 31, RerankedTotal: 38, Better: "reranked", Summary: "candidate is stronger"},
	})

	out := buf.String()
	assert.Contains(t, out, "specificity")
	assert.Contains(t, out, "original 31, reranked 38")
}

func TestPrintAssessment(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAssessment(&types.Assessment{
		LogicScore: 7, JobFitScore: 6, CoreValueFitScore: 5, CommunicationScore: 8, AverageScore: 6.5,
	})

	assert.Contains(t, buf.String(), "Logic: 7/10")
}
