package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessment_Average(t *testing.T) {
	a := &Assessment{
		LogicScore:         7,
		JobFitScore:        6,
		CoreValueFitScore:  3,
		CommunicationScore: 7,
	}
	assert.InDelta(t, 5.75, a.Average(), 0.001)
}

func TestAssessment_Normalize_ClampsOutOfRange(t *testing.T) {
	a := &Assessment{
		LogicScore:         14,
		JobFitScore:        -2,
		CoreValueFitScore:  5,
		CommunicationScore: 10,
		AverageScore:       99,
	}
	a.Normalize()

	assert.Equal(t, 10, a.LogicScore)
	assert.Equal(t, 0, a.JobFitScore)
	assert.InDelta(t, 6.25, a.AverageScore, 0.001)
}

func TestAssessment_Render(t *testing.T) {
	a := &Assessment{
		LogicScore:         7,
		JobFitScore:        6,
		CoreValueFitScore:  5,
		CommunicationScore: 8,
		AverageScore:       6.5,
		OverallEvaluation:  "Solid answers with room for more detail.",
	}

	out := a.Render()
	assert.Contains(t, out, "Logic: 7/10")
	assert.Contains(t, out, "Average: 6.5/10")
	assert.Contains(t, out, "Solid answers")
}
