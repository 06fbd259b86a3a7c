package types

import (
	"fmt"
	"strings"
)

// Assessment holds the four fixed rubric scores for an applicant answer,
// each 0-10, plus their average. Field names mirror the wire format the
// front end consumes.
type Assessment struct {
	LogicScore         int     `json:"logicScore"`
	JobFitScore        int     `json:"jobFitScore"`
	CoreValueFitScore  int     `json:"coreValueFitScore"`
	CommunicationScore int     `json:"communicationScore"`
	AverageScore       float64 `json:"averageScore"`
	OverallEvaluation  string  `json:"overallEvaluation,omitempty"`
}

// Average computes the mean of the four rubric scores. Use this when the
// model omits or miscomputes averageScore.
func (a *Assessment) Average() float64 {
	return float64(a.LogicScore+a.JobFitScore+a.CoreValueFitScore+a.CommunicationScore) / 4.0
}

// Normalize clamps every score into the 0-10 range and recomputes the
// average from the clamped values.
func (a *Assessment) Normalize() {
	a.LogicScore = clampScore(a.LogicScore)
	a.JobFitScore = clampScore(a.JobFitScore)
	a.CoreValueFitScore = clampScore(a.CoreValueFitScore)
	a.CommunicationScore = clampScore(a.CommunicationScore)
	a.AverageScore = a.Average()
}

// Render formats the assessment as user-facing text with visible scores,
// one rubric dimension per line.
func (a *Assessment) Render() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Logic: %d/10\n", a.LogicScore))
	sb.WriteString(fmt.Sprintf("Job fit: %d/10\n", a.JobFitScore))
	sb.WriteString(fmt.Sprintf("Core value fit: %d/10\n", a.CoreValueFitScore))
	sb.WriteString(fmt.Sprintf("Communication: %d/10\n", a.CommunicationScore))
	sb.WriteString(fmt.Sprintf("Average: %.1f/10", a.AverageScore))
	if a.OverallEvaluation != "" {
		sb.WriteString("\n\n")
		sb.WriteString(a.OverallEvaluation)
	}
	return sb.String()
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 10 {
		return 10
	}
	return s
}
