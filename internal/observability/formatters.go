// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jparkk0517/NLP-team-project/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxTurnsToShow is how many trailing turns to display for a transcript
	maxTurnsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTurn outputs one conversation turn with its linkage and persona.
func (p *Printer) PrintTurn(turn *types.Turn) {
	if turn == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Speaker:  %s\n", turn.Speaker))
	sb.WriteString(fmt.Sprintf("Type:     %s\n", turn.Category))
	if turn.ParentID != "" {
		sb.WriteString(fmt.Sprintf("Parent:   %s\n", turn.ParentID))
	}
	if turn.PersonaSnapshot != nil {
		sb.WriteString(fmt.Sprintf("Persona:  %s (%s)\n", turn.PersonaSnapshot.Name, turn.PersonaSnapshot.RoleType))
	}
	sb.WriteString("\n")
	sb.WriteString(turn.Content)

	p.printBox(fmt.Sprintf("Turn %s", turn.ID), sb.String())
}

// PrintTranscript outputs the tail of the conversation, one line per turn.
func (p *Printer) PrintTranscript(turns []types.Turn) {
	if len(turns) == 0 {
		return
	}

	start := 0
	if len(turns) > maxTurnsToShow {
		start = len(turns) - maxTurnsToShow
	}

	var sb strings.Builder
	if start > 0 {
		sb.WriteString(fmt.Sprintf("... %d earlier turns\n", start))
	}
	for _, turn := range turns[start:] {
		line := strings.ReplaceAll(turn.Content, "\n", " ")
		sb.WriteString(fmt.Sprintf("[%s] %s: %s\n", turn.Category, turn.Speaker, line))
	}

	p.printBox("Conversation", strings.TrimRight(sb.String(), "\n"))
}

// PrintPersonas outputs the registered persona catalog.
func (p *Printer) PrintPersonas(personas []types.Persona) {
	if len(personas) == 0 {
		return
	}

	var sb strings.Builder
	for _, persona := range personas {
		sb.WriteString(fmt.Sprintf("%s  %s (%s)\n", persona.ID, persona.Name, persona.RoleType))
		if len(persona.Interests) > 0 {
			sb.WriteString(fmt.Sprintf("          interests: %s\n", strings.Join(persona.Interests, ", ")))
		}
	}

	p.printBox("Interviewer Panel", strings.TrimRight(sb.String(), "\n"))
}

// PrintAssessment outputs the four-score assessment.
func (p *Printer) PrintAssessment(a *types.Assessment) {
	if a == nil {
		return
	}
	p.printBox("Assessment", a.Render())
}

// PrintComparison outputs the five-criterion comparison record.
func (p *Printer) PrintComparison(c *types.ComparisonResult) {
	if c == nil {
		return
	}

	var sb strings.Builder
	for _, name := range types.Criteria() {
		score, _ := c.ByCriterion(name)
		sb.WriteString(fmt.Sprintf("%-12s original %2d  reranked %2d  → %s\n",
			name, score.OriginalScore, score.RerankedScore, score.Better))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Totals: original %d, reranked %d (%s)\n",
		c.Overall.OriginalTotal, c.Overall.RerankedTotal, c.Overall.Better))
	sb.WriteString(c.Overall.Summary)

	p.printBox("Answer Comparison", sb.String())
}
