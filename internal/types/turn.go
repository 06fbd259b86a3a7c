// Package types defines the core data structures shared across the interview simulator.
package types

import "time"

// Category classifies what kind of entry a conversation turn is.
type Category string

// Category constants define the closed set of turn kinds.
const (
	CategoryQuestion            Category = "question"
	CategoryAnswer              Category = "answer"
	CategoryModelAnswer         Category = "model_answer"
	CategoryRerankedModelAnswer Category = "reranked_model_answer"
	CategoryEvaluation          Category = "evaluation"
)

// Speaker identifies who produced a turn.
type Speaker string

// Speaker constants define the two sides of the interview dialogue.
const (
	SpeakerAgent Speaker = "agent"
	SpeakerUser  Speaker = "user"
)

// Turn is one atomic entry in the conversation log. Turns are immutable
// once appended; ParentID links an answer, model answer, or evaluation back
// to the question it responds to.
type Turn struct {
	ID              string    `json:"id"`
	Category        Category  `json:"type"`
	Speaker         Speaker   `json:"speaker"`
	Content         string    `json:"content"`
	ParentID        string    `json:"related_chatting_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	PersonaSnapshot *Persona  `json:"persona,omitempty"`
}

// ValidCategory reports whether c is one of the defined turn categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryQuestion, CategoryAnswer, CategoryModelAnswer,
		CategoryRerankedModelAnswer, CategoryEvaluation:
		return true
	}
	return false
}
