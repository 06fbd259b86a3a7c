package engine

import "fmt"

// ErrTurnNotFound indicates an operation referenced a turn id that does
// not exist or is not the expected kind of turn.
type ErrTurnNotFound struct {
	ID string
}

func (e *ErrTurnNotFound) Error() string {
	return fmt.Sprintf("turn not found: %s", e.ID)
}

// ErrPersonaNotFound indicates a persona id is not in the registry.
type ErrPersonaNotFound struct {
	ID string
}

func (e *ErrPersonaNotFound) Error() string {
	return fmt.Sprintf("persona not found: %s", e.ID)
}

// ErrNoModelAnswer indicates a rerank was requested for a question that
// has no model answer to rerank against.
type ErrNoModelAnswer struct {
	QuestionID string
}

func (e *ErrNoModelAnswer) Error() string {
	return fmt.Sprintf("no model answer recorded for question: %s", e.QuestionID)
}
