// Package history provides the append-only, thread-linked record of an
// interview conversation.
package history

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// Log records interview turns in append order. It is safe for concurrent
// use: appends are serialized, and reads observe a consistent snapshot.
// Turns are never mutated or removed once appended.
type Log struct {
	mu    sync.RWMutex
	turns []types.Turn
	index map[string]int // id -> position in turns
}

// NewLog creates an empty conversation log.
func NewLog() *Log {
	return &Log{
		index: make(map[string]int),
	}
}

// Append records a new turn and returns its generated id. Content is
// accepted as-is; the caller is responsible for supplying a parent id that
// references an earlier turn.
func (l *Log) Append(category types.Category, speaker types.Speaker, content, parentID string, persona *types.Persona) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := newTurnID()
	for _, exists := l.index[id]; exists; _, exists = l.index[id] {
		id = newTurnID()
	}

	var snapshot *types.Persona
	if persona != nil {
		copied := *persona
		copied.Interests = append([]string(nil), persona.Interests...)
		snapshot = &copied
	}

	l.index[id] = len(l.turns)
	l.turns = append(l.turns, types.Turn{
		ID:              id,
		Category:        category,
		Speaker:         speaker,
		Content:         content,
		ParentID:        parentID,
		CreatedAt:       time.Now(),
		PersonaSnapshot: snapshot,
	})
	return id
}

// ByID returns the turn with the given id. The second return is false when
// no such turn exists.
func (l *Log) ByID(id string) (types.Turn, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	pos, ok := l.index[id]
	if !ok {
		return types.Turn{}, false
	}
	return l.turns[pos], true
}

// Latest scans backward from the most recent turn and returns the first
// one matching the category.
func (l *Log) Latest(category types.Category) (types.Turn, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := len(l.turns) - 1; i >= 0; i-- {
		if l.turns[i].Category == category {
			return l.turns[i], true
		}
	}
	return types.Turn{}, false
}

// Child returns the first turn of the given category whose parent is
// parentID, in append order.
func (l *Log) Child(parentID string, category types.Category) (types.Turn, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, turn := range l.turns {
		if turn.ParentID == parentID && turn.Category == category {
			return turn, true
		}
	}
	return types.Turn{}, false
}

// Thread walks parent pointers starting at startID, strictly backward
// toward earlier turns, and returns the visited turns in traversal order
// (start first). The walk stops when a turn has no parent or references an
// absent one, so it terminates for any log content.
func (l *Log) Thread(startID string) []types.Turn {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var chain []types.Turn
	seen := make(map[string]bool)
	current := startID
	for current != "" && !seen[current] {
		pos, ok := l.index[current]
		if !ok {
			break
		}
		seen[current] = true
		chain = append(chain, l.turns[pos])
		current = l.turns[pos].ParentID
	}
	return chain
}

// All returns a copy of the log in append order, optionally filtered to a
// subset of categories. Filtering preserves ordering.
func (l *Log) All(categories ...types.Category) []types.Turn {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]types.Turn, 0, len(l.turns))
	for _, turn := range l.turns {
		if matchCategory(turn.Category, categories) {
			out = append(out, turn)
		}
	}
	return out
}

// Len returns the number of recorded turns.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.turns)
}

// RenderText renders the log as "speaker: content" lines in append order,
// optionally filtered to a subset of categories. This is the form handed
// to generation prompts.
func (l *Log) RenderText(categories ...types.Category) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var sb strings.Builder
	for _, turn := range l.turns {
		if !matchCategory(turn.Category, categories) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(turn.Speaker))
		sb.WriteString(": ")
		sb.WriteString(turn.Content)
	}
	return sb.String()
}

func matchCategory(c types.Category, filter []types.Category) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if c == f {
			return true
		}
	}
	return false
}

// newTurnID generates a short opaque turn identifier, eight hex characters
// of a fresh UUID.
func newTurnID() string {
	return uuid.NewString()[:8]
}
