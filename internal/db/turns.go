package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// SaveTurn persists one conversation turn for a session. The in-memory
// log stays authoritative during a session; rows here let a session be
// inspected or replayed after the process exits.
func (db *DB) SaveTurn(ctx context.Context, sessionID string, turn types.Turn) error {
	var personaJSON []byte
	if turn.PersonaSnapshot != nil {
		b, err := json.Marshal(turn.PersonaSnapshot)
		if err != nil {
			return fmt.Errorf("failed to marshal persona snapshot: %w", err)
		}
		personaJSON = b
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO turns (id, session_id, category, speaker, content, related_turn_id, persona, created_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
		 ON CONFLICT (id) DO NOTHING`,
		turn.ID, sessionID, string(turn.Category), string(turn.Speaker),
		turn.Content, turn.ParentID, personaJSON, turn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save turn %s: %w", turn.ID, err)
	}
	return nil
}

// ListTurns retrieves every turn for a session in insertion order.
func (db *DB) ListTurns(ctx context.Context, sessionID string) ([]types.Turn, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, category, speaker, content, COALESCE(related_turn_id, ''), persona, created_at
		 FROM turns WHERE session_id = $1 ORDER BY seq ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}
	defer rows.Close()

	var turns []types.Turn
	for rows.Next() {
		var turn types.Turn
		var category, speaker string
		var personaJSON []byte
		if err := rows.Scan(&turn.ID, &category, &speaker, &turn.Content, &turn.ParentID, &personaJSON, &turn.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turn.Category = types.Category(category)
		turn.Speaker = types.Speaker(speaker)
		if len(personaJSON) > 0 {
			var p types.Persona
			if err := json.Unmarshal(personaJSON, &p); err == nil {
				turn.PersonaSnapshot = &p
			}
		}
		turns = append(turns, turn)
	}
	return turns, rows.Err()
}
