package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// SavePersona upserts an interviewer persona.
func (db *DB) SavePersona(ctx context.Context, p types.Persona) error {
	var interestsJSON []byte
	if len(p.Interests) > 0 {
		b, err := json.Marshal(p.Interests)
		if err != nil {
			return fmt.Errorf("failed to marshal interests: %w", err)
		}
		interestsJSON = b
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO personas (id, role_type, name, interests, communication_style)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET role_type = $2, name = $3, interests = $4, communication_style = $5`,
		p.ID, string(p.RoleType), p.Name, interestsJSON, p.CommunicationStyle,
	)
	if err != nil {
		return fmt.Errorf("failed to save persona %s: %w", p.ID, err)
	}
	return nil
}

// DeletePersona removes a persona row. Deleting an absent persona is not
// an error; persisted state simply converges with the in-memory registry.
func (db *DB) DeletePersona(ctx context.Context, id string) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM personas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete persona %s: %w", id, err)
	}
	return nil
}

// ListPersonas retrieves all stored personas in creation order.
func (db *DB) ListPersonas(ctx context.Context) ([]types.Persona, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, role_type, name, interests, communication_style
		 FROM personas ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list personas: %w", err)
	}
	defer rows.Close()

	var personas []types.Persona
	for rows.Next() {
		var p types.Persona
		var roleType string
		var interestsJSON []byte
		if err := rows.Scan(&p.ID, &roleType, &p.Name, &interestsJSON, &p.CommunicationStyle); err != nil {
			return nil, fmt.Errorf("failed to scan persona: %w", err)
		}
		p.RoleType = types.RoleType(roleType)
		if len(interestsJSON) > 0 {
			_ = json.Unmarshal(interestsJSON, &p.Interests)
		}
		personas = append(personas, p)
	}
	return personas, rows.Err()
}
