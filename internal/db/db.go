// Package db provides PostgreSQL persistence for interview sessions,
// personas, and indexed company material.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the tables this service needs if they are missing.
// It is idempotent and safe to run at every startup.
func (db *DB) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS turns (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			category TEXT NOT NULL,
			speaker TEXT NOT NULL,
			content TEXT NOT NULL,
			related_turn_id TEXT,
			persona JSONB,
			seq BIGSERIAL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_turns_session ON turns (session_id, seq)`,
		`CREATE TABLE IF NOT EXISTS personas (
			id TEXT PRIMARY KEY,
			role_type TEXT NOT NULL,
			name TEXT NOT NULL,
			interests JSONB,
			communication_style TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS company_chunks (
			id BIGSERIAL PRIMARY KEY,
			source TEXT NOT NULL DEFAULT '',
			chunk_index INT NOT NULL DEFAULT 0,
			content TEXT NOT NULL,
			content_tsv TSVECTOR GENERATED ALWAYS AS (to_tsvector('english', content)) STORED,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_company_chunks_tsv ON company_chunks USING GIN (content_tsv)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
