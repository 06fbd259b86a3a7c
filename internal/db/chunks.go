package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jparkk0517/NLP-team-project/internal/research"
)

// InsertCompanyChunks stores split company material under a source label.
// Existing chunks for the same source are replaced, so re-ingesting a
// document does not duplicate its content.
func (db *DB) InsertCompanyChunks(ctx context.Context, source string, chunks []string) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM company_chunks WHERE source = $1`, source); err != nil {
		return fmt.Errorf("failed to clear chunks for %s: %w", source, err)
	}

	batch := &pgx.Batch{}
	for i, chunk := range chunks {
		batch.Queue(
			`INSERT INTO company_chunks (source, chunk_index, content) VALUES ($1, $2, $3)`,
			source, i, chunk,
		)
	}
	results := tx.SendBatch(ctx, batch)
	for range chunks {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("failed to insert chunk for %s: %w", source, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to flush chunk batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit chunk batch: %w", err)
	}
	return nil
}

// SearchChunks runs full-text search over company material and returns
// the k best-matching chunks. No matches is an empty slice, not an error.
func (db *DB) SearchChunks(ctx context.Context, query string, k int) ([]research.Chunk, error) {
	if k <= 0 {
		k = 3
	}

	rows, err := db.pool.Query(ctx,
		`SELECT source, chunk_index, content,
		        ts_rank(content_tsv, plainto_tsquery('english', $1)) AS rank
		 FROM company_chunks
		 WHERE content_tsv @@ plainto_tsquery('english', $1)
		 ORDER BY rank DESC
		 LIMIT $2`,
		query, k,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search chunks: %w", err)
	}
	defer rows.Close()

	var chunks []research.Chunk
	for rows.Next() {
		var source, content string
		var index int
		var rank float32
		if err := rows.Scan(&source, &index, &content, &rank); err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}
		chunks = append(chunks, research.Chunk{
			Text: content,
			Metadata: map[string]string{
				"source":      source,
				"chunk_index": fmt.Sprintf("%d", index),
			},
		})
	}
	return chunks, rows.Err()
}

// ChunkRetriever adapts the chunk store to the research.Retriever interface.
type ChunkRetriever struct {
	db *DB
}

// NewChunkRetriever wraps the database as a local retrieval index.
func (db *DB) NewChunkRetriever() *ChunkRetriever {
	return &ChunkRetriever{db: db}
}

// Retrieve implements research.Retriever.
func (r *ChunkRetriever) Retrieve(ctx context.Context, query string, k int) ([]research.Chunk, error) {
	return r.db.SearchChunks(ctx, query, k)
}
