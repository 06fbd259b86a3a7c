package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jparkk0517/NLP-team-project/internal/classify"
	"github.com/jparkk0517/NLP-team-project/internal/config"
	"github.com/jparkk0517/NLP-team-project/internal/db"
	"github.com/jparkk0517/NLP-team-project/internal/dialogue"
	"github.com/jparkk0517/NLP-team-project/internal/engine"
	"github.com/jparkk0517/NLP-team-project/internal/history"
	"github.com/jparkk0517/NLP-team-project/internal/ingestion"
	"github.com/jparkk0517/NLP-team-project/internal/llm"
	"github.com/jparkk0517/NLP-team-project/internal/persona"
	"github.com/jparkk0517/NLP-team-project/internal/ranking"
	"github.com/jparkk0517/NLP-team-project/internal/research"
	"github.com/jparkk0517/NLP-team-project/internal/types"
)

// buildEngine assembles the full dialogue stack from configuration:
// documents, LLM client, optional Postgres persistence, company context
// resolver, and the engine facade over all of them. The returned cleanup
// function releases the database pool and the LLM client.
func buildEngine(ctx context.Context, cfg *config.Config) (*engine.Engine, func(), error) {
	resume, err := ingestion.LoadFirstDocument(cfg.ResumeDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load resume from %s: %w", cfg.ResumeDir, err)
	}
	jd, err := ingestion.LoadFirstDocument(cfg.JDDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load job description from %s: %w", cfg.JDDir, err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	// Postgres is optional: without it the session lives in memory only
	// and company retrieval falls back to web search.
	var (
		database  *db.DB
		retriever research.Retriever
		store     engine.Store
	)
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		if err := indexCompanyDocuments(ctx, database, cfg.CompanyDir); err != nil {
			log.Printf("company document indexing failed: %v", err)
		}
		retriever = database.NewChunkRetriever()
		store = database
	}

	var searcher research.Searcher
	if cfg.SearchCX != "" {
		gs, err := research.NewGoogleSearcher(ctx, cfg.APIKey, cfg.SearchCX)
		if err != nil {
			log.Printf("web search unavailable: %v", err)
		} else {
			searcher = gs
		}
	}
	resolver := research.NewResolver(retriever, searcher, client)

	registry := persona.NewRegistry()
	seeds := cfg.Personas
	if len(seeds) == 0 {
		seeds = config.DefaultPersonaSeeds()
	}
	for _, seed := range seeds {
		registry.Register(types.CreatePersonaRequest{
			RoleType:           types.RoleType(seed.RoleType),
			Name:               seed.Name,
			Interests:          seed.Interests,
			CommunicationStyle: seed.CommunicationStyle,
		})
	}

	conversationLog := history.NewLog()
	classifier := classify.NewLLMClassifier(client, cfg.EvaluateIntent)
	selector := persona.NewLLMSelector(client)
	graph := dialogue.NewGraph(classifier, selector, registry, resolver, client, conversationLog)
	ranker := ranking.NewRanker(ranking.NewLLMComparer(client))

	eng := engine.New(graph, conversationLog, registry, ranker, engine.Options{
		Resume:        resume,
		JD:            jd,
		RerankEnabled: cfg.RerankEnabled,
		Store:         store,
	})

	cleanup := func() {
		if database != nil {
			database.Close()
		}
		_ = client.Close()
	}
	return eng, cleanup, nil
}

// indexCompanyDocuments chunks every document under dir and replaces the
// stored chunks for it. A missing directory is not an error.
func indexCompanyDocuments(ctx context.Context, database *db.DB, dir string) error {
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	docs, err := ingestion.LoadAllDocuments(dir)
	if err != nil {
		return err
	}
	var chunks []string
	for _, doc := range docs {
		chunks = append(chunks, ingestion.SplitChunks(doc, ingestion.DefaultChunkSize, ingestion.DefaultChunkOverlap)...)
	}
	if len(chunks) == 0 {
		return nil
	}
	return database.InsertCompanyChunks(ctx, dir, chunks)
}
