// Package research resolves company and culture context for a job
// description, preferring the local retrieval index and falling back to
// external web search.
package research

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jparkk0517/NLP-team-project/internal/llm"
	"github.com/jparkk0517/NLP-team-project/internal/prompts"
)

// DefaultMaxContextChars bounds the resolved context so downstream prompts
// stay a manageable size.
const DefaultMaxContextChars = 2000

// DefaultRetrieveK is how many chunks to pull from the local index.
const DefaultRetrieveK = 3

// Chunk is one retrieved piece of company material.
type Chunk struct {
	Text     string
	Metadata map[string]string
}

// Retriever is the local similarity-search collaborator. An uninitialized
// or empty index returns an empty slice, never an error for "no results."
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]Chunk, error)
}

// Searcher is the external web-search collaborator. It is treated as
// unreliable; callers tolerate empty results and errors.
type Searcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// Resolver resolves company context. Resolution never fails outright:
// when every source comes up empty the context is the empty string and
// downstream stages proceed with degraded information.
type Resolver struct {
	retriever Retriever
	searcher  Searcher
	client    llm.Client
	maxChars  int
	retrieveK int
}

// NewResolver creates a Resolver. The retriever and searcher may be nil,
// in which case the corresponding source is skipped.
func NewResolver(retriever Retriever, searcher Searcher, client llm.Client) *Resolver {
	return &Resolver{
		retriever: retriever,
		searcher:  searcher,
		client:    client,
		maxChars:  DefaultMaxContextChars,
		retrieveK: DefaultRetrieveK,
	}
}

// WithMaxChars overrides the context truncation limit.
func (r *Resolver) WithMaxChars(n int) *Resolver {
	r.maxChars = n
	return r
}

// Resolve returns company context for the job description. A non-empty
// supplied context is used verbatim; otherwise local retrieval is tried,
// gated by a relevance check, before falling back to web search.
func (r *Resolver) Resolve(ctx context.Context, jd, supplied string) string {
	if strings.TrimSpace(supplied) != "" {
		return supplied
	}

	if local := r.resolveLocal(ctx, jd); local != "" {
		return local
	}

	return r.resolveWeb(ctx, jd)
}

func (r *Resolver) resolveLocal(ctx context.Context, jd string) string {
	if r.retriever == nil {
		return ""
	}

	chunks, err := r.retriever.Retrieve(ctx, jd, r.retrieveK)
	if err != nil {
		log.Printf("research: local retrieval failed: %v", err)
		return ""
	}
	if len(chunks) == 0 {
		return ""
	}

	texts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		texts = append(texts, c.Text)
	}
	combined := strings.Join(texts, "\n")

	if !r.isRelevant(ctx, jd, combined) {
		return ""
	}

	return truncate(combined, r.maxChars)
}

type relevanceResponse struct {
	Relevant bool `json:"relevant"`
}

// isRelevant runs the binary relevance gate. A gate failure counts as
// relevant: retrieved local material is a better degraded answer than an
// extra web search.
func (r *Resolver) isRelevant(ctx context.Context, jd, context string) bool {
	if r.client == nil {
		return true
	}

	template := prompts.MustGet("research.json", "relevance-check")
	prompt := prompts.Format(template, map[string]string{
		"JD":      jd,
		"Context": truncate(context, r.maxChars),
	})

	raw, err := r.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("research: relevance check failed: %v", err)
		return true
	}

	var resp relevanceResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		log.Printf("research: unparseable relevance response: %v", err)
		return true
	}
	return resp.Relevant
}

func (r *Resolver) resolveWeb(ctx context.Context, jd string) string {
	if r.searcher == nil {
		return ""
	}

	query := r.rewriteQuery(ctx, jd)
	results, err := r.searcher.Search(ctx, query)
	if err != nil {
		log.Printf("research: web search failed: %v", err)
		return ""
	}
	if len(results) == 0 {
		return ""
	}

	return truncate(strings.Join(results, "\n"), r.maxChars)
}

// rewriteQuery turns the job description into a short search-engine
// friendly query. On failure the first line of the JD is used.
func (r *Resolver) rewriteQuery(ctx context.Context, jd string) string {
	if r.client == nil {
		return firstLine(jd)
	}

	template := prompts.MustGet("research.json", "search-query-rewrite")
	prompt := prompts.Format(template, map[string]string{"JD": jd})

	query, err := r.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil || strings.TrimSpace(query) == "" {
		return firstLine(jd)
	}
	return strings.TrimSpace(query)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
