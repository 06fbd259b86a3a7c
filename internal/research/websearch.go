package research

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/jparkk0517/NLP-team-project/internal/fetch"
)

// maxSearchResults is how many web results feed the fallback context.
const maxSearchResults = 3

// GoogleSearcher implements Searcher using the Google Custom Search API,
// extracting the main text of each result page.
type GoogleSearcher struct {
	svc       *customsearch.Service
	cx        string
	fetchOpts *fetch.Options
}

// NewGoogleSearcher creates a GoogleSearcher. cx is the custom search
// engine id.
func NewGoogleSearcher(ctx context.Context, apiKey, cx string) (*GoogleSearcher, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleSearcher{
		svc:       svc,
		cx:        cx,
		fetchOpts: fetch.DefaultOptions(),
	}, nil
}

// Search issues the query and returns the text content of the top result
// pages. Pages that cannot be fetched degrade to their search snippet.
func (s *GoogleSearcher) Search(ctx context.Context, query string) ([]string, error) {
	resp, err := s.svc.Cse.List().Context(ctx).Cx(s.cx).Q(query).Num(maxSearchResults).Do()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	var texts []string
	for _, item := range resp.Items {
		result, err := fetch.URL(ctx, item.Link, s.fetchOpts)
		if err != nil {
			log.Printf("research: could not fetch %s, using snippet: %v", item.Link, err)
			if item.Snippet != "" {
				texts = append(texts, item.Snippet)
			}
			continue
		}

		text, err := fetch.ExtractMainText(result.HTML, fetch.DefaultTextSelectors())
		if err != nil || text == "" {
			if item.Snippet != "" {
				texts = append(texts, item.Snippet)
			}
			continue
		}
		texts = append(texts, text)
	}

	return texts, nil
}
