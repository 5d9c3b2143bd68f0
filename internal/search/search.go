// Package search provides web discovery queries used by the source collectors.
package search

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// Result is a single search hit.
type Result struct {
	Title   string
	Link    string
	Snippet string
}

// Searcher runs discovery queries. Collectors depend on this interface so
// tests can substitute canned results.
type Searcher interface {
	Search(ctx context.Context, query string, num int) ([]Result, error)
}

// GoogleSearcher implements Searcher over the Google Custom Search API.
type GoogleSearcher struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogleSearcher creates a GoogleSearcher.
func NewGoogleSearcher(ctx context.Context, apiKey string, cx string) (*GoogleSearcher, error) {
	if apiKey == "" || cx == "" {
		return nil, fmt.Errorf("search API key and engine ID are required")
	}
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleSearcher{svc: svc, cx: cx}, nil
}

// Search runs one query and returns up to num results.
func (s *GoogleSearcher) Search(ctx context.Context, query string, num int) ([]Result, error) {
	if num <= 0 {
		num = 5
	}
	call := s.svc.Cse.List().Cx(s.cx).Q(query).Num(int64(num)).Context(ctx)
	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]Result, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, Result{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}

// Domain extracts the bare host from a URL, without scheme or www prefix.
func Domain(url string) string {
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "www.")
	if idx := strings.IndexAny(url, "/?#"); idx >= 0 {
		url = url[:idx]
	}
	return url
}
