package sources

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/wilfried-djoum/scraperIntelligent/internal/config"
	"github.com/wilfried-djoum/scraperIntelligent/internal/fetch"
	"github.com/wilfried-djoum/scraperIntelligent/internal/search"
	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

// maxMentionSnippet bounds how much outlet snippet is kept per mention.
const maxMentionSnippet = 200

// News collects press articles and professional media mentions of the
// subject.
type News struct {
	searcher search.Searcher
	cfg      *config.Config
}

// NewNews creates the news collector.
func NewNews(searcher search.Searcher, cfg *config.Config) *News {
	return &News{searcher: searcher, cfg: cfg}
}

// Collect searches for articles naming the subject, then probes each
// professional media outlet with a site-restricted query. Per-outlet
// failures are skipped; the payload carries an error kind only when no
// query could run at all.
func (c *News) Collect(ctx context.Context, id types.Identity) types.NewsPayload {
	payload := types.NewsPayload{
		Articles:    []types.Article{},
		ProMentions: []types.ProMention{},
	}

	if c.searcher == nil {
		payload.Err = types.ErrUnavailable
		return payload
	}

	articles, articlesErr := c.searchArticles(ctx, id)
	payload.Articles = articles

	payload.ProMentions = c.searchProfessionalMedia(ctx, id)

	payload.TotalMentions = len(payload.Articles) + len(payload.ProMentions)
	if articlesErr != nil && payload.TotalMentions == 0 {
		payload.Err = types.ErrUnavailable
	}
	return payload
}

// searchArticles runs the general press query.
func (c *News) searchArticles(ctx context.Context, id types.Identity) ([]types.Article, error) {
	query := fmt.Sprintf("%s %s news", id.FullName(), id.Company)
	results, err := c.searcher.Search(ctx, query, c.cfg.MaxArticles)
	if err != nil {
		if c.cfg.Verbose {
			log.Printf("news: article search failed: %v", err)
		}
		return []types.Article{}, err
	}

	articles := make([]types.Article, 0, len(results))
	for _, r := range results {
		articles = append(articles, types.Article{
			Title:   r.Title,
			URL:     r.Link,
			Snippet: r.Snippet,
		})
		if len(articles) >= c.cfg.MaxArticles {
			break
		}
	}
	return articles, nil
}

// searchProfessionalMedia probes each configured outlet with a
// site-restricted query. An outlet counts only when a result actually
// names the subject.
func (c *News) searchProfessionalMedia(ctx context.Context, id types.Identity) []types.ProMention {
	mentions := []types.ProMention{}
	lastName := strings.ToLower(id.LastName)

	for _, outlet := range c.cfg.ProMediaOutlets {
		query := fmt.Sprintf("site:%s %s", outlet, id.FullName())
		results, err := c.searcher.Search(ctx, query, 3)
		if err != nil {
			if c.cfg.Verbose {
				log.Printf("news: outlet %s search failed: %v", outlet, err)
			}
			continue
		}

		for _, r := range results {
			content := r.Title + " " + r.Snippet
			if strings.Contains(strings.ToLower(content), lastName) {
				mentions = append(mentions, types.ProMention{
					Outlet:  outlet,
					Found:   true,
					Snippet: fetch.Truncate(strings.TrimSpace(content), maxMentionSnippet),
				})
				break
			}
		}
	}
	return mentions
}
