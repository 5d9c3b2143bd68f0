package sources

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/wilfried-djoum/scraperIntelligent/internal/config"
	"github.com/wilfried-djoum/scraperIntelligent/internal/fetch"
	"github.com/wilfried-djoum/scraperIntelligent/internal/search"
	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

const profileBaseURL = "https://www.linkedin.com/in"

var (
	profileURLPattern = regexp.MustCompile(`https?://(?:www\.)?linkedin\.com/in/[\w\-]+`)
	postDatePattern   = regexp.MustCompile(`(?i)(il y a|ago)\s+(\d+)\s+(jour|day|semaine|week|mois|month)\w*`)
)

// maxPostLength bounds how much of a single post is kept.
const maxPostLength = 500

// LinkedIn collects the subject's professional network profile: URL, about
// text, and recent posts.
type LinkedIn struct {
	searcher search.Searcher
	fetcher  *fetcher
	cfg      *config.Config
}

// NewLinkedIn creates the professional network collector. The searcher may
// be nil, in which case only deterministic candidate URLs are tried.
func NewLinkedIn(searcher search.Searcher, cfg *config.Config) *LinkedIn {
	return &LinkedIn{
		searcher: searcher,
		fetcher:  &fetcher{cfg: cfg},
		cfg:      cfg,
	}
}

// Collect resolves the subject's profile URL and scrapes the profile page
// and recent activity. Failures degrade: an unresolved profile yields a
// not-found payload, a resolved profile with unreachable sub-pages still
// counts as evidence.
func (c *LinkedIn) Collect(ctx context.Context, id types.Identity) types.LinkedInPayload {
	payload := types.LinkedInPayload{Posts: []types.Post{}}

	profileURL := c.findProfile(ctx, id)
	if profileURL == "" {
		payload.Err = types.ErrNotFound
		return payload
	}
	payload.URL = profileURL

	if about, err := c.scrapeProfile(ctx, profileURL); err == nil {
		payload.About = about
	} else if c.cfg.Verbose {
		log.Printf("linkedin: profile page scrape failed: %v", err)
	}

	if posts, err := c.scrapePosts(ctx, profileURL); err == nil {
		payload.Posts = posts
	} else if c.cfg.Verbose {
		log.Printf("linkedin: posts scrape failed: %v", err)
	}

	return payload
}

// findProfile tries deterministic candidate URLs first, then falls back to
// a site-restricted search.
func (c *LinkedIn) findProfile(ctx context.Context, id types.Identity) string {
	for _, candidate := range candidateProfileURLs(id) {
		if c.validateProfileURL(ctx, candidate) {
			return candidate
		}
	}

	if c.searcher == nil {
		return ""
	}
	query := fmt.Sprintf("%s %s site:linkedin.com/in/", id.FullName(), id.Company)
	results, err := c.searcher.Search(ctx, query, 5)
	if err != nil {
		if c.cfg.Verbose {
			log.Printf("linkedin: profile search failed: %v", err)
		}
		return ""
	}
	for _, r := range results {
		if match := profileURLPattern.FindString(r.Link); match != "" {
			return match
		}
		if match := profileURLPattern.FindString(r.Snippet); match != "" {
			return match
		}
	}
	return ""
}

// candidateProfileURLs builds the deterministic slug candidates tried before
// any search: first-last, first.last, firstlast, plus company-suffixed
// variants, duplicates removed in order.
func candidateProfileURLs(id types.Identity) []string {
	first := normalizeSlug(id.FirstName)
	last := normalizeSlug(id.LastName)
	company := normalizeSlug(id.Company)

	candidates := []string{
		fmt.Sprintf("%s/%s-%s/", profileBaseURL, first, last),
		fmt.Sprintf("%s/%s.%s/", profileBaseURL, first, last),
		fmt.Sprintf("%s/%s%s/", profileBaseURL, first, last),
	}
	if company != "" {
		candidates = append(candidates,
			fmt.Sprintf("%s/%s-%s-%s/", profileBaseURL, first, last, company),
			fmt.Sprintf("%s/%s.%s.%s/", profileBaseURL, first, last, company),
		)
	}

	seen := make(map[string]bool, len(candidates))
	ordered := candidates[:0]
	for _, u := range candidates {
		if !seen[u] {
			seen[u] = true
			ordered = append(ordered, u)
		}
	}
	return ordered
}

// validateProfileURL fetches a candidate and checks it looks like a real
// profile page rather than a login wall or a 404.
func (c *LinkedIn) validateProfileURL(ctx context.Context, url string) bool {
	_, text, err := c.fetcher.page(ctx, url, fetch.DefaultTextSelectors())
	if err != nil || len(text) < 200 {
		return false
	}
	lower := strings.ToLower(text)
	score := 0
	for _, token := range []string{"linkedin", "experience", "about", "education"} {
		if strings.Contains(lower, token) {
			score++
		}
	}
	return score >= 2
}

// scrapeProfile returns the profile page text for later structuring.
func (c *LinkedIn) scrapeProfile(ctx context.Context, url string) (string, error) {
	html, text, err := c.fetcher.page(ctx, url, fetch.DefaultTextSelectors())
	if err != nil {
		return "", err
	}
	if paragraphs, perr := fetch.ExtractParagraphs(html); perr == nil && paragraphs != "" {
		return paragraphs, nil
	}
	return text, nil
}

// scrapePosts fetches the recent-activity page and extracts posts.
func (c *LinkedIn) scrapePosts(ctx context.Context, profileURL string) ([]types.Post, error) {
	activityURL := strings.TrimSuffix(profileURL, "/") + "/recent-activity/all/"

	html, _, err := c.fetcher.page(ctx, activityURL, fetch.DefaultTextSelectors())
	if err != nil {
		return nil, err
	}
	paragraphs, err := fetch.ExtractParagraphs(html)
	if err != nil {
		return nil, err
	}
	return parsePosts(paragraphs, c.cfg.MaxPosts), nil
}

// parsePosts turns blank-line separated activity text into posts. A section
// qualifies as a post when it carries enough text to be actual content.
func parsePosts(content string, limit int) []types.Post {
	posts := []types.Post{}
	for _, section := range strings.Split(content, "\n\n") {
		section = strings.TrimSpace(section)
		if len(section) <= 50 || strings.HasPrefix(section, "#") {
			continue
		}
		posts = append(posts, types.Post{
			Content: fetch.Truncate(section, maxPostLength),
			Date:    postDatePattern.FindString(section),
		})
		if limit > 0 && len(posts) >= limit {
			break
		}
	}
	return posts
}
