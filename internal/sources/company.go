package sources

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wilfried-djoum/scraperIntelligent/internal/config"
	"github.com/wilfried-djoum/scraperIntelligent/internal/fetch"
	"github.com/wilfried-djoum/scraperIntelligent/internal/search"
	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

// Limits on company page content kept in the payload.
const (
	maxDescriptionLength = 500
	maxHTMLExcerpt       = 2000
	maxDiscoveredPages   = 10
)

// excludedDomains are never considered company websites: search engines,
// social networks, and encyclopedias that dominate name queries.
var excludedDomains = []string{
	"google", "bing", "yahoo", "duckduckgo",
	"linkedin", "facebook", "twitter", "x.com",
	"instagram", "youtube", "wikipedia", "reddit",
}

// relatedPageKeywords mark homepage links worth following for person info.
var relatedPageKeywords = []string{"about", "leadership", "team", "press", "media"}

// executiveTitles is the fallback list scanned when no role line follows the
// subject's name on a leadership page.
var executiveTitles = []string{
	"Chief Executive Officer", "CEO", "Chairman", "President",
	"Vice President", "VP", "General Manager",
}

var (
	yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	imgPattern  = regexp.MustCompile(`(?i)<img[^>]+src="([^"]+)"`)
)

// Company collects the subject's company website, homepage content, related
// pages, and any person profile found on those pages.
type Company struct {
	searcher search.Searcher
	fetcher  *fetcher
	cfg      *config.Config
}

// NewCompany creates the company website collector.
func NewCompany(searcher search.Searcher, cfg *config.Config) *Company {
	return &Company{
		searcher: searcher,
		fetcher:  &fetcher{cfg: cfg},
		cfg:      cfg,
	}
}

// Collect resolves the company website and extracts everything relevant to
// the subject from it. The website resolution never comes back empty for a
// non-empty company name: when search fails, a domain is constructed from
// the company name itself.
func (c *Company) Collect(ctx context.Context, id types.Identity) types.CompanyPayload {
	payload := types.CompanyPayload{
		Pages:          []types.DiscoveredPage{},
		PersonMentions: []types.Mention{},
		PersonProfile:  types.PersonProfile{Experiences: []types.Experience{}},
	}

	if strings.TrimSpace(id.Company) == "" {
		payload.Err = types.ErrNotFound
		return payload
	}

	payload.Website = c.findWebsite(ctx, id.Company)

	homeHTML, homeText, err := c.fetcher.page(ctx, payload.Website, fetch.CompanyPageSelectors())
	if err != nil && homeText == "" {
		if c.cfg.Verbose {
			log.Printf("company: homepage fetch failed for %s: %v", payload.Website, err)
		}
	}
	if homeText != "" {
		payload.Info = types.CompanyInfo{
			Description: fetch.Truncate(homeText, maxDescriptionLength),
			FullContent: homeText,
			HTML:        fetch.Truncate(homeHTML, maxHTMLExcerpt),
		}
	}

	payload.Pages = discoverRelatedPages(homeHTML, payload.Website)
	payload.PersonMentions = c.findPersonMentions(ctx, payload.Website, id.FullName())
	payload.PersonProfile = c.extractPersonProfile(ctx, payload.Website, homeHTML, payload.Pages, id.FullName())

	return payload
}

// findWebsite searches for the official company website and ranks candidate
// domains. Falls back to a constructed domain when nothing ranks.
func (c *Company) findWebsite(ctx context.Context, companyName string) string {
	if c.searcher != nil {
		query := fmt.Sprintf("%s official website", companyName)
		results, err := c.searcher.Search(ctx, query, 10)
		if err != nil {
			if c.cfg.Verbose {
				log.Printf("company: website search failed: %v", err)
			}
		} else {
			var domains []string
			for _, r := range results {
				if d := search.Domain(r.Link); d != "" {
					domains = append(domains, d)
				}
			}
			if best := rankCompanyDomains(domains, companyName); best != "" {
				return "https://" + best
			}
		}
	}

	clean := strings.ToLower(companyName)
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, "-", "")
	return fmt.Sprintf("https://%s.com", clean)
}

// rankCompanyDomains scores candidate domains: +3 when the domain contains
// the company name, +2 for an apex domain, +1 for a common TLD. Excluded
// domains never qualify; a zero score is not good enough.
func rankCompanyDomains(domains []string, companyName string) string {
	companyKey := strings.ToLower(companyName)
	companyKey = strings.ReplaceAll(companyKey, " ", "")
	companyKey = strings.ReplaceAll(companyKey, "-", "")

	bestScore := 0
	best := ""
	for _, d := range domains {
		dl := strings.ToLower(strings.Trim(d, "/ "))
		dl = strings.TrimPrefix(dl, "www.")
		if dl == "" || isExcludedDomain(dl) {
			continue
		}
		parts := strings.Split(dl, ".")
		if len(parts) < 2 {
			continue
		}

		score := 0
		flat := strings.NewReplacer("-", "", "_", "", ".", "").Replace(dl)
		if companyKey != "" && strings.Contains(flat, companyKey) {
			score += 3
		}
		if len(parts) == 2 {
			score += 2
		}
		switch parts[len(parts)-1] {
		case "com", "fr", "net", "org":
			score++
		}

		if score > bestScore {
			bestScore = score
			best = dl
		}
	}
	return best
}

func isExcludedDomain(domain string) bool {
	for _, ex := range excludedDomains {
		if strings.Contains(domain, ex) {
			return true
		}
	}
	return false
}

// discoverRelatedPages scans homepage links for about/leadership/team/press
// pages, absolutizing relative URLs against the site base.
func discoverRelatedPages(html, baseURL string) []types.DiscoveredPage {
	pages := []types.DiscoveredPage{}
	if html == "" {
		return pages
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return pages
	}

	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if len(pages) >= maxDiscoveredPages {
			return
		}
		href, _ := s.Attr("href")
		lower := strings.ToLower(href)
		matched := false
		for _, kw := range relatedPageKeywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = strings.TrimSuffix(baseURL, "/") + href
		}
		if !strings.HasPrefix(href, "http") || seen[href] {
			return
		}
		seen[href] = true
		pages = append(pages, types.DiscoveredPage{URL: href})
	})
	return pages
}

// findPersonMentions runs a site-restricted search for the subject's name.
func (c *Company) findPersonMentions(ctx context.Context, website, fullName string) []types.Mention {
	mentions := []types.Mention{}
	if c.searcher == nil {
		return mentions
	}
	domain := search.Domain(website)
	if domain == "" {
		return mentions
	}

	query := fmt.Sprintf("site:%s %s", domain, fullName)
	results, err := c.searcher.Search(ctx, query, c.cfg.MaxMentions)
	if err != nil {
		if c.cfg.Verbose {
			log.Printf("company: person mention search failed: %v", err)
		}
		return mentions
	}
	for _, r := range results {
		mentions = append(mentions, types.Mention{
			Title:   r.Title,
			URL:     r.Link,
			Snippet: r.Snippet,
		})
	}
	return mentions
}

// extractPersonProfile scans the discovered pages, then the homepage, for
// the subject's bio, role, photo, and dated career lines. The first page
// that mentions the subject supplies each field; later pages only fill
// what is still missing.
func (c *Company) extractPersonProfile(ctx context.Context, website, homeHTML string, pages []types.DiscoveredPage, fullName string) types.PersonProfile {
	profile := types.PersonProfile{Experiences: []types.Experience{}}

	type target struct {
		html string
		url  string
	}
	targets := make([]target, 0, len(pages)+1)
	for _, p := range pages {
		targets = append(targets, target{url: p.URL})
	}
	targets = append(targets, target{url: website, html: homeHTML})

	for _, tg := range targets {
		html := tg.html
		if html == "" {
			fetched, _, err := c.fetcher.page(ctx, tg.url, fetch.CompanyPageSelectors())
			if err != nil && fetched == "" {
				continue
			}
			html = fetched
		}

		paragraphs, err := fetch.ExtractParagraphs(html)
		if err != nil || paragraphs == "" {
			continue
		}
		if !mentionsPerson(paragraphs, fullName) {
			continue
		}

		if profile.Bio == "" {
			profile.Bio = extractBio(paragraphs, fullName)
		}
		if profile.Role == "" {
			profile.Role = extractRole(paragraphs, fullName)
		}
		if profile.ImageURL == "" {
			profile.ImageURL = extractPersonImage(html, fullName)
		}
		if len(profile.Experiences) == 0 {
			profile.Experiences = extractDatedLines(paragraphs)
		}
	}
	return profile
}

// mentionsPerson reports whether the text mentions the full name or at
// least the first name.
func mentionsPerson(text, fullName string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, strings.ToLower(fullName)) {
		return true
	}
	fields := strings.Fields(fullName)
	return len(fields) > 0 && strings.Contains(lower, strings.ToLower(fields[0]))
}

// extractBio returns the first substantial paragraph mentioning the full
// name. First match wins.
func extractBio(paragraphs, fullName string) string {
	needle := strings.ToLower(fullName)
	for _, para := range strings.Split(paragraphs, "\n\n") {
		para = strings.TrimSpace(para)
		if len(para) > 50 && strings.Contains(strings.ToLower(para), needle) {
			return para
		}
	}
	return ""
}

// extractRole returns the line following the subject's name, or a known
// executive title found anywhere on the page.
func extractRole(text, fullName string) string {
	pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(fullName) + `[^\n]*\n([^\n]{3,80})`)
	if err == nil {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	lower := strings.ToLower(text)
	for _, title := range executiveTitles {
		if strings.Contains(lower, strings.ToLower(title)) {
			return title
		}
	}
	return ""
}

// extractPersonImage returns the first image whose source names the subject.
func extractPersonImage(html, fullName string) string {
	fields := strings.Fields(strings.ToLower(fullName))
	if len(fields) == 0 {
		return ""
	}
	for _, m := range imgPattern.FindAllStringSubmatch(html, -1) {
		src := m[1]
		lower := strings.ToLower(src)
		if strings.Contains(lower, fields[0]) || strings.Contains(lower, fields[len(fields)-1]) {
			return src
		}
	}
	return ""
}

// extractDatedLines collects substantial lines carrying a year, used as raw
// career history when no structured experience exists.
func extractDatedLines(text string) []types.Experience {
	experiences := []types.Experience{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 30 && yearPattern.MatchString(line) {
			experiences = append(experiences, types.Experience{Description: line})
		}
	}
	return experiences
}
