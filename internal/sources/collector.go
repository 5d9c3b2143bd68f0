// Package sources implements the four data collectors: professional network,
// company website, news, and social networks. Collectors never return
// errors; any failure is recorded as an error kind on the payload so a
// single unreachable source degrades the profile instead of failing the
// request.
package sources

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/wilfried-djoum/scraperIntelligent/internal/config"
	"github.com/wilfried-djoum/scraperIntelligent/internal/fetch"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	dashRuns     = regexp.MustCompile(`-+`)
)

// normalizeSlug lowercases a name, strips diacritics, and collapses anything
// non-alphanumeric into single dashes, the way profile URL slugs are formed.
func normalizeSlug(s string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err == nil {
		s = stripped
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// fetcher wraps the shared page retrieval used by every collector: plain
// HTTP first, a headless browser only when the page yields too little text
// and browser escalation is enabled.
type fetcher struct {
	cfg *config.Config
}

// page returns the raw HTML and the extracted main text of a URL, or an
// error when the page could not be retrieved at all.
func (f *fetcher) page(ctx context.Context, url string, selectors []string) (html, text string, err error) {
	opts := &fetch.Options{
		Timeout:   f.cfg.FetchTimeout,
		UserAgent: fetch.DefaultUserAgent,
	}

	result, err := fetch.URL(ctx, url, opts)
	if err != nil && result == nil {
		return "", "", err
	}
	if result != nil {
		html = result.HTML
		text, _ = fetch.ExtractMainText(html, selectors)
	}

	if f.cfg.UseBrowser && fetch.ShouldUseBrowser(text) {
		rendered, berr := fetch.WithBrowser(ctx, url, config.DefaultBrowserTimeout, f.cfg.Verbose)
		if berr == nil && rendered != "" {
			html = rendered
			if extracted, xerr := fetch.ExtractMainText(html, selectors); xerr == nil {
				text = extracted
			}
		}
	}

	if err != nil && text == "" {
		return html, "", err
	}
	return html, text, nil
}
