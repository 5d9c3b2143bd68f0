package sources

import (
	"context"
	"fmt"
	"log"
	"regexp"

	"github.com/wilfried-djoum/scraperIntelligent/internal/config"
	"github.com/wilfried-djoum/scraperIntelligent/internal/search"
	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

// networkProbe defines one social network lookup: the query template and
// the pattern that recognizes a profile URL in the results.
type networkProbe struct {
	network     string
	queryFormat string
	urlPattern  *regexp.Regexp
}

var probes = []networkProbe{
	{
		network:     types.NetworkTwitter,
		queryFormat: "%s %s site:twitter.com OR site:x.com",
		urlPattern:  regexp.MustCompile(`https?://(?:www\.)?(?:twitter|x)\.com/\w+`),
	},
	{
		network:     types.NetworkGitHub,
		queryFormat: "%s %s site:github.com",
		urlPattern:  regexp.MustCompile(`https?://(?:www\.)?github\.com/[\w\-]+`),
	},
	{
		network:     types.NetworkMedium,
		queryFormat: "%s %s site:medium.com",
		urlPattern:  regexp.MustCompile(`https?://medium\.com/@?[\w\-]+`),
	},
}

// Social collects the subject's profiles on external social networks.
type Social struct {
	searcher search.Searcher
	cfg      *config.Config
}

// NewSocial creates the social network collector.
func NewSocial(searcher search.Searcher, cfg *config.Config) *Social {
	return &Social{searcher: searcher, cfg: cfg}
}

// Collect probes each network with a site-restricted search. Networks with
// no resolvable profile are simply absent from the result map.
func (c *Social) Collect(ctx context.Context, id types.Identity) types.SocialPayload {
	payload := types.SocialPayload{Profiles: map[string]types.SocialProfile{}}

	if c.searcher == nil {
		payload.Err = types.ErrUnavailable
		return payload
	}

	failures := 0
	for _, probe := range probes {
		query := fmt.Sprintf(probe.queryFormat, id.FullName(), id.Company)
		results, err := c.searcher.Search(ctx, query, 3)
		if err != nil {
			if c.cfg.Verbose {
				log.Printf("social: %s search failed: %v", probe.network, err)
			}
			failures++
			continue
		}

		for _, r := range results {
			if match := probe.urlPattern.FindString(r.Link); match != "" {
				payload.Profiles[probe.network] = types.SocialProfile{URL: match}
				break
			}
			if match := probe.urlPattern.FindString(r.Snippet); match != "" {
				payload.Profiles[probe.network] = types.SocialProfile{URL: match}
				break
			}
		}
	}

	if failures == len(probes) {
		payload.Err = types.ErrUnavailable
	}
	return payload
}
