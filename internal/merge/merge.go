// Package merge consolidates the four source payloads and the enrichment
// output into a single set of profile fields. Every logical field follows
// an explicit precedence ladder; identical inputs always produce identical
// merged output.
package merge

import (
	"context"
	"fmt"
	"strings"

	"github.com/wilfried-djoum/scraperIntelligent/internal/enrich"
	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

// maxSummaryLength bounds a summary lifted directly from a company page
// paragraph.
const maxSummaryLength = 400

// roleUnspecified is the current-role placeholder when no source and no
// enrichment supplied one.
const roleUnspecified = "Not specified"

// speakingKeywords mark a company-site mention as a talk or conference
// appearance.
var speakingKeywords = []string{"keynote", "conférence", "conference", "talk", "speech"}

// Enricher is the subset of enrichment operations the merger invokes.
type Enricher interface {
	Structure(ctx context.Context, content string) enrich.StructuredFields
	KnowledgeFallback(ctx context.Context, fullName, company string) enrich.KnowledgeProfile
	SummarizePosts(ctx context.Context, posts []types.Post) *enrich.PostsSummary
}

// Result is the merged field set handed to the scorer and assembler.
type Result struct {
	SourcesUsed  []types.Source
	Headline     string
	Summary      string
	CurrentRole  string
	Experiences  []types.Experience
	Education    []string
	Skills       []string
	Publications []string
	Speaking     []string
	PostAnalysis types.PostAnalysis
	Contact      types.ContactInfo

	// UsedKnowledge is set when the knowledge fallback answered, whatever
	// it recalled; KnowledgeConfidence and KnowledgeWarning carry its
	// confidence tag and staleness warning for the scorer.
	UsedKnowledge       bool
	KnowledgeConfidence enrich.Confidence
	KnowledgeWarning    string
}

// IdentifySources returns the ordered subset of sources whose canonical
// marker field is present, in the fixed priority order.
func IdentifySources(p types.Payloads) []types.Source {
	sources := []types.Source{}
	for _, s := range types.AllSources() {
		counted := false
		switch s {
		case types.SourceLinkedIn:
			counted = p.LinkedIn.Counted()
		case types.SourceCompany:
			counted = p.Company.Counted()
		case types.SourceNews:
			counted = p.News.Counted()
		case types.SourceSocial:
			counted = p.Social.Counted()
		}
		if counted {
			sources = append(sources, s)
		}
	}
	return sources
}

// Merge evaluates every field ladder over the payloads, invoking the
// enrichment gateway for structuring and knowledge fallback only when the
// direct extraction left gaps.
func Merge(ctx context.Context, id types.Identity, payloads types.Payloads, enricher Enricher) Result {
	result := Result{
		SourcesUsed:         IdentifySources(payloads),
		Experiences:         []types.Experience{},
		Education:           []string{},
		Skills:              []string{},
		Publications:        []string{},
		Speaking:            []string{},
		KnowledgeConfidence: enrich.ConfidenceNone,
	}

	headline, summary := extractHeadlineSummary(id, payloads)

	var structured enrich.StructuredFields
	var knowledge enrich.KnowledgeProfile
	knowledge.Confidence = enrich.ConfidenceNone

	if headline == "" || summary == "" {
		structured = enricher.Structure(ctx, payloads.Company.Info.FullContent)
	}
	if headline == "" && summary == "" {
		knowledge = enricher.KnowledgeFallback(ctx, id.FullName(), id.Company)
		// Any answered fallback marks the profile as knowledge-derived,
		// even one that recalled nothing. Only a failed call is exempt.
		if knowledge.Confidence != enrich.ConfidenceNone {
			result.UsedKnowledge = true
			result.KnowledgeConfidence = knowledge.Confidence
			result.KnowledgeWarning = knowledge.Warning
		}
	}

	result.Headline = firstNonEmpty(headline, structured.Headline, knowledge.Headline,
		fmt.Sprintf("Professional at %s", id.Company))
	result.Summary = firstNonEmpty(summary, structured.Summary, knowledge.Summary,
		fmt.Sprintf("%s %s is a professional at %s.", id.FirstName, id.LastName, id.Company))
	result.CurrentRole = firstNonEmpty(payloads.Company.PersonProfile.Role, knowledge.CurrentRole, roleUnspecified)

	result.Experiences = mergeExperiences(id, payloads.Company, structured, knowledge)
	result.Education = firstNonEmptyList(structured.Education, knowledge.Education)
	result.Skills = firstNonEmptyList(structured.Skills, knowledge.Skills)
	result.Publications = extractPublications(payloads.News)
	result.Speaking = extractSpeaking(payloads.Company)
	result.PostAnalysis = analyzePosts(ctx, payloads.LinkedIn, enricher)
	result.Contact = mergeContact(payloads)

	return result
}

// extractHeadlineSummary runs the direct-extraction steps of the headline
// and summary ladders: a company paragraph naming the subject, then the
// company person-profile bio, then the network about text.
func extractHeadlineSummary(id types.Identity, payloads types.Payloads) (headline, summary string) {
	fullName := strings.ToLower(id.FullName())

	if content := payloads.Company.Info.FullContent; content != "" {
		for _, para := range strings.Split(content, "\n\n") {
			if strings.Contains(strings.ToLower(para), fullName) {
				summary = truncate(strings.TrimSpace(para), maxSummaryLength)
				break
			}
		}
	}
	if summary == "" {
		summary = payloads.Company.PersonProfile.Bio
	}
	if summary == "" {
		summary = payloads.LinkedIn.About
	}
	return headline, summary
}

// mergeExperiences concatenates experiences in source priority order,
// without deduplication: company person profile first, then structured
// content. The knowledge fallback only fills a completely empty list.
func mergeExperiences(id types.Identity, company types.CompanyPayload, structured enrich.StructuredFields, knowledge enrich.KnowledgeProfile) []types.Experience {
	experiences := []types.Experience{}

	for _, exp := range company.PersonProfile.Experiences {
		experiences = append(experiences, types.Experience{
			Title:       exp.Title,
			Company:     id.Company,
			Description: exp.Description,
		})
	}

	for _, exp := range structured.Experiences {
		experiences = append(experiences, types.Experience{
			Title:       exp.Title,
			Company:     firstNonEmpty(exp.Company, id.Company),
			StartDate:   exp.StartDate,
			EndDate:     exp.EndDate,
			Location:    exp.Location,
			Description: exp.Description,
		})
	}

	if len(experiences) == 0 {
		for _, exp := range knowledge.Experiences {
			experiences = append(experiences, types.Experience{
				Title:       exp.Title,
				Company:     firstNonEmpty(exp.Company, id.Company),
				StartDate:   exp.StartDate,
				EndDate:     exp.EndDate,
				Description: exp.Description,
				IsCurrent:   exp.IsCurrent,
			})
		}
	}
	return experiences
}

// extractPublications derives the publication list from news articles and
// professional media mentions.
func extractPublications(news types.NewsPayload) []string {
	publications := []string{}
	for _, art := range news.Articles {
		if art.Title != "" && art.URL != "" {
			publications = append(publications, fmt.Sprintf("%s - %s", art.Title, art.URL))
		}
	}
	for _, pm := range news.ProMentions {
		if pm.Outlet != "" {
			publications = append(publications, fmt.Sprintf("Mention - %s", pm.Outlet))
		}
	}
	return publications
}

// extractSpeaking filters company-site mentions whose title indicates a
// talk or conference appearance.
func extractSpeaking(company types.CompanyPayload) []string {
	speaking := []string{}
	for _, m := range company.PersonMentions {
		lower := strings.ToLower(m.Title)
		for _, kw := range speakingKeywords {
			if strings.Contains(lower, kw) {
				speaking = append(speaking, fmt.Sprintf("%s - %s", m.Title, m.URL))
				break
			}
		}
	}
	return speaking
}

// analyzePosts summarizes the collected posts. No posts means an empty
// analysis, not a gateway call.
func analyzePosts(ctx context.Context, linkedin types.LinkedInPayload, enricher Enricher) types.PostAnalysis {
	analysis := types.PostAnalysis{
		Posts:           linkedin.Posts,
		RecurringThemes: []string{},
	}
	if analysis.Posts == nil {
		analysis.Posts = []types.Post{}
	}
	if len(analysis.Posts) == 0 {
		return analysis
	}

	if summary := enricher.SummarizePosts(ctx, analysis.Posts); summary != nil {
		analysis.RecurringThemes = summary.RecurringThemes
		analysis.OverallTone = summary.OverallTone
		analysis.PostingFrequency = summary.PostingFrequency
	}
	return analysis
}

// mergeContact merges contact fields across sources. Each sub-field is
// owned by exactly one source, so this never has to choose.
func mergeContact(payloads types.Payloads) types.ContactInfo {
	return types.ContactInfo{
		LinkedInURL: payloads.LinkedIn.URL,
		Website:     payloads.Company.Website,
		Twitter:     payloads.Social.Profiles[types.NetworkTwitter].URL,
		GitHub:      payloads.Social.Profiles[types.NetworkGitHub].URL,
		ImageURL:    payloads.Company.PersonProfile.ImageURL,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptyList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return []string{}
}

// truncate cuts s to at most n runes, never splitting a multi-byte character.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
