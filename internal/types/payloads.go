package types

// Source identifies one of the four external data sources.
type Source string

// Source constants, in fixed priority order.
const (
	SourceLinkedIn Source = "linkedin"
	SourceCompany  Source = "company"
	SourceNews     Source = "news"
	SourceSocial   Source = "social"
)

// AllSources returns the sources in the fixed priority order used for
// source identification and display.
func AllSources() []Source {
	return []Source{SourceLinkedIn, SourceCompany, SourceNews, SourceSocial}
}

// ErrorKind classifies a non-fatal collector or enrichment failure carried on
// a payload envelope. An empty kind means the call succeeded (possibly with
// no data found).
type ErrorKind string

// ErrorKind constants.
const (
	ErrNone        ErrorKind = ""
	ErrUnavailable ErrorKind = "source_unavailable"
	ErrNotFound    ErrorKind = "not_found"
)

// Post is a single social/professional-network post.
type Post struct {
	Content string `json:"content"`
	Date    string `json:"date,omitempty"`
	URL     string `json:"url,omitempty"`
}

// LinkedInPayload holds everything collected from the professional-network
// source. URL is the canonical marker field: the source counts as evidence
// only when a profile URL was resolved.
type LinkedInPayload struct {
	URL   string    `json:"url"`
	About string    `json:"about"`
	Posts []Post    `json:"posts"`
	Err   ErrorKind `json:"-"`
}

// Counted reports whether the payload's canonical marker is present.
func (p LinkedInPayload) Counted() bool { return p.URL != "" }

// CompanyInfo holds general content scraped from the company homepage.
type CompanyInfo struct {
	Description string `json:"description"`
	FullContent string `json:"full_content"`
	HTML        string `json:"html"`
}

// DiscoveredPage is a company-site page found by the related-page discovery
// (about, leadership, team, press, media).
type DiscoveredPage struct {
	URL string `json:"url"`
}

// Mention is a reference to the subject found on the company site.
type Mention struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// PersonProfile is the subject's profile as extracted from company pages.
type PersonProfile struct {
	Bio         string       `json:"bio"`
	Role        string       `json:"role"`
	ImageURL    string       `json:"image_url"`
	Experiences []Experience `json:"experiences"`
}

// CompanyPayload holds everything collected from the company-website source.
// Website is the canonical marker field.
type CompanyPayload struct {
	Website        string           `json:"company_website"`
	Info           CompanyInfo      `json:"company_info"`
	Pages          []DiscoveredPage `json:"pages"`
	PersonMentions []Mention        `json:"person_mentions"`
	PersonProfile  PersonProfile    `json:"person_profile"`
	Err            ErrorKind        `json:"-"`
}

// Counted reports whether the payload's canonical marker is present.
func (p CompanyPayload) Counted() bool { return p.Website != "" }

// Article is a news article mentioning the subject.
type Article struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// ProMention is a mention found on a professional media outlet.
type ProMention struct {
	Outlet  string `json:"source"`
	Found   bool   `json:"found"`
	Snippet string `json:"snippet"`
}

// NewsPayload holds everything collected from the news source. The canonical
// marker is a non-zero TotalMentions count.
type NewsPayload struct {
	Articles      []Article    `json:"news_articles"`
	ProMentions   []ProMention `json:"professional_mentions"`
	TotalMentions int          `json:"total_mentions"`
	Err           ErrorKind    `json:"-"`
}

// Counted reports whether the payload's canonical marker is present.
func (p NewsPayload) Counted() bool { return p.TotalMentions > 0 }

// SocialProfile is a resolved profile on an external social network.
type SocialProfile struct {
	URL string `json:"url"`
}

// Social network keys used in SocialPayload.Profiles.
const (
	NetworkTwitter = "twitter"
	NetworkGitHub  = "github"
	NetworkMedium  = "medium"
)

// SocialPayload holds everything collected from the social-network source.
// The canonical marker is at least one resolved profile URL.
type SocialPayload struct {
	Profiles map[string]SocialProfile `json:"profiles"`
	Err      ErrorKind                `json:"-"`
}

// Counted reports whether the payload's canonical marker is present.
func (p SocialPayload) Counted() bool {
	for _, prof := range p.Profiles {
		if prof.URL != "" {
			return true
		}
	}
	return false
}

// Payloads groups one payload per collector for a single request.
type Payloads struct {
	LinkedIn LinkedInPayload
	Company  CompanyPayload
	News     NewsPayload
	Social   SocialPayload
}
