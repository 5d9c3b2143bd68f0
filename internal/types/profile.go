package types

import "time"

// Experience is a single professional position. Company defaults to the
// identity's company when the source omits it.
type Experience struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	StartDate       string   `json:"start_date,omitempty"`
	EndDate         string   `json:"end_date,omitempty"`
	Duration        string   `json:"duration,omitempty"`
	Location        string   `json:"location,omitempty"`
	Description     string   `json:"description,omitempty"`
	KeyAchievements []string `json:"key_achievements"`
	IsCurrent       bool     `json:"is_current"`
}

// PostAnalysis is the analysis of the subject's network posts.
type PostAnalysis struct {
	Posts            []Post   `json:"posts"`
	RecurringThemes  []string `json:"recurring_themes"`
	OverallTone      string   `json:"overall_tone,omitempty"`
	PostingFrequency string   `json:"posting_frequency,omitempty"`
}

// ContactInfo merges contact fields across sources. Each sub-field is owned
// by exactly one source, so the merge is take-first-non-null.
type ContactInfo struct {
	LinkedInURL string `json:"linkedin_url,omitempty"`
	Website     string `json:"website,omitempty"`
	Twitter     string `json:"twitter,omitempty"`
	GitHub      string `json:"github,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Reputation is the narrative reputation analysis of the profile.
type Reputation struct {
	Summary     string   `json:"summary"`
	Strengths   []string `json:"strengths"`
	WeakSignals []string `json:"weak_signals"`
}

// ReliabilityScore is the result of the reliability scoring pass.
type ReliabilityScore struct {
	Score         int            `json:"score"`
	Justification string         `json:"justification"`
	Factors       []string       `json:"factors"`
	Breakdown     map[string]int `json:"breakdown"`
}

// EnrichedProfile is the final consolidated profile record.
type EnrichedProfile struct {
	FirstName           string           `json:"first_name"`
	LastName            string           `json:"last_name"`
	Company             string           `json:"company"`
	Headline            string           `json:"headline"`
	CurrentRole         string           `json:"current_role"`
	Summary             string           `json:"summary"`
	Experiences         []Experience     `json:"experiences"`
	Education           []string         `json:"education"`
	Skills              []string         `json:"skills"`
	Publications        []string         `json:"publications"`
	SpeakingEngagements []string         `json:"speaking_engagements"`
	PostAnalysis        PostAnalysis     `json:"linkedin_analysis"`
	ContactInfo         ContactInfo      `json:"contact_info"`
	Reputation          Reputation       `json:"reputation"`
	Reliability         ReliabilityScore `json:"reliability"`
	SourcesUsed         []Source         `json:"sources_used"`
	ScrapedAt           time.Time        `json:"scraped_at"`
}

// Normalize replaces nil list fields with empty slices so the JSON output
// never carries null lists.
func (p *EnrichedProfile) Normalize() {
	if p.Experiences == nil {
		p.Experiences = []Experience{}
	}
	if p.Education == nil {
		p.Education = []string{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Publications == nil {
		p.Publications = []string{}
	}
	if p.SpeakingEngagements == nil {
		p.SpeakingEngagements = []string{}
	}
	if p.PostAnalysis.Posts == nil {
		p.PostAnalysis.Posts = []Post{}
	}
	if p.PostAnalysis.RecurringThemes == nil {
		p.PostAnalysis.RecurringThemes = []string{}
	}
	if p.Reputation.Strengths == nil {
		p.Reputation.Strengths = []string{}
	}
	if p.Reputation.WeakSignals == nil {
		p.Reputation.WeakSignals = []string{}
	}
	if p.Reliability.Factors == nil {
		p.Reliability.Factors = []string{}
	}
	if p.Reliability.Breakdown == nil {
		p.Reliability.Breakdown = map[string]int{}
	}
	if p.SourcesUsed == nil {
		p.SourcesUsed = []Source{}
	}
}

// DebugInfo accompanies every profiling response.
type DebugInfo struct {
	RequestID      string   `json:"request_id"`
	SourcesUsed    []Source `json:"sources_used"`
	ProcessingTime string   `json:"processing_time"`
}

// ProfileResponse is the full response for one profiling request.
type ProfileResponse struct {
	Debug   DebugInfo       `json:"debug"`
	Profile EnrichedProfile `json:"profile"`
}
