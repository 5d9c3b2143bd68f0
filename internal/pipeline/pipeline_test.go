package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilfried-djoum/scraperIntelligent/internal/config"
	"github.com/wilfried-djoum/scraperIntelligent/internal/enrich"
	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

type stubCollectors struct {
	linkedin types.LinkedInPayload
	company  types.CompanyPayload
	news     types.NewsPayload
	social   types.SocialPayload
}

type stubLinkedIn struct{ payload types.LinkedInPayload }
type stubCompany struct{ payload types.CompanyPayload }
type stubNews struct{ payload types.NewsPayload }
type stubSocial struct{ payload types.SocialPayload }

func (s stubLinkedIn) Collect(ctx context.Context, id types.Identity) types.LinkedInPayload {
	return s.payload
}
func (s stubCompany) Collect(ctx context.Context, id types.Identity) types.CompanyPayload {
	return s.payload
}
func (s stubNews) Collect(ctx context.Context, id types.Identity) types.NewsPayload {
	return s.payload
}
func (s stubSocial) Collect(ctx context.Context, id types.Identity) types.SocialPayload {
	return s.payload
}

// stubEnricher degrades every operation, like a gateway whose model is
// unreachable, unless a canned result is set.
type stubEnricher struct {
	synthesis *enrich.Synthesis
	knowledge *enrich.KnowledgeProfile
}

func (s *stubEnricher) Structure(ctx context.Context, content string) enrich.StructuredFields {
	return enrich.StructuredFields{
		Skills:      []string{},
		Experiences: []enrich.RawExperience{},
		Education:   []string{},
	}
}

func (s *stubEnricher) KnowledgeFallback(ctx context.Context, fullName, company string) enrich.KnowledgeProfile {
	if s.knowledge != nil {
		return *s.knowledge
	}
	return enrich.KnowledgeProfile{
		Experiences: []enrich.RawExperience{},
		Education:   []string{},
		Skills:      []string{},
		Confidence:  enrich.ConfidenceNone,
	}
}

func (s *stubEnricher) SummarizePosts(ctx context.Context, posts []types.Post) *enrich.PostsSummary {
	return nil
}

func (s *stubEnricher) Synthesize(ctx context.Context, in enrich.SynthesisInput) *enrich.Synthesis {
	return s.synthesis
}

func (s *stubEnricher) Justify(ctx context.Context, in enrich.JustifyInput) string {
	return in.Fallback
}

func newOrchestrator(c stubCollectors, enricher Enricher) *Orchestrator {
	return &Orchestrator{
		LinkedIn: stubLinkedIn{c.linkedin},
		Company:  stubCompany{c.company},
		News:     stubNews{c.news},
		Social:   stubSocial{c.social},
		Enricher: enricher,
		Config:   config.Default(),
	}
}

func TestCreateProfile_InvalidIdentity(t *testing.T) {
	orch := newOrchestrator(stubCollectors{}, &stubEnricher{})

	_, err := orch.CreateProfile(context.Background(), types.Identity{FirstName: "Ada"})

	assert.Error(t, err)
}

func TestCreateProfile_AllSourcesEmpty(t *testing.T) {
	orch := newOrchestrator(stubCollectors{}, &stubEnricher{})
	id := types.Identity{FirstName: "Ada", LastName: "Lovelace", Company: "Acme Corp"}

	resp, err := orch.CreateProfile(context.Background(), id)

	require.NoError(t, err)
	assert.Empty(t, resp.Debug.SourcesUsed)
	assert.NotEmpty(t, resp.Debug.RequestID)
	assert.Regexp(t, `^\d+\.\d\ds$`, resp.Debug.ProcessingTime)

	profile := resp.Profile
	assert.Equal(t, "Professional at Acme Corp", profile.Headline)
	assert.Equal(t, "Ada Lovelace is a professional at Acme Corp.", profile.Summary)
	assert.Equal(t, "Not specified", profile.CurrentRole)
	assert.Less(t, profile.Reliability.Score, 40)
	assert.GreaterOrEqual(t, profile.Reliability.Score, 0)
	assert.Contains(t, profile.Reliability.Justification, "Reliability score:")

	// Every list field is present, never null.
	assert.NotNil(t, profile.Experiences)
	assert.NotNil(t, profile.Education)
	assert.NotNil(t, profile.Skills)
	assert.NotNil(t, profile.Publications)
	assert.NotNil(t, profile.SpeakingEngagements)
	assert.NotNil(t, profile.PostAnalysis.Posts)
	assert.NotNil(t, profile.Reputation.Strengths)
	assert.NotNil(t, profile.SourcesUsed)
}

func TestCreateProfile_LowConfidenceKnowledgeFloorsScore(t *testing.T) {
	// The fallback answered with low confidence but recalled nothing; the
	// penalty and the staleness factor still apply.
	enricher := &stubEnricher{
		knowledge: &enrich.KnowledgeProfile{
			Experiences: []enrich.RawExperience{},
			Education:   []string{},
			Skills:      []string{},
			Confidence:  enrich.ConfidenceLow,
			Source:      "llm_knowledge_base",
			Warning:     "Information from model knowledge, may be outdated or incomplete",
		},
	}
	orch := newOrchestrator(stubCollectors{}, enricher)
	id := types.Identity{FirstName: "Ada", LastName: "Lovelace", Company: "Acme Corp"}

	resp, err := orch.CreateProfile(context.Background(), id)

	require.NoError(t, err)
	// Templates alone score 13 (headline 8 + partial summary 5); minus 10
	// would be 3, floored at 20.
	assert.Equal(t, 20, resp.Profile.Reliability.Score)
	assert.Contains(t, resp.Profile.Reliability.Factors,
		"Information from model knowledge, may be outdated or incomplete")
}

func TestCreateProfile_CompanyOnly(t *testing.T) {
	collectors := stubCollectors{
		company: types.CompanyPayload{
			Website: "https://acmecorp.com",
			PersonProfile: types.PersonProfile{
				Bio:  "Ada Lovelace has led the engineering organization at Acme Corp for seven years, shipping analytical machinery worldwide.",
				Role: "Head of Engineering",
				Experiences: []types.Experience{
					{Description: "Joined Acme Corp in 2015."},
					{Description: "Promoted to Head of Engineering in 2019."},
				},
			},
		},
	}
	orch := newOrchestrator(collectors, &stubEnricher{})
	id := types.Identity{FirstName: "Ada", LastName: "Lovelace", Company: "Acme Corp"}

	resp, err := orch.CreateProfile(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, []types.Source{types.SourceCompany}, resp.Debug.SourcesUsed)
	assert.Equal(t, "Head of Engineering", resp.Profile.CurrentRole)
	assert.Len(t, resp.Profile.Experiences, 2)
	// 10 (source) + 8 (templated headline) + 10 (long bio) + 8 (2 experiences)
	assert.Equal(t, 36, resp.Profile.Reliability.Score)
}

func TestCreateProfile_ThreeSourceCoverage(t *testing.T) {
	collectors := stubCollectors{
		linkedin: types.LinkedInPayload{URL: "https://www.linkedin.com/in/ada-lovelace/"},
		company:  types.CompanyPayload{Website: "https://acmecorp.com"},
		social: types.SocialPayload{Profiles: map[string]types.SocialProfile{
			types.NetworkGitHub: {URL: "https://github.com/ada"},
		}},
	}
	orch := newOrchestrator(collectors, &stubEnricher{})
	id := types.Identity{FirstName: "Ada", LastName: "Lovelace", Company: "Acme Corp"}

	resp, err := orch.CreateProfile(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, []types.Source{types.SourceLinkedIn, types.SourceCompany, types.SourceSocial},
		resp.Debug.SourcesUsed)
	assert.Equal(t, 30, resp.Profile.Reliability.Breakdown["sources"])
}

func TestCreateProfile_SynthesisFillsReputation(t *testing.T) {
	enricher := &stubEnricher{synthesis: &enrich.Synthesis{
		Synthesis:                "A well-documented engineering leader.",
		Strengths:                []string{"Corroborated by company site"},
		WeakSignals:              []string{"No recent press"},
		ReliabilityJustification: "Based on a single verified source.",
	}}
	orch := newOrchestrator(stubCollectors{
		company: types.CompanyPayload{Website: "https://acmecorp.com"},
	}, enricher)
	id := types.Identity{FirstName: "Ada", LastName: "Lovelace", Company: "Acme Corp"}

	resp, err := orch.CreateProfile(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "A well-documented engineering leader.", resp.Profile.Reputation.Summary)
	assert.Equal(t, []string{"Corroborated by company site"}, resp.Profile.Reputation.Strengths)
	// The justification from synthesis replaces the deterministic fallback.
	assert.Equal(t, "Based on a single verified source.", resp.Profile.Reliability.Justification)
}

func TestCreateProfile_Idempotent(t *testing.T) {
	collectors := stubCollectors{
		company: types.CompanyPayload{
			Website: "https://acmecorp.com",
			Info:    types.CompanyInfo{FullContent: "Ada Lovelace leads engineering at Acme Corp."},
		},
		news: types.NewsPayload{
			Articles:      []types.Article{{Title: "Profile", URL: "https://news.example.com/p"}},
			TotalMentions: 1,
		},
	}
	id := types.Identity{FirstName: "Ada", LastName: "Lovelace", Company: "Acme Corp"}

	first, err := newOrchestrator(collectors, &stubEnricher{}).CreateProfile(context.Background(), id)
	require.NoError(t, err)
	second, err := newOrchestrator(collectors, &stubEnricher{}).CreateProfile(context.Background(), id)
	require.NoError(t, err)

	// Everything except timestamps and request identifiers is identical.
	firstProfile, secondProfile := first.Profile, second.Profile
	firstProfile.ScrapedAt = secondProfile.ScrapedAt
	assert.Equal(t, firstProfile, secondProfile)
}

func TestCreateProfile_ProgressPhases(t *testing.T) {
	var phases []string
	orch := newOrchestrator(stubCollectors{}, &stubEnricher{})
	orch.OnProgress = func(event ProgressEvent) {
		phases = append(phases, event.Phase)
	}
	id := types.Identity{FirstName: "Ada", LastName: "Lovelace", Company: "Acme Corp"}

	_, err := orch.CreateProfile(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, []string{PhaseCollected, PhaseMerged, PhaseScored, PhaseSynthesized, PhaseAssembled}, phases)
}
