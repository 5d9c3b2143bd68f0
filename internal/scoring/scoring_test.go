package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wilfried-djoum/scraperIntelligent/internal/enrich"
	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

func TestCalculate_EmptyInput(t *testing.T) {
	result := Calculate(Input{})

	assert.Zero(t, result.Score)
	assert.Empty(t, result.Factors)
	assert.NotNil(t, result.Factors)
	assert.Empty(t, result.Breakdown)
}

func TestCalculate_TemplatesOnly(t *testing.T) {
	// All collectors empty: only the templated headline and the short
	// templated summary score.
	result := Calculate(Input{
		Headline: "Professional at Acme Corp",
		Summary:  "Ada Lovelace is a professional at Acme Corp.",
	})

	assert.Equal(t, 13, result.Score)
	assert.Equal(t, 8, result.Breakdown["headline"])
	assert.Equal(t, 5, result.Breakdown["summary"])
	assert.Less(t, result.Score, 40)
}

func TestCalculate_SingleSourceWithBioAndExperiences(t *testing.T) {
	longSummary := "Ada Lovelace has led the engineering organization at Acme Corp for seven years, after a decade spent building industrial control systems."

	result := Calculate(Input{
		SourcesUsed: []types.Source{types.SourceCompany},
		Headline:    "Head of Engineering at Acme Corp",
		Summary:     longSummary,
		Experiences: []types.Experience{{Title: "Head of Engineering"}, {Title: "Engineer"}},
	})

	// 10 (source) + 8 (headline) + 10 (long summary) + 8 (2 experiences)
	assert.Equal(t, 36, result.Score)
	assert.Equal(t, 10, result.Breakdown["sources"])
	assert.Equal(t, 8, result.Breakdown["experiences"])
}

func TestCalculate_ThreeSourceCoverage(t *testing.T) {
	result := Calculate(Input{
		SourcesUsed: []types.Source{types.SourceLinkedIn, types.SourceCompany, types.SourceSocial},
	})

	assert.Equal(t, 30, result.Breakdown["sources"])
	assert.Equal(t, 30, result.Score)
}

func TestCalculate_CategoryCaps(t *testing.T) {
	experiences := make([]types.Experience, 10)
	publications := make([]string, 10)
	posts := make([]types.Post, 10)
	education := make([]string, 10)

	result := Calculate(Input{
		SourcesUsed:  []types.Source{types.SourceLinkedIn, types.SourceCompany, types.SourceNews, types.SourceSocial},
		Experiences:  experiences,
		Publications: publications,
		Posts:        posts,
		Education:    education,
		SocialProfiles: map[string]string{
			"twitter": "https://x.com/a",
			"github":  "https://github.com/a",
			"medium":  "https://medium.com/@a",
		},
	})

	assert.Equal(t, 40, result.Breakdown["sources"])
	assert.Equal(t, 12, result.Breakdown["experiences"])
	assert.Equal(t, 8, result.Breakdown["publications"])
	assert.Equal(t, 8, result.Breakdown["posts"])
	assert.Equal(t, 6, result.Breakdown["education"])
	assert.Equal(t, 4, result.Breakdown["social"])
}

func TestCalculate_SkillsThreshold(t *testing.T) {
	below := Calculate(Input{Skills: []string{"Go", "SQL"}})
	assert.Zero(t, below.Breakdown["skills"])

	at := Calculate(Input{Skills: []string{"Go", "SQL", "Kubernetes"}})
	assert.Equal(t, 4, at.Breakdown["skills"])
}

func TestCalculate_EmptySocialURLsDoNotCount(t *testing.T) {
	result := Calculate(Input{SocialProfiles: map[string]string{"twitter": "", "github": ""}})

	assert.Zero(t, result.Score)
}

func TestCalculate_ScoreClampedTo100(t *testing.T) {
	result := Calculate(Input{
		SourcesUsed:  []types.Source{types.SourceLinkedIn, types.SourceCompany, types.SourceNews, types.SourceSocial},
		Headline:     "Head of Engineering",
		Summary:      string(make([]byte, 200)),
		Experiences:  make([]types.Experience, 5),
		Publications: make([]string, 5),
		Posts:        make([]types.Post, 5),
		Education:    make([]string, 5),
		Skills:       []string{"a", "b", "c"},
		SocialProfiles: map[string]string{
			"twitter": "https://x.com/a",
			"github":  "https://github.com/a",
		},
	})

	assert.LessOrEqual(t, result.Score, 100)
	assert.GreaterOrEqual(t, result.Score, 0)
}

func TestCalculate_LowConfidencePenalty(t *testing.T) {
	in := Input{
		SourcesUsed:         []types.Source{types.SourceCompany},
		Headline:            "Professional at Acme Corp",
		Summary:             "Ada Lovelace is a professional at Acme Corp.",
		UsedKnowledge:       true,
		KnowledgeConfidence: enrich.ConfidenceLow,
	}

	result := Calculate(in)

	// 10 + 8 + 5 = 23, minus 10 would be 13, floored at 20.
	assert.Equal(t, 20, result.Score)
	assert.Contains(t, result.Factors, knowledgeFactor)
}

func TestCalculate_LowConfidencePenaltyWithoutSources(t *testing.T) {
	// Template-only coverage: headline 8 + partial summary 5 = 13. The
	// low-confidence penalty floors the result at 20 rather than lowering it.
	in := Input{
		Headline:            "Professional at Acme Corp",
		Summary:             "Ada Lovelace is a professional at Acme Corp.",
		UsedKnowledge:       true,
		KnowledgeConfidence: enrich.ConfidenceLow,
	}

	result := Calculate(in)

	assert.Equal(t, 20, result.Score)
}

func TestCalculate_KnowledgeWarningUsedAsFactor(t *testing.T) {
	result := Calculate(Input{
		Headline:            "Professional at Acme Corp",
		UsedKnowledge:       true,
		KnowledgeConfidence: enrich.ConfidenceMedium,
		KnowledgeWarning:    "Information from model knowledge, may be outdated or incomplete",
	})

	assert.Contains(t, result.Factors, "Information from model knowledge, may be outdated or incomplete")
	assert.NotContains(t, result.Factors, knowledgeFactor)
}

func TestCalculate_HighConfidenceKnowledgeNoPenalty(t *testing.T) {
	result := Calculate(Input{
		Headline:            "Professional at Acme Corp",
		UsedKnowledge:       true,
		KnowledgeConfidence: enrich.ConfidenceHigh,
	})

	assert.Equal(t, 8, result.Score)
	assert.Contains(t, result.Factors, knowledgeFactor)
}

func TestCalculate_Deterministic(t *testing.T) {
	in := Input{
		SourcesUsed: []types.Source{types.SourceLinkedIn, types.SourceNews},
		Headline:    "CTO at Acme Corp",
		Summary:     "A summary.",
		Skills:      []string{"Go", "SQL", "Kubernetes"},
	}

	assert.Equal(t, Calculate(in), Calculate(in))
}

func TestBand(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "Excellent - Highly reliable profile with multiple sources and complete data"},
		{85, "Excellent - Highly reliable profile with multiple sources and complete data"},
		{84, "Good - Reliable profile with verified information"},
		{70, "Good - Reliable profile with verified information"},
		{69, "Medium - Partially verified profile, limited data"},
		{50, "Medium - Partially verified profile, limited data"},
		{49, "Weak - Incomplete profile with few sources"},
		{30, "Weak - Incomplete profile with few sources"},
		{29, "Very weak - Insufficient information for assessment"},
		{0, "Very weak - Insufficient information for assessment"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Band(tt.score), "score %d", tt.score)
	}
}

func TestBaseJustification(t *testing.T) {
	got := BaseJustification(72)

	assert.Equal(t, "Reliability score: 72/100. Good - Reliable profile with verified information", got)
}
