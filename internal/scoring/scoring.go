// Package scoring computes the reliability score of a merged profile.
// Scoring is a pure function of field coverage: no I/O, no clock, no
// randomness. Identical inputs always yield identical scores.
package scoring

import (
	"fmt"
	"strings"

	"github.com/wilfried-djoum/scraperIntelligent/internal/enrich"
	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

// Point values and caps per scoring category.
const (
	pointsPerSource   = 10
	sourcesCap        = 40
	headlinePoints    = 8
	summaryFullPoints = 10
	summaryPartPoints = 5
	summaryFullLength = 100
	pointsPerExp      = 4
	experiencesCap    = 12
	pointsPerPub      = 2
	publicationsCap   = 8
	pointsPerPost     = 2
	postsCap          = 8
	pointsPerEdu      = 3
	educationCap      = 6
	skillsPoints      = 4
	skillsMinCount    = 3
	pointsPerSocial   = 2
	socialCap         = 4

	lowConfidencePenalty = 10
	penaltyFloor         = 20
)

// knowledgeFactor is appended when the profile relied on the knowledge
// fallback rather than live sources and no gateway warning was carried.
const knowledgeFactor = "Data enriched from model knowledge base (may be outdated)"

// Input carries the merged-field coverage evaluated by the scorer.
type Input struct {
	SourcesUsed  []types.Source
	Headline     string
	Summary      string
	Experiences  []types.Experience
	Publications []string
	Posts        []types.Post
	Education    []string
	Skills       []string
	// SocialProfiles maps network name to profile URL; empty URLs do not count.
	SocialProfiles map[string]string

	UsedKnowledge       bool
	KnowledgeConfidence enrich.Confidence
	// KnowledgeWarning is the gateway-supplied staleness warning; when empty
	// a fixed factor text is used instead.
	KnowledgeWarning string
}

// Calculate computes the additive capped score, clamped to [0,100], with
// human-readable factors and a per-category breakdown. The low-confidence
// knowledge penalty is applied last: minus ten points, floored at twenty.
func Calculate(in Input) types.ReliabilityScore {
	score := 0
	factors := []string{}
	breakdown := map[string]int{}

	if n := len(in.SourcesUsed); n > 0 {
		sourceScore := min(pointsPerSource*n, sourcesCap)
		score += sourceScore
		breakdown["sources"] = sourceScore
		names := make([]string, len(in.SourcesUsed))
		for i, s := range in.SourcesUsed {
			names[i] = string(s)
		}
		factors = append(factors, fmt.Sprintf("%d verified source(s): %s", n, strings.Join(names, ", ")))
	}

	if in.Headline != "" {
		score += headlinePoints
		breakdown["headline"] = headlinePoints
		factors = append(factors, "Professional headline present")
	}

	switch {
	case len(in.Summary) > summaryFullLength:
		score += summaryFullPoints
		breakdown["summary"] = summaryFullPoints
		factors = append(factors, "Complete biography")
	case in.Summary != "":
		score += summaryPartPoints
		breakdown["summary"] = summaryPartPoints
		factors = append(factors, "Partial biography")
	}

	if n := len(in.Experiences); n > 0 {
		expScore := min(pointsPerExp*n, experiencesCap)
		score += expScore
		breakdown["experiences"] = expScore
		factors = append(factors, fmt.Sprintf("%d professional experience(s)", n))
	}

	if n := len(in.Publications); n > 0 {
		pubScore := min(pointsPerPub*n, publicationsCap)
		score += pubScore
		breakdown["publications"] = pubScore
		factors = append(factors, fmt.Sprintf("%d publication(s)/media mention(s)", n))
	}

	if n := len(in.Posts); n > 0 {
		postScore := min(pointsPerPost*n, postsCap)
		score += postScore
		breakdown["posts"] = postScore
		factors = append(factors, fmt.Sprintf("%d post(s) analyzed", n))
	}

	if n := len(in.Education); n > 0 {
		eduScore := min(pointsPerEdu*n, educationCap)
		score += eduScore
		breakdown["education"] = eduScore
		factors = append(factors, fmt.Sprintf("%d education entry(ies)", n))
	}

	if len(in.Skills) >= skillsMinCount {
		score += skillsPoints
		breakdown["skills"] = skillsPoints
		factors = append(factors, fmt.Sprintf("%d skills identified", len(in.Skills)))
	}

	socialCount := 0
	for _, url := range in.SocialProfiles {
		if url != "" {
			socialCount++
		}
	}
	if socialCount > 0 {
		socialScore := min(pointsPerSocial*socialCount, socialCap)
		score += socialScore
		breakdown["social"] = socialScore
		factors = append(factors, fmt.Sprintf("%d social/professional profile(s)", socialCount))
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	if in.UsedKnowledge {
		factor := in.KnowledgeWarning
		if factor == "" {
			factor = knowledgeFactor
		}
		factors = append(factors, factor)
		if in.KnowledgeConfidence == enrich.ConfidenceLow {
			score = max(penaltyFloor, score-lowConfidencePenalty)
		}
	}

	return types.ReliabilityScore{
		Score:     score,
		Factors:   factors,
		Breakdown: breakdown,
	}
}

// Band returns the fixed textual reliability level for a score.
func Band(score int) string {
	switch {
	case score >= 85:
		return "Excellent - Highly reliable profile with multiple sources and complete data"
	case score >= 70:
		return "Good - Reliable profile with verified information"
	case score >= 50:
		return "Medium - Partially verified profile, limited data"
	case score >= 30:
		return "Weak - Incomplete profile with few sources"
	default:
		return "Very weak - Insufficient information for assessment"
	}
}

// BaseJustification is the deterministic fallback justification used when
// no narrative justification is available.
func BaseJustification(score int) string {
	return fmt.Sprintf("Reliability score: %d/100. %s", score, Band(score))
}

