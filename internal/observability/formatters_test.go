package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.EnrichedProfile{
		FirstName:   "Jean",
		LastName:    "Dupont",
		Company:     "Acme Corp",
		CurrentRole: "Directeur Technique",
		Headline:    "Professional at Acme Corp",
		Summary:     "Jean Dupont leads the engineering organization at Acme Corp.",
		Experiences: []types.Experience{
			{Title: "CTO", Company: "Acme Corp"},
			{Title: "Lead Engineer", Company: "Widgets SA"},
		},
		Skills:      []string{"Go", "Kubernetes"},
		SourcesUsed: []types.Source{types.SourceLinkedIn, types.SourceCompany},
	}

	p.PrintProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "ENRICHED PROFILE")
	assert.Contains(t, output, "Jean Dupont")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Directeur Technique")
	assert.Contains(t, output, "CTO")
	assert.Contains(t, output, "Go, Kubernetes")
	assert.Contains(t, output, "linkedin, company")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintProfile_ManyExperiences(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.EnrichedProfile{FirstName: "Jean", LastName: "Dupont", Company: "Acme"}
	for i := 0; i < 8; i++ {
		profile.Experiences = append(profile.Experiences, types.Experience{Title: "Role", Company: "Acme"})
	}

	p.PrintProfile(profile)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintReliability(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := &types.ReliabilityScore{
		Score: 72,
		Factors: []string{
			"2 verified source(s): linkedin, company",
			"Professional headline present",
		},
	}

	p.PrintReliability(score)
	output := buf.String()

	assert.Contains(t, output, "RELIABILITY SCORE")
	assert.Contains(t, output, "72/100")
	assert.Contains(t, output, "Professional headline present")
}

func TestPrintReputation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rep := &types.Reputation{
		Summary:     "Well established technical leader",
		Strengths:   []string{"Strong online presence"},
		WeakSignals: []string{"Few recent publications"},
	}

	p.PrintReputation(rep)
	output := buf.String()

	assert.Contains(t, output, "REPUTATION")
	assert.Contains(t, output, "Well established technical")
	assert.Contains(t, output, "Strong online presence")
	assert.Contains(t, output, "Few recent publications")
}

func TestPrintReputation_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReputation(&types.Reputation{})

	assert.Empty(t, buf.String())
}

func TestPrintContact(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	c := &types.ContactInfo{
		LinkedInURL: "https://linkedin.com/in/jean-dupont",
		GitHub:      "https://github.com/jdupont",
	}

	p.PrintContact(c)
	output := buf.String()

	assert.Contains(t, output, "CONTACT")
	assert.Contains(t, output, "linkedin.com/in/jean-dupont")
	assert.Contains(t, output, "github.com/jdupont")
	assert.NotContains(t, output, "Twitter")
}

func TestPrintContact_AllEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintContact(&types.ContactInfo{})

	assert.Empty(t, buf.String())
}

func TestPrintPhase(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPhase("collected", "All sources collected")

	assert.Equal(t, "▸ [collected] All sources collected\n", buf.String())
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.EnrichedProfile{
		FirstName:   "Jean-Baptiste",
		LastName:    "De La Fontaine Des Vergers",
		Company:     "A Very Long Company Name That Should Be Truncated To Fit",
		CurrentRole: "Senior Staff Principal Distinguished Engineer Level 99",
	}

	p.PrintProfile(profile)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 10)

	assert.Equal(t, []string{"one two", "three four", "five"}, lines)
	assert.Nil(t, wrapText("", 10))
}
