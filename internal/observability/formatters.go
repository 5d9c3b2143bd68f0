// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPhase outputs a single pipeline progress line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPhase(phase, message string) {
	fmt.Fprintf(p.out, "▸ [%s] %s\n", phase, message)
}

// PrintProfile outputs a human-readable summary of the enriched profile.
func (p *Printer) PrintProfile(profile *types.EnrichedProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s %s\n", profile.FirstName, profile.LastName))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", profile.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", profile.CurrentRole))
	if profile.Headline != "" {
		sb.WriteString(fmt.Sprintf("Headline: %s\n", profile.Headline))
	}
	sb.WriteString("\n")

	if profile.Summary != "" {
		summary := profile.Summary
		if len(summary) > 150 {
			summary = summary[:147] + "..."
		}
		sb.WriteString("Summary:\n")
		for _, line := range wrapText(summary, boxWidth-6) {
			sb.WriteString(fmt.Sprintf("  %s\n", line))
		}
		sb.WriteString("\n")
	}

	if len(profile.Experiences) > 0 {
		sb.WriteString("Experiences:\n")
		count := min(len(profile.Experiences), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := profile.Experiences[i]
			title := exp.Title
			if title == "" {
				title = exp.Description
			}
			if len(title) > 45 {
				title = title[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s", title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", exp.Company))
			}
			sb.WriteString("\n")
		}
		if len(profile.Experiences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experiences)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Skills) > 0 {
		skills := strings.Join(profile.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", skills))
	}

	sources := make([]string, 0, len(profile.SourcesUsed))
	for _, s := range profile.SourcesUsed {
		sources = append(sources, string(s))
	}
	if len(sources) > 0 {
		sb.WriteString(fmt.Sprintf("Sources:  %s\n", strings.Join(sources, ", ")))
	}

	p.printBox("ENRICHED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReliability outputs the reliability score with its contributing factors.
func (p *Printer) PrintReliability(score *types.ReliabilityScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n", score.Score))

	if len(score.Factors) > 0 {
		sb.WriteString("\nFactors:\n")
		count := min(len(score.Factors), maxItemsToShow)
		for i := 0; i < count; i++ {
			factor := score.Factors[i]
			if len(factor) > 50 {
				factor = factor[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", factor))
		}
		if len(score.Factors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(score.Factors)-maxItemsToShow))
		}
	}

	p.printBox("RELIABILITY SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReputation outputs the reputation analysis when one was synthesized.
func (p *Printer) PrintReputation(rep *types.Reputation) {
	if rep == nil || (rep.Summary == "" && len(rep.Strengths) == 0 && len(rep.WeakSignals) == 0) {
		return
	}

	var sb strings.Builder
	if rep.Summary != "" {
		summary := rep.Summary
		if len(summary) > 100 {
			summary = summary[:97] + "..."
		}
		for _, line := range wrapText(summary, boxWidth-4) {
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
	}

	if len(rep.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		count := min(len(rep.Strengths), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", rep.Strengths[i]))
		}
		if len(rep.Strengths) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rep.Strengths)-3))
		}
	}

	if len(rep.WeakSignals) > 0 {
		sb.WriteString("Weak signals:\n")
		count := min(len(rep.WeakSignals), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", rep.WeakSignals[i]))
		}
	}

	p.printBox("REPUTATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContact outputs the merged contact fields, skipping empty ones.
func (p *Printer) PrintContact(c *types.ContactInfo) {
	if c == nil {
		return
	}

	var sb strings.Builder
	fields := []struct {
		label string
		value string
	}{
		{"LinkedIn", c.LinkedInURL},
		{"Website", c.Website},
		{"Twitter", c.Twitter},
		{"GitHub", c.GitHub},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		value := f.value
		if len(value) > 44 {
			value = value[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-9s %s\n", f.label+":", value))
	}
	if sb.Len() == 0 {
		return
	}

	p.printBox("CONTACT", strings.TrimSuffix(sb.String(), "\n"))
}

// wrapText splits text into lines no longer than width, breaking on spaces.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)
	return lines
}
