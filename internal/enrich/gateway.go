package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/wilfried-djoum/scraperIntelligent/internal/prompts"
	"github.com/wilfried-djoum/scraperIntelligent/internal/schemas"
	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

const promptFile = "enrich.json"

// maxPromptPosts bounds how many posts are included in a summarization prompt.
const maxPromptPosts = 10

// knowledgeWarning is attached to every profile recalled from model training
// data rather than scraped from a live source.
const knowledgeWarning = "Information from model knowledge, may be outdated or incomplete"

// Confidence is the model's self-reported confidence in recalled knowledge.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	// ConfidenceNone means the fallback produced nothing usable.
	ConfidenceNone Confidence = "none"
)

// RawExperience is an experience entry as extracted by the model, before it
// is merged into the profile.
type RawExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	IsCurrent   bool   `json:"is_current,omitempty"`
}

// StructuredFields is the result of structuring raw scraped content.
type StructuredFields struct {
	Headline    string          `json:"headline"`
	Summary     string          `json:"summary"`
	Skills      []string        `json:"skills"`
	Experiences []RawExperience `json:"experiences"`
	Education   []string        `json:"education"`
}

// KnowledgeProfile is the result of the training-knowledge fallback.
type KnowledgeProfile struct {
	Headline            string          `json:"headline"`
	Summary             string          `json:"summary"`
	CurrentRole         string          `json:"current_role"`
	Experiences         []RawExperience `json:"experiences"`
	Education           []string        `json:"education"`
	Skills              []string        `json:"skills"`
	NotableAchievements []string        `json:"notable_achievements"`
	BioSummary          string          `json:"bio_summary"`
	Confidence          Confidence      `json:"confidence"`
	Source              string          `json:"source,omitempty"`
	Warning             string          `json:"warning,omitempty"`
}

// Usable reports whether the fallback recalled anything worth merging.
func (k *KnowledgeProfile) Usable() bool {
	return k.Confidence != ConfidenceNone &&
		(k.Headline != "" || k.Summary != "" || len(k.Experiences) > 0)
}

// PostSummary is the per-post portion of a posts analysis.
type PostSummary struct {
	PostIndex int      `json:"post_index"`
	Summary   string   `json:"summary"`
	Themes    []string `json:"themes"`
}

// PostsSummary is the aggregate analysis of a person's recent posts.
type PostsSummary struct {
	Summaries        []PostSummary `json:"summaries"`
	RecurringThemes  []string      `json:"recurring_themes"`
	OverallTone      string        `json:"overall_tone"`
	PostingFrequency string        `json:"posting_frequency"`
}

// Synthesis is the global narrative synthesis of an assembled profile.
type Synthesis struct {
	Synthesis                string   `json:"synthesis"`
	Strengths                []string `json:"strengths"`
	WeakSignals              []string `json:"weak_signals"`
	ReliabilityJustification string   `json:"reliability_justification"`
}

// SynthesisInput carries the assembled profile facts fed to Synthesize.
type SynthesisInput struct {
	FullName         string
	Company          string
	Headline         string
	Summary          string
	ExperienceCount  int
	PublicationCount int
	PostCount        int
	Sources          []string
}

// JustifyInput carries the scoring facts fed to Justify. Fallback is the
// deterministic justification used when the model call fails.
type JustifyInput struct {
	Score    int
	Sources  []string
	Factors  []string
	Fallback string
}

// Gateway wraps an LLM client with the profile enrichment operations.
// Every operation degrades to a typed default instead of returning an
// error: a failed model call must never fail the profiling request.
type Gateway struct {
	client Client
}

// NewGateway creates a Gateway over an LLM client. A nil client is allowed;
// every operation then degrades to its default.
func NewGateway(client Client) *Gateway {
	return &Gateway{client: client}
}

// Structure extracts structured profile fields from raw scraped content.
// Returns an empty StructuredFields on failure.
func (g *Gateway) Structure(ctx context.Context, content string) StructuredFields {
	out := StructuredFields{
		Skills:      []string{},
		Experiences: []RawExperience{},
		Education:   []string{},
	}
	if strings.TrimSpace(content) == "" {
		return out
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "structure-content"), map[string]string{
		"Content": content,
	})

	if err := g.generateInto(ctx, prompt, TierStandard, schemas.StructuredFields, &out); err != nil {
		log.Printf("enrich: structure failed: %v", err)
		return StructuredFields{
			Skills:      []string{},
			Experiences: []RawExperience{},
			Education:   []string{},
		}
	}
	out.normalize()
	return out
}

// KnowledgeFallback recalls publicly known professional information about a
// person from model training data. On failure the returned profile carries
// ConfidenceNone and is reported unusable.
func (g *Gateway) KnowledgeFallback(ctx context.Context, fullName, company string) KnowledgeProfile {
	prompt := prompts.Format(prompts.MustGet(promptFile, "knowledge-fallback"), map[string]string{
		"FullName": fullName,
		"Company":  company,
	})

	var out KnowledgeProfile
	if err := g.generateInto(ctx, prompt, TierAdvanced, schemas.KnowledgeProfile, &out); err != nil {
		log.Printf("enrich: knowledge fallback failed for %s: %v", fullName, err)
		return emptyKnowledgeProfile()
	}
	if out.Confidence == "" {
		out.Confidence = ConfidenceLow
	}
	out.Source = "llm_knowledge_base"
	out.Warning = knowledgeWarning
	out.normalize()
	return out
}

// SummarizePosts analyzes a person's recent posts. At most ten posts are
// included in the prompt. Returns nil when there are no posts or the
// analysis fails.
func (g *Gateway) SummarizePosts(ctx context.Context, posts []types.Post) *PostsSummary {
	if len(posts) == 0 {
		return nil
	}
	if len(posts) > maxPromptPosts {
		posts = posts[:maxPromptPosts]
	}

	var sb strings.Builder
	for i, post := range posts {
		fmt.Fprintf(&sb, "Post %d", i+1)
		if post.Date != "" {
			fmt.Fprintf(&sb, " (%s)", post.Date)
		}
		fmt.Fprintf(&sb, ":\n%s\n\n", post.Content)
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "summarize-posts"), map[string]string{
		"Posts": sb.String(),
	})

	var out PostsSummary
	if err := g.generateInto(ctx, prompt, TierLite, schemas.PostsSummary, &out); err != nil {
		log.Printf("enrich: posts summary failed: %v", err)
		return nil
	}
	if out.RecurringThemes == nil {
		out.RecurringThemes = []string{}
	}
	if out.Summaries == nil {
		out.Summaries = []PostSummary{}
	}
	return &out
}

// Synthesize generates a global narrative synthesis of the assembled
// profile. Returns nil on failure.
func (g *Gateway) Synthesize(ctx context.Context, in SynthesisInput) *Synthesis {
	prompt := prompts.Format(prompts.MustGet(promptFile, "global-synthesis"), map[string]string{
		"FullName":         in.FullName,
		"Company":          in.Company,
		"Headline":         orNone(in.Headline),
		"Summary":          orNone(in.Summary),
		"ExperienceCount":  fmt.Sprintf("%d", in.ExperienceCount),
		"PublicationCount": fmt.Sprintf("%d", in.PublicationCount),
		"PostCount":        fmt.Sprintf("%d", in.PostCount),
		"Sources":          strings.Join(in.Sources, ", "),
	})

	var out Synthesis
	if err := g.generateInto(ctx, prompt, TierAdvanced, schemas.Synthesis, &out); err != nil {
		log.Printf("enrich: synthesis failed for %s: %v", in.FullName, err)
		return nil
	}
	if out.Strengths == nil {
		out.Strengths = []string{}
	}
	if out.WeakSignals == nil {
		out.WeakSignals = []string{}
	}
	return &out
}

// Justify writes a prose justification of the reliability score. Returns
// the deterministic fallback justification when the model call fails.
func (g *Gateway) Justify(ctx context.Context, in JustifyInput) string {
	prompt := prompts.Format(prompts.MustGet(promptFile, "justify-reliability"), map[string]string{
		"Score":   fmt.Sprintf("%d", in.Score),
		"Sources": strings.Join(in.Sources, ", "),
		"Factors": strings.Join(in.Factors, "; "),
	})

	var out struct {
		Justification string `json:"justification"`
	}
	if err := g.generateInto(ctx, prompt, TierLite, schemas.Justification, &out); err != nil {
		log.Printf("enrich: score justification failed: %v", err)
		return in.Fallback
	}
	if strings.TrimSpace(out.Justification) == "" {
		return in.Fallback
	}
	return out.Justification
}

// generateInto runs a JSON generation, validates the response against an
// embedded schema, and unmarshals it into dst.
func (g *Gateway) generateInto(ctx context.Context, prompt string, tier ModelTier, schema string, dst any) error {
	if g.client == nil {
		return fmt.Errorf("no model client configured")
	}
	raw, err := g.client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	if err := schemas.Validate(schema, []byte(raw)); err != nil {
		return fmt.Errorf("response rejected: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("unmarshal failed: %w", err)
	}
	return nil
}

func emptyKnowledgeProfile() KnowledgeProfile {
	return KnowledgeProfile{
		Experiences:         []RawExperience{},
		Education:           []string{},
		Skills:              []string{},
		NotableAchievements: []string{},
		Confidence:          ConfidenceNone,
	}
}

func (s *StructuredFields) normalize() {
	if s.Skills == nil {
		s.Skills = []string{}
	}
	if s.Experiences == nil {
		s.Experiences = []RawExperience{}
	}
	if s.Education == nil {
		s.Education = []string{}
	}
}

func (k *KnowledgeProfile) normalize() {
	if k.Experiences == nil {
		k.Experiences = []RawExperience{}
	}
	if k.Education == nil {
		k.Education = []string{}
	}
	if k.Skills == nil {
		k.Skills = []string{}
	}
	if k.NotableAchievements == nil {
		k.NotableAchievements = []string{}
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
