// Package pipeline provides the high-level orchestration for one profiling
// request: fan out to the four collectors, merge, score, synthesize, and
// assemble the final profile.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wilfried-djoum/scraperIntelligent/internal/config"
	"github.com/wilfried-djoum/scraperIntelligent/internal/enrich"
	"github.com/wilfried-djoum/scraperIntelligent/internal/merge"
	"github.com/wilfried-djoum/scraperIntelligent/internal/scoring"
	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

// Phase names, in execution order. Each request passes through all five
// exactly once; no phase repeats and no phase aborts the request.
const (
	PhaseCollected   = "collected"
	PhaseMerged      = "merged"
	PhaseScored      = "scored"
	PhaseSynthesized = "synthesized"
	PhaseAssembled   = "assembled"
)

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Phase     string `json:"phase"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ProgressCallback is called as the pipeline moves through its phases.
type ProgressCallback func(event ProgressEvent)

// LinkedInCollector resolves and scrapes the professional network source.
type LinkedInCollector interface {
	Collect(ctx context.Context, id types.Identity) types.LinkedInPayload
}

// CompanyCollector resolves and scrapes the company website source.
type CompanyCollector interface {
	Collect(ctx context.Context, id types.Identity) types.CompanyPayload
}

// NewsCollector searches press and professional media.
type NewsCollector interface {
	Collect(ctx context.Context, id types.Identity) types.NewsPayload
}

// SocialCollector probes external social networks.
type SocialCollector interface {
	Collect(ctx context.Context, id types.Identity) types.SocialPayload
}

// Enricher is the full set of enrichment operations the pipeline uses.
type Enricher interface {
	merge.Enricher
	Synthesize(ctx context.Context, in enrich.SynthesisInput) *enrich.Synthesis
	Justify(ctx context.Context, in enrich.JustifyInput) string
}

// Orchestrator runs the five-phase profiling workflow. It holds no
// per-request state and is safe for concurrent use.
type Orchestrator struct {
	LinkedIn LinkedInCollector
	Company  CompanyCollector
	News     NewsCollector
	Social   SocialCollector
	Enricher Enricher

	Config     *config.Config
	OnProgress ProgressCallback
}

func (o *Orchestrator) emitProgress(phase, requestID, message string) {
	if o.OnProgress != nil {
		o.OnProgress(ProgressEvent{
			Phase:     phase,
			Message:   message,
			RequestID: requestID,
		})
	}
}

// CreateProfile runs one profiling request end to end. The only error it
// returns is invalid identity input; every downstream failure degrades the
// profile instead of failing the request.
func (o *Orchestrator) CreateProfile(ctx context.Context, id types.Identity) (*types.ProfileResponse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	requestID := uuid.New().String()

	// Phase 1: fan out to all four collectors. Collectors never return
	// errors; the errgroup only propagates context cancellation.
	payloads := o.collect(ctx, id)
	o.emitProgress(PhaseCollected, requestID,
		fmt.Sprintf("Collected %d source payload(s) for %s", len(merge.IdentifySources(payloads)), id.FullName()))

	// Phase 2: merge fields, invoking enrichment where direct extraction
	// left gaps.
	merged := merge.Merge(ctx, id, payloads, o.Enricher)
	o.emitProgress(PhaseMerged, requestID,
		fmt.Sprintf("Merged fields from sources: %v", merged.SourcesUsed))

	// Phase 3: score.
	reliability := o.score(ctx, merged)
	o.emitProgress(PhaseScored, requestID,
		fmt.Sprintf("Reliability score: %d/100", reliability.Score))

	// Phase 4: narrative synthesis, best effort.
	synthesis := o.synthesize(ctx, id, merged)
	if synthesis != nil && synthesis.ReliabilityJustification != "" &&
		reliability.Justification == scoring.BaseJustification(reliability.Score) {
		reliability.Justification = synthesis.ReliabilityJustification
	}
	o.emitProgress(PhaseSynthesized, requestID, "Narrative synthesis complete")

	// Phase 5: assemble.
	profile := assemble(id, merged, reliability, synthesis)
	o.emitProgress(PhaseAssembled, requestID, "Profile assembled")

	return &types.ProfileResponse{
		Debug: types.DebugInfo{
			RequestID:      requestID,
			SourcesUsed:    merged.SourcesUsed,
			ProcessingTime: fmt.Sprintf("%.2fs", time.Since(start).Seconds()),
		},
		Profile: profile,
	}, nil
}

// collect fans out to the four collectors and joins before returning. Each
// collector bounds its own latency; the join waits for all of them.
func (o *Orchestrator) collect(ctx context.Context, id types.Identity) types.Payloads {
	var payloads types.Payloads

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		payloads.LinkedIn = o.LinkedIn.Collect(gCtx, id)
		return nil
	})
	g.Go(func() error {
		payloads.Company = o.Company.Collect(gCtx, id)
		return nil
	})
	g.Go(func() error {
		payloads.News = o.News.Collect(gCtx, id)
		return nil
	})
	g.Go(func() error {
		payloads.Social = o.Social.Collect(gCtx, id)
		return nil
	})
	_ = g.Wait()

	return payloads
}

// score runs the pure scorer, then asks the enrichment gateway for a prose
// justification with the deterministic band text as fallback.
func (o *Orchestrator) score(ctx context.Context, merged merge.Result) types.ReliabilityScore {
	reliability := scoring.Calculate(scoring.Input{
		SourcesUsed:  merged.SourcesUsed,
		Headline:     merged.Headline,
		Summary:      merged.Summary,
		Experiences:  merged.Experiences,
		Publications: merged.Publications,
		Posts:        merged.PostAnalysis.Posts,
		Education:    merged.Education,
		Skills:       merged.Skills,
		SocialProfiles: map[string]string{
			types.NetworkTwitter: merged.Contact.Twitter,
			types.NetworkGitHub:  merged.Contact.GitHub,
		},
		UsedKnowledge:       merged.UsedKnowledge,
		KnowledgeConfidence: merged.KnowledgeConfidence,
		KnowledgeWarning:    merged.KnowledgeWarning,
	})

	sources := make([]string, len(merged.SourcesUsed))
	for i, s := range merged.SourcesUsed {
		sources[i] = string(s)
	}
	reliability.Justification = o.Enricher.Justify(ctx, enrich.JustifyInput{
		Score:    reliability.Score,
		Sources:  sources,
		Factors:  reliability.Factors,
		Fallback: scoring.BaseJustification(reliability.Score),
	})
	return reliability
}

// synthesize runs the best-effort narrative synthesis. A nil result means
// the assembler falls back to deterministic texts.
func (o *Orchestrator) synthesize(ctx context.Context, id types.Identity, merged merge.Result) *enrich.Synthesis {
	sources := make([]string, len(merged.SourcesUsed))
	for i, s := range merged.SourcesUsed {
		sources[i] = string(s)
	}
	return o.Enricher.Synthesize(ctx, enrich.SynthesisInput{
		FullName:         id.FullName(),
		Company:          id.Company,
		Headline:         merged.Headline,
		Summary:          merged.Summary,
		ExperienceCount:  len(merged.Experiences),
		PublicationCount: len(merged.Publications),
		PostCount:        len(merged.PostAnalysis.Posts),
		Sources:          sources,
	})
}

// assemble composes the final profile record and normalizes list fields.
func assemble(id types.Identity, merged merge.Result, reliability types.ReliabilityScore, synthesis *enrich.Synthesis) types.EnrichedProfile {
	reputation := types.Reputation{
		Summary:     "Professional profile",
		Strengths:   []string{},
		WeakSignals: []string{},
	}
	if synthesis != nil {
		if synthesis.Synthesis != "" {
			reputation.Summary = synthesis.Synthesis
		}
		reputation.Strengths = synthesis.Strengths
		reputation.WeakSignals = synthesis.WeakSignals
	}

	profile := types.EnrichedProfile{
		FirstName:           id.FirstName,
		LastName:            id.LastName,
		Company:             id.Company,
		Headline:            merged.Headline,
		CurrentRole:         merged.CurrentRole,
		Summary:             merged.Summary,
		Experiences:         merged.Experiences,
		Education:           merged.Education,
		Skills:              merged.Skills,
		Publications:        merged.Publications,
		SpeakingEngagements: merged.Speaking,
		PostAnalysis:        merged.PostAnalysis,
		ContactInfo:         merged.Contact,
		Reputation:          reputation,
		Reliability:         reliability,
		SourcesUsed:         merged.SourcesUsed,
		ScrapedAt:           time.Now().UTC(),
	}
	profile.Normalize()
	return profile
}
