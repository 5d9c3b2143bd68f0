// Package main provides the entry point for the professional profiler.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wilfried-djoum/scraperIntelligent/internal/config"
	"github.com/wilfried-djoum/scraperIntelligent/internal/enrich"
	"github.com/wilfried-djoum/scraperIntelligent/internal/pipeline"
	"github.com/wilfried-djoum/scraperIntelligent/internal/search"
	"github.com/wilfried-djoum/scraperIntelligent/internal/sources"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "profiler",
	Short: "Professional profile aggregation service",
	Long:  "Profiler builds enriched professional profiles by collecting evidence from public sources, merging it with fixed priority rules, and scoring the result's reliability.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file (defaults and environment are used when omitted)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		cfg := config.Default()
		return cfg, cfg.Validate()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// buildOrchestrator wires the collectors and the enrichment gateway into a
// pipeline orchestrator. Missing credentials degrade the corresponding
// capability instead of aborting; the returned cleanup releases the model
// client.
func buildOrchestrator(ctx context.Context, cfg *config.Config) (*pipeline.Orchestrator, func(), error) {
	var searcher search.Searcher
	if cfg.SearchAPIKey != "" && cfg.SearchCX != "" {
		gs, err := search.NewGoogleSearcher(ctx, cfg.SearchAPIKey, cfg.SearchCX)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create searcher: %w", err)
		}
		searcher = gs
	} else {
		log.Println("search credentials not set, source discovery disabled")
	}

	var client enrich.Client
	cleanup := func() {}
	if cfg.LLMAPIKey != "" {
		c, err := enrich.NewClient(ctx, enrich.DefaultClientConfig(cfg.LLMProvider), cfg.LLMAPIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create %s client: %w", cfg.LLMProvider, err)
		}
		client = c
		cleanup = func() {
			if err := c.Close(); err != nil {
				log.Printf("closing model client: %v", err)
			}
		}
	} else {
		log.Println("model API key not set, enrichment disabled")
	}

	orch := &pipeline.Orchestrator{
		LinkedIn: sources.NewLinkedIn(searcher, cfg),
		Company:  sources.NewCompany(searcher, cfg),
		News:     sources.NewNews(searcher, cfg),
		Social:   sources.NewSocial(searcher, cfg),
		Enricher: enrich.NewGateway(client),
		Config:   cfg,
	}
	return orch, cleanup, nil
}
