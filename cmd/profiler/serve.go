package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wilfried-djoum/scraperIntelligent/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the profiling endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", defaultPort(), "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

// defaultPort honors the PORT environment variable when set.
func defaultPort() int {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			return port
		}
	}
	return 8080
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.LLMAPIKey == "" {
		return fmt.Errorf("an enrichment API key is required to serve (set GEMINI_API_KEY or OPENAI_API_KEY)")
	}

	orch, cleanup, err := buildOrchestrator(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(server.Config{Port: servePort}, orch)
	return srv.Start()
}
