package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wilfried-djoum/scraperIntelligent/internal/observability"
	"github.com/wilfried-djoum/scraperIntelligent/internal/pipeline"
	"github.com/wilfried-djoum/scraperIntelligent/internal/types"
)

var (
	profileFirstName string
	profileLastName  string
	profileCompany   string
	profileJSON      bool
	profileVerbose   bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Build one enriched profile and print it as JSON",
	Long:  `Run the full profiling pipeline for a single person and write the enriched profile to stdout.`,
	RunE:  runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&profileFirstName, "first", "", "Subject's first name (required)")
	profileCmd.Flags().StringVar(&profileLastName, "last", "", "Subject's last name (required)")
	profileCmd.Flags().StringVar(&profileCompany, "company", "", "Subject's company (required)")
	profileCmd.Flags().BoolVar(&profileJSON, "json", false, "Print the full response as JSON instead of formatted summaries")
	profileCmd.Flags().BoolVarP(&profileVerbose, "verbose", "v", false, "Print progress to stderr")
	_ = profileCmd.MarkFlagRequired("first")
	_ = profileCmd.MarkFlagRequired("last")
	_ = profileCmd.MarkFlagRequired("company")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if profileVerbose {
		cfg.Verbose = true
	}

	ctx := cmd.Context()
	orch, cleanup, err := buildOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.Verbose {
		progress := observability.NewPrinter(os.Stderr)
		orch.OnProgress = func(event pipeline.ProgressEvent) {
			progress.PrintPhase(event.Phase, event.Message)
		}
	}

	id := types.Identity{
		FirstName: profileFirstName,
		LastName:  profileLastName,
		Company:   profileCompany,
	}

	resp, err := orch.CreateProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("profiling failed: %w", err)
	}

	if profileJSON {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode profile: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(&resp.Profile)
	printer.PrintReliability(&resp.Profile.Reliability)
	printer.PrintReputation(&resp.Profile.Reputation)
	printer.PrintContact(&resp.Profile.ContactInfo)
	return nil
}
