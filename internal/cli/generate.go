package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andywolf/readmecards/internal/cloud/gcp"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render issue and status cards, then update buttons",
	Long: `Run issues and status in one pass with a single GitHub client. When a
bucket and projects are configured, progress buttons are updated as well.

Example:
  readmecards generate`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("output", "", "Output directory (default from config)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, "generate")
	if err != nil {
		return err
	}
	defer a.Close()
	applyCardFlags(cmd, a)

	client, err := a.githubClient(ctx)
	if err != nil {
		return err
	}

	issues, err := writeIssueCards(ctx, client, newRenderer(a), a.cfg.Cards.IssueCount, a.cfg.Cards.OutputDir, a.logger)
	if err != nil {
		return err
	}
	statuses, err := writeStatusCards(ctx, client, a.cfg.Cards.StatusPrefix, a.cfg.Cards.OutputDir, a.logger)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d issue cards and %d status cards to %s\n", len(issues), len(statuses), a.cfg.Cards.OutputDir)

	if a.cfg.Buttons.Bucket == "" || len(a.cfg.Buttons.Projects) == 0 {
		a.logger.Debugf("No buttons configured")
		return nil
	}
	if err := a.cfg.ValidateForButtons(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	store, err := gcp.NewStorageClient(ctx, a.cfg.Buttons.Bucket)
	if err != nil {
		return err
	}
	return compositeButtons(ctx, a, store, client, false)
}
