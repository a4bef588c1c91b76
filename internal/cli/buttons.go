package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andywolf/readmecards/internal/buttons"
	"github.com/andywolf/readmecards/internal/cloud/gcp"
)

var buttonsCmd = &cobra.Command{
	Use:   "buttons",
	Short: "Draw progress rings onto project button images",
	Long: `For every configured project, count the done and open issues carrying its
label, download the button image from the bucket, draw the progress ring and
upload the result next to it as <name>_progress.png.

A failing project is logged and skipped.

Example:
  readmecards buttons
  readmecards buttons --strict`,
	RunE: runButtons,
}

func init() {
	rootCmd.AddCommand(buttonsCmd)

	buttonsCmd.Flags().Bool("strict", false, "Exit with an error when any project fails")
}

func runButtons(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, "buttons")
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.cfg.ValidateForButtons(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	client, err := a.githubClient(ctx)
	if err != nil {
		return err
	}

	store, err := gcp.NewStorageClient(ctx, a.cfg.Buttons.Bucket)
	if err != nil {
		return err
	}

	strict, _ := cmd.Flags().GetBool("strict")
	return compositeButtons(ctx, a, store, client, strict)
}

func compositeButtons(ctx context.Context, a *app, store buttons.ObjectStore, counts buttons.CountSource, strict bool) error {
	opts := []buttons.Option{
		buttons.WithRing(a.cfg.Buttons.Ring.Ring()),
		buttons.WithLogger(a.logger),
	}
	if a.cfg.Buttons.TempDir != "" {
		opts = append(opts, buttons.WithTempDir(a.cfg.Buttons.TempDir))
	}

	projects := a.cfg.Buttons.Projects
	failed := buttons.NewCompositor(store, counts, opts...).Run(ctx, projects)
	if failed > 0 {
		a.logger.Warningf("%d of %d buttons failed", failed, len(projects))
		if strict {
			return fmt.Errorf("%d of %d buttons failed", failed, len(projects))
		}
		return nil
	}
	a.logger.Infof("Updated %d buttons", len(projects))
	return nil
}
