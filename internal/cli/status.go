package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Render one SVG card per status label",
	Long: `Fetch the repository labels carrying the status prefix and write one
card per label, showing its name and open issue count.

Example:
  readmecards status
  readmecards status --prefix "stage:"`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().String("prefix", "", "Status label prefix (default from config)")
	statusCmd.Flags().String("output", "", "Output directory (default from config)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, "status")
	if err != nil {
		return err
	}
	defer a.Close()
	applyCardFlags(cmd, a)

	client, err := a.githubClient(ctx)
	if err != nil {
		return err
	}

	written, err := writeStatusCards(ctx, client, a.cfg.Cards.StatusPrefix, a.cfg.Cards.OutputDir, a.logger)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Println(path)
	}
	return nil
}
