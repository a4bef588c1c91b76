package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Render the top open issues as SVG cards",
	Long: `Fetch the most recently updated issues of the repository, pinned issues
first, and write them as issue_0.svg, issue_1.svg, ... into the output directory.

Example:
  readmecards issues
  readmecards issues --count 5 --output assets/cards`,
	RunE: runIssues,
}

func init() {
	rootCmd.AddCommand(issuesCmd)

	issuesCmd.Flags().Int("count", 0, "Number of issue cards (default from config)")
	issuesCmd.Flags().String("output", "", "Output directory (default from config)")
}

func runIssues(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, "issues")
	if err != nil {
		return err
	}
	defer a.Close()
	applyCardFlags(cmd, a)

	client, err := a.githubClient(ctx)
	if err != nil {
		return err
	}

	written, err := writeIssueCards(ctx, client, newRenderer(a), a.cfg.Cards.IssueCount, a.cfg.Cards.OutputDir, a.logger)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Println(path)
	}
	return nil
}

// applyCardFlags lets command flags override the loaded card settings.
func applyCardFlags(cmd *cobra.Command, a *app) {
	if cmd.Flags().Changed("count") {
		a.cfg.Cards.IssueCount, _ = cmd.Flags().GetInt("count")
	}
	if cmd.Flags().Changed("output") {
		a.cfg.Cards.OutputDir, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("prefix") {
		a.cfg.Cards.StatusPrefix, _ = cmd.Flags().GetString("prefix")
	}
}
