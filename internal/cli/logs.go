package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/andywolf/readmecards/internal/cloud/gcp"
	"github.com/andywolf/readmecards/internal/config"
	"github.com/andywolf/readmecards/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs [run-id]",
	Short: "Retrieve logs of previous runs from Cloud Logging",
	Long: `Retrieve entries written by readmecards to Cloud Logging. Every run
labels its entries with a run_id; pass one to see a single run.

Example:
  readmecards logs
  readmecards logs 6f1c2d3e-... --since 2h`,
	Args: cobra.MaximumNArgs(1),
	RunE: getLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().Int("tail", 100, "Number of lines to show from the end")
	logsCmd.Flags().String("since", "", "Show logs since timestamp (e.g., 2024-01-01T00:00:00Z) or duration (e.g., 1h)")
	logsCmd.Flags().String("project", "", "GCP project (default from config or environment)")
}

func getLogs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	project, _ := cmd.Flags().GetString("project")
	if project == "" {
		project = cfg.Logging.CloudProject
	}
	if project == "" {
		if project, err = gcp.ProjectID(ctx); err != nil {
			return fmt.Errorf("cloud project not configured: %w", err)
		}
	}

	tail, _ := cmd.Flags().GetInt("tail")
	sinceStr, _ := cmd.Flags().GetString("since")
	since, err := parseSince(sinceStr, time.Now())
	if err != nil {
		return err
	}

	q := gcp.LogQuery{LogID: cfg.Logging.LogID, Since: since, Limit: tail}
	if len(args) == 1 {
		q.RunID = args[0]
	}

	reader, err := gcp.NewLogReader(ctx, project)
	if err != nil {
		return err
	}
	defer reader.Close()

	lines, err := reader.Read(ctx, q)
	if err != nil {
		return fmt.Errorf("error reading logs: %w", err)
	}
	for _, line := range lines {
		formatLogLine(os.Stdout, line)
	}
	return nil
}

// parseSince accepts a duration before now or an RFC3339 timestamp.
func parseSince(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if dur, err := time.ParseDuration(s); err == nil {
		return now.Add(-dur), nil
	}
	since, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --since value: %s", s)
	}
	return since, nil
}

func formatLogLine(w io.Writer, line gcp.LogLine) {
	prefix := ""
	if !line.Timestamp.IsZero() {
		prefix = "[" + line.Timestamp.Format("15:04:05") + "] "
	}
	if line.Severity != "" && line.Severity != string(logging.SeverityInfo) && line.Severity != "DEFAULT" {
		prefix += line.Severity + " "
	}
	if cmd := line.Labels["command"]; cmd != "" {
		prefix += "(" + cmd + ") "
	}
	fmt.Fprintf(w, "%s%s\n", prefix, line.Message)
}
