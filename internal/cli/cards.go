package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andywolf/readmecards/internal/github"
	"github.com/andywolf/readmecards/internal/logging"
	"github.com/andywolf/readmecards/internal/render"
)

type issueSource interface {
	FetchTopIssues(ctx context.Context, count int) []github.Issue
}

type labelSource interface {
	FetchStatusLabels(ctx context.Context, prefix string) []github.StatusLabel
}

// writeIssueCards renders the top count issues into dir and returns the
// written paths in rank order.
func writeIssueCards(ctx context.Context, src issueSource, r *render.Renderer, count int, dir string, logger logging.Logger) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	issues := src.FetchTopIssues(ctx, count)
	logger.Infof("Rendering %d issue cards into %s", len(issues), dir)

	written := make([]string, 0, len(issues))
	for i, issue := range issues {
		path := filepath.Join(dir, render.IssueFileName(i))
		if err := writeCard(path, r.IssueSVG(ctx, issue)); err != nil {
			return written, err
		}
		logger.Debugf("Wrote #%d to %s", issue.Number, path)
		written = append(written, path)
	}
	return written, nil
}

// writeStatusCards renders one card per label carrying prefix.
func writeStatusCards(ctx context.Context, src labelSource, prefix, dir string, logger logging.Logger) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	labels := src.FetchStatusLabels(ctx, prefix)
	logger.Infof("Rendering %d status cards into %s", len(labels), dir)

	written := make([]string, 0, len(labels))
	for _, label := range labels {
		path := filepath.Join(dir, render.StatusFileName(label.Name))
		if err := writeCard(path, render.StatusSVG(label)); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeCard(path, svg string) error {
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func newRenderer(a *app) *render.Renderer {
	opts := []render.Option{
		render.WithLogger(a.logger),
		render.WithRightAlignedLabels(a.cfg.Cards.LabelsAlign == "right"),
	}
	if a.cfg.Cards.Avatars {
		opts = append(opts, render.WithAvatarFetcher(render.NewHTTPAvatarFetcher(nil)))
	}
	return render.NewRenderer(opts...)
}
