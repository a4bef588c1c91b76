package github

import (
	"context"
	"fmt"
)

// PRStats returns commit and diff counts of pull request number. ok is false
// when the stats are unavailable for any reason.
func (c *Client) PRStats(ctx context.Context, number int) (stats Stats, ok bool) {
	pr, _, err := c.v3.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		c.logger.Warningf("PR #%d stats unavailable: %v", number, parseAPIError(err))
		return Stats{}, false
	}
	return Stats{
		Commits:   pr.GetCommits(),
		Files:     pr.GetChangedFiles(),
		Additions: pr.GetAdditions(),
		Deletions: pr.GetDeletions(),
	}, true
}

// BranchStats compares branch against the repository default branch. ok is
// false when the stats are unavailable for any reason.
func (c *Client) BranchStats(ctx context.Context, branch string) (stats Stats, ok bool) {
	base, err := c.baseBranch(ctx)
	if err != nil {
		c.logger.Warningf("Branch %q stats unavailable: %v", branch, err)
		return Stats{}, false
	}

	cmp, _, err := c.v3.Repositories.CompareCommits(ctx, c.owner, c.repo, base, branch, nil)
	if err != nil {
		c.logger.Warningf("Branch %q stats unavailable: %v", branch, parseAPIError(err))
		return Stats{}, false
	}

	stats = Stats{
		Commits: cmp.GetTotalCommits(),
		Files:   len(cmp.Files),
	}
	for _, f := range cmp.Files {
		stats.Additions += f.GetAdditions()
		stats.Deletions += f.GetDeletions()
	}
	return stats, true
}

func (c *Client) baseBranch(ctx context.Context) (string, error) {
	if c.defaultBranch != "" {
		return c.defaultBranch, nil
	}
	repo, _, err := c.v3.Repositories.Get(ctx, c.owner, c.repo)
	if err != nil {
		return "", fmt.Errorf("failed to look up default branch: %w", parseAPIError(err))
	}
	if repo.GetDefaultBranch() == "" {
		return "", fmt.Errorf("repository %s has no default branch", c.Repository())
	}
	c.defaultBranch = repo.GetDefaultBranch()
	return c.defaultBranch, nil
}
