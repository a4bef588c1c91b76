package github

import (
	"context"

	"github.com/shurcooL/githubv4"
)

// FetchTopIssues returns up to count issues, pinned first, from the most
// recently updated batch. Failures are logged and degrade to fewer or no
// issues; the result is never nil.
func (c *Client) FetchTopIssues(ctx context.Context, count int) []Issue {
	c.logger.Infof("Fetching %d most recently updated issues from %s...", IssueFetchLimit, c.Repository())

	var q issuesQuery
	vars := c.repoVariables()
	vars["first"] = githubv4.Int(IssueFetchLimit)
	vars["commentPageSize"] = githubv4.Int(CommentPageSize)

	if err := c.v4.Query(ctx, &q, vars); err != nil {
		c.logger.Errorf("Error fetching issues from GitHub API: %v", err)
		return []Issue{}
	}

	nodes := q.Repository.Issues.Nodes
	if len(nodes) == 0 {
		c.logger.Infof("No issues found in %s", c.Repository())
		return []Issue{}
	}
	c.logger.Debugf("Received %d issues from API, parsing", len(nodes))

	parsed := make([]Issue, 0, len(nodes))
	for _, n := range nodes {
		issue, err := parseIssue(n)
		if err != nil {
			c.logger.Errorf("Failed to parse issue #%d: %v", n.Number, err)
			continue
		}
		parsed = append(parsed, issue)
	}

	top := selectTop(parsed, count)
	for i := range top {
		c.attachStats(ctx, &top[i])
	}

	c.logger.Infof("Returning %d parsed issues", len(top))
	return top
}

// attachStats fills issue.Stats from the linked pull request, or the linked
// branch when no pull request is connected.
func (c *Client) attachStats(ctx context.Context, issue *Issue) {
	var (
		stats Stats
		ok    bool
	)
	switch {
	case issue.LinkedPR != nil:
		stats, ok = c.PRStats(ctx, issue.LinkedPR.Number)
	case issue.LinkedBranch != "":
		stats, ok = c.BranchStats(ctx, issue.LinkedBranch)
	default:
		return
	}
	if ok {
		issue.Stats = &stats
	}
}
