package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/shurcooL/githubv4"
)

// FetchStatusLabels returns repository labels whose name starts with prefix
// (all labels when prefix is empty) with their open issue counts. Labels are
// searched by prefix on the server and read page by page. Failures are logged
// and yield an empty slice.
func (c *Client) FetchStatusLabels(ctx context.Context, prefix string) []StatusLabel {
	c.logger.Infof("Fetching labels from %s...", c.Repository())

	vars := c.repoVariables()
	vars["labelPageSize"] = githubv4.Int(LabelPageSize)
	vars["labelQuery"] = githubv4.String(prefix)
	vars["labelCursor"] = (*githubv4.String)(nil)

	labels := []StatusLabel{}
	for {
		var q labelsQuery
		if err := c.v4.Query(ctx, &q, vars); err != nil {
			c.logger.Errorf("Error fetching labels from GitHub API: %v", err)
			return []StatusLabel{}
		}

		for _, n := range q.Repository.Labels.Nodes {
			// the label search also matches descriptions and inner substrings
			if !strings.HasPrefix(n.Name, prefix) {
				continue
			}
			labels = append(labels, StatusLabel{
				Name:  n.Name,
				Color: "#" + strings.TrimPrefix(n.Color, "#"),
				Count: n.Issues.TotalCount,
			})
		}

		page := q.Repository.Labels.PageInfo
		if !page.HasNextPage || page.EndCursor == "" {
			break
		}
		vars["labelCursor"] = githubv4.NewString(page.EndCursor)
	}

	c.logger.Infof("Returning %d status labels", len(labels))
	return labels
}

// FetchProjectCounts returns the number of closed (done) and open (not done)
// issues carrying label.
func (c *Client) FetchProjectCounts(ctx context.Context, label string) (done, notDone int, err error) {
	if label == "" {
		return 0, 0, fmt.Errorf("tracking label cannot be empty")
	}

	var q projectCountsQuery
	vars := c.repoVariables()
	vars["label"] = githubv4.String(label)

	if err := c.v4.Query(ctx, &q, vars); err != nil {
		return 0, 0, fmt.Errorf("failed to count issues labeled %q: %w", label, err)
	}
	return q.Repository.Done.TotalCount, q.Repository.NotDone.TotalCount, nil
}
