package github

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shurcooL/githubv4"
)

const (
	featurePrefix = "[Feature]"
	bugPrefix     = "[Bug]"
)

// parseTitle derives the issue type from a literal, case-sensitive title
// prefix and strips it.
func parseTitle(title string) (string, IssueType) {
	switch {
	case strings.HasPrefix(title, featurePrefix):
		return strings.TrimSpace(strings.TrimPrefix(title, featurePrefix)), IssueTypeFeature
	case strings.HasPrefix(title, bugPrefix):
		return strings.TrimSpace(strings.TrimPrefix(title, bugPrefix)), IssueTypeBug
	default:
		return title, IssueTypeOther
	}
}

// countTasks counts checklist markers in a markdown body, including the
// escaped forms some editors produce. Any "[x]" text counts, checklist or not.
func countTasks(body string) (completed, total int) {
	completed = strings.Count(body, "[x]") + strings.Count(body, `\[x\]`) +
		strings.Count(body, "[X]") + strings.Count(body, `\[X\]`)
	incomplete := strings.Count(body, "[ ]") + strings.Count(body, `\[ \]`)
	return completed, completed + incomplete
}

func parseReactions(groups []reactionGroupNode) Reactions {
	var r Reactions
	for _, g := range groups {
		n := g.Reactors.TotalCount
		switch g.Content {
		case githubv4.ReactionContentThumbsUp:
			r.PlusOne = n
		case githubv4.ReactionContentThumbsDown:
			r.MinusOne = n
		case githubv4.ReactionContentLaugh:
			r.Laugh = n
		case githubv4.ReactionContentHooray:
			r.Hooray = n
		case githubv4.ReactionContentConfused:
			r.Confused = n
		case githubv4.ReactionContentHeart:
			r.Heart = n
		case githubv4.ReactionContentRocket:
			r.Rocket = n
		case githubv4.ReactionContentEyes:
			r.Eyes = n
		}
	}
	return r
}

// contributorSet keeps contributors in insertion order; the first avatar seen
// for a login wins.
type contributorSet struct {
	list []Contributor
	seen map[string]struct{}
}

func newContributorSet() *contributorSet {
	return &contributorSet{seen: make(map[string]struct{})}
}

func (s *contributorSet) add(a actorNode) {
	if a.Login == "" {
		return
	}
	if _, ok := s.seen[a.Login]; ok {
		return
	}
	s.seen[a.Login] = struct{}{}
	s.list = append(s.list, Contributor{Login: a.Login, AvatarURL: a.AvatarURL})
}

func sortedComments(nodes []commentNode) []commentNode {
	comments := make([]commentNode, len(nodes))
	copy(comments, nodes)
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments
}

func parsePRState(s githubv4.PullRequestState) PRState {
	switch s {
	case githubv4.PullRequestStateMerged:
		return PRStateMerged
	case githubv4.PullRequestStateClosed:
		return PRStateClosed
	default:
		return PRStateOpen
	}
}

// linkedPR returns the last connected pull request in API order.
func linkedPR(nodes []timelineNode) *LinkedPR {
	var pr *LinkedPR
	for _, n := range nodes {
		subject := n.ConnectedEvent.Subject.PullRequest
		if subject.Number == 0 {
			continue
		}
		pr = &LinkedPR{Number: subject.Number, State: parsePRState(subject.State)}
	}
	return pr
}

func linkedBranch(nodes []linkedBranchNode) string {
	for _, n := range nodes {
		if n.Ref.Name != "" {
			return n.Ref.Name
		}
	}
	return ""
}

// parseIssue maps a GraphQL issue node onto an Issue.
func parseIssue(n issueNode) (Issue, error) {
	if n.Number <= 0 {
		return Issue{}, fmt.Errorf("missing issue number")
	}
	if n.URL == "" {
		return Issue{}, fmt.Errorf("issue #%d: missing url", n.Number)
	}

	title, issueType := parseTitle(n.Title)

	state := IssueStateOpen
	if n.State == githubv4.IssueStateClosed {
		state = IssueStateClosed
	}

	labels := make([]Label, 0, len(n.Labels.Nodes))
	for _, l := range n.Labels.Nodes {
		labels = append(labels, Label{Name: l.Name, Color: "#" + strings.TrimPrefix(l.Color, "#")})
	}

	author := n.Author.Login
	if author == "" {
		author = "ghost"
	}

	contributors := newContributorSet()
	contributors.add(n.Author)
	for _, a := range n.Assignees.Nodes {
		contributors.add(a)
	}
	comments := sortedComments(n.Comments.Nodes)
	for _, c := range comments {
		contributors.add(c.Author)
	}

	completed, total := countTasks(n.Body)

	issue := Issue{
		Number:         n.Number,
		Title:          title,
		Type:           issueType,
		State:          state,
		URL:            n.URL,
		Author:         author,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
		Labels:         labels,
		Contributors:   contributors.list,
		Reactions:      parseReactions(n.ReactionGroups),
		Pinned:         n.IsPinned,
		CompletedTasks: completed,
		TotalTasks:     total,
		CommentCount:   n.Comments.TotalCount,
		LastInteraction: Interaction{
			User: author,
			Kind: InteractionOpened,
			At:   n.CreatedAt,
		},
		LinkedPR: linkedPR(n.TimelineItems.Nodes),
	}

	if len(comments) > 0 {
		last := comments[len(comments)-1]
		issue.LastCommenter = last.Author.Login
		issue.LastCommentAt = last.CreatedAt
		issue.LastInteraction = Interaction{
			User: last.Author.Login,
			Kind: InteractionCommented,
			At:   last.CreatedAt,
		}
	}

	if issue.LinkedPR == nil {
		issue.LinkedBranch = linkedBranch(n.LinkedBranches.Nodes)
	}

	return issue, nil
}

// selectTop returns pinned issues first, then the rest, each group in input
// order, capped at count.
func selectTop(issues []Issue, count int) []Issue {
	if count <= 0 {
		return []Issue{}
	}
	top := make([]Issue, 0, count)
	for _, pinned := range []bool{true, false} {
		for _, issue := range issues {
			if len(top) == count {
				return top
			}
			if issue.Pinned == pinned {
				top = append(top, issue)
			}
		}
	}
	return top
}
