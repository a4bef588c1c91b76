package github

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shurcooL/githubv4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func actor(login string) actorNode {
	return actorNode{Login: login, AvatarURL: "https://avatars.example.com/" + login}
}

func comment(login string, offset time.Duration) commentNode {
	return commentNode{Author: actor(login), CreatedAt: baseTime.Add(offset)}
}

func minimalNode(number int) issueNode {
	n := issueNode{
		Number:    number,
		Title:     "Something",
		URL:       "https://github.com/o/r/issues/1",
		State:     githubv4.IssueStateOpen,
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
		Author:    actor("alice"),
	}
	return n
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		in        string
		wantTitle string
		wantType  IssueType
	}{
		{"[Feature] Add dark mode", "Add dark mode", IssueTypeFeature},
		{"[Bug] Crash on start", "Crash on start", IssueTypeBug},
		{"[bug] lowercase prefix", "[bug] lowercase prefix", IssueTypeOther},
		{"Plain title", "Plain title", IssueTypeOther},
		{"Fix [Bug] in middle", "Fix [Bug] in middle", IssueTypeOther},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			title, typ := parseTitle(tt.in)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantType, typ)
		})
	}
}

func TestCountTasks(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantCompleted int
		wantTotal     int
	}{
		{"empty", "", 0, 0},
		{"mixed", "- [x] a\n- [ ] b\n- [X] c", 2, 3},
		{"escaped", `\[x\] done \[ \] todo`, 1, 2},
		{"prose brackets count", "see [x] marker", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completed, total := countTasks(tt.body)
			assert.Equal(t, tt.wantCompleted, completed)
			assert.Equal(t, tt.wantTotal, total)
			assert.LessOrEqual(t, completed, total)
		})
	}
}

func TestParseReactions(t *testing.T) {
	var groups []reactionGroupNode
	payload := `[
		{"content":"THUMBS_UP","reactors":{"totalCount":3}},
		{"content":"HEART","reactors":{"totalCount":1}},
		{"content":"ROCKET","reactors":{"totalCount":0}}
	]`
	require.NoError(t, json.Unmarshal([]byte(payload), &groups))

	r := parseReactions(groups)
	assert.Equal(t, 3, r.PlusOne)
	assert.Equal(t, 1, r.Heart)
	assert.Equal(t, 0, r.Rocket)
	assert.Equal(t, 0, r.Eyes)
	assert.Equal(t, 4, r.Total())
}

func TestParseIssue_Contributors(t *testing.T) {
	n := minimalNode(1)
	n.Assignees.Nodes = []actorNode{actor("bob"), actor("alice")}
	n.Comments.TotalCount = 3
	n.Comments.Nodes = []commentNode{
		comment("dave", 2*time.Hour),
		comment("carol", time.Hour),
		comment("bob", 3*time.Hour),
	}

	issue, err := parseIssue(n)
	require.NoError(t, err)

	logins := make([]string, 0, len(issue.Contributors))
	for _, c := range issue.Contributors {
		logins = append(logins, c.Login)
	}
	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, logins)

	assert.Equal(t, "bob", issue.LastCommenter)
	assert.Equal(t, baseTime.Add(3*time.Hour), issue.LastCommentAt)
	assert.Equal(t, Interaction{User: "bob", Kind: InteractionCommented, At: baseTime.Add(3 * time.Hour)}, issue.LastInteraction)
	assert.Equal(t, 3, issue.CommentCount)
}

func TestParseIssue_NoComments(t *testing.T) {
	issue, err := parseIssue(minimalNode(5))
	require.NoError(t, err)

	assert.Empty(t, issue.LastCommenter)
	assert.Equal(t, Interaction{User: "alice", Kind: InteractionOpened, At: baseTime}, issue.LastInteraction)
	assert.Nil(t, issue.LinkedPR)
	assert.Nil(t, issue.Stats)
	assert.Empty(t, issue.LinkedBranch)
}

func TestParseIssue_GhostAuthor(t *testing.T) {
	n := minimalNode(2)
	n.Author = actorNode{}

	issue, err := parseIssue(n)
	require.NoError(t, err)
	assert.Equal(t, "ghost", issue.Author)
	assert.Empty(t, issue.Contributors)
}

func TestParseIssue_LabelsAndState(t *testing.T) {
	n := minimalNode(3)
	n.Title = "[Bug] Broken build"
	n.State = githubv4.IssueStateClosed
	n.IsPinned = true
	n.Body = "- [x] one\n- [ ] two"
	n.Labels.Nodes = []labelNode{{Name: "bug", Color: "d73a4a"}, {Name: "ui", Color: "#00ff00"}}

	issue, err := parseIssue(n)
	require.NoError(t, err)
	assert.Equal(t, "Broken build", issue.Title)
	assert.Equal(t, IssueTypeBug, issue.Type)
	assert.Equal(t, IssueStateClosed, issue.State)
	assert.True(t, issue.Pinned)
	assert.Equal(t, 1, issue.CompletedTasks)
	assert.Equal(t, 2, issue.TotalTasks)
	assert.Equal(t, []Label{{Name: "bug", Color: "#d73a4a"}, {Name: "ui", Color: "#00ff00"}}, issue.Labels)
}

func TestParseIssue_LinkedPRLastWins(t *testing.T) {
	n := minimalNode(4)
	var first, skipped, last timelineNode
	first.ConnectedEvent.Subject.PullRequest.Number = 10
	first.ConnectedEvent.Subject.PullRequest.State = githubv4.PullRequestStateClosed
	last.ConnectedEvent.Subject.PullRequest.Number = 12
	last.ConnectedEvent.Subject.PullRequest.State = githubv4.PullRequestStateMerged
	n.TimelineItems.Nodes = []timelineNode{first, last, skipped}
	n.LinkedBranches.Nodes = []linkedBranchNode{{}}
	n.LinkedBranches.Nodes[0].Ref.Name = "feature-x"

	issue, err := parseIssue(n)
	require.NoError(t, err)
	require.NotNil(t, issue.LinkedPR)
	assert.Equal(t, LinkedPR{Number: 12, State: PRStateMerged}, *issue.LinkedPR)
	assert.Empty(t, issue.LinkedBranch, "branch is only reported without a pull request")
}

func TestParseIssue_BranchFallback(t *testing.T) {
	n := minimalNode(6)
	n.LinkedBranches.Nodes = make([]linkedBranchNode, 2)
	n.LinkedBranches.Nodes[1].Ref.Name = "fix-it"

	issue, err := parseIssue(n)
	require.NoError(t, err)
	assert.Nil(t, issue.LinkedPR)
	assert.Equal(t, "fix-it", issue.LinkedBranch)
}

func TestParseIssue_Invalid(t *testing.T) {
	noNumber := minimalNode(0)
	_, err := parseIssue(noNumber)
	assert.Error(t, err)

	noURL := minimalNode(9)
	noURL.URL = ""
	_, err = parseIssue(noURL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#9")
}

func TestSelectTop(t *testing.T) {
	issues := []Issue{
		{Number: 1},
		{Number: 2, Pinned: true},
		{Number: 3},
		{Number: 4, Pinned: true},
		{Number: 5},
	}

	numbers := func(in []Issue) []int {
		out := make([]int, 0, len(in))
		for _, i := range in {
			out = append(out, i.Number)
		}
		return out
	}

	assert.Equal(t, []int{2, 4, 1}, numbers(selectTop(issues, 3)))
	assert.Equal(t, []int{2, 4, 1, 3, 5}, numbers(selectTop(issues, 10)))
	assert.Equal(t, []int{2}, numbers(selectTop(issues, 1)))
	assert.NotNil(t, selectTop(issues, 0))
	assert.Empty(t, selectTop(nil, 3))
}
