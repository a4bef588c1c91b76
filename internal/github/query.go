package github

import (
	"time"

	"github.com/shurcooL/githubv4"
)

// IssueFetchLimit is the number of recently updated issues requested per batch.
const IssueFetchLimit = 50

// CommentPageSize bounds the comments fetched per issue, passed as the
// $commentPageSize variable. Later comments do not contribute to contributors
// or the last commenter.
const CommentPageSize = 50

// LabelPageSize is the number of labels requested per page.
const LabelPageSize = 100

type actorNode struct {
	Login     string
	AvatarURL string `graphql:"avatarUrl(size: 40)"`
}

type labelNode struct {
	Name  string
	Color string
}

type commentNode struct {
	CreatedAt time.Time
	Author    actorNode
}

type reactionGroupNode struct {
	Content  githubv4.ReactionContent
	Reactors struct {
		TotalCount int
	}
}

type linkedBranchNode struct {
	Ref struct {
		Name string
	}
}

type timelineNode struct {
	ConnectedEvent struct {
		Subject struct {
			PullRequest struct {
				Number int
				State  githubv4.PullRequestState
			} `graphql:"... on PullRequest"`
		}
	} `graphql:"... on ConnectedEvent"`
}

type issueNode struct {
	Number    int
	Title     string
	IsPinned  bool
	URL       string
	State     githubv4.IssueState
	CreatedAt time.Time
	UpdatedAt time.Time
	Body      string
	Author    actorNode
	Labels    struct {
		Nodes []labelNode
	} `graphql:"labels(first: 10)"`
	Assignees struct {
		Nodes []actorNode
	} `graphql:"assignees(first: 10)"`
	Comments struct {
		TotalCount int
		Nodes      []commentNode
	} `graphql:"comments(first: $commentPageSize)"`
	ReactionGroups []reactionGroupNode
	LinkedBranches struct {
		Nodes []linkedBranchNode
	} `graphql:"linkedBranches(first: 10)"`
	TimelineItems struct {
		Nodes []timelineNode
	} `graphql:"timelineItems(itemTypes: [CONNECTED_EVENT], first: 10)"`
}

type issuesQuery struct {
	Repository struct {
		Issues struct {
			Nodes []issueNode
		} `graphql:"issues(first: $first, orderBy: {field: UPDATED_AT, direction: DESC})"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

type labelsQuery struct {
	Repository struct {
		Labels struct {
			Nodes []struct {
				Name   string
				Color  string
				Issues struct {
					TotalCount int
				} `graphql:"issues(states: OPEN)"`
			}
			PageInfo struct {
				EndCursor   githubv4.String
				HasNextPage bool
			}
		} `graphql:"labels(first: $labelPageSize, after: $labelCursor, query: $labelQuery)"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

type projectCountsQuery struct {
	Repository struct {
		Done struct {
			TotalCount int
		} `graphql:"done: issues(labels: [$label], states: CLOSED)"`
		NotDone struct {
			TotalCount int
		} `graphql:"notDone: issues(labels: [$label], states: OPEN)"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}
