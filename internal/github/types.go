// Package github fetches issues, labels and pull request statistics from the
// GitHub GraphQL and REST APIs and normalizes them into flat records.
package github

import "time"

// IssueType is derived from the issue title prefix.
type IssueType int

const (
	IssueTypeOther IssueType = iota
	IssueTypeBug
	IssueTypeFeature
)

func (t IssueType) String() string {
	switch t {
	case IssueTypeBug:
		return "bug"
	case IssueTypeFeature:
		return "feature"
	default:
		return "other"
	}
}

// IssueState is open or closed.
type IssueState int

const (
	IssueStateOpen IssueState = iota
	IssueStateClosed
)

func (s IssueState) String() string {
	if s == IssueStateClosed {
		return "closed"
	}
	return "open"
}

// PRState is the state of a linked pull request.
type PRState int

const (
	PRStateOpen PRState = iota
	PRStateClosed
	PRStateMerged
)

func (s PRState) String() string {
	switch s {
	case PRStateClosed:
		return "closed"
	case PRStateMerged:
		return "merged"
	default:
		return "open"
	}
}

// InteractionKind describes the latest activity on an issue.
type InteractionKind int

const (
	InteractionOpened InteractionKind = iota
	InteractionCommented
)

func (k InteractionKind) String() string {
	if k == InteractionCommented {
		return "commented"
	}
	return "opened"
}

// Label is a repository label attached to an issue.
type Label struct {
	Name  string
	Color string // hex with leading '#'
}

// Reactions counts each reaction kind. Kinds the API omits stay zero.
type Reactions struct {
	PlusOne  int
	MinusOne int
	Laugh    int
	Hooray   int
	Confused int
	Heart    int
	Rocket   int
	Eyes     int
}

// Total returns the sum of all reaction counters.
func (r Reactions) Total() int {
	return r.PlusOne + r.MinusOne + r.Laugh + r.Hooray + r.Confused + r.Heart + r.Rocket + r.Eyes
}

// Contributor is a user who took part in an issue.
type Contributor struct {
	Login     string
	AvatarURL string
}

// Interaction is the most recent activity on an issue.
type Interaction struct {
	User string
	Kind InteractionKind
	At   time.Time
}

// LinkedPR is a pull request connected to an issue.
type LinkedPR struct {
	Number int
	State  PRState
}

// Stats summarizes the commits of a linked pull request or branch.
type Stats struct {
	Commits   int
	Files     int
	Additions int
	Deletions int
}

// Issue is a normalized issue record. A fresh value is built on every fetch.
type Issue struct {
	Number    int
	Title     string // without the [Feature] or [Bug] prefix
	Type      IssueType
	State     IssueState
	URL       string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Labels    []Label

	// Contributors are ordered by first appearance: author, assignees,
	// then commenters by comment time. Logins are unique.
	Contributors []Contributor

	Reactions      Reactions
	Pinned         bool
	CompletedTasks int
	TotalTasks     int
	CommentCount   int

	LastCommenter   string
	LastCommentAt   time.Time
	LastInteraction Interaction

	LinkedBranch string    // empty when no branch is linked
	LinkedPR     *LinkedPR // nil when no pull request is connected
	Stats        *Stats    // nil when unavailable
}

// StatusLabel is a workflow label with the number of open issues carrying it.
type StatusLabel struct {
	Name  string
	Color string
	Count int
}
