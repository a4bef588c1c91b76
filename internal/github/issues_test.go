package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const issuesResponse = `{"data":{"repository":{"issues":{"nodes":[
  {
    "number": 1, "title": "[Feature] Plain one", "isPinned": false,
    "url": "https://github.com/o/r/issues/1", "state": "OPEN",
    "createdAt": "2024-03-01T12:00:00Z", "updatedAt": "2024-03-05T12:00:00Z",
    "body": "- [x] a\n- [ ] b",
    "author": {"login": "alice", "avatarUrl": "https://a/alice"},
    "labels": {"nodes": [{"name": "enhancement", "color": "a2eeef"}]},
    "assignees": {"nodes": []},
    "comments": {"totalCount": 1, "nodes": [
      {"createdAt": "2024-03-04T12:00:00Z", "author": {"login": "bob", "avatarUrl": "https://a/bob"}}
    ]},
    "reactionGroups": [{"content": "THUMBS_UP", "reactors": {"totalCount": 2}}],
    "linkedBranches": {"nodes": []},
    "timelineItems": {"nodes": [{"subject": {"number": 42, "state": "OPEN"}}]}
  },
  {
    "number": 0, "title": "broken", "url": "", "state": "OPEN",
    "createdAt": "2024-03-01T12:00:00Z", "updatedAt": "2024-03-01T12:00:00Z",
    "author": null, "labels": {"nodes": []}, "assignees": {"nodes": []},
    "comments": {"totalCount": 0, "nodes": []}, "reactionGroups": [],
    "linkedBranches": {"nodes": []}, "timelineItems": {"nodes": []}
  },
  {
    "number": 2, "title": "[Bug] Pinned", "isPinned": true,
    "url": "https://github.com/o/r/issues/2", "state": "OPEN",
    "createdAt": "2024-03-01T12:00:00Z", "updatedAt": "2024-03-02T12:00:00Z",
    "body": "",
    "author": {"login": "carol", "avatarUrl": "https://a/carol"},
    "labels": {"nodes": []}, "assignees": {"nodes": []},
    "comments": {"totalCount": 0, "nodes": []}, "reactionGroups": [],
    "linkedBranches": {"nodes": [{"ref": {"name": "feature-x"}}]},
    "timelineItems": {"nodes": []}
  },
  {
    "number": 3, "title": "Third", "isPinned": false,
    "url": "https://github.com/o/r/issues/3", "state": "CLOSED",
    "createdAt": "2024-03-01T12:00:00Z", "updatedAt": "2024-03-01T12:00:00Z",
    "body": "",
    "author": {"login": "dave", "avatarUrl": "https://a/dave"},
    "labels": {"nodes": []}, "assignees": {"nodes": []},
    "comments": {"totalCount": 0, "nodes": []}, "reactionGroups": [],
    "linkedBranches": {"nodes": []}, "timelineItems": {"nodes": []}
  }
]}}}}`

const labelsResponse = `{"data":{"repository":{"labels":{"nodes":[
  {"name": "Status: In Progress", "color": "fbca04", "issues": {"totalCount": 4}},
  {"name": "bug", "color": "d73a4a", "issues": {"totalCount": 9}},
  {"name": "Status: Done", "color": "0e8a16", "issues": {"totalCount": 0}}
]}}}}`

const countsResponse = `{"data":{"repository":{"done":{"totalCount":7},"notDone":{"totalCount":3}}}}`

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// newFakeGitHub serves canned GraphQL and REST responses. graphql picks the
// response body for a decoded request.
func newFakeGitHub(t *testing.T, graphql func(req graphqlRequest) (int, string)) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req graphqlRequest
		require.NoError(t, json.Unmarshal(body, &req))

		status, resp := graphql(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, resp)
	})
	mux.HandleFunc("/repos/o/r/pulls/42", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"number":42,"commits":3,"changed_files":5,"additions":120,"deletions":7}`)
	})
	mux.HandleFunc("/repos/o/r", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"name":"r","default_branch":"main"}`)
	})
	mux.HandleFunc("/repos/o/r/compare/main...feature-x", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"total_commits":2,"files":[
			{"filename":"a.go","additions":10,"deletions":1},
			{"filename":"b.go","additions":5,"deletions":4}
		]}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := NewClient(server.Client(), "o", "r",
		WithGraphQLURL(server.URL+"/graphql"),
		WithRESTBaseURL(server.URL),
	)
	require.NoError(t, err)
	return client
}

func TestFetchTopIssues(t *testing.T) {
	client := newFakeGitHub(t, func(req graphqlRequest) (int, string) {
		assert.Contains(t, req.Query, "issues(first: $first")
		assert.Equal(t, "o", req.Variables["owner"])
		assert.Equal(t, "r", req.Variables["name"])
		assert.EqualValues(t, IssueFetchLimit, req.Variables["first"])
		assert.Contains(t, req.Query, "comments(first: $commentPageSize)")
		assert.EqualValues(t, CommentPageSize, req.Variables["commentPageSize"])
		return http.StatusOK, issuesResponse
	})

	issues := client.FetchTopIssues(context.Background(), 2)
	require.Len(t, issues, 2)

	pinned := issues[0]
	assert.Equal(t, 2, pinned.Number)
	assert.True(t, pinned.Pinned)
	assert.Equal(t, IssueTypeBug, pinned.Type)
	assert.Equal(t, "feature-x", pinned.LinkedBranch)
	require.NotNil(t, pinned.Stats)
	assert.Equal(t, Stats{Commits: 2, Files: 2, Additions: 15, Deletions: 5}, *pinned.Stats)

	first := issues[1]
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, "Plain one", first.Title)
	assert.Equal(t, IssueTypeFeature, first.Type)
	assert.Equal(t, []Label{{Name: "enhancement", Color: "#a2eeef"}}, first.Labels)
	assert.Equal(t, 2, first.Reactions.PlusOne)
	assert.Equal(t, "bob", first.LastCommenter)
	assert.Equal(t, InteractionCommented, first.LastInteraction.Kind)
	require.NotNil(t, first.LinkedPR)
	assert.Equal(t, 42, first.LinkedPR.Number)
	require.NotNil(t, first.Stats)
	assert.Equal(t, Stats{Commits: 3, Files: 5, Additions: 120, Deletions: 7}, *first.Stats)
}

func TestFetchTopIssues_SkipsUnparseable(t *testing.T) {
	client := newFakeGitHub(t, func(graphqlRequest) (int, string) {
		return http.StatusOK, issuesResponse
	})

	issues := client.FetchTopIssues(context.Background(), 10)
	numbers := make([]int, 0, len(issues))
	for _, i := range issues {
		numbers = append(numbers, i.Number)
	}
	assert.Equal(t, []int{2, 1, 3}, numbers)
}

func TestFetchTopIssues_Failure(t *testing.T) {
	client := newFakeGitHub(t, func(graphqlRequest) (int, string) {
		return http.StatusBadGateway, `{"message":"upstream"}`
	})

	issues := client.FetchTopIssues(context.Background(), 5)
	assert.NotNil(t, issues)
	assert.Empty(t, issues)
}

func TestFetchTopIssues_GraphQLErrors(t *testing.T) {
	client := newFakeGitHub(t, func(graphqlRequest) (int, string) {
		return http.StatusOK, `{"data":null,"errors":[{"message":"Could not resolve to a Repository"}]}`
	})

	issues := client.FetchTopIssues(context.Background(), 5)
	assert.NotNil(t, issues)
	assert.Empty(t, issues)
}

func TestFetchStatusLabels(t *testing.T) {
	var queries []string
	client := newFakeGitHub(t, func(req graphqlRequest) (int, string) {
		assert.True(t, strings.Contains(req.Query, "labels(first: $labelPageSize, after: $labelCursor, query: $labelQuery)"))
		assert.EqualValues(t, LabelPageSize, req.Variables["labelPageSize"])
		assert.Nil(t, req.Variables["labelCursor"])
		queries = append(queries, req.Variables["labelQuery"].(string))
		return http.StatusOK, labelsResponse
	})

	labels := client.FetchStatusLabels(context.Background(), "Status: ")
	assert.Equal(t, []StatusLabel{
		{Name: "Status: In Progress", Color: "#fbca04", Count: 4},
		{Name: "Status: Done", Color: "#0e8a16", Count: 0},
	}, labels)

	all := client.FetchStatusLabels(context.Background(), "")
	assert.Len(t, all, 3)
	assert.Equal(t, []string{"Status: ", ""}, queries)
}

func TestFetchStatusLabels_Paginates(t *testing.T) {
	pages := map[string]string{
		"": `{"data":{"repository":{"labels":{
  "nodes":[{"name":"status: todo","color":"ededed","issues":{"totalCount":2}}],
  "pageInfo":{"endCursor":"c1","hasNextPage":true}}}}}`,
		"c1": `{"data":{"repository":{"labels":{
  "nodes":[
    {"name":"needs status: review","color":"ededed","issues":{"totalCount":5}},
    {"name":"status: done","color":"0e8a16","issues":{"totalCount":1}}],
  "pageInfo":{"endCursor":"c2","hasNextPage":false}}}}}`,
	}
	var cursors []string
	client := newFakeGitHub(t, func(req graphqlRequest) (int, string) {
		cursor, _ := req.Variables["labelCursor"].(string)
		cursors = append(cursors, cursor)
		return http.StatusOK, pages[cursor]
	})

	labels := client.FetchStatusLabels(context.Background(), "status:")
	assert.Equal(t, []string{"", "c1"}, cursors)
	assert.Equal(t, []StatusLabel{
		{Name: "status: todo", Color: "#ededed", Count: 2},
		{Name: "status: done", Color: "#0e8a16", Count: 1},
	}, labels)
}

func TestFetchStatusLabels_Failure(t *testing.T) {
	client := newFakeGitHub(t, func(graphqlRequest) (int, string) {
		return http.StatusInternalServerError, `oops`
	})

	labels := client.FetchStatusLabels(context.Background(), "Status: ")
	assert.NotNil(t, labels)
	assert.Empty(t, labels)
}

func TestFetchProjectCounts(t *testing.T) {
	client := newFakeGitHub(t, func(req graphqlRequest) (int, string) {
		assert.Equal(t, "project:alpha", req.Variables["label"])
		return http.StatusOK, countsResponse
	})

	done, notDone, err := client.FetchProjectCounts(context.Background(), "project:alpha")
	require.NoError(t, err)
	assert.Equal(t, 7, done)
	assert.Equal(t, 3, notDone)

	_, _, err = client.FetchProjectCounts(context.Background(), "")
	assert.Error(t, err)
}

func TestPRStats_Unavailable(t *testing.T) {
	client := newFakeGitHub(t, func(graphqlRequest) (int, string) {
		return http.StatusOK, `{}`
	})

	_, ok := client.PRStats(context.Background(), 999)
	assert.False(t, ok)
}

func TestPRStats_SendsUserAgent(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"number":7,"commits":1}`)
	}))
	defer server.Close()

	client, err := NewClient(server.Client(), "o", "r",
		WithRESTBaseURL(server.URL),
		WithUserAgent("readmecards/v9.9.9"),
	)
	require.NoError(t, err)

	_, ok := client.PRStats(context.Background(), 7)
	require.True(t, ok)
	assert.Equal(t, "readmecards/v9.9.9", got)
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(nil, "", "r")
	assert.Error(t, err)

	c, err := NewClient(nil, "o", "r")
	require.NoError(t, err)
	assert.Equal(t, "o/r", c.Repository())
}
