package github

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v72/github"
	"github.com/shurcooL/githubv4"

	"github.com/andywolf/readmecards/internal/logging"
)

const (
	defaultGraphQLURL = "https://api.github.com/graphql"
	defaultRESTURL    = "https://api.github.com/"
)

// Client reads one repository through the GraphQL and REST APIs.
type Client struct {
	v4     *githubv4.Client
	v3     *gh.Client
	owner  string
	repo   string
	logger logging.Logger

	defaultBranch string
}

type clientOptions struct {
	graphqlURL    string
	restURL       string
	logger        logging.Logger
	defaultBranch string
	userAgent     string
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

// WithGraphQLURL points GraphQL queries at a custom endpoint (GHES or tests).
func WithGraphQLURL(u string) ClientOption {
	return func(o *clientOptions) {
		o.graphqlURL = u
	}
}

// WithRESTBaseURL points REST calls at a custom base URL (GHES or tests).
func WithRESTBaseURL(u string) ClientOption {
	return func(o *clientOptions) {
		o.restURL = u
	}
}

// WithLogger sets the logger used for degraded results.
func WithLogger(l logging.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithUserAgent sets the User-Agent sent on REST calls.
func WithUserAgent(ua string) ClientOption {
	return func(o *clientOptions) {
		o.userAgent = ua
	}
}

// WithDefaultBranch sets the base branch for linked-branch comparisons,
// skipping the repository lookup.
func WithDefaultBranch(branch string) ClientOption {
	return func(o *clientOptions) {
		o.defaultBranch = branch
	}
}

// NewClient creates a Client for owner/repo. httpClient carries authentication;
// nil uses an unauthenticated client with a 30s timeout.
func NewClient(httpClient *http.Client, owner, repo string, opts ...ClientOption) (*Client, error) {
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("repository owner and name are required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	o := clientOptions{
		graphqlURL: defaultGraphQLURL,
		restURL:    defaultRESTURL,
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	restURL := o.restURL
	if !strings.HasSuffix(restURL, "/") {
		restURL += "/"
	}
	baseURL, err := url.Parse(restURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REST base URL %q: %w", o.restURL, err)
	}

	v3 := gh.NewClient(httpClient)
	v3.BaseURL = baseURL
	if o.userAgent != "" {
		v3.UserAgent = o.userAgent
	}

	return &Client{
		v4:            githubv4.NewEnterpriseClient(o.graphqlURL, httpClient),
		v3:            v3,
		owner:         owner,
		repo:          repo,
		logger:        o.logger,
		defaultBranch: o.defaultBranch,
	}, nil
}

// Repository returns "owner/repo".
func (c *Client) Repository() string {
	return c.owner + "/" + c.repo
}

func (c *Client) repoVariables() map[string]interface{} {
	return map[string]interface{}{
		"owner": githubv4.String(c.owner),
		"name":  githubv4.String(c.repo),
	}
}
