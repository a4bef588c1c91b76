package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/v72/github"
	"golang.org/x/oauth2"
)

// TokenRefreshBuffer is how long before expiry an installation token is
// replaced.
const TokenRefreshBuffer = 5 * time.Minute

// AppCredentials identify a GitHub App installation.
type AppCredentials struct {
	AppID          string
	InstallationID int64
	PrivateKey     []byte
}

// StaticTokenSource wraps a personal or workflow token.
func StaticTokenSource(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
}

type installationTokenSource struct {
	jwt            *JWTGenerator
	installationID int64
	httpClient     *http.Client
	baseURL        *url.URL
}

// InstallationOption configures NewInstallationTokenSource.
type InstallationOption func(*installationTokenSource)

// WithInstallationHTTPClient sets the client used for the token exchange.
func WithInstallationHTTPClient(c *http.Client) InstallationOption {
	return func(s *installationTokenSource) {
		s.httpClient = c
	}
}

// WithInstallationBaseURL points the token exchange at a custom REST base URL.
func WithInstallationBaseURL(u *url.URL) InstallationOption {
	return func(s *installationTokenSource) {
		s.baseURL = u
	}
}

// NewInstallationTokenSource returns a token source minting installation
// tokens from a signed App JWT. Tokens are reused until TokenRefreshBuffer
// before they expire.
func NewInstallationTokenSource(creds AppCredentials, opts ...InstallationOption) (oauth2.TokenSource, error) {
	if creds.InstallationID <= 0 {
		return nil, fmt.Errorf("installation ID must be positive")
	}
	if len(creds.PrivateKey) == 0 {
		return nil, fmt.Errorf("private key cannot be empty")
	}

	gen, err := NewJWTGenerator(creds.AppID, creds.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT generator: %w", err)
	}

	src := &installationTokenSource{
		jwt:            gen,
		installationID: creds.InstallationID,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(src)
	}

	return oauth2.ReuseTokenSource(nil, src), nil
}

// Token exchanges a fresh JWT for an installation token.
func (s *installationTokenSource) Token() (*oauth2.Token, error) {
	signed, err := s.jwt.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	client := gh.NewClient(s.httpClient).WithAuthToken(signed)
	if s.baseURL != nil {
		client.BaseURL = s.baseURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tok, _, err := client.Apps.CreateInstallationToken(ctx, s.installationID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange token for installation %d: %w", s.installationID, parseAPIError(err))
	}
	if tok.GetToken() == "" {
		return nil, fmt.Errorf("empty installation token for installation %d", s.installationID)
	}

	return &oauth2.Token{
		AccessToken: tok.GetToken(),
		TokenType:   "Bearer",
		Expiry:      tok.GetExpiresAt().Time.Add(-TokenRefreshBuffer),
	}, nil
}

// NewHTTPClient returns an authenticated HTTP client for API calls.
func NewHTTPClient(ctx context.Context, ts oauth2.TokenSource) *http.Client {
	client := oauth2.NewClient(ctx, ts)
	client.Timeout = 30 * time.Second
	return client
}
