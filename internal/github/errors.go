package github

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v72/github"
)

// parseAPIError turns a REST failure into a message that names the likely
// misconfiguration. Errors that did not come from the GitHub API pass
// through unchanged.
func parseAPIError(err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("rate limited: %s (resets at %s)", rateErr.Message, rateErr.Rate.Reset.Time.UTC().Format(time.RFC3339))
	}

	var apiErr *gh.ErrorResponse
	if !errors.As(err, &apiErr) || apiErr.Response == nil {
		return err
	}

	statusCode := apiErr.Response.StatusCode
	switch statusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("unauthorized: %s (check the token or App private key)", apiErr.Message)
	case http.StatusForbidden:
		return fmt.Errorf("forbidden: %s (check token scopes or App permissions)", apiErr.Message)
	case http.StatusNotFound:
		return fmt.Errorf("not found: %s (check the repository, installation ID and access)", apiErr.Message)
	default:
		return fmt.Errorf("API error (status %d): %s", statusCode, apiErr.Message)
	}
}
