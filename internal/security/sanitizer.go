// Package security redacts credentials before they reach log output.
package security

import (
	"regexp"
)

var (
	// Classic and fine-grained GitHub tokens (personal, OAuth, installation, refresh).
	githubTokenPattern = regexp.MustCompile(`\b(gh[pousr]_[A-Za-z0-9]{36,}|github_pat_[A-Za-z0-9_]{22,})`)

	bearerTokenPattern = regexp.MustCompile(`(?i)bearer[[:space:]]+([a-zA-Z0-9_\-\.=]+)`)

	jwtPattern = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]*\.eyJ[a-zA-Z0-9_-]*\.[a-zA-Z0-9_-]*`)

	privateKeyPattern = regexp.MustCompile(`(?s)-----BEGIN[[:space:]]+(?:RSA[[:space:]]+)?PRIVATE[[:space:]]+KEY-----.*?-----END[[:space:]]+(?:RSA[[:space:]]+)?PRIVATE[[:space:]]+KEY-----`)

	urlPasswordPattern = regexp.MustCompile(`(?i)(https?)://[^:/@\s]+:([^@\s]+)@`)

	// Credentials passed as query parameters, e.g. signed storage URLs.
	queryTokenPattern = regexp.MustCompile(`(?i)([?&](?:access_token|token|sig|X-Goog-Signature)=)[^&\s]+`)

	gcpServiceAccountPattern = regexp.MustCompile(`"private_key":\s*"[^"]+"`)
)

// LogSanitizer masks secrets in log messages.
type LogSanitizer struct {
	customPatterns []*regexp.Regexp
}

// NewLogSanitizer creates a sanitizer with the built-in patterns.
func NewLogSanitizer() *LogSanitizer {
	return &LogSanitizer{}
}

// AddCustomPattern registers an extra pattern whose matches are replaced with [REDACTED].
func (ls *LogSanitizer) AddCustomPattern(pattern *regexp.Regexp) {
	ls.customPatterns = append(ls.customPatterns, pattern)
}

// AddSecret registers a literal value (for example the configured API token)
// that must never appear in output.
func (ls *LogSanitizer) AddSecret(secret string) {
	if len(secret) < 8 {
		return
	}
	ls.AddCustomPattern(regexp.MustCompile(regexp.QuoteMeta(secret)))
}

// Sanitize returns message with every known secret pattern replaced.
func (ls *LogSanitizer) Sanitize(message string) string {
	for _, pattern := range ls.customPatterns {
		message = pattern.ReplaceAllString(message, "[REDACTED]")
	}

	message = privateKeyPattern.ReplaceAllString(message, "[REDACTED-PRIVATE-KEY]")
	message = gcpServiceAccountPattern.ReplaceAllString(message, `"private_key": "[REDACTED]"`)
	message = githubTokenPattern.ReplaceAllString(message, "[REDACTED-GITHUB-TOKEN]")
	message = jwtPattern.ReplaceAllString(message, "[REDACTED-JWT]")
	message = bearerTokenPattern.ReplaceAllString(message, "Bearer [REDACTED]")
	message = urlPasswordPattern.ReplaceAllString(message, "${1}://[REDACTED]@")
	message = queryTokenPattern.ReplaceAllString(message, "${1}[REDACTED]")

	return message
}

// SanitizeMap sanitizes every value of m into a new map.
func (ls *LogSanitizer) SanitizeMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	sanitized := make(map[string]string, len(m))
	for k, v := range m {
		sanitized[k] = ls.Sanitize(v)
	}
	return sanitized
}
