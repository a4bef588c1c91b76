// Package logging defines the logger handed to every component and a
// structured JSON implementation compatible with Cloud Logging agents.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/andywolf/readmecards/internal/security"
)

// Severity levels for structured logs
type Severity string

const (
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityWarning Severity = "WARNING"
	SeverityError   Severity = "ERROR"
)

var severityRank = map[Severity]int{
	SeverityDebug:   0,
	SeverityInfo:    1,
	SeverityWarning: 2,
	SeverityError:   3,
}

// Enabled reports whether s is at or above min.
func (s Severity) Enabled(min Severity) bool {
	return severityRank[s] >= severityRank[min]
}

// ParseSeverity converts a config value such as "debug" or "WARNING".
func ParseSeverity(level string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "", "INFO":
		return SeverityInfo, nil
	case "DEBUG":
		return SeverityDebug, nil
	case "WARN", "WARNING":
		return SeverityWarning, nil
	case "ERROR":
		return SeverityError, nil
	default:
		return "", fmt.Errorf("invalid log level: %s (must be debug, info, warning or error)", level)
	}
}

// Logger is the logging surface used across the module.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Entry is one structured log line.
type Entry struct {
	Severity  Severity          `json:"severity"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Labels    map[string]string `json:"labels,omitempty"`
}

// StructuredLogger writes one JSON object per line. The Cloud Logging agent
// on GCP VMs forwards these with the right severity.
type StructuredLogger struct {
	writer  io.Writer
	labels  map[string]string
	min     Severity
	nowFunc func() time.Time
	mu      sync.Mutex
}

// Option configures a StructuredLogger.
type Option func(*StructuredLogger)

// WithWriter sets the output writer (stderr by default).
func WithWriter(w io.Writer) Option {
	return func(l *StructuredLogger) {
		l.writer = w
	}
}

// WithLabels adds labels to every entry.
func WithLabels(labels map[string]string) Option {
	return func(l *StructuredLogger) {
		for k, v := range labels {
			l.labels[k] = v
		}
	}
}

// WithMinSeverity drops entries below min.
func WithMinSeverity(min Severity) Option {
	return func(l *StructuredLogger) {
		l.min = min
	}
}

// WithNowFunc overrides the clock.
func WithNowFunc(fn func() time.Time) Option {
	return func(l *StructuredLogger) {
		l.nowFunc = fn
	}
}

// NewStructuredLogger creates a JSON-lines logger for the named component.
func NewStructuredLogger(component string, opts ...Option) *StructuredLogger {
	l := &StructuredLogger{
		writer:  os.Stderr,
		labels:  map[string]string{"component": component},
		min:     SeverityInfo,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Log writes an entry if severity passes the threshold.
func (l *StructuredLogger) Log(severity Severity, message string) {
	if !severity.Enabled(l.min) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		Severity:  severity,
		Message:   message,
		Timestamp: l.nowFunc().UTC(),
		Labels:    l.labels,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(l.writer, `{"severity":"ERROR","message":"failed to marshal log entry: %v"}`+"\n", err)
		return
	}
	fmt.Fprintf(l.writer, "%s\n", data)
}

func (l *StructuredLogger) Debugf(format string, args ...interface{}) {
	l.Log(SeverityDebug, fmt.Sprintf(format, args...))
}

func (l *StructuredLogger) Infof(format string, args ...interface{}) {
	l.Log(SeverityInfo, fmt.Sprintf(format, args...))
}

func (l *StructuredLogger) Warningf(format string, args ...interface{}) {
	l.Log(SeverityWarning, fmt.Sprintf(format, args...))
}

func (l *StructuredLogger) Errorf(format string, args ...interface{}) {
	l.Log(SeverityError, fmt.Sprintf(format, args...))
}

// SanitizingLogger formats messages first and redacts secrets before
// delegating, so interpolated values are covered too.
type SanitizingLogger struct {
	next      Logger
	sanitizer *security.LogSanitizer
}

// NewSanitizingLogger wraps next with s.
func NewSanitizingLogger(next Logger, s *security.LogSanitizer) *SanitizingLogger {
	if s == nil {
		s = security.NewLogSanitizer()
	}
	return &SanitizingLogger{next: next, sanitizer: s}
}

func (l *SanitizingLogger) Debugf(format string, args ...interface{}) {
	l.next.Debugf("%s", l.sanitizer.Sanitize(fmt.Sprintf(format, args...)))
}

func (l *SanitizingLogger) Infof(format string, args ...interface{}) {
	l.next.Infof("%s", l.sanitizer.Sanitize(fmt.Sprintf(format, args...)))
}

func (l *SanitizingLogger) Warningf(format string, args ...interface{}) {
	l.next.Warningf("%s", l.sanitizer.Sanitize(fmt.Sprintf(format, args...)))
}

func (l *SanitizingLogger) Errorf(format string, args ...interface{}) {
	l.next.Errorf("%s", l.sanitizer.Sanitize(fmt.Sprintf(format, args...)))
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return nopLogger{}
}

var (
	_ Logger = (*StructuredLogger)(nil)
	_ Logger = (*SanitizingLogger)(nil)
	_ Logger = nopLogger{}
)
