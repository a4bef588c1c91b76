package gcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	cloudlogging "cloud.google.com/go/logging"
	"cloud.google.com/go/logging/logadmin"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/andywolf/readmecards/internal/logging"
)

// LogQuery selects entries written by CloudLogger.
type LogQuery struct {
	LogID string
	RunID string
	Since time.Time
	Limit int
}

// LogLine is one entry read back from Cloud Logging.
type LogLine struct {
	Timestamp time.Time
	Severity  string
	Message   string
	Labels    map[string]string
}

// Filter renders the query in the Cloud Logging filter language.
func (q LogQuery) Filter(projectID string) string {
	parts := []string{
		fmt.Sprintf(`logName = "projects/%s/logs/%s"`, projectID, url.PathEscape(q.LogID)),
	}
	if q.RunID != "" {
		parts = append(parts, fmt.Sprintf(`labels.run_id = "%s"`, q.RunID))
	}
	if !q.Since.IsZero() {
		parts = append(parts, fmt.Sprintf(`timestamp >= "%s"`, q.Since.UTC().Format(time.RFC3339)))
	}
	return strings.Join(parts, " AND ")
}

// LogReader lists entries through the Logging admin API.
type LogReader struct {
	client    *logadmin.Client
	projectID string
}

// NewLogReader opens an admin client for projectID.
func NewLogReader(ctx context.Context, projectID string, opts ...option.ClientOption) (*LogReader, error) {
	client, err := logadmin.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create log admin client: %w", err)
	}
	return &LogReader{client: client, projectID: projectID}, nil
}

// Read returns at most q.Limit of the newest matching entries, oldest first.
func (r *LogReader) Read(ctx context.Context, q LogQuery) ([]LogLine, error) {
	it := r.client.Entries(ctx,
		logadmin.Filter(q.Filter(r.projectID)),
		logadmin.NewestFirst(),
	)
	return collectEntries(it.Next, q.Limit)
}

// Close releases the admin client.
func (r *LogReader) Close() error {
	return r.client.Close()
}

func collectEntries(next func() (*cloudlogging.Entry, error), limit int) ([]LogLine, error) {
	var lines []LogLine
	for limit <= 0 || len(lines) < limit {
		e, err := next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list log entries: %w", err)
		}
		lines = append(lines, LogLine{
			Timestamp: e.Timestamp,
			Severity:  severityName(e.Severity),
			Message:   payloadText(e.Payload),
			Labels:    e.Labels,
		})
	}

	// newest first from the API
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}

// severityName maps a Cloud Logging severity onto the names used by
// logging.Severity. Levels without a counterpart are upper-cased.
func severityName(s cloudlogging.Severity) string {
	switch s {
	case cloudlogging.Debug:
		return string(logging.SeverityDebug)
	case cloudlogging.Info:
		return string(logging.SeverityInfo)
	case cloudlogging.Warning:
		return string(logging.SeverityWarning)
	case cloudlogging.Error:
		return string(logging.SeverityError)
	default:
		return strings.ToUpper(s.String())
	}
}

func payloadText(p interface{}) string {
	switch v := p.(type) {
	case string:
		return v
	case *structpb.Struct:
		if msg, ok := v.GetFields()["message"]; ok {
			return msg.GetStringValue()
		}
		b, err := v.MarshalJSON()
		if err != nil {
			return v.String()
		}
		return string(b)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
