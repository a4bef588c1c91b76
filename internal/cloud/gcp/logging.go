package gcp

import (
	"context"
	"fmt"
	"os"

	cloudlogging "cloud.google.com/go/logging"
	"google.golang.org/api/option"

	"github.com/andywolf/readmecards/internal/logging"
)

// EntryWriter is the subset of *cloudlogging.Logger used by CloudLogger.
type EntryWriter interface {
	Log(e cloudlogging.Entry)
	Flush() error
}

// CloudLogger sends log entries to Cloud Logging through the API client.
type CloudLogger struct {
	client *cloudlogging.Client
	writer EntryWriter
	labels map[string]string
	min    logging.Severity
}

// NewCloudLogger opens a Cloud Logging client for projectID and writes to logID.
func NewCloudLogger(ctx context.Context, projectID, logID string, labels map[string]string, min logging.Severity, opts ...option.ClientOption) (*CloudLogger, error) {
	client, err := cloudlogging.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud logging client: %w", err)
	}
	client.OnError = func(err error) {
		fmt.Fprintf(os.Stderr, "cloud logging: %v\n", err)
	}

	l := NewCloudLoggerWithWriter(client.Logger(logID), labels, min)
	l.client = client
	return l, nil
}

// NewCloudLoggerWithWriter builds a CloudLogger on an existing writer.
func NewCloudLoggerWithWriter(w EntryWriter, labels map[string]string, min logging.Severity) *CloudLogger {
	copied := make(map[string]string, len(labels))
	for k, v := range labels {
		copied[k] = v
	}
	return &CloudLogger{writer: w, labels: copied, min: min}
}

func cloudSeverity(s logging.Severity) cloudlogging.Severity {
	switch s {
	case logging.SeverityDebug:
		return cloudlogging.Debug
	case logging.SeverityWarning:
		return cloudlogging.Warning
	case logging.SeverityError:
		return cloudlogging.Error
	default:
		return cloudlogging.Info
	}
}

func (l *CloudLogger) log(severity logging.Severity, format string, args ...interface{}) {
	if !severity.Enabled(l.min) {
		return
	}
	l.writer.Log(cloudlogging.Entry{
		Severity: cloudSeverity(severity),
		Payload:  fmt.Sprintf(format, args...),
		Labels:   l.labels,
	})
}

func (l *CloudLogger) Debugf(format string, args ...interface{}) {
	l.log(logging.SeverityDebug, format, args...)
}

func (l *CloudLogger) Infof(format string, args ...interface{}) {
	l.log(logging.SeverityInfo, format, args...)
}

func (l *CloudLogger) Warningf(format string, args ...interface{}) {
	l.log(logging.SeverityWarning, format, args...)
}

func (l *CloudLogger) Errorf(format string, args ...interface{}) {
	l.log(logging.SeverityError, format, args...)
}

// Close flushes buffered entries and closes the client.
func (l *CloudLogger) Close() error {
	flushErr := l.writer.Flush()
	if l.client != nil {
		if err := l.client.Close(); err != nil {
			return fmt.Errorf("failed to close cloud logging client: %w", err)
		}
	}
	return flushErr
}

var _ logging.Logger = (*CloudLogger)(nil)
