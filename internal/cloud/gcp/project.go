// Package gcp wraps the Google Cloud services used by readmecards:
// Secret Manager, Cloud Logging and Cloud Storage.
package gcp

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/compute/metadata"
)

// projectEnvVars are checked in order before asking the metadata server.
var projectEnvVars = []string{"GOOGLE_CLOUD_PROJECT", "GCP_PROJECT", "GCLOUD_PROJECT"}

// OnGCP reports whether the process runs on a GCP VM or serverless runtime.
func OnGCP() bool {
	return metadata.OnGCE()
}

// ProjectID resolves the GCP project from the environment, falling back to
// the metadata server when running on GCP.
func ProjectID(ctx context.Context) (string, error) {
	for _, key := range projectEnvVars {
		if projectID := strings.TrimSpace(os.Getenv(key)); projectID != "" {
			return projectID, nil
		}
	}

	if !OnGCP() {
		return "", fmt.Errorf("no project ID in %s and not running on GCP", strings.Join(projectEnvVars, ", "))
	}

	projectID, err := metadata.ProjectID()
	if err != nil {
		return "", fmt.Errorf("failed to fetch project ID from metadata server: %w", err)
	}
	if projectID == "" {
		return "", fmt.Errorf("empty project ID from metadata server")
	}
	return projectID, nil
}
