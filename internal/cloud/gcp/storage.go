package gcp

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"
)

// StorageClient reads and writes objects of one bucket through the Cloud
// Storage JSON API.
type StorageClient struct {
	service *storage.Service
	bucket  string
}

// NewStorageClient creates a client bound to bucket.
func NewStorageClient(ctx context.Context, bucket string, opts ...option.ClientOption) (*StorageClient, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket cannot be empty")
	}
	service, err := storage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}
	return &StorageClient{service: service, bucket: bucket}, nil
}

// Download opens the object's media. The caller closes the reader.
func (c *StorageClient) Download(ctx context.Context, name string) (io.ReadCloser, error) {
	resp, err := c.service.Objects.Get(c.bucket, name).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download gs://%s/%s: %w", c.bucket, name, err)
	}
	return resp.Body, nil
}

// Upload writes r to the object, replacing any existing content.
func (c *StorageClient) Upload(ctx context.Context, name string, r io.Reader, contentType string) error {
	obj := &storage.Object{Name: name, ContentType: contentType}
	_, err := c.service.Objects.Insert(c.bucket, obj).
		Media(r, googleapi.ContentType(contentType)).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to upload gs://%s/%s: %w", c.bucket, name, err)
	}
	return nil
}
