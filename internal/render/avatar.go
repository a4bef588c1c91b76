package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/gregjones/httpcache"

	"github.com/andywolf/readmecards/internal/version"
)

// maxAvatarBytes bounds a single avatar download.
const maxAvatarBytes = 1 << 20

// AvatarFetcher resolves an avatar URL into an inline data URI.
type AvatarFetcher interface {
	FetchAvatar(ctx context.Context, url string) (string, error)
}

// HTTPAvatarFetcher downloads avatars over HTTP.
type HTTPAvatarFetcher struct {
	client *http.Client
}

// NewHTTPAvatarFetcher returns a fetcher using client. A nil client uses an
// in-memory HTTP cache, so an avatar shared by several cards is downloaded
// once per run.
func NewHTTPAvatarFetcher(client *http.Client) *HTTPAvatarFetcher {
	if client == nil {
		client = &http.Client{
			Transport: httpcache.NewMemoryCacheTransport(),
			Timeout:   30 * time.Second,
		}
	}
	return &HTTPAvatarFetcher{client: client}
}

// FetchAvatar downloads url and returns it as a base64 data URI.
func (f *HTTPAvatarFetcher) FetchAvatar(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create avatar request: %w", err)
	}
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download avatar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("avatar request returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAvatarBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read avatar: %w", err)
	}
	if len(data) > maxAvatarBytes {
		return "", fmt.Errorf("avatar exceeds %d bytes", maxAvatarBytes)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("avatar is empty")
	}

	return "data:" + imageType(resp.Header.Get("Content-Type"), data) + ";base64," +
		base64.StdEncoding.EncodeToString(data), nil
}

// imageType returns a bare image media type, sniffing the body when the
// header is missing or not an image.
func imageType(header string, data []byte) string {
	if mediaType, _, err := mime.ParseMediaType(header); err == nil && strings.HasPrefix(mediaType, "image/") {
		return mediaType
	}
	sniffed := http.DetectContentType(data)
	if strings.HasPrefix(sniffed, "image/") {
		return sniffed
	}
	return "image/png"
}
