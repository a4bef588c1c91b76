package buttons

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/andywolf/readmecards/internal/logging"
)

// Project is a tracked project whose button shows a progress ring.
type Project struct {
	Name  string `mapstructure:"name" yaml:"name"`
	Label string `mapstructure:"label" yaml:"label"`
	Image string `mapstructure:"image" yaml:"image"`
}

// ObjectStore reads and writes button images.
type ObjectStore interface {
	Download(ctx context.Context, name string) (io.ReadCloser, error)
	Upload(ctx context.Context, name string, r io.Reader, contentType string) error
}

// CountSource reports closed and open issue counts for a tracking label.
type CountSource interface {
	FetchProjectCounts(ctx context.Context, label string) (done, notDone int, err error)
}

// Compositor draws progress rings onto project buttons.
type Compositor struct {
	store   ObjectStore
	counts  CountSource
	ring    Ring
	tempDir string
	logger  logging.Logger
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithRing overrides DefaultRing.
func WithRing(r Ring) Option {
	return func(c *Compositor) {
		c.ring = r
	}
}

// WithTempDir sets where intermediate files are written. Empty uses the
// system default.
func WithTempDir(dir string) Option {
	return func(c *Compositor) {
		c.tempDir = dir
	}
}

// WithLogger sets the compositor logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Compositor) {
		c.logger = l
	}
}

// NewCompositor creates a Compositor.
func NewCompositor(store ObjectStore, counts CountSource, opts ...Option) *Compositor {
	c := &Compositor{
		store:  store,
		counts: counts,
		ring:   DefaultRing,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run composites every project in order. A failing project is logged and
// skipped; the number of failures is returned.
func (c *Compositor) Run(ctx context.Context, projects []Project) int {
	failed := 0
	for _, p := range projects {
		if err := ctx.Err(); err != nil {
			c.logger.Errorf("Stopping button compositing: %v", err)
			return failed + 1
		}
		if err := c.Composite(ctx, p); err != nil {
			c.logger.Errorf("Project %s: %v", p.Name, err)
			failed++
			continue
		}
	}
	return failed
}

// Composite updates the progress button of one project.
func (c *Compositor) Composite(ctx context.Context, p Project) error {
	done, notDone, err := c.counts.FetchProjectCounts(ctx, p.Label)
	if err != nil {
		return err
	}
	progress := Progress(done, notDone)
	c.logger.Infof("Project %s: %d done, %d open (%.0f%%)", p.Name, done, notDone, progress*100)

	base, err := c.download(ctx, p.Image)
	if err != nil {
		return err
	}

	target := ProgressPath(p.Image)
	if err := c.upload(ctx, target, c.ring.Draw(base, progress)); err != nil {
		return err
	}
	c.logger.Infof("Uploaded %s", target)
	return nil
}

func (c *Compositor) download(ctx context.Context, name string) (image.Image, error) {
	rc, err := c.store.Download(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return img, nil
}

// upload stages img in a temporary PNG file, which is removed whether or not
// the upload succeeds.
func (c *Compositor) upload(ctx context.Context, name string, img image.Image) error {
	tmp, err := os.CreateTemp(c.tempDir, "readmecards-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if err := png.Encode(tmp, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind temp file: %w", err)
	}
	return c.store.Upload(ctx, name, tmp, "image/png")
}
