package buttons

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	objects   map[string][]byte
	types     map[string]string
	uploadErr error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *memStore) Download(_ context.Context, name string) (io.ReadCloser, error) {
	data, ok := s.objects[name]
	if !ok {
		return nil, errors.New("object not found: " + name)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStore) Upload(_ context.Context, name string, r io.Reader, contentType string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.objects[name] = data
	s.types[name] = contentType
	return nil
}

type staticCounts map[string][2]int

func (c staticCounts) FetchProjectCounts(_ context.Context, label string) (int, int, error) {
	counts, ok := c[label]
	if !ok {
		return 0, 0, errors.New("unknown label " + label)
	}
	return counts[0], counts[1], nil
}

func whiteButton(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

var testRing = Ring{CenterX: 32, CenterY: 32, Radius: 24, Thickness: 6, Color: "#ff0000"}

func isRed(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 > 200 && g>>8 < 60 && b>>8 < 60
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 > 240 && g>>8 > 240 && b>>8 > 240
}

func pointAt(r Ring, degrees float64) (int, int) {
	rad := degrees * math.Pi / 180
	return int(math.Round(r.CenterX + r.Radius*math.Cos(rad))), int(math.Round(r.CenterY + r.Radius*math.Sin(rad)))
}

func TestCompositor_DrawsThreeQuarterRing(t *testing.T) {
	store := newMemStore()
	store.objects["buttons/a.png"] = whiteButton(t)
	dir := t.TempDir()

	c := NewCompositor(store, staticCounts{"project:a": {3, 1}}, WithRing(testRing), WithTempDir(dir))
	require.NoError(t, c.Composite(context.Background(), Project{Name: "a", Label: "project:a", Image: "buttons/a.png"}))

	data, ok := store.objects["buttons/a_progress.png"]
	require.True(t, ok, "composited image must be uploaded next to the base image")
	assert.Equal(t, "image/png", store.types["buttons/a_progress.png"])

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	// Angles are screen angles: 0 is 3 o'clock, 90 is 6 o'clock. The arc
	// covers -90 (12 o'clock) clockwise through 180 (9 o'clock).
	for _, deg := range []float64{-60, 0, 90, 150} {
		x, y := pointAt(testRing, deg)
		assert.True(t, isRed(img.At(x, y)), "expected ring at %v degrees (%d,%d), got %v", deg, x, y, img.At(x, y))
	}
	x, y := pointAt(testRing, -135)
	assert.True(t, isWhite(img.At(x, y)), "upper-left quadrant must stay empty, got %v", img.At(x, y))
	assert.True(t, isWhite(img.At(32, 32)), "center must stay untouched")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary file must be removed")
}

func TestCompositor_EmptyProjectIsFullRing(t *testing.T) {
	store := newMemStore()
	store.objects["b.png"] = whiteButton(t)

	c := NewCompositor(store, staticCounts{"project:b": {0, 0}}, WithRing(testRing), WithTempDir(t.TempDir()))
	require.NoError(t, c.Composite(context.Background(), Project{Name: "b", Label: "project:b", Image: "b.png"}))

	img, err := png.Decode(bytes.NewReader(store.objects["b_progress.png"]))
	require.NoError(t, err)
	x, y := pointAt(testRing, -135)
	assert.True(t, isRed(img.At(x, y)))
}

func TestCompositor_ZeroProgressLeavesImage(t *testing.T) {
	store := newMemStore()
	store.objects["c.png"] = whiteButton(t)

	c := NewCompositor(store, staticCounts{"project:c": {0, 3}}, WithRing(testRing), WithTempDir(t.TempDir()))
	require.NoError(t, c.Composite(context.Background(), Project{Name: "c", Label: "project:c", Image: "c.png"}))

	img, err := png.Decode(bytes.NewReader(store.objects["c_progress.png"]))
	require.NoError(t, err)
	x, y := pointAt(testRing, 0)
	assert.True(t, isWhite(img.At(x, y)))
}

func TestCompositor_RunContinuesAfterFailure(t *testing.T) {
	store := newMemStore()
	store.objects["good.png"] = whiteButton(t)
	store.objects["corrupt.png"] = []byte("not an image")

	counts := staticCounts{"ok": {1, 1}, "corrupt": {1, 0}}
	c := NewCompositor(store, counts, WithRing(testRing), WithTempDir(t.TempDir()))

	failed := c.Run(context.Background(), []Project{
		{Name: "missing-label", Label: "nope", Image: "good.png"},
		{Name: "missing-image", Label: "ok", Image: "absent.png"},
		{Name: "corrupt", Label: "corrupt", Image: "corrupt.png"},
		{Name: "good", Label: "ok", Image: "good.png"},
	})

	assert.Equal(t, 3, failed)
	assert.Contains(t, store.objects, "good_progress.png")
	assert.NotContains(t, store.objects, "corrupt_progress.png")
}

func TestCompositor_UploadFailureRemovesTempFile(t *testing.T) {
	store := newMemStore()
	store.objects["a.png"] = whiteButton(t)
	store.uploadErr = errors.New("permission denied")
	dir := t.TempDir()

	c := NewCompositor(store, staticCounts{"l": {1, 1}}, WithTempDir(dir))
	err := c.Composite(context.Background(), Project{Name: "a", Label: "l", Image: "a.png"})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCompositor_RunStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCompositor(newMemStore(), staticCounts{})
	assert.Equal(t, 1, c.Run(ctx, []Project{{Name: "a"}, {Name: "b"}}))
}

func TestRingValidate(t *testing.T) {
	assert.NoError(t, DefaultRing.Validate())

	bad := DefaultRing
	bad.Color = "green"
	assert.Error(t, bad.Validate())

	bad = DefaultRing
	bad.Radius = 0
	assert.Error(t, bad.Validate())

	bad = DefaultRing
	bad.Thickness = -1
	assert.Error(t, bad.Validate())
}
