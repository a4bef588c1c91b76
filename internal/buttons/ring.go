package buttons

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// Ring is the geometry and color of the progress arc, in image pixels.
type Ring struct {
	CenterX   float64
	CenterY   float64
	Radius    float64
	Thickness float64
	Color     string
}

// DefaultRing fits a 64x64 button.
var DefaultRing = Ring{
	CenterX:   32,
	CenterY:   32,
	Radius:    28,
	Thickness: 4,
	Color:     "#1f883d",
}

// Validate checks that the ring can be drawn.
func (r Ring) Validate() error {
	if r.Radius <= 0 {
		return fmt.Errorf("ring radius must be positive")
	}
	if r.Thickness <= 0 {
		return fmt.Errorf("ring thickness must be positive")
	}
	if _, err := colorful.Hex(r.Color); err != nil {
		return fmt.Errorf("invalid ring color %q: %w", r.Color, err)
	}
	return nil
}

// Draw returns a copy of base with an arc starting at 12 o'clock and running
// clockwise for ArcSweep(progress) degrees.
func (r Ring) Draw(base image.Image, progress float64) image.Image {
	dc := gg.NewContextForImage(base)
	sweep := ArcSweep(progress)
	if sweep <= 0 {
		return dc.Image()
	}

	start := gg.Radians(-90)
	dc.SetLineWidth(r.Thickness)
	dc.SetHexColor(r.Color)
	dc.DrawArc(r.CenterX, r.CenterY, r.Radius, start, start+gg.Radians(sweep))
	dc.Stroke()
	return dc.Image()
}
