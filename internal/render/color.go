package render

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	fallbackChipColor = "#ededed"
	darkTextColor     = "#1f2328"
	lightTextColor    = "#ffffff"
)

// chipColors parses a label color and returns the normalized fill plus the
// text color with the higher contrast against it. Unparseable input falls
// back to a neutral gray.
func chipColors(hex string) (fill, text string) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(fallbackChipColor)
	}

	r, g, b := c.LinearRgb()
	luminance := 0.2126*r + 0.7152*g + 0.0722*b
	contrastDark := (luminance + 0.05) / 0.05
	contrastLight := 1.05 / (luminance + 0.05)

	text = lightTextColor
	if contrastDark >= contrastLight {
		text = darkTextColor
	}
	return c.Hex(), text
}
