package render

import (
	"bytes"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/andywolf/readmecards/internal/github"
	"github.com/andywolf/readmecards/internal/textwidth"
)

// Status card geometry in pixels.
const (
	StatusCardWidth  = 200
	StatusCardHeight = 120

	statusChipY      = 16
	statusChipHeight = 24
	statusChipSize   = 14
	statusCounterY   = 92
)

// StatusSVG renders a label chip centered above the number of open issues
// carrying it.
func StatusSVG(label github.StatusLabel) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(StatusCardWidth, StatusCardHeight)
	canvas.Style("text/css", stylesheet)
	canvas.Roundrect(1, 1, StatusCardWidth-2, StatusCardHeight-2, 6, 6, `class="card"`)

	name := textwidth.Truncate(label.Name, statusChipSize, StatusCardWidth-2*padding-30, ellipsis)
	width := statusChipWidth(name)
	fill, text := chipColors(label.Color)
	canvas.Roundrect((StatusCardWidth-width)/2, statusChipY, width, statusChipHeight,
		statusChipHeight/2, statusChipHeight/2, `class="labelBg"`, `fill="`+fill+`"`)
	canvas.Text(StatusCardWidth/2, statusChipY+17, name, `class="status-chip"`, `fill="`+text+`"`)

	canvas.Text(StatusCardWidth/2, statusCounterY, strconv.Itoa(label.Count), `class="counter"`)

	canvas.End()
	return buf.String()
}

func statusChipWidth(name string) int {
	return textwidth.EstimateWidth(name, statusChipSize) + 30
}
