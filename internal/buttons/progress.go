// Package buttons composites progress rings onto README button images kept in
// cloud storage.
package buttons

import (
	"path"
	"strings"
)

// Progress returns done/(done+notDone). A project with no tracked issues is
// complete. Negative counts are treated as zero.
func Progress(done, notDone int) float64 {
	if done < 0 {
		done = 0
	}
	if notDone < 0 {
		notDone = 0
	}
	if done+notDone == 0 {
		return 1.0
	}
	return float64(done) / float64(done+notDone)
}

// ArcSweep converts progress into the ring's sweep in degrees.
func ArcSweep(progress float64) float64 {
	return 360 * progress
}

// ProgressPath names the composited object next to its base image:
// "buttons/a.png" becomes "buttons/a_progress.png". The result is always PNG.
func ProgressPath(name string) string {
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + "_progress.png"
}
