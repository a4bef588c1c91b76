// Package textwidth estimates rendered text widths without font metrics.
//
// The table approximates Arial at 14px. Widths at other sizes are scaled per
// character, so the estimate stays additive over concatenation.
package textwidth

// BaseSize is the font size the width table is tuned for.
const BaseSize = 14

// DefaultCharWidth is used for characters missing from the table.
const DefaultCharWidth = 7

var charWidths = map[rune]int{
	'i': 4, 'I': 5, 'l': 4, '.': 4, ' ': 4, 't': 5, 'f': 5, 'j': 5, '(': 5, ')': 5,
	'r': 6, 's': 6, 'z': 6, '[': 5, ']': 5, '{': 6, '}': 6,
	'a': 7, 'b': 7, 'c': 7, 'd': 7, 'e': 7, 'g': 7, 'h': 7, 'k': 7, 'n': 7,
	'o': 7, 'p': 7, 'q': 7, 'u': 7, 'v': 7, 'x': 7, 'y': 7,
	'm': 9, 'w': 11,
	'L': 7, 'T': 7, 'F': 7, 'J': 7,
	'A': 8, 'B': 8, 'C': 8, 'D': 8, 'E': 8, 'G': 8, 'H': 8, 'K': 8, 'N': 8,
	'O': 8, 'P': 8, 'Q': 8, 'R': 8, 'S': 8, 'U': 8, 'V': 8, 'X': 8, 'Y': 8, 'Z': 8,
	'M': 10, 'W': 12,
	'0': 7, '1': 5, '2': 7, '3': 7, '4': 7, '5': 7, '6': 7, '7': 7, '8': 7, '9': 7,
	'_': 7, '-': 5, '=': 8, '+': 8, '*': 6, '#': 8, '@': 12, '!': 4, '?': 7,
	'/': 5, '\\': 5, '|': 4, '"': 5, '\'': 4, ':': 4, ';': 4, ',': 4,
}

// CharWidth returns the estimated width of r at the given font size.
func CharWidth(r rune, size int) int {
	w, ok := charWidths[r]
	if !ok {
		w = DefaultCharWidth
	}
	if size == BaseSize {
		return w
	}
	return w * size / BaseSize
}

// EstimateWidth returns the estimated pixel width of text at the given font size.
func EstimateWidth(text string, size int) int {
	total := 0
	for _, r := range text {
		total += CharWidth(r, size)
	}
	return total
}

// EstimateSize returns the estimated width and line height of a single line.
func EstimateSize(text string, size int) (width, height int) {
	return EstimateWidth(text, size), size * 12 / 10
}

// Truncate shortens text so that text plus suffix fits in maxWidth. Text that
// already fits is returned unchanged.
func Truncate(text string, size, maxWidth int, suffix string) string {
	if EstimateWidth(text, size) <= maxWidth {
		return text
	}
	budget := maxWidth - EstimateWidth(suffix, size)
	width := 0
	runes := []rune(text)
	for i, r := range runes {
		width += CharWidth(r, size)
		if width > budget {
			return string(runes[:i]) + suffix
		}
	}
	return text
}
