package text

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Average advance widths in ems, tuned for common sans-serif faces.
const (
	narrowEm = 0.28
	normalEm = 0.52
	capEm    = 0.66
	wideEm   = 0.85
	fullEm   = 1.0
	monoEm   = 0.6

	// LineHeight is the line pitch as a multiple of the font size.
	LineHeight = 1.2
)

const emuPerPoint = 12700

// RuneWidth returns the approximate advance of r in ems.
func RuneWidth(r rune) float64 {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return fullEm
	}
	switch {
	case unicode.IsSpace(r):
		return narrowEm
	case strings.ContainsRune("iljtf.,;:'!|()[]{}\"`", r):
		return narrowEm
	case r == 'M' || r == 'W' || r == 'm' || r == 'w' || r == '@' || r == '%':
		return wideEm
	case unicode.IsUpper(r):
		return capEm
	default:
		return normalEm
	}
}

// EstimateWidth returns the approximate rendered width of s at sizePt
// points, in EMU. Monospaced faces use a fixed advance.
func EstimateWidth(s string, sizePt float64, monospace bool) int64 {
	ems := 0.0
	for _, r := range s {
		if monospace {
			ems += monoEm
			continue
		}
		ems += RuneWidth(r)
	}
	return int64(math.Ceil(ems * sizePt * emuPerPoint))
}

// CountLines estimates how many lines s occupies when greedily wrapped at
// word boundaries inside boxWidth EMU. Words wider than the box are broken.
// Explicit newlines start new lines. Empty input counts as one line.
func CountLines(s string, sizePt float64, boxWidth int64, monospace bool) int {
	if boxWidth <= 0 {
		return 1
	}
	space := EstimateWidth(" ", sizePt, monospace)

	lines := 0
	for _, para := range strings.Split(s, "\n") {
		lines++
		var used int64
		for _, word := range strings.Fields(para) {
			w := EstimateWidth(word, sizePt, monospace)
			if used > 0 && used+space+w > boxWidth {
				lines++
				used = 0
			}
			if used > 0 {
				used += space
			}
			for w > boxWidth {
				lines++
				w -= boxWidth
			}
			used += w
		}
	}
	return lines
}

// IsMonospace reports whether a typeface name denotes a fixed-pitch face.
func IsMonospace(typeface string) bool {
	name := strings.ToLower(typeface)
	for _, mono := range []string{"courier", "mono", "consolas", "menlo", "code"} {
		if strings.Contains(name, mono) {
			return true
		}
	}
	return false
}
