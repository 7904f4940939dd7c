package deckforge

import (
	"fmt"
	"strings"

	"github.com/tsawler/deckforge/layout"
)

// Warning is a non-fatal problem found while generating a deck.
type Warning struct {
	Slide   int    // 1-indexed; 0 for deck-wide warnings
	Element string // Shape name, when the warning concerns one element
	Message string
}

func (w Warning) String() string {
	if w.Slide == 0 {
		return w.Message
	}
	return fmt.Sprintf("slide %d: %s", w.Slide, w.Message)
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// layoutWarnings converts checker findings of at least the given severity.
func layoutWarnings(issues []layout.Issue, threshold layout.Severity) []Warning {
	var out []Warning
	for _, is := range issues {
		if is.Severity < threshold {
			continue
		}
		out = append(out, Warning{
			Slide:   is.Slide,
			Element: is.Element,
			Message: fmt.Sprintf("%s: %s", is.Kind, is.Message),
		})
	}
	return out
}
