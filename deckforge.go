// Package deckforge provides a fluent API for building the bundled slide
// decks and saving them as PowerPoint files, HTML handouts, Markdown
// outlines and PNG previews.
//
// Basic usage:
//
//	res, warnings, err := deckforge.Open("tokens").Save()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", deckforge.FormatWarnings(warnings))
//	}
//	fmt.Println("Presentation saved to", res.Path)
//
// With options:
//
//	res, _, err := deckforge.Open("prompt-engineering").
//	    OutputDir("out").
//	    CreateDirs().
//	    Formats(format.PPTX, format.HTML, format.PNG).
//	    PreviewWidth(1280).
//	    Save()
//
// Checking that titles survive rendering (needs a build with -tags ocr):
//
//	client, err := ocr.New()
//	if err != nil {
//	    // handle error
//	}
//	defer client.Close()
//	_, warnings, err = deckforge.Open("tokens").Verify(client).Save()
//
// For lower-level control, build a deck with the deck package and write it
// with pptx, htmldoc or render directly.
package deckforge

import (
	"github.com/tsawler/deckforge/model"
)

// Open returns a Generator for the named deck: a registered name such as
// "tokens", or the path of a YAML deck definition. The deck is looked up
// when a terminal operation runs.
//
// Example:
//
//	res, warnings, err := deckforge.Open("tokens").Save()
func Open(name string) *Generator {
	return &Generator{
		name:    name,
		options: defaultOptions(),
	}
}

// FromDeck returns a Generator for a deck built by the caller. Metadata
// options apply to a copy; the caller's deck is never modified.
func FromDeck(d *model.Deck) *Generator {
	g := &Generator{deck: d, options: defaultOptions()}
	if d == nil {
		g.err = errNilDeck
	}
	return g
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustSave is a helper that wraps a call to Save() or Deck() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	res := deckforge.MustSave(deckforge.Open("tokens").Save())
func MustSave[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
