package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrSlideOwned is returned when a slide that already belongs to a deck is
// added to another one.
var ErrSlideOwned = errors.New("slide already belongs to a deck")

// Deck represents a complete presentation
type Deck struct {
	Metadata Metadata
	Width    EMU
	Height   EMU
	Slides   []*Slide
}

// Metadata contains deck-level information
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	Company  string
	Created  time.Time
	Modified time.Time
}

// NewDeck creates a new empty deck with the given slide size
func NewDeck(width, height EMU) *Deck {
	return &Deck{
		Width:  width,
		Height: height,
		Slides: make([]*Slide, 0),
	}
}

// NewSlide creates a slide, appends it to the deck and returns it.
func (d *Deck) NewSlide() *Slide {
	s := NewSlide()
	// A fresh slide is never owned, so AddSlide cannot fail here.
	_ = d.AddSlide(s)
	return s
}

// AddSlide appends a slide to the deck. A slide belongs to exactly one deck;
// adding a slide owned by another deck (or adding it twice) fails.
func (d *Deck) AddSlide(s *Slide) error {
	if s.deck != nil {
		return fmt.Errorf("adding slide %d: %w", s.Index+1, ErrSlideOwned)
	}
	s.deck = d
	s.Index = len(d.Slides)
	d.Slides = append(d.Slides, s)
	return nil
}

// GetSlide returns a slide by number (1-indexed)
func (d *Deck) GetSlide(number int) *Slide {
	if number < 1 || number > len(d.Slides) {
		return nil
	}
	return d.Slides[number-1]
}

// SlideCount returns the total number of slides
func (d *Deck) SlideCount() int {
	return len(d.Slides)
}

// Titles returns the title of every slide in order.
func (d *Deck) Titles() []string {
	titles := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		titles[i] = s.Title()
	}
	return titles
}

// Bounds returns the slide area.
func (d *Deck) Bounds() Rect {
	return Rect{W: d.Width, H: d.Height}
}

// ExtractText returns all text content concatenated
func (d *Deck) ExtractText() string {
	var b strings.Builder
	for _, s := range d.Slides {
		b.WriteString(s.ExtractText())
		b.WriteString("\n")
	}
	return b.String()
}

// Validate reports structural problems that would produce a broken or
// empty presentation. It does not judge layout; see the layout package.
func (d *Deck) Validate() error {
	var errs []error
	if d.Width <= 0 || d.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid slide size %dx%d", d.Width, d.Height))
	}
	if len(d.Slides) == 0 {
		errs = append(errs, errors.New("deck has no slides"))
	}
	for _, s := range d.Slides {
		for j, elem := range s.Elements {
			switch e := elem.(type) {
			case *TextBox:
				if e.Rect.IsEmpty() {
					errs = append(errs, fmt.Errorf("slide %d element %d: text box has no area", s.Index+1, j+1))
				}
				if len(e.Text.Paragraphs) == 0 {
					errs = append(errs, fmt.Errorf("slide %d element %d: text box has no paragraphs", s.Index+1, j+1))
				}
			case *Shape:
				if e.Rect.IsEmpty() {
					errs = append(errs, fmt.Errorf("slide %d element %d: shape has no area", s.Index+1, j+1))
				}
				if e.Geometry == "" {
					errs = append(errs, fmt.Errorf("slide %d element %d: shape has no geometry", s.Index+1, j+1))
				}
			case *Connector:
				if e.Start == e.End {
					errs = append(errs, fmt.Errorf("slide %d element %d: connector has zero length", s.Index+1, j+1))
				}
			}
		}
	}
	return errors.Join(errs...)
}
