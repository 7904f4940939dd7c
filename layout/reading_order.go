package layout

import (
	"sort"

	"github.com/tsawler/deckforge/model"
	"github.com/tsawler/deckforge/text"
)

// ReadingDirection indicates the primary reading direction of a slide
type ReadingDirection int

const (
	// LeftToRight is the default for most Western languages
	LeftToRight ReadingDirection = iota
	// RightToLeft is used for Arabic, Hebrew, etc.
	RightToLeft
)

// String returns a string representation of the reading direction
func (d ReadingDirection) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// ReadingOrderConfig holds configuration for reading order detection
type ReadingOrderConfig struct {
	// Direction is the primary reading direction. LeftToRight is replaced
	// by RightToLeft when most of the slide's letters are right-to-left.
	Direction ReadingDirection

	// RowTolerance is how far apart two tops may be while still counting
	// as the same row.
	// Default: 0.25in
	RowTolerance model.EMU

	// PreferColumnOrder when true, reads entire columns before moving to
	// the next one. When false, elements are read row by row.
	PreferColumnOrder bool

	// SpanningThreshold is the minimum width ratio for an element to be
	// considered spanning.
	// Default: 0.7 (elements spanning 70%+ of the slide width)
	SpanningThreshold float64
}

// DefaultReadingOrderConfig returns sensible default configuration
func DefaultReadingOrderConfig() ReadingOrderConfig {
	return ReadingOrderConfig{
		Direction:         LeftToRight,
		RowTolerance:      model.Inches(0.25),
		PreferColumnOrder: true,
		SpanningThreshold: 0.7,
	}
}

// ReadingOrderDetector determines the reading order of slide content
type ReadingOrderDetector struct {
	config ReadingOrderConfig
}

// NewReadingOrderDetector creates a new reading order detector with default configuration
func NewReadingOrderDetector() *ReadingOrderDetector {
	return &ReadingOrderDetector{
		config: DefaultReadingOrderConfig(),
	}
}

// NewReadingOrderDetectorWithConfig creates a reading order detector with custom configuration
func NewReadingOrderDetectorWithConfig(config ReadingOrderConfig) *ReadingOrderDetector {
	return &ReadingOrderDetector{
		config: config,
	}
}

// Order returns the slide's text elements with non-empty text in reading
// order, using the default configuration.
func Order(s *model.Slide) []model.TextElement {
	return NewReadingOrderDetector().Order(s)
}

// Order returns the slide's text elements with non-empty text in reading
// order.
func (d *ReadingOrderDetector) Order(s *model.Slide) []model.TextElement {
	var elems []model.TextElement
	for _, te := range s.TextElements() {
		if len(te.Frame().NonEmpty()) > 0 {
			elems = append(elems, te)
		}
	}
	if len(elems) < 2 {
		return elems
	}

	direction := d.config.Direction
	if direction == LeftToRight {
		direction = detectDirection(elems)
	}

	// Stable top-to-bottom sort keeps z-order for ties.
	sort.SliceStable(elems, func(i, j int) bool {
		return elems[i].Bounds().Top() < elems[j].Bounds().Top()
	})

	if !d.config.PreferColumnOrder {
		return d.orderRows(elems, direction)
	}

	width := slideWidth(s, elems)
	var ordered, pending []model.TextElement
	for _, te := range elems {
		if float64(te.Bounds().W) >= d.config.SpanningThreshold*float64(width) {
			ordered = append(ordered, d.orderColumns(pending, direction)...)
			pending = pending[:0]
			ordered = append(ordered, te)
			continue
		}
		pending = append(pending, te)
	}
	return append(ordered, d.orderColumns(pending, direction)...)
}

// orderRows groups elements into rows by their tops and reads each row in
// the reading direction. elems must be sorted by top.
func (d *ReadingOrderDetector) orderRows(elems []model.TextElement, dir ReadingDirection) []model.TextElement {
	out := make([]model.TextElement, 0, len(elems))
	for start := 0; start < len(elems); {
		top := elems[start].Bounds().Top()
		end := start + 1
		for end < len(elems) && elems[end].Bounds().Top()-top <= d.config.RowTolerance {
			end++
		}
		row := append([]model.TextElement(nil), elems[start:end]...)
		sort.SliceStable(row, func(i, j int) bool {
			return before(row[i].Bounds(), row[j].Bounds(), dir)
		})
		out = append(out, row...)
		start = end
	}
	return out
}

// column is a run of elements whose horizontal extents overlap.
type column struct {
	left, right model.EMU
	elems       []model.TextElement
}

// orderColumns clusters elements into columns by horizontal overlap and
// reads each column top to bottom. elems must be sorted by top.
func (d *ReadingOrderDetector) orderColumns(elems []model.TextElement, dir ReadingDirection) []model.TextElement {
	if len(elems) == 0 {
		return nil
	}

	byLeft := append([]model.TextElement(nil), elems...)
	sort.SliceStable(byLeft, func(i, j int) bool {
		return byLeft[i].Bounds().Left() < byLeft[j].Bounds().Left()
	})

	var cols []*column
	for _, te := range byLeft {
		b := te.Bounds()
		if n := len(cols); n > 0 && b.Left() < cols[n-1].right {
			c := cols[n-1]
			if b.Right() > c.right {
				c.right = b.Right()
			}
			c.elems = append(c.elems, te)
			continue
		}
		cols = append(cols, &column{left: b.Left(), right: b.Right(), elems: []model.TextElement{te}})
	}

	if dir == RightToLeft {
		for i, j := 0, len(cols)-1; i < j; i, j = i+1, j-1 {
			cols[i], cols[j] = cols[j], cols[i]
		}
	}

	out := make([]model.TextElement, 0, len(elems))
	for _, c := range cols {
		sort.SliceStable(c.elems, func(i, j int) bool {
			return c.elems[i].Bounds().Top() < c.elems[j].Bounds().Top()
		})
		out = append(out, d.orderRows(c.elems, dir)...)
	}
	return out
}

func before(a, b model.Rect, dir ReadingDirection) bool {
	if dir == RightToLeft {
		return a.Right() > b.Right()
	}
	return a.Left() < b.Left()
}

// detectDirection returns RightToLeft when right-to-left letters outnumber
// left-to-right ones.
func detectDirection(elems []model.TextElement) ReadingDirection {
	ltr, rtl := 0, 0
	for _, te := range elems {
		for _, r := range te.Frame().Text() {
			switch text.GetCharDirection(r) {
			case text.LTR:
				ltr++
			case text.RTL:
				rtl++
			}
		}
	}
	if rtl > ltr {
		return RightToLeft
	}
	return LeftToRight
}

// slideWidth returns the owning deck's width, or the extent of the
// elements for a detached slide.
func slideWidth(s *model.Slide, elems []model.TextElement) model.EMU {
	if d := s.Deck(); d != nil && d.Width > 0 {
		return d.Width
	}
	bounds := elems[0].Bounds()
	for _, te := range elems[1:] {
		bounds = bounds.Union(te.Bounds())
	}
	return bounds.Right()
}
