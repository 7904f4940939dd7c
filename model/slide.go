package model

import "strings"

// Slide represents one page of a deck
type Slide struct {
	Index      int       // 0-indexed position in the owning deck
	Background *RGB      // nil inherits the master background
	Elements   []Element // Ordered back to front
	Notes      string    // Speaker notes (read back only)

	deck *Deck
}

// NewSlide creates a slide that is not yet part of any deck.
func NewSlide() *Slide {
	return &Slide{Elements: make([]Element, 0)}
}

// Deck returns the deck that owns the slide, or nil.
func (s *Slide) Deck() *Deck {
	return s.deck
}

// AddElement adds an element on top of the existing ones
func (s *Slide) AddElement(elem Element) {
	s.Elements = append(s.Elements, elem)
}

// Title returns the text of the first title element, or "".
func (s *Slide) Title() string {
	for _, elem := range s.Elements {
		if te, ok := elem.(TextElement); ok && te.TextRole() == RoleTitle {
			return strings.TrimSpace(te.Frame().Text())
		}
	}
	return ""
}

// TextElements returns the elements that carry at least one paragraph of
// text, in z-order.
func (s *Slide) TextElements() []TextElement {
	var out []TextElement
	for _, elem := range s.Elements {
		te, ok := elem.(TextElement)
		if !ok {
			continue
		}
		if sh, isShape := elem.(*Shape); isShape && sh.Text == nil {
			continue
		}
		if len(te.Frame().NonEmpty()) > 0 {
			out = append(out, te)
		}
	}
	return out
}

// ExtractText concatenates all text elements
func (s *Slide) ExtractText() string {
	var b strings.Builder
	for _, te := range s.TextElements() {
		b.WriteString(te.Frame().Text())
		b.WriteString("\n")
	}
	return b.String()
}

// Shapes returns the shape elements with the given geometry.
func (s *Slide) Shapes(geom Geometry) []*Shape {
	var out []*Shape
	for _, elem := range s.Elements {
		if sh, ok := elem.(*Shape); ok && sh.Geometry == geom {
			out = append(out, sh)
		}
	}
	return out
}

// GetElementsInRegion returns elements whose bounds intersect r
func (s *Slide) GetElementsInRegion(r Rect) []Element {
	var elements []Element
	for _, elem := range s.Elements {
		if r.Intersects(elem.Bounds()) {
			elements = append(elements, elem)
		}
	}
	return elements
}
