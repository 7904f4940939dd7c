package model

import "strings"

// Alignment is the horizontal alignment of a paragraph.
type Alignment int

const (
	AlignInherit Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

// String returns the DrawingML token for the alignment ("l", "ctr", ...),
// or "" when the alignment is inherited.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "l"
	case AlignCenter:
		return "ctr"
	case AlignRight:
		return "r"
	case AlignJustify:
		return "just"
	default:
		return ""
	}
}

// ParseAlignment converts a DrawingML token back to an Alignment.
func ParseAlignment(s string) Alignment {
	switch s {
	case "l":
		return AlignLeft
	case "ctr":
		return AlignCenter
	case "r":
		return AlignRight
	case "just":
		return AlignJustify
	default:
		return AlignInherit
	}
}

// Anchor is the vertical anchoring of text inside its frame.
type Anchor int

const (
	AnchorInherit Anchor = iota
	AnchorTop
	AnchorMiddle
	AnchorBottom
)

// String returns the DrawingML token for the anchor.
func (a Anchor) String() string {
	switch a {
	case AnchorTop:
		return "t"
	case AnchorMiddle:
		return "ctr"
	case AnchorBottom:
		return "b"
	default:
		return ""
	}
}

// ParseAnchor converts a DrawingML token back to an Anchor.
func ParseAnchor(s string) Anchor {
	switch s {
	case "t":
		return AnchorTop
	case "ctr":
		return AnchorMiddle
	case "b":
		return AnchorBottom
	default:
		return AnchorInherit
	}
}

// Font holds character formatting. Zero values mean "inherit".
type Font struct {
	Size   float64 // Points
	Bold   bool
	Italic bool
	Color  *RGB
	Name   string // Latin typeface, e.g. "Courier New"
}

// Paragraph is one paragraph of uniformly formatted text.
type Paragraph struct {
	Text        string
	Level       int // Indent level (0-8)
	Align       Alignment
	Font        Font
	SpaceBefore float64 // Points
	SpaceAfter  float64 // Points
}

// TextFrame is a container for paragraphs.
type TextFrame struct {
	Paragraphs []Paragraph
	WordWrap   *bool // nil inherits the default for the element type
	Anchor     Anchor
}

// AddParagraph appends a paragraph and returns a pointer to it. The pointer
// is valid until the next call to AddParagraph.
func (tf *TextFrame) AddParagraph(text string) *Paragraph {
	tf.Paragraphs = append(tf.Paragraphs, Paragraph{Text: text})
	return &tf.Paragraphs[len(tf.Paragraphs)-1]
}

// Text returns all paragraph text joined with newlines.
func (tf *TextFrame) Text() string {
	if tf == nil {
		return ""
	}
	parts := make([]string, 0, len(tf.Paragraphs))
	for _, p := range tf.Paragraphs {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n")
}

// NonEmpty returns the paragraphs that carry text.
func (tf *TextFrame) NonEmpty() []Paragraph {
	if tf == nil {
		return nil
	}
	var out []Paragraph
	for _, p := range tf.Paragraphs {
		if strings.TrimSpace(p.Text) != "" {
			out = append(out, p)
		}
	}
	return out
}

// Bool returns a pointer to b, for optional flags such as WordWrap.
func Bool(b bool) *bool {
	return &b
}
