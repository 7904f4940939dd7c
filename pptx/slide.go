package pptx

import "strings"

// Slide represents a parsed slide.
type Slide struct {
	Index      int         // 0-indexed slide number
	Title      string      // From a title placeholder or a title-named shape
	Background string      // Solid background as RRGGBB, "" when inherited
	Content    []TextBlock // Text-bearing shapes in z-order
	Shapes     []ShapeInfo // Every shape and connector in z-order
	Notes      string      // Speaker notes
}

// TextBlock represents a block of text on a slide.
type TextBlock struct {
	Text        string
	Paragraphs  []Paragraph // Non-empty paragraphs only
	Name        string      // Shape name
	IsTitle     bool
	IsSubtitle  bool
	IsTextBox   bool   // Free text box rather than an autoshape
	Placeholder string // Placeholder type (title, body, etc.)
	X, Y        int64  // Position in EMUs
	Width       int64  // Width in EMUs
	Height      int64  // Height in EMUs
}

// Paragraph represents a paragraph within a text block.
type Paragraph struct {
	Text        string
	Level       int    // Bullet/indent level (0 = top level)
	IsBullet    bool   // Declared bullet, or a bullet glyph typed at the start
	IsNumbered  bool   // Is numbered list
	BulletChar  string // Bullet character (if custom)
	Alignment   string // l, ctr, r, just
	SpaceBefore float64
	SpaceAfter  float64
	Runs        []Run // Text runs with formatting
}

// inlineBullet reports whether the bullet glyph is part of the text.
func (p Paragraph) inlineBullet() bool {
	return p.IsBullet && p.BulletChar != "" && strings.HasPrefix(p.Text, p.BulletChar+" ")
}

// Run represents a text run with consistent formatting.
type Run struct {
	Text     string
	Bold     bool
	Italic   bool
	FontSize int    // In hundredths of a point
	Color    string // RRGGBB, "" when inherited
	Typeface string
}

// ShapeInfo describes the geometry and styling of one shape or connector.
type ShapeInfo struct {
	ID        int
	Name      string
	Kind      string // "sp" or "cxnSp"
	Geometry  string // Preset geometry, e.g. "roundRect"
	X, Y      int64
	Width     int64
	Height    int64
	Rotation  float64 // Degrees clockwise
	FlipH     bool
	FlipV     bool
	Fill      string // RRGGBB, "none", or "" when inherited
	Line      string // RRGGBB, "none", or "" when inherited
	LineWidth int64  // EMU
	TextBox   bool
	HasText   bool
}

// ShapesByGeometry returns the shapes with the given preset geometry.
func (s *Slide) ShapesByGeometry(geom string) []ShapeInfo {
	var out []ShapeInfo
	for _, sh := range s.Shapes {
		if sh.Geometry == geom {
			out = append(out, sh)
		}
	}
	return out
}

// GetText returns all text from the slide as a single string.
func (s *Slide) GetText() string {
	var result strings.Builder

	if s.Title != "" {
		result.WriteString(s.Title + "\n\n")
	}

	for _, block := range s.Content {
		if block.IsTitle {
			continue // Already added
		}
		for _, para := range block.Paragraphs {
			if (para.IsBullet || para.IsNumbered) && !para.inlineBullet() {
				result.WriteString(strings.Repeat("  ", para.Level))
				if para.BulletChar != "" {
					result.WriteString(para.BulletChar + " ")
				} else {
					result.WriteString("• ")
				}
			}
			result.WriteString(para.Text + "\n")
		}
		result.WriteString("\n")
	}

	return result.String()
}

// GetMarkdown returns the slide content as markdown.
func (s *Slide) GetMarkdown() string {
	var result strings.Builder

	// Title as H1
	if s.Title != "" {
		result.WriteString("# " + s.Title + "\n\n")
	}

	for _, block := range s.Content {
		if block.IsTitle {
			continue // Already added
		}

		inList := false
		for _, para := range block.Paragraphs {
			indent := strings.Repeat("  ", para.Level)
			switch {
			case para.IsNumbered:
				result.WriteString(indent + "1. " + para.Text + "\n")
				inList = true
			case para.IsBullet:
				item := para.Text
				if para.inlineBullet() {
					item = strings.TrimSpace(strings.TrimPrefix(item, para.BulletChar))
				}
				result.WriteString(indent + "- " + item + "\n")
				inList = true
			case isNumberedText(para.Text):
				result.WriteString(indent + para.Text + "\n")
				inList = true
			default:
				if inList {
					result.WriteString("\n")
					inList = false
				}
				result.WriteString(para.Text + "\n\n")
			}
		}
		if inList {
			result.WriteString("\n")
		}
	}

	return result.String()
}

// isNumberedText reports whether text already starts with "N. ".
func isNumberedText(s string) bool {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > 0 && strings.HasPrefix(s[i:], ". ")
}
