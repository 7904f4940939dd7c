package model

// ElementKind represents the type of slide element
type ElementKind int

const (
	KindUnknown ElementKind = iota
	KindTextBox
	KindShape
	KindConnector
)

func (k ElementKind) String() string {
	switch k {
	case KindTextBox:
		return "TextBox"
	case KindShape:
		return "Shape"
	case KindConnector:
		return "Connector"
	default:
		return "Unknown"
	}
}

// Role describes what a text-bearing element means on its slide. Exporters
// use it to find titles without relying on placeholder layouts.
type Role int

const (
	RoleNone Role = iota
	RoleTitle
	RoleSubtitle
	RoleBody
	RoleCaption
)

func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleSubtitle:
		return "subtitle"
	case RoleBody:
		return "body"
	case RoleCaption:
		return "caption"
	default:
		return "none"
	}
}

// Element is the interface for all slide elements
type Element interface {
	Kind() ElementKind
	Bounds() Rect
	Name() string
}

// TextElement is an interface for elements that can carry text
type TextElement interface {
	Element
	Frame() *TextFrame
	TextRole() Role
}

// Geometry is a DrawingML preset geometry.
type Geometry string

const (
	GeomRectangle  Geometry = "rect"
	GeomRoundRect  Geometry = "roundRect"
	GeomEllipse    Geometry = "ellipse"
	GeomRightArrow Geometry = "rightArrow"
	GeomLine       Geometry = "line"
)

// FillType selects how a shape interior is painted.
type FillType int

const (
	// FillDefault leaves the fill to the shape style.
	FillDefault FillType = iota
	FillNone
	FillSolid
)

// Fill describes a shape interior.
type Fill struct {
	Type  FillType
	Color RGB
}

// Solid returns a solid fill of the given colour.
func Solid(c RGB) Fill {
	return Fill{Type: FillSolid, Color: c}
}

// Line describes a shape outline or connector stroke. A nil Color with
// Hidden unset leaves the outline to the shape style.
type Line struct {
	Color  *RGB
	Width  EMU
	Hidden bool
}

// TextBox is a positioned frame of text with no visible geometry.
type TextBox struct {
	ID   string
	Rect Rect
	Role Role
	Text TextFrame
}

func (t *TextBox) Kind() ElementKind { return KindTextBox }
func (t *TextBox) Bounds() Rect      { return t.Rect }
func (t *TextBox) Name() string      { return t.ID }
func (t *TextBox) Frame() *TextFrame { return &t.Text }
func (t *TextBox) TextRole() Role    { return t.Role }

// Shape is a preset geometry with optional text.
type Shape struct {
	ID       string
	Geometry Geometry
	Rect     Rect
	Fill     Fill
	Line     Line
	Rotation float64 // Degrees clockwise
	Role     Role
	Text     *TextFrame
}

func (s *Shape) Kind() ElementKind { return KindShape }
func (s *Shape) Bounds() Rect      { return s.Rect }
func (s *Shape) Name() string      { return s.ID }
func (s *Shape) TextRole() Role    { return s.Role }

// Frame returns the shape's text frame, creating it on first use.
func (s *Shape) Frame() *TextFrame {
	if s.Text == nil {
		s.Text = &TextFrame{}
	}
	return s.Text
}

// HasText reports whether the shape carries any paragraph text.
func (s *Shape) HasText() bool {
	return len(s.Text.NonEmpty()) > 0
}

// Connector is a straight line from Start to End.
type Connector struct {
	ID    string
	Start Point
	End   Point
	Line  Line
}

func (c *Connector) Kind() ElementKind { return KindConnector }
func (c *Connector) Bounds() Rect      { return RectFromPoints(c.Start, c.End) }
func (c *Connector) Name() string      { return c.ID }

// FlipH reports whether the line runs right to left.
func (c *Connector) FlipH() bool { return c.End.X < c.Start.X }

// FlipV reports whether the line runs bottom to top.
func (c *Connector) FlipV() bool { return c.End.Y < c.Start.Y }
