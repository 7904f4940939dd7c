// Package deck provides a fluent builder for assembling slide decks and the
// bullet-list slide template shared by the built-in decks.
//
// The builder mirrors the vocabulary of presentation scripts: add a blank
// slide, drop text boxes and preset shapes at fixed positions, then style
// their paragraphs.
//
//	b := deck.New(model.Inches(16), model.Inches(9))
//	s := b.Slide().Background(white)
//	s.Title(model.InchRect(1, 3, 14, 2)).
//	    Paragraph("Understanding Tokens").Size(66).Bold().Color(black).Align(model.AlignCenter)
//	s.Shape(model.GeomRectangle, model.InchRect(7, 6.8, 2, 0.1)).Fill(black).Outline(black)
package deck

import (
	"github.com/tsawler/deckforge/model"
)

// Builder appends slides to a deck.
type Builder struct {
	deck *model.Deck
}

// New creates a builder for an empty deck of the given slide size.
func New(width, height model.EMU) *Builder {
	return &Builder{deck: model.NewDeck(width, height)}
}

// Wrap returns a builder that appends to an existing deck.
func Wrap(d *model.Deck) *Builder {
	return &Builder{deck: d}
}

// Deck returns the deck being built.
func (b *Builder) Deck() *model.Deck {
	return b.deck
}

// Slide appends a blank slide and returns a builder for it.
func (b *Builder) Slide() *SlideBuilder {
	return &SlideBuilder{slide: b.deck.NewSlide()}
}

// SlideBuilder places elements on one slide.
type SlideBuilder struct {
	slide *model.Slide
}

// Slide returns the slide being built.
func (sb *SlideBuilder) Slide() *model.Slide {
	return sb.slide
}

// Background sets a solid background colour.
func (sb *SlideBuilder) Background(c model.RGB) *SlideBuilder {
	sb.slide.Background = &c
	return sb
}

// TextBox adds an empty text box.
func (sb *SlideBuilder) TextBox(r model.Rect) *TextBuilder {
	tb := &model.TextBox{Rect: r}
	sb.slide.AddElement(tb)
	return &TextBuilder{frame: &tb.Text, role: &tb.Role}
}

// Title adds a text box holding the slide title.
func (sb *SlideBuilder) Title(r model.Rect) *TextBuilder {
	return sb.TextBox(r).Role(model.RoleTitle)
}

// Shape adds a preset shape.
func (sb *SlideBuilder) Shape(geom model.Geometry, r model.Rect) *ShapeBuilder {
	sh := &model.Shape{Geometry: geom, Rect: r}
	sb.slide.AddElement(sh)
	return &ShapeBuilder{shape: sh}
}

// Connector adds a straight line from (x1, y1) to (x2, y2).
func (sb *SlideBuilder) Connector(x1, y1, x2, y2 model.EMU) *ConnectorBuilder {
	c := &model.Connector{
		Start: model.Point{X: x1, Y: y1},
		End:   model.Point{X: x2, Y: y2},
	}
	sb.slide.AddElement(c)
	return &ConnectorBuilder{conn: c}
}

// TextBuilder fills a text frame.
type TextBuilder struct {
	frame *model.TextFrame
	role  *model.Role
}

// Frame returns the text frame being built.
func (tb *TextBuilder) Frame() *model.TextFrame {
	return tb.frame
}

// Role sets the semantic role of the owning element.
func (tb *TextBuilder) Role(r model.Role) *TextBuilder {
	*tb.role = r
	return tb
}

// WordWrap sets whether lines wrap at the frame edge.
func (tb *TextBuilder) WordWrap(on bool) *TextBuilder {
	tb.frame.WordWrap = model.Bool(on)
	return tb
}

// Anchor sets vertical anchoring.
func (tb *TextBuilder) Anchor(a model.Anchor) *TextBuilder {
	tb.frame.Anchor = a
	return tb
}

// Blank appends an empty paragraph. Frames created by appending to a fresh
// text body start with one.
func (tb *TextBuilder) Blank() *TextBuilder {
	tb.frame.AddParagraph("")
	return tb
}

// Paragraph appends a paragraph and returns a builder for its formatting.
func (tb *TextBuilder) Paragraph(text string) *ParagraphBuilder {
	tb.frame.AddParagraph(text)
	return &ParagraphBuilder{frame: tb.frame, index: len(tb.frame.Paragraphs) - 1}
}

// ParagraphBuilder formats one paragraph.
type ParagraphBuilder struct {
	frame *model.TextFrame
	index int
}

func (pb *ParagraphBuilder) p() *model.Paragraph {
	return &pb.frame.Paragraphs[pb.index]
}

// Paragraph returns a copy of the paragraph as built so far.
func (pb *ParagraphBuilder) Paragraph() model.Paragraph {
	return *pb.p()
}

// Style replaces the paragraph font.
func (pb *ParagraphBuilder) Style(f model.Font) *ParagraphBuilder {
	pb.p().Font = f
	return pb
}

// Size sets the font size in points.
func (pb *ParagraphBuilder) Size(pt float64) *ParagraphBuilder {
	pb.p().Font.Size = pt
	return pb
}

// Bold turns on bold.
func (pb *ParagraphBuilder) Bold() *ParagraphBuilder {
	pb.p().Font.Bold = true
	return pb
}

// Italic turns on italics.
func (pb *ParagraphBuilder) Italic() *ParagraphBuilder {
	pb.p().Font.Italic = true
	return pb
}

// Color sets the text colour.
func (pb *ParagraphBuilder) Color(c model.RGB) *ParagraphBuilder {
	pb.p().Font.Color = &c
	return pb
}

// Typeface sets the Latin font name.
func (pb *ParagraphBuilder) Typeface(name string) *ParagraphBuilder {
	pb.p().Font.Name = name
	return pb
}

// Align sets horizontal alignment.
func (pb *ParagraphBuilder) Align(a model.Alignment) *ParagraphBuilder {
	pb.p().Align = a
	return pb
}

// Level sets the indent level.
func (pb *ParagraphBuilder) Level(n int) *ParagraphBuilder {
	pb.p().Level = n
	return pb
}

// SpaceBefore sets the space above the paragraph in points.
func (pb *ParagraphBuilder) SpaceBefore(pt float64) *ParagraphBuilder {
	pb.p().SpaceBefore = pt
	return pb
}

// SpaceAfter sets the space below the paragraph in points.
func (pb *ParagraphBuilder) SpaceAfter(pt float64) *ParagraphBuilder {
	pb.p().SpaceAfter = pt
	return pb
}

// ShapeBuilder styles a preset shape.
type ShapeBuilder struct {
	shape *model.Shape
}

// Shape returns the shape being built.
func (b *ShapeBuilder) Shape() *model.Shape {
	return b.shape
}

// Fill paints the interior with a solid colour.
func (b *ShapeBuilder) Fill(c model.RGB) *ShapeBuilder {
	b.shape.Fill = model.Solid(c)
	return b
}

// NoFill leaves the interior transparent.
func (b *ShapeBuilder) NoFill() *ShapeBuilder {
	b.shape.Fill = model.Fill{Type: model.FillNone}
	return b
}

// Outline sets the outline colour.
func (b *ShapeBuilder) Outline(c model.RGB) *ShapeBuilder {
	b.shape.Line.Color = &c
	b.shape.Line.Hidden = false
	return b
}

// OutlineWidth sets the outline width in points.
func (b *ShapeBuilder) OutlineWidth(pt float64) *ShapeBuilder {
	b.shape.Line.Width = model.Pt(pt)
	return b
}

// NoOutline hides the outline.
func (b *ShapeBuilder) NoOutline() *ShapeBuilder {
	b.shape.Line = model.Line{Hidden: true}
	return b
}

// Rotate sets the clockwise rotation in degrees.
func (b *ShapeBuilder) Rotate(deg float64) *ShapeBuilder {
	b.shape.Rotation = deg
	return b
}

// Text returns a builder for the shape's text frame.
func (b *ShapeBuilder) Text() *TextBuilder {
	return &TextBuilder{frame: b.shape.Frame(), role: &b.shape.Role}
}

// ConnectorBuilder styles a connector.
type ConnectorBuilder struct {
	conn *model.Connector
}

// Connector returns the connector being built.
func (b *ConnectorBuilder) Connector() *model.Connector {
	return b.conn
}

// Color sets the stroke colour.
func (b *ConnectorBuilder) Color(c model.RGB) *ConnectorBuilder {
	b.conn.Line.Color = &c
	return b
}

// Width sets the stroke width in points.
func (b *ConnectorBuilder) Width(pt float64) *ConnectorBuilder {
	b.conn.Line.Width = model.Pt(pt)
	return b
}
