package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/deckforge/deck"
	"github.com/tsawler/deckforge/decks"
	"github.com/tsawler/deckforge/model"
)

func texts(elems []model.TextElement) []string {
	out := make([]string, len(elems))
	for i, te := range elems {
		out[i] = te.Frame().NonEmpty()[0].Text
	}
	return out
}

// twoColumnSlide places a full-width title over two columns, each with a
// heading and a body, added in row order.
func twoColumnSlide() *model.Slide {
	b := deck.New(model.Inches(16), model.Inches(9))
	sb := b.Slide()
	sb.TextBox(model.InchRect(1, 3, 6, 0.5)).Paragraph("left heading")
	sb.TextBox(model.InchRect(9, 3, 6, 0.5)).Paragraph("right heading")
	sb.Title(model.InchRect(1, 0.5, 14, 1)).Paragraph("title")
	sb.TextBox(model.InchRect(1, 4, 6, 3)).Paragraph("left body")
	sb.TextBox(model.InchRect(9, 4, 6, 3)).Paragraph("right body")
	sb.Shape(model.GeomRectangle, model.InchRect(0, 8, 16, 1)).Fill(model.RGB{})
	return sb.Slide()
}

func TestOrder_Columns(t *testing.T) {
	got := texts(Order(twoColumnSlide()))
	want := []string{"title", "left heading", "left body", "right heading", "right body"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}
}

func TestOrder_Rows(t *testing.T) {
	config := DefaultReadingOrderConfig()
	config.PreferColumnOrder = false
	got := texts(NewReadingOrderDetectorWithConfig(config).Order(twoColumnSlide()))
	want := []string{"title", "left heading", "right heading", "left body", "right body"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}
}

func TestOrder_RowTolerance(t *testing.T) {
	sb := deck.New(model.Inches(16), model.Inches(9)).Slide()
	sb.TextBox(model.InchRect(8, 2.1, 2, 1)).Paragraph("right")
	sb.TextBox(model.InchRect(1, 2, 2, 1)).Paragraph("left")
	sb.TextBox(model.InchRect(4, 2.5, 2, 1)).Paragraph("lower")

	config := DefaultReadingOrderConfig()
	config.PreferColumnOrder = false
	got := texts(NewReadingOrderDetectorWithConfig(config).Order(sb.Slide()))
	want := []string{"left", "right", "lower"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}
}

func TestOrder_RightToLeft(t *testing.T) {
	sb := deck.New(model.Inches(16), model.Inches(9)).Slide()
	sb.TextBox(model.InchRect(1, 2, 6, 1)).Paragraph("שלום עולם")
	sb.TextBox(model.InchRect(9, 2, 6, 1)).Paragraph("مرحبا بالعالم")

	got := texts(Order(sb.Slide()))
	want := []string{"مرحبا بالعالم", "שלום עולם"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}
}

func TestOrder_SkipsEmptyText(t *testing.T) {
	sb := deck.New(model.Inches(16), model.Inches(9)).Slide()
	sb.TextBox(model.InchRect(1, 1, 6, 1)).Blank()
	sb.Shape(model.GeomEllipse, model.InchRect(1, 3, 1, 1))
	sb.Shape(model.GeomRoundRect, model.InchRect(3, 3, 2, 1)).Text().Paragraph("box")

	got := texts(Order(sb.Slide()))
	if diff := cmp.Diff([]string{"box"}, got); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}
}

func TestOrder_DetachedSlide(t *testing.T) {
	s := model.NewSlide()
	s.AddElement(&model.TextBox{Rect: model.InchRect(5, 1, 2, 1), Text: model.TextFrame{Paragraphs: []model.Paragraph{{Text: "b"}}}})
	s.AddElement(&model.TextBox{Rect: model.InchRect(1, 1, 2, 1), Text: model.TextFrame{Paragraphs: []model.Paragraph{{Text: "a"}}}})

	if diff := cmp.Diff([]string{"a", "b"}, texts(Order(s))); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}
}

func TestOrder_ComparisonSlide(t *testing.T) {
	s := decks.PromptEngineering().GetSlide(8)
	want := []string{
		"Poor vs. Effective Prompts",
		"Poor Prompts",
		"• Vague instructions",
		"Effective Prompts",
		"• Clear, specific directions",
	}
	if diff := cmp.Diff(want, texts(Order(s))); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadingDirectionString(t *testing.T) {
	if LeftToRight.String() != "ltr" || RightToLeft.String() != "rtl" {
		t.Errorf("String() = %q, %q", LeftToRight, RightToLeft)
	}
}
