package deck

import "github.com/tsawler/deckforge/model"

// BulletTemplate describes the "title plus bullet list" slide that most
// content slides share. Items are written verbatim; any bullet glyph or
// numbering must already be part of the text.
type BulletTemplate struct {
	Background *model.RGB

	TitleBox  model.Rect
	TitleFont model.Font

	BodyBox         model.Rect
	BodyFont        model.Font
	BodyWordWrap    bool
	BodySpaceBefore float64 // Points
	BodySpaceAfter  float64 // Points

	// LeadingBlank adds an empty first paragraph to the title and body
	// frames respectively.
	TitleLeadingBlank bool
	BodyLeadingBlank  bool

	// BeforeTitle and AfterTitle draw decorations around the title. They
	// control z-order: BeforeTitle shapes sit under the title.
	BeforeTitle func(sb *SlideBuilder)
	AfterTitle  func(sb *SlideBuilder)
}

// Add appends one slide to the builder's deck and returns it.
func (t BulletTemplate) Add(b *Builder, title string, items []string) *model.Slide {
	sb := b.Slide()
	if t.Background != nil {
		sb.Background(*t.Background)
	}
	if t.BeforeTitle != nil {
		t.BeforeTitle(sb)
	}

	tb := sb.Title(t.TitleBox)
	if t.TitleLeadingBlank {
		tb.Blank()
	}
	tb.Paragraph(title).Style(t.TitleFont)

	if t.AfterTitle != nil {
		t.AfterTitle(sb)
	}

	body := sb.TextBox(t.BodyBox).Role(model.RoleBody)
	if t.BodyWordWrap {
		body.WordWrap(true)
	}
	if t.BodyLeadingBlank {
		body.Blank()
	}
	for _, item := range items {
		body.Paragraph(item).
			Style(t.BodyFont).
			SpaceBefore(t.BodySpaceBefore).
			SpaceAfter(t.BodySpaceAfter)
	}
	return sb.Slide()
}
