package decks

import (
	"github.com/tsawler/deckforge/deck"
	"github.com/tsawler/deckforge/model"
	"github.com/tsawler/deckforge/text"
)

// Slate and indigo palette.
var (
	pePrimary = model.RGB{R: 30, G: 41, B: 59}
	peAccent  = model.RGB{R: 99, G: 102, B: 241}
	peGray    = model.RGB{R: 148, G: 163, B: 184}
	peWhite   = model.RGB{R: 255, G: 255, B: 255}
	peInput   = model.RGB{R: 248, G: 250, B: 252}
)

func init() {
	MustRegister(Entry{
		Name:          "prompt-engineering",
		Title:         "Language Models & Prompt Engineering",
		Description:   "Understanding the Architecture and Art of AI Communication",
		DefaultOutput: "language_models_prompt_engineering.pptx",
		Build:         PromptEngineering,
	})
}

var peStandard = deck.BulletTemplate{
	TitleBox:          model.InchRect(1, 0.8, 14, 1),
	TitleFont:         model.Font{Size: 36, Bold: true, Color: &pePrimary},
	TitleLeadingBlank: true,
	BodyBox:           model.InchRect(1.5, 2.5, 13, 5.5),
	BodyFont:          model.Font{Size: 20, Color: &pePrimary},
	BodySpaceAfter:    16,
	BodyLeadingBlank:  true,
	BeforeTitle:       peRule,
}

// repaired undoes the Mac Roman mojibake the bullet glyphs were stored
// with ("‚Ä¢" for "•").
func repaired(items []string) []string {
	text.NormalizeAll(items)
	return items
}

// peRule draws the full-width accent line across the top of the slide.
func peRule(sb *deck.SlideBuilder) {
	sb.Connector(0, model.Inches(0.5), model.Inches(16), model.Inches(0.5)).
		Width(3).Color(peAccent)
}

func peTitle(sb *deck.SlideBuilder, title string) {
	sb.Title(model.InchRect(1, 0.8, 14, 1)).Blank().
		Paragraph(title).Size(36).Bold().Color(pePrimary)
}

// PromptEngineering builds "Language Models & Prompt Engineering", a 16:9
// deck of ten slides.
func PromptEngineering() *model.Deck {
	b := deck.New(model.Inches(16), model.Inches(9))
	d := b.Deck()
	d.Metadata.Title = "Language Models & Prompt Engineering"
	d.Metadata.Subject = "Understanding the Architecture and Art of AI Communication"
	d.Metadata.Keywords = []string{"language models", "prompt engineering", "transformers"}

	// 1: title over a rotated accent block
	sb := b.Slide()
	sb.Shape(model.GeomRectangle, model.InchRect(-2, -2, 10, 6)).
		Fill(peAccent).NoOutline().Rotate(15)
	sb.Title(model.InchRect(2, 3, 12, 2)).Blank().
		Paragraph("Language Models & Prompt Engineering").Size(48).Bold().Color(pePrimary)
	sb.TextBox(model.InchRect(2, 5.5, 10, 1)).Role(model.RoleSubtitle).Blank().
		Paragraph("Understanding the Architecture and Art of AI Communication").Size(24).Color(peGray)

	// 2: bullets beside a small neural network
	sb = b.Slide()
	peRule(sb)
	peTitle(sb, "What are Language Models?")
	body := sb.TextBox(model.InchRect(1.5, 2.5, 8, 5.5)).Role(model.RoleBody).Blank()
	for _, item := range repaired([]string{
		"‚Ä¢ AI systems trained on vast amounts of text data",
		"‚Ä¢ Predict the next word in a sequence based on patterns",
		"‚Ä¢ Built using neural network architectures",
		"‚Ä¢ Learn statistical relationships between words",
		"‚Ä¢ Can generate and understand human language",
	}) {
		body.Paragraph(item).Size(20).Color(pePrimary).SpaceAfter(16)
	}
	const netX, netY = 10.0, 3.0
	for i := 0; i < 3; i++ {
		sb.Shape(model.GeomEllipse, model.InchRect(netX, netY+float64(i)*1.2, 0.5, 0.5)).Fill(peAccent)
	}
	for i := 0; i < 4; i++ {
		sb.Shape(model.GeomEllipse, model.InchRect(netX+2, netY-0.6+float64(i)*1.2, 0.5, 0.5)).Fill(peGray)
	}
	for i := 0; i < 2; i++ {
		sb.Shape(model.GeomEllipse, model.InchRect(netX+4, netY+0.6+float64(i)*1.2, 0.5, 0.5)).Fill(pePrimary)
	}

	// 3: transformer stack
	sb = b.Slide()
	peTitle(sb, "The Transformer Architecture")
	sb.TextBox(model.InchRect(1.5, 2.5, 7, 4)).Role(model.RoleBody).Blank().
		Paragraph("Modern language models use the Transformer architecture, which processes text through multiple layers of attention mechanisms. Each layer helps the model understand relationships between different parts of the input text.").
		Size(18).Color(pePrimary)
	layers := []struct {
		label            string
		fill, line, text model.RGB
		offset           float64
	}{
		{"Input", peInput, peAccent, pePrimary, 0},
		{"Attention", peAccent, peAccent, peWhite, 1.2},
		{"Attention", peAccent, peAccent, peWhite, 2.1},
		{"Attention", peAccent, peAccent, peWhite, 3.0},
		{"Output", pePrimary, pePrimary, peWhite, 4.5},
	}
	for _, l := range layers {
		h, size := 0.8, 14.0
		if l.label == "Attention" {
			h, size = 0.7, 12
		}
		box := sb.Shape(model.GeomRoundRect, model.InchRect(9.5, 2.5+l.offset, 2, h)).
			Fill(l.fill).Outline(l.line)
		box.Text().Blank().
			Paragraph(l.label).Align(model.AlignCenter).Size(size).Color(l.text)
	}

	// 4
	peStandard.Add(b, "How LLMs Process Text", []string{
		"1. Tokenization: Breaking text into smaller units",
		"2. Embedding: Converting tokens to numerical vectors",
		"3. Attention: Understanding relationships between tokens",
		"4. Layer Processing: Refining understanding through multiple layers",
		"5. Generation: Producing probability distributions for next tokens",
	})

	// 5
	peStandard.Add(b, "Training Process", repaired([]string{
		"‚Ä¢ Pre-training: Learning from massive text datasets",
		"‚Ä¢ Self-supervised learning: Predicting masked or next words",
		"‚Ä¢ Fine-tuning: Adapting to specific tasks or behaviors",
		"‚Ä¢ Reinforcement Learning: Aligning with human preferences",
		"‚Ä¢ Continuous improvement through feedback",
	}))

	// 6
	peStandard.Add(b, "Why Prompt Engineering Matters", repaired([]string{
		"‚Ä¢ LLMs are sensitive to input phrasing and structure",
		"‚Ä¢ Different prompts activate different learned patterns",
		"‚Ä¢ Context and instructions shape model behavior",
		"‚Ä¢ Quality of output directly relates to prompt quality",
		"‚Ä¢ Bridges the gap between human intent and AI understanding",
	}))

	// 7
	peStandard.Add(b, "Key Prompt Engineering Principles", repaired([]string{
		"‚Ä¢ Be Specific: Clear, detailed instructions yield better results",
		"‚Ä¢ Provide Context: Background information improves relevance",
		"‚Ä¢ Use Examples: Few-shot learning guides desired output format",
		"‚Ä¢ Structure Matters: Organized prompts produce organized responses",
		"‚Ä¢ Iterate and Refine: Test and improve prompts based on results",
	}))

	// 8: two-column comparison
	sb = b.Slide()
	peTitle(sb, "Poor vs. Effective Prompts")
	columns := []struct {
		x      float64
		header string
		fill   model.RGB
		items  []string
	}{
		{1.5, "Poor Prompts", peGray, repaired([]string{
			"‚Ä¢ Vague instructions",
			"‚Ä¢ Missing context",
			"‚Ä¢ Ambiguous goals",
			"‚Ä¢ No format specification",
			"‚Ä¢ Single attempt",
		})},
		{8.5, "Effective Prompts", peAccent, repaired([]string{
			"‚Ä¢ Clear, specific directions",
			"‚Ä¢ Relevant background info",
			"‚Ä¢ Well-defined objectives",
			"‚Ä¢ Output format examples",
			"‚Ä¢ Iterative refinement",
		})},
	}
	for _, col := range columns {
		hdr := sb.Shape(model.GeomRoundRect, model.InchRect(col.x, 2.3, 6, 0.8)).
			Fill(col.fill).NoOutline()
		hdr.Text().Role(model.RoleCaption).Blank().
			Paragraph(col.header).Align(model.AlignCenter).Size(20).Bold().Color(peWhite)

		list := sb.TextBox(model.InchRect(col.x, 3.5, 6, 4)).Role(model.RoleBody).Blank()
		for _, item := range col.items {
			list.Paragraph(item).Size(16).Color(pePrimary).SpaceAfter(12)
		}
	}

	// 9
	peStandard.Add(b, "Advanced Prompt Techniques", repaired([]string{
		"‚Ä¢ Chain-of-Thought: Encouraging step-by-step reasoning",
		"‚Ä¢ Role Playing: Defining personas for specialized responses",
		"‚Ä¢ System Prompts: Setting behavioral guidelines",
		"‚Ä¢ Temperature Control: Adjusting creativity vs. consistency",
		"‚Ä¢ Prompt Chaining: Breaking complex tasks into steps",
	}))

	// 10
	peStandard.Add(b, "The Future of Language Models", repaired([]string{
		"‚Ä¢ Multimodal capabilities: Text, images, audio, and video",
		"‚Ä¢ Improved reasoning and mathematical abilities",
		"‚Ä¢ Better alignment with human values and intent",
		"‚Ä¢ More efficient architectures and training methods",
		"‚Ä¢ Democratization of AI through better interfaces",
	}))

	return d
}
