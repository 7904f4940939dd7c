package decks

import (
	"github.com/tsawler/deckforge/deck"
	"github.com/tsawler/deckforge/model"
)

// Black and white minimalist palette.
var (
	tokBlack      = model.RGB{R: 0, G: 0, B: 0}
	tokWhite      = model.RGB{R: 255, G: 255, B: 255}
	tokGrayLight  = model.RGB{R: 240, G: 240, B: 240}
	tokGrayMedium = model.RGB{R: 128, G: 128, B: 128}
	tokGrayDark   = model.RGB{R: 64, G: 64, B: 64}
)

func init() {
	MustRegister(Entry{
		Name:          "tokens",
		Title:         "Understanding Tokens",
		Description:   "The Building Blocks of Large Language Models",
		DefaultOutput: "tokens_in_llms.pptx",
		Build:         Tokens,
	})
}

// tokensStandard is the bullet slide used for most of the tokens deck.
var tokensStandard = deck.BulletTemplate{
	Background:       &tokWhite,
	TitleBox:         model.InchRect(0.5, 0.8, 15, 1),
	TitleFont:        model.Font{Size: 44, Bold: true, Color: &tokBlack},
	BodyBox:          model.InchRect(0.5, 2.5, 15, 5.5),
	BodyFont:         model.Font{Size: 20, Color: &tokGrayDark},
	BodyWordWrap:     true,
	BodySpaceBefore:  12,
	BodyLeadingBlank: true,
	AfterTitle: func(sb *deck.SlideBuilder) {
		tokensAccent(sb).Outline(tokBlack)
	},
}

func tokensAccent(sb *deck.SlideBuilder) *deck.ShapeBuilder {
	return sb.Shape(model.GeomRectangle, model.InchRect(0.5, 1.9, 2, 0.05)).Fill(tokBlack)
}

// tokensHeading starts a custom slide with the standard title and an accent
// bar that keeps its default outline.
func tokensHeading(b *deck.Builder, title string) *deck.SlideBuilder {
	sb := b.Slide().Background(tokWhite)
	sb.Title(model.InchRect(0.5, 0.8, 15, 1)).
		Paragraph(title).Size(44).Bold().Color(tokBlack)
	tokensAccent(sb)
	return sb
}

// Tokens builds "Understanding Tokens: The Building Blocks of Large Language
// Models", a 16:9 deck of ten slides.
func Tokens() *model.Deck {
	b := deck.New(model.Inches(16), model.Inches(9))
	d := b.Deck()
	d.Metadata.Title = "Understanding Tokens"
	d.Metadata.Subject = "The Building Blocks of Large Language Models"
	d.Metadata.Keywords = []string{"tokens", "tokenization", "LLM"}

	// 1: title
	sb := b.Slide().Background(tokWhite)
	sb.Title(model.InchRect(1, 3, 14, 2)).
		Paragraph("Understanding Tokens").Size(66).Bold().Color(tokBlack).Align(model.AlignLeft)
	sb.TextBox(model.InchRect(1, 5.2, 14, 1)).Role(model.RoleSubtitle).
		Paragraph("The Building Blocks of Large Language Models").Size(28).Color(tokGrayMedium).Align(model.AlignLeft)
	sb.Shape(model.GeomRectangle, model.InchRect(7, 6.8, 2, 0.1)).Fill(tokBlack).Outline(tokBlack)

	// 2
	tokensStandard.Add(b, "What is a Token?", []string{
		"A token is the basic unit of text that a language model processes",
		"Tokens can be words, subwords, characters, or punctuation marks",
		"Models don't read text the way humans do—they process tokens",
		"Example: 'Hello world!' might be split into ['Hello', ' world', '!']",
	})

	// 3
	tokensStandard.Add(b, "Why Tokens Matter", []string{
		"Language models work with numbers, not text directly",
		"Text must be converted into tokens, then into numerical representations",
		"The tokenization method affects model performance and capabilities",
		"Token limits define how much text a model can process at once",
		"Understanding tokens helps optimize prompts and manage costs",
	})

	// 4: process flow
	sb = tokensHeading(b, "The Tokenization Process")
	steps := []struct {
		label string
		x     float64
	}{
		{"1. Raw Text", 2},
		{"2. Tokenize", 5},
		{"3. Token IDs", 8},
		{"4. Embeddings", 11},
	}
	for _, step := range steps {
		box := sb.Shape(model.GeomRoundRect, model.InchRect(step.x, 3.5, 2.5, 1.5)).
			Fill(tokGrayLight).Outline(tokBlack).OutlineWidth(2)
		box.Text().WordWrap(true).Anchor(model.AnchorTop).
			Paragraph(step.label).Size(18).Bold().Color(tokBlack).Align(model.AlignLeft)
	}
	for _, x := range []float64{4.5, 7.5, 10.5} {
		sb.Shape(model.GeomRightArrow, model.InchRect(x, 3.9, 0.8, 0.6)).Fill(tokBlack).Outline(tokBlack)
	}
	sb.TextBox(model.InchRect(2, 6, 12, 2)).Role(model.RoleCaption).
		Paragraph(`Example: "Hello world" → ["Hello", " world"] → [5158, 1917] → [vector embeddings]`).
		Size(18).Color(tokGrayDark).Align(model.AlignLeft)

	// 5
	tokensStandard.Add(b, "Types of Tokenization", []string{
		"Word-level: Each word becomes a token (simple but large vocabulary)",
		"Character-level: Each character is a token (flexible but long sequences)",
		"Subword: Balance between words and characters (most common)",
		"Byte-Pair Encoding (BPE): Merges frequent character pairs iteratively",
		"WordPiece & SentencePiece: Variations used by different models",
	})

	// 6: subword examples
	sb = tokensHeading(b, "Subword Tokenization Example")
	examples := []struct{ word, tokens string }{
		{`Common word: "running"`, `["running"]`},
		{`Uncommon word: "tokenization"`, `["token", "ization"]`},
		{`Rare word: "antidisestablishmentarianism"`, `["anti", "dis", "establish", "ment", "arian", "ism"]`},
	}
	y := 2.8
	for _, ex := range examples {
		sb.TextBox(model.InchRect(1, y, 6, 0.6)).Role(model.RoleBody).
			Paragraph(ex.word).Size(20).Color(tokBlack)
		sb.Shape(model.GeomRightArrow, model.InchRect(7.5, y+0.1, 1, 0.4)).
			Fill(tokGrayMedium).Outline(tokGrayMedium)
		sb.TextBox(model.InchRect(9, y, 6, 0.6)).Role(model.RoleBody).
			Paragraph(ex.tokens).Size(20).Color(tokGrayDark).Typeface("Courier New")
		y += 1.4
	}
	sb.TextBox(model.InchRect(1, 7, 14, 1.2)).Role(model.RoleCaption).
		Paragraph("Key Insight: Frequent words = fewer tokens, Rare words = more tokens").
		Size(22).Bold().Color(tokBlack).Align(model.AlignLeft)

	// 7
	tokensStandard.Add(b, "Token Limits & Context Windows", []string{
		"Every model has a maximum context window (measured in tokens)",
		"Context window includes both input (prompt) and output (response)",
		"Examples: GPT-3.5 (4K tokens), GPT-4 (8K-32K), Claude (200K)",
		"Exceeding limits requires truncation or summarization",
		"Longer contexts enable more complex reasoning and document analysis",
	})

	// 8
	tokensStandard.Add(b, "Practical Implications", []string{
		"Cost: Many APIs charge per token (input + output)",
		"Speed: More tokens = longer processing time",
		"Context management: Must fit prompts within token limits",
		"Language differences: Some languages use more tokens than others",
		"Special characters and code often require more tokens than plain text",
	})

	// 9
	tokensStandard.Add(b, "Optimizing Token Usage", []string{
		"Be concise: Remove unnecessary words from prompts",
		"Use clear structure: Well-organized text tokenizes more efficiently",
		"Choose the right model: Balance token limits with task requirements",
		"Monitor usage: Track token consumption for cost management",
		"Consider chunking: Break large documents into smaller segments",
		"Test tokenization: Use tokenizer tools to preview splits",
	})

	// 10: takeaways
	sb = tokensHeading(b, "Key Takeaways")
	takeaways := []string{
		"Tokens are the fundamental units LLMs process",
		"Tokenization affects performance, cost, and capabilities",
		"Understanding tokens helps optimize AI interactions",
		"Different models use different tokenization strategies",
	}
	y = 3
	for _, t := range takeaways {
		box := sb.Shape(model.GeomRoundRect, model.InchRect(2, y, 12, 0.9)).
			Fill(tokGrayLight).Outline(tokBlack).OutlineWidth(1.5)
		box.Text().Role(model.RoleBody).Anchor(model.AnchorTop).
			Paragraph(t).Size(20).Color(tokBlack).Align(model.AlignLeft)
		y += 1.2
	}

	return d
}
