package decks

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/deckforge/model"
)

// textRun is one text element of a slide: its non-empty paragraphs and the
// formatting they share.
type textRun struct {
	Lines []string
	Size  float64
	Bold  bool
	Color model.RGB
}

func run(size float64, bold bool, c model.RGB, lines ...string) textRun {
	return textRun{Lines: lines, Size: size, Bold: bold, Color: c}
}

// textRuns lists every text element of s in drawing order. Elements whose
// paragraphs disagree on formatting fail the test.
func textRuns(t *testing.T, s *model.Slide) []textRun {
	t.Helper()
	var out []textRun
	for i, te := range s.TextElements() {
		paras := te.Frame().NonEmpty()
		r := textRun{Size: paras[0].Font.Size, Bold: paras[0].Font.Bold}
		if paras[0].Font.Color != nil {
			r.Color = *paras[0].Font.Color
		}
		for _, p := range paras {
			var c model.RGB
			if p.Font.Color != nil {
				c = *p.Font.Color
			}
			if p.Font.Size != r.Size || p.Font.Bold != r.Bold || c != r.Color {
				t.Errorf("slide %d element %d: %q formatted %+v, first paragraph %+v",
					s.Index+1, i, p.Text, p.Font, paras[0].Font)
			}
			r.Lines = append(r.Lines, p.Text)
		}
		out = append(out, r)
	}
	return out
}

func checkGolden(t *testing.T, d *model.Deck, want [][]textRun) {
	t.Helper()
	if d.SlideCount() != len(want) {
		t.Fatalf("SlideCount() = %d, want %d", d.SlideCount(), len(want))
	}
	for i, w := range want {
		got := textRuns(t, d.GetSlide(i+1))
		if diff := cmp.Diff(w, got); diff != "" {
			t.Errorf("slide %d text mismatch (-want +got):\n%s", i+1, diff)
		}
	}
}

func TestTokensDeck_Golden(t *testing.T) {
	title := func(s string) textRun { return run(44, true, tokBlack, s) }
	body := func(lines ...string) textRun { return run(20, false, tokGrayDark, lines...) }
	step := func(s string) textRun { return run(18, true, tokBlack, s) }
	word := func(s string) textRun { return run(20, false, tokBlack, s) }
	split := func(s string) textRun { return run(20, false, tokGrayDark, s) }

	checkGolden(t, Tokens(), [][]textRun{
		{
			run(66, true, tokBlack, "Understanding Tokens"),
			run(28, false, tokGrayMedium, "The Building Blocks of Large Language Models"),
		},
		{
			title("What is a Token?"),
			body(
				"A token is the basic unit of text that a language model processes",
				"Tokens can be words, subwords, characters, or punctuation marks",
				"Models don't read text the way humans do—they process tokens",
				"Example: 'Hello world!' might be split into ['Hello', ' world', '!']",
			),
		},
		{
			title("Why Tokens Matter"),
			body(
				"Language models work with numbers, not text directly",
				"Text must be converted into tokens, then into numerical representations",
				"The tokenization method affects model performance and capabilities",
				"Token limits define how much text a model can process at once",
				"Understanding tokens helps optimize prompts and manage costs",
			),
		},
		{
			title("The Tokenization Process"),
			step("1. Raw Text"),
			step("2. Tokenize"),
			step("3. Token IDs"),
			step("4. Embeddings"),
			run(18, false, tokGrayDark, `Example: "Hello world" → ["Hello", " world"] → [5158, 1917] → [vector embeddings]`),
		},
		{
			title("Types of Tokenization"),
			body(
				"Word-level: Each word becomes a token (simple but large vocabulary)",
				"Character-level: Each character is a token (flexible but long sequences)",
				"Subword: Balance between words and characters (most common)",
				"Byte-Pair Encoding (BPE): Merges frequent character pairs iteratively",
				"WordPiece & SentencePiece: Variations used by different models",
			),
		},
		{
			title("Subword Tokenization Example"),
			word(`Common word: "running"`),
			split(`["running"]`),
			word(`Uncommon word: "tokenization"`),
			split(`["token", "ization"]`),
			word(`Rare word: "antidisestablishmentarianism"`),
			split(`["anti", "dis", "establish", "ment", "arian", "ism"]`),
			run(22, true, tokBlack, "Key Insight: Frequent words = fewer tokens, Rare words = more tokens"),
		},
		{
			title("Token Limits & Context Windows"),
			body(
				"Every model has a maximum context window (measured in tokens)",
				"Context window includes both input (prompt) and output (response)",
				"Examples: GPT-3.5 (4K tokens), GPT-4 (8K-32K), Claude (200K)",
				"Exceeding limits requires truncation or summarization",
				"Longer contexts enable more complex reasoning and document analysis",
			),
		},
		{
			title("Practical Implications"),
			body(
				"Cost: Many APIs charge per token (input + output)",
				"Speed: More tokens = longer processing time",
				"Context management: Must fit prompts within token limits",
				"Language differences: Some languages use more tokens than others",
				"Special characters and code often require more tokens than plain text",
			),
		},
		{
			title("Optimizing Token Usage"),
			body(
				"Be concise: Remove unnecessary words from prompts",
				"Use clear structure: Well-organized text tokenizes more efficiently",
				"Choose the right model: Balance token limits with task requirements",
				"Monitor usage: Track token consumption for cost management",
				"Consider chunking: Break large documents into smaller segments",
				"Test tokenization: Use tokenizer tools to preview splits",
			),
		},
		{
			title("Key Takeaways"),
			word("Tokens are the fundamental units LLMs process"),
			word("Tokenization affects performance, cost, and capabilities"),
			word("Understanding tokens helps optimize AI interactions"),
			word("Different models use different tokenization strategies"),
		},
	})
}

func TestPromptEngineeringDeck_Golden(t *testing.T) {
	title := func(s string) textRun { return run(36, true, pePrimary, s) }
	body := func(lines ...string) textRun { return run(20, false, pePrimary, lines...) }
	list := func(lines ...string) textRun { return run(16, false, pePrimary, lines...) }

	checkGolden(t, PromptEngineering(), [][]textRun{
		{
			run(48, true, pePrimary, "Language Models & Prompt Engineering"),
			run(24, false, peGray, "Understanding the Architecture and Art of AI Communication"),
		},
		{
			title("What are Language Models?"),
			body(
				"• AI systems trained on vast amounts of text data",
				"• Predict the next word in a sequence based on patterns",
				"• Built using neural network architectures",
				"• Learn statistical relationships between words",
				"• Can generate and understand human language",
			),
		},
		{
			title("The Transformer Architecture"),
			run(18, false, pePrimary, "Modern language models use the Transformer architecture, which processes text through multiple layers of attention mechanisms. Each layer helps the model understand relationships between different parts of the input text."),
			run(14, false, pePrimary, "Input"),
			run(12, false, peWhite, "Attention"),
			run(12, false, peWhite, "Attention"),
			run(12, false, peWhite, "Attention"),
			run(14, false, peWhite, "Output"),
		},
		{
			title("How LLMs Process Text"),
			body(
				"1. Tokenization: Breaking text into smaller units",
				"2. Embedding: Converting tokens to numerical vectors",
				"3. Attention: Understanding relationships between tokens",
				"4. Layer Processing: Refining understanding through multiple layers",
				"5. Generation: Producing probability distributions for next tokens",
			),
		},
		{
			title("Training Process"),
			body(
				"• Pre-training: Learning from massive text datasets",
				"• Self-supervised learning: Predicting masked or next words",
				"• Fine-tuning: Adapting to specific tasks or behaviors",
				"• Reinforcement Learning: Aligning with human preferences",
				"• Continuous improvement through feedback",
			),
		},
		{
			title("Why Prompt Engineering Matters"),
			body(
				"• LLMs are sensitive to input phrasing and structure",
				"• Different prompts activate different learned patterns",
				"• Context and instructions shape model behavior",
				"• Quality of output directly relates to prompt quality",
				"• Bridges the gap between human intent and AI understanding",
			),
		},
		{
			title("Key Prompt Engineering Principles"),
			body(
				"• Be Specific: Clear, detailed instructions yield better results",
				"• Provide Context: Background information improves relevance",
				"• Use Examples: Few-shot learning guides desired output format",
				"• Structure Matters: Organized prompts produce organized responses",
				"• Iterate and Refine: Test and improve prompts based on results",
			),
		},
		{
			title("Poor vs. Effective Prompts"),
			run(20, true, peWhite, "Poor Prompts"),
			list(
				"• Vague instructions",
				"• Missing context",
				"• Ambiguous goals",
				"• No format specification",
				"• Single attempt",
			),
			run(20, true, peWhite, "Effective Prompts"),
			list(
				"• Clear, specific directions",
				"• Relevant background info",
				"• Well-defined objectives",
				"• Output format examples",
				"• Iterative refinement",
			),
		},
		{
			title("Advanced Prompt Techniques"),
			body(
				"• Chain-of-Thought: Encouraging step-by-step reasoning",
				"• Role Playing: Defining personas for specialized responses",
				"• System Prompts: Setting behavioral guidelines",
				"• Temperature Control: Adjusting creativity vs. consistency",
				"• Prompt Chaining: Breaking complex tasks into steps",
			),
		},
		{
			title("The Future of Language Models"),
			body(
				"• Multimodal capabilities: Text, images, audio, and video",
				"• Improved reasoning and mathematical abilities",
				"• Better alignment with human values and intent",
				"• More efficient architectures and training methods",
				"• Democratization of AI through better interfaces",
			),
		},
	})
}
