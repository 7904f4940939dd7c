package text

import (
	"testing"
)

func TestRepairMojibake(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{"bullet", "‚Ä¢ AI systems trained on vast amounts of text data", "• AI systems trained on vast amounts of text data", true},
		{"check mark", "‚úÖ Presentation created successfully!", "✅ Presentation created successfully!", true},
		{"ascii untouched", "Training Process", "Training Process", false},
		{"correct bullet untouched", "• Vague instructions", "• Vague instructions", false},
		{"accent untouched", "café", "café", false},
		{"em dash untouched", "Models don't read text the way humans do—they process tokens", "Models don't read text the way humans do—they process tokens", false},
		{"arrow untouched", `"Hello world" → ["Hello", " world"]`, `"Hello world" → ["Hello", " world"]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := RepairMojibake(tt.in)
			if got != tt.want {
				t.Errorf("RepairMojibake(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	// "e" followed by a combining acute accent composes to U+00E9.
	if got := Normalize("cafe\u0301"); got != "caf\u00e9" {
		t.Errorf("Normalize did not compose: %q", got)
	}
	if got := Normalize("‚Ä¢ Single attempt"); got != "• Single attempt" {
		t.Errorf("Normalize did not repair: %q", got)
	}
}

func TestNormalizeAll(t *testing.T) {
	items := []string{"‚Ä¢ Missing context", "• Ambiguous goals", "plain"}
	if n := NormalizeAll(items); n != 1 {
		t.Errorf("NormalizeAll changed %d strings, want 1", n)
	}
	if items[0] != "• Missing context" {
		t.Errorf("items[0] = %q", items[0])
	}
}

func TestCollapseSpace(t *testing.T) {
	if got := CollapseSpace("  a \t b\n c  "); got != "a b c" {
		t.Errorf("CollapseSpace = %q", got)
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"Hello World", LTR},
		{"مرحبا بالعالم", RTL},
		{"שלום עולם", RTL},
		{"12345", Neutral},
		{"", Neutral},
		{"トークン", LTR},
	}
	for _, tt := range tests {
		if got := DetectDirection(tt.in); got != tt.want {
			t.Errorf("DetectDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEstimateWidth(t *testing.T) {
	narrow := EstimateWidth("iiii", 20, false)
	wide := EstimateWidth("MMMM", 20, false)
	if narrow >= wide {
		t.Errorf("narrow glyphs (%d) should be narrower than wide glyphs (%d)", narrow, wide)
	}

	mono := EstimateWidth("iiii", 20, true)
	if mono != EstimateWidth("MMMM", 20, true) {
		t.Error("monospace width should not depend on glyphs")
	}

	if EstimateWidth("abc", 40, false) <= EstimateWidth("abc", 20, false) {
		t.Error("width should grow with font size")
	}

	if RuneWidth('漢') != fullEm {
		t.Errorf("RuneWidth of a wide ideograph = %v, want %v", RuneWidth('漢'), fullEm)
	}
}

func TestCountLines(t *testing.T) {
	const inch = 914400

	short := CountLines("What is a Token?", 44, 15*inch, false)
	if short != 1 {
		t.Errorf("short title took %d lines, want 1", short)
	}

	long := "Modern language models use the Transformer architecture, which processes text through multiple layers of attention mechanisms."
	if n := CountLines(long, 18, 3*inch, false); n < 3 {
		t.Errorf("long paragraph in narrow box took %d lines, want at least 3", n)
	}

	if n := CountLines("a\nb\nc", 12, 5*inch, false); n != 3 {
		t.Errorf("explicit newlines gave %d lines, want 3", n)
	}

	if n := CountLines("", 12, 5*inch, false); n != 1 {
		t.Errorf("empty string gave %d lines, want 1", n)
	}
}

func TestIsMonospace(t *testing.T) {
	if !IsMonospace("Courier New") {
		t.Error("Courier New should be monospace")
	}
	if IsMonospace("Calibri") {
		t.Error("Calibri should not be monospace")
	}
}
