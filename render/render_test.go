package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/deckforge/deck"
	"github.com/tsawler/deckforge/decks"
	"github.com/tsawler/deckforge/model"
)

var (
	red  = model.RGB{R: 0xFF}
	blue = model.RGB{B: 0xFF}
)

// Slides are 16in wide, so 960 pixels gives 60 pixels per inch.
func at(img *image.RGBA, xIn, yIn float64) color.RGBA {
	return img.RGBAAt(int(xIn*60), int(yIn*60))
}

func newDeck() (*deck.Builder, *deck.SlideBuilder) {
	b := deck.New(model.Inches(16), model.Inches(9))
	return b, b.Slide()
}

func TestSlideToImage_Size(t *testing.T) {
	b, _ := newDeck()
	tests := []struct {
		width        int
		wantW, wantH int
	}{
		{0, 960, 540},
		{1280, 1280, 720},
		{100, 100, 56},
	}
	for _, tt := range tests {
		img, err := SlideToImage(b.Deck(), 0, Options{Width: tt.width})
		if err != nil {
			t.Fatal(err)
		}
		if got := img.Bounds().Size(); got.X != tt.wantW || got.Y != tt.wantH {
			t.Errorf("Width %d: size = %v, want %dx%d", tt.width, got, tt.wantW, tt.wantH)
		}
	}
}

func TestSlideToImage_Fill(t *testing.T) {
	b, sb := newDeck()
	sb.Background(red)
	sb.Shape(model.GeomRectangle, model.InchRect(4, 3, 4, 3)).Fill(blue).NoOutline()
	sb.Shape(model.GeomEllipse, model.InchRect(10, 3, 4, 3)).NoFill().NoOutline()

	img, err := SlideToImage(b.Deck(), 0, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		x, y float64
		want color.RGBA
	}{
		{"background", 1, 1, red.RGBA()},
		{"shape centre", 6, 4.5, blue.RGBA()},
		{"unfilled shape", 12, 4.5, red.RGBA()},
	}
	for _, tt := range tests {
		if got := at(img, tt.x, tt.y); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSlideToImage_BackgroundOverride(t *testing.T) {
	b, sb := newDeck()
	sb.Background(red)
	green := model.RGB{G: 0x80}

	img, err := SlideToImage(b.Deck(), 0, Options{Background: &green})
	if err != nil {
		t.Fatal(err)
	}
	if got := at(img, 1, 1); got != green.RGBA() {
		t.Errorf("background = %v, want %v", got, green.RGBA())
	}
}

func TestSlideToImage_DefaultStyle(t *testing.T) {
	b, sb := newDeck()
	sb.Shape(model.GeomRoundRect, model.InchRect(4, 3, 4, 3))

	img, err := SlideToImage(b.Deck(), 0, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if got := at(img, 6, 4.5); got != defaultFill {
		t.Errorf("default fill = %v, want %v", got, defaultFill)
	}
}

func TestSlideToImage_Rotation(t *testing.T) {
	// A 4x1 bar centred at (8, 2.5) stands upright when turned 90 degrees.
	build := func(deg float64) *image.RGBA {
		b, sb := newDeck()
		sb.Shape(model.GeomRectangle, model.InchRect(6, 2, 4, 1)).Fill(blue).NoOutline().Rotate(deg)
		img, err := SlideToImage(b.Deck(), 0, DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		return img
	}

	flat, upright := build(0), build(90)
	if at(flat, 8, 1) == blue.RGBA() {
		t.Error("unrotated bar covers (8, 1)")
	}
	if at(upright, 8, 1) != blue.RGBA() {
		t.Error("rotated bar does not cover (8, 1)")
	}
	if at(upright, 6.5, 2.5) == blue.RGBA() {
		t.Error("rotated bar still covers its original left end")
	}
}

func TestSlideToImage_Connector(t *testing.T) {
	b, sb := newDeck()
	sb.Connector(model.Inches(1), model.Inches(1), model.Inches(15), model.Inches(1)).Color(blue).Width(6)

	img, err := SlideToImage(b.Deck(), 0, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if got := at(img, 8, 1); got != blue.RGBA() {
		t.Errorf("line pixel = %v, want %v", got, blue.RGBA())
	}
	if got := at(img, 8, 2); got != white {
		t.Errorf("pixel below line = %v", got)
	}
}

func inked(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != white {
				n++
			}
		}
	}
	return n
}

func TestSlideToImage_Text(t *testing.T) {
	b, sb := newDeck()
	sb.TextBox(model.InchRect(1, 1, 8, 1)).Paragraph("Tokens & Context").Size(32).Bold()

	box := image.Rect(60, 60, 540, 120)
	img, err := SlideToImage(b.Deck(), 0, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if inked(img, box) == 0 {
		t.Error("no text drawn in the text box")
	}

	img, err = SlideToImage(b.Deck(), 0, Options{SkipText: true})
	if err != nil {
		t.Fatal(err)
	}
	if n := inked(img, box); n != 0 {
		t.Errorf("SkipText drew %d pixels", n)
	}
}

func TestSlideToImage_Errors(t *testing.T) {
	b, _ := newDeck()
	tests := []struct {
		name  string
		d     *model.Deck
		index int
	}{
		{"nil deck", nil, 0},
		{"negative index", b.Deck(), -1},
		{"index past end", b.Deck(), 1},
		{"empty size", model.NewDeck(0, 0), 0},
	}
	tests[3].d.NewSlide()
	for _, tt := range tests {
		if _, err := SlideToImage(tt.d, tt.index, DefaultOptions()); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestSlidesToImages_Decks(t *testing.T) {
	for _, e := range decks.All() {
		d := e.Build()
		images, err := SlidesToImages(d, Options{Width: 320})
		if err != nil {
			t.Fatalf("%s: %v", e.Name, err)
		}
		if len(images) != d.SlideCount() {
			t.Errorf("%s: got %d images, want %d", e.Name, len(images), d.SlideCount())
		}
	}
}

func TestEncode(t *testing.T) {
	b, sb := newDeck()
	sb.Background(red)
	img, err := SlideToImage(b.Deck(), 0, Options{Width: 160})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	if r, g, bl, _ := decoded.At(5, 5).RGBA(); r>>8 != 0xFF || g != 0 || bl != 0 {
		t.Errorf("decoded pixel = %v", decoded.At(5, 5))
	}
}

func TestSaveSlidesAsImages(t *testing.T) {
	dir := t.TempDir()
	d := decks.Tokens()
	paths, err := SaveSlidesAsImages(d, filepath.Join(dir, "tokens_%02d.png"), Options{Width: 200})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != d.SlideCount() {
		t.Fatalf("wrote %d files, want %d", len(paths), d.SlideCount())
	}
	if want := filepath.Join(dir, "tokens_01.png"); paths[0] != want {
		t.Errorf("paths[0] = %q, want %q", paths[0], want)
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}

	missing := filepath.Join(dir, "missing", "slide_%d.png")
	if _, err := SaveSlidesAsImages(d, missing, DefaultOptions()); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestFoldText(t *testing.T) {
	tests := map[string]string{
		"• Clear, specific directions": "* Clear, specific directions",
		"café — “quoted”":              `cafe - "quoted"`,
		"a\tb":                         "a    b",
		"トークン":                         "????",
	}
	for in, want := range tests {
		if got := foldText(in); got != want {
			t.Errorf("foldText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  []string
	}{
		{"", 10, []string{""}},
		{"one two three", 20, []string{"one two three"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"tokenization is fun", 5, []string{"token", "izati", "on is", "fun"}},
		{"a b", 0, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q/%d", tt.in, tt.limit), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, wrapText(tt.in, tt.limit)); diff != "" {
				t.Errorf("wrapText mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func BenchmarkSlideToImage(b *testing.B) {
	d := decks.PromptEngineering()
	for i := 0; i < b.N; i++ {
		if _, err := SlideToImage(d, i%d.SlideCount(), DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
