package pptx

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/deckforge/deck"
	"github.com/tsawler/deckforge/decks"
	"github.com/tsawler/deckforge/model"
)

// writeZipFile writes a file into a zip archive.
func writeZipFile(t *testing.T, zw *zip.Writer, name, content string) {
	t.Helper()
	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("Failed to create %s in zip: %v", name, err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// buildPackage zips the given parts in memory.
func buildPackage(t *testing.T, parts map[string]string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		writeZipFile(t, zw, name, content)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func openPackage(t *testing.T, parts map[string]string) (*Reader, error) {
	t.Helper()
	br := buildPackage(t, parts)
	return OpenReader(br, br.Size())
}

// roundTrip writes d and opens the result.
func roundTrip(t *testing.T, d *model.Deck) *Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, d); err != nil {
		t.Fatalf("Write: %v", err)
	}
	r, err := OpenReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	return r
}

const fixtureContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
</Types>`

// fixtureSlide returns a slide with a title placeholder and a bulleted body.
func fixtureSlide(title string, bullets ...string) string {
	var body strings.Builder
	for _, b := range bullets {
		body.WriteString(`<a:p><a:pPr lvl="1"/><a:r><a:rPr lang="en-US" sz="2000" b="1"/><a:t>` + b + `</a:t></a:r></a:p>`)
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld>
    <p:spTree>
      <p:nvGrpSpPr><p:cNvPr id="1" name=""/></p:nvGrpSpPr>
      <p:sp>
        <p:nvSpPr><p:cNvPr id="2" name="Placeholder 1"/><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>
        <p:spPr><a:xfrm><a:off x="457200" y="274638"/><a:ext cx="8229600" cy="1143000"/></a:xfrm></p:spPr>
        <p:txBody><a:bodyPr/><a:p><a:r><a:t>` + title + `</a:t></a:r></a:p></p:txBody>
      </p:sp>
      <p:grpSp>
        <p:nvGrpSpPr><p:cNvPr id="3" name="Group 2"/></p:nvGrpSpPr>
        <p:sp>
          <p:nvSpPr><p:cNvPr id="4" name="Content 3"/><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr>
          <p:spPr/>
          <p:txBody><a:bodyPr/>` + body.String() + `</p:txBody>
        </p:sp>
      </p:grpSp>
    </p:spTree>
  </p:cSld>
</p:sld>`
}

// fixtureParts returns a two-slide package whose slide ID list puts
// slide2.xml first.
func fixtureParts() map[string]string {
	return map[string]string{
		"[Content_Types].xml": fixtureContentTypes,
		"ppt/presentation.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:sldIdLst>
    <p:sldId id="256" r:id="rId7"/>
    <p:sldId id="257" r:id="rId3"/>
  </p:sldIdLst>
  <p:sldSz cx="9144000" cy="6858000"/>
</p:presentation>`,
		"ppt/_rels/presentation.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/>
  <Relationship Id="rId7" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide2.xml"/>
</Relationships>`,
		"ppt/slides/slide1.xml": fixtureSlide("Second", "Beta"),
		"ppt/slides/slide2.xml": fixtureSlide("First", "Alpha", "Gamma"),
		"ppt/slides/_rels/slide2.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide" Target="../notesSlides/notesSlide1.xml"/>
</Relationships>`,
		"ppt/notesSlides/notesSlide1.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:notes xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree>
    <p:sp><p:nvSpPr><p:cNvPr id="2" name="Slide Image"/><p:nvPr><p:ph type="sldImg"/></p:nvPr></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/><a:p><a:r><a:t>ignored</a:t></a:r></a:p></p:txBody></p:sp>
    <p:sp><p:nvSpPr><p:cNvPr id="3" name="Notes"/><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/><a:p><a:r><a:t>Speak slowly</a:t></a:r></a:p></p:txBody></p:sp>
  </p:spTree></p:cSld>
</p:notes>`,
	}
}

func TestOpenReader_SlideOrder(t *testing.T) {
	r, err := openPackage(t, fixtureParts())
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()

	if diff := cmp.Diff([]string{"First", "Second"}, r.Titles()); diff != "" {
		t.Errorf("Titles() mismatch (-want +got):\n%s", diff)
	}

	s, err := r.Slide(0)
	if err != nil {
		t.Fatalf("Slide(0): %v", err)
	}
	if s.Notes != "Speak slowly" {
		t.Errorf("Notes = %q, want %q", s.Notes, "Speak slowly")
	}
	if len(s.Content) != 2 {
		t.Fatalf("len(Content) = %d, want 2", len(s.Content))
	}
	body := s.Content[1]
	if body.Placeholder != "body" || len(body.Paragraphs) != 2 {
		t.Fatalf("body block = %+v", body)
	}
	p := body.Paragraphs[0]
	if !p.IsBullet || p.Level != 1 || p.Text != "Alpha" {
		t.Errorf("paragraph = %+v", p)
	}
	if len(p.Runs) != 1 || !p.Runs[0].Bold || p.Runs[0].FontSize != 2000 {
		t.Errorf("runs = %+v", p.Runs)
	}

	w, h := r.SlideSize()
	if w != 9144000 || h != 6858000 {
		t.Errorf("SlideSize() = %d x %d", w, h)
	}
}

func TestOpenReader_FallbackOrder(t *testing.T) {
	parts := fixtureParts()
	delete(parts, "ppt/_rels/presentation.xml.rels")

	r, err := openPackage(t, parts)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	if diff := cmp.Diff([]string{"Second", "First"}, r.Titles()); diff != "" {
		t.Errorf("Titles() mismatch (-want +got):\n%s", diff)
	}
	w, h := r.SlideSize()
	if w != 9144000 || h != 6858000 {
		t.Errorf("SlideSize() = %d x %d", w, h)
	}
}

func TestOpenReader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]string)
		wantErr string
	}{
		{
			name:    "missing presentation",
			mutate:  func(p map[string]string) { delete(p, "ppt/presentation.xml") },
			wantErr: "missing required file: ppt/presentation.xml",
		},
		{
			name:    "missing content types",
			mutate:  func(p map[string]string) { delete(p, "[Content_Types].xml") },
			wantErr: "missing required file",
		},
		{
			name: "no slides",
			mutate: func(p map[string]string) {
				delete(p, "ppt/slides/slide1.xml")
				delete(p, "ppt/slides/slide2.xml")
			},
			wantErr: "no slides found",
		},
		{
			name:    "malformed slide",
			mutate:  func(p map[string]string) { p["ppt/slides/slide1.xml"] = "<p:sld><p:cSld>" },
			wantErr: "ppt/slides/slide1.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := fixtureParts()
			tt.mutate(parts)
			_, err := openPackage(t, parts)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.pptx")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestOpen_InvalidZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.pptx")
	if err := os.WriteFile(path, []byte("not a zip file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("expected error for invalid zip")
	}
}

func TestReader_Slide(t *testing.T) {
	r, err := openPackage(t, fixtureParts())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		index   int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{-1, true},
	}
	for _, tt := range tests {
		_, err := r.Slide(tt.index)
		if (err != nil) != tt.wantErr {
			t.Errorf("Slide(%d) error = %v, wantErr %v", tt.index, err, tt.wantErr)
		}
	}
}

func TestRoundTrip_Tokens(t *testing.T) {
	d := decks.Tokens()
	r := roundTrip(t, d)

	if r.SlideCount() != 10 {
		t.Fatalf("SlideCount() = %d, want 10", r.SlideCount())
	}
	if diff := cmp.Diff(d.Titles(), r.Titles()); diff != "" {
		t.Errorf("Titles() mismatch (-want +got):\n%s", diff)
	}

	w, h := r.SlideSize()
	if w != model.Inches(16) || h != model.Inches(9) {
		t.Errorf("SlideSize() = %d x %d", w, h)
	}

	s2, _ := r.Slide(1)
	if s2.Background != "FFFFFF" {
		t.Errorf("Background = %q", s2.Background)
	}
	var title, body *TextBlock
	for i := range s2.Content {
		switch b := &s2.Content[i]; {
		case b.IsTitle:
			title = b
		case strings.HasPrefix(b.Name, "Body "):
			body = b
		}
	}
	if title == nil || body == nil {
		t.Fatalf("slide 2 blocks = %+v", s2.Content)
	}
	run := title.Paragraphs[0].Runs[0]
	if run.FontSize != 4400 || !run.Bold || run.Color != "000000" {
		t.Errorf("title run = %+v", run)
	}
	if !title.IsTextBox {
		t.Error("title should be a text box")
	}

	var got []string
	for _, p := range body.Paragraphs {
		got = append(got, p.Text)
		if p.Runs[0].FontSize != 2000 || p.SpaceBefore != 12 {
			t.Errorf("body paragraph %q: size %d, space before %v", p.Text, p.Runs[0].FontSize, p.SpaceBefore)
		}
	}
	want := []string{
		"A token is the basic unit of text that a language model processes",
		"Tokens can be words, subwords, characters, or punctuation marks",
		"Models don't read text the way humans do—they process tokens",
		"Example: 'Hello world!' might be split into ['Hello', ' world', '!']",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("slide 2 bullets mismatch (-want +got):\n%s", diff)
	}

	s4, _ := r.Slide(3)
	if n := len(s4.ShapesByGeometry("roundRect")); n != 4 {
		t.Errorf("slide 4 has %d roundRects, want 4", n)
	}
	if n := len(s4.ShapesByGeometry("rightArrow")); n != 3 {
		t.Errorf("slide 4 has %d arrows, want 3", n)
	}

	meta := r.Metadata()
	if meta.Title != "Understanding Tokens" {
		t.Errorf("Metadata().Title = %q", meta.Title)
	}
	if diff := cmp.Diff(d.Metadata.Keywords, meta.Keywords); diff != "" {
		t.Errorf("keywords mismatch (-want +got):\n%s", diff)
	}
	if meta.Created.IsZero() {
		t.Error("Created not recorded")
	}
}

func TestRoundTrip_PromptEngineering(t *testing.T) {
	r := roundTrip(t, decks.PromptEngineering())

	s1, _ := r.Slide(0)
	accent := s1.Shapes[0]
	if accent.Rotation != 15 || accent.Line != "none" || accent.X != int64(model.Inches(-2)) {
		t.Errorf("accent = %+v", accent)
	}

	s2, _ := r.Slide(1)
	if n := len(s2.ShapesByGeometry("ellipse")); n != 9 {
		t.Errorf("slide 2 has %d ellipses, want 9", n)
	}

	s5, _ := r.Slide(4)
	var rule *ShapeInfo
	for i := range s5.Shapes {
		if s5.Shapes[i].Kind == "cxnSp" {
			rule = &s5.Shapes[i]
			break
		}
	}
	if rule == nil {
		t.Fatal("slide 5 has no connector")
	}
	if rule.Line != "6366F1" || rule.LineWidth != int64(model.Pt(3)) || rule.Width != int64(model.Inches(16)) {
		t.Errorf("rule = %+v", *rule)
	}

	md, err := r.Markdown()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"# Training Process",
		"- Pre-training: Learning from massive text datasets",
		"\n---\n",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q", want)
		}
	}
	if strings.Contains(md, "- •") {
		t.Error("Markdown() kept the inline bullet glyph")
	}
}

func TestRoundTrip_Document(t *testing.T) {
	b := deck.New(model.Inches(16), model.Inches(9))
	sb := b.Slide().Background(model.RGB{R: 10, G: 20, B: 30})
	sb.Title(model.InchRect(1, 1, 10, 1)).Paragraph("Heading").Size(36).Bold().Color(model.RGB{R: 255})
	sb.Shape(model.GeomEllipse, model.InchRect(2, 3, 1, 1)).
		Fill(model.RGB{G: 128}).NoOutline().Rotate(30).
		Text().Paragraph("node").Size(12).Typeface("Courier New")
	sb.Connector(model.Inches(5), model.Inches(5), model.Inches(1), model.Inches(2)).
		Color(model.RGB{B: 255}).Width(2)

	src := b.Deck()
	src.Metadata.Author = "Ada"
	src.Metadata.Created = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	r := roundTrip(t, src)
	got, err := r.Document()
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	if got.Width != src.Width || got.Height != src.Height {
		t.Errorf("size = %d x %d", got.Width, got.Height)
	}
	if got.Metadata.Author != "Ada" || !got.Metadata.Created.Equal(src.Metadata.Created) {
		t.Errorf("metadata = %+v", got.Metadata)
	}
	s := got.GetSlide(1)
	if s.Title() != "Heading" {
		t.Errorf("Title() = %q", s.Title())
	}
	if s.Background == nil || s.Background.Hex() != "0A141E" {
		t.Errorf("Background = %v", s.Background)
	}
	if len(s.Elements) != 3 {
		t.Fatalf("len(Elements) = %d, want 3", len(s.Elements))
	}

	title := s.Elements[0].(*model.TextBox)
	wantFont := model.Font{Size: 36, Bold: true, Color: &model.RGB{R: 255}}
	if diff := cmp.Diff(wantFont, title.Text.Paragraphs[0].Font); diff != "" {
		t.Errorf("title font mismatch (-want +got):\n%s", diff)
	}

	shape, ok := s.Elements[1].(*model.Shape)
	if !ok {
		t.Fatalf("element 2 = %T", s.Elements[1])
	}
	if shape.Geometry != model.GeomEllipse || shape.Rotation != 30 || !shape.Line.Hidden {
		t.Errorf("shape = %+v", shape)
	}
	if shape.Fill != model.Solid(model.RGB{G: 128}) {
		t.Errorf("Fill = %+v", shape.Fill)
	}
	if shape.Rect != model.InchRect(2, 3, 1, 1) {
		t.Errorf("Rect = %+v", shape.Rect)
	}
	if p := shape.Text.Paragraphs[0]; p.Text != "node" || p.Font.Name != "Courier New" || p.Align != model.AlignCenter {
		t.Errorf("shape paragraph = %+v", p)
	}

	conn, ok := s.Elements[2].(*model.Connector)
	if !ok {
		t.Fatalf("element 3 = %T", s.Elements[2])
	}
	wantStart := model.Point{X: model.Inches(5), Y: model.Inches(5)}
	wantEnd := model.Point{X: model.Inches(1), Y: model.Inches(2)}
	if conn.Start != wantStart || conn.End != wantEnd {
		t.Errorf("connector = %v -> %v", conn.Start, conn.End)
	}
	if conn.Line.Width != model.Pt(2) || conn.Line.Color.Hex() != "0000FF" {
		t.Errorf("connector line = %+v", conn.Line)
	}
}

func TestReader_TextWithOptions(t *testing.T) {
	r, err := openPackage(t, fixtureParts())
	if err != nil {
		t.Fatal(err)
	}

	text, _ := r.TextWithOptions(ExtractOptions{IncludeTitles: true, IncludeNotes: true, SlideNumbers: []int{0}})
	for _, want := range []string{"First", "  • Alpha", "[Notes: Speak slowly]"} {
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Beta") {
		t.Error("text includes an unselected slide")
	}

	text, _ = r.TextWithOptions(ExtractOptions{})
	if strings.Contains(text, "First\n\n") {
		t.Error("titles included without IncludeTitles")
	}
}

func TestReader_MarkdownDocument(t *testing.T) {
	r := roundTrip(t, decks.Tokens())

	md, err := r.MarkdownDocument(ExtractOptions{IncludeTitles: true}, MarkdownOptions{
		IncludeMetadata:        true,
		IncludeTableOfContents: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"title: \"Understanding Tokens\"",
		"generator: \"deckforge\"",
		"slides: 10",
		"## Table of Contents",
		"7. [Token Limits & Context Windows](#token-limits--context-windows)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("MarkdownDocument() missing %q", want)
		}
	}
}

func TestSlide_GetMarkdown(t *testing.T) {
	s := &Slide{
		Title: "Plan",
		Content: []TextBlock{
			{IsTitle: true, Text: "Plan"},
			{Paragraphs: []Paragraph{
				{Text: "Intro"},
				{Text: "• one", IsBullet: true, BulletChar: "•"},
				{Text: "two", IsBullet: true, Level: 1},
				{Text: "1. Gather inputs"},
			}},
		},
	}
	want := "# Plan\n\nIntro\n\n- one\n  - two\n1. Gather inputs\n\n"
	if diff := cmp.Diff(want, s.GetMarkdown()); diff != "" {
		t.Errorf("GetMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSlideNumber(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"ppt/slides/slide1.xml", 1},
		{"ppt/slides/slide10.xml", 10},
		{"ppt/slides/slide99.xml", 99},
		{"ppt/slides/other.xml", 0},
	}
	for _, tt := range tests {
		if got := extractSlideNumber(tt.path); got != tt.want {
			t.Errorf("extractSlideNumber(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestResolvePart(t *testing.T) {
	tests := []struct {
		base, target, want string
	}{
		{"ppt", "slides/slide1.xml", "ppt/slides/slide1.xml"},
		{"ppt/slides", "../notesSlides/notesSlide1.xml", "ppt/notesSlides/notesSlide1.xml"},
		{"ppt", "/ppt/slides/slide2.xml", "ppt/slides/slide2.xml"},
	}
	for _, tt := range tests {
		if got := resolvePart(tt.base, tt.target); got != tt.want {
			t.Errorf("resolvePart(%q, %q) = %q, want %q", tt.base, tt.target, got, tt.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.pptx")
	if err := WriteFile(path, decks.Tokens()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	if r.SlideCount() != 10 {
		t.Errorf("SlideCount() = %d", r.SlideCount())
	}

	missing := filepath.Join(dir, "nope", "tokens.pptx")
	if err := WriteFile(missing, decks.Tokens()); err == nil {
		t.Error("WriteFile into a missing directory should fail")
	}
}

func TestWrite_Invalid(t *testing.T) {
	if err := Write(&bytes.Buffer{}, nil); err == nil {
		t.Error("Write(nil) should fail")
	}

	empty := model.NewDeck(model.Inches(16), model.Inches(9))
	if err := Write(&bytes.Buffer{}, empty); err == nil || !strings.Contains(err.Error(), "invalid deck") {
		t.Errorf("Write(empty) = %v", err)
	}

	path := filepath.Join(t.TempDir(), "empty.pptx")
	if err := WriteFile(path, empty); err == nil {
		t.Error("WriteFile(empty) should fail")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("partial file left behind: %v", err)
	}
}

type unknownElement struct{}

func (unknownElement) Kind() model.ElementKind { return model.KindUnknown }
func (unknownElement) Bounds() model.Rect      { return model.InchRect(0, 0, 1, 1) }
func (unknownElement) Name() string            { return "mystery" }

func TestWrite_UnsupportedElement(t *testing.T) {
	d := model.NewDeck(model.Inches(16), model.Inches(9))
	d.NewSlide().AddElement(unknownElement{})
	err := Write(&bytes.Buffer{}, d)
	if !errors.Is(err, ErrUnsupportedElement) {
		t.Errorf("Write() = %v, want ErrUnsupportedElement", err)
	}
}

func TestElementName(t *testing.T) {
	tests := []struct {
		elem model.Element
		role model.Role
		id   int
		want string
	}{
		{&model.TextBox{}, model.RoleTitle, 2, "Title 1"},
		{&model.TextBox{}, model.RoleNone, 3, "TextBox 2"},
		{&model.Shape{Geometry: model.GeomRoundRect}, model.RoleNone, 4, "Rounded Rectangle 3"},
		{&model.Shape{Geometry: "star5"}, model.RoleNone, 5, "Shape 4"},
		{&model.Connector{}, model.RoleNone, 6, "Straight Connector 5"},
		{&model.TextBox{ID: "Legend"}, model.RoleBody, 7, "Legend"},
	}
	for _, tt := range tests {
		if got := elementName(tt.elem, tt.role, tt.id); got != tt.want {
			t.Errorf("elementName(%T, %v, %d) = %q, want %q", tt.elem, tt.role, tt.id, got, tt.want)
		}
	}
}

func BenchmarkWrite(b *testing.B) {
	d := decks.Tokens()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		if err := Write(&buf, d); err != nil {
			b.Fatal(err)
		}
	}
}
