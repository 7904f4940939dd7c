package decks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/deckforge/deck"
	"github.com/tsawler/deckforge/model"
	"github.com/tsawler/deckforge/text"
)

// Definition is a bullet-list deck described in YAML:
//
//	name: attention
//	title: Attention Is All You Need
//	output: attention.pptx
//	palette:
//	  background: "FFFFFF"
//	  title: "1E293B"
//	  text: "404040"
//	  accent: "6366F1"
//	cover:
//	  title: Attention
//	  subtitle: A short tour
//	slides:
//	  - title: Queries, keys and values
//	    bullets:
//	      - Each token emits a query
//
// Width and height are in inches and default to 16 by 9.
type Definition struct {
	Name    string        `yaml:"name"`
	Title   string        `yaml:"title"`
	Subject string        `yaml:"subject"`
	Output  string        `yaml:"output"`
	Width   float64       `yaml:"width"`
	Height  float64       `yaml:"height"`
	Palette Palette       `yaml:"palette"`
	Cover   *Cover        `yaml:"cover"`
	Slides  []BulletSlide `yaml:"slides"`
}

// Palette holds hex colours. Empty values fall back to a black and white
// scheme.
type Palette struct {
	Background string `yaml:"background"`
	Title      string `yaml:"title"`
	Text       string `yaml:"text"`
	Accent     string `yaml:"accent"`
}

// Cover is an optional opening slide.
type Cover struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// BulletSlide is one title plus bullet list slide.
type BulletSlide struct {
	Title   string   `yaml:"title"`
	Bullets []string `yaml:"bullets"`
}

// LoadFile reads and parses a YAML deck definition.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck definition: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if def.Name == "" {
		base := filepath.Base(path)
		def.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return def, nil
}

// Parse decodes a YAML deck definition and normalises its text. It does not
// require a name; LoadFile derives one from the file name.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing deck definition: %w", err)
	}
	def.normalize()
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (def *Definition) normalize() {
	def.Title = text.Normalize(def.Title)
	def.Subject = text.Normalize(def.Subject)
	if def.Cover != nil {
		def.Cover.Title = text.Normalize(def.Cover.Title)
		def.Cover.Subtitle = text.Normalize(def.Cover.Subtitle)
	}
	for i := range def.Slides {
		def.Slides[i].Title = text.Normalize(def.Slides[i].Title)
		text.NormalizeAll(def.Slides[i].Bullets)
	}
	if def.Width == 0 {
		def.Width = 16
	}
	if def.Height == 0 {
		def.Height = 9
	}
}

// Smallest slide size, in inches, that leaves the bullet layout's title and
// body boxes a positive area.
const (
	MinWidth  = 3.0
	MinHeight = 4.0
)

// Validate reports every problem with the definition.
func (def *Definition) Validate() error {
	var errs []error
	if def.Width < MinWidth || def.Height < MinHeight {
		errs = append(errs, fmt.Errorf("slide size %gx%g below the %gx%g minimum", def.Width, def.Height, MinWidth, MinHeight))
	}
	if def.Output != "" && filepath.Base(def.Output) != def.Output {
		errs = append(errs, fmt.Errorf("output %q must be a file name", def.Output))
	}
	if def.Cover == nil && len(def.Slides) == 0 {
		errs = append(errs, errors.New("deck definition has no slides"))
	}
	for i, s := range def.Slides {
		if strings.TrimSpace(s.Title) == "" {
			errs = append(errs, fmt.Errorf("slide %d: missing title", i+1))
		}
	}
	for field, v := range map[string]string{
		"background": def.Palette.Background,
		"title":      def.Palette.Title,
		"text":       def.Palette.Text,
		"accent":     def.Palette.Accent,
	} {
		if v == "" {
			continue
		}
		if _, err := model.ParseHex(v); err != nil {
			errs = append(errs, fmt.Errorf("palette.%s: %w", field, err))
		}
	}
	return errors.Join(errs...)
}

func colour(hex string, fallback model.RGB) model.RGB {
	if hex == "" {
		return fallback
	}
	c, err := model.ParseHex(hex)
	if err != nil {
		return fallback
	}
	return c
}

// Build renders the definition. Content slides use the same layout as the
// tokens deck, with the palette applied.
func (def *Definition) Build() *model.Deck {
	bg := colour(def.Palette.Background, tokWhite)
	titleC := colour(def.Palette.Title, tokBlack)
	textC := colour(def.Palette.Text, tokGrayDark)
	accent := colour(def.Palette.Accent, tokBlack)

	b := deck.New(model.Inches(def.Width), model.Inches(def.Height))
	d := b.Deck()
	d.Metadata.Title = def.Title
	d.Metadata.Subject = def.Subject

	if def.Cover != nil {
		sb := b.Slide().Background(bg)
		sb.Title(model.InchRect(1, 3, def.Width-2, 2)).
			Paragraph(def.Cover.Title).Size(66).Bold().Color(titleC)
		if def.Cover.Subtitle != "" {
			sb.TextBox(model.InchRect(1, 5.2, def.Width-2, 1)).Role(model.RoleSubtitle).
				Paragraph(def.Cover.Subtitle).Size(28).Color(textC)
		}
		sb.Shape(model.GeomRectangle, model.InchRect(def.Width/2-1, 6.8, 2, 0.1)).Fill(accent).Outline(accent)
	}

	tmpl := deck.BulletTemplate{
		Background:       &bg,
		TitleBox:         model.InchRect(0.5, 0.8, def.Width-1, 1),
		TitleFont:        model.Font{Size: 44, Bold: true, Color: &titleC},
		BodyBox:          model.InchRect(0.5, 2.5, def.Width-1, def.Height-3.5),
		BodyFont:         model.Font{Size: 20, Color: &textC},
		BodyWordWrap:     true,
		BodySpaceBefore:  12,
		BodyLeadingBlank: true,
		AfterTitle: func(sb *deck.SlideBuilder) {
			sb.Shape(model.GeomRectangle, model.InchRect(0.5, 1.9, 2, 0.05)).Fill(accent).Outline(accent)
		},
	}
	for _, s := range def.Slides {
		tmpl.Add(b, s.Title, s.Bullets)
	}
	return d
}

// Entry returns a catalogue entry for the definition.
func (def *Definition) Entry() Entry {
	out := def.Output
	if out == "" {
		out = key(def.Name) + ".pptx"
	}
	title := def.Title
	if title == "" && def.Cover != nil {
		title = def.Cover.Title
	}
	return Entry{
		Name:          def.Name,
		Title:         title,
		Description:   def.Subject,
		DefaultOutput: out,
		Build:         def.Build,
	}
}

// RegisterFile loads a definition and adds it to the catalogue.
func RegisterFile(path string) (Entry, error) {
	def, err := LoadFile(path)
	if err != nil {
		return Entry{}, err
	}
	e := def.Entry()
	if err := Register(e); err != nil {
		return Entry{}, err
	}
	return Lookup(e.Name)
}
