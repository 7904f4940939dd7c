package deckforge

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tsawler/deckforge/config"
	"github.com/tsawler/deckforge/decks"
	"github.com/tsawler/deckforge/format"
	"github.com/tsawler/deckforge/htmldoc"
	"github.com/tsawler/deckforge/layout"
	"github.com/tsawler/deckforge/model"
	"github.com/tsawler/deckforge/ocr"
	"github.com/tsawler/deckforge/pptx"
	"github.com/tsawler/deckforge/render"
)

var errNilDeck = errors.New("nil deck")

// generateOptions holds configuration for deck generation.
type generateOptions struct {
	outputDir    string
	output       string // File name of the PPTX; empty uses the deck default
	formats      []format.Format
	previewWidth int
	author       string
	company      string
	createDirs   bool

	// Layout checks
	skipChecks  bool
	minSeverity layout.Severity

	// Title legibility check on rendered previews; nil skips it
	recognizer ocr.Recognizer
}

// defaultOptions returns the default generation options.
func defaultOptions() generateOptions {
	return generateOptions{
		outputDir:    ".",
		formats:      []format.Format{format.PPTX},
		previewWidth: render.DefaultWidth,
		minSeverity:  layout.SeverityWarning,
	}
}

// clone creates a deep copy of generateOptions.
func (o generateOptions) clone() generateOptions {
	newOpts := o
	newOpts.formats = append([]format.Format(nil), o.formats...)
	return newOpts
}

// Generator provides a fluent interface for building and saving a deck.
// Each configuration method returns a new Generator instance, so a
// partially configured Generator can be reused as a template.
type Generator struct {
	// Source: a registered name or YAML path, or a caller-built deck
	name string
	deck *model.Deck

	options generateOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Generator with a deep copy of options.
func (g *Generator) clone() *Generator {
	return &Generator{
		name:    g.name,
		deck:    g.deck,
		options: g.options.clone(),
		err:     g.err,
	}
}

// ============================================================================
// Configuration Methods (return new Generator instance)
// ============================================================================

// OutputDir sets the directory files are written to. Default: ".".
func (g *Generator) OutputDir(dir string) *Generator {
	newGen := g.clone()
	if strings.TrimSpace(dir) == "" && newGen.err == nil {
		newGen.err = errors.New("empty output directory")
	}
	newGen.options.outputDir = dir
	return newGen
}

// Output sets the PPTX file name. Other formats share its base name.
// Default: the deck's registered file name, e.g. "tokens_in_llms.pptx".
func (g *Generator) Output(filename string) *Generator {
	newGen := g.clone()
	if filepath.Base(filename) != filename && newGen.err == nil {
		newGen.err = fmt.Errorf("output %q must be a file name; use OutputDir for the directory", filename)
	}
	newGen.options.output = filename
	return newGen
}

// Formats selects the outputs Save writes. Default: PPTX only.
//
// Example:
//
//	deckforge.Open("tokens").Formats(format.PPTX, format.HTML).Save()
func (g *Generator) Formats(formats ...format.Format) *Generator {
	newGen := g.clone()
	if len(formats) == 0 && newGen.err == nil {
		newGen.err = errors.New("no output formats")
	}
	for _, f := range formats {
		if !f.IsOutput() && newGen.err == nil {
			newGen.err = fmt.Errorf("%s is not an output format", f)
		}
	}
	newGen.options.formats = append([]format.Format(nil), formats...)
	return newGen
}

// PreviewWidth sets the width of PNG previews in pixels. Default: 960.
func (g *Generator) PreviewWidth(px int) *Generator {
	newGen := g.clone()
	if (px < config.MinPreviewWidth || px > config.MaxPreviewWidth) && newGen.err == nil {
		newGen.err = fmt.Errorf("preview width %d outside %d-%d", px, config.MinPreviewWidth, config.MaxPreviewWidth)
	}
	newGen.options.previewWidth = px
	return newGen
}

// Author sets the author recorded in the deck metadata.
func (g *Generator) Author(name string) *Generator {
	newGen := g.clone()
	newGen.options.author = name
	return newGen
}

// Company sets the company recorded in the deck metadata.
func (g *Generator) Company(name string) *Generator {
	newGen := g.clone()
	newGen.options.company = name
	return newGen
}

// CreateDirs makes Save create the output directory when it is missing.
// Without it a missing directory is an error.
func (g *Generator) CreateDirs() *Generator {
	newGen := g.clone()
	newGen.options.createDirs = true
	return newGen
}

// IncludeLayoutInfo reports informational layout findings, such as
// decorations deliberately placed past the slide edge, as warnings too.
func (g *Generator) IncludeLayoutInfo() *Generator {
	newGen := g.clone()
	newGen.options.minSeverity = layout.SeverityInfo
	return newGen
}

// SkipLayoutChecks turns off layout checking.
func (g *Generator) SkipLayoutChecks() *Generator {
	newGen := g.clone()
	newGen.options.skipChecks = true
	return newGen
}

// Verify renders every titled slide and reads the title back with rec,
// usually an *ocr.Client. Titles that cannot be read are reported as
// warnings; a recognizer failure fails the terminal operation.
//
// Example:
//
//	client, err := ocr.New()
//	...
//	res, warnings, err := deckforge.Open("tokens").Verify(client).Save()
func (g *Generator) Verify(rec ocr.Recognizer) *Generator {
	newGen := g.clone()
	if rec == nil && newGen.err == nil {
		newGen.err = errors.New("nil recognizer")
	}
	newGen.options.recognizer = rec
	return newGen
}

// Configure applies every setting of cfg. Deck selection and deck files in
// cfg are left to the caller.
func (g *Generator) Configure(cfg config.Config) *Generator {
	newGen := g.clone()
	if err := cfg.Validate(); err != nil {
		if newGen.err == nil {
			newGen.err = fmt.Errorf("config: %w", err)
		}
		return newGen
	}
	formats, _ := cfg.OutputFormats()
	newGen.options.outputDir = cfg.OutputDir
	newGen.options.formats = formats
	newGen.options.previewWidth = cfg.Preview.Width
	newGen.options.createDirs = cfg.CreateDirs
	if cfg.Metadata.Author != "" {
		newGen.options.author = cfg.Metadata.Author
	}
	if cfg.Metadata.Company != "" {
		newGen.options.company = cfg.Metadata.Company
	}
	return newGen
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Deck builds the deck, applies metadata options and runs the layout
// checks. Layout findings are returned as warnings.
func (g *Generator) Deck() (*model.Deck, []Warning, error) {
	d, _, warnings, err := g.build()
	return d, warnings, err
}

// File is one written output.
type File struct {
	Format format.Format
	Path   string
}

// Result describes a saved deck.
type Result struct {
	Name   string // Catalogue name
	Title  string
	Slides int
	Path   string // The PPTX, or the first file written when PPTX is not selected
	Files  []File
}

// Save builds the deck and writes every selected format into the output
// directory. The PPTX package is always serialised and read back to confirm
// it holds every slide, even when only other formats are written.
//
// Example:
//
//	res, warnings, err := deckforge.Open("tokens").OutputDir("out").Save()
func (g *Generator) Save() (Result, []Warning, error) {
	d, entry, warnings, err := g.build()
	if err != nil {
		return Result{}, warnings, err
	}

	dir := g.options.outputDir
	if err := ensureDir(dir, g.options.createDirs); err != nil {
		return Result{}, warnings, err
	}

	var pkg bytes.Buffer
	if err := pptx.Write(&pkg, d); err != nil {
		return Result{}, warnings, fmt.Errorf("serialising %s: %w", entry.Name, err)
	}
	r, err := pptx.OpenReader(bytes.NewReader(pkg.Bytes()), int64(pkg.Len()))
	if err != nil {
		return Result{}, warnings, fmt.Errorf("reading back %s: %w", entry.Name, err)
	}
	defer r.Close()
	warnings = append(warnings, verify(d, r)...)
	if r.SlideCount() != len(d.Slides) {
		return Result{}, warnings, fmt.Errorf("reading back %s: got %d slides, want %d", entry.Name, r.SlideCount(), len(d.Slides))
	}

	output := g.options.output
	if output == "" {
		output = entry.DefaultOutput
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))

	res := Result{Name: entry.Name, Title: d.Metadata.Title, Slides: len(d.Slides)}
	for _, f := range g.options.formats {
		var paths []string
		switch f {
		case format.PPTX:
			path := filepath.Join(dir, base+f.Extension())
			if err := os.WriteFile(path, pkg.Bytes(), 0o644); err != nil {
				return res, warnings, fmt.Errorf("writing %s: %w", path, err)
			}
			paths = []string{path}
			res.Path = path
		case format.HTML:
			path := filepath.Join(dir, base+f.Extension())
			if err := htmldoc.WriteFile(path, d, htmldoc.DefaultOptions()); err != nil {
				return res, warnings, err
			}
			paths = []string{path}
		case format.Markdown:
			path := filepath.Join(dir, base+f.Extension())
			md, err := r.MarkdownDocument(
				pptx.ExtractOptions{IncludeTitles: true},
				pptx.MarkdownOptions{IncludeMetadata: true, IncludeTableOfContents: true},
			)
			if err != nil {
				return res, warnings, err
			}
			if err := os.WriteFile(path, []byte(md+"\n"), 0o644); err != nil {
				return res, warnings, fmt.Errorf("writing %s: %w", path, err)
			}
			paths = []string{path}
		case format.PNG:
			pattern := filepath.Join(dir, base+"_%02d"+f.Extension())
			paths, err = render.SaveSlidesAsImages(d, pattern, render.Options{Width: g.options.previewWidth})
			if err != nil {
				return res, warnings, err
			}
		default:
			return res, warnings, fmt.Errorf("%s is not an output format", f)
		}
		for _, p := range paths {
			res.Files = append(res.Files, File{Format: f, Path: p})
		}
	}
	if res.Path == "" && len(res.Files) > 0 {
		res.Path = res.Files[0].Path
	}
	return res, warnings, nil
}

// build resolves the source deck and applies options.
func (g *Generator) build() (*model.Deck, decks.Entry, []Warning, error) {
	if g.err != nil {
		return nil, decks.Entry{}, nil, g.err
	}

	var entry decks.Entry
	var d *model.Deck
	switch {
	case g.deck != nil:
		// Metadata options must not reach the caller's deck or other
		// generators sharing it. Slides are only read.
		cp := *g.deck
		cp.Metadata.Keywords = slices.Clone(g.deck.Metadata.Keywords)
		d = &cp
		entry = decks.Entry{Name: "deck", Title: d.Metadata.Title, DefaultOutput: "deck.pptx"}
	case format.Detect(g.name) == format.YAML:
		def, err := decks.LoadFile(g.name)
		if err != nil {
			return nil, entry, nil, err
		}
		entry = def.Entry()
		d = entry.Build()
	default:
		e, err := decks.Lookup(g.name)
		if err != nil {
			return nil, entry, nil, err
		}
		entry = e
		d = entry.Build()
	}

	if g.options.author != "" {
		d.Metadata.Author = g.options.author
	}
	if g.options.company != "" {
		d.Metadata.Company = g.options.company
	}
	if err := d.Validate(); err != nil {
		return nil, entry, nil, fmt.Errorf("deck %s: %w", entry.Name, err)
	}

	var warnings []Warning
	if !g.options.skipChecks {
		warnings = layoutWarnings(layout.Check(d), g.options.minSeverity)
	}
	if g.options.recognizer != nil {
		checks, err := ocr.VerifyTitles(g.options.recognizer, d, render.Options{Width: g.options.previewWidth})
		if err != nil {
			return nil, entry, warnings, fmt.Errorf("verifying %s: %w", entry.Name, err)
		}
		warnings = append(warnings, titleWarnings(checks)...)
	}
	return d, entry, warnings, nil
}

func ensureDir(dir string, create bool) error {
	if create {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s is not a directory", dir)
	}
	return nil
}

// verify compares slide titles read back from the package with the deck.
func verify(d *model.Deck, r *pptx.Reader) []Warning {
	var warnings []Warning
	got := r.Titles()
	for i, want := range d.Titles() {
		if i < len(got) && got[i] != want {
			warnings = append(warnings, Warning{
				Slide:   i + 1,
				Message: fmt.Sprintf("title reads back as %q, want %q", got[i], want),
			})
		}
	}
	return warnings
}

// titleWarnings reports the titles that could not be read back from their
// previews.
func titleWarnings(checks []ocr.TitleCheck) []Warning {
	var warnings []Warning
	for _, c := range checks {
		if c.Found {
			continue
		}
		warnings = append(warnings, Warning{
			Slide:   c.Slide,
			Message: fmt.Sprintf("title %q not legible in preview (read %q)", c.Title, c.Recognized),
		})
	}
	return warnings
}
