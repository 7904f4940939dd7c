package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/tsawler/deckforge/model"
)

// Reader provides access to PPTX document content.
type Reader struct {
	closer       io.Closer
	files        map[string]*zip.File
	presentation *presentationXML
	presRels     *relationshipsXML
	slides       []*Slide
	raw          []*slideXML // Parsed slide parts, parallel to slides
	coreProps    *corePropertiesXML
	appProps     *appPropertiesXML
}

// Open opens a PPTX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// OpenReader reads a PPTX package from an in-memory or seekable source.
func OpenReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		r.files[f.Name] = f
	}

	// Validate required files exist
	if err := r.validate(); err != nil {
		return nil, err
	}

	// Parse presentation relationships first
	if err := r.parseRelationships(); err != nil {
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}

	// Parse presentation to get slide order
	if err := r.parsePresentation(); err != nil {
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}

	if err := r.parseSlides(); err != nil {
		return nil, fmt.Errorf("parsing slides: %w", err)
	}

	// Parse metadata (optional)
	r.parseCoreProperties()
	r.parseAppProperties()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// validate checks that required PPTX files exist.
func (r *Reader) validate() error {
	for _, name := range []string{partContentTypes, partPresentation} {
		if r.files[name] == nil {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	for name := range r.files {
		if isSlidePart(name) {
			return nil
		}
	}
	return fmt.Errorf("no slides found in presentation")
}

func isSlidePart(name string) bool {
	return strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml")
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	f := r.files[name]
	if f == nil {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseRelationships parses the presentation relationships file.
func (r *Reader) parseRelationships() error {
	data, err := r.getFileContent(partPresRels)
	if err != nil {
		return nil // Relationships might be optional
	}

	r.presRels = &relationshipsXML{}
	return xml.Unmarshal(data, r.presRels)
}

// parsePresentation parses the main presentation file.
func (r *Reader) parsePresentation() error {
	data, err := r.getFileContent(partPresentation)
	if err != nil {
		return err
	}

	r.presentation = &presentationXML{}
	return xml.Unmarshal(data, r.presentation)
}

// slidePaths returns slide part names in presentation order. The slide ID
// list is authoritative; file names are only a fallback.
func (r *Reader) slidePaths() []string {
	if r.presentation.SlideIdList != nil && r.presRels != nil {
		targets := make(map[string]string, len(r.presRels.Relationship))
		for _, rel := range r.presRels.Relationship {
			targets[rel.ID] = rel.Target
		}
		var paths []string
		for _, id := range r.presentation.SlideIdList.SlideId {
			target, ok := targets[id.RID]
			if !ok {
				continue
			}
			p := resolvePart("ppt", target)
			if r.files[p] != nil {
				paths = append(paths, p)
			}
		}
		if len(paths) > 0 {
			return paths
		}
	}

	var slideFiles []string
	for name := range r.files {
		if isSlidePart(name) {
			slideFiles = append(slideFiles, name)
		}
	}
	sort.Slice(slideFiles, func(i, j int) bool {
		return extractSlideNumber(slideFiles[i]) < extractSlideNumber(slideFiles[j])
	})
	return slideFiles
}

// resolvePart resolves a relationship target against the directory of the
// part that declared it.
func resolvePart(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(base, target))
}

// extractSlideNumber extracts the slide number from a path like "ppt/slides/slide1.xml"
func extractSlideNumber(path string) int {
	name := strings.TrimPrefix(path, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	var num int
	fmt.Sscanf(name, "%d", &num)
	return num
}

// parseSlides parses all slide files.
func (r *Reader) parseSlides() error {
	paths := r.slidePaths()
	r.slides = make([]*Slide, 0, len(paths))
	r.raw = make([]*slideXML, 0, len(paths))

	for i, slidePath := range paths {
		data, err := r.getFileContent(slidePath)
		if err != nil {
			return err
		}
		var sx slideXML
		if err := xml.Unmarshal(data, &sx); err != nil {
			return fmt.Errorf("%s: %w", slidePath, err)
		}

		slide := &Slide{Index: i}
		if bg := sx.CSld.Bg; bg != nil && bg.BgPr != nil {
			slide.Background = fillColor(bg.BgPr.SolidFill)
		}
		r.extractShapes(&sx.CSld.SpTree, slide)
		slide.Notes = r.parseSlideNotes(slidePath)

		r.slides = append(r.slides, slide)
		r.raw = append(r.raw, &sx)
	}

	if len(r.slides) == 0 {
		return fmt.Errorf("no slides could be parsed")
	}
	return nil
}

// extractShapes collects text blocks and the shape inventory, descending
// into groups.
func (r *Reader) extractShapes(tree *spTreeXML, slide *Slide) {
	for _, item := range tree.Items {
		switch {
		case item.Sp != nil:
			slide.Shapes = append(slide.Shapes, shapeInfo(item.Sp))
			block := r.extractTextBlock(item.Sp)
			if block != nil {
				if block.IsTitle && slide.Title == "" {
					slide.Title = block.Text
				}
				slide.Content = append(slide.Content, *block)
			}
		case item.CxnSp != nil:
			slide.Shapes = append(slide.Shapes, connectorInfo(item.CxnSp))
		case item.GrpSp != nil:
			r.extractShapes(&item.GrpSp.SpTree, slide)
		}
	}
}

// roleOf derives the role of a shape from its placeholder type or, for
// free-standing shapes, from its name.
func roleOf(sp *spXML) model.Role {
	if ph := sp.NvSpPr.NvPr.Ph; ph != nil {
		switch ph.Type {
		case "title", "ctrTitle":
			return model.RoleTitle
		case "subTitle":
			return model.RoleSubtitle
		case "body", "":
			return model.RoleBody
		}
	}
	name := sp.NvSpPr.CNvPr.Name
	for role, prefix := range roleNames {
		if strings.HasPrefix(name, prefix+" ") {
			return role
		}
	}
	return model.RoleNone
}

// extractTextBlock extracts text from a shape.
func (r *Reader) extractTextBlock(sp *spXML) *TextBlock {
	if sp.TxBody == nil || len(sp.TxBody.P) == 0 {
		return nil
	}

	role := roleOf(sp)
	block := &TextBlock{
		Name:       sp.NvSpPr.CNvPr.Name,
		IsTitle:    role == model.RoleTitle,
		IsSubtitle: role == model.RoleSubtitle,
		IsTextBox:  sp.NvSpPr.CNvSpPr.TxBox == "1",
		Paragraphs: make([]Paragraph, 0),
	}
	if sp.NvSpPr.NvPr.Ph != nil {
		block.Placeholder = sp.NvSpPr.NvPr.Ph.Type
	}

	if x := sp.SpPr.Xfrm; x != nil {
		block.X, block.Y = x.Off.X, x.Off.Y
		block.Width, block.Height = x.Ext.Cx, x.Ext.Cy
	}

	// Extract paragraphs
	var allText strings.Builder
	for _, p := range sp.TxBody.P {
		para := r.extractParagraph(&p)
		if para.Text != "" {
			block.Paragraphs = append(block.Paragraphs, para)
			if allText.Len() > 0 {
				allText.WriteString("\n")
			}
			allText.WriteString(para.Text)
		}
	}

	block.Text = allText.String()

	if block.Text == "" {
		return nil
	}

	return block
}

// bulletGlyphs are characters that mark a bullet when typed into the text.
var bulletGlyphs = []string{"•", "▪", "–", "-"}

// extractParagraph extracts text and formatting from a paragraph.
func (r *Reader) extractParagraph(p *pXML) Paragraph {
	para := Paragraph{
		Runs: make([]Run, 0),
	}

	if p.PPr != nil {
		para.Level = p.PPr.Lvl
		para.Alignment = p.PPr.Algn
		para.SpaceBefore = spacing(p.PPr.SpcBef)
		para.SpaceAfter = spacing(p.PPr.SpcAft)

		if p.PPr.BuNone == nil {
			// Has some kind of bullet unless explicitly none
			if p.PPr.BuAutoNum != nil {
				para.IsNumbered = true
			} else if p.PPr.BuChar != nil {
				para.IsBullet = true
				para.BulletChar = p.PPr.BuChar.Char
			} else if para.Level > 0 {
				para.IsBullet = true
			}
		}
	}

	var text strings.Builder
	for _, run := range p.R {
		text.WriteString(run.T)
		para.Runs = append(para.Runs, runOf(run.T, run.RPr))
	}

	// Include field values (like slide numbers)
	for _, fld := range p.Fld {
		text.WriteString(fld.T)
	}

	para.Text = strings.TrimSpace(text.String())

	// Bullets typed as text rather than declared in paragraph properties.
	if !para.IsBullet && !para.IsNumbered {
		for _, g := range bulletGlyphs {
			if strings.HasPrefix(para.Text, g+" ") {
				para.IsBullet = true
				para.BulletChar = g
				break
			}
		}
	}
	return para
}

func runOf(t string, rpr *rPrXML) Run {
	run := Run{Text: t}
	if rpr == nil {
		return run
	}
	run.Bold = isTrue(rpr.B)
	run.Italic = isTrue(rpr.I)
	run.FontSize = rpr.Sz
	run.Color = fillColor(rpr.SolidFill)
	if rpr.Latin != nil {
		run.Typeface = rpr.Latin.Typeface
	}
	return run
}

func isTrue(v string) bool {
	return v == "1" || v == "true"
}

func spacing(s *spcXML) float64 {
	if s == nil || s.SpcPts == nil {
		return 0
	}
	return float64(s.SpcPts.Val) / 100
}

func fillColor(f *solidFillXML) string {
	if f == nil || f.SrgbClr == nil {
		return ""
	}
	return strings.ToUpper(f.SrgbClr.Val)
}

func shapeInfo(sp *spXML) ShapeInfo {
	info := ShapeInfo{
		ID:      sp.NvSpPr.CNvPr.ID,
		Name:    sp.NvSpPr.CNvPr.Name,
		Kind:    "sp",
		TextBox: sp.NvSpPr.CNvSpPr.TxBox == "1",
	}
	fillGeometry(&info, &sp.SpPr)
	if sp.TxBody != nil {
		for _, p := range sp.TxBody.P {
			if len(p.R) > 0 || len(p.Fld) > 0 {
				info.HasText = true
				break
			}
		}
	}
	return info
}

func connectorInfo(cx *cxnSpXML) ShapeInfo {
	info := ShapeInfo{
		ID:   cx.NvCxnSpPr.CNvPr.ID,
		Name: cx.NvCxnSpPr.CNvPr.Name,
		Kind: "cxnSp",
	}
	fillGeometry(&info, &cx.SpPr)
	return info
}

func fillGeometry(info *ShapeInfo, spPr *spPrXML) {
	if x := spPr.Xfrm; x != nil {
		info.X, info.Y = x.Off.X, x.Off.Y
		info.Width, info.Height = x.Ext.Cx, x.Ext.Cy
		info.Rotation = float64(x.Rot) / 60000
		info.FlipH = isTrue(x.FlipH)
		info.FlipV = isTrue(x.FlipV)
	}
	if spPr.PrstGeom != nil {
		info.Geometry = spPr.PrstGeom.Prst
	}
	switch {
	case spPr.NoFill != nil:
		info.Fill = "none"
	case spPr.SolidFill != nil:
		info.Fill = fillColor(spPr.SolidFill)
	}
	if ln := spPr.Ln; ln != nil {
		info.LineWidth = ln.W
		switch {
		case ln.NoFill != nil:
			info.Line = "none"
		case ln.SolidFill != nil:
			info.Line = fillColor(ln.SolidFill)
		}
	}
}

// parseSlideNotes returns the speaker notes attached to a slide, if any.
func (r *Reader) parseSlideNotes(slidePath string) string {
	relsPath := path.Join(path.Dir(slidePath), "_rels", path.Base(slidePath)+".rels")
	data, err := r.getFileContent(relsPath)
	if err != nil {
		return "" // Relationships are optional
	}
	rels := &relationshipsXML{}
	if err := xml.Unmarshal(data, rels); err != nil {
		return ""
	}

	var notesPath string
	for _, rel := range rels.Relationship {
		if rel.Type == relNotesSlide || strings.HasSuffix(rel.Type, "/notesSlide") {
			notesPath = resolvePart(path.Dir(slidePath), rel.Target)
			break
		}
	}
	if notesPath == "" {
		return ""
	}

	data, err = r.getFileContent(notesPath)
	if err != nil {
		return ""
	}
	var notes notesSlideXML
	if err := xml.Unmarshal(data, &notes); err != nil {
		return ""
	}

	var text strings.Builder
	for _, item := range notes.CSld.SpTree.Items {
		sp := item.Sp
		if sp == nil || sp.TxBody == nil {
			continue
		}
		// Skip the slide image placeholder
		if sp.NvSpPr.NvPr.Ph != nil && sp.NvSpPr.NvPr.Ph.Type == "sldImg" {
			continue
		}
		for _, p := range sp.TxBody.P {
			para := r.extractParagraph(&p)
			if para.Text != "" {
				if text.Len() > 0 {
					text.WriteString("\n")
				}
				text.WriteString(para.Text)
			}
		}
	}
	return strings.TrimSpace(text.String())
}

// parseCoreProperties parses Dublin Core metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent(partCore)
	if err != nil {
		return
	}
	props := &corePropertiesXML{}
	if xml.Unmarshal(data, props) == nil {
		r.coreProps = props
	}
}

// parseAppProperties parses application metadata.
func (r *Reader) parseAppProperties() {
	data, err := r.getFileContent(partApp)
	if err != nil {
		return
	}
	props := &appPropertiesXML{}
	if xml.Unmarshal(data, props) == nil {
		r.appProps = props
	}
}

// SlideCount returns the number of slides.
func (r *Reader) SlideCount() int {
	return len(r.slides)
}

// Slide returns the slide at the given index (0-indexed).
func (r *Reader) Slide(index int) (*Slide, error) {
	if index < 0 || index >= len(r.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(r.slides)-1)
	}
	return r.slides[index], nil
}

// Slides returns every slide in presentation order.
func (r *Reader) Slides() []*Slide {
	return r.slides
}

// Titles returns the title of every slide in order.
func (r *Reader) Titles() []string {
	titles := make([]string, len(r.slides))
	for i, s := range r.slides {
		titles[i] = s.Title
	}
	return titles
}

// SlideSize returns the slide dimensions. Files without an explicit size
// use the 10in x 7.5in default.
func (r *Reader) SlideSize() (width, height model.EMU) {
	if sz := r.presentation.SlideSz; sz != nil && sz.Cx > 0 && sz.Cy > 0 {
		return model.EMU(sz.Cx), model.EMU(sz.Cy)
	}
	return model.Inches(10), model.Inches(7.5)
}

// ExtractOptions holds options for text extraction.
type ExtractOptions struct {
	IncludeNotes  bool  // Include speaker notes
	IncludeTitles bool  // Include slide titles (default: true)
	SlideNumbers  []int // Which slides to include (0-indexed, empty = all)
}

// MarkdownOptions controls the document-level parts of Markdown output.
type MarkdownOptions struct {
	IncludeMetadata        bool // YAML front matter with title, author and slide count
	IncludeTableOfContents bool // Numbered list of slide titles
}

func (r *Reader) selectSlides(numbers []int) []*Slide {
	if len(numbers) == 0 {
		return r.slides
	}
	slides := make([]*Slide, 0, len(numbers))
	for _, idx := range numbers {
		if idx >= 0 && idx < len(r.slides) {
			slides = append(slides, r.slides[idx])
		}
	}
	return slides
}

// Text extracts and returns all text content from the presentation.
func (r *Reader) Text() (string, error) {
	return r.TextWithOptions(ExtractOptions{IncludeTitles: true})
}

// TextWithOptions extracts text content with the specified options.
func (r *Reader) TextWithOptions(opts ExtractOptions) (string, error) {
	var result strings.Builder

	for i, slide := range r.selectSlides(opts.SlideNumbers) {
		if i > 0 {
			result.WriteString("\n\n")
		}

		if opts.IncludeTitles && slide.Title != "" {
			result.WriteString(slide.Title)
			result.WriteString("\n\n")
		}

		for _, block := range slide.Content {
			if block.IsTitle && opts.IncludeTitles {
				continue // Already added
			}
			for _, para := range block.Paragraphs {
				if (para.IsBullet || para.IsNumbered) && !para.inlineBullet() {
					for j := 0; j < para.Level; j++ {
						result.WriteString("  ")
					}
					result.WriteString("• ")
				}
				result.WriteString(para.Text)
				result.WriteString("\n")
			}
		}

		if opts.IncludeNotes && slide.Notes != "" {
			result.WriteString("\n[Notes: ")
			result.WriteString(slide.Notes)
			result.WriteString("]\n")
		}
	}

	return result.String(), nil
}

// Markdown returns the presentation content as Markdown.
func (r *Reader) Markdown() (string, error) {
	return r.MarkdownWithOptions(ExtractOptions{IncludeTitles: true})
}

// MarkdownWithOptions returns presentation content as Markdown with options.
func (r *Reader) MarkdownWithOptions(opts ExtractOptions) (string, error) {
	var result strings.Builder

	for i, slide := range r.selectSlides(opts.SlideNumbers) {
		if i > 0 {
			result.WriteString("\n---\n\n")
		}
		result.WriteString(slide.GetMarkdown())

		// Notes as blockquote
		if opts.IncludeNotes && slide.Notes != "" {
			result.WriteString("\n> **Notes:** ")
			result.WriteString(strings.ReplaceAll(slide.Notes, "\n", "\n> "))
			result.WriteString("\n")
		}
	}

	return strings.TrimSpace(result.String()), nil
}

// MarkdownDocument returns Markdown with optional front matter and table
// of contents ahead of the slide content.
func (r *Reader) MarkdownDocument(extractOpts ExtractOptions, mdOpts MarkdownOptions) (string, error) {
	var result strings.Builder

	if mdOpts.IncludeMetadata {
		meta := r.Metadata()
		result.WriteString("---\n")
		if meta.Title != "" {
			result.WriteString(fmt.Sprintf("title: %q\n", meta.Title))
		}
		if meta.Author != "" {
			result.WriteString(fmt.Sprintf("author: %q\n", meta.Author))
		}
		if meta.Subject != "" {
			result.WriteString(fmt.Sprintf("subject: %q\n", meta.Subject))
		}
		if r.appProps != nil && r.appProps.Application != "" {
			result.WriteString(fmt.Sprintf("generator: %q\n", r.appProps.Application))
		}
		result.WriteString(fmt.Sprintf("slides: %d\n", len(r.slides)))
		result.WriteString("---\n\n")
	}

	if mdOpts.IncludeTableOfContents && len(r.slides) > 1 {
		result.WriteString("## Table of Contents\n\n")
		for i, slide := range r.slides {
			title := slide.Title
			if title == "" {
				title = fmt.Sprintf("Slide %d", i+1)
			}
			result.WriteString(fmt.Sprintf("%d. [%s](#%s)\n", i+1, title, anchor(title)))
		}
		result.WriteString("\n---\n\n")
	}

	md, err := r.MarkdownWithOptions(extractOpts)
	if err != nil {
		return "", err
	}
	result.WriteString(md)

	return result.String(), nil
}

// anchor converts a heading into a GitHub-style fragment.
func anchor(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Metadata returns document metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{}
	if r.coreProps != nil {
		meta.Title = r.coreProps.Title
		meta.Author = r.coreProps.Creator
		meta.Subject = r.coreProps.Subject
		if r.coreProps.Keywords != "" {
			meta.Keywords = strings.Split(r.coreProps.Keywords, ",")
			for i, kw := range meta.Keywords {
				meta.Keywords[i] = strings.TrimSpace(kw)
			}
		}
		meta.Created, _ = time.Parse(time.RFC3339, strings.TrimSpace(r.coreProps.Created))
		meta.Modified, _ = time.Parse(time.RFC3339, strings.TrimSpace(r.coreProps.Modified))
	}
	if r.appProps != nil {
		meta.Company = r.appProps.Company
	}
	return meta
}

// Document converts the presentation back into the deck model. Groups are
// flattened; pictures, tables and charts are skipped.
func (r *Reader) Document() (*model.Deck, error) {
	d := model.NewDeck(r.SlideSize())
	d.Metadata = r.Metadata()

	for i, sx := range r.raw {
		s := d.NewSlide()
		s.Notes = r.slides[i].Notes
		if c := r.slides[i].Background; c != "" {
			rgb, err := model.ParseHex(c)
			if err != nil {
				return nil, fmt.Errorf("slide %d background: %w", i+1, err)
			}
			s.Background = &rgb
		}
		if err := convertTree(&sx.CSld.SpTree, s); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return d, nil
}
