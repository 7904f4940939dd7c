package pptx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tsawler/deckforge/model"
	"github.com/tsawler/deckforge/text"
)

// Application is recorded in docProps/app.xml.
const Application = "deckforge"

// ErrUnsupportedElement is returned when a slide holds an element type the
// writer cannot serialise.
var ErrUnsupportedElement = errors.New("unsupported element")

// WriteFile serialises the deck to path. The parent directory must already
// exist. A partially written file is removed on failure.
func WriteFile(path string, d *model.Deck) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, d); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// Write serialises the deck as a PPTX package.
func Write(w io.Writer, d *model.Deck) error {
	if d == nil {
		return errors.New("nil deck")
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("invalid deck: %w", err)
	}

	created := d.Metadata.Created
	if created.IsZero() {
		created = time.Now()
	}
	created = created.UTC().Truncate(time.Second)
	modified := d.Metadata.Modified
	if modified.IsZero() {
		modified = created
	}
	modified = modified.UTC().Truncate(time.Second)

	pw := &packageWriter{zw: zip.NewWriter(w), mod: created}

	pw.marshal(partContentTypes, contentTypes(len(d.Slides)))
	pw.marshal(partRootRels, rootRels())
	pw.marshal(partCore, coreProps(d.Metadata, created, modified))
	pw.marshal(partApp, appProps(d))
	pw.marshal(partPresentation, presentation(d))
	pw.marshal(partPresRels, presentationRels(len(d.Slides)))
	pw.raw(partPresProps, presPropsXML)
	pw.raw(partViewProps, viewPropsXML)
	pw.raw(partTableStyles, tableStylesXML)
	pw.raw(partTheme, themeXML)
	pw.raw(partMaster, slideMasterXML)
	pw.marshal(partMasterRels, relsOf(
		relOut{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		relOut{ID: "rId2", Type: relTheme, Target: "../theme/theme1.xml"},
	))
	pw.raw(partLayout, slideLayoutXML)
	pw.marshal(partLayoutRels, relsOf(
		relOut{ID: "rId1", Type: relSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
	))

	for i, s := range d.Slides {
		out, err := buildSlide(s)
		if err != nil {
			pw.fail(fmt.Errorf("slide %d: %w", i+1, err))
			break
		}
		pw.marshal(slidePart(i), out)
		pw.marshal(slideRelsPart(i), relsOf(
			relOut{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		))
	}

	if pw.err != nil {
		return pw.err
	}
	if err := pw.zw.Close(); err != nil {
		return fmt.Errorf("finishing package: %w", err)
	}
	return nil
}

// packageWriter writes zip parts and keeps the first error, so the part
// sequence in Write reads top to bottom.
type packageWriter struct {
	zw  *zip.Writer
	mod time.Time
	err error
}

func (pw *packageWriter) fail(err error) {
	if pw.err == nil {
		pw.err = err
	}
}

func (pw *packageWriter) raw(name, content string) {
	pw.write(name, []byte(content))
}

func (pw *packageWriter) marshal(name string, v any) {
	if pw.err != nil {
		return
	}
	data, err := xml.Marshal(v)
	if err != nil {
		pw.fail(fmt.Errorf("encoding %s: %w", name, err))
		return
	}
	pw.write(name, append([]byte(xmlHeader), data...))
}

func (pw *packageWriter) write(name string, data []byte) {
	if pw.err != nil {
		return
	}
	fw, err := pw.zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: pw.mod,
	})
	if err != nil {
		pw.fail(fmt.Errorf("creating %s: %w", name, err))
		return
	}
	if _, err := fw.Write(data); err != nil {
		pw.fail(fmt.Errorf("writing %s: %w", name, err))
	}
}

func slidePart(i int) string {
	return fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
}

func slideRelsPart(i int) string {
	return fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1)
}

func relsOf(rels ...relOut) relsOut {
	return relsOut{Xmlns: nsPackageRels, Rels: rels}
}

func contentTypes(slides int) typesOut {
	t := typesOut{
		Xmlns: nsContentTypes,
		Defaults: []defaultOut{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []overrideOut{
			{PartName: "/" + partPresentation, ContentType: ctPresentation},
			{PartName: "/" + partMaster, ContentType: ctMaster},
			{PartName: "/" + partLayout, ContentType: ctLayout},
			{PartName: "/" + partTheme, ContentType: ctTheme},
			{PartName: "/" + partPresProps, ContentType: ctPresProps},
			{PartName: "/" + partViewProps, ContentType: ctViewProps},
			{PartName: "/" + partTableStyles, ContentType: ctTableStyles},
			{PartName: "/" + partCore, ContentType: ctCore},
			{PartName: "/" + partApp, ContentType: ctApp},
		},
	}
	for i := 0; i < slides; i++ {
		t.Overrides = append(t.Overrides, overrideOut{PartName: "/" + slidePart(i), ContentType: ctSlide})
	}
	return t
}

func rootRels() relsOut {
	return relsOf(
		relOut{ID: "rId1", Type: relOfficeDocument, Target: partPresentation},
		relOut{ID: "rId2", Type: relCoreProps, Target: partCore},
		relOut{ID: "rId3", Type: relExtendedProps, Target: partApp},
	)
}

func coreProps(meta model.Metadata, created, modified time.Time) corePropsOut {
	const w3c = "2006-01-02T15:04:05Z"
	return corePropsOut{
		XmlnsCP:        "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		XmlnsDC:        "http://purl.org/dc/elements/1.1/",
		XmlnsDCTerms:   "http://purl.org/dc/terms/",
		XmlnsDCMIType:  "http://purl.org/dc/dcmitype/",
		XmlnsXSI:       "http://www.w3.org/2001/XMLSchema-instance",
		Title:          meta.Title,
		Subject:        meta.Subject,
		Creator:        meta.Author,
		Keywords:       strings.Join(meta.Keywords, ", "),
		LastModifiedBy: meta.Author,
		Revision:       1,
		Created:        w3cDate{Type: "dcterms:W3CDTF", Value: created.Format(w3c)},
		Modified:       w3cDate{Type: "dcterms:W3CDTF", Value: modified.Format(w3c)},
	}
}

func appProps(d *model.Deck) appPropsOut {
	return appPropsOut{
		Xmlns:       "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties",
		XmlnsVT:     "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes",
		Application: Application,
		Slides:      len(d.Slides),
		Company:     d.Metadata.Company,
	}
}

// Presentation relationship IDs: rId1 is the master, slides follow, then
// the fixed property parts.
func slideRID(i int) string {
	return fmt.Sprintf("rId%d", i+2)
}

func presentation(d *model.Deck) presentationOut {
	p := presentationOut{
		nsAttrs:         defaultNS(),
		SaveSubsetFonts: 1,
		MasterIDs:       masterIDListOut{IDs: []idRefOut{{ID: 2147483648, RID: "rId1"}}},
		SlideSize:       sizeOut{Cx: int64(d.Width), Cy: int64(d.Height)},
		NotesSize:       sizeOut{Cx: 6858000, Cy: 9144000},
	}
	for i := range d.Slides {
		p.SlideIDs.IDs = append(p.SlideIDs.IDs, idRefOut{ID: uint32(256 + i), RID: slideRID(i)})
	}
	return p
}

func presentationRels(slides int) relsOut {
	rels := []relOut{{ID: "rId1", Type: relSlideMaster, Target: "slideMasters/slideMaster1.xml"}}
	for i := 0; i < slides; i++ {
		rels = append(rels, relOut{ID: slideRID(i), Type: relSlide, Target: fmt.Sprintf("slides/slide%d.xml", i+1)})
	}
	next := slides + 2
	for _, r := range []struct{ typ, target string }{
		{relPresProps, "presProps.xml"},
		{relViewProps, "viewProps.xml"},
		{relTheme, "theme/theme1.xml"},
		{relTableStyles, "tableStyles.xml"},
	} {
		rels = append(rels, relOut{ID: fmt.Sprintf("rId%d", next), Type: r.typ, Target: r.target})
		next++
	}
	return relsOf(rels...)
}

func buildSlide(s *model.Slide) (slideOut, error) {
	out := slideOut{nsAttrs: defaultNS()}
	if s.Background != nil {
		out.CSld.Bg = &bgOut{BgPr: bgPrOut{SolidFill: solid(*s.Background)}}
	}
	out.CSld.SpTree.NvGrpSpPr.CNvPr = cNvPrOut{ID: 1}

	// Shape IDs start at 2; 1 is the tree itself.
	for i, elem := range s.Elements {
		id := i + 2
		switch e := elem.(type) {
		case *model.TextBox:
			out.CSld.SpTree.Children = append(out.CSld.SpTree.Children, textBoxXML(e, id))
		case *model.Shape:
			out.CSld.SpTree.Children = append(out.CSld.SpTree.Children, shapeXML(e, id))
		case *model.Connector:
			out.CSld.SpTree.Children = append(out.CSld.SpTree.Children, connectorXML(e, id))
		default:
			return out, fmt.Errorf("element %d (%T): %w", i+1, elem, ErrUnsupportedElement)
		}
	}
	return out, nil
}

var geometryNames = map[model.Geometry]string{
	model.GeomRectangle:  "Rectangle",
	model.GeomRoundRect:  "Rounded Rectangle",
	model.GeomEllipse:    "Oval",
	model.GeomRightArrow: "Right Arrow",
}

var roleNames = map[model.Role]string{
	model.RoleTitle:    "Title",
	model.RoleSubtitle: "Subtitle",
	model.RoleBody:     "Body",
	model.RoleCaption:  "Caption",
}

// elementName returns the element's own name, or one derived from its role
// or kind. The reader recovers roles from these prefixes.
func elementName(elem model.Element, role model.Role, id int) string {
	if n := elem.Name(); n != "" {
		return n
	}
	base := roleNames[role]
	if base == "" {
		switch e := elem.(type) {
		case *model.TextBox:
			base = "TextBox"
		case *model.Shape:
			base = geometryNames[e.Geometry]
			if base == "" {
				base = "Shape"
			}
		case *model.Connector:
			base = "Straight Connector"
		}
	}
	return fmt.Sprintf("%s %d", base, id-1)
}

func solid(c model.RGB) solidFillOut {
	return solidFillOut{SrgbClr: valOut{Val: c.Hex()}}
}

func xfrm(r model.Rect) xfrmOut {
	return xfrmOut{
		Off: pointOut{X: int64(r.X), Y: int64(r.Y)},
		Ext: sizeOut{Cx: int64(r.W), Cy: int64(r.H)},
	}
}

func autoShapeStyle() *styleOut {
	return &styleOut{
		LnRef:     styleRefOut{Idx: 1, SchemeClr: valOut{Val: "accent1"}},
		FillRef:   styleRefOut{Idx: 3, SchemeClr: valOut{Val: "accent1"}},
		EffectRef: styleRefOut{Idx: 2, SchemeClr: valOut{Val: "accent1"}},
		FontRef:   fontRefOut{Idx: "minor", SchemeClr: valOut{Val: "lt1"}},
	}
}

func connectorStyle() *styleOut {
	return &styleOut{
		LnRef:     styleRefOut{Idx: 1, SchemeClr: valOut{Val: "accent1"}},
		FillRef:   styleRefOut{Idx: 0, SchemeClr: valOut{Val: "accent1"}},
		EffectRef: styleRefOut{Idx: 0, SchemeClr: valOut{Val: "accent1"}},
		FontRef:   fontRefOut{Idx: "minor", SchemeClr: valOut{Val: "tx1"}},
	}
}

func lineXML(l model.Line) *lnOut {
	switch {
	case l.Hidden:
		return &lnOut{NoFill: &struct{}{}}
	case l.Color == nil && l.Width == 0:
		return nil
	}
	ln := &lnOut{W: int64(l.Width)}
	if l.Color != nil {
		f := solid(*l.Color)
		ln.SolidFill = &f
	}
	return ln
}

func textBoxXML(t *model.TextBox, id int) *spOut {
	return &spOut{
		NvSpPr: nvSpPrOut{
			CNvPr:   cNvPrOut{ID: id, Name: elementName(t, t.Role, id)},
			CNvSpPr: cNvSpPrOut{TxBox: "1"},
		},
		SpPr: spPrOut{
			Xfrm:     xfrm(t.Rect),
			PrstGeom: prstGeomOut{Prst: string(model.GeomRectangle)},
			NoFill:   &struct{}{},
		},
		TxBody: txBody(&t.Text, false),
	}
}

func shapeXML(s *model.Shape, id int) *spOut {
	sp := &spOut{
		NvSpPr: nvSpPrOut{
			CNvPr: cNvPrOut{ID: id, Name: elementName(s, s.Role, id)},
		},
		SpPr: spPrOut{
			Xfrm:     xfrm(s.Rect),
			PrstGeom: prstGeomOut{Prst: string(s.Geometry)},
			Ln:       lineXML(s.Line),
		},
		Style: autoShapeStyle(),
	}
	sp.SpPr.Xfrm.Rot = model.Angle(s.Rotation)
	switch s.Fill.Type {
	case model.FillSolid:
		f := solid(s.Fill.Color)
		sp.SpPr.SolidFill = &f
	case model.FillNone:
		sp.SpPr.NoFill = &struct{}{}
	}
	if s.Text != nil {
		sp.TxBody = txBody(s.Text, true)
	}
	return sp
}

func connectorXML(c *model.Connector, id int) *cxnSpOut {
	cx := &cxnSpOut{
		NvCxnSpPr: nvCxnSpPrOut{
			CNvPr: cNvPrOut{ID: id, Name: elementName(c, model.RoleNone, id)},
		},
		SpPr: spPrOut{
			Xfrm:     xfrm(c.Bounds()),
			PrstGeom: prstGeomOut{Prst: string(model.GeomLine)},
			Ln:       lineXML(c.Line),
		},
		Style: connectorStyle(),
	}
	if c.FlipH() {
		cx.SpPr.Xfrm.FlipH = 1
	}
	if c.FlipV() {
		cx.SpPr.Xfrm.FlipV = 1
	}
	return cx
}

// txBody encodes a text frame. Autoshape text defaults to centred both
// ways; text boxes default to top-left without wrapping and grow to fit.
func txBody(tf *model.TextFrame, shape bool) *txBodyOut {
	body := &txBodyOut{}
	if shape {
		body.BodyPr.RtlCol = "0"
		body.BodyPr.Anchor = "ctr"
	} else {
		body.BodyPr.Wrap = "none"
		body.BodyPr.SpAutoFit = &struct{}{}
	}
	if tf.WordWrap != nil {
		if *tf.WordWrap {
			body.BodyPr.Wrap = "square"
		} else {
			body.BodyPr.Wrap = "none"
		}
	}
	if a := tf.Anchor.String(); a != "" {
		body.BodyPr.Anchor = a
	}

	for _, p := range tf.Paragraphs {
		body.P = append(body.P, paragraphXML(p, shape))
	}
	if len(body.P) == 0 {
		body.P = []pOut{{}}
	}
	return body
}

func paragraphXML(p model.Paragraph, shape bool) pOut {
	var out pOut

	ppr := &pPrOut{Lvl: p.Level, Algn: p.Align.String()}
	if ppr.Algn == "" && shape {
		ppr.Algn = "ctr"
	}
	if text.DetectDirection(p.Text) == text.RTL {
		ppr.Rtl = "1"
	}
	if p.SpaceBefore > 0 {
		ppr.SpcBef = &spcOut{SpcPts: valIntOut{Val: model.Centipoints(p.SpaceBefore)}}
	}
	if p.SpaceAfter > 0 {
		ppr.SpcAft = &spcOut{SpcPts: valIntOut{Val: model.Centipoints(p.SpaceAfter)}}
	}
	if *ppr != (pPrOut{}) {
		out.PPr = ppr
	}

	rpr := runProps(p.Font)
	if p.Text == "" {
		if p.Font != (model.Font{}) {
			out.EndParaRPr = &rpr
		}
		return out
	}
	out.R = []rOut{{RPr: rpr, T: p.Text}}
	return out
}

func runProps(f model.Font) rPrOut {
	rpr := rPrOut{Lang: "en-US", Dirty: "0"}
	if f.Size > 0 {
		rpr.Sz = model.Centipoints(f.Size)
	}
	if f.Bold {
		rpr.B = "1"
	}
	if f.Italic {
		rpr.I = "1"
	}
	if f.Color != nil {
		fill := solid(*f.Color)
		rpr.SolidFill = &fill
	}
	if f.Name != "" {
		rpr.Latin = &typefaceOut{Typeface: f.Name}
	}
	return rpr
}
