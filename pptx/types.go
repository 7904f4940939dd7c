// Package pptx writes decks as Office Open XML presentations and reads
// presentations back for verification and inspection.
package pptx

import (
	"encoding/xml"
	"io"
)

// XML namespaces used in PPTX files.
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels    = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Unmarshalling structs. Names match on the local part only, so files
// written with any prefix convention are accepted.

// presentationXML represents the ppt/presentation.xml file structure.
type presentationXML struct {
	XMLName     xml.Name        `xml:"presentation"`
	SlideIdList *slideIdListXML `xml:"sldIdLst"`
	SlideSz     *slideSzXML     `xml:"sldSz"`
}

type slideIdListXML struct {
	SlideId []slideIdXML `xml:"sldId"`
}

type slideIdXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"` // r:id attribute for relationship
}

type slideSzXML struct {
	Cx int64 `xml:"cx,attr"` // Width in EMUs
	Cy int64 `xml:"cy,attr"` // Height in EMUs
}

// slideXML represents a ppt/slides/slide*.xml file structure.
type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    cSldXML  `xml:"cSld"`
}

type cSldXML struct {
	Bg     *bgXML    `xml:"bg"`
	SpTree spTreeXML `xml:"spTree"`
}

type bgXML struct {
	BgPr *struct {
		SolidFill *solidFillXML `xml:"solidFill"`
	} `xml:"bgPr"`
}

// spTreeXML represents the shape tree containing all shapes on a slide.
// Items keeps shapes, connectors and groups in document (z) order.
type spTreeXML struct {
	Items []spTreeItem
}

// spTreeItem holds exactly one of its fields.
type spTreeItem struct {
	Sp    *spXML
	CxnSp *cxnSpXML
	GrpSp *grpSpXML
}

// UnmarshalXML decodes the children of a shape tree in order, skipping
// anything that is not a shape, connector or group.
func (t *spTreeXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			var item spTreeItem
			switch el.Name.Local {
			case "sp":
				item.Sp = &spXML{}
				err = d.DecodeElement(item.Sp, &el)
			case "cxnSp":
				item.CxnSp = &cxnSpXML{}
				err = d.DecodeElement(item.CxnSp, &el)
			case "grpSp":
				item.GrpSp = &grpSpXML{}
				err = d.DecodeElement(item.GrpSp, &el)
			default:
				err = d.Skip()
				if err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			t.Items = append(t.Items, item)
		case xml.EndElement:
			return nil
		}
	}
}

type cNvPrXML struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Title string `xml:"title,attr"`
}

// spXML represents a shape element.
type spXML struct {
	NvSpPr nvSpPrXML  `xml:"nvSpPr"`
	SpPr   spPrXML    `xml:"spPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type nvSpPrXML struct {
	CNvPr   cNvPrXML   `xml:"cNvPr"`
	CNvSpPr cNvSpPrXML `xml:"cNvSpPr"`
	NvPr    nvPrXML    `xml:"nvPr"`
}

type cNvSpPrXML struct {
	TxBox string `xml:"txBox,attr"`
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"` // Placeholder info
}

type phXML struct {
	Type string `xml:"type,attr"` // title, body, subTitle, ctrTitle, etc.
	Idx  int    `xml:"idx,attr"`
}

// cxnSpXML represents a connector.
type cxnSpXML struct {
	NvCxnSpPr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
	} `xml:"nvCxnSpPr"`
	SpPr spPrXML `xml:"spPr"`
}

type spPrXML struct {
	Xfrm      *xfrmXML      `xml:"xfrm"`
	PrstGeom  *prstGeomXML  `xml:"prstGeom"`
	NoFill    *struct{}     `xml:"noFill"`
	SolidFill *solidFillXML `xml:"solidFill"`
	Ln        *lnXML        `xml:"ln"`
}

type xfrmXML struct {
	Rot   int    `xml:"rot,attr"` // 60000ths of a degree
	FlipH string `xml:"flipH,attr"`
	FlipV string `xml:"flipV,attr"`
	Off   offXML `xml:"off"`
	Ext   extXML `xml:"ext"`
}

type offXML struct {
	X int64 `xml:"x,attr"` // X position in EMUs
	Y int64 `xml:"y,attr"` // Y position in EMUs
}

type extXML struct {
	Cx int64 `xml:"cx,attr"` // Width in EMUs
	Cy int64 `xml:"cy,attr"` // Height in EMUs
}

type prstGeomXML struct {
	Prst string `xml:"prst,attr"`
}

type solidFillXML struct {
	SrgbClr *valXML `xml:"srgbClr"`
}

type valXML struct {
	Val string `xml:"val,attr"`
}

type lnXML struct {
	W         int64         `xml:"w,attr"`
	NoFill    *struct{}     `xml:"noFill"`
	SolidFill *solidFillXML `xml:"solidFill"`
}

// txBodyXML represents text body content.
type txBodyXML struct {
	BodyPr bodyPrXML `xml:"bodyPr"`
	P      []pXML    `xml:"p"` // Paragraphs
}

type bodyPrXML struct {
	Anchor string `xml:"anchor,attr"` // t, ctr, b (top, center, bottom)
	Wrap   string `xml:"wrap,attr"`   // none, square
}

// pXML represents a paragraph.
type pXML struct {
	PPr        *pPrXML  `xml:"pPr"`        // Paragraph properties
	R          []rXML   `xml:"r"`          // Text runs
	Br         []brXML  `xml:"br"`         // Line breaks
	Fld        []fldXML `xml:"fld"`        // Fields (like slide number)
	EndParaRPr *rPrXML  `xml:"endParaRPr"` // End paragraph run properties
}

type pPrXML struct {
	Lvl       int           `xml:"lvl,attr"`  // Bullet level (0-8)
	Algn      string        `xml:"algn,attr"` // Alignment: l, ctr, r, just
	SpcBef    *spcXML       `xml:"spcBef"`
	SpcAft    *spcXML       `xml:"spcAft"`
	BuNone    *struct{}     `xml:"buNone"`    // No bullet
	BuChar    *buCharXML    `xml:"buChar"`    // Character bullet
	BuAutoNum *buAutoNumXML `xml:"buAutoNum"` // Numbered list
}

type spcXML struct {
	SpcPts *struct {
		Val int `xml:"val,attr"` // Hundredths of a point
	} `xml:"spcPts"`
}

type buCharXML struct {
	Char string `xml:"char,attr"` // Bullet character
}

type buAutoNumXML struct {
	Type    string `xml:"type,attr"`    // arabicPeriod, alphaLcParenR, etc.
	StartAt int    `xml:"startAt,attr"` // Starting number
}

// rXML represents a text run.
type rXML struct {
	RPr *rPrXML `xml:"rPr"` // Run properties
	T   string  `xml:"t"`   // Text content
}

type rPrXML struct {
	Lang      string        `xml:"lang,attr"`
	Sz        int           `xml:"sz,attr"` // Font size in hundredths of a point
	B         string        `xml:"b,attr"`  // Bold ("1" or "true")
	I         string        `xml:"i,attr"`  // Italic
	SolidFill *solidFillXML `xml:"solidFill"`
	Latin     *struct {
		Typeface string `xml:"typeface,attr"`
	} `xml:"latin"`
}

type brXML struct{} // Line break

type fldXML struct {
	Type string `xml:"type,attr"` // slidenum, datetime, etc.
	T    string `xml:"t"`         // Field value
}

// grpSpXML represents a group of shapes.
type grpSpXML struct {
	SpTree spTreeXML
}

// UnmarshalXML decodes a group's children with the same ordering rules
// as the top-level shape tree.
func (g *grpSpXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return g.SpTree.UnmarshalXML(d, start)
}

// notesSlideXML represents a ppt/notesSlides/notesSlide*.xml file.
type notesSlideXML struct {
	XMLName xml.Name `xml:"notes"`
	CSld    cSldXML  `xml:"cSld"`
}

// relationshipsXML represents .rels files.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// corePropertiesXML represents docProps/core.xml.
type corePropertiesXML struct {
	XMLName     xml.Name `xml:"coreProperties"`
	Title       string   `xml:"title"`
	Subject     string   `xml:"subject"`
	Creator     string   `xml:"creator"`
	Keywords    string   `xml:"keywords"`
	Description string   `xml:"description"`
	LastModBy   string   `xml:"lastModifiedBy"`
	Created     string   `xml:"created"`
	Modified    string   `xml:"modified"`
}

// appPropertiesXML represents docProps/app.xml.
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Application string   `xml:"Application"`
	Company     string   `xml:"Company"`
	Slides      int      `xml:"Slides"`
	Notes       int      `xml:"Notes"`
}
