package pptx

import "encoding/xml"

// Marshalling structs. Element names carry their namespace prefix literally
// ("p:sp", "a:off") so the output uses the conventional p/a/r prefixes that
// every presentation application expects. The root element declares them.

type nsAttrs struct {
	A string `xml:"xmlns:a,attr"`
	R string `xml:"xmlns:r,attr"`
	P string `xml:"xmlns:p,attr"`
}

func defaultNS() nsAttrs {
	return nsAttrs{A: nsDrawingML, R: nsRelationships, P: nsPresentationML}
}

// Package-level parts.

type typesOut struct {
	XMLName   xml.Name      `xml:"Types"`
	Xmlns     string        `xml:"xmlns,attr"`
	Defaults  []defaultOut  `xml:"Default"`
	Overrides []overrideOut `xml:"Override"`
}

type defaultOut struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideOut struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type relsOut struct {
	XMLName xml.Name `xml:"Relationships"`
	Xmlns   string   `xml:"xmlns,attr"`
	Rels    []relOut `xml:"Relationship"`
}

type relOut struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type corePropsOut struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	XmlnsCP        string   `xml:"xmlns:cp,attr"`
	XmlnsDC        string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms   string   `xml:"xmlns:dcterms,attr"`
	XmlnsDCMIType  string   `xml:"xmlns:dcmitype,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Subject        string   `xml:"dc:subject,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	Keywords       string   `xml:"cp:keywords,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
	Revision       int      `xml:"cp:revision"`
	Created        w3cDate  `xml:"dcterms:created"`
	Modified       w3cDate  `xml:"dcterms:modified"`
}

type w3cDate struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

type appPropsOut struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	XmlnsVT     string   `xml:"xmlns:vt,attr"`
	Application string   `xml:"Application"`
	Slides      int      `xml:"Slides"`
	Notes       int      `xml:"Notes"`
	Company     string   `xml:"Company,omitempty"`
	AppVersion  string   `xml:"AppVersion"`
}

// Presentation part.

type presentationOut struct {
	XMLName xml.Name `xml:"p:presentation"`
	nsAttrs
	SaveSubsetFonts int             `xml:"saveSubsetFonts,attr"`
	MasterIDs       masterIDListOut `xml:"p:sldMasterIdLst"`
	SlideIDs        slideIDListOut  `xml:"p:sldIdLst"`
	SlideSize       sizeOut         `xml:"p:sldSz"`
	NotesSize       sizeOut         `xml:"p:notesSz"`
}

type masterIDListOut struct {
	IDs []idRefOut `xml:"p:sldMasterId"`
}

type slideIDListOut struct {
	IDs []idRefOut `xml:"p:sldId"`
}

type idRefOut struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type sizeOut struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

// Slide part.

type slideOut struct {
	XMLName xml.Name `xml:"p:sld"`
	nsAttrs
	CSld      cSldOut      `xml:"p:cSld"`
	ClrMapOvr clrMapOvrOut `xml:"p:clrMapOvr"`
}

type cSldOut struct {
	Bg     *bgOut    `xml:"p:bg,omitempty"`
	SpTree spTreeOut `xml:"p:spTree"`
}

type bgOut struct {
	BgPr bgPrOut `xml:"p:bgPr"`
}

type bgPrOut struct {
	SolidFill solidFillOut `xml:"a:solidFill"`
	EffectLst struct{}     `xml:"a:effectLst"`
}

type clrMapOvrOut struct {
	Master struct{} `xml:"a:masterClrMapping"`
}

type spTreeOut struct {
	NvGrpSpPr nvGrpSpPrOut `xml:"p:nvGrpSpPr"`
	GrpSpPr   grpSpPrOut   `xml:"p:grpSpPr"`
	// Children are *spOut and *cxnSpOut values, in z-order. Each carries
	// its own element name.
	Children []any
}

type nvGrpSpPrOut struct {
	CNvPr      cNvPrOut `xml:"p:cNvPr"`
	CNvGrpSpPr struct{} `xml:"p:cNvGrpSpPr"`
	NvPr       struct{} `xml:"p:nvPr"`
}

type grpSpPrOut struct {
	Xfrm groupXfrmOut `xml:"a:xfrm"`
}

type groupXfrmOut struct {
	Off   pointOut `xml:"a:off"`
	Ext   sizeOut  `xml:"a:ext"`
	ChOff pointOut `xml:"a:chOff"`
	ChExt sizeOut  `xml:"a:chExt"`
}

type cNvPrOut struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type pointOut struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type spOut struct {
	XMLName xml.Name   `xml:"p:sp"`
	NvSpPr  nvSpPrOut  `xml:"p:nvSpPr"`
	SpPr    spPrOut    `xml:"p:spPr"`
	Style   *styleOut  `xml:"p:style,omitempty"`
	TxBody  *txBodyOut `xml:"p:txBody,omitempty"`
}

type nvSpPrOut struct {
	CNvPr   cNvPrOut   `xml:"p:cNvPr"`
	CNvSpPr cNvSpPrOut `xml:"p:cNvSpPr"`
	NvPr    struct{}   `xml:"p:nvPr"`
}

type cNvSpPrOut struct {
	TxBox string `xml:"txBox,attr,omitempty"`
}

type cxnSpOut struct {
	XMLName   xml.Name     `xml:"p:cxnSp"`
	NvCxnSpPr nvCxnSpPrOut `xml:"p:nvCxnSpPr"`
	SpPr      spPrOut      `xml:"p:spPr"`
	Style     *styleOut    `xml:"p:style,omitempty"`
}

type nvCxnSpPrOut struct {
	CNvPr      cNvPrOut `xml:"p:cNvPr"`
	CNvCxnSpPr struct{} `xml:"p:cNvCxnSpPr"`
	NvPr       struct{} `xml:"p:nvPr"`
}

type spPrOut struct {
	Xfrm      xfrmOut       `xml:"a:xfrm"`
	PrstGeom  prstGeomOut   `xml:"a:prstGeom"`
	NoFill    *struct{}     `xml:"a:noFill,omitempty"`
	SolidFill *solidFillOut `xml:"a:solidFill,omitempty"`
	Ln        *lnOut        `xml:"a:ln,omitempty"`
}

type xfrmOut struct {
	Rot   int      `xml:"rot,attr,omitempty"`
	FlipH int      `xml:"flipH,attr,omitempty"`
	FlipV int      `xml:"flipV,attr,omitempty"`
	Off   pointOut `xml:"a:off"`
	Ext   sizeOut  `xml:"a:ext"`
}

type prstGeomOut struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

type solidFillOut struct {
	SrgbClr valOut `xml:"a:srgbClr"`
}

type valOut struct {
	Val string `xml:"val,attr"`
}

type lnOut struct {
	W         int64         `xml:"w,attr,omitempty"`
	NoFill    *struct{}     `xml:"a:noFill,omitempty"`
	SolidFill *solidFillOut `xml:"a:solidFill,omitempty"`
}

// styleOut references the theme's formatting matrix, as applications do
// for inserted autoshapes and connectors.
type styleOut struct {
	LnRef     styleRefOut `xml:"a:lnRef"`
	FillRef   styleRefOut `xml:"a:fillRef"`
	EffectRef styleRefOut `xml:"a:effectRef"`
	FontRef   fontRefOut  `xml:"a:fontRef"`
}

type styleRefOut struct {
	Idx       int    `xml:"idx,attr"`
	SchemeClr valOut `xml:"a:schemeClr"`
}

type fontRefOut struct {
	Idx       string `xml:"idx,attr"`
	SchemeClr valOut `xml:"a:schemeClr"`
}

type txBodyOut struct {
	BodyPr   bodyPrOut `xml:"a:bodyPr"`
	LstStyle struct{}  `xml:"a:lstStyle"`
	P        []pOut    `xml:"a:p"`
}

type bodyPrOut struct {
	Wrap      string    `xml:"wrap,attr,omitempty"`
	RtlCol    string    `xml:"rtlCol,attr,omitempty"`
	Anchor    string    `xml:"anchor,attr,omitempty"`
	SpAutoFit *struct{} `xml:"a:spAutoFit,omitempty"`
}

type pOut struct {
	PPr        *pPrOut `xml:"a:pPr,omitempty"`
	R          []rOut  `xml:"a:r"`
	EndParaRPr *rPrOut `xml:"a:endParaRPr,omitempty"`
}

type pPrOut struct {
	Lvl    int     `xml:"lvl,attr,omitempty"`
	Algn   string  `xml:"algn,attr,omitempty"`
	Rtl    string  `xml:"rtl,attr,omitempty"`
	SpcBef *spcOut `xml:"a:spcBef,omitempty"`
	SpcAft *spcOut `xml:"a:spcAft,omitempty"`
}

type spcOut struct {
	SpcPts valIntOut `xml:"a:spcPts"`
}

type valIntOut struct {
	Val int `xml:"val,attr"`
}

type rOut struct {
	RPr rPrOut `xml:"a:rPr"`
	T   string `xml:"a:t"`
}

type rPrOut struct {
	Lang      string        `xml:"lang,attr,omitempty"`
	Sz        int           `xml:"sz,attr,omitempty"`
	B         string        `xml:"b,attr,omitempty"`
	I         string        `xml:"i,attr,omitempty"`
	Dirty     string        `xml:"dirty,attr,omitempty"`
	SolidFill *solidFillOut `xml:"a:solidFill,omitempty"`
	Latin     *typefaceOut  `xml:"a:latin,omitempty"`
}

type typefaceOut struct {
	Typeface string `xml:"typeface,attr"`
}
