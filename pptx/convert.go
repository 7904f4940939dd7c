package pptx

import (
	"github.com/tsawler/deckforge/model"
)

// convertTree appends the elements of a shape tree to s in z-order.
func convertTree(tree *spTreeXML, s *model.Slide) error {
	for _, item := range tree.Items {
		switch {
		case item.Sp != nil:
			elem, err := convertShape(item.Sp)
			if err != nil {
				return err
			}
			s.AddElement(elem)
		case item.CxnSp != nil:
			s.AddElement(convertConnector(item.CxnSp))
		case item.GrpSp != nil:
			if err := convertTree(&item.GrpSp.SpTree, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func rectOf(x *xfrmXML) model.Rect {
	if x == nil {
		return model.Rect{}
	}
	return model.NewRect(model.EMU(x.Off.X), model.EMU(x.Off.Y), model.EMU(x.Ext.Cx), model.EMU(x.Ext.Cy))
}

func colorOf(f *solidFillXML) (*model.RGB, error) {
	hex := fillColor(f)
	if hex == "" {
		return nil, nil
	}
	c, err := model.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func convertShape(sp *spXML) (model.Element, error) {
	rect := rectOf(sp.SpPr.Xfrm)
	role := roleOf(sp)
	name := sp.NvSpPr.CNvPr.Name

	if sp.NvSpPr.CNvSpPr.TxBox == "1" || sp.NvSpPr.NvPr.Ph != nil {
		tb := &model.TextBox{ID: name, Rect: rect, Role: role}
		if sp.TxBody != nil {
			frame, err := convertFrame(sp.TxBody)
			if err != nil {
				return nil, err
			}
			tb.Text = *frame
		}
		return tb, nil
	}

	shape := &model.Shape{
		ID:       name,
		Geometry: model.GeomRectangle,
		Rect:     rect,
		Role:     role,
	}
	if sp.SpPr.PrstGeom != nil && sp.SpPr.PrstGeom.Prst != "" {
		shape.Geometry = model.Geometry(sp.SpPr.PrstGeom.Prst)
	}
	if sp.SpPr.Xfrm != nil {
		shape.Rotation = float64(sp.SpPr.Xfrm.Rot) / 60000
	}

	switch {
	case sp.SpPr.NoFill != nil:
		shape.Fill = model.Fill{Type: model.FillNone}
	case sp.SpPr.SolidFill != nil:
		c, err := colorOf(sp.SpPr.SolidFill)
		if err != nil {
			return nil, err
		}
		if c != nil {
			shape.Fill = model.Solid(*c)
		}
	}

	line, err := convertLine(sp.SpPr.Ln)
	if err != nil {
		return nil, err
	}
	shape.Line = line

	if sp.TxBody != nil {
		frame, err := convertFrame(sp.TxBody)
		if err != nil {
			return nil, err
		}
		shape.Text = frame
	}
	return shape, nil
}

func convertLine(ln *lnXML) (model.Line, error) {
	var line model.Line
	if ln == nil {
		return line, nil
	}
	line.Width = model.EMU(ln.W)
	if ln.NoFill != nil {
		line.Hidden = true
		return line, nil
	}
	c, err := colorOf(ln.SolidFill)
	if err != nil {
		return line, err
	}
	line.Color = c
	return line, nil
}

// convertConnector recovers the end points from the bounding box and the
// flip flags.
func convertConnector(cx *cxnSpXML) *model.Connector {
	c := &model.Connector{ID: cx.NvCxnSpPr.CNvPr.Name}
	x := cx.SpPr.Xfrm
	if x != nil {
		x1, y1 := model.EMU(x.Off.X), model.EMU(x.Off.Y)
		x2, y2 := x1+model.EMU(x.Ext.Cx), y1+model.EMU(x.Ext.Cy)
		if isTrue(x.FlipH) {
			x1, x2 = x2, x1
		}
		if isTrue(x.FlipV) {
			y1, y2 = y2, y1
		}
		c.Start = model.Point{X: x1, Y: y1}
		c.End = model.Point{X: x2, Y: y2}
	}
	// A malformed line colour degrades to the style default.
	c.Line, _ = convertLine(cx.SpPr.Ln)
	return c
}

func convertFrame(body *txBodyXML) (*model.TextFrame, error) {
	tf := &model.TextFrame{Anchor: model.ParseAnchor(body.BodyPr.Anchor)}
	switch body.BodyPr.Wrap {
	case "square":
		tf.WordWrap = model.Bool(true)
	case "none":
		tf.WordWrap = model.Bool(false)
	}

	for _, p := range body.P {
		para := model.Paragraph{}
		var text string
		for _, r := range p.R {
			text += r.T
		}
		for _, f := range p.Fld {
			text += f.T
		}
		para.Text = text

		if p.PPr != nil {
			para.Level = p.PPr.Lvl
			para.Align = model.ParseAlignment(p.PPr.Algn)
			para.SpaceBefore = spacing(p.PPr.SpcBef)
			para.SpaceAfter = spacing(p.PPr.SpcAft)
		}

		// The first run carries the paragraph font; empty paragraphs keep
		// theirs on the end-of-paragraph properties.
		rpr := p.EndParaRPr
		if len(p.R) > 0 {
			rpr = p.R[0].RPr
		}
		if rpr != nil {
			font, err := convertFont(rpr)
			if err != nil {
				return nil, err
			}
			para.Font = font
		}
		tf.Paragraphs = append(tf.Paragraphs, para)
	}
	return tf, nil
}

func convertFont(rpr *rPrXML) (model.Font, error) {
	f := model.Font{
		Size:   float64(rpr.Sz) / 100,
		Bold:   isTrue(rpr.B),
		Italic: isTrue(rpr.I),
	}
	if rpr.Latin != nil {
		f.Name = rpr.Latin.Typeface
	}
	c, err := colorOf(rpr.SolidFill)
	if err != nil {
		return f, err
	}
	f.Color = c
	return f, nil
}
