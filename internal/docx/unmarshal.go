package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// Word writes every element with a namespace prefix, so struct-tag driven
// decoding cannot be used for the w: parts. Each container element is
// parsed with an explicit token loop keyed on local names instead, the same
// approach go-docx takes. Elements the model does not cover are captured as
// RawXML nodes in place, so a save re-emits them where they were.

func attrByLocal(attrs []xml.Attr, local string) string {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func parseDocumentXML(data []byte) (*docRoot, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("document.xml: no w:document element")
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local != "document" {
			return nil, fmt.Errorf("document.xml: unexpected root %q", se.Name.Local)
		}
		root := &docRoot{Body: &body{}}
		for {
			tok, err := d.Token()
			if err != nil {
				return nil, err
			}
			switch t := tok.(type) {
			case xml.StartElement:
				if t.Name.Local == "body" {
					if err := root.Body.parse(d); err != nil {
						return nil, err
					}
				} else {
					raw, err := captureRaw(d, t)
					if err != nil {
						return nil, err
					}
					root.Raw = append(root.Raw, raw)
				}
			case xml.EndElement:
				return root, nil
			}
		}
	}
}

func (b *body) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				p := &Paragraph{}
				if err := p.parse(d); err != nil {
					return err
				}
				b.Items = append(b.Items, p)
			case "tbl":
				tbl := &Table{}
				if err := tbl.parse(d); err != nil {
					return err
				}
				b.Items = append(b.Items, tbl)
			case "sectPr":
				sp := &SectPr{}
				if err := sp.parse(d); err != nil {
					return err
				}
				b.SectPr = sp
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				b.Items = append(b.Items, raw)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (p *Paragraph) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				p.Props = &ParagraphProps{}
				if err := p.Props.parse(d); err != nil {
					return err
				}
			case "r":
				r := &Run{}
				if err := r.parse(d); err != nil {
					return err
				}
				p.Children = append(p.Children, r)
			case "hyperlink":
				h := &Hyperlink{RelID: attrByLocal(t.Attr, "id")}
				if err := h.parse(d); err != nil {
					return err
				}
				p.Children = append(p.Children, h)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				p.Children = append(p.Children, raw)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (h *Hyperlink) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "r" {
				r := &Run{}
				if err := r.parse(d); err != nil {
					return err
				}
				h.Runs = append(h.Runs, r)
			} else {
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				h.Raw = append(h.Raw, raw)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (pp *ParagraphProps) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pStyle":
				pp.Style = &ValAttr{Val: attrByLocal(t.Attr, "val")}
				if err := d.Skip(); err != nil {
					return err
				}
			case "jc":
				pp.Jc = &ValAttr{Val: attrByLocal(t.Attr, "val")}
				if err := d.Skip(); err != nil {
					return err
				}
			case "spacing":
				pp.Spacing = &Spacing{
					Before:   attrByLocal(t.Attr, "before"),
					After:    attrByLocal(t.Attr, "after"),
					Line:     attrByLocal(t.Attr, "line"),
					LineRule: attrByLocal(t.Attr, "lineRule"),
				}
				if err := d.Skip(); err != nil {
					return err
				}
			case "ind":
				pp.Indent = &Indent{
					Left:      attrByLocal(t.Attr, "left"),
					Right:     attrByLocal(t.Attr, "right"),
					FirstLine: attrByLocal(t.Attr, "firstLine"),
				}
				if err := d.Skip(); err != nil {
					return err
				}
			case "rPr":
				pp.RunProps = &RunProps{}
				if err := pp.RunProps.parse(d); err != nil {
					return err
				}
			case "sectPr":
				pp.SectPr = &SectPr{}
				if err := pp.SectPr.parse(d); err != nil {
					return err
				}
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				pp.Raw = append(pp.Raw, raw)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (rp *RunProps) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rFonts":
				rp.Fonts = &Fonts{
					ASCII:    attrByLocal(t.Attr, "ascii"),
					HAnsi:    attrByLocal(t.Attr, "hAnsi"),
					EastAsia: attrByLocal(t.Attr, "eastAsia"),
				}
			case "b":
				rp.Bold = &OnOff{Val: attrByLocal(t.Attr, "val")}
			case "i":
				rp.Italic = &OnOff{Val: attrByLocal(t.Attr, "val")}
			case "color":
				rp.Color = &Color{Val: attrByLocal(t.Attr, "val")}
			case "sz":
				rp.Size = &ValAttr{Val: attrByLocal(t.Attr, "val")}
			case "highlight":
				rp.Highlight = &ValAttr{Val: attrByLocal(t.Attr, "val")}
			case "u":
				rp.Underline = &ValAttr{Val: attrByLocal(t.Attr, "val")}
			case "shd":
				rp.Shade = &Shade{
					Val:  attrByLocal(t.Attr, "val"),
					Fill: attrByLocal(t.Attr, "fill"),
				}
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				rp.Raw = append(rp.Raw, raw)
				continue
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (r *Run) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				r.Props = &RunProps{}
				if err := r.Props.parse(d); err != nil {
					return err
				}
			case "t":
				var txt Text
				if err := parseCharData(d, &txt.Value); err != nil {
					return err
				}
				r.Items = append(r.Items, &txt)
			case "br":
				r.Items = append(r.Items, &Break{Type: attrByLocal(t.Attr, "type")})
				if err := d.Skip(); err != nil {
					return err
				}
			case "tab":
				r.Items = append(r.Items, &TabChar{})
				if err := d.Skip(); err != nil {
					return err
				}
			case "fldChar":
				r.Items = append(r.Items, &FieldChar{Type: attrByLocal(t.Attr, "fldCharType")})
				if err := d.Skip(); err != nil {
					return err
				}
			case "instrText":
				var it InstrText
				if err := parseCharData(d, &it.Value); err != nil {
					return err
				}
				r.Items = append(r.Items, &it)
			case "drawing":
				dr := &Drawing{}
				if err := dr.parse(d); err != nil {
					return err
				}
				r.Items = append(r.Items, dr)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				r.Items = append(r.Items, raw)
			}
		case xml.EndElement:
			return nil
		}
	}
}

// parseCharData collects the character data of the current element.
func parseCharData(d *xml.Decoder, out *string) error {
	var buf bytes.Buffer
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.StartElement:
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			*out = buf.String()
			return nil
		}
	}
}

func (tbl *Table) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tblPr":
				tbl.Props = &TableProps{}
				if err := tbl.Props.parse(d); err != nil {
					return err
				}
			case "tblGrid":
				tbl.Grid = &TableGrid{}
				if err := tbl.Grid.parse(d); err != nil {
					return err
				}
			case "tr":
				row := &TableRow{}
				if err := row.parse(d); err != nil {
					return err
				}
				tbl.Rows = append(tbl.Rows, row)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				tbl.Raw = append(tbl.Raw, raw)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (tp *TableProps) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tblStyle":
				tp.Style = &ValAttr{Val: attrByLocal(t.Attr, "val")}
				if err := d.Skip(); err != nil {
					return err
				}
			case "tblW":
				tp.Width = &TableWidth{
					W:    attrByLocal(t.Attr, "w"),
					Type: attrByLocal(t.Attr, "type"),
				}
				if err := d.Skip(); err != nil {
					return err
				}
			case "tblBorders":
				tp.Borders = &TableBorders{}
				if err := tp.Borders.parse(d); err != nil {
					return err
				}
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				tp.Raw = append(tp.Raw, raw)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (tb *TableBorders) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			edge := &BorderEdge{
				Val:   attrByLocal(t.Attr, "val"),
				Sz:    attrByLocal(t.Attr, "sz"),
				Space: attrByLocal(t.Attr, "space"),
				Color: attrByLocal(t.Attr, "color"),
			}
			switch t.Name.Local {
			case "top":
				tb.Top = edge
			case "left":
				tb.Left = edge
			case "bottom":
				tb.Bottom = edge
			case "right":
				tb.Right = edge
			case "insideH":
				tb.InsideH = edge
			case "insideV":
				tb.InsideV = edge
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (g *TableGrid) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "gridCol" {
				g.Cols = append(g.Cols, &GridCol{W: attrByLocal(t.Attr, "w")})
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (row *TableRow) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "tc" {
				cell := &TableCell{}
				if err := cell.parse(d); err != nil {
					return err
				}
				row.Cells = append(row.Cells, cell)
			} else {
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				row.Raw = append(row.Raw, raw)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (cell *TableCell) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tcPr":
				cell.Props = &TableCellProps{}
				if err := cell.Props.parse(d); err != nil {
					return err
				}
			case "p":
				p := &Paragraph{}
				if err := p.parse(d); err != nil {
					return err
				}
				cell.Blocks = append(cell.Blocks, p)
			case "tbl":
				nested := &Table{}
				if err := nested.parse(d); err != nil {
					return err
				}
				cell.Blocks = append(cell.Blocks, nested)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				cell.Blocks = append(cell.Blocks, raw)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (cp *TableCellProps) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tcW":
				cp.Width = &TableWidth{
					W:    attrByLocal(t.Attr, "w"),
					Type: attrByLocal(t.Attr, "type"),
				}
			case "shd":
				cp.Shade = &Shade{
					Val:  attrByLocal(t.Attr, "val"),
					Fill: attrByLocal(t.Attr, "fill"),
				}
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				cp.Raw = append(cp.Raw, raw)
				continue
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (sp *SectPr) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "headerReference":
				sp.HeaderRefs = append(sp.HeaderRefs, &HFRef{
					Type:  attrByLocal(t.Attr, "type"),
					RelID: attrByLocal(t.Attr, "id"),
				})
			case "footerReference":
				sp.FooterRefs = append(sp.FooterRefs, &HFRef{
					Type:  attrByLocal(t.Attr, "type"),
					RelID: attrByLocal(t.Attr, "id"),
				})
			case "pgSz":
				sp.PageSize = &PageSize{
					W:      attrByLocal(t.Attr, "w"),
					H:      attrByLocal(t.Attr, "h"),
					Orient: attrByLocal(t.Attr, "orient"),
				}
			case "pgMar":
				sp.Margins = &PageMargins{
					Top:    attrByLocal(t.Attr, "top"),
					Right:  attrByLocal(t.Attr, "right"),
					Bottom: attrByLocal(t.Attr, "bottom"),
					Left:   attrByLocal(t.Attr, "left"),
					Header: attrByLocal(t.Attr, "header"),
					Footer: attrByLocal(t.Attr, "footer"),
					Gutter: attrByLocal(t.Attr, "gutter"),
				}
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				sp.Raw = append(sp.Raw, raw)
				continue
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func parseStylesXML(data []byte) (*Styles, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("styles.xml: no w:styles element")
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local != "styles" {
			return nil, fmt.Errorf("styles.xml: unexpected root %q", se.Name.Local)
		}
		s := &Styles{}
		if err := s.parse(d); err != nil {
			return nil, err
		}
		return s, nil
	}
}

func (s *Styles) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "docDefaults":
				s.DocDefaults = &DocDefaults{}
				if err := s.DocDefaults.parse(d); err != nil {
					return err
				}
			case "style":
				st := &Style{
					Type:    attrByLocal(t.Attr, "type"),
					StyleID: attrByLocal(t.Attr, "styleId"),
					Default: attrByLocal(t.Attr, "default"),
				}
				if err := st.parse(d); err != nil {
					return err
				}
				s.Items = append(s.Items, st)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				s.Raw = append(s.Raw, raw)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (dd *DocDefaults) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPrDefault":
				dd.RunDefault = &RPrDefault{}
				if err := dd.RunDefault.parse(d); err != nil {
					return err
				}
			case "pPrDefault":
				dd.ParDefault = &PPrDefault{}
				if err := dd.ParDefault.parse(d); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (rd *RPrDefault) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "rPr" {
				rd.RunProps = &RunProps{}
				if err := rd.RunProps.parse(d); err != nil {
					return err
				}
			} else if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (pd *PPrDefault) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "pPr" {
				pd.ParaProps = &ParagraphProps{}
				if err := pd.ParaProps.parse(d); err != nil {
					return err
				}
			} else if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (st *Style) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "name":
				st.Name = &ValAttr{Val: attrByLocal(t.Attr, "val")}
				if err := d.Skip(); err != nil {
					return err
				}
			case "basedOn":
				st.BasedOn = &ValAttr{Val: attrByLocal(t.Attr, "val")}
				if err := d.Skip(); err != nil {
					return err
				}
			case "qFormat":
				st.QFormat = &OnOff{Val: attrByLocal(t.Attr, "val")}
				if err := d.Skip(); err != nil {
					return err
				}
			case "pPr":
				st.ParaProps = &ParagraphProps{}
				if err := st.ParaProps.parse(d); err != nil {
					return err
				}
			case "rPr":
				st.RunProps = &RunProps{}
				if err := st.RunProps.parse(d); err != nil {
					return err
				}
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				st.Raw = append(st.Raw, raw)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func parseHeaderFooterXML(data []byte) (*HeaderFooter, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("header/footer part: no root element")
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		root := &HeaderFooter{}
		switch se.Name.Local {
		case "hdr":
			root.tag = "w:hdr"
		case "ftr":
			root.tag = "w:ftr"
		default:
			return nil, fmt.Errorf("header/footer part: unexpected root %q", se.Name.Local)
		}
		for {
			tok, err := d.Token()
			if err != nil {
				return nil, err
			}
			switch t := tok.(type) {
			case xml.StartElement:
				if t.Name.Local == "p" {
					p := &Paragraph{}
					if err := p.parse(d); err != nil {
						return nil, err
					}
					root.Paragraphs = append(root.Paragraphs, p)
				} else {
					raw, err := captureRaw(d, t)
					if err != nil {
						return nil, err
					}
					root.Raw = append(root.Raw, raw)
				}
			case xml.EndElement:
				return root, nil
			}
		}
	}
}
