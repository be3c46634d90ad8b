package docx

import (
	"encoding/xml"
	"strings"
)

// WordprocessingML namespaces. The document and header/footer roots declare
// every prefix used anywhere below them, so child elements can carry literal
// prefixed names.
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPic = "http://schemas.openxmlformats.org/drawingml/2006/picture"
	nsMC  = "http://schemas.openxmlformats.org/markup-compatibility/2006"
	nsW14 = "http://schemas.microsoft.com/office/word/2010/wordml"
	nsW15 = "http://schemas.microsoft.com/office/word/2012/wordml"
	nsWPS = "http://schemas.microsoft.com/office/word/2010/wordprocessingShape"
	nsWPG = "http://schemas.microsoft.com/office/word/2010/wordprocessingGroup"
	nsA14 = "http://schemas.microsoft.com/office/drawing/2010/main"
	nsV   = "urn:schemas-microsoft-com:vml"
	nsO   = "urn:schemas-microsoft-com:office:office"
	nsW10 = "urn:schemas-microsoft-com:office:word"
	nsXML = "http://www.w3.org/XML/1998/namespace"

	nsPkgRel      = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentType = "http://schemas.openxmlformats.org/package/2006/content-types"

	relTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	relTypeHeader         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	relTypeFooter         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
)

func rootAttrs() []xml.Attr {
	return []xml.Attr{
		{Name: xml.Name{Local: "xmlns:w"}, Value: nsW},
		{Name: xml.Name{Local: "xmlns:r"}, Value: nsR},
		{Name: xml.Name{Local: "xmlns:wp"}, Value: nsWP},
		{Name: xml.Name{Local: "xmlns:a"}, Value: nsA},
		{Name: xml.Name{Local: "xmlns:pic"}, Value: nsPic},
		{Name: xml.Name{Local: "xmlns:mc"}, Value: nsMC},
		{Name: xml.Name{Local: "xmlns:w14"}, Value: nsW14},
		{Name: xml.Name{Local: "xmlns:w15"}, Value: nsW15},
		{Name: xml.Name{Local: "xmlns:wps"}, Value: nsWPS},
		{Name: xml.Name{Local: "xmlns:wpg"}, Value: nsWPG},
		{Name: xml.Name{Local: "xmlns:a14"}, Value: nsA14},
		{Name: xml.Name{Local: "xmlns:v"}, Value: nsV},
		{Name: xml.Name{Local: "xmlns:o"}, Value: nsO},
		{Name: xml.Name{Local: "xmlns:w10"}, Value: nsW10},
		{Name: xml.Name{Local: "mc:Ignorable"}, Value: "w14 w15"},
	}
}

// BlockItem is a block-level element in a body or table cell: *Paragraph,
// *Table or *RawXML.
type BlockItem interface {
	blockItem()
}

func (*Paragraph) blockItem() {}
func (*Table) blockItem()     {}

// ParagraphItem is an inline child of a paragraph: *Run, *Hyperlink or
// *RawXML.
type ParagraphItem interface {
	paragraphItem()
}

func (*Run) paragraphItem()       {}
func (*Hyperlink) paragraphItem() {}

// RunItem is a child of a run: *Text, *Break, *TabChar, *FieldChar,
// *InstrText, *Drawing or *RawXML.
type RunItem interface {
	runItem()
}

func (*Text) runItem()      {}
func (*Break) runItem()     {}
func (*TabChar) runItem()   {}
func (*FieldChar) runItem() {}
func (*InstrText) runItem() {}
func (*Drawing) runItem()   {}

// body is the ordered content of word/document.xml.
type body struct {
	Items  []BlockItem
	SectPr *SectPr
}

func (b *body) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: "w:body"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, item := range b.Items {
		if err := e.Encode(item); err != nil {
			return err
		}
	}
	if b.SectPr != nil {
		if err := e.Encode(b.SectPr); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// docRoot is the w:document element. Raw keeps w:background and any other
// unmodeled children ahead of the body.
type docRoot struct {
	Raw  []*RawXML
	Body *body
}

func (r *docRoot) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: "w:document"}, Attr: rootAttrs()}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, raw := range r.Raw {
		if err := e.Encode(raw); err != nil {
			return err
		}
	}
	if err := e.Encode(r.Body); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Paragraph is a w:p element.
type Paragraph struct {
	Props    *ParagraphProps
	Children []ParagraphItem
}

func (p *Paragraph) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: "w:p"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.Props != nil {
		if err := e.Encode(p.Props); err != nil {
			return err
		}
	}
	for _, c := range p.Children {
		if err := e.Encode(c); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// ParagraphProps is w:pPr. Field order follows the CT_PPr schema sequence;
// Raw sits after w:pStyle because numbering, borders and the other unmodeled
// properties appear in that span.
type ParagraphProps struct {
	XMLName  xml.Name `xml:"w:pPr"`
	Style    *ValAttr `xml:"w:pStyle,omitempty"`
	Raw      []*RawXML
	Spacing  *Spacing  `xml:"w:spacing,omitempty"`
	Indent   *Indent   `xml:"w:ind,omitempty"`
	Jc       *ValAttr  `xml:"w:jc,omitempty"`
	RunProps *RunProps `xml:"w:rPr,omitempty"`
	SectPr   *SectPr   `xml:"w:sectPr,omitempty"`
}

// ValAttr is any element whose only payload is a w:val attribute
// (w:pStyle, w:jc, w:name, w:basedOn, ...).
type ValAttr struct {
	Val string `xml:"w:val,attr"`
}

// Spacing is w:spacing. Before/After are twips; Line is 240ths of a line
// when LineRule is "auto" and twips otherwise.
type Spacing struct {
	Before   string `xml:"w:before,attr,omitempty"`
	After    string `xml:"w:after,attr,omitempty"`
	Line     string `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

// Indent is w:ind, values in twips.
type Indent struct {
	Left      string `xml:"w:left,attr,omitempty"`
	Right     string `xml:"w:right,attr,omitempty"`
	FirstLine string `xml:"w:firstLine,attr,omitempty"`
}

// Run is a w:r element.
type Run struct {
	Props *RunProps
	Items []RunItem
}

func (r *Run) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: "w:r"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if r.Props != nil {
		if err := e.Encode(r.Props); err != nil {
			return err
		}
	}
	for _, item := range r.Items {
		if err := e.Encode(item); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// RunProps is w:rPr. Field order follows the CT_RPr schema sequence.
type RunProps struct {
	XMLName   xml.Name `xml:"w:rPr"`
	Fonts     *Fonts   `xml:"w:rFonts,omitempty"`
	Bold      *OnOff   `xml:"w:b,omitempty"`
	Italic    *OnOff   `xml:"w:i,omitempty"`
	Color     *Color   `xml:"w:color,omitempty"`
	Size      *ValAttr `xml:"w:sz,omitempty"`
	Highlight *ValAttr `xml:"w:highlight,omitempty"`
	Underline *ValAttr `xml:"w:u,omitempty"`
	Shade     *Shade   `xml:"w:shd,omitempty"`
	Raw       []*RawXML
}

// Fonts is w:rFonts. EastAsia is set alongside ASCII so CJK text picks up
// the same face.
type Fonts struct {
	ASCII    string `xml:"w:ascii,attr,omitempty"`
	HAnsi    string `xml:"w:hAnsi,attr,omitempty"`
	EastAsia string `xml:"w:eastAsia,attr,omitempty"`
}

// OnOff is a boolean property element such as w:b or w:i. An empty Val
// means "on".
type OnOff struct {
	Val string `xml:"w:val,attr,omitempty"`
}

// IsOn reports whether the property is present and not explicitly disabled.
func (o *OnOff) IsOn() bool {
	if o == nil {
		return false
	}
	return o.Val != "0" && o.Val != "false" && o.Val != "none"
}

// Color is w:color with a hex RGB value.
type Color struct {
	Val string `xml:"w:val,attr"`
}

// Shade is w:shd, used for run highlight fills.
type Shade struct {
	Val  string `xml:"w:val,attr"`
	Fill string `xml:"w:fill,attr,omitempty"`
}

// Text is a w:t element.
type Text struct {
	Value string
}

func (t *Text) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: "w:t"}}
	if t.Value != strings.TrimSpace(t.Value) {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xml:space"}, Value: "preserve"})
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.CharData(t.Value)); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Break is w:br. Type "page" produces a page break.
type Break struct {
	XMLName xml.Name `xml:"w:br"`
	Type    string   `xml:"w:type,attr,omitempty"`
}

// TabChar is w:tab inside a run.
type TabChar struct {
	XMLName xml.Name `xml:"w:tab"`
}

// FieldChar is w:fldChar; Type is begin, separate or end.
type FieldChar struct {
	XMLName xml.Name `xml:"w:fldChar"`
	Type    string   `xml:"w:fldCharType,attr"`
}

// InstrText is w:instrText, the instruction of a complex field.
type InstrText struct {
	Value string
}

func (t *InstrText) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "w:instrText"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xml:space"}, Value: "preserve"}},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.CharData(t.Value)); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Hyperlink is w:hyperlink. The relationship target is left untouched;
// only the visible runs are editable.
type Hyperlink struct {
	RelID string
	Runs  []*Run
	Raw   []*RawXML
}

func (h *Hyperlink) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: "w:hyperlink"}}
	if h.RelID != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "r:id"}, Value: h.RelID})
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, r := range h.Runs {
		if err := e.Encode(r); err != nil {
			return err
		}
	}
	for _, raw := range h.Raw {
		if err := e.Encode(raw); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Table is w:tbl.
type Table struct {
	XMLName xml.Name    `xml:"w:tbl"`
	Props   *TableProps `xml:"w:tblPr,omitempty"`
	Grid    *TableGrid  `xml:"w:tblGrid,omitempty"`
	Raw     []*RawXML
	Rows    []*TableRow `xml:"w:tr"`
}

// TableProps is w:tblPr.
type TableProps struct {
	XMLName xml.Name      `xml:"w:tblPr"`
	Style   *ValAttr      `xml:"w:tblStyle,omitempty"`
	Width   *TableWidth   `xml:"w:tblW,omitempty"`
	Borders *TableBorders `xml:"w:tblBorders,omitempty"`
	Raw     []*RawXML
}

// TableWidth is w:tblW or w:tcW.
type TableWidth struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

// TableBorders is w:tblBorders.
type TableBorders struct {
	XMLName xml.Name    `xml:"w:tblBorders"`
	Top     *BorderEdge `xml:"w:top,omitempty"`
	Left    *BorderEdge `xml:"w:left,omitempty"`
	Bottom  *BorderEdge `xml:"w:bottom,omitempty"`
	Right   *BorderEdge `xml:"w:right,omitempty"`
	InsideH *BorderEdge `xml:"w:insideH,omitempty"`
	InsideV *BorderEdge `xml:"w:insideV,omitempty"`
}

// BorderEdge is one border element; Sz is in eighths of a point.
type BorderEdge struct {
	Val   string `xml:"w:val,attr"`
	Sz    string `xml:"w:sz,attr,omitempty"`
	Space string `xml:"w:space,attr,omitempty"`
	Color string `xml:"w:color,attr,omitempty"`
}

// TableGrid is w:tblGrid.
type TableGrid struct {
	XMLName xml.Name   `xml:"w:tblGrid"`
	Cols    []*GridCol `xml:"w:gridCol"`
}

// GridCol is w:gridCol, width in twips.
type GridCol struct {
	W string `xml:"w:w,attr,omitempty"`
}

// TableRow is w:tr. Raw holds w:trPr and any other unmodeled row children,
// re-emitted ahead of the cells.
type TableRow struct {
	Raw   []*RawXML
	Cells []*TableCell
}

func (r *TableRow) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: "w:tr"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, raw := range r.Raw {
		if err := e.Encode(raw); err != nil {
			return err
		}
	}
	for _, c := range r.Cells {
		if err := e.Encode(c); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableCell is w:tc. A cell always contains at least one paragraph.
type TableCell struct {
	Props  *TableCellProps
	Blocks []BlockItem
}

func (c *TableCell) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: "w:tc"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if c.Props != nil {
		if err := e.Encode(c.Props); err != nil {
			return err
		}
	}
	blocks := c.Blocks
	if len(blocks) == 0 {
		blocks = []BlockItem{&Paragraph{}}
	}
	for _, b := range blocks {
		if err := e.Encode(b); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableCellProps is w:tcPr. Raw carries w:gridSpan, w:vMerge and other
// unmodeled cell properties.
type TableCellProps struct {
	XMLName xml.Name    `xml:"w:tcPr"`
	Width   *TableWidth `xml:"w:tcW,omitempty"`
	Raw     []*RawXML
	Shade   *Shade `xml:"w:shd,omitempty"`
}

// SectPr is w:sectPr: page geometry plus header/footer references for one
// section.
type SectPr struct {
	XMLName    xml.Name     `xml:"w:sectPr"`
	HeaderRefs []*HFRef     `xml:"w:headerReference,omitempty"`
	FooterRefs []*HFRef     `xml:"w:footerReference,omitempty"`
	PageSize   *PageSize    `xml:"w:pgSz,omitempty"`
	Margins    *PageMargins `xml:"w:pgMar,omitempty"`
	Raw        []*RawXML
}

// HFRef is w:headerReference / w:footerReference.
type HFRef struct {
	Type  string `xml:"w:type,attr"`
	RelID string `xml:"r:id,attr"`
}

// PageSize is w:pgSz, dimensions in twips.
type PageSize struct {
	W      string `xml:"w:w,attr,omitempty"`
	H      string `xml:"w:h,attr,omitempty"`
	Orient string `xml:"w:orient,attr,omitempty"`
}

// PageMargins is w:pgMar, values in twips.
type PageMargins struct {
	Top    string `xml:"w:top,attr,omitempty"`
	Right  string `xml:"w:right,attr,omitempty"`
	Bottom string `xml:"w:bottom,attr,omitempty"`
	Left   string `xml:"w:left,attr,omitempty"`
	Header string `xml:"w:header,attr,omitempty"`
	Footer string `xml:"w:footer,attr,omitempty"`
	Gutter string `xml:"w:gutter,attr,omitempty"`
}

// HeaderFooter is the w:hdr or w:ftr root of a header/footer part. Raw holds
// non-paragraph children such as tables.
type HeaderFooter struct {
	tag        string // "w:hdr" or "w:ftr"
	Paragraphs []*Paragraph
	Raw        []*RawXML
}

func (h *HeaderFooter) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: h.tag}, Attr: rootAttrs()}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	paras := h.Paragraphs
	if len(paras) == 0 && len(h.Raw) == 0 {
		paras = []*Paragraph{{}}
	}
	for _, p := range paras {
		if err := e.Encode(p); err != nil {
			return err
		}
	}
	for _, raw := range h.Raw {
		if err := e.Encode(raw); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Styles is the w:styles root of word/styles.xml. Raw keeps w:latentStyles
// and any other unmodeled children between the defaults and the styles.
type Styles struct {
	DocDefaults *DocDefaults
	Raw         []*RawXML
	Items       []*Style
}

func (s *Styles) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: "w:styles"}, Attr: rootAttrs()}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if s.DocDefaults != nil {
		if err := e.Encode(s.DocDefaults); err != nil {
			return err
		}
	}
	for _, raw := range s.Raw {
		if err := e.Encode(raw); err != nil {
			return err
		}
	}
	for _, st := range s.Items {
		if err := e.Encode(st); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// DocDefaults is w:docDefaults.
type DocDefaults struct {
	XMLName    xml.Name    `xml:"w:docDefaults"`
	RunDefault *RPrDefault `xml:"w:rPrDefault,omitempty"`
	ParDefault *PPrDefault `xml:"w:pPrDefault,omitempty"`
}

// RPrDefault wraps the default run properties.
type RPrDefault struct {
	XMLName  xml.Name  `xml:"w:rPrDefault"`
	RunProps *RunProps `xml:"w:rPr,omitempty"`
}

// PPrDefault wraps the default paragraph properties.
type PPrDefault struct {
	XMLName   xml.Name        `xml:"w:pPrDefault"`
	ParaProps *ParagraphProps `xml:"w:pPr,omitempty"`
}

// Style is one w:style definition.
type Style struct {
	XMLName   xml.Name `xml:"w:style"`
	Type      string   `xml:"w:type,attr,omitempty"`
	StyleID   string   `xml:"w:styleId,attr,omitempty"`
	Default   string   `xml:"w:default,attr,omitempty"`
	Name      *ValAttr `xml:"w:name,omitempty"`
	BasedOn   *ValAttr `xml:"w:basedOn,omitempty"`
	QFormat   *OnOff   `xml:"w:qFormat,omitempty"`
	Raw       []*RawXML
	ParaProps *ParagraphProps `xml:"w:pPr,omitempty"`
	RunProps  *RunProps       `xml:"w:rPr,omitempty"`
}

// NameVal returns the style's display name.
func (s *Style) NameVal() string {
	if s.Name == nil {
		return s.StyleID
	}
	return s.Name.Val
}

// Relationships models a .rels part. These parts use a default namespace,
// so plain struct tags round-trip them.
type Relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	Xmlns   string         `xml:"xmlns,attr"`
	Items   []Relationship `xml:"Relationship"`
}

// Relationship is one relationship entry.
type Relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// ContentTypes models [Content_Types].xml.
type ContentTypes struct {
	XMLName   xml.Name     `xml:"Types"`
	Xmlns     string       `xml:"xmlns,attr"`
	Defaults  []CTDefault  `xml:"Default"`
	Overrides []CTOverride `xml:"Override"`
}

// CTDefault maps a file extension to a content type.
type CTDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// CTOverride maps a part name to a content type.
type CTOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}
