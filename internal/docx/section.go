package docx

import (
	"fmt"
	"strconv"
	"strings"
)

// Section is one w:sectPr in document order. Intermediate sections live on
// the last paragraph of the section; the final section lives on the body.
type Section struct {
	pr *SectPr
}

// Sections returns all sections in document order. Every document has at
// least one (the body-level sectPr); documents saved without one get an
// empty final section created on first access.
func (d *Document) Sections() []*Section {
	var out []*Section
	for _, item := range d.root.Body.Items {
		p, ok := item.(*Paragraph)
		if !ok || p.Props == nil || p.Props.SectPr == nil {
			continue
		}
		out = append(out, &Section{pr: p.Props.SectPr})
	}
	if d.root.Body.SectPr == nil {
		d.root.Body.SectPr = &SectPr{}
	}
	out = append(out, &Section{pr: d.root.Body.SectPr})
	return out
}

// Orientation returns "portrait" or "landscape".
func (s *Section) Orientation() string {
	if s.pr.PageSize != nil && s.pr.PageSize.Orient == "landscape" {
		return "landscape"
	}
	return "portrait"
}

// SetOrientation flips the page between portrait and landscape, swapping
// width and height when the current geometry does not match.
func (s *Section) SetOrientation(orient string) error {
	if orient != "portrait" && orient != "landscape" {
		return fmt.Errorf("unknown orientation %q (want portrait or landscape)", orient)
	}
	if s.pr.PageSize == nil {
		s.pr.PageSize = &PageSize{W: "12240", H: "15840"}
	}
	ps := s.pr.PageSize
	w, _ := strconv.Atoi(ps.W)
	h, _ := strconv.Atoi(ps.H)
	if (orient == "landscape") != (w > h) && w != 0 && h != 0 {
		ps.W, ps.H = ps.H, ps.W
	}
	if orient == "landscape" {
		ps.Orient = "landscape"
	} else {
		ps.Orient = ""
	}
	return nil
}

// SetPageSize sets the page dimensions in centimetres.
func (s *Section) SetPageSize(widthCm, heightCm float64) {
	if s.pr.PageSize == nil {
		s.pr.PageSize = &PageSize{}
	}
	s.pr.PageSize.W = itoa(CmToTwips(widthCm))
	s.pr.PageSize.H = itoa(CmToTwips(heightCm))
}

func (s *Section) margins() *PageMargins {
	if s.pr.Margins == nil {
		s.pr.Margins = &PageMargins{}
	}
	return s.pr.Margins
}

// SetMarginCm sets one margin by side name ("top", "bottom", "left",
// "right", "header", "footer") in centimetres.
func (s *Section) SetMarginCm(side string, cm float64) error {
	m := s.margins()
	v := itoa(CmToTwips(cm))
	switch side {
	case "top":
		m.Top = v
	case "bottom":
		m.Bottom = v
	case "left":
		m.Left = v
	case "right":
		m.Right = v
	case "header":
		m.Header = v
	case "footer":
		m.Footer = v
	default:
		return fmt.Errorf("unknown margin side %q", side)
	}
	return nil
}

func (d *Document) nextHFPartName(prefix string) string {
	n := 1
	for {
		name := fmt.Sprintf("word/%s%d.xml", prefix, n)
		if _, ok := d.parts[name]; !ok {
			return name
		}
		n++
	}
}

func (s *Section) hfRef(refs []*HFRef, hfType string) *HFRef {
	for _, r := range refs {
		if r.Type == hfType {
			return r
		}
	}
	return nil
}

// EnsureHeader returns the header of the given type ("default", "first",
// "even") for the section, creating the part, relationship and content type
// override when absent.
func (d *Document) EnsureHeader(s *Section, hfType string) *HeaderFooter {
	if ref := s.hfRef(s.pr.HeaderRefs, hfType); ref != nil {
		target := d.relTarget(ref.RelID)
		if hf, ok := d.headers["word/"+target]; ok {
			return hf
		}
	}
	partName := d.nextHFPartName("header")
	target := strings.TrimPrefix(partName, "word/")
	relID := d.addRelationship(relTypeHeader, target)
	hf := &HeaderFooter{tag: "w:hdr"}
	d.headers[partName] = hf
	d.parts[partName] = nil // serialized on save
	d.addOverrideContentType("/"+partName, "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml")
	s.pr.HeaderRefs = append(s.pr.HeaderRefs, &HFRef{Type: hfType, RelID: relID})
	return hf
}

// EnsureFooter is the footer counterpart of EnsureHeader.
func (d *Document) EnsureFooter(s *Section, hfType string) *HeaderFooter {
	if ref := s.hfRef(s.pr.FooterRefs, hfType); ref != nil {
		target := d.relTarget(ref.RelID)
		if hf, ok := d.footers["word/"+target]; ok {
			return hf
		}
	}
	partName := d.nextHFPartName("footer")
	target := strings.TrimPrefix(partName, "word/")
	relID := d.addRelationship(relTypeFooter, target)
	hf := &HeaderFooter{tag: "w:ftr"}
	d.footers[partName] = hf
	d.parts[partName] = nil
	d.addOverrideContentType("/"+partName, "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml")
	s.pr.FooterRefs = append(s.pr.FooterRefs, &HFRef{Type: hfType, RelID: relID})
	return hf
}

// SetText replaces the header or footer content with a single styled
// paragraph. styleID is "Header" or "Footer"; alignment uses the user-facing
// names.
func (h *HeaderFooter) SetText(text, styleID, alignment string) error {
	p := &Paragraph{}
	p.SetStyleID(styleID)
	if alignment != "" {
		if err := p.SetAlignment(alignment); err != nil {
			return err
		}
	}
	if text != "" {
		p.AddRun(text)
	}
	h.Paragraphs = []*Paragraph{p}
	return nil
}

// AddPageNumberField appends a centred paragraph carrying a PAGE field, the
// construct word processors use for self-updating page numbers.
func (h *HeaderFooter) AddPageNumberField(styleID string) {
	p := &Paragraph{}
	p.SetStyleID(styleID)
	p.SetAlignment("center")
	p.Children = append(p.Children,
		&Run{Items: []RunItem{&FieldChar{Type: "begin"}}},
		&Run{Items: []RunItem{&InstrText{Value: " PAGE "}}},
		&Run{Items: []RunItem{&FieldChar{Type: "separate"}}},
		&Run{Items: []RunItem{&Text{Value: "1"}}},
		&Run{Items: []RunItem{&FieldChar{Type: "end"}}},
	)
	h.Paragraphs = append(h.Paragraphs, p)
}
