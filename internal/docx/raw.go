package docx

import "encoding/xml"

// nsPrefix maps namespace URIs back to the prefixes the part roots declare.
// The decoder resolves prefixes to URIs while reading; raw passthrough nodes
// need the prefixed form restored before re-encoding.
var nsPrefix = map[string]string{
	nsW:   "w",
	nsR:   "r",
	nsWP:  "wp",
	nsA:   "a",
	nsPic: "pic",
	nsMC:  "mc",
	nsW14: "w14",
	nsW15: "w15",
	nsWPS: "wps",
	nsWPG: "wpg",
	nsA14: "a14",
	nsV:   "v",
	nsO:   "o",
	nsW10: "w10",
	nsXML: "xml",
	"xml": "xml",
}

// RawXML preserves an element this package does not model, together with its
// whole subtree: list numbering, bookmarks, content controls, comment
// anchors and so on. Parsing keeps them in place so a save re-emits them
// unchanged.
type RawXML struct {
	Tokens []xml.Token
}

func (*RawXML) blockItem()     {}
func (*RawXML) paragraphItem() {}
func (*RawXML) runItem()       {}

func (r *RawXML) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	for _, t := range r.Tokens {
		if err := e.EncodeToken(t); err != nil {
			return err
		}
	}
	return nil
}

// captureRaw consumes the element opened by start, nested content included,
// and returns it as a RawXML node ready for re-encoding.
func captureRaw(d *xml.Decoder, start xml.StartElement) (*RawXML, error) {
	raw := &RawXML{Tokens: []xml.Token{rawStart(start)}}
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			raw.Tokens = append(raw.Tokens, rawStart(t))
		case xml.EndElement:
			depth--
			raw.Tokens = append(raw.Tokens, xml.EndElement{Name: xml.Name{Local: prefixedName(t.Name)}})
		case xml.CharData:
			raw.Tokens = append(raw.Tokens, xml.CharData(append([]byte(nil), t...)))
		}
	}
	return raw, nil
}

// rawStart rebuilds a start element with literal prefixed names. An element
// in a namespace without a known prefix keeps its local name and gets a
// default xmlns declaration instead.
func rawStart(t xml.StartElement) xml.StartElement {
	out := xml.StartElement{Name: xml.Name{Local: prefixedName(t.Name)}}
	if t.Name.Space != "" {
		if _, ok := nsPrefix[t.Name.Space]; !ok {
			out.Attr = append(out.Attr, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: t.Name.Space})
		}
	}
	for _, a := range t.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		out.Attr = append(out.Attr, xml.Attr{Name: xml.Name{Local: prefixedName(a.Name)}, Value: a.Value})
	}
	return out
}

func prefixedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if p, ok := nsPrefix[n.Space]; ok {
		return p + ":" + n.Local
	}
	return n.Local
}
