package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Document is an open .docx container. It is loaded fully into memory,
// mutated, and written back as a whole; there is no incremental update.
// Parts this package does not model (docProps, themes, fontTable, ...)
// are carried through byte for byte. Within the parsed parts, elements the
// model does not cover (numbering references, bookmarks, content controls,
// ...) ride along as RawXML nodes and are re-emitted on save.
type Document struct {
	path  string
	parts map[string][]byte

	root   *docRoot
	styles *Styles
	rels   *Relationships
	ctypes *ContentTypes

	headers map[string]*HeaderFooter // part name -> parsed content
	footers map[string]*HeaderFooter

	drawingSeq int
}

// Open reads and parses a .docx file.
func Open(path string) (*Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer zr.Close()

	d := &Document{
		path:    path,
		parts:   make(map[string][]byte),
		headers: make(map[string]*HeaderFooter),
		footers: make(map[string]*HeaderFooter),
	}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read part %s: %w", f.Name, err)
		}
		d.parts[f.Name] = data
	}

	docXML, ok := d.parts["word/document.xml"]
	if !ok {
		return nil, fmt.Errorf("%s: not a wordprocessing document (no word/document.xml)", path)
	}
	if d.root, err = parseDocumentXML(docXML); err != nil {
		return nil, fmt.Errorf("parse word/document.xml: %w", err)
	}

	if data, ok := d.parts["word/styles.xml"]; ok {
		if d.styles, err = parseStylesXML(data); err != nil {
			return nil, fmt.Errorf("parse word/styles.xml: %w", err)
		}
	} else {
		d.styles = defaultStyles()
	}

	if data, ok := d.parts["word/_rels/document.xml.rels"]; ok {
		rels := &Relationships{}
		if err := xml.Unmarshal(data, rels); err != nil {
			return nil, fmt.Errorf("parse document rels: %w", err)
		}
		rels.Xmlns = nsPkgRel
		d.rels = rels
	} else {
		d.rels = &Relationships{Xmlns: nsPkgRel}
	}

	if data, ok := d.parts["[Content_Types].xml"]; ok {
		ct := &ContentTypes{}
		if err := xml.Unmarshal(data, ct); err != nil {
			return nil, fmt.Errorf("parse content types: %w", err)
		}
		ct.Xmlns = nsContentType
		d.ctypes = ct
	} else {
		d.ctypes = defaultContentTypes()
	}

	for _, rel := range d.rels.Items {
		part := "word/" + rel.Target
		data, ok := d.parts[part]
		if !ok {
			continue
		}
		switch rel.Type {
		case relTypeHeader:
			hf, err := parseHeaderFooterXML(data)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", part, err)
			}
			d.headers[part] = hf
		case relTypeFooter:
			hf, err := parseHeaderFooterXML(data)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", part, err)
			}
			d.footers[part] = hf
		}
	}

	d.drawingSeq = d.maxDrawingID()
	return d, nil
}

// New builds an empty document with the built-in style set and Letter page
// geometry, matching what a fresh word processor document carries.
func New() *Document {
	d := &Document{
		parts:   make(map[string][]byte),
		headers: make(map[string]*HeaderFooter),
		footers: make(map[string]*HeaderFooter),
		styles:  defaultStyles(),
		ctypes:  defaultContentTypes(),
		rels: &Relationships{
			Xmlns: nsPkgRel,
			Items: []Relationship{
				{ID: "rId1", Type: relTypeStyles, Target: "styles.xml"},
			},
		},
		root: &docRoot{Body: &body{
			SectPr: defaultSectPr(),
		}},
	}
	d.parts["_rels/.rels"] = []byte(xmlHeader +
		`<Relationships xmlns="` + nsPkgRel + `">` +
		`<Relationship Id="rId1" Type="` + relTypeOfficeDocument + `" Target="word/document.xml"></Relationship>` +
		`</Relationships>`)
	return d
}

// Path returns the file path the document was opened from, if any.
func (d *Document) Path() string { return d.path }

// Styles exposes the style table.
func (d *Document) Styles() *Styles { return d.styles }

// SaveAs serializes the document to the given path.
func (d *Document) SaveAs(path string) error {
	d.parts["word/document.xml"] = serializeXML(d.root)
	d.parts["word/styles.xml"] = serializeXML(d.styles)
	d.parts["word/_rels/document.xml.rels"] = serializeXML(d.rels)
	d.parts["[Content_Types].xml"] = serializeXML(d.ctypes)
	for name, hf := range d.headers {
		d.parts[name] = serializeXML(hf)
	}
	for name, hf := range d.footers {
		d.parts[name] = serializeXML(hf)
	}

	names := make([]string, 0, len(d.parts))
	for name := range d.parts {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("zip %s: %w", name, err)
		}
		if _, err := w.Write(d.parts[name]); err != nil {
			return fmt.Errorf("zip %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	d.path = path
	return nil
}

// Save writes the document back to the path it was opened from.
func (d *Document) Save() error {
	if d.path == "" {
		return fmt.Errorf("document has no path; use SaveAs")
	}
	return d.SaveAs(d.path)
}

func serializeXML(v any) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		// All marshalers here are infallible on well-formed trees; an error
		// indicates a programming bug.
		panic(fmt.Sprintf("docx: marshal %T: %v", v, err))
	}
	enc.Flush()
	return buf.Bytes()
}

// BodyItems returns the ordered block-level content of the body.
func (d *Document) BodyItems() []BlockItem { return d.root.Body.Items }

// SetBodyItems replaces the body content, preserving the body section
// properties.
func (d *Document) SetBodyItems(items []BlockItem) { d.root.Body.Items = items }

// Paragraphs returns the body-level paragraphs in document order. Table
// cell paragraphs are not included, matching the flat paragraph list the
// tool indices refer to.
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, item := range d.root.Body.Items {
		if p, ok := item.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the body-level tables in document order.
func (d *Document) Tables() []*Table {
	var out []*Table
	for _, item := range d.root.Body.Items {
		if t, ok := item.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// AddParagraph appends an empty paragraph to the body.
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{}
	d.root.Body.Items = append(d.root.Body.Items, p)
	return p
}

// AddBlock appends a block-level element to the body.
func (d *Document) AddBlock(item BlockItem) {
	d.root.Body.Items = append(d.root.Body.Items, item)
}

// paragraphItemPos maps a paragraph index to its position in the body item
// list. Returns -1 when the index is out of range.
func (d *Document) paragraphItemPos(paraIdx int) int {
	n := 0
	for i, item := range d.root.Body.Items {
		if _, ok := item.(*Paragraph); ok {
			if n == paraIdx {
				return i
			}
			n++
		}
	}
	return -1
}

// InsertBlockAfterParagraph inserts a block element immediately after the
// paragraph with the given index. Index -1 appends at the end of the body.
func (d *Document) InsertBlockAfterParagraph(paraIdx int, item BlockItem) error {
	if paraIdx == -1 {
		d.AddBlock(item)
		return nil
	}
	pos := d.paragraphItemPos(paraIdx)
	if pos < 0 {
		return fmt.Errorf("paragraph index %d out of range", paraIdx)
	}
	items := d.root.Body.Items
	items = append(items, nil)
	copy(items[pos+2:], items[pos+1:])
	items[pos+1] = item
	d.root.Body.Items = items
	return nil
}

// RemoveParagraph deletes the paragraph with the given index from the body.
func (d *Document) RemoveParagraph(paraIdx int) error {
	pos := d.paragraphItemPos(paraIdx)
	if pos < 0 {
		return fmt.Errorf("paragraph index %d out of range", paraIdx)
	}
	d.root.Body.Items = append(d.root.Body.Items[:pos], d.root.Body.Items[pos+1:]...)
	return nil
}

// PlainText flattens the document body to text: one line per paragraph,
// table cells joined by tabs.
func (d *Document) PlainText() string {
	var sb strings.Builder
	for _, item := range d.root.Body.Items {
		switch v := item.(type) {
		case *Paragraph:
			sb.WriteString(v.Text())
			sb.WriteByte('\n')
		case *Table:
			for _, row := range v.Rows {
				cells := make([]string, len(row.Cells))
				for i, c := range row.Cells {
					cells[i] = c.Text()
				}
				sb.WriteString(strings.Join(cells, "\t"))
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

// addRelationship registers a relationship on the main document part and
// returns its id.
func (d *Document) addRelationship(relType, target string) string {
	maxID := 0
	for _, r := range d.rels.Items {
		if n, err := strconv.Atoi(strings.TrimPrefix(r.ID, "rId")); err == nil && n > maxID {
			maxID = n
		}
	}
	id := "rId" + itoa(maxID+1)
	d.rels.Items = append(d.rels.Items, Relationship{ID: id, Type: relType, Target: target})
	return id
}

func (d *Document) relTarget(relID string) string {
	for _, r := range d.rels.Items {
		if r.ID == relID {
			return r.Target
		}
	}
	return ""
}

func (d *Document) ensureDefaultContentType(ext, ctype string) {
	for _, def := range d.ctypes.Defaults {
		if def.Extension == ext {
			return
		}
	}
	d.ctypes.Defaults = append(d.ctypes.Defaults, CTDefault{Extension: ext, ContentType: ctype})
}

func (d *Document) addOverrideContentType(partName, ctype string) {
	for _, ov := range d.ctypes.Overrides {
		if ov.PartName == partName {
			return
		}
	}
	d.ctypes.Overrides = append(d.ctypes.Overrides, CTOverride{PartName: partName, ContentType: ctype})
}

func (d *Document) maxDrawingID() int {
	max := 0
	var scanRun func(r *Run)
	scanRun = func(r *Run) {
		for _, item := range r.Items {
			if dr, ok := item.(*Drawing); ok && dr.DocID > max {
				max = dr.DocID
			}
		}
	}
	var scanBlocks func(items []BlockItem)
	scanBlocks = func(items []BlockItem) {
		for _, item := range items {
			switch v := item.(type) {
			case *Paragraph:
				for _, c := range v.Children {
					switch rc := c.(type) {
					case *Run:
						scanRun(rc)
					case *Hyperlink:
						for _, r := range rc.Runs {
							scanRun(r)
						}
					}
				}
			case *Table:
				for _, row := range v.Rows {
					for _, cell := range row.Cells {
						scanBlocks(cell.Blocks)
					}
				}
			}
		}
	}
	scanBlocks(d.root.Body.Items)
	return max
}
