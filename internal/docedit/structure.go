package docedit

import (
	"fmt"

	"github.com/dgallion1/wordsmith/internal/docx"
)

// ContentElement is one typed descriptor in a structural assembly pass.
// Fields beyond Type are meaningful per type:
//
//	heading    — Text, Level (1..6)
//	paragraph  — Text, Style, Alignment, Format
//	table      — Rows, Cols, Data, Style
//	list       — Items, Ordered
//	image      — Path, WidthCm, HeightCm
//	page_break — nothing
type ContentElement struct {
	Type       string
	Text       string
	Level      int
	Style      string
	Alignment  string
	Format     FormatOptions
	Rows       int
	Cols       int
	Data       [][]string
	TableStyle string
	Items      []string
	Ordered    bool
	Path       string
	WidthCm    float64
	HeightCm   float64
}

// BuildStructure appends the elements to the document in array order,
// optionally clearing existing content first. Clearing removes paragraphs
// and tables but keeps section geometry: paragraphs carrying section
// properties survive the clear. Elements with an unknown type are skipped
// and counted, not failed; elements that fail their own validation are
// recorded and do not abort the rest.
func BuildStructure(doc *docx.Document, elements []ContentElement, clearExisting bool) (*BatchResult, int) {
	if clearExisting {
		clearBody(doc)
	}
	res := &BatchResult{}
	skipped := 0
	for i, el := range elements {
		switch el.Type {
		case "heading":
			res.record(i, addHeading(doc, el))
		case "paragraph":
			res.record(i, addFormattedParagraph(doc, ParagraphSpec{
				Text: el.Text, Style: el.Style, Alignment: el.Alignment, Format: el.Format,
			}))
		case "table":
			res.record(i, InsertTable(doc, el.Rows, el.Cols, AppendSentinel, el.Data, el.TableStyle))
		case "list":
			res.record(i, addList(doc, el.Items, el.Ordered))
		case "image":
			res.record(i, InsertImage(doc, el.Path, el.WidthCm, el.HeightCm, AppendSentinel))
		case "page_break":
			addPageBreak(doc)
			res.record(i, nil)
		default:
			skipped++
		}
	}
	return res, skipped
}

func clearBody(doc *docx.Document) {
	var kept []docx.BlockItem
	for _, item := range doc.BodyItems() {
		if p, ok := item.(*docx.Paragraph); ok && p.Props != nil && p.Props.SectPr != nil {
			kept = append(kept, p)
		}
	}
	doc.SetBodyItems(kept)
}

func addHeading(doc *docx.Document, el ContentElement) error {
	level := el.Level
	if level < 1 || level > 6 {
		return errf(KindInvalidParameter, "heading level %d out of range 1..6", level)
	}
	return AddParagraph(doc, el.Text, fmt.Sprintf("Heading %d", level), el.Alignment)
}

func addList(doc *docx.Document, items []string, ordered bool) error {
	style := "List Bullet"
	if ordered {
		style = "List Number"
	}
	for n, item := range items {
		text := item
		if ordered {
			text = fmt.Sprintf("%d. %s", n+1, item)
		}
		if err := AddParagraph(doc, text, style, ""); err != nil {
			return err
		}
	}
	return nil
}

func addPageBreak(doc *docx.Document) {
	p := &docx.Paragraph{}
	p.Children = append(p.Children, &docx.Run{
		Items: []docx.RunItem{&docx.Break{Type: "page"}},
	})
	doc.AddBlock(p)
}
