package docedit

import (
	"strconv"

	"github.com/dgallion1/wordsmith/internal/docx"
)

// In-process approximations of decorations a desktop word processor builds
// with dedicated drawing objects. Each produces plain wordprocessingml that
// renders close enough without an automation backend.

// AddTextBox inserts a bordered single-cell table holding the given text, a
// faithful stand-in for a floating text box in flowed layout.
func AddTextBox(doc *docx.Document, text string, afterParagraph int, widthCm float64, opts FormatOptions) error {
	paras := doc.Paragraphs()
	if err := checkInsertIndex(afterParagraph, len(paras), "paragraph"); err != nil {
		return err
	}
	t := docx.NewTable(1, 1)
	if widthCm > 0 {
		w := docx.CmToTwips(widthCm)
		t.Props.Width = &docx.TableWidth{W: strconv.Itoa(w), Type: "dxa"}
		t.Grid.Cols[0].W = strconv.Itoa(w)
	}
	cell, err := t.Cell(0, 0)
	if err != nil {
		return wrapIO("build text box", err)
	}
	cell.SetText(text)
	for _, r := range cell.FirstParagraph().AllRuns() {
		if ferr := opts.applyTo(r); ferr != nil {
			return ferr
		}
	}
	if err := doc.InsertBlockAfterParagraph(afterParagraph, t); err != nil {
		return errf(KindRange, "%s", err.Error())
	}
	return nil
}

// AddDropCap enlarges the first letter of the paragraph into its own
// oversized bold run. sizePoints defaults to three lines of 12pt text.
func AddDropCap(doc *docx.Document, paraIdx int, sizePoints float64) error {
	paras := doc.Paragraphs()
	if err := checkIndex(paraIdx, len(paras), "paragraph"); err != nil {
		return err
	}
	p := paras[paraIdx]
	text := []rune(p.Text())
	if len(text) == 0 {
		return errf(KindInvalidParameter, "paragraph %d is empty, nothing to enlarge", paraIdx)
	}
	if sizePoints <= 0 {
		sizePoints = 36
	}

	var base *docx.RunProps
	if runs := p.AllRuns(); len(runs) > 0 {
		base = runs[0].Props
	}
	style := p.StyleID()
	alignment := p.Alignment()

	p.Children = nil
	lead := p.AddRun(string(text[:1]))
	lead.Props = base.Clone()
	lead.SetBold(true)
	lead.SetFontSize(sizePoints)
	if len(text) > 1 {
		rest := p.AddRun(string(text[1:]))
		rest.Props = base.Clone()
	}
	if style != "" {
		p.SetStyleID(style)
	}
	if alignment != "" {
		p.SetAlignment(alignment)
	}
	return nil
}

// AddWordArt appends a display paragraph: oversized, bold, colored text.
func AddWordArt(doc *docx.Document, text, color string, sizePoints float64, alignment string) error {
	if text == "" {
		return errf(KindInvalidParameter, "word art text must not be empty")
	}
	if sizePoints <= 0 {
		sizePoints = 48
	}
	if color == "" {
		color = "1F4E79"
	}
	if alignment == "" {
		alignment = "center"
	}
	p := &docx.Paragraph{}
	if err := p.SetAlignment(alignment); err != nil {
		return errf(KindInvalidParameter, "%s", err.Error())
	}
	r := p.AddRun(text)
	r.SetBold(true)
	r.SetFontSize(sizePoints)
	if err := r.SetColor(color); err != nil {
		return errf(KindInvalidParameter, "%s", err.Error())
	}
	doc.AddBlock(p)
	return nil
}

// AddCustomBullets appends one List Paragraph per item, each prefixed with
// the given bullet glyph. The glyph is literal text, not a numbering
// definition, so it displays identically everywhere.
func AddCustomBullets(doc *docx.Document, items []string, bullet string) error {
	if len(items) == 0 {
		return errf(KindInvalidParameter, "no list items supplied")
	}
	if bullet == "" {
		bullet = "•"
	}
	styleID := doc.Styles().StyleIDForName("List Paragraph")
	for _, item := range items {
		p := &docx.Paragraph{}
		p.AddRun(bullet + " " + item)
		p.SetStyleID(styleID)
		doc.AddBlock(p)
	}
	return nil
}
