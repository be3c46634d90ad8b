package docedit

import (
	"github.com/dgallion1/wordsmith/internal/docx"
)

// MergeDocuments appends the body content of each source document to dst in
// order, separated by page breaks. Text, basic run formatting and alignment
// carry over; paragraph styles carry over when dst has a style of the same
// id. Images, fields and section geometry of the sources do not.
func MergeDocuments(dst *docx.Document, sources []*docx.Document) error {
	for n, src := range sources {
		if n > 0 || len(dst.Paragraphs()) > 0 {
			addPageBreak(dst)
		}
		for _, item := range src.BodyItems() {
			switch v := item.(type) {
			case *docx.Paragraph:
				dst.AddBlock(copyParagraph(dst, v))
			case *docx.Table:
				dst.AddBlock(copyTable(v))
			}
		}
	}
	return nil
}

func copyParagraph(dst *docx.Document, src *docx.Paragraph) *docx.Paragraph {
	out := &docx.Paragraph{}
	if id := src.StyleID(); id != "" && dst.Styles().ByID(id) != nil {
		out.SetStyleID(id)
	}
	if a := src.Alignment(); a != "" {
		out.SetAlignment(a)
	}
	for _, r := range src.AllRuns() {
		text := r.Text()
		if text == "" {
			continue
		}
		nr := out.AddRun(text)
		nr.Props = r.Props.Clone()
	}
	return out
}

func copyTable(src *docx.Table) *docx.Table {
	rows, cols := src.Dims()
	if rows == 0 || cols == 0 {
		return docx.NewTable(1, 1)
	}
	out := docx.NewTable(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < len(src.Rows[r].Cells); c++ {
			srcCell := src.Rows[r].Cells[c]
			dstCell, err := out.Cell(r, c)
			if err != nil {
				continue
			}
			dstCell.SetText(srcCell.Text())
		}
	}
	return out
}
