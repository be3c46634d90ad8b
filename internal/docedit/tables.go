package docedit

import (
	"github.com/dgallion1/wordsmith/internal/docx"
)

// InsertTable inserts a rows x cols table after the paragraph at
// afterParagraph (AppendSentinel appends at the end of the body). data fills
// cells row by row; rows of data beyond the table's dimensions are ignored.
// styleName, when given, must name an existing table style.
func InsertTable(doc *docx.Document, rows, cols, afterParagraph int, data [][]string, styleName string) error {
	if rows < 1 || cols < 1 {
		return errf(KindInvalidParameter, "table needs at least 1 row and 1 column (got %dx%d)", rows, cols)
	}
	paras := doc.Paragraphs()
	if err := checkInsertIndex(afterParagraph, len(paras), "paragraph"); err != nil {
		return err
	}
	var styleID string
	if styleName != "" {
		st := doc.Styles().ByName(styleName)
		if st == nil {
			return errf(KindStyleNotFound, "table style %q not found in document", styleName)
		}
		styleID = st.StyleID
	}

	t := docx.NewTable(rows, cols)
	if styleID != "" {
		t.Props.Style = &docx.ValAttr{Val: styleID}
	}
	for r := 0; r < rows && r < len(data); r++ {
		for c := 0; c < cols && c < len(data[r]); c++ {
			cell, err := t.Cell(r, c)
			if err != nil {
				return wrapIO("fill table", err)
			}
			cell.SetText(data[r][c])
		}
	}
	if err := doc.InsertBlockAfterParagraph(afterParagraph, t); err != nil {
		return errf(KindRange, "%s", err.Error())
	}
	return nil
}

// EditTableCell replaces the text of one cell, addressed by table index then
// row and column.
func EditTableCell(doc *docx.Document, tableIdx, row, col int, text string) error {
	tables := doc.Tables()
	if err := checkIndex(tableIdx, len(tables), "table"); err != nil {
		return err
	}
	cell, err := tables[tableIdx].Cell(row, col)
	if err != nil {
		return errf(KindRange, "%s", err.Error())
	}
	cell.SetText(text)
	return nil
}
