package docedit

import (
	"fmt"
	"strings"

	"github.com/dgallion1/wordsmith/internal/docx"
)

// Describe renders the document as a numbered listing: each paragraph with
// its flat index and style, each table with its dimensions, followed by
// totals. This is what a caller works from when choosing indices for
// follow-up edits.
func Describe(doc *docx.Document) string {
	var sb strings.Builder
	paraIdx := 0
	tableIdx := 0
	for _, item := range doc.BodyItems() {
		switch v := item.(type) {
		case *docx.Paragraph:
			line := v.Text()
			if style := v.StyleID(); style != "" && style != "Normal" {
				fmt.Fprintf(&sb, "[%d] (%s) %s\n", paraIdx, style, line)
			} else {
				fmt.Fprintf(&sb, "[%d] %s\n", paraIdx, line)
			}
			paraIdx++
		case *docx.Table:
			rows, cols := v.Dims()
			fmt.Fprintf(&sb, "[table %d] %d rows x %d columns\n", tableIdx, rows, cols)
			for _, row := range v.Rows {
				cells := make([]string, len(row.Cells))
				for i, c := range row.Cells {
					cells[i] = c.Text()
				}
				fmt.Fprintf(&sb, "    | %s |\n", strings.Join(cells, " | "))
			}
			tableIdx++
		}
	}
	fmt.Fprintf(&sb, "---\n%d paragraphs, %d tables, %d sections\n",
		paraIdx, tableIdx, len(doc.Sections()))
	return sb.String()
}
