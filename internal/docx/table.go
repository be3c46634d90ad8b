package docx

import "fmt"

// NewTable builds a rows x cols table with single borders and evenly split
// column widths, styled as Table Grid.
func NewTable(rows, cols int) *Table {
	edge := func() *BorderEdge { return &BorderEdge{Val: "single", Sz: "4", Space: "0", Color: "auto"} }
	t := &Table{
		Props: &TableProps{
			Style: &ValAttr{Val: "TableGrid"},
			Width: &TableWidth{W: "0", Type: "auto"},
			Borders: &TableBorders{
				Top: edge(), Left: edge(), Bottom: edge(), Right: edge(),
				InsideH: edge(), InsideV: edge(),
			},
		},
		Grid: &TableGrid{},
	}
	// 9360 twips of usable width on a Letter page with 1 inch margins.
	colWidth := 9360 / cols
	for c := 0; c < cols; c++ {
		t.Grid.Cols = append(t.Grid.Cols, &GridCol{W: itoa(colWidth)})
	}
	for r := 0; r < rows; r++ {
		row := &TableRow{}
		for c := 0; c < cols; c++ {
			row.Cells = append(row.Cells, &TableCell{
				Props:  &TableCellProps{Width: &TableWidth{W: itoa(colWidth), Type: "dxa"}},
				Blocks: []BlockItem{&Paragraph{}},
			})
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Dims returns the row count and the column count of the widest row.
func (t *Table) Dims() (rows, cols int) {
	rows = len(t.Rows)
	for _, r := range t.Rows {
		if len(r.Cells) > cols {
			cols = len(r.Cells)
		}
	}
	return rows, cols
}

// Cell returns the cell at (row, col), or an error when out of range.
func (t *Table) Cell(row, col int) (*TableCell, error) {
	if row < 0 || row >= len(t.Rows) {
		return nil, fmt.Errorf("row index %d out of range (table has %d rows)", row, len(t.Rows))
	}
	cells := t.Rows[row].Cells
	if col < 0 || col >= len(cells) {
		return nil, fmt.Errorf("column index %d out of range (row has %d cells)", col, len(cells))
	}
	return cells[col], nil
}

// Text returns the cell content flattened to text, paragraphs joined by
// newlines.
func (c *TableCell) Text() string {
	var out string
	first := true
	for _, b := range c.Blocks {
		p, ok := b.(*Paragraph)
		if !ok {
			continue
		}
		if !first {
			out += "\n"
		}
		out += p.Text()
		first = false
	}
	return out
}

// SetText replaces the cell content with a single paragraph carrying the
// given text. The first paragraph's properties are kept.
func (c *TableCell) SetText(text string) {
	var props *ParagraphProps
	for _, b := range c.Blocks {
		if p, ok := b.(*Paragraph); ok {
			props = p.Props
			break
		}
	}
	p := &Paragraph{Props: props}
	if text != "" {
		p.AddRun(text)
	}
	c.Blocks = []BlockItem{p}
}

// FirstParagraph returns the first paragraph in the cell, creating one when
// the cell is empty.
func (c *TableCell) FirstParagraph() *Paragraph {
	for _, b := range c.Blocks {
		if p, ok := b.(*Paragraph); ok {
			return p
		}
	}
	p := &Paragraph{}
	c.Blocks = append(c.Blocks, p)
	return p
}
