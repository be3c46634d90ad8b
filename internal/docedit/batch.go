package docedit

import (
	"fmt"

	"github.com/dgallion1/wordsmith/internal/docx"
)

// BatchResult aggregates per-item outcomes of a batch operation. Items are
// applied in order; one failing item is recorded and the rest keep going.
type BatchResult struct {
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Failures  []BatchFailure `json:"failures,omitempty"`
}

// BatchFailure records one failed batch item.
type BatchFailure struct {
	Item    int    `json:"item"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (r *BatchResult) record(item int, err error) {
	if err == nil {
		r.Succeeded++
		return
	}
	r.Failed++
	r.Failures = append(r.Failures, BatchFailure{Item: item, Kind: KindOf(err), Message: err.Error()})
}

// Summary renders the result as a one-line status.
func (r *BatchResult) Summary(noun string) string {
	if r.Failed == 0 {
		return fmt.Sprintf("%d %s applied", r.Succeeded, noun)
	}
	return fmt.Sprintf("%d %s applied, %d failed", r.Succeeded, noun, r.Failed)
}

// ParagraphSpec describes one paragraph for batch append: text plus
// optional style, alignment, formatting and spacing.
type ParagraphSpec struct {
	Text      string
	Style     string
	Alignment string
	Format    FormatOptions
	Spacing   *SpacingOptions
}

// BatchAddFormattedParagraphs appends the given paragraphs in order. Each
// failing spec is recorded; the rest are still appended.
func BatchAddFormattedParagraphs(doc *docx.Document, specs []ParagraphSpec) *BatchResult {
	res := &BatchResult{}
	for i, spec := range specs {
		res.record(i, addFormattedParagraph(doc, spec))
	}
	return res
}

func addFormattedParagraph(doc *docx.Document, spec ParagraphSpec) error {
	if err := AddParagraph(doc, spec.Text, spec.Style, spec.Alignment); err != nil {
		return err
	}
	paras := doc.Paragraphs()
	p := paras[len(paras)-1]
	for _, r := range p.AllRuns() {
		if err := spec.Format.applyTo(r); err != nil {
			return err
		}
	}
	if spec.Spacing != nil {
		tmpl, err := spec.Spacing.spacing()
		if err != nil {
			return err
		}
		applySpacing(p, tmpl)
	}
	return nil
}

// ParagraphFormatSpec targets an existing paragraph by index.
type ParagraphFormatSpec struct {
	Index     int
	Alignment string
	Format    FormatOptions
}

// BatchFormatParagraphs formats existing paragraphs. Formatting never
// changes the paragraph count, so specs apply in the given order with no
// resorting.
func BatchFormatParagraphs(doc *docx.Document, specs []ParagraphFormatSpec) *BatchResult {
	res := &BatchResult{}
	for i, spec := range specs {
		res.record(i, FormatParagraph(doc, spec.Index, spec.Format, spec.Alignment))
	}
	return res
}

// ParagraphSpacingSpec targets an existing paragraph by index.
type ParagraphSpacingSpec struct {
	Index   int
	Spacing SpacingOptions
}

// BatchSetParagraphSpacing applies spacing per paragraph, recording
// per-item failures.
func BatchSetParagraphSpacing(doc *docx.Document, specs []ParagraphSpacingSpec) *BatchResult {
	res := &BatchResult{}
	for i, spec := range specs {
		res.record(i, SetParagraphSpacing(doc, []int{spec.Index}, spec.Spacing))
	}
	return res
}

// TableSpec describes one table for batch insertion.
type TableSpec struct {
	Rows           int
	Cols           int
	AfterParagraph int
	Data           [][]string
	Style          string
}

// BatchInsertTables inserts tables in order. A spec that fails validation
// (e.g. zero rows) is recorded and skipped; later specs still apply.
func BatchInsertTables(doc *docx.Document, specs []TableSpec) *BatchResult {
	res := &BatchResult{}
	for i, spec := range specs {
		res.record(i, InsertTable(doc, spec.Rows, spec.Cols, spec.AfterParagraph, spec.Data, spec.Style))
	}
	return res
}

// CellEditSpec targets one cell of one table.
type CellEditSpec struct {
	Table int
	Row   int
	Col   int
	Text  string
}

// BatchEditTableCells edits cells in order, recording per-item failures.
func BatchEditTableCells(doc *docx.Document, specs []CellEditSpec) *BatchResult {
	res := &BatchResult{}
	for i, spec := range specs {
		res.record(i, EditTableCell(doc, spec.Table, spec.Row, spec.Col, spec.Text))
	}
	return res
}

// ImageSpec describes one image for batch insertion.
type ImageSpec struct {
	Path           string
	WidthCm        float64
	HeightCm       float64
	AfterParagraph int
}

// BatchInsertImages inserts images in order, recording per-item failures.
func BatchInsertImages(doc *docx.Document, specs []ImageSpec) *BatchResult {
	res := &BatchResult{}
	for i, spec := range specs {
		res.record(i, InsertImage(doc, spec.Path, spec.WidthCm, spec.HeightCm, spec.AfterParagraph))
	}
	return res
}
