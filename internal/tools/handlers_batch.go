package tools

import (
	"context"

	"github.com/dgallion1/wordsmith/internal/docedit"
	"github.com/dgallion1/wordsmith/internal/docx"
)

func (s *Service) batchTools() []Definition {
	return []Definition{
		{
			Name:        "batch_add_formatted_paragraphs",
			Description: "Append several paragraphs in one call, each with its own text, style, alignment, formatting and spacing. Failing items are recorded, the rest still apply.",
			Schema: schema(map[string]any{
				"filename":   str("document to edit"),
				"paragraphs": arr("paragraphs to append, in order", obj("one paragraph: text, style, alignment plus the formatting and spacing fields")),
			}, "filename", "paragraphs"),
			Handler: s.batchAddParagraphs,
		},
		{
			Name:        "batch_format_paragraphs",
			Description: "Format several existing paragraphs in one call. Formatting never shifts indices, so items apply in the given order.",
			Schema: schema(map[string]any{
				"filename": str("document to edit"),
				"items":    arr("format items, each naming paragraph_index plus formatting fields and alignment", obj("one format item")),
			}, "filename", "items"),
			Handler: s.batchFormatParagraphs,
		},
		{
			Name:        "batch_set_paragraph_spacing",
			Description: "Set spacing on several paragraphs in one call, recording per-item failures.",
			Schema: schema(map[string]any{
				"filename": str("document to edit"),
				"items":    arr("spacing items, each naming paragraph_index plus spacing fields", obj("one spacing item")),
			}, "filename", "items"),
			Handler: s.batchSetSpacing,
		},
		{
			Name:        "batch_insert_tables",
			Description: "Insert several tables in one call. An invalid table (e.g. zero rows) is recorded as failed and skipped; the rest still insert.",
			Schema: schema(map[string]any{
				"filename": str("document to edit"),
				"tables":   arr("tables to insert, each with rows, cols, after_paragraph, data and style", obj("one table spec")),
			}, "filename", "tables"),
			Handler: s.batchInsertTables,
		},
		{
			Name:        "batch_edit_table_cells",
			Description: "Edit several table cells in one call, recording per-item failures.",
			Schema: schema(map[string]any{
				"filename": str("document to edit"),
				"edits":    arr("cell edits, each with table_index, row, col and text", obj("one cell edit")),
			}, "filename", "edits"),
			Handler: s.batchEditCells,
		},
		{
			Name:        "batch_insert_images",
			Description: "Embed several images in one call, recording per-item failures.",
			Schema: schema(map[string]any{
				"filename": str("document to edit"),
				"images":   arr("images to insert, each with image_path, width_cm, height_cm and after_paragraph", obj("one image spec")),
			}, "filename", "images"),
			Handler: s.batchInsertImages,
		},
	}
}

func batchResult(res *docedit.BatchResult, noun string) Result {
	return successData(res, "%s", res.Summary(noun))
}

func (s *Service) batchAddParagraphs(_ context.Context, args Args) Result {
	return s.withDocument("batch_add_formatted_paragraphs", args, func(doc *docx.Document) (Result, error) {
		items := args.ObjectList("paragraphs")
		if len(items) == 0 {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: "paragraphs must be a non-empty array"}
		}
		specs := make([]docedit.ParagraphSpec, len(items))
		for i, item := range items {
			spec := docedit.ParagraphSpec{
				Text:      item.String("text"),
				Style:     item.String("style"),
				Alignment: item.String("alignment"),
				Format:    formatFromArgs(item),
			}
			if item.Has("space_before") || item.Has("space_after") || item.Has("line_spacing") {
				sp := spacingFromArgs(item)
				spec.Spacing = &sp
			}
			specs[i] = spec
		}
		return batchResult(docedit.BatchAddFormattedParagraphs(doc, specs), "paragraphs"), nil
	})
}

func (s *Service) batchFormatParagraphs(_ context.Context, args Args) Result {
	return s.withDocument("batch_format_paragraphs", args, func(doc *docx.Document) (Result, error) {
		items := args.ObjectList("items")
		if len(items) == 0 {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: "items must be a non-empty array"}
		}
		specs := make([]docedit.ParagraphFormatSpec, len(items))
		for i, item := range items {
			specs[i] = docedit.ParagraphFormatSpec{
				Index:     item.Int("paragraph_index", -1),
				Alignment: item.String("alignment"),
				Format:    formatFromArgs(item),
			}
		}
		return batchResult(docedit.BatchFormatParagraphs(doc, specs), "format items"), nil
	})
}

func (s *Service) batchSetSpacing(_ context.Context, args Args) Result {
	return s.withDocument("batch_set_paragraph_spacing", args, func(doc *docx.Document) (Result, error) {
		items := args.ObjectList("items")
		if len(items) == 0 {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: "items must be a non-empty array"}
		}
		specs := make([]docedit.ParagraphSpacingSpec, len(items))
		for i, item := range items {
			specs[i] = docedit.ParagraphSpacingSpec{
				Index:   item.Int("paragraph_index", -1),
				Spacing: spacingFromArgs(item),
			}
		}
		return batchResult(docedit.BatchSetParagraphSpacing(doc, specs), "spacing items"), nil
	})
}

func (s *Service) batchInsertTables(_ context.Context, args Args) Result {
	return s.withDocument("batch_insert_tables", args, func(doc *docx.Document) (Result, error) {
		items := args.ObjectList("tables")
		if len(items) == 0 {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: "tables must be a non-empty array"}
		}
		specs := make([]docedit.TableSpec, len(items))
		for i, item := range items {
			specs[i] = docedit.TableSpec{
				Rows:           item.Int("rows", 0),
				Cols:           item.Int("cols", 0),
				AfterParagraph: item.Int("after_paragraph", docedit.AppendSentinel),
				Data:           item.TableData("data"),
				Style:          item.String("style"),
			}
		}
		return batchResult(docedit.BatchInsertTables(doc, specs), "tables"), nil
	})
}

func (s *Service) batchEditCells(_ context.Context, args Args) Result {
	return s.withDocument("batch_edit_table_cells", args, func(doc *docx.Document) (Result, error) {
		items := args.ObjectList("edits")
		if len(items) == 0 {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: "edits must be a non-empty array"}
		}
		specs := make([]docedit.CellEditSpec, len(items))
		for i, item := range items {
			specs[i] = docedit.CellEditSpec{
				Table: item.Int("table_index", -1),
				Row:   item.Int("row", -1),
				Col:   item.Int("col", -1),
				Text:  item.String("text"),
			}
		}
		return batchResult(docedit.BatchEditTableCells(doc, specs), "cell edits"), nil
	})
}

func (s *Service) batchInsertImages(_ context.Context, args Args) Result {
	return s.withDocument("batch_insert_images", args, func(doc *docx.Document) (Result, error) {
		items := args.ObjectList("images")
		if len(items) == 0 {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: "images must be a non-empty array"}
		}
		specs := make([]docedit.ImageSpec, len(items))
		for i, item := range items {
			path, err := s.Resolver.Resolve(item.String("image_path"))
			if err != nil {
				path = item.String("image_path")
			}
			specs[i] = docedit.ImageSpec{
				Path:           path,
				WidthCm:        item.Float("width_cm", 0),
				HeightCm:       item.Float("height_cm", 0),
				AfterParagraph: item.Int("after_paragraph", docedit.AppendSentinel),
			}
		}
		return batchResult(docedit.BatchInsertImages(doc, specs), "images"), nil
	})
}
