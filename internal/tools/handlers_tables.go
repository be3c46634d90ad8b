package tools

import (
	"context"

	"github.com/dgallion1/wordsmith/internal/docedit"
	"github.com/dgallion1/wordsmith/internal/docx"
)

func (s *Service) tableTools() []Definition {
	return []Definition{
		{
			Name:        "insert_table",
			Description: "Insert a table after a paragraph (-1 appends at the end), optionally pre-filled with data and styled.",
			Schema: schema(map[string]any{
				"filename":        str("document to edit"),
				"rows":            num("row count, at least 1"),
				"cols":            num("column count, at least 1"),
				"after_paragraph": num("paragraph index to insert after; -1 (default) appends"),
				"data":            arr("cell texts, row by row", arr("one row", str("cell text"))),
				"style":           str("table style name, e.g. Table Grid"),
			}, "filename", "rows", "cols"),
			Handler: s.insertTable,
		},
		{
			Name:        "edit_table_cell",
			Description: "Replace the text of one table cell, addressed by table index then row and column (all 0-based).",
			Schema: schema(map[string]any{
				"filename":    str("document to edit"),
				"table_index": num("table index in document order"),
				"row":         num("row index"),
				"col":         num("column index"),
				"text":        str("new cell text"),
			}, "filename", "table_index", "row", "col", "text"),
			Handler: s.editTableCell,
		},
		{
			Name:        "insert_image",
			Description: "Embed an image after a paragraph. Sizes are centimetres; giving one dimension keeps the aspect ratio, giving none uses pixel size at 96 DPI.",
			Schema: schema(map[string]any{
				"filename":        str("document to edit"),
				"image_path":      str("path to the image file (png, jpeg, gif, bmp, tiff or webp)"),
				"width_cm":        num("image width in centimetres"),
				"height_cm":       num("image height in centimetres"),
				"after_paragraph": num("paragraph index to insert after; -1 (default) appends"),
			}, "filename", "image_path"),
			Handler: s.insertImage,
		},
	}
}

func (s *Service) insertTable(_ context.Context, args Args) Result {
	return s.withDocument("insert_table", args, func(doc *docx.Document) (Result, error) {
		rows := args.Int("rows", 0)
		cols := args.Int("cols", 0)
		if err := docedit.InsertTable(doc, rows, cols,
			args.Int("after_paragraph", docedit.AppendSentinel),
			args.TableData("data"),
			args.String("style"),
		); err != nil {
			return Result{}, err
		}
		return success("inserted %dx%d table", rows, cols), nil
	})
}

func (s *Service) editTableCell(_ context.Context, args Args) Result {
	return s.withDocument("edit_table_cell", args, func(doc *docx.Document) (Result, error) {
		tableIdx := args.Int("table_index", -1)
		row := args.Int("row", -1)
		col := args.Int("col", -1)
		if err := docedit.EditTableCell(doc, tableIdx, row, col, args.String("text")); err != nil {
			return Result{}, err
		}
		return success("updated cell (%d, %d) of table %d", row, col, tableIdx), nil
	})
}

func (s *Service) insertImage(_ context.Context, args Args) Result {
	return s.withDocument("insert_image", args, func(doc *docx.Document) (Result, error) {
		imagePath, err := s.Resolver.Resolve(args.String("image_path"))
		if err != nil {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: err.Error()}
		}
		if err := docedit.InsertImage(doc, imagePath,
			args.Float("width_cm", 0),
			args.Float("height_cm", 0),
			args.Int("after_paragraph", docedit.AppendSentinel),
		); err != nil {
			return Result{}, err
		}
		return success("inserted image %s", imagePath), nil
	})
}
