package tools

import (
	"context"

	"github.com/dgallion1/wordsmith/internal/docedit"
	"github.com/dgallion1/wordsmith/internal/docx"
)

func (s *Service) advancedTools() []Definition {
	return []Definition{
		{
			Name:        "add_text_box",
			Description: "Insert a bordered single-cell table holding the given text, the flowed-layout equivalent of a text box.",
			Schema: schema(mergeProps(map[string]any{
				"filename":        str("document to edit"),
				"text":            str("text inside the box"),
				"after_paragraph": num("paragraph index to insert after; -1 (default) appends"),
				"width_cm":        num("box width in centimetres; 0 sizes to content"),
			}, formatSchemaProps()), "filename", "text"),
			Handler: s.addTextBox,
		},
		{
			Name:        "add_drop_cap",
			Description: "Enlarge the first letter of a paragraph into an oversized bold run.",
			Schema: schema(map[string]any{
				"filename":        str("document to edit"),
				"paragraph_index": num("paragraph to decorate (0-based)"),
				"size_points":     num("lead letter size in points, default 36"),
			}, "filename", "paragraph_index"),
			Handler: s.addDropCap,
		},
		{
			Name:        "add_word_art",
			Description: "Append a display paragraph: oversized, bold, colored text.",
			Schema: schema(map[string]any{
				"filename":    str("document to edit"),
				"text":        str("display text"),
				"color":       str("hex text color, default 1F4E79"),
				"size_points": num("font size in points, default 48"),
				"alignment":   str("left, center (default), right or justify"),
			}, "filename", "text"),
			Handler: s.addWordArt,
		},
		{
			Name:        "add_custom_bullets",
			Description: "Append one List Paragraph per item, each prefixed with the given bullet glyph.",
			Schema: schema(map[string]any{
				"filename": str("document to edit"),
				"items":    arr("list items, in order", str("item text")),
				"bullet":   str("bullet glyph, default •"),
			}, "filename", "items"),
			Handler: s.addCustomBullets,
		},
	}
}

func (s *Service) addTextBox(_ context.Context, args Args) Result {
	return s.withDocument("add_text_box", args, func(doc *docx.Document) (Result, error) {
		if err := docedit.AddTextBox(doc,
			args.String("text"),
			args.Int("after_paragraph", docedit.AppendSentinel),
			args.Float("width_cm", 0),
			formatFromArgs(args),
		); err != nil {
			return Result{}, err
		}
		return success("added text box"), nil
	})
}

func (s *Service) addDropCap(_ context.Context, args Args) Result {
	return s.withDocument("add_drop_cap", args, func(doc *docx.Document) (Result, error) {
		idx := args.Int("paragraph_index", -1)
		if err := docedit.AddDropCap(doc, idx, args.Float("size_points", 0)); err != nil {
			return Result{}, err
		}
		return success("added drop cap to paragraph %d", idx), nil
	})
}

func (s *Service) addWordArt(_ context.Context, args Args) Result {
	return s.withDocument("add_word_art", args, func(doc *docx.Document) (Result, error) {
		if err := docedit.AddWordArt(doc,
			args.String("text"),
			args.String("color"),
			args.Float("size_points", 0),
			args.String("alignment"),
		); err != nil {
			return Result{}, err
		}
		return success("added word art paragraph"), nil
	})
}

func (s *Service) addCustomBullets(_ context.Context, args Args) Result {
	return s.withDocument("add_custom_bullets", args, func(doc *docx.Document) (Result, error) {
		items := args.StringList("items")
		if err := docedit.AddCustomBullets(doc, items, args.String("bullet")); err != nil {
			return Result{}, err
		}
		return success("added %d bulleted items", len(items)), nil
	})
}
