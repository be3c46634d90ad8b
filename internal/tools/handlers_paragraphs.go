package tools

import (
	"context"

	"github.com/dgallion1/wordsmith/internal/docedit"
	"github.com/dgallion1/wordsmith/internal/docx"
)

func (s *Service) paragraphTools() []Definition {
	return []Definition{
		{
			Name:        "add_paragraph",
			Description: "Append a paragraph to the end of a document, optionally styled and aligned.",
			Schema: schema(map[string]any{
				"filename":  str("document to edit"),
				"text":      str("paragraph text"),
				"style":     str("style name, e.g. Heading 1; must exist in the document"),
				"alignment": str("left, center, right or justify"),
			}, "filename", "text"),
			Handler: s.addParagraph,
		},
		{
			Name:        "edit_paragraph_in_document",
			Description: "Replace the text of one paragraph or a contiguous range. Style and alignment of each edited paragraph are preserved; mixed run formatting inside it is collapsed to a single run.",
			Schema: schema(map[string]any{
				"filename":        str("document to edit"),
				"paragraph_index": num("index of the paragraph to edit (0-based); start of the range when end_index is given"),
				"end_index":       num("optional inclusive end of the range"),
				"text":            str("replacement text for a single paragraph"),
				"texts":           arr("replacement texts for a range, one per paragraph", str("replacement text")),
			}, "filename", "paragraph_index"),
			Handler: s.editParagraph,
		},
		{
			Name:        "delete_paragraph",
			Description: "Delete one or more paragraphs by index. The index set is validated first and applied in descending order, so the listed indices all refer to the document as it was before the call.",
			Schema: schema(map[string]any{
				"filename":        str("document to edit"),
				"paragraph_index": map[string]any{"description": "a single 0-based index or an array of indices"},
			}, "filename", "paragraph_index"),
			Handler: s.deleteParagraph,
		},
		{
			Name:        "find_and_replace_text",
			Description: "Replace every occurrence of a string across paragraphs and table cells. Paragraphs containing a match are collapsed to a single run; their style and alignment survive. Returns the replacement count.",
			Schema: schema(map[string]any{
				"filename":         str("document to edit"),
				"find_text":        str("text to search for"),
				"replace_text":     str("replacement text"),
				"match_case":       boolean("case-sensitive matching, default false"),
				"match_whole_word": boolean("require word boundaries around the match, default false"),
			}, "filename", "find_text", "replace_text"),
			Handler: s.findAndReplace,
		},
		{
			Name:        "format_text_in_document",
			Description: "Apply run formatting to a character range inside one paragraph. The paragraph is rebuilt as up to three runs; text outside the range keeps its original formatting.",
			Schema: schema(mergeProps(map[string]any{
				"filename":        str("document to edit"),
				"paragraph_index": num("paragraph to format (0-based)"),
				"start_pos":       num("range start, 0-based character offset"),
				"end_pos":         num("range end, exclusive"),
			}, formatSchemaProps()), "filename", "paragraph_index", "start_pos", "end_pos"),
			Handler: s.formatText,
		},
		{
			Name:        "set_paragraph_spacing",
			Description: "Set space before/after (points) and line spacing on one or more paragraphs. Line spacing is a multiplier under the multiple rule, points under exact or atLeast.",
			Schema: schema(map[string]any{
				"filename":          str("document to edit"),
				"paragraph_index":   map[string]any{"description": "a single 0-based index or an array of indices"},
				"space_before":      num("points of space before the paragraph"),
				"space_after":       num("points of space after the paragraph"),
				"line_spacing":      num("line spacing value"),
				"line_spacing_rule": str("multiple (default), exact or atLeast"),
			}, "filename", "paragraph_index"),
			Handler: s.setParagraphSpacing,
		},
		{
			Name:        "apply_consistent_formatting",
			Description: "Apply one run formatting to every paragraph carrying the named style.",
			Schema: schema(mergeProps(map[string]any{
				"filename":   str("document to edit"),
				"style_name": str("style whose paragraphs are formatted"),
			}, formatSchemaProps()), "filename", "style_name"),
			Handler: s.applyConsistentFormatting,
		},
	}
}

func (s *Service) addParagraph(_ context.Context, args Args) Result {
	return s.withDocument("add_paragraph", args, func(doc *docx.Document) (Result, error) {
		if err := docedit.AddParagraph(doc, args.String("text"), args.String("style"), args.String("alignment")); err != nil {
			return Result{}, err
		}
		return success("added paragraph %d", len(doc.Paragraphs())-1), nil
	})
}

func (s *Service) editParagraph(_ context.Context, args Args) Result {
	return s.withDocument("edit_paragraph_in_document", args, func(doc *docx.Document) (Result, error) {
		start := args.Int("paragraph_index", -1)
		end := args.Int("end_index", start)
		var texts []string
		if args.Has("texts") {
			texts = args.StringList("texts")
		} else {
			texts = make([]string, end-start+1)
			for i := range texts {
				texts[i] = args.String("text")
			}
		}
		if err := docedit.EditParagraphs(doc, start, end, texts); err != nil {
			return Result{}, err
		}
		if start == end {
			return success("replaced text of paragraph %d", start), nil
		}
		return success("replaced text of paragraphs %d..%d", start, end), nil
	})
}

func (s *Service) deleteParagraph(_ context.Context, args Args) Result {
	return s.withDocument("delete_paragraph", args, func(doc *docx.Document) (Result, error) {
		indices := args.IntList("paragraph_index")
		if len(indices) == 0 {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: "paragraph_index must be an index or a non-empty array of indices"}
		}
		n, err := docedit.DeleteParagraphs(doc, indices)
		if err != nil {
			return Result{}, err
		}
		return success("deleted %d paragraphs, %d remain", n, len(doc.Paragraphs())), nil
	})
}

func (s *Service) findAndReplace(_ context.Context, args Args) Result {
	return s.withDocument("find_and_replace_text", args, func(doc *docx.Document) (Result, error) {
		count, err := docedit.FindReplace(doc,
			args.String("find_text"),
			args.String("replace_text"),
			docedit.FindReplaceOptions{
				MatchCase:      args.Bool("match_case", false),
				MatchWholeWord: args.Bool("match_whole_word", false),
			})
		if err != nil {
			return Result{}, err
		}
		return successData(count, "replaced %d occurrences", count), nil
	})
}

func (s *Service) formatText(_ context.Context, args Args) Result {
	return s.withDocument("format_text_in_document", args, func(doc *docx.Document) (Result, error) {
		paraIdx := args.Int("paragraph_index", -1)
		start := args.Int("start_pos", -1)
		end := args.Int("end_pos", -1)
		if err := docedit.FormatTextRange(doc, paraIdx, start, end, formatFromArgs(args)); err != nil {
			return Result{}, err
		}
		return success("formatted characters %d..%d of paragraph %d", start, end, paraIdx), nil
	})
}

func (s *Service) setParagraphSpacing(_ context.Context, args Args) Result {
	return s.withDocument("set_paragraph_spacing", args, func(doc *docx.Document) (Result, error) {
		indices := args.IntList("paragraph_index")
		if len(indices) == 0 {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: "paragraph_index must be an index or a non-empty array of indices"}
		}
		opts := spacingFromArgs(args)
		if err := docedit.SetParagraphSpacing(doc, indices, opts); err != nil {
			return Result{}, err
		}
		return success("set spacing on %d paragraphs", len(indices)), nil
	})
}

func (s *Service) applyConsistentFormatting(_ context.Context, args Args) Result {
	return s.withDocument("apply_consistent_formatting", args, func(doc *docx.Document) (Result, error) {
		touched, err := docedit.ApplyConsistentFormatting(doc, args.String("style_name"), formatFromArgs(args))
		if err != nil {
			return Result{}, err
		}
		return success("formatted %d paragraphs styled %q", touched, args.String("style_name")), nil
	})
}
