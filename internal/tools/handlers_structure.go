package tools

import (
	"context"
	"strconv"

	"github.com/dgallion1/wordsmith/internal/docedit"
	"github.com/dgallion1/wordsmith/internal/docx"
	"github.com/dgallion1/wordsmith/internal/htmlimp"
	"github.com/dgallion1/wordsmith/internal/markdown"
)

func (s *Service) structureTools() []Definition {
	return []Definition{
		{
			Name:        "batch_process_document_structure",
			Description: "Apply an ordered list of typed content descriptors (heading, paragraph, table, list, image, page_break) in one pass, optionally clearing existing paragraphs and tables first. Section geometry survives a clear. Unknown descriptor types are skipped.",
			Schema: schema(map[string]any{
				"filename":       str("document to edit"),
				"elements":       arr("descriptors, applied in array order", obj("one descriptor with a type field plus per-type fields")),
				"clear_existing": boolean("remove existing paragraphs and tables before appending, default false"),
			}, "filename", "elements"),
			Handler: s.batchProcessStructure,
		},
		{
			Name:        "add_markdown_content",
			Description: "Convert Markdown (headings, paragraphs, lists, tables, code blocks, rules) to document content and append it.",
			Schema: schema(map[string]any{
				"filename":       str("document to edit"),
				"markdown":       str("Markdown source"),
				"clear_existing": boolean("remove existing paragraphs and tables first, default false"),
			}, "filename", "markdown"),
			Handler: s.addMarkdownContent,
		},
		{
			Name:        "add_html_content",
			Description: "Convert HTML (h1-h6, p, ul/ol, table, blockquote, pre, hr) to document content and append it.",
			Schema: schema(map[string]any{
				"filename":       str("document to edit"),
				"html":           str("HTML source"),
				"clear_existing": boolean("remove existing paragraphs and tables first, default false"),
			}, "filename", "html"),
			Handler: s.addHTMLContent,
		},
		{
			Name:        "insert_table_of_contents",
			Description: "Insert a TOC field at the start of the document. The field is stored unevaluated; the word processor fills it in when fields are updated.",
			Schema: schema(map[string]any{
				"filename":  str("document to edit"),
				"title":     str("optional heading above the TOC"),
				"max_level": num("deepest heading level to include, 1..9, default 3"),
			}, "filename"),
			Handler: s.insertTOC,
		},
		{
			Name:        "add_header_footer",
			Description: "Set header and/or footer text on every section, optionally with a self-updating page number field in the footer.",
			Schema: schema(map[string]any{
				"filename":     str("document to edit"),
				"header_text":  str("header text"),
				"footer_text":  str("footer text"),
				"alignment":    str("left, center (default), right or justify"),
				"page_numbers": boolean("append a PAGE field paragraph to the footer"),
			}, "filename"),
			Handler: s.addHeaderFooter,
		},
		{
			Name:        "set_page_layout",
			Description: "Set orientation, page size (cm) and margins (cm) on sections. Targets section 0 by default, an explicit index list, or all sections. Every index is validated before anything changes; one bad index fails the whole call.",
			Schema: schema(map[string]any{
				"filename":        str("document to edit"),
				"orientation":     str("portrait or landscape"),
				"page_width_cm":   num("page width in centimetres (set together with page_height_cm)"),
				"page_height_cm":  num("page height in centimetres"),
				"margins":         obj("margins in centimetres keyed by side: top, bottom, left, right, header, footer"),
				"section_indices": arr("explicit 0-based section indices", num("section index")),
				"apply_to_all":    boolean("apply to every section, overrides section_indices"),
			}, "filename"),
			Handler: s.setPageLayout,
		},
	}
}

func (s *Service) batchProcessStructure(_ context.Context, args Args) Result {
	return s.withDocument("batch_process_document_structure", args, func(doc *docx.Document) (Result, error) {
		items := args.ObjectList("elements")
		if len(items) == 0 {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: "elements must be a non-empty array"}
		}
		elements := make([]docedit.ContentElement, len(items))
		for i, item := range items {
			elements[i] = elementFromArgs(item)
		}
		res, skipped := docedit.BuildStructure(doc, elements, args.Bool("clear_existing", false))
		msg := res.Summary("elements")
		if skipped > 0 {
			msg += ", " + strconv.Itoa(skipped) + " unknown types skipped"
		}
		return successData(res, "%s", msg), nil
	})
}

func (s *Service) addMarkdownContent(_ context.Context, args Args) Result {
	return s.withDocument("add_markdown_content", args, func(doc *docx.Document) (Result, error) {
		src := args.String("markdown")
		if src == "" {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: "markdown source must not be empty"}
		}
		elements := markdown.ToElements([]byte(src))
		res, _ := docedit.BuildStructure(doc, elements, args.Bool("clear_existing", false))
		return successData(res, "%s from markdown", res.Summary("elements")), nil
	})
}

func (s *Service) addHTMLContent(_ context.Context, args Args) Result {
	return s.withDocument("add_html_content", args, func(doc *docx.Document) (Result, error) {
		src := args.String("html")
		if src == "" {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: "html source must not be empty"}
		}
		elements, err := htmlimp.ToElements(src)
		if err != nil {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: err.Error()}
		}
		res, _ := docedit.BuildStructure(doc, elements, args.Bool("clear_existing", false))
		return successData(res, "%s from html", res.Summary("elements")), nil
	})
}

func (s *Service) insertTOC(_ context.Context, args Args) Result {
	return s.withDocument("insert_table_of_contents", args, func(doc *docx.Document) (Result, error) {
		maxLevel := args.Int("max_level", 3)
		if err := docedit.InsertTableOfContents(doc, args.String("title"), maxLevel); err != nil {
			return Result{}, err
		}
		return success("inserted TOC field covering heading levels 1..%d; update fields in the word processor to populate it", maxLevel), nil
	})
}

func (s *Service) addHeaderFooter(_ context.Context, args Args) Result {
	return s.withDocument("add_header_footer", args, func(doc *docx.Document) (Result, error) {
		opts := docedit.HeaderFooterOptions{
			HeaderText:  args.String("header_text"),
			FooterText:  args.String("footer_text"),
			Alignment:   args.String("alignment"),
			PageNumbers: args.Bool("page_numbers", false),
		}
		if err := docedit.AddHeaderFooter(doc, opts); err != nil {
			return Result{}, err
		}
		return success("header/footer applied to %d sections", len(doc.Sections())), nil
	})
}

func (s *Service) setPageLayout(_ context.Context, args Args) Result {
	return s.withDocument("set_page_layout", args, func(doc *docx.Document) (Result, error) {
		opts := docedit.PageLayoutOptions{
			Orientation:    args.String("orientation"),
			WidthCm:        args.Float("page_width_cm", 0),
			HeightCm:       args.Float("page_height_cm", 0),
			SectionIndices: args.IntList("section_indices"),
			ApplyToAll:     args.Bool("apply_to_all", false),
		}
		if m, ok := args["margins"].(map[string]any); ok {
			opts.Margins = make(map[string]float64, len(m))
			for side, v := range m {
				if f, ok := v.(float64); ok {
					opts.Margins[side] = f
				}
			}
		}
		n, err := docedit.SetPageLayout(doc, opts)
		if err != nil {
			return Result{}, err
		}
		return success("page layout applied to %d sections", n), nil
	})
}
