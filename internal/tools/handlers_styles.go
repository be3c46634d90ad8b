package tools

import (
	"context"
	"strings"

	"github.com/dgallion1/wordsmith/internal/docedit"
	"github.com/dgallion1/wordsmith/internal/docx"
)

func (s *Service) styleTools() []Definition {
	return []Definition{
		{
			Name:        "create_custom_style",
			Description: "Add a new named style. Fails with duplicate_name when the name exists; never overwrites.",
			Schema: schema(map[string]any{
				"filename":   str("document to edit"),
				"style_name": str("name of the new style, must be unique"),
				"style_type": str("paragraph (default), character, table or numbering"),
				"based_on":   str("name of an existing style to inherit from"),
				"properties": obj("font and paragraph_format property groups"),
			}, "filename", "style_name"),
			Handler: s.createCustomStyle,
		},
		{
			Name:        "apply_style",
			Description: "Assign a named style to one or more paragraphs. With create_if_not_exists the style is synthesized from properties first; otherwise a missing style fails with style_not_found and no paragraph changes.",
			Schema: schema(map[string]any{
				"filename":             str("document to edit"),
				"style_name":           str("style to apply"),
				"paragraph_index":      map[string]any{"description": "a single 0-based index or an array of indices"},
				"create_if_not_exists": boolean("synthesize the style from properties when missing, default false"),
				"properties":           obj("font and paragraph_format groups used when synthesizing"),
			}, "filename", "style_name", "paragraph_index"),
			Handler: s.applyStyle,
		},
		{
			Name:        "export_document_styles",
			Description: "Export styles to a JSON interchange file recording font and paragraph-format properties. Properties outside that subset are not preserved.",
			Schema: schema(map[string]any{
				"filename":        str("document to export from"),
				"output_filename": str("JSON file to write"),
				"style_names":     arr("styles to export; empty exports all", str("style name")),
			}, "filename", "output_filename"),
			Handler: s.exportStyles,
		},
		{
			Name:        "import_document_styles",
			Description: "Import styles from a JSON interchange file. Existing names are skipped unless overwrite is set; overwrite removes and recreates the style.",
			Schema: schema(map[string]any{
				"filename":    str("document to import into"),
				"style_file":  str("JSON interchange file to read"),
				"style_names": arr("styles to import; empty imports all", str("style name")),
				"overwrite":   boolean("replace styles that already exist, default false"),
			}, "filename", "style_file"),
			Handler: s.importStyles,
		},
		{
			Name:        "copy_style_between_documents",
			Description: "Copy styles from one document to another through a temporary interchange file, which is removed on every path.",
			Schema: schema(map[string]any{
				"source_filename": str("document to copy styles from"),
				"filename":        str("document to copy styles into"),
				"style_names":     arr("styles to copy; empty copies all", str("style name")),
				"overwrite":       boolean("replace styles that already exist in the target, default false"),
			}, "source_filename", "filename"),
			Handler: s.copyStyles,
		},
	}
}

func (s *Service) createCustomStyle(_ context.Context, args Args) Result {
	return s.withDocument("create_custom_style", args, func(doc *docx.Document) (Result, error) {
		props, err := stylePropsFromArgs(args)
		if err != nil {
			return Result{}, err
		}
		name := args.String("style_name")
		if cerr := docedit.CreateCustomStyle(doc, name, args.String("style_type"), args.String("based_on"), props); cerr != nil {
			return Result{}, cerr
		}
		return success("created style %q", name), nil
	})
}

func (s *Service) applyStyle(_ context.Context, args Args) Result {
	return s.withDocument("apply_style", args, func(doc *docx.Document) (Result, error) {
		indices := args.IntList("paragraph_index")
		if len(indices) == 0 {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: "paragraph_index must be an index or a non-empty array of indices"}
		}
		props, err := stylePropsFromArgs(args)
		if err != nil {
			return Result{}, err
		}
		name := args.String("style_name")
		if aerr := docedit.ApplyStyle(doc, name, indices, args.Bool("create_if_not_exists", false), props); aerr != nil {
			return Result{}, aerr
		}
		return success("applied style %q to %d paragraphs", name, len(indices)), nil
	})
}

func (s *Service) exportStyles(_ context.Context, args Args) Result {
	return s.withDocumentRead("export_document_styles", args, func(doc *docx.Document) (Result, error) {
		outName := ensureExt(args.String("output_filename"), ".json")
		out, err := s.Resolver.Resolve(outName)
		if err != nil {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: err.Error()}
		}
		n, xerr := docedit.ExportStylesToFile(doc, args.StringList("style_names"), out)
		if xerr != nil {
			return Result{}, xerr
		}
		return success("exported %d styles to %s", n, out), nil
	})
}

func (s *Service) importStyles(_ context.Context, args Args) Result {
	return s.withDocument("import_document_styles", args, func(doc *docx.Document) (Result, error) {
		styleFile, err := s.Resolver.Resolve(args.String("style_file"))
		if err != nil {
			return Result{}, &docedit.Error{Kind: docedit.KindInvalidParameter, Message: err.Error()}
		}
		added, skipped, ierr := docedit.ImportStylesFromFile(doc, styleFile, args.StringList("style_names"), args.Bool("overwrite", false))
		if ierr != nil {
			return Result{}, ierr
		}
		return success("imported %d styles, skipped %d existing", added, skipped), nil
	})
}

func (s *Service) copyStyles(_ context.Context, args Args) Result {
	srcName := args.String("source_filename")
	if srcName == "" {
		return failf(docedit.KindInvalidParameter, "source_filename is required")
	}
	if !strings.HasSuffix(strings.ToLower(srcName), ".docx") {
		srcName += ".docx"
	}
	srcPath, err := s.Resolver.Resolve(srcName)
	if err != nil {
		return failf(docedit.KindInvalidParameter, "%s", err.Error())
	}
	src, oerr := docx.Open(srcPath)
	if oerr != nil {
		return failf(docedit.KindNotFound, "open source document %q: %s", srcPath, oerr.Error())
	}
	return s.withDocument("copy_style_between_documents", args, func(dst *docx.Document) (Result, error) {
		added, skipped, cerr := docedit.CopyStyles(src, dst, args.StringList("style_names"), args.Bool("overwrite", false))
		if cerr != nil {
			return Result{}, cerr
		}
		return success("copied %d styles from %s, skipped %d existing", added, srcPath, skipped), nil
	})
}

// stylePropsFromArgs decodes the nested properties object.
func stylePropsFromArgs(args Args) (docedit.StyleProperties, error) {
	var props docedit.StyleProperties
	raw, ok := args["properties"].(map[string]any)
	if !ok {
		return props, nil
	}
	p := Args(raw)
	if f, ok := p["font"].(map[string]any); ok {
		fa := Args(f)
		props.Font = &docedit.StyleFont{
			Name:      fa.String("name"),
			Size:      fa.Float("size", 0),
			Bold:      fa.BoolPtr("bold"),
			Italic:    fa.BoolPtr("italic"),
			Underline: fa.BoolPtr("underline"),
			Color:     fa.String("color"),
		}
	}
	if pf, ok := p["paragraph_format"].(map[string]any); ok {
		pa := Args(pf)
		props.ParagraphFormat = &docedit.StyleParagraphFormat{
			Alignment:       pa.String("alignment"),
			LineSpacing:     pa.Float("line_spacing", 0),
			LineSpacingRule: pa.String("line_spacing_rule"),
			SpaceBefore:     pa.Float("space_before", 0),
			SpaceAfter:      pa.Float("space_after", 0),
			FirstLineIndent: pa.Float("first_line_indent", 0),
			LeftIndent:      pa.Float("left_indent", 0),
			RightIndent:     pa.Float("right_indent", 0),
		}
	}
	return props, nil
}
