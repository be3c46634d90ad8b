package tools

import (
	"github.com/dgallion1/wordsmith/internal/docedit"
)

// formatFromArgs reads the shared run-formatting argument names.
func formatFromArgs(args Args) docedit.FormatOptions {
	return docedit.FormatOptions{
		Bold:      args.BoolPtr("bold"),
		Italic:    args.BoolPtr("italic"),
		Underline: args.BoolPtr("underline"),
		FontName:  args.String("font_name"),
		FontSize:  args.Float("font_size", 0),
		Color:     args.String("color"),
		Highlight: args.String("highlight"),
	}
}

// spacingFromArgs reads the shared spacing argument names. Absent values
// become -1, the "leave as is" sentinel.
func spacingFromArgs(args Args) docedit.SpacingOptions {
	return docedit.SpacingOptions{
		Before: args.Float("space_before", -1),
		After:  args.Float("space_after", -1),
		Line:   args.Float("line_spacing", -1),
		Rule:   args.String("line_spacing_rule"),
	}
}

// elementFromArgs decodes one structural assembly descriptor.
func elementFromArgs(args Args) docedit.ContentElement {
	return docedit.ContentElement{
		Type:       args.String("type"),
		Text:       args.String("text"),
		Level:      args.Int("level", 1),
		Style:      args.String("style"),
		Alignment:  args.String("alignment"),
		Format:     formatFromArgs(args),
		Rows:       args.Int("rows", 0),
		Cols:       args.Int("cols", 0),
		Data:       args.TableData("data"),
		TableStyle: args.String("table_style"),
		Items:      args.StringList("items"),
		Ordered:    args.Bool("ordered", false),
		Path:       args.String("image_path"),
		WidthCm:    args.Float("width_cm", 0),
		HeightCm:   args.Float("height_cm", 0),
	}
}

// formatSchemaProps are the shared run-formatting schema properties.
func formatSchemaProps() map[string]any {
	return map[string]any{
		"bold":      boolean("set bold on or off"),
		"italic":    boolean("set italic on or off"),
		"underline": boolean("set single underline on or off"),
		"font_name": str("font family name"),
		"font_size": num("font size in points"),
		"color":     str("text color as a hex string, e.g. FF0000"),
		"highlight": str("named highlight color, e.g. yellow"),
	}
}

func mergeProps(into map[string]any, from map[string]any) map[string]any {
	for k, v := range from {
		into[k] = v
	}
	return into
}
