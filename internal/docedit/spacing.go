package docedit

import (
	"fmt"
	"strconv"

	"github.com/dgallion1/wordsmith/internal/docx"
)

// SpacingOptions sets paragraph spacing. Negative values mean "leave as
// is". Before and After are in points. Line is a multiplier for the
// "multiple" rule and points for "exact" and "atLeast".
type SpacingOptions struct {
	Before float64
	After  float64
	Line   float64
	Rule   string // multiple, exact, atLeast
}

func (o SpacingOptions) spacing() (*docx.Spacing, *Error) {
	sp := &docx.Spacing{}
	if o.Before >= 0 {
		sp.Before = strconv.Itoa(docx.PointsToTwips(o.Before))
	}
	if o.After >= 0 {
		sp.After = strconv.Itoa(docx.PointsToTwips(o.After))
	}
	if o.Line >= 0 {
		switch o.Rule {
		case "", "multiple":
			// Line rule "auto": the value is 240ths of a line.
			sp.Line = strconv.Itoa(int(o.Line*240 + 0.5))
			sp.LineRule = "auto"
		case "exact":
			sp.Line = strconv.Itoa(docx.PointsToTwips(o.Line))
			sp.LineRule = "exact"
		case "atLeast":
			sp.Line = strconv.Itoa(docx.PointsToTwips(o.Line))
			sp.LineRule = "atLeast"
		default:
			return nil, errf(KindInvalidParameter, "unknown line spacing rule %q (want multiple, exact or atLeast)", o.Rule)
		}
	}
	return sp, nil
}

// SetParagraphSpacing applies spacing to the paragraphs at the given
// indices. All indices are validated before anything changes.
func SetParagraphSpacing(doc *docx.Document, indices []int, opts SpacingOptions) error {
	paras := doc.Paragraphs()
	for _, idx := range indices {
		if err := checkIndex(idx, len(paras), "paragraph"); err != nil {
			return err
		}
	}
	tmpl, err := opts.spacing()
	if err != nil {
		return err
	}
	for _, idx := range indices {
		applySpacing(paras[idx], tmpl)
	}
	return nil
}

func applySpacing(p *docx.Paragraph, tmpl *docx.Spacing) {
	props := p.Props
	if props == nil {
		props = &docx.ParagraphProps{}
		p.Props = props
	}
	if props.Spacing == nil {
		props.Spacing = &docx.Spacing{}
	}
	sp := props.Spacing
	if tmpl.Before != "" {
		sp.Before = tmpl.Before
	}
	if tmpl.After != "" {
		sp.After = tmpl.After
	}
	if tmpl.Line != "" {
		sp.Line = tmpl.Line
		sp.LineRule = tmpl.LineRule
	}
}

// describeSpacing is used in result messages.
func describeSpacing(o SpacingOptions) string {
	s := ""
	if o.Before >= 0 {
		s += fmt.Sprintf(" before=%gpt", o.Before)
	}
	if o.After >= 0 {
		s += fmt.Sprintf(" after=%gpt", o.After)
	}
	if o.Line >= 0 {
		rule := o.Rule
		if rule == "" {
			rule = "multiple"
		}
		s += fmt.Sprintf(" line=%g (%s)", o.Line, rule)
	}
	if s == "" {
		return "no changes"
	}
	return s[1:]
}
