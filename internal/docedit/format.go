package docedit

import (
	"github.com/dgallion1/wordsmith/internal/docx"
)

// FormatOptions is the run-level formatting a caller can request. Nil
// pointers mean "leave as is".
type FormatOptions struct {
	Bold      *bool
	Italic    *bool
	Underline *bool
	FontName  string
	FontSize  float64 // points; 0 means unset
	Color     string  // hex, e.g. "FF0000"
	Highlight string  // named highlight color
}

func (o FormatOptions) applyTo(r *docx.Run) error {
	if o.Bold != nil {
		r.SetBold(*o.Bold)
	}
	if o.Italic != nil {
		r.SetItalic(*o.Italic)
	}
	if o.Underline != nil {
		r.SetUnderline(*o.Underline)
	}
	if o.FontName != "" {
		r.SetFontName(o.FontName)
	}
	if o.FontSize > 0 {
		r.SetFontSize(o.FontSize)
	}
	if o.Color != "" {
		if err := r.SetColor(o.Color); err != nil {
			return errf(KindInvalidParameter, "%s", err.Error())
		}
	}
	if o.Highlight != "" {
		if err := r.SetHighlight(o.Highlight); err != nil {
			return errf(KindInvalidParameter, "%s", err.Error())
		}
	}
	return nil
}

// FormatTextRange applies formatting to the character range [start, end) of
// the paragraph at paraIdx. The paragraph is rebuilt as up to three runs:
// the text before the range and after it keep the formatting of the
// paragraph's first run; the target range gets that formatting plus the
// requested changes.
func FormatTextRange(doc *docx.Document, paraIdx, start, end int, opts FormatOptions) error {
	paras := doc.Paragraphs()
	if err := checkIndex(paraIdx, len(paras), "paragraph"); err != nil {
		return err
	}
	p := paras[paraIdx]
	text := []rune(p.Text())
	if start < 0 || end > len(text) || start >= end {
		return errf(KindRange, "character range [%d, %d) invalid for paragraph of length %d", start, end, len(text))
	}

	var base *docx.RunProps
	if runs := p.AllRuns(); len(runs) > 0 {
		base = runs[0].Props
	}
	style := p.StyleID()
	alignment := p.Alignment()

	p.Children = nil
	if start > 0 {
		r := p.AddRun(string(text[:start]))
		r.Props = base.Clone()
	}
	target := p.AddRun(string(text[start:end]))
	target.Props = base.Clone()
	if err := opts.applyTo(target); err != nil {
		return err
	}
	if end < len(text) {
		r := p.AddRun(string(text[end:]))
		r.Props = base.Clone()
	}
	if style != "" {
		p.SetStyleID(style)
	}
	if alignment != "" {
		p.SetAlignment(alignment)
	}
	return nil
}

// FormatParagraph applies formatting uniformly to every run of the
// paragraph at paraIdx, and optionally sets its alignment.
func FormatParagraph(doc *docx.Document, paraIdx int, opts FormatOptions, alignment string) error {
	paras := doc.Paragraphs()
	if err := checkIndex(paraIdx, len(paras), "paragraph"); err != nil {
		return err
	}
	p := paras[paraIdx]
	for _, r := range p.AllRuns() {
		if err := opts.applyTo(r); err != nil {
			return err
		}
	}
	if alignment != "" {
		if err := p.SetAlignment(alignment); err != nil {
			return errf(KindInvalidParameter, "%s", err.Error())
		}
	}
	return nil
}

// ApplyConsistentFormatting applies one formatting to every run of every
// paragraph carrying the named style, returning the number of paragraphs
// touched.
func ApplyConsistentFormatting(doc *docx.Document, styleName string, opts FormatOptions) (int, error) {
	st := doc.Styles().ByName(styleName)
	if st == nil {
		return 0, errf(KindStyleNotFound, "style %q not found in document", styleName)
	}
	touched := 0
	for _, p := range doc.Paragraphs() {
		if p.StyleID() != st.StyleID {
			continue
		}
		for _, r := range p.AllRuns() {
			if err := opts.applyTo(r); err != nil {
				return touched, err
			}
		}
		touched++
	}
	return touched, nil
}
