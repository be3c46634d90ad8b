package docx

import (
	"fmt"
	"strings"
)

// Text returns the concatenated text of all runs in the paragraph, including
// runs inside hyperlinks. Breaks and tabs contribute nothing.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, c := range p.Children {
		switch v := c.(type) {
		case *Run:
			sb.WriteString(v.Text())
		case *Hyperlink:
			for _, r := range v.Runs {
				sb.WriteString(r.Text())
			}
		}
	}
	return sb.String()
}

// Text returns the text content of the run.
func (r *Run) Text() string {
	var sb strings.Builder
	for _, item := range r.Items {
		if t, ok := item.(*Text); ok {
			sb.WriteString(t.Value)
		}
	}
	return sb.String()
}

// SetText replaces the paragraph content with a single run carrying the
// given text. Paragraph-level properties (style, alignment, spacing) are
// kept; run-level formatting from the first existing run is carried over so
// an edit does not silently strip bold or color.
func (p *Paragraph) SetText(text string) {
	var props *RunProps
	for _, c := range p.Children {
		if r, ok := c.(*Run); ok {
			props = r.Props
			break
		}
	}
	p.Children = []ParagraphItem{&Run{Props: props, Items: []RunItem{&Text{Value: text}}}}
}

// AddRun appends a run with the given text and returns it.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{Items: []RunItem{&Text{Value: text}}}
	p.Children = append(p.Children, r)
	return r
}

// Runs returns the direct runs of the paragraph, excluding hyperlink runs.
func (p *Paragraph) Runs() []*Run {
	var out []*Run
	for _, c := range p.Children {
		if r, ok := c.(*Run); ok {
			out = append(out, r)
		}
	}
	return out
}

// AllRuns returns every run in the paragraph, including those inside
// hyperlinks, in document order.
func (p *Paragraph) AllRuns() []*Run {
	var out []*Run
	for _, c := range p.Children {
		switch v := c.(type) {
		case *Run:
			out = append(out, v)
		case *Hyperlink:
			out = append(out, v.Runs...)
		}
	}
	return out
}

func (p *Paragraph) ensureProps() *ParagraphProps {
	if p.Props == nil {
		p.Props = &ParagraphProps{}
	}
	return p.Props
}

// StyleID returns the paragraph style id, or "" when none is set.
func (p *Paragraph) StyleID() string {
	if p.Props == nil || p.Props.Style == nil {
		return ""
	}
	return p.Props.Style.Val
}

// SetStyleID sets the paragraph style by style id.
func (p *Paragraph) SetStyleID(id string) {
	p.ensureProps().Style = &ValAttr{Val: id}
}

// Alignment names accepted by the tools and their wordprocessingml values.
// "justify" is the user-facing name for w:jc val="both".
var alignmentToJc = map[string]string{
	"left":    "left",
	"center":  "center",
	"right":   "right",
	"justify": "both",
}

var jcToAlignment = map[string]string{
	"left":   "left",
	"center": "center",
	"right":  "right",
	"both":   "justify",
}

// SetAlignment sets the paragraph alignment from a user-facing name.
func (p *Paragraph) SetAlignment(name string) error {
	jc, ok := alignmentToJc[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown alignment %q (want left, center, right or justify)", name)
	}
	p.ensureProps().Jc = &ValAttr{Val: jc}
	return nil
}

// Alignment returns the user-facing alignment name, or "" when unset.
func (p *Paragraph) Alignment() string {
	if p.Props == nil || p.Props.Jc == nil {
		return ""
	}
	return jcToAlignment[p.Props.Jc.Val]
}

func (r *Run) ensureProps() *RunProps {
	if r.Props == nil {
		r.Props = &RunProps{}
	}
	return r.Props
}

// SetBold toggles bold on the run.
func (r *Run) SetBold(v bool) {
	rp := r.ensureProps()
	if v {
		rp.Bold = &OnOff{}
	} else {
		rp.Bold = &OnOff{Val: "0"}
	}
}

// SetItalic toggles italic on the run.
func (r *Run) SetItalic(v bool) {
	rp := r.ensureProps()
	if v {
		rp.Italic = &OnOff{}
	} else {
		rp.Italic = &OnOff{Val: "0"}
	}
}

// SetUnderline sets single underline on or off.
func (r *Run) SetUnderline(v bool) {
	rp := r.ensureProps()
	if v {
		rp.Underline = &ValAttr{Val: "single"}
	} else {
		rp.Underline = &ValAttr{Val: "none"}
	}
}

// SetColor sets the run text color from a hex string like "FF0000".
func (r *Run) SetColor(hex string) error {
	norm, err := ParseHexColor(hex)
	if err != nil {
		return err
	}
	r.ensureProps().Color = &Color{Val: norm}
	return nil
}

// SetFontName sets the run font for the ascii and hAnsi ranges.
func (r *Run) SetFontName(name string) {
	rp := r.ensureProps()
	if rp.Fonts == nil {
		rp.Fonts = &Fonts{}
	}
	rp.Fonts.ASCII = name
	rp.Fonts.HAnsi = name
}

// SetFontSize sets the run font size in points.
func (r *Run) SetFontSize(points float64) {
	r.ensureProps().Size = &ValAttr{Val: itoa(PointsToHalfPoints(points))}
}

// highlightColors is the closed set of highlight names wordprocessingml
// accepts for w:highlight.
var highlightColors = map[string]bool{
	"yellow": true, "green": true, "cyan": true, "magenta": true,
	"blue": true, "red": true, "darkBlue": true, "darkCyan": true,
	"darkGreen": true, "darkMagenta": true, "darkRed": true, "darkYellow": true,
	"darkGray": true, "lightGray": true, "black": true, "white": true,
}

// SetHighlight sets the run highlight color by name.
func (r *Run) SetHighlight(name string) error {
	if !highlightColors[name] {
		return fmt.Errorf("unknown highlight color %q", name)
	}
	r.ensureProps().Highlight = &ValAttr{Val: name}
	return nil
}

// Clone returns a deep copy of the run properties, or nil.
func (rp *RunProps) Clone() *RunProps {
	if rp == nil {
		return nil
	}
	out := *rp
	if rp.Fonts != nil {
		f := *rp.Fonts
		out.Fonts = &f
	}
	cloneVal := func(v *ValAttr) *ValAttr {
		if v == nil {
			return nil
		}
		c := *v
		return &c
	}
	cloneOnOff := func(v *OnOff) *OnOff {
		if v == nil {
			return nil
		}
		c := *v
		return &c
	}
	out.Bold = cloneOnOff(rp.Bold)
	out.Italic = cloneOnOff(rp.Italic)
	if rp.Color != nil {
		c := *rp.Color
		out.Color = &c
	}
	out.Size = cloneVal(rp.Size)
	out.Highlight = cloneVal(rp.Highlight)
	out.Underline = cloneVal(rp.Underline)
	if rp.Shade != nil {
		s := *rp.Shade
		out.Shade = &s
	}
	return &out
}
