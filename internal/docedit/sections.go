package docedit

import (
	"fmt"
	"strings"

	"github.com/dgallion1/wordsmith/internal/docx"
)

// PageLayoutOptions describes a page geometry change. Zero values mean
// "leave as is". Margins map side name to centimetres.
type PageLayoutOptions struct {
	Orientation string
	WidthCm     float64
	HeightCm    float64
	Margins     map[string]float64

	// Targets: ApplyToAll wins over SectionIndices; when neither is given
	// the change applies to section 0.
	SectionIndices []int
	ApplyToAll     bool
}

// SetPageLayout applies orientation, page size and margins to the targeted
// sections. Unlike the permissive batch operations, every requested section
// index is validated up front and any out-of-range index fails the whole
// call before a single section changes.
func SetPageLayout(doc *docx.Document, opts PageLayoutOptions) (int, error) {
	sections := doc.Sections()

	var targets []int
	switch {
	case opts.ApplyToAll:
		for i := range sections {
			targets = append(targets, i)
		}
	case len(opts.SectionIndices) > 0:
		var bad []string
		for _, idx := range opts.SectionIndices {
			if idx < 0 || idx >= len(sections) {
				bad = append(bad, fmt.Sprintf("%d", idx))
			}
		}
		if len(bad) > 0 {
			return 0, errf(KindRange, "section indices out of range: %s (document has %d sections)",
				strings.Join(bad, ", "), len(sections))
		}
		targets = opts.SectionIndices
	default:
		if len(sections) == 0 {
			return 0, errf(KindRange, "document has no sections")
		}
		targets = []int{0}
	}

	if opts.Orientation != "" && opts.Orientation != "portrait" && opts.Orientation != "landscape" {
		return 0, errf(KindInvalidParameter, "unknown orientation %q (want portrait or landscape)", opts.Orientation)
	}
	for side := range opts.Margins {
		switch side {
		case "top", "bottom", "left", "right", "header", "footer":
		default:
			return 0, errf(KindInvalidParameter, "unknown margin side %q", side)
		}
	}

	for _, idx := range targets {
		s := sections[idx]
		if opts.WidthCm > 0 && opts.HeightCm > 0 {
			s.SetPageSize(opts.WidthCm, opts.HeightCm)
		}
		if opts.Orientation != "" {
			if err := s.SetOrientation(opts.Orientation); err != nil {
				return 0, errf(KindInvalidParameter, "%s", err.Error())
			}
		}
		for side, cm := range opts.Margins {
			if err := s.SetMarginCm(side, cm); err != nil {
				return 0, errf(KindInvalidParameter, "%s", err.Error())
			}
		}
	}
	return len(targets), nil
}

// HeaderFooterOptions describes one add_header_footer call.
type HeaderFooterOptions struct {
	HeaderText  string
	FooterText  string
	Alignment   string // for both texts; default center
	PageNumbers bool   // append a PAGE field paragraph to the footer
}

// AddHeaderFooter sets header and/or footer text on every section of the
// document. The inserted paragraphs use the built-in Header and Footer
// styles.
func AddHeaderFooter(doc *docx.Document, opts HeaderFooterOptions) error {
	if opts.HeaderText == "" && opts.FooterText == "" && !opts.PageNumbers {
		return errf(KindInvalidParameter, "nothing to add: no header text, footer text or page numbers requested")
	}
	alignment := opts.Alignment
	if alignment == "" {
		alignment = "center"
	}
	for _, s := range doc.Sections() {
		if opts.HeaderText != "" {
			hf := doc.EnsureHeader(s, "default")
			if err := hf.SetText(opts.HeaderText, "Header", alignment); err != nil {
				return errf(KindInvalidParameter, "%s", err.Error())
			}
		}
		if opts.FooterText != "" || opts.PageNumbers {
			hf := doc.EnsureFooter(s, "default")
			if opts.FooterText != "" {
				if err := hf.SetText(opts.FooterText, "Footer", alignment); err != nil {
					return errf(KindInvalidParameter, "%s", err.Error())
				}
			}
			if opts.PageNumbers {
				hf.AddPageNumberField("Footer")
			}
		}
	}
	return nil
}

// InsertTableOfContents inserts a TOC field at the start of the document
// covering heading levels 1..maxLevel, preceded by a titled heading when
// title is non-empty. The field is inserted unevaluated; the consuming word
// processor populates it on update.
func InsertTableOfContents(doc *docx.Document, title string, maxLevel int) error {
	if maxLevel < 1 || maxLevel > 9 {
		return errf(KindInvalidParameter, "TOC level %d out of range 1..9", maxLevel)
	}

	field := &docx.Paragraph{}
	field.Children = append(field.Children,
		&docx.Run{Items: []docx.RunItem{&docx.FieldChar{Type: "begin"}}},
		&docx.Run{Items: []docx.RunItem{&docx.InstrText{Value: fmt.Sprintf(` TOC \o "1-%d" \h \z \u `, maxLevel)}}},
		&docx.Run{Items: []docx.RunItem{&docx.FieldChar{Type: "separate"}}},
		&docx.Run{Items: []docx.RunItem{&docx.Text{Value: "Table of contents (update field to populate)"}}},
		&docx.Run{Items: []docx.RunItem{&docx.FieldChar{Type: "end"}}},
	)

	var prepend []docx.BlockItem
	if title != "" {
		tp := &docx.Paragraph{}
		tp.AddRun(title)
		tp.SetStyleID(doc.Styles().StyleIDForName("Heading 1"))
		prepend = append(prepend, tp)
	}
	prepend = append(prepend, field)
	doc.SetBodyItems(append(prepend, doc.BodyItems()...))
	return nil
}
