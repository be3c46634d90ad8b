package docedit

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/dgallion1/wordsmith/internal/docx"
)

// StyleFont is the font property subset the interchange format records.
type StyleFont struct {
	Name      string  `json:"name,omitempty"`
	Size      float64 `json:"size,omitempty"` // points
	Bold      *bool   `json:"bold,omitempty"`
	Italic    *bool   `json:"italic,omitempty"`
	Underline *bool   `json:"underline,omitempty"`
	Color     string  `json:"color,omitempty"` // hex
}

// StyleParagraphFormat is the paragraph-format property subset the
// interchange format records. Spacing and indents are in points.
type StyleParagraphFormat struct {
	Alignment       string  `json:"alignment,omitempty"`
	LineSpacing     float64 `json:"line_spacing,omitempty"`
	LineSpacingRule string  `json:"line_spacing_rule,omitempty"` // multiple, exact, atLeast
	SpaceBefore     float64 `json:"space_before,omitempty"`
	SpaceAfter      float64 `json:"space_after,omitempty"`
	FirstLineIndent float64 `json:"first_line_indent,omitempty"`
	LeftIndent      float64 `json:"left_indent,omitempty"`
	RightIndent     float64 `json:"right_indent,omitempty"`
}

// StyleProperties groups the two property families.
type StyleProperties struct {
	Font            *StyleFont            `json:"font,omitempty"`
	ParagraphFormat *StyleParagraphFormat `json:"paragraph_format,omitempty"`
}

// StyleInterchange is one exported style. Properties outside the recorded
// subset (borders, numbering, shading, ...) are not preserved.
type StyleInterchange struct {
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	BasedOn    string          `json:"based_on,omitempty"`
	Properties StyleProperties `json:"properties"`
}

var validStyleTypes = map[string]bool{
	"paragraph": true, "character": true, "table": true, "numbering": true,
}

// CreateCustomStyle adds a new named style. A name collision is a
// duplicate_name failure; a based_on naming a missing style is
// style_not_found.
func CreateCustomStyle(doc *docx.Document, name, styleType, basedOn string, props StyleProperties) error {
	if name == "" {
		return errf(KindInvalidParameter, "style name must not be empty")
	}
	if styleType == "" {
		styleType = "paragraph"
	}
	if !validStyleTypes[styleType] {
		return errf(KindInvalidParameter, "unknown style type %q", styleType)
	}
	if doc.Styles().ByName(name) != nil {
		return errf(KindDuplicateName, "style %q already exists in document", name)
	}
	var basedOnID string
	if basedOn != "" {
		base := doc.Styles().ByName(basedOn)
		if base == nil {
			return errf(KindStyleNotFound, "base style %q not found in document", basedOn)
		}
		basedOnID = base.StyleID
	}

	st := &docx.Style{
		Type:    styleType,
		StyleID: docx.MakeStyleID(name),
		Name:    &docx.ValAttr{Val: name},
		QFormat: &docx.OnOff{},
	}
	if basedOnID != "" {
		st.BasedOn = &docx.ValAttr{Val: basedOnID}
	}
	if err := applyStyleProperties(st, props); err != nil {
		return err
	}
	doc.Styles().Add(st)
	return nil
}

// ApplyStyle assigns the named style to the given paragraphs. When the
// style is missing and createIfNotExists is set, it is synthesized from
// props first; otherwise the call fails with style_not_found and no
// paragraph changes.
func ApplyStyle(doc *docx.Document, styleName string, paraIndices []int, createIfNotExists bool, props StyleProperties) error {
	paras := doc.Paragraphs()
	for _, idx := range paraIndices {
		if err := checkIndex(idx, len(paras), "paragraph"); err != nil {
			return err
		}
	}
	st := doc.Styles().ByName(styleName)
	if st == nil {
		if !createIfNotExists {
			return errf(KindStyleNotFound, "style %q not found in document", styleName)
		}
		if err := CreateCustomStyle(doc, styleName, "paragraph", "", props); err != nil {
			return err
		}
		st = doc.Styles().ByName(styleName)
	}
	for _, idx := range paraIndices {
		paras[idx].SetStyleID(st.StyleID)
	}
	return nil
}

// ExportStyles serializes styles to the interchange form. An empty names
// filter exports every style in the table.
func ExportStyles(doc *docx.Document, names []string) ([]StyleInterchange, error) {
	wanted := map[string]bool{}
	for _, n := range names {
		wanted[n] = true
	}
	var out []StyleInterchange
	for _, st := range doc.Styles().Items {
		name := st.NameVal()
		if name == "" {
			continue
		}
		if len(wanted) > 0 && !wanted[name] {
			continue
		}
		out = append(out, styleToInterchange(doc, st))
	}
	if len(wanted) > 0 && len(out) < len(wanted) {
		for _, n := range names {
			if found := doc.Styles().ByName(n); found == nil {
				return nil, errf(KindStyleNotFound, "style %q not found in document", n)
			}
		}
	}
	return out, nil
}

// ExportStylesToFile writes the interchange JSON to path.
func ExportStylesToFile(doc *docx.Document, names []string, path string) (int, error) {
	entries, err := ExportStyles(doc, names)
	if err != nil {
		return 0, err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, wrapIO("encode styles", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, wrapIO("write style file", err)
	}
	return len(entries), nil
}

// ImportStyles merges interchange entries into the document. Entries whose
// name already exists are skipped unless overwrite is set; overwrite
// removes the existing style and recreates it. An empty names filter
// imports every entry.
func ImportStyles(doc *docx.Document, entries []StyleInterchange, names []string, overwrite bool) (added, skipped int, err error) {
	wanted := map[string]bool{}
	for _, n := range names {
		wanted[n] = true
	}
	for _, entry := range entries {
		if len(wanted) > 0 && !wanted[entry.Name] {
			continue
		}
		if doc.Styles().ByName(entry.Name) != nil {
			if !overwrite {
				skipped++
				continue
			}
			doc.Styles().Remove(entry.Name)
		}
		if cerr := CreateCustomStyle(doc, entry.Name, entry.Type, entry.BasedOn, entry.Properties); cerr != nil {
			return added, skipped, cerr
		}
		added++
	}
	return added, skipped, nil
}

// ImportStylesFromFile reads interchange JSON from path and merges it.
func ImportStylesFromFile(doc *docx.Document, path string, names []string, overwrite bool) (added, skipped int, err error) {
	data, rerr := os.ReadFile(path)
	if rerr != nil {
		return 0, 0, errf(KindNotFound, "style file %q not found", path)
	}
	var entries []StyleInterchange
	if jerr := json.Unmarshal(data, &entries); jerr != nil {
		return 0, 0, errf(KindInvalidParameter, "style file %q is not valid style JSON: %s", path, jerr.Error())
	}
	return ImportStyles(doc, entries, names, overwrite)
}

// CopyStyles copies styles between two open documents by exporting to a
// temporary interchange file and importing from it. The temporary file is
// removed on every path.
func CopyStyles(src, dst *docx.Document, names []string, overwrite bool) (added, skipped int, err error) {
	tmp, terr := os.CreateTemp("", "styles-*.json")
	if terr != nil {
		return 0, 0, wrapIO("create temp style file", terr)
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpName)

	if _, err := ExportStylesToFile(src, names, tmpName); err != nil {
		return 0, 0, err
	}
	return ImportStylesFromFile(dst, tmpName, names, overwrite)
}

func applyStyleProperties(st *docx.Style, props StyleProperties) error {
	if f := props.Font; f != nil {
		rp := &docx.RunProps{}
		if f.Name != "" {
			rp.Fonts = &docx.Fonts{ASCII: f.Name, HAnsi: f.Name}
		}
		if f.Size > 0 {
			rp.Size = &docx.ValAttr{Val: strconv.Itoa(docx.PointsToHalfPoints(f.Size))}
		}
		if f.Bold != nil {
			rp.Bold = onOff(*f.Bold)
		}
		if f.Italic != nil {
			rp.Italic = onOff(*f.Italic)
		}
		if f.Underline != nil {
			if *f.Underline {
				rp.Underline = &docx.ValAttr{Val: "single"}
			} else {
				rp.Underline = &docx.ValAttr{Val: "none"}
			}
		}
		if f.Color != "" {
			norm, err := docx.ParseHexColor(f.Color)
			if err != nil {
				return errf(KindInvalidParameter, "%s", err.Error())
			}
			rp.Color = &docx.Color{Val: norm}
		}
		st.RunProps = rp
	}
	if pf := props.ParagraphFormat; pf != nil {
		pp := &docx.ParagraphProps{}
		if pf.Alignment != "" {
			tmp := &docx.Paragraph{}
			if err := tmp.SetAlignment(pf.Alignment); err != nil {
				return errf(KindInvalidParameter, "%s", err.Error())
			}
			pp.Jc = tmp.Props.Jc
		}
		sp := SpacingOptions{Before: -1, After: -1, Line: -1, Rule: pf.LineSpacingRule}
		if pf.SpaceBefore > 0 {
			sp.Before = pf.SpaceBefore
		}
		if pf.SpaceAfter > 0 {
			sp.After = pf.SpaceAfter
		}
		if pf.LineSpacing > 0 {
			sp.Line = pf.LineSpacing
		}
		if sp.Before >= 0 || sp.After >= 0 || sp.Line >= 0 {
			spacing, err := sp.spacing()
			if err != nil {
				return err
			}
			pp.Spacing = spacing
		}
		if pf.LeftIndent != 0 || pf.RightIndent != 0 || pf.FirstLineIndent != 0 {
			ind := &docx.Indent{}
			if pf.LeftIndent != 0 {
				ind.Left = strconv.Itoa(docx.PointsToTwips(pf.LeftIndent))
			}
			if pf.RightIndent != 0 {
				ind.Right = strconv.Itoa(docx.PointsToTwips(pf.RightIndent))
			}
			if pf.FirstLineIndent != 0 {
				ind.FirstLine = strconv.Itoa(docx.PointsToTwips(pf.FirstLineIndent))
			}
			pp.Indent = ind
		}
		st.ParaProps = pp
	}
	return nil
}

func styleToInterchange(doc *docx.Document, st *docx.Style) StyleInterchange {
	entry := StyleInterchange{
		Name: st.NameVal(),
		Type: st.Type,
	}
	if st.BasedOn != nil {
		if base := doc.Styles().ByID(st.BasedOn.Val); base != nil {
			entry.BasedOn = base.NameVal()
		} else {
			entry.BasedOn = st.BasedOn.Val
		}
	}
	if rp := st.RunProps; rp != nil {
		f := &StyleFont{}
		if rp.Fonts != nil {
			f.Name = rp.Fonts.ASCII
		}
		if rp.Size != nil {
			if hp, err := strconv.Atoi(rp.Size.Val); err == nil {
				f.Size = docx.HalfPointsToPoints(hp)
			}
		}
		if rp.Bold != nil {
			f.Bold = boolPtr(rp.Bold.IsOn())
		}
		if rp.Italic != nil {
			f.Italic = boolPtr(rp.Italic.IsOn())
		}
		if rp.Underline != nil {
			f.Underline = boolPtr(rp.Underline.Val != "" && rp.Underline.Val != "none")
		}
		if rp.Color != nil {
			f.Color = rp.Color.Val
		}
		entry.Properties.Font = f
	}
	if pp := st.ParaProps; pp != nil {
		pf := &StyleParagraphFormat{}
		if pp.Jc != nil {
			tmp := &docx.Paragraph{Props: &docx.ParagraphProps{Jc: pp.Jc}}
			pf.Alignment = tmp.Alignment()
		}
		if sp := pp.Spacing; sp != nil {
			if v, err := strconv.Atoi(sp.Before); err == nil {
				pf.SpaceBefore = docx.TwipsToPoints(v)
			}
			if v, err := strconv.Atoi(sp.After); err == nil {
				pf.SpaceAfter = docx.TwipsToPoints(v)
			}
			if v, err := strconv.Atoi(sp.Line); err == nil && v > 0 {
				switch sp.LineRule {
				case "", "auto":
					pf.LineSpacing = float64(v) / 240
					pf.LineSpacingRule = "multiple"
				default:
					pf.LineSpacing = docx.TwipsToPoints(v)
					pf.LineSpacingRule = sp.LineRule
				}
			}
		}
		if ind := pp.Indent; ind != nil {
			if v, err := strconv.Atoi(ind.Left); err == nil {
				pf.LeftIndent = docx.TwipsToPoints(v)
			}
			if v, err := strconv.Atoi(ind.Right); err == nil {
				pf.RightIndent = docx.TwipsToPoints(v)
			}
			if v, err := strconv.Atoi(ind.FirstLine); err == nil {
				pf.FirstLineIndent = docx.TwipsToPoints(v)
			}
		}
		entry.Properties.ParagraphFormat = pf
	}
	return entry
}

func onOff(v bool) *docx.OnOff {
	if v {
		return &docx.OnOff{}
	}
	return &docx.OnOff{Val: "0"}
}

func boolPtr(v bool) *bool { return &v }
