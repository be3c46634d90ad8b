package docedit

import (
	"path/filepath"
	"testing"

	"github.com/dgallion1/wordsmith/internal/docx"
)

func fancyProps() StyleProperties {
	b := true
	return StyleProperties{
		Font: &StyleFont{Name: "Georgia", Size: 13, Bold: &b, Color: "112233"},
		ParagraphFormat: &StyleParagraphFormat{
			Alignment:       "justify",
			SpaceBefore:     6,
			SpaceAfter:      12,
			LineSpacing:     1.5,
			LineSpacingRule: "multiple",
			LeftIndent:      18,
		},
	}
}

func TestCreateCustomStyle(t *testing.T) {
	doc := docx.New()
	if err := CreateCustomStyle(doc, "Callout", "paragraph", "Normal", fancyProps()); err != nil {
		t.Fatalf("create: %v", err)
	}
	st := doc.Styles().ByName("Callout")
	if st == nil {
		t.Fatalf("style not added")
	}
	if st.StyleID != "Callout" {
		t.Errorf("style id = %q", st.StyleID)
	}
	if st.BasedOn == nil || st.BasedOn.Val != "Normal" {
		t.Errorf("based_on = %+v, want Normal", st.BasedOn)
	}
	if st.RunProps == nil || st.RunProps.Size == nil || st.RunProps.Size.Val != "26" {
		t.Errorf("font size not recorded in half-points: %+v", st.RunProps)
	}
	if st.ParaProps == nil || st.ParaProps.Indent == nil || st.ParaProps.Indent.Left != "360" {
		t.Errorf("left indent not recorded in twips: %+v", st.ParaProps)
	}
}

func TestCreateCustomStyleDuplicateName(t *testing.T) {
	doc := docx.New()
	err := CreateCustomStyle(doc, "Heading 1", "paragraph", "", StyleProperties{})
	if err == nil || kindOf(t, err) != KindDuplicateName {
		t.Fatalf("expected duplicate_name, got %v", err)
	}
}

func TestCreateCustomStyleMissingBase(t *testing.T) {
	doc := docx.New()
	err := CreateCustomStyle(doc, "Orphan", "paragraph", "No Such Base", StyleProperties{})
	if err == nil || kindOf(t, err) != KindStyleNotFound {
		t.Fatalf("expected style_not_found, got %v", err)
	}
	if doc.Styles().ByName("Orphan") != nil {
		t.Errorf("style added despite missing base")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := docx.New()
	if err := CreateCustomStyle(src, "Callout", "paragraph", "Normal", fancyProps()); err != nil {
		t.Fatalf("create: %v", err)
	}

	entries, err := ExportStyles(src, []string{"Callout"})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("exported %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Name != "Callout" || e.Type != "paragraph" || e.BasedOn != "Normal" {
		t.Errorf("entry header = %+v", e)
	}
	f := e.Properties.Font
	if f == nil || f.Name != "Georgia" || f.Size != 13 || f.Bold == nil || !*f.Bold || f.Color != "112233" {
		t.Errorf("font round trip = %+v", f)
	}
	pf := e.Properties.ParagraphFormat
	if pf == nil || pf.Alignment != "justify" || pf.SpaceBefore != 6 || pf.SpaceAfter != 12 {
		t.Errorf("paragraph format round trip = %+v", pf)
	}
	if pf != nil && (pf.LineSpacing != 1.5 || pf.LineSpacingRule != "multiple" || pf.LeftIndent != 18) {
		t.Errorf("spacing/indent round trip = %+v", pf)
	}

	dst := docx.New()
	added, skipped, err := ImportStyles(dst, entries, nil, false)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if added != 1 || skipped != 0 {
		t.Errorf("added/skipped = %d/%d, want 1/0", added, skipped)
	}
	st := dst.Styles().ByName("Callout")
	if st == nil {
		t.Fatalf("imported style missing")
	}
	if st.RunProps == nil || st.RunProps.Color == nil || st.RunProps.Color.Val != "112233" {
		t.Errorf("color lost on import: %+v", st.RunProps)
	}
}

func TestImportStylesSkipsExistingWithoutOverwrite(t *testing.T) {
	doc := docx.New()
	entries := []StyleInterchange{
		{Name: "Heading 1", Type: "paragraph"},
		{Name: "Brand New", Type: "paragraph"},
	}
	added, skipped, err := ImportStyles(doc, entries, nil, false)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if added != 1 || skipped != 1 {
		t.Errorf("added/skipped = %d/%d, want 1/1", added, skipped)
	}
}

func TestImportStylesOverwriteReplaces(t *testing.T) {
	doc := docx.New()
	sz := 13.0
	entries := []StyleInterchange{{
		Name: "Header", Type: "paragraph",
		Properties: StyleProperties{Font: &StyleFont{Size: sz}},
	}}
	added, skipped, err := ImportStyles(doc, entries, nil, true)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if added != 1 || skipped != 0 {
		t.Errorf("added/skipped = %d/%d, want 1/0", added, skipped)
	}
	st := doc.Styles().ByName("Header")
	if st == nil || st.RunProps == nil || st.RunProps.Size == nil || st.RunProps.Size.Val != "26" {
		t.Errorf("overwrite did not replace properties: %+v", st)
	}
}

func TestExportStylesMissingName(t *testing.T) {
	doc := docx.New()
	_, err := ExportStyles(doc, []string{"Heading 1", "Ghost"})
	if err == nil || kindOf(t, err) != KindStyleNotFound {
		t.Fatalf("expected style_not_found, got %v", err)
	}
}

func TestExportImportThroughFile(t *testing.T) {
	src := docx.New()
	if err := CreateCustomStyle(src, "Callout", "paragraph", "", fancyProps()); err != nil {
		t.Fatalf("create: %v", err)
	}
	path := filepath.Join(t.TempDir(), "styles.json")
	n, err := ExportStylesToFile(src, []string{"Callout"}, path)
	if err != nil {
		t.Fatalf("export file: %v", err)
	}
	if n != 1 {
		t.Errorf("wrote %d entries, want 1", n)
	}
	dst := docx.New()
	added, _, err := ImportStylesFromFile(dst, path, nil, false)
	if err != nil {
		t.Fatalf("import file: %v", err)
	}
	if added != 1 || dst.Styles().ByName("Callout") == nil {
		t.Errorf("file round trip failed: added=%d", added)
	}
}

func TestCopyStylesBetweenDocuments(t *testing.T) {
	src := docx.New()
	if err := CreateCustomStyle(src, "Callout", "paragraph", "", fancyProps()); err != nil {
		t.Fatalf("create: %v", err)
	}
	dst := docx.New()
	added, skipped, err := CopyStyles(src, dst, []string{"Callout"}, false)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if added != 1 || skipped != 0 {
		t.Errorf("added/skipped = %d/%d, want 1/0", added, skipped)
	}
	if dst.Styles().ByName("Callout") == nil {
		t.Errorf("style not copied")
	}
}
