package docedit

import (
	"errors"
	"testing"

	"github.com/dgallion1/wordsmith/internal/docx"
)

func buildDoc(t *testing.T, texts ...string) *docx.Document {
	t.Helper()
	doc := docx.New()
	for _, text := range texts {
		if err := AddParagraph(doc, text, "", ""); err != nil {
			t.Fatalf("add paragraph %q: %v", text, err)
		}
	}
	return doc
}

func paragraphTexts(doc *docx.Document) []string {
	paras := doc.Paragraphs()
	out := make([]string, len(paras))
	for i, p := range paras {
		out[i] = p.Text()
	}
	return out
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	return de.Kind
}

func TestDeleteParagraphShiftsLaterIndices(t *testing.T) {
	doc := buildDoc(t, "zero", "one", "two", "three")
	n, err := DeleteParagraphs(doc, []int{1})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d, want 1", n)
	}
	got := paragraphTexts(doc)
	if len(got) != 3 {
		t.Fatalf("count = %d, want 3", len(got))
	}
	if got[1] != "two" {
		t.Errorf("paragraph 1 = %q, want two", got[1])
	}
}

func TestDeleteParagraphsOrderIndependent(t *testing.T) {
	a := buildDoc(t, "p0", "p1", "p2", "p3", "p4", "p5")
	b := buildDoc(t, "p0", "p1", "p2", "p3", "p4", "p5")

	if _, err := DeleteParagraphs(a, []int{3, 1, 4}); err != nil {
		t.Fatalf("delete [3,1,4]: %v", err)
	}
	if _, err := DeleteParagraphs(b, []int{4, 3, 1}); err != nil {
		t.Fatalf("delete [4,3,1]: %v", err)
	}

	ta, tb := paragraphTexts(a), paragraphTexts(b)
	if len(ta) != len(tb) {
		t.Fatalf("counts differ: %d vs %d", len(ta), len(tb))
	}
	for i := range ta {
		if ta[i] != tb[i] {
			t.Errorf("paragraph %d differs: %q vs %q", i, ta[i], tb[i])
		}
	}
	if want := []string{"p0", "p2", "p5"}; len(ta) != 3 || ta[0] != want[0] || ta[1] != want[1] || ta[2] != want[2] {
		t.Errorf("result = %v, want %v", ta, want)
	}
}

func TestDeleteParagraphsValidatesBeforeMutating(t *testing.T) {
	doc := buildDoc(t, "p0", "p1")
	_, err := DeleteParagraphs(doc, []int{0, 7})
	if err == nil {
		t.Fatalf("expected range error")
	}
	if kindOf(t, err) != KindRange {
		t.Errorf("kind = %v, want range", kindOf(t, err))
	}
	if len(doc.Paragraphs()) != 2 {
		t.Errorf("document mutated despite invalid index")
	}
}

func TestEditParagraphPreservesStyleAndAlignment(t *testing.T) {
	doc := docx.New()
	if err := AddParagraph(doc, "original", "Heading 2", "right"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := EditParagraphs(doc, 0, 0, []string{"replaced"}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	p := doc.Paragraphs()[0]
	if p.Text() != "replaced" {
		t.Errorf("text = %q, want replaced", p.Text())
	}
	if p.StyleID() != "Heading2" {
		t.Errorf("style = %q, want Heading2", p.StyleID())
	}
	if p.Alignment() != "right" {
		t.Errorf("alignment = %q, want right", p.Alignment())
	}
}

func TestEditParagraphRangeNeedsMatchingTexts(t *testing.T) {
	doc := buildDoc(t, "a", "b", "c")
	err := EditParagraphs(doc, 0, 2, []string{"only one"})
	if err == nil || kindOf(t, err) != KindInvalidParameter {
		t.Fatalf("expected invalid_parameter, got %v", err)
	}
	if err := EditParagraphs(doc, 1, 2, []string{"B", "C"}); err != nil {
		t.Fatalf("range edit: %v", err)
	}
	got := paragraphTexts(doc)
	if got[0] != "a" || got[1] != "B" || got[2] != "C" {
		t.Errorf("texts = %v", got)
	}
}

func TestFindReplaceCaseInsensitiveCountsAll(t *testing.T) {
	doc := buildDoc(t, "Hello World, hello!")
	count, err := FindReplace(doc, "hello", "goodbye", FindReplaceOptions{MatchCase: false})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if got := doc.Paragraphs()[0].Text(); got != "goodbye World, goodbye!" {
		t.Errorf("text = %q", got)
	}
}

func TestFindReplaceMatchCase(t *testing.T) {
	doc := buildDoc(t, "Hello World, hello!")
	count, err := FindReplace(doc, "hello", "goodbye", FindReplaceOptions{MatchCase: true})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if got := doc.Paragraphs()[0].Text(); got != "Hello World, goodbye!" {
		t.Errorf("text = %q", got)
	}
}

func TestFindReplaceWholeWordBoundaries(t *testing.T) {
	doc := buildDoc(t, "cat catalog concatenate cat")
	count, err := FindReplace(doc, "cat", "dog", FindReplaceOptions{MatchWholeWord: true})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2 (boundary check must skip catalog and concatenate)", count)
	}
	if got := doc.Paragraphs()[0].Text(); got != "dog catalog concatenate dog" {
		t.Errorf("text = %q", got)
	}
}

func TestFindReplaceCoversTableCells(t *testing.T) {
	doc := buildDoc(t, "alpha")
	if err := InsertTable(doc, 1, 2, AppendSentinel, [][]string{{"alpha", "beta alpha"}}, ""); err != nil {
		t.Fatalf("insert table: %v", err)
	}
	count, err := FindReplace(doc, "alpha", "omega", FindReplaceOptions{})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3 (one body, two in cells)", count)
	}
	cell, err := doc.Tables()[0].Cell(0, 1)
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if cell.Text() != "beta omega" {
		t.Errorf("cell text = %q", cell.Text())
	}
}

func TestFindReplacePreservesStyleOnMatchedParagraph(t *testing.T) {
	doc := docx.New()
	if err := AddParagraph(doc, "keep my style", "Heading 1", "center"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := FindReplace(doc, "style", "look", FindReplaceOptions{}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	p := doc.Paragraphs()[0]
	if p.StyleID() != "Heading1" || p.Alignment() != "center" {
		t.Errorf("style/alignment lost: %q / %q", p.StyleID(), p.Alignment())
	}
}

func TestFormatTextRangeSplitsRuns(t *testing.T) {
	doc := buildDoc(t, "make this bold please")
	bold := true
	if err := FormatTextRange(doc, 0, 5, 14, FormatOptions{Bold: &bold}); err != nil {
		t.Fatalf("format: %v", err)
	}
	p := doc.Paragraphs()[0]
	runs := p.Runs()
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	if runs[0].Text() != "make " || runs[1].Text() != "this bold" || runs[2].Text() != " please" {
		t.Errorf("segments = %q %q %q", runs[0].Text(), runs[1].Text(), runs[2].Text())
	}
	if runs[1].Props == nil || !runs[1].Props.Bold.IsOn() {
		t.Errorf("target segment is not bold")
	}
	if runs[0].Props != nil && runs[0].Props.Bold.IsOn() {
		t.Errorf("prefix segment must not be bold")
	}
	if p.Text() != "make this bold please" {
		t.Errorf("paragraph text changed: %q", p.Text())
	}
}

func TestFormatTextRangeValidatesRange(t *testing.T) {
	doc := buildDoc(t, "short")
	err := FormatTextRange(doc, 0, 2, 99, FormatOptions{})
	if err == nil || kindOf(t, err) != KindRange {
		t.Fatalf("expected range error, got %v", err)
	}
}

func TestSetParagraphSpacing(t *testing.T) {
	doc := buildDoc(t, "spaced")
	err := SetParagraphSpacing(doc, []int{0}, SpacingOptions{Before: 6, After: 12, Line: 1.5, Rule: "multiple"})
	if err != nil {
		t.Fatalf("spacing: %v", err)
	}
	sp := doc.Paragraphs()[0].Props.Spacing
	if sp == nil {
		t.Fatalf("no spacing set")
	}
	if sp.Before != "120" || sp.After != "240" {
		t.Errorf("before/after = %s/%s, want 120/240 twips", sp.Before, sp.After)
	}
	if sp.Line != "360" || sp.LineRule != "auto" {
		t.Errorf("line = %s rule %s, want 360 auto", sp.Line, sp.LineRule)
	}
}

func TestSetParagraphSpacingRejectsUnknownRule(t *testing.T) {
	doc := buildDoc(t, "spaced")
	err := SetParagraphSpacing(doc, []int{0}, SpacingOptions{Before: -1, After: -1, Line: 2, Rule: "bogus"})
	if err == nil || kindOf(t, err) != KindInvalidParameter {
		t.Fatalf("expected invalid_parameter, got %v", err)
	}
}

func TestInsertTableAfterParagraph(t *testing.T) {
	doc := buildDoc(t, "first", "second")
	if err := InsertTable(doc, 2, 2, 0, [][]string{{"a", "b"}, {"c", "d"}}, "Table Grid"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	items := doc.BodyItems()
	if _, ok := items[1].(*docx.Table); !ok {
		t.Fatalf("table is not directly after paragraph 0")
	}
	cell, err := doc.Tables()[0].Cell(1, 1)
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	if cell.Text() != "d" {
		t.Errorf("cell (1,1) = %q, want d", cell.Text())
	}
}

func TestInsertTableRejectsZeroRows(t *testing.T) {
	doc := buildDoc(t, "p")
	err := InsertTable(doc, 0, 2, AppendSentinel, nil, "")
	if err == nil || kindOf(t, err) != KindInvalidParameter {
		t.Fatalf("expected invalid_parameter, got %v", err)
	}
}

func TestBatchInsertTablesIsolatesFailures(t *testing.T) {
	doc := buildDoc(t, "p")
	res := BatchInsertTables(doc, []TableSpec{
		{Rows: 2, Cols: 2, AfterParagraph: AppendSentinel},
		{Rows: 0, Cols: 2, AfterParagraph: AppendSentinel},
		{Rows: 1, Cols: 1, AfterParagraph: AppendSentinel},
	})
	if res.Succeeded != 2 || res.Failed != 1 {
		t.Fatalf("succeeded/failed = %d/%d, want 2/1", res.Succeeded, res.Failed)
	}
	if len(res.Failures) != 1 || res.Failures[0].Item != 1 {
		t.Errorf("failures = %+v, want item 1", res.Failures)
	}
	if len(doc.Tables()) != 2 {
		t.Errorf("tables persisted = %d, want 2", len(doc.Tables()))
	}
}

func TestApplyStyleMissingWithoutCreateLeavesDocUnchanged(t *testing.T) {
	doc := buildDoc(t, "para")
	before := doc.Paragraphs()[0].StyleID()
	err := ApplyStyle(doc, "No Such Style", []int{0}, false, StyleProperties{})
	if err == nil || kindOf(t, err) != KindStyleNotFound {
		t.Fatalf("expected style_not_found, got %v", err)
	}
	if doc.Paragraphs()[0].StyleID() != before {
		t.Errorf("paragraph style changed despite failure")
	}
}

func TestApplyStyleCreateIfNotExists(t *testing.T) {
	doc := buildDoc(t, "para")
	props := StyleProperties{Font: &StyleFont{Name: "Georgia", Size: 13}}
	if err := ApplyStyle(doc, "Fancy", []int{0}, true, props); err != nil {
		t.Fatalf("apply: %v", err)
	}
	st := doc.Styles().ByName("Fancy")
	if st == nil {
		t.Fatalf("style was not synthesized")
	}
	if doc.Paragraphs()[0].StyleID() != st.StyleID {
		t.Errorf("paragraph not assigned the new style")
	}
}

func TestSetPageLayoutFailsEntirelyOnBadIndex(t *testing.T) {
	doc := buildDoc(t, "p")
	before := doc.Sections()[0].Orientation()
	_, err := SetPageLayout(doc, PageLayoutOptions{
		Orientation:    "landscape",
		SectionIndices: []int{0, 5},
	})
	if err == nil || kindOf(t, err) != KindRange {
		t.Fatalf("expected range error, got %v", err)
	}
	if doc.Sections()[0].Orientation() != before {
		t.Errorf("section 0 changed despite aggregate validation failure")
	}
}

func TestSetPageLayoutLandscapeSwapsDimensions(t *testing.T) {
	doc := buildDoc(t, "p")
	n, err := SetPageLayout(doc, PageLayoutOptions{Orientation: "landscape", ApplyToAll: true})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if n != 1 {
		t.Errorf("applied to %d sections, want 1", n)
	}
	if got := doc.Sections()[0].Orientation(); got != "landscape" {
		t.Errorf("orientation = %q, want landscape", got)
	}
}

func TestBuildStructureClearKeepsSections(t *testing.T) {
	doc := buildDoc(t, "old one", "old two")
	if err := InsertTable(doc, 1, 1, AppendSentinel, nil, ""); err != nil {
		t.Fatalf("insert: %v", err)
	}
	sectionsBefore := len(doc.Sections())

	res, skipped := BuildStructure(doc, []ContentElement{
		{Type: "heading", Level: 1, Text: "Fresh"},
		{Type: "paragraph", Text: "body"},
		{Type: "hologram"},
		{Type: "list", Items: []string{"a", "b"}, Ordered: true},
		{Type: "page_break"},
	}, true)

	if skipped != 1 {
		t.Errorf("skipped = %d, want 1 (unknown type)", skipped)
	}
	if res.Failed != 0 {
		t.Errorf("failures: %+v", res.Failures)
	}
	if len(doc.Tables()) != 0 {
		t.Errorf("clear left %d tables", len(doc.Tables()))
	}
	if len(doc.Sections()) != sectionsBefore {
		t.Errorf("sections = %d, want %d (clear must not touch sections)", len(doc.Sections()), sectionsBefore)
	}
	got := paragraphTexts(doc)
	if len(got) < 4 || got[0] != "Fresh" || got[1] != "body" || got[2] != "1. a" {
		t.Errorf("texts = %v", got)
	}
	if doc.Paragraphs()[0].StyleID() != "Heading1" {
		t.Errorf("heading style = %q", doc.Paragraphs()[0].StyleID())
	}
}

func TestBuildStructureIsolatesBadElements(t *testing.T) {
	doc := docx.New()
	res, _ := BuildStructure(doc, []ContentElement{
		{Type: "table", Rows: 0, Cols: 3},
		{Type: "paragraph", Text: "still here"},
	}, false)
	if res.Failed != 1 || res.Succeeded != 1 {
		t.Fatalf("succeeded/failed = %d/%d, want 1/1", res.Succeeded, res.Failed)
	}
	if got := paragraphTexts(doc); len(got) != 1 || got[0] != "still here" {
		t.Errorf("texts = %v", got)
	}
}

func TestInsertTableOfContentsAtStart(t *testing.T) {
	doc := buildDoc(t, "existing")
	if err := InsertTableOfContents(doc, "Contents", 3); err != nil {
		t.Fatalf("toc: %v", err)
	}
	paras := doc.Paragraphs()
	if paras[0].Text() != "Contents" {
		t.Errorf("first paragraph = %q, want Contents", paras[0].Text())
	}
	if paras[0].StyleID() != "Heading1" {
		t.Errorf("title style = %q", paras[0].StyleID())
	}
	if InsertTableOfContents(doc, "", 12) == nil {
		t.Errorf("expected invalid_parameter for level 12")
	}
}

func TestAddHeaderFooterAllSections(t *testing.T) {
	doc := buildDoc(t, "body")
	err := AddHeaderFooter(doc, HeaderFooterOptions{HeaderText: "Top", FooterText: "Bottom", PageNumbers: true})
	if err != nil {
		t.Fatalf("header/footer: %v", err)
	}
	hf := doc.EnsureHeader(doc.Sections()[0], "default")
	if len(hf.Paragraphs) != 1 || hf.Paragraphs[0].Text() != "Top" {
		t.Errorf("header = %+v", hf.Paragraphs)
	}
	ft := doc.EnsureFooter(doc.Sections()[0], "default")
	if len(ft.Paragraphs) != 2 {
		t.Errorf("footer paragraphs = %d, want text + page number field", len(ft.Paragraphs))
	}
}

func TestMergeDocumentsCarriesTextAndTables(t *testing.T) {
	src1 := docx.New()
	if err := AddParagraph(src1, "from one", "Heading 1", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	src2 := buildDoc(t, "from two")
	if err := InsertTable(src2, 1, 2, AppendSentinel, [][]string{{"x", "y"}}, ""); err != nil {
		t.Fatalf("insert: %v", err)
	}

	dst := docx.New()
	if err := MergeDocuments(dst, []*docx.Document{src1, src2}); err != nil {
		t.Fatalf("merge: %v", err)
	}
	texts := paragraphTexts(dst)
	var got []string
	for _, tx := range texts {
		if tx != "" {
			got = append(got, tx)
		}
	}
	if len(got) != 2 || got[0] != "from one" || got[1] != "from two" {
		t.Errorf("texts = %v", got)
	}
	if dst.Paragraphs()[0].StyleID() != "Heading1" {
		t.Errorf("merged style = %q", dst.Paragraphs()[0].StyleID())
	}
	if len(dst.Tables()) != 1 {
		t.Fatalf("tables = %d, want 1", len(dst.Tables()))
	}
}

func TestAddDropCap(t *testing.T) {
	doc := buildDoc(t, "Once upon a time")
	if err := AddDropCap(doc, 0, 0); err != nil {
		t.Fatalf("drop cap: %v", err)
	}
	runs := doc.Paragraphs()[0].Runs()
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	if runs[0].Text() != "O" || runs[1].Text() != "nce upon a time" {
		t.Errorf("segments = %q %q", runs[0].Text(), runs[1].Text())
	}
	if !runs[0].Props.Bold.IsOn() || runs[0].Props.Size == nil {
		t.Errorf("lead run not enlarged bold")
	}
}

func TestAddCustomBullets(t *testing.T) {
	doc := docx.New()
	if err := AddCustomBullets(doc, []string{"first", "second"}, "-"); err != nil {
		t.Fatalf("bullets: %v", err)
	}
	got := paragraphTexts(doc)
	if len(got) != 2 || got[0] != "- first" {
		t.Errorf("texts = %v", got)
	}
	if doc.Paragraphs()[0].StyleID() != "ListParagraph" {
		t.Errorf("style = %q, want ListParagraph", doc.Paragraphs()[0].StyleID())
	}
}

func TestAddWordArtValidatesColor(t *testing.T) {
	doc := docx.New()
	if err := AddWordArt(doc, "Banner", "not-a-color", 0, ""); err == nil {
		t.Errorf("expected invalid color error")
	}
	if err := AddWordArt(doc, "Banner", "00FF00", 0, ""); err != nil {
		t.Fatalf("word art: %v", err)
	}
	r := doc.Paragraphs()[0].Runs()[0]
	if r.Props.Color == nil || r.Props.Color.Val != "00FF00" {
		t.Errorf("color = %+v", r.Props.Color)
	}
}
