package docx

import (
	"path/filepath"
	"testing"
)

func TestUnits(t *testing.T) {
	if got := CmToTwips(1); got != 567 {
		t.Errorf("CmToTwips(1) = %d, want 567", got)
	}
	if got := PointsToTwips(12); got != 240 {
		t.Errorf("PointsToTwips(12) = %d, want 240", got)
	}
	if got := PointsToHalfPoints(11); got != 22 {
		t.Errorf("PointsToHalfPoints(11) = %d, want 22", got)
	}
	if got := HalfPointsToPoints(22); got != 11 {
		t.Errorf("HalfPointsToPoints(22) = %g, want 11", got)
	}
	if got := CmToEMU(1); got != 360000 {
		t.Errorf("CmToEMU(1) = %d, want 360000", got)
	}
	if got := PixelsToEMU(96); got != 914400 {
		t.Errorf("PixelsToEMU(96) = %d, want 914400", got)
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"FF0000", "FF0000", false},
		{"#ff0000", "FF0000", false},
		{"1f4e79", "1F4E79", false},
		{"red", "", true},
		{"FF00", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		got, err := ParseHexColor(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q): expected error, got %q", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseHexColor(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNewDocumentHasBuiltinStyles(t *testing.T) {
	doc := New()
	for _, name := range []string{"Normal", "Heading 1", "Heading 6", "Title", "List Bullet", "Table Grid", "Header", "Footer"} {
		if doc.Styles().ByName(name) == nil {
			t.Errorf("new document missing built-in style %q", name)
		}
	}
	sections := doc.Sections()
	if len(sections) != 1 {
		t.Fatalf("new document has %d sections, want 1", len(sections))
	}
	if sections[0].Orientation() != "portrait" {
		t.Errorf("new document orientation = %q, want portrait", sections[0].Orientation())
	}
}

func TestSaveAndOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.docx")

	doc := New()
	p := doc.AddParagraph()
	p.AddRun("Hello, world")
	p.SetStyleID("Heading1")
	if err := p.SetAlignment("center"); err != nil {
		t.Fatalf("set alignment: %v", err)
	}

	p2 := doc.AddParagraph()
	r := p2.AddRun("styled text")
	r.SetBold(true)
	r.SetFontSize(14)
	if err := r.SetColor("ff0000"); err != nil {
		t.Fatalf("set color: %v", err)
	}

	table := NewTable(2, 3)
	cell, err := table.Cell(1, 2)
	if err != nil {
		t.Fatalf("cell: %v", err)
	}
	cell.SetText("corner")
	doc.AddBlock(table)

	if err := doc.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	paras := got.Paragraphs()
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(paras))
	}
	if paras[0].Text() != "Hello, world" {
		t.Errorf("paragraph 0 text = %q, want %q", paras[0].Text(), "Hello, world")
	}
	if paras[0].StyleID() != "Heading1" {
		t.Errorf("paragraph 0 style = %q, want Heading1", paras[0].StyleID())
	}
	if paras[0].Alignment() != "center" {
		t.Errorf("paragraph 0 alignment = %q, want center", paras[0].Alignment())
	}

	runs := paras[1].Runs()
	if len(runs) != 1 {
		t.Fatalf("paragraph 1 has %d runs, want 1", len(runs))
	}
	rp := runs[0].Props
	if rp == nil || !rp.Bold.IsOn() {
		t.Errorf("paragraph 1 run lost bold")
	}
	if rp == nil || rp.Color == nil || rp.Color.Val != "FF0000" {
		t.Errorf("paragraph 1 run lost color")
	}
	if rp == nil || rp.Size == nil || rp.Size.Val != "28" {
		t.Errorf("paragraph 1 run size = %v, want 28 half-points", rp.Size)
	}

	tables := got.Tables()
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	rows, cols := tables[0].Dims()
	if rows != 2 || cols != 3 {
		t.Errorf("table dims = %dx%d, want 2x3", rows, cols)
	}
	gotCell, err := tables[0].Cell(1, 2)
	if err != nil {
		t.Fatalf("cell after reopen: %v", err)
	}
	if gotCell.Text() != "corner" {
		t.Errorf("cell text = %q, want corner", gotCell.Text())
	}

	if got.Styles().ByName("Heading 1") == nil {
		t.Errorf("styles lost across round trip")
	}
}

func TestHeaderFooterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hf.docx")

	doc := New()
	doc.AddParagraph().AddRun("body")
	sections := doc.Sections()
	hf := doc.EnsureHeader(sections[0], "default")
	if err := hf.SetText("Company Confidential", "Header", "center"); err != nil {
		t.Fatalf("set header text: %v", err)
	}
	ft := doc.EnsureFooter(sections[0], "default")
	ft.AddPageNumberField("Footer")

	if err := doc.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	gotHF := got.EnsureHeader(got.Sections()[0], "default")
	if len(gotHF.Paragraphs) != 1 || gotHF.Paragraphs[0].Text() != "Company Confidential" {
		t.Errorf("header text did not survive round trip: %+v", gotHF.Paragraphs)
	}
}

func TestSetTextPreservesFirstRunFormatting(t *testing.T) {
	doc := New()
	p := doc.AddParagraph()
	r := p.AddRun("old")
	r.SetItalic(true)
	p.AddRun(" mixed")

	p.SetText("new")
	runs := p.Runs()
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Text() != "new" {
		t.Errorf("text = %q, want new", runs[0].Text())
	}
	if runs[0].Props == nil || !runs[0].Props.Italic.IsOn() {
		t.Errorf("first-run italic was not carried over")
	}
}

func TestRemoveParagraphShiftsIndices(t *testing.T) {
	doc := New()
	for _, text := range []string{"zero", "one", "two", "three"} {
		doc.AddParagraph().AddRun(text)
	}
	if err := doc.RemoveParagraph(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	paras := doc.Paragraphs()
	if len(paras) != 3 {
		t.Fatalf("got %d paragraphs, want 3", len(paras))
	}
	if paras[1].Text() != "two" {
		t.Errorf("paragraph 1 = %q, want two (element previously at 2)", paras[1].Text())
	}
	if err := doc.RemoveParagraph(5); err == nil {
		t.Errorf("expected error removing out-of-range paragraph")
	}
}
