package markdown

import (
	"strings"
	"testing"
)

const sample = `# Title

Intro paragraph with **bold** text.

## Details

- first
- second

1. one
2. two

| Name | Value |
|------|-------|
| a    | 1     |
| b    | 2     |

---

` + "```\ncode line\n```" + `

> quoted wisdom
`

func TestToElements(t *testing.T) {
	els := ToElements([]byte(sample))
	if len(els) != 9 {
		for i, el := range els {
			t.Logf("[%d] %s %q", i, el.Type, el.Text)
		}
		t.Fatalf("got %d elements, want 9", len(els))
	}

	if els[0].Type != "heading" || els[0].Level != 1 || els[0].Text != "Title" {
		t.Errorf("element 0 = %+v", els[0])
	}
	if els[1].Type != "paragraph" || els[1].Text != "Intro paragraph with bold text." {
		t.Errorf("element 1 = %+v", els[1])
	}
	if els[2].Type != "heading" || els[2].Level != 2 {
		t.Errorf("element 2 = %+v", els[2])
	}
	if els[3].Type != "list" || els[3].Ordered || len(els[3].Items) != 2 || els[3].Items[0] != "first" {
		t.Errorf("element 3 = %+v", els[3])
	}
	if els[4].Type != "list" || !els[4].Ordered || len(els[4].Items) != 2 || els[4].Items[1] != "two" {
		t.Errorf("element 4 = %+v", els[4])
	}
	if els[5].Type != "table" || els[5].Rows != 3 || els[5].Cols != 2 {
		t.Errorf("element 5 = %+v", els[5])
	}
	if els[5].Data[0][0] != "Name" || els[5].Data[2][1] != "2" {
		t.Errorf("table data = %v", els[5].Data)
	}
	if els[6].Type != "page_break" {
		t.Errorf("element 6 = %+v", els[6])
	}
	if els[7].Type != "paragraph" || els[7].Text != "code line" || els[7].Format.FontName != "Courier New" {
		t.Errorf("element 7 = %+v", els[7])
	}
	if els[8].Type != "paragraph" || els[8].Text != "quoted wisdom" {
		t.Errorf("element 8 = %+v", els[8])
	}
	if els[8].Format.Italic == nil || !*els[8].Format.Italic {
		t.Errorf("blockquote paragraph should be italic")
	}
}

func TestHeadingLevelsCapAtSix(t *testing.T) {
	els := ToElements([]byte("####### too deep"))
	// Seven hashes is not a heading in CommonMark; it parses as a paragraph.
	if len(els) != 1 || els[0].Type != "paragraph" {
		t.Fatalf("elements = %+v", els)
	}

	els = ToElements([]byte("###### six"))
	if len(els) != 1 || els[0].Type != "heading" || els[0].Level != 6 {
		t.Fatalf("elements = %+v", els)
	}
}

func TestSoftBreaksJoinWithSpaces(t *testing.T) {
	els := ToElements([]byte("line one\nline two"))
	if len(els) != 1 {
		t.Fatalf("got %d elements, want 1", len(els))
	}
	if els[0].Text != "line one line two" {
		t.Errorf("text = %q", els[0].Text)
	}
}

func TestEmptyInput(t *testing.T) {
	if els := ToElements([]byte("")); len(els) != 0 {
		t.Errorf("empty input produced %d elements", len(els))
	}
	if els := ToElements([]byte("   \n\n  ")); len(els) != 0 {
		t.Errorf("blank input produced %d elements", len(els))
	}
}

func TestAutoLinkKeepsURL(t *testing.T) {
	els := ToElements([]byte("see <https://example.com/docs> for details"))
	if len(els) != 1 {
		t.Fatalf("got %d elements, want 1", len(els))
	}
	if !strings.Contains(els[0].Text, "https://example.com/docs") {
		t.Errorf("text = %q", els[0].Text)
	}
}
