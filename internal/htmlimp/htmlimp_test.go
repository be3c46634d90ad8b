package htmlimp

import "testing"

const page = `<!DOCTYPE html>
<html>
<head><title>ignored</title><style>p { color: red }</style></head>
<body>
<nav><a href="/">home</a></nav>
<h1>Report</h1>
<p>Summary with <b>emphasis</b> and
  folded   whitespace.</p>
<blockquote>a quoted remark</blockquote>
<pre>raw
code</pre>
<ul><li>alpha</li><li>beta</li></ul>
<ol><li>step one</li><li>step two</li></ol>
<table>
  <tr><th>Key</th><th>Value</th></tr>
  <tr><td>a</td><td>1</td></tr>
</table>
<hr>
<p>after the break</p>
<script>alert("skip me")</script>
</body>
</html>`

func TestToElements(t *testing.T) {
	els, err := ToElements(page)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(els) != 9 {
		for i, el := range els {
			t.Logf("[%d] %s %q", i, el.Type, el.Text)
		}
		t.Fatalf("got %d elements, want 9", len(els))
	}

	if els[0].Type != "heading" || els[0].Level != 1 || els[0].Text != "Report" {
		t.Errorf("element 0 = %+v", els[0])
	}
	if els[1].Type != "paragraph" || els[1].Text != "Summary with emphasis and folded whitespace." {
		t.Errorf("element 1 = %+v", els[1])
	}
	if els[2].Type != "paragraph" || els[2].Format.Italic == nil || !*els[2].Format.Italic {
		t.Errorf("blockquote element = %+v", els[2])
	}
	if els[3].Type != "paragraph" || els[3].Format.FontName != "Courier New" {
		t.Errorf("pre element = %+v", els[3])
	}
	if els[4].Type != "list" || els[4].Ordered || len(els[4].Items) != 2 || els[4].Items[0] != "alpha" {
		t.Errorf("ul element = %+v", els[4])
	}
	if els[5].Type != "list" || !els[5].Ordered || els[5].Items[1] != "step two" {
		t.Errorf("ol element = %+v", els[5])
	}
	if els[6].Type != "table" || els[6].Rows != 2 || els[6].Cols != 2 {
		t.Errorf("table element = %+v", els[6])
	}
	if els[6].Data[0][0] != "Key" || els[6].Data[1][1] != "1" {
		t.Errorf("table data = %v", els[6].Data)
	}
	if els[7].Type != "page_break" {
		t.Errorf("element 7 = %+v", els[7])
	}
	if els[8].Type != "paragraph" || els[8].Text != "after the break" {
		t.Errorf("element 8 = %+v", els[8])
	}
}

func TestFragmentWithoutBody(t *testing.T) {
	els, err := ToElements("<h2>Loose heading</h2><p>loose paragraph</p>")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	if els[0].Type != "heading" || els[0].Level != 2 {
		t.Errorf("element 0 = %+v", els[0])
	}
}

func TestEmptyBody(t *testing.T) {
	els, err := ToElements("<html><body>   </body></html>")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(els) != 0 {
		t.Errorf("got %d elements, want 0", len(els))
	}
}
