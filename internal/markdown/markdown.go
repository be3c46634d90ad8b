// Package markdown converts Markdown source into content elements for
// structural assembly, using goldmark with the table extension.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/wordsmith/internal/docedit"
)

// ToElements parses Markdown and flattens it to the typed descriptors the
// structural assembly pass consumes: headings, paragraphs, lists, tables
// and thematic breaks (rendered as page breaks).
func ToElements(src []byte) []docedit.ContentElement {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var out []docedit.ContentElement
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, convertBlock(n, src)...)
	}
	return out
}

func convertBlock(n ast.Node, src []byte) []docedit.ContentElement {
	switch node := n.(type) {
	case *ast.Heading:
		level := node.Level
		if level > 6 {
			level = 6
		}
		return []docedit.ContentElement{{
			Type:  "heading",
			Level: level,
			Text:  inlineText(node, src),
		}}
	case *ast.Paragraph:
		t := inlineText(node, src)
		if t == "" {
			return nil
		}
		return []docedit.ContentElement{{Type: "paragraph", Text: t}}
	case *ast.List:
		var items []string
		for li := node.FirstChild(); li != nil; li = li.NextSibling() {
			items = append(items, inlineText(li, src))
		}
		return []docedit.ContentElement{{
			Type:    "list",
			Items:   items,
			Ordered: node.IsOrdered(),
		}}
	case *east.Table:
		return []docedit.ContentElement{convertTable(node, src)}
	case *ast.ThematicBreak:
		return []docedit.ContentElement{{Type: "page_break"}}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		t := blockLines(n, src)
		if t == "" {
			return nil
		}
		return []docedit.ContentElement{{
			Type:   "paragraph",
			Text:   t,
			Format: docedit.FormatOptions{FontName: "Courier New"},
		}}
	case *ast.Blockquote:
		var out []docedit.ContentElement
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			for _, el := range convertBlock(c, src) {
				if el.Type == "paragraph" {
					it := true
					el.Format.Italic = &it
				}
				out = append(out, el)
			}
		}
		return out
	default:
		t := inlineText(n, src)
		if t == "" {
			return nil
		}
		return []docedit.ContentElement{{Type: "paragraph", Text: t}}
	}
}

func convertTable(t *east.Table, src []byte) docedit.ContentElement {
	var data [][]string
	cols := 0
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, inlineText(cell, src))
		}
		if len(cells) > cols {
			cols = len(cells)
		}
		data = append(data, cells)
	}
	return docedit.ContentElement{
		Type:       "table",
		Rows:       len(data),
		Cols:       cols,
		Data:       data,
		TableStyle: "Table Grid",
	}
}

// inlineText flattens the inline content of a node to plain text.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.AutoLink:
			buf.Write(t.URL(src))
		default:
			buf.WriteString(inlineText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}

// blockLines reads a block node's raw source lines.
func blockLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return strings.TrimRight(buf.String(), "\n")
}
