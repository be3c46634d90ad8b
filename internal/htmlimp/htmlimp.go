// Package htmlimp converts HTML markup into content elements for
// structural assembly.
package htmlimp

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/dgallion1/wordsmith/internal/docedit"
)

// ToElements parses HTML and flattens its body to typed content
// descriptors: h1-h6 become headings, p/blockquote become paragraphs,
// ul/ol become lists, table becomes a table, hr becomes a page break.
// Script, style and navigation chrome are skipped.
func ToElements(src string) ([]docedit.ContentElement, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var out []docedit.ContentElement
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				out = append(out, docedit.ContentElement{
					Type:  "heading",
					Level: level,
					Text:  textContent(n),
				})
				return
			}
			switch n.Data {
			case "script", "style", "nav":
				return
			case "p":
				if t := textContent(n); t != "" {
					out = append(out, docedit.ContentElement{Type: "paragraph", Text: t})
				}
				return
			case "blockquote":
				if t := textContent(n); t != "" {
					it := true
					out = append(out, docedit.ContentElement{
						Type: "paragraph", Text: t,
						Format: docedit.FormatOptions{Italic: &it},
					})
				}
				return
			case "pre":
				if t := textContent(n); t != "" {
					out = append(out, docedit.ContentElement{
						Type: "paragraph", Text: t,
						Format: docedit.FormatOptions{FontName: "Courier New"},
					})
				}
				return
			case "ul", "ol":
				var items []string
				for li := n.FirstChild; li != nil; li = li.NextSibling {
					if li.Type == html.ElementNode && li.Data == "li" {
						items = append(items, textContent(li))
					}
				}
				if len(items) > 0 {
					out = append(out, docedit.ContentElement{
						Type:    "list",
						Items:   items,
						Ordered: n.Data == "ol",
					})
				}
				return
			case "table":
				if el, ok := convertTable(n); ok {
					out = append(out, el)
				}
				return
			case "hr":
				out = append(out, docedit.ContentElement{Type: "page_break"})
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	return out, nil
}

func convertTable(n *html.Node) (docedit.ContentElement, bool) {
	var data [][]string
	cols := 0
	var rows func(*html.Node)
	rows = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					cells = append(cells, textContent(c))
				}
			}
			if len(cells) > cols {
				cols = len(cells)
			}
			data = append(data, cells)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rows(c)
		}
	}
	rows(n)
	if len(data) == 0 || cols == 0 {
		return docedit.ContentElement{}, false
	}
	return docedit.ContentElement{
		Type:       "table",
		Rows:       len(data),
		Cols:       cols,
		Data:       data,
		TableStyle: "Table Grid",
	}, true
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
