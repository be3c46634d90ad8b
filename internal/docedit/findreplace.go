package docedit

import (
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/dgallion1/wordsmith/internal/docx"
)

// FindReplaceOptions control matching in FindReplace.
type FindReplaceOptions struct {
	MatchCase      bool
	MatchWholeWord bool
}

// FindReplace scans every body paragraph and every table cell paragraph for
// occurrences of find and rewrites them to replace, returning the number of
// occurrences replaced. Matching is non-overlapping, left to right. Any
// paragraph with at least one match is collapsed to a single run holding
// the rewritten text; its style and alignment are preserved.
func FindReplace(doc *docx.Document, find, replace string, opts FindReplaceOptions) (int, error) {
	if find == "" {
		return 0, errf(KindInvalidParameter, "search text must not be empty")
	}
	needle := []rune(norm.NFC.String(find))
	repl := norm.NFC.String(replace)

	total := 0
	apply := func(p *docx.Paragraph) {
		text := norm.NFC.String(p.Text())
		rewritten, n := replaceAll([]rune(text), needle, repl, opts)
		if n > 0 {
			replaceParagraphText(p, rewritten)
			total += n
		}
	}

	for _, item := range doc.BodyItems() {
		switch v := item.(type) {
		case *docx.Paragraph:
			apply(v)
		case *docx.Table:
			for _, row := range v.Rows {
				for _, cell := range row.Cells {
					for _, b := range cell.Blocks {
						if p, ok := b.(*docx.Paragraph); ok {
							apply(p)
						}
					}
				}
			}
		}
	}
	return total, nil
}

func replaceAll(hay, needle []rune, repl string, opts FindReplaceOptions) (string, int) {
	var out []rune
	count := 0
	i := 0
	for i < len(hay) {
		if matchAt(hay, needle, i, opts) {
			count++
			out = append(out, []rune(repl)...)
			i += len(needle)
			continue
		}
		out = append(out, hay[i])
		i++
	}
	if count == 0 {
		return "", 0
	}
	return string(out), count
}

func matchAt(hay, needle []rune, pos int, opts FindReplaceOptions) bool {
	if pos+len(needle) > len(hay) {
		return false
	}
	for j, r := range needle {
		h := hay[pos+j]
		if opts.MatchCase {
			if h != r {
				return false
			}
		} else if !runeEqualFold(h, r) {
			return false
		}
	}
	if opts.MatchWholeWord {
		if pos > 0 && isWordRune(hay[pos-1]) {
			return false
		}
		if end := pos + len(needle); end < len(hay) && isWordRune(hay[end]) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// runeEqualFold compares two runes under Unicode simple case folding.
func runeEqualFold(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
