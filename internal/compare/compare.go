// Package compare produces a line-oriented diff between the plain text of
// two documents.
package compare

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff compares two plain texts line by line and renders a unified-style
// listing: unchanged lines prefixed with two spaces, removals with "- ",
// insertions with "+ ". Returns the rendering plus the number of inserted
// and deleted lines.
func Diff(left, right string) (string, int, int) {
	dmp := diffmatchpatch.New()
	l, r, lines := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffMain(l, r, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	inserted, deleted := 0, 0
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range splitLines(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				inserted++
			case diffmatchpatch.DiffDelete:
				deleted++
			}
		}
	}
	return sb.String(), inserted, deleted
}

// Summary renders a one-line description of a diff result.
func Summary(inserted, deleted int) string {
	if inserted == 0 && deleted == 0 {
		return "documents have identical text content"
	}
	return fmt.Sprintf("%d lines added, %d lines removed", inserted, deleted)
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
