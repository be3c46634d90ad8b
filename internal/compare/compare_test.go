package compare

import (
	"strings"
	"testing"
)

func TestDiffIdentical(t *testing.T) {
	text := "alpha\nbeta\ngamma\n"
	rendering, ins, del := Diff(text, text)
	if ins != 0 || del != 0 {
		t.Fatalf("ins/del = %d/%d, want 0/0", ins, del)
	}
	for _, line := range strings.Split(strings.TrimSuffix(rendering, "\n"), "\n") {
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("unexpected prefix on %q", line)
		}
	}
}

func TestDiffCountsChanges(t *testing.T) {
	left := "one\ntwo\nthree\n"
	right := "one\tmodified\nthree\nfour\n"
	_, ins, del := Diff(left, right)
	if ins == 0 || del == 0 {
		t.Errorf("ins/del = %d/%d, want both nonzero", ins, del)
	}
}

func TestDiffRenderingPrefixes(t *testing.T) {
	rendering, ins, del := Diff("keep\ndrop\n", "keep\nadd\n")
	if ins != 1 || del != 1 {
		t.Fatalf("ins/del = %d/%d, want 1/1", ins, del)
	}
	if !strings.Contains(rendering, "  keep\n") {
		t.Errorf("unchanged line missing: %q", rendering)
	}
	if !strings.Contains(rendering, "- drop\n") {
		t.Errorf("deletion missing: %q", rendering)
	}
	if !strings.Contains(rendering, "+ add\n") {
		t.Errorf("insertion missing: %q", rendering)
	}
}

func TestSummary(t *testing.T) {
	if got := Summary(0, 0); got != "documents have identical text content" {
		t.Errorf("identical summary = %q", got)
	}
	if got := Summary(3, 1); got != "3 lines added, 1 lines removed" {
		t.Errorf("summary = %q", got)
	}
}
