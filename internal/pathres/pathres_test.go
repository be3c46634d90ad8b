package pathres

import (
	"path/filepath"
	"testing"
)

func TestResolveRelative(t *testing.T) {
	r := New("/data/docs")
	got, err := r.Resolve("report.docx")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if want := filepath.Join("/data/docs", "report.docx"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveNested(t *testing.T) {
	r := New("/data/docs")
	got, err := r.Resolve("drafts/v2/report.docx")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if want := filepath.Join("/data/docs", "drafts", "v2", "report.docx"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveAbsolutePassesThrough(t *testing.T) {
	r := New("/data/docs")
	got, err := r.Resolve("/tmp/elsewhere/file.docx")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "/tmp/elsewhere/file.docx" {
		t.Errorf("got %q", got)
	}
}

func TestResolveRejectsEscape(t *testing.T) {
	r := New("/data/docs")
	for _, name := range []string{"../secret.docx", "drafts/../../secret.docx", ".."} {
		if _, err := r.Resolve(name); err == nil {
			t.Errorf("Resolve(%q) did not reject escape", name)
		}
	}
}

func TestResolveDotSegmentsInsideBase(t *testing.T) {
	r := New("/data/docs")
	got, err := r.Resolve("drafts/../report.docx")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if want := filepath.Join("/data/docs", "report.docx"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveEmptyName(t *testing.T) {
	r := New("/data/docs")
	if _, err := r.Resolve(""); err == nil {
		t.Errorf("empty name accepted")
	}
}
