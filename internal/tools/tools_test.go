package tools

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/wordsmith/internal/automation"
	"github.com/dgallion1/wordsmith/internal/docedit"
	"github.com/dgallion1/wordsmith/internal/docx"
	"github.com/dgallion1/wordsmith/internal/locker"
	"github.com/dgallion1/wordsmith/internal/pathres"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	base := t.TempDir()
	svc := &Service{
		Resolver: pathres.New(base),
		Locker:   locker.New(),
		Soffice:  automation.Probe("soffice-binary-that-does-not-exist", time.Second),
		History:  nil,
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return svc, base
}

func invoke(t *testing.T, svc *Service, name string, args Args) Result {
	t.Helper()
	def, ok := svc.Lookup(name)
	if !ok {
		t.Fatalf("tool %q not registered", name)
	}
	return def.Handler(context.Background(), args)
}

func mustOK(t *testing.T, res Result) Result {
	t.Helper()
	if !res.OK {
		t.Fatalf("tool failed (%s): %s", res.Kind, res.Message)
	}
	return res
}

func TestDefinitionsAreComplete(t *testing.T) {
	svc, _ := newTestService(t)
	defs := svc.Definitions()
	if len(defs) < 30 {
		t.Fatalf("catalog has %d tools, expected the full set", len(defs))
	}
	seen := map[string]bool{}
	for _, def := range defs {
		if def.Name == "" || def.Description == "" {
			t.Errorf("tool %+v missing name or description", def)
		}
		if seen[def.Name] {
			t.Errorf("duplicate tool name %q", def.Name)
		}
		seen[def.Name] = true
		if len(def.Schema) == 0 {
			t.Errorf("tool %q has no schema", def.Name)
		}
		if def.Handler == nil {
			t.Errorf("tool %q has no handler", def.Name)
		}
	}
	if _, ok := svc.Lookup("no_such_tool"); ok {
		t.Errorf("Lookup found a tool that does not exist")
	}
}

func TestDocumentLifecycle(t *testing.T) {
	svc, base := newTestService(t)

	mustOK(t, invoke(t, svc, "create_word_document", Args{
		"filename": "report",
		"title":    "Quarterly Report",
	}))

	mustOK(t, invoke(t, svc, "add_paragraph", Args{
		"filename": "report",
		"text":     "First body paragraph.",
	}))
	mustOK(t, invoke(t, svc, "add_paragraph", Args{
		"filename":  "report",
		"text":      "Section heading",
		"style":     "Heading 1",
		"alignment": "center",
	}))

	res := mustOK(t, invoke(t, svc, "open_and_read_word_document", Args{"filename": "report"}))
	listing, ok := res.Data.(string)
	if !ok {
		t.Fatalf("listing data is %T, want string", res.Data)
	}
	if !strings.Contains(listing, "Quarterly Report") || !strings.Contains(listing, "Section heading") {
		t.Errorf("listing missing content:\n%s", listing)
	}

	res = mustOK(t, invoke(t, svc, "find_and_replace_text", Args{
		"filename":     "report",
		"find_text":    "body",
		"replace_text": "content",
	}))
	if count, _ := res.Data.(int); count != 1 {
		t.Errorf("replace count = %v, want 1", res.Data)
	}

	mustOK(t, invoke(t, svc, "delete_paragraph", Args{
		"filename":        "report",
		"paragraph_index": float64(0),
	}))

	doc, err := docx.Open(filepath.Join(base, "report.docx"))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	paras := doc.Paragraphs()
	if len(paras) != 2 {
		t.Fatalf("paragraphs = %d, want 2", len(paras))
	}
	if paras[0].Text() != "First content paragraph." {
		t.Errorf("paragraph 0 = %q", paras[0].Text())
	}
}

func TestMissingDocumentIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	res := invoke(t, svc, "add_paragraph", Args{"filename": "ghost", "text": "x"})
	if res.OK || res.Kind != string(docedit.KindNotFound) {
		t.Fatalf("result = %+v, want not_found failure", res)
	}
}

func TestUnknownStyleFailsWithoutSaving(t *testing.T) {
	svc, base := newTestService(t)
	mustOK(t, invoke(t, svc, "create_word_document", Args{"filename": "doc"}))

	res := invoke(t, svc, "add_paragraph", Args{
		"filename": "doc",
		"text":     "styled",
		"style":    "Nonexistent Style",
	})
	if res.OK || res.Kind != string(docedit.KindStyleNotFound) {
		t.Fatalf("result = %+v, want style_not_found failure", res)
	}

	doc, err := docx.Open(filepath.Join(base, "doc.docx"))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if len(doc.Paragraphs()) != 0 {
		t.Errorf("failed call left a paragraph in the saved file")
	}
}

func TestPathEscapeRejected(t *testing.T) {
	svc, _ := newTestService(t)
	res := invoke(t, svc, "create_word_document", Args{"filename": "../escape"})
	if res.OK || res.Kind != string(docedit.KindInvalidParameter) {
		t.Fatalf("result = %+v, want invalid_parameter failure", res)
	}
}

func TestPDFConversionNeedsBackend(t *testing.T) {
	svc, _ := newTestService(t)
	mustOK(t, invoke(t, svc, "create_word_document", Args{"filename": "doc"}))

	res := invoke(t, svc, "save_document_as_pdf", Args{"filename": "doc"})
	if res.OK || res.Kind != string(docedit.KindMissingDependency) {
		t.Fatalf("result = %+v, want missing_dependency failure", res)
	}
}

func TestSaveDocumentAsTxt(t *testing.T) {
	svc, base := newTestService(t)
	mustOK(t, invoke(t, svc, "create_word_document", Args{"filename": "doc"}))
	mustOK(t, invoke(t, svc, "add_paragraph", Args{"filename": "doc", "text": "plain words"}))

	mustOK(t, invoke(t, svc, "save_document_as", Args{
		"filename":        "doc",
		"output_filename": "doc.txt",
	}))
	data, err := os.ReadFile(filepath.Join(base, "doc.txt"))
	if err != nil {
		t.Fatalf("read txt: %v", err)
	}
	if !strings.Contains(string(data), "plain words") {
		t.Errorf("txt content = %q", data)
	}
}

func TestDocumentHistoryWithoutStore(t *testing.T) {
	svc, _ := newTestService(t)
	res := invoke(t, svc, "document_history", Args{"filename": "doc"})
	if res.OK || res.Kind != string(docedit.KindMissingDependency) {
		t.Fatalf("result = %+v, want missing_dependency failure", res)
	}
}

func TestCompareDocuments(t *testing.T) {
	svc, _ := newTestService(t)
	mustOK(t, invoke(t, svc, "create_word_document", Args{"filename": "a"}))
	mustOK(t, invoke(t, svc, "add_paragraph", Args{"filename": "a", "text": "shared line"}))
	mustOK(t, invoke(t, svc, "create_word_document", Args{"filename": "b"}))
	mustOK(t, invoke(t, svc, "add_paragraph", Args{"filename": "b", "text": "shared line"}))
	mustOK(t, invoke(t, svc, "add_paragraph", Args{"filename": "b", "text": "extra line"}))

	res := mustOK(t, invoke(t, svc, "compare_documents", Args{
		"filename":       "a",
		"other_filename": "b",
	}))
	diff, _ := res.Data.(string)
	if !strings.Contains(diff, "+ extra line") {
		t.Errorf("diff missing insertion:\n%s", diff)
	}
}

func TestBatchToolReportsPartialFailure(t *testing.T) {
	svc, _ := newTestService(t)
	mustOK(t, invoke(t, svc, "create_word_document", Args{"filename": "doc"}))

	res := mustOK(t, invoke(t, svc, "batch_add_formatted_paragraphs", Args{
		"filename": "doc",
		"paragraphs": []any{
			map[string]any{"text": "fine"},
			map[string]any{"text": "styled", "style": "No Such Style"},
			map[string]any{"text": "also fine"},
		},
	}))
	batch, ok := res.Data.(*docedit.BatchResult)
	if !ok {
		t.Fatalf("data is %T, want *docedit.BatchResult", res.Data)
	}
	if batch.Succeeded != 2 || batch.Failed != 1 {
		t.Errorf("succeeded/failed = %d/%d, want 2/1", batch.Succeeded, batch.Failed)
	}
	if len(batch.Failures) != 1 || batch.Failures[0].Item != 1 {
		t.Errorf("failures = %+v", batch.Failures)
	}
}

func TestArgsAccessors(t *testing.T) {
	args := Args{
		"name":    "value",
		"count":   float64(3),
		"flag":    true,
		"indices": []any{float64(2), float64(0)},
		"names":   []any{"a", "b"},
		"rows":    []any{[]any{"x", float64(1)}},
	}
	if args.String("name") != "value" || args.String("missing") != "" {
		t.Errorf("String accessor wrong")
	}
	if args.StringOr("missing", "dflt") != "dflt" {
		t.Errorf("StringOr fallback wrong")
	}
	if args.Int("count", 0) != 3 || args.Int("missing", 7) != 7 {
		t.Errorf("Int accessor wrong")
	}
	if !args.Bool("flag", false) || args.Bool("missing", true) != true {
		t.Errorf("Bool accessor wrong")
	}
	if args.BoolPtr("missing") != nil {
		t.Errorf("BoolPtr must be nil when absent")
	}
	if got := args.IntList("indices"); len(got) != 2 || got[0] != 2 {
		t.Errorf("IntList = %v", got)
	}
	if got := args.IntList("count"); len(got) != 1 || got[0] != 3 {
		t.Errorf("IntList single = %v", got)
	}
	if got := args.StringList("names"); len(got) != 2 || got[1] != "b" {
		t.Errorf("StringList = %v", got)
	}
	if got := args.TableData("rows"); len(got) != 1 || got[0][1] != "1" {
		t.Errorf("TableData = %v", got)
	}
}
