// Package tools defines the tool catalog: named operations with JSON
// schemas and handlers, shared by the HTTP and MCP transports.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dgallion1/wordsmith/internal/automation"
	"github.com/dgallion1/wordsmith/internal/docedit"
	"github.com/dgallion1/wordsmith/internal/docx"
	"github.com/dgallion1/wordsmith/internal/history"
	"github.com/dgallion1/wordsmith/internal/locker"
	"github.com/dgallion1/wordsmith/internal/pathres"
)

// Result is the structured outcome every tool returns. Kind is empty on
// success and one of the docedit kinds on failure; callers branch on OK and
// Kind, never on message text.
type Result struct {
	OK      bool   `json:"ok"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func success(format string, args ...any) Result {
	return Result{OK: true, Message: fmt.Sprintf(format, args...)}
}

func successData(data any, format string, args ...any) Result {
	return Result{OK: true, Message: fmt.Sprintf(format, args...), Data: data}
}

func failure(err error) Result {
	return Result{OK: false, Kind: string(docedit.KindOf(err)), Message: err.Error()}
}

func failf(kind docedit.Kind, format string, args ...any) Result {
	return Result{OK: false, Kind: string(kind), Message: fmt.Sprintf(format, args...)}
}

// Definition is one registered tool.
type Definition struct {
	Name        string
	Description string
	Schema      json.RawMessage
	Handler     func(ctx context.Context, args Args) Result
}

// Service wires the tool handlers to their collaborators.
type Service struct {
	Resolver *pathres.Resolver
	Locker   *locker.Locker
	Soffice  *automation.Soffice
	History  *history.Store
	Log      *slog.Logger
}

// Args is the decoded JSON argument object of one invocation, with typed
// accessors tolerant of the numeric types JSON decoding produces.
type Args map[string]any

func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

func (a Args) String(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

func (a Args) StringOr(key, fallback string) string {
	if v, ok := a[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func (a Args) Float(key string, fallback float64) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return fallback
}

func (a Args) Int(key string, fallback int) int {
	if !a.Has(key) {
		return fallback
	}
	return int(a.Float(key, float64(fallback)))
}

func (a Args) Bool(key string, fallback bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return fallback
}

// BoolPtr distinguishes "absent" from an explicit false.
func (a Args) BoolPtr(key string) *bool {
	if v, ok := a[key].(bool); ok {
		return &v
	}
	return nil
}

// IntList accepts either a single number or an array of numbers.
func (a Args) IntList(key string) []int {
	switch v := a[key].(type) {
	case float64:
		return []int{int(v)}
	case []any:
		out := make([]int, 0, len(v))
		for _, item := range v {
			if f, ok := item.(float64); ok {
				out = append(out, int(f))
			}
		}
		return out
	}
	return nil
}

func (a Args) StringList(key string) []string {
	items, ok := a[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// ObjectList returns an array of JSON objects as Args values.
func (a Args) ObjectList(key string) []Args {
	items, ok := a[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Args, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Args(m))
		}
	}
	return out
}

// TableData decodes a 2-D array of strings; non-string cells are rendered
// with fmt.Sprint.
func (a Args) TableData(key string) [][]string {
	rows, ok := a[key].([]any)
	if !ok {
		return nil
	}
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells, ok := row.([]any)
		if !ok {
			continue
		}
		r := make([]string, 0, len(cells))
		for _, cell := range cells {
			if s, ok := cell.(string); ok {
				r = append(r, s)
			} else {
				r = append(r, fmt.Sprint(cell))
			}
		}
		out = append(out, r)
	}
	return out
}

// resolveDocx resolves a document argument to an absolute .docx path.
func (s *Service) resolveDocx(args Args, key string) (string, error) {
	name := args.String(key)
	if name == "" {
		return "", &docedit.Error{Kind: docedit.KindInvalidParameter, Message: key + " is required"}
	}
	if !strings.HasSuffix(strings.ToLower(name), ".docx") {
		name += ".docx"
	}
	path, err := s.Resolver.Resolve(name)
	if err != nil {
		return "", &docedit.Error{Kind: docedit.KindInvalidParameter, Message: err.Error()}
	}
	return path, nil
}

// withDocument is the open-mutate-save cycle every mutating tool runs: it
// resolves the filename argument, takes the per-path lock, opens the
// document, applies mutate, saves on success, and records the outcome in
// the history store. The lock covers the whole cycle.
func (s *Service) withDocument(tool string, args Args, mutate func(doc *docx.Document) (Result, error)) Result {
	path, err := s.resolveDocx(args, "filename")
	if err != nil {
		return failure(err)
	}
	unlock := s.Locker.Lock(path)
	defer unlock()

	if _, err := os.Stat(path); err != nil {
		res := failf(docedit.KindNotFound, "document %q not found", path)
		s.record(path, tool, res)
		return res
	}
	doc, err := docx.Open(path)
	if err != nil {
		res := failf(docedit.KindIO, "open document: %s", err.Error())
		s.record(path, tool, res)
		return res
	}
	res, err := mutate(doc)
	if err != nil {
		res = failure(err)
		s.record(path, tool, res)
		return res
	}
	if err := doc.Save(); err != nil {
		res = failf(docedit.KindIO, "save document: %s", err.Error())
		s.record(path, tool, res)
		return res
	}
	s.record(path, tool, res)
	return res
}

// withDocumentRead is withDocument without the save: for query tools that
// must not rewrite the file.
func (s *Service) withDocumentRead(tool string, args Args, read func(doc *docx.Document) (Result, error)) Result {
	path, err := s.resolveDocx(args, "filename")
	if err != nil {
		return failure(err)
	}
	unlock := s.Locker.Lock(path)
	defer unlock()

	doc, err := docx.Open(path)
	if err != nil {
		return failf(docedit.KindNotFound, "open document %q: %s", path, err.Error())
	}
	res, rerr := read(doc)
	if rerr != nil {
		return failure(rerr)
	}
	return res
}

func (s *Service) record(path, tool string, res Result) {
	if err := s.History.Record(path, tool, res.OK, res.Message); err != nil {
		s.Log.Warn("history record failed", "tool", tool, "path", path, "error", err)
	}
}

// schema builds a JSON schema object for a tool's arguments.
func schema(props map[string]any, required ...string) json.RawMessage {
	doc := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	data, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return data
}

func str(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func num(desc string) map[string]any {
	return map[string]any{"type": "number", "description": desc}
}

func boolean(desc string) map[string]any {
	return map[string]any{"type": "boolean", "description": desc}
}

func arr(desc string, items map[string]any) map[string]any {
	return map[string]any{"type": "array", "description": desc, "items": items}
}

func obj(desc string) map[string]any {
	return map[string]any{"type": "object", "description": desc}
}
