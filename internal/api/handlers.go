package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/wordsmith/internal/tools"
)

// toolInfo is the wire form of a tool definition.
type toolInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// handleListTools returns the tool catalog with schemas.
func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	defs := s.svc.Definitions()
	out := make([]toolInfo, len(defs))
	for i, def := range defs {
		out[i] = toolInfo{Name: def.Name, Description: def.Description, InputSchema: def.Schema}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"tools": out})
}

// handleInvokeTool runs one tool with the JSON body as arguments.
func (s *Server) handleInvokeTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	def, ok := s.svc.Lookup(name)
	if !ok {
		jsonError(w, "unknown tool: "+name, http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 10<<20))
	if err != nil {
		jsonError(w, "read request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	args := tools.Args{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &args); err != nil {
			jsonError(w, "arguments must be a JSON object: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	res := def.Handler(r.Context(), args)
	if !res.OK {
		s.log.Info("tool failed", "tool", name, "kind", res.Kind, "message", res.Message)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
