// Package mcpserv exposes the tool catalog over the Model Context Protocol
// on stdio, for editor and assistant embedding.
package mcpserv

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dgallion1/wordsmith/internal/tools"
)

// Serve registers every tool definition on an MCP server and runs it over
// stdin/stdout until the client disconnects. Logging must go to stderr
// while this runs; stdout belongs to the protocol.
func Serve(svc *tools.Service, version string) error {
	s := server.NewMCPServer(
		"wordsmith",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, def := range svc.Definitions() {
		tool := mcp.NewToolWithRawSchema(def.Name, def.Description, def.Schema)
		s.AddTool(tool, handlerFor(def))
	}

	return server.ServeStdio(s)
}

func handlerFor(def tools.Definition) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res := def.Handler(ctx, tools.Args(req.GetArguments()))
		payload, err := json.Marshal(res)
		if err != nil {
			return mcp.NewToolResultError("encode result: " + err.Error()), nil
		}
		if !res.OK {
			return mcp.NewToolResultError(string(payload)), nil
		}
		return mcp.NewToolResultText(string(payload)), nil
	}
}
