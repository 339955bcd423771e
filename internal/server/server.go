// Package server exposes the ink catalog as MCP tools.
//
// New is the composition root: it builds every tool around a shared query
// service and registers it with the MCP server. No query logic lives here.
package server

import (
	"context"
	"io"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jmylchreest/inkswatch/internal/inks"
	"github.com/jmylchreest/inkswatch/internal/version"
)

// Name is the MCP server name reported to clients.
const Name = "inkswatch"

// Tool is an MCP tool with its handler.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Tools returns every tool backed by svc, in registration order.
func Tools(svc *inks.Service) []Tool {
	return []Tool{
		NewSearchByNameTool(svc),
		NewSearchByColourTool(svc),
		NewAnalyzeColourTool(svc),
		NewInkDetailsTool(svc),
		NewInksByMakerTool(svc),
		NewListMakersTool(svc),
		NewPaletteTool(svc),
		NewListThemesTool(),
	}
}

// New creates the MCP server with all tools registered.
func New(svc *inks.Service, logger hclog.Logger) *server.MCPServer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("mcp")

	s := server.NewMCPServer(
		Name,
		version.Short(),
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	for _, tool := range Tools(svc) {
		def := tool.Definition()
		s.AddTool(def, logged(logger, def.Name, tool.Handle))
		logger.Trace("registered tool", "tool", def.Name)
	}

	return s
}

// ServeStdio serves s over the given streams (normally stdin and stdout)
// until ctx is cancelled or the client disconnects.
func ServeStdio(ctx context.Context, s *server.MCPServer, logger hclog.Logger, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true}))
	return stdio.Listen(ctx, in, out)
}

// logged wraps a handler with debug logging of each call.
func logged(logger hclog.Logger, name string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		res, err := next(ctx, req)
		switch {
		case err != nil:
			logger.Error("tool failed", "tool", name, "error", err)
		case res != nil && res.IsError:
			logger.Debug("tool returned error", "tool", name, "duration", time.Since(start))
		default:
			logger.Debug("tool call", "tool", name, "duration", time.Since(start))
		}
		return res, err
	}
}

const instructions = `inkswatch answers questions about a catalog of scanned fountain pen ink swatches.

Use search_inks_by_name to find inks by (partial, fuzzy) name, search_inks_by_color
for the closest inks to a hex colour, analyze_color to classify a colour, and
generate_palette to build a palette of distinct inks from a theme, a list of hex
colours, or a base colour plus a harmony rule. Every ink result carries a
detailUrl and an imageUrl that can be shown to the user.`
