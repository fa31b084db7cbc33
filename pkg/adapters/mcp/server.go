// Package mcp exposes the charting pipeline as an MCP tool server, so
// agent hosts can turn code they are reading into diagrams.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/cdfmlr/goflowchart"
)

// RenderResult is the structured output of the render_flowchart tool.
type RenderResult struct {
	DSL string `json:"dsl" jsonschema_description:"flowchart.js DSL text for the given code"`
}

// Server exposes goflowchart over MCP.
type Server struct {
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(logger *slog.Logger) *Server {
	s := &Server{
		logger:    logger,
		mcpServer: server.NewMCPServer("goflowchart-mcp", strings.TrimSpace(goflowchart.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	renderTool := mcp.NewTool("render_flowchart",
		mcp.WithDescription("Turn Go source code (a file or a statement snippet) into flowchart.js DSL text."),
		mcp.WithString("code", mcp.Required(), mcp.Description("Go source to chart")),
		mcp.WithString("field", mcp.Description("Dotted path of one function to chart, e.g. \"Foo\" or \"Bar.Method\" (optional)")),
		mcp.WithBoolean("inner", mcp.Description("Chart the bare function body instead of the framed function (default true)")),
		mcp.WithBoolean("simplify", mcp.Description("Collapse one-statement conditionals and loops (default true)")),
		mcp.WithBoolean("conds_align", mcp.Description("Emit layout hints for stacked conditionals (default false)")),
		mcp.WithOutputSchema[RenderResult](),
	)
	s.mcpServer.AddTool(renderTool, mcp.NewStructuredToolHandler(s.handleRender))
}

// renderArgs is the decoded tool argument set. Tri-state booleans keep the
// "absent means default on" semantics.
type renderArgs struct {
	Code       string `mapstructure:"code"`
	Field      string `mapstructure:"field"`
	Inner      *bool  `mapstructure:"inner"`
	Simplify   *bool  `mapstructure:"simplify"`
	CondsAlign bool   `mapstructure:"conds_align"`
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RenderResult, error) {
	var ra renderArgs
	if err := mapstructure.Decode(args, &ra); err != nil {
		return RenderResult{}, fmt.Errorf("invalid arguments: %w", err)
	}
	if ra.Code == "" {
		return RenderResult{}, fmt.Errorf("argument 'code' is required")
	}

	inner := ra.Inner == nil || *ra.Inner
	simplify := ra.Simplify == nil || *ra.Simplify

	dsl, err := goflowchart.FromCode(ra.Code,
		goflowchart.WithField(ra.Field),
		goflowchart.WithInner(inner),
		goflowchart.WithSimplify(simplify),
		goflowchart.WithCondsAlign(ra.CondsAlign),
		goflowchart.WithLogger(s.logger),
	)
	if err != nil {
		s.logger.Warn("MCP render rejected", "error", err, "size", len(ra.Code))
		return RenderResult{}, fmt.Errorf("render failed: %w", err)
	}

	return RenderResult{DSL: dsl}, nil
}
