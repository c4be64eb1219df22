// Package mcp exposes fsbox tools over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"time"

	"github.com/deepnoodle-ai/fsbox"
	"github.com/deepnoodle-ai/fsbox/internal/tracing"
	"github.com/deepnoodle-ai/fsbox/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Default server identity reported during initialization.
const (
	DefaultName    = "secure-filesystem-server"
	DefaultVersion = "0.2.0"
)

// Server serves a fixed set of tools to a single MCP client.
type Server struct {
	name    string
	version string
	logger  log.Logger
	tools   []fsbox.Tool
	mcp     *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for call logging.
func WithLogger(logger log.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithVersion overrides the version reported to clients.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithName overrides the server name reported to clients.
func WithName(name string) Option {
	return func(s *Server) {
		s.name = name
	}
}

// NewServer registers tools with a new MCP server. Tool names must be unique.
func NewServer(tools []fsbox.Tool, opts ...Option) (*Server, error) {
	s := &Server{
		name:    DefaultName,
		version: DefaultVersion,
		logger:  log.NewNullLogger(),
		tools:   tools,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mcp = server.NewMCPServer(s.name, s.version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	seen := make(map[string]bool, len(tools))
	for _, tool := range tools {
		name := tool.Name()
		if seen[name] {
			return nil, fmt.Errorf("duplicate tool name %q", name)
		}
		seen[name] = true

		def, err := toolDefinition(tool)
		if err != nil {
			return nil, err
		}
		s.mcp.AddTool(def, s.handler(tool))
	}
	return s, nil
}

// Tools returns the registered tools in registration order.
func (s *Server) Tools() []fsbox.Tool {
	return s.tools
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Serve reads JSON-RPC messages from in and writes responses to out until
// ctx is cancelled or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(stdlog.New(logWriter{s.logger}, "", 0))
	s.logger.Info("serving mcp over stdio", "name", s.name, "version", s.version, "tools", len(s.tools))
	return stdio.Listen(ctx, in, out)
}

func (s *Server) handler(tool fsbox.Tool) server.ToolHandlerFunc {
	name := tool.Name()
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, span := tracing.StartSpan(ctx, "tool."+name)
		defer span.End()
		span.SetAttributes(tracing.StringAttr("tool.name", name))

		ctx = log.WithLogger(ctx, s.logger)
		started := time.Now()
		result, err := tool.Call(ctx, req.GetArguments())
		if err != nil {
			tracing.RecordError(span, err)
			s.logger.Error("tool call failed", "tool", name, "error", err)
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}
		if result == nil {
			result = fsbox.NewToolResultText("")
		}
		span.SetAttributes(tracing.BoolAttr("tool.is_error", result.IsError))
		if result.IsError {
			tracing.RecordError(span, errors.New(result.Text()))
		} else {
			tracing.SetOK(span)
		}
		s.logger.Debug("tool call",
			"tool", name,
			"is_error", result.IsError,
			"duration", time.Since(started),
		)
		return convertResult(result), nil
	}
}

func toolDefinition(tool fsbox.Tool) (mcp.Tool, error) {
	raw, err := fsbox.SchemaJSON(tool.Schema())
	if err != nil {
		return mcp.Tool{}, fmt.Errorf("encode schema for tool %s: %w", tool.Name(), err)
	}
	def := mcp.NewToolWithRawSchema(tool.Name(), tool.Description(), raw)
	if a := tool.Annotations(); a != nil {
		def.Annotations = mcp.ToolAnnotation{
			Title:           a.Title,
			ReadOnlyHint:    mcp.ToBoolPtr(a.ReadOnlyHint),
			DestructiveHint: mcp.ToBoolPtr(a.DestructiveHint),
			IdempotentHint:  mcp.ToBoolPtr(a.IdempotentHint),
			OpenWorldHint:   mcp.ToBoolPtr(a.OpenWorldHint),
		}
	}
	return def, nil
}

func convertResult(result *fsbox.ToolResult) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(result.Content))
	for _, c := range result.Content {
		content = append(content, mcp.NewTextContent(c.Text))
	}
	return &mcp.CallToolResult{
		Content: content,
		IsError: result.IsError,
	}
}

// logWriter forwards the stdio transport's error log to a Logger.
type logWriter struct {
	logger log.Logger
}

func (w logWriter) Write(p []byte) (int, error) {
	msg := string(p)
	if n := len(msg); n > 0 && msg[n-1] == '\n' {
		msg = msg[:n-1]
	}
	w.logger.Error("mcp transport", "error", msg)
	return len(p), nil
}
