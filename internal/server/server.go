package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalculatorServer{}

// CalculatorServer exposes calculator sessions over MCP
type CalculatorServer struct {
	mcpServer *server.MCPServer
	sessions  *session.Manager
	config    types.Config
}

// NewCalculatorServer creates a new calculator MCP server with all tools registered
func NewCalculatorServer(config types.Config) *CalculatorServer {
	s := &CalculatorServer{
		mcpServer: server.NewMCPServer(project.Name, project.Version, server.WithToolCapabilities(false)),
		sessions:  session.NewManager(config.MaxSessions),
		config:    config,
	}
	s.registerTools()
	return s
}

func (s *CalculatorServer) registerTools() {
	for _, tool := range tools.NewTools(s.sessions) {
		definition := tool.GetTool()
		slog.Debug("Registering MCP tool", "tool", definition.Name)
		s.mcpServer.AddTool(definition, tool.Handle)
	}
}

// Serve serves MCP over stdio until the client disconnects or ctx is cancelled
func (s *CalculatorServer) Serve(ctx context.Context) error {
	return s.serve(ctx, os.Stdin, os.Stdout)
}

func (s *CalculatorServer) serve(ctx context.Context, in io.Reader, out io.Writer) error {
	slog.Info("Starting calculator MCP server",
		"name", project.Name,
		"version", project.Version,
		"max_sessions", s.config.MaxSessions)

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))

	// Cancellation is a normal shutdown, not a serve failure.
	if err := stdio.Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	slog.Info("Calculator MCP server stopped", "open_sessions", s.sessions.Len())
	return nil
}
