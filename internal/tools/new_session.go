package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewSessionTool handles new session requests
type NewSessionTool struct {
	sessions *session.Manager
}

// NewNewSessionTool creates a new session tool
func NewNewSessionTool(sessions *session.Manager) *NewSessionTool {
	return &NewSessionTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *NewSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolNewSession,
		mcp.WithDescription("Start a new calculator in its all-clear state, returning its session ID and display"),
	)
}

// Handle processes the tool request
func (t *NewSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slog.Debug("MCP tool called", "tool", ToolNewSession)

	sessionID, err := t.sessions.Create()
	if err != nil {
		slog.Error("Failed to create session", "tool", ToolNewSession, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create session: %v", err)), nil
	}

	snapshot, err := t.sessions.Snapshot(sessionID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read new session: %v", err)), nil
	}

	toolResult := results.NewDisplayToolResult(sessionID, snapshot, "Created a new calculator session.")
	return jsonResult(ToolNewSession, toolResult), nil
}
