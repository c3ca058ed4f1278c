package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// CloseSessionTool handles close session requests
type CloseSessionTool struct {
	sessions *session.Manager
}

// NewCloseSessionTool creates a new close session tool
func NewCloseSessionTool(sessions *session.Manager) *CloseSessionTool {
	return &CloseSessionTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *CloseSessionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolCloseSession,
		mcp.WithDescription("Discard a calculator session"),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *CloseSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := ParseSessionID(req)
	if err != nil {
		slog.Debug("MCP tool called with missing session_id parameter", "tool", ToolCloseSession)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := t.sessions.Close(sessionID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to close session: %v", err)), nil
	}

	return jsonResult(ToolCloseSession, results.CloseSessionToolResult{
		Message:   "Closed calculator session.",
		SessionID: sessionID,
	}), nil
}
