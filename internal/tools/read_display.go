package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReadDisplayTool returns the display of a session without pressing anything
type ReadDisplayTool struct {
	sessions *session.Manager
}

// NewReadDisplayTool creates a new read display tool
func NewReadDisplayTool(sessions *session.Manager) *ReadDisplayTool {
	return &ReadDisplayTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *ReadDisplayTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolReadDisplay,
		mcp.WithDescription("Read the calculator display and clear button label"),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *ReadDisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := ParseSessionID(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snapshot, err := t.sessions.Snapshot(sessionID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read display: %v", err)), nil
	}

	toolResult := results.NewDisplayToolResult(sessionID, snapshot, "Read the display.")
	return jsonResult(ToolReadDisplay, toolResult), nil
}
