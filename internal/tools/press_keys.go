package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressKeysTool presses a sequence of buttons in one call
type PressKeysTool struct {
	sessions *session.Manager
}

// NewPressKeysTool creates a new press keys tool
func NewPressKeysTool(sessions *session.Manager) *PressKeysTool {
	return &PressKeysTool{sessions: sessions}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressKeys,
		mcp.WithDescription("Press a sequence of calculator buttons, returning the final display"),
		withSessionID(),
		mcp.WithString(
			"keys",
			mcp.Required(),
			mcp.Description("Keys to press in order: 0-9 . + - * / = %, ~ for +/-, c for clear. Example: 12+~3="),
		),
	)
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := ParseSessionID(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	keyString := mcp.ParseString(req, "keys", "")
	if keyString == "" {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	keys, err := keypad.Parse(keyString)
	if err != nil {
		slog.Debug("Invalid key sequence", "tool", ToolPressKeys, "keys", keyString, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Invalid key sequence: %v", err)), nil
	}

	slog.Debug("MCP tool called", "tool", ToolPressKeys, "session_id", sessionID, "key_count", len(keys))

	snapshot, err := t.sessions.Do(sessionID, func(c *calculator.Calculator) error {
		return keypad.Replay(c, keys)
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press keys: %v", err)), nil
	}

	toolResult := results.NewDisplayToolResult(sessionID, snapshot, fmt.Sprintf("Pressed %d keys.", len(keys)))
	toolResult.Keys = keypad.Format(keys)
	return jsonResult(ToolPressKeys, toolResult), nil
}
