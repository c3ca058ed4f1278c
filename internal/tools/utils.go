package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// withSessionID is the session_id parameter shared by all tools that act on a calculator
func withSessionID() mcp.ToolOption {
	return mcp.WithString(
		"session_id",
		mcp.Required(),
		mcp.Description("Calculator session ID returned by new_session"),
	)
}

// ParseSessionID extracts the session_id parameter from an MCP request
func ParseSessionID(req mcp.CallToolRequest) (string, error) {
	sessionID := mcp.ParseString(req, "session_id", "")
	if sessionID == "" {
		return "", fmt.Errorf("session_id parameter is required")
	}
	return sessionID, nil
}

// ParseDigit extracts the digit parameter from an MCP request. JSON clients
// may send it as a number or a string; fractional values and anything outside
// 0-9 are rejected with an error naming the value that was sent.
func ParseDigit(req mcp.CallToolRequest) (int, error) {
	raw := mcp.ParseArgument(req, "digit", nil)
	if raw == nil {
		return 0, fmt.Errorf("digit parameter is required")
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("digit must be a number: %w", err)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("digit must be a whole number, got %v", raw)
	}
	if f < 0 || f > 9 {
		return 0, fmt.Errorf("%w, got %v", calculator.ErrInvalidDigit, raw)
	}
	return cast.ToIntE(f)
}

// jsonResult marshals a tool result into a text result
func jsonResult(toolName string, v any) *mcp.CallToolResult {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("Failed to marshal tool result", "tool", toolName, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result into JSON: %v", err))
	}
	return mcp.NewToolResultText(string(jsonBytes))
}
