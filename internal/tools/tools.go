package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names
const (
	ToolNewSession        = "new_session"
	ToolCloseSession      = "close_session"
	ToolReadDisplay       = "read_display"
	ToolPressDigit        = "press_digit"
	ToolPressDecimalPoint = "press_decimal_point"
	ToolPressOperation    = "press_operation"
	ToolPressNegate       = "press_negate"
	ToolPressPercent      = "press_percent"
	ToolPressEquals       = "press_equals"
	ToolPressClear        = "press_clear"
	ToolPressKeys         = "press_keys"
)

// Tool is an MCP tool definition together with its handler
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// NewTools returns every calculator tool, bound to the given sessions
func NewTools(sessions *session.Manager) []Tool {
	return []Tool{
		NewNewSessionTool(sessions),
		NewCloseSessionTool(sessions),
		NewReadDisplayTool(sessions),
		NewPressDigitTool(sessions),
		NewPressDecimalPointTool(sessions),
		NewPressOperationTool(sessions),
		NewPressNegateTool(sessions),
		NewPressPercentTool(sessions),
		NewPressEqualsTool(sessions),
		NewPressClearTool(sessions),
		NewPressKeysTool(sessions),
	}
}
