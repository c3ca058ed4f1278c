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

// PressTool presses a single calculator button
type PressTool struct {
	sessions    *session.Manager
	name        string
	description string
	options     []mcp.ToolOption
	parseKey    func(req mcp.CallToolRequest) (keypad.Key, error)
}

func fixedKey(key keypad.Key) func(mcp.CallToolRequest) (keypad.Key, error) {
	return func(mcp.CallToolRequest) (keypad.Key, error) { return key, nil }
}

// NewPressDigitTool creates a tool for the 0-9 buttons
func NewPressDigitTool(sessions *session.Manager) *PressTool {
	return &PressTool{
		sessions:    sessions,
		name:        ToolPressDigit,
		description: "Press a digit button (0-9)",
		options: []mcp.ToolOption{
			mcp.WithNumber("digit", mcp.Required(), mcp.Description("Digit to press, from 0 to 9")),
		},
		parseKey: func(req mcp.CallToolRequest) (keypad.Key, error) {
			digit, err := ParseDigit(req)
			if err != nil {
				return keypad.Key{}, err
			}
			return keypad.Digit(digit), nil
		},
	}
}

// NewPressDecimalPointTool creates a tool for the decimal point button
func NewPressDecimalPointTool(sessions *session.Manager) *PressTool {
	return &PressTool{
		sessions:    sessions,
		name:        ToolPressDecimalPoint,
		description: "Press the decimal point button. A second decimal point in the same number is ignored and flashes the display.",
		parseKey:    fixedKey(keypad.DecimalPoint),
	}
}

// NewPressOperationTool creates a tool for the +, -, × and ÷ buttons
func NewPressOperationTool(sessions *session.Manager) *PressTool {
	return &PressTool{
		sessions:    sessions,
		name:        ToolPressOperation,
		description: "Press an operator button. There is no precedence: a pending calculation is completed first.",
		options: []mcp.ToolOption{
			mcp.WithString(
				"operation",
				mcp.Required(),
				mcp.Description("Operator to press: +, -, *, / or add, subtract, multiply, divide"),
			),
		},
		parseKey: func(req mcp.CallToolRequest) (keypad.Key, error) {
			name := mcp.ParseString(req, "operation", "")
			if name == "" {
				return keypad.Key{}, fmt.Errorf("operation parameter is required")
			}
			op, err := calculator.ParseOperation(name)
			if err != nil {
				return keypad.Key{}, err
			}
			return keypad.Op(op), nil
		},
	}
}

// NewPressNegateTool creates a tool for the +/- button
func NewPressNegateTool(sessions *session.Manager) *PressTool {
	return &PressTool{
		sessions:    sessions,
		name:        ToolPressNegate,
		description: "Press the +/- button. Right after an operator it starts entering a negative number.",
		parseKey:    fixedKey(keypad.Negate),
	}
}

// NewPressPercentTool creates a tool for the % button
func NewPressPercentTool(sessions *session.Manager) *PressTool {
	return &PressTool{
		sessions:    sessions,
		name:        ToolPressPercent,
		description: "Press the % button, dividing the displayed value by 100",
		parseKey:    fixedKey(keypad.Percent),
	}
}

// NewPressEqualsTool creates a tool for the = button
func NewPressEqualsTool(sessions *session.Manager) *PressTool {
	return &PressTool{
		sessions:    sessions,
		name:        ToolPressEquals,
		description: "Press the = button. Pressing it again repeats the last operation.",
		parseKey:    fixedKey(keypad.Equals),
	}
}

// NewPressClearTool creates a tool for the AC/C button
func NewPressClearTool(sessions *session.Manager) *PressTool {
	return &PressTool{
		sessions:    sessions,
		name:        ToolPressClear,
		description: "Press the clear button. As C it clears the current entry; as AC it resets the calculator.",
		parseKey:    fixedKey(keypad.Clear),
	}
}

// GetTool returns the MCP tool definition
func (t *PressTool) GetTool() mcp.Tool {
	options := []mcp.ToolOption{
		mcp.WithDescription(t.description),
		withSessionID(),
	}
	options = append(options, t.options...)
	return mcp.NewTool(t.name, options...)
}

// Handle processes the tool request
func (t *PressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := ParseSessionID(req)
	if err != nil {
		slog.Debug("MCP tool called with missing session_id parameter", "tool", t.name)
		return mcp.NewToolResultError(err.Error()), nil
	}

	key, err := t.parseKey(req)
	if err != nil {
		slog.Debug("Invalid tool arguments", "tool", t.name, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	slog.Debug("MCP tool called", "tool", t.name, "session_id", sessionID, "key", key.String())

	snapshot, err := t.sessions.Do(sessionID, key.Press)
	if err != nil {
		slog.Debug("Failed to press key",
			"tool", t.name,
			"session_id", sessionID,
			"key", key.String(),
			"error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press %s: %v", key, err)), nil
	}

	slog.Debug("MCP tool completed successfully",
		"tool", t.name,
		"session_id", sessionID,
		"display", snapshot.Display)

	toolResult := results.NewDisplayToolResult(sessionID, snapshot, fmt.Sprintf("Pressed %s.", key))
	return jsonResult(t.name, toolResult), nil
}
