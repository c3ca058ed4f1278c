package results

import "github.com/averycrespi/calc-mcp/internal/session"

// DisplayToolResult is returned by every tool that touches a calculator. It
// carries everything a client needs to redraw the screen.
type DisplayToolResult struct {
	Message    string `json:"message"`
	SessionID  string `json:"session_id"`
	Display    string `json:"display"`
	ClearLabel string `json:"clear_label"`
	Flashes    int    `json:"flashes"` // Total flashes since the session was created
	Keys       string `json:"keys,omitempty"`
}

// NewDisplayToolResult builds a DisplayToolResult from a session snapshot
func NewDisplayToolResult(sessionID string, snapshot session.Snapshot, message string) DisplayToolResult {
	return DisplayToolResult{
		Message:    message,
		SessionID:  sessionID,
		Display:    snapshot.Display,
		ClearLabel: snapshot.ClearLabel,
		Flashes:    snapshot.Flashes,
	}
}
