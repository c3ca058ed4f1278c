package results

// CloseSessionToolResult represents the result of the close_session tool
type CloseSessionToolResult struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}
