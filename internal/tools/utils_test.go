package tools

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
)

func newRequest(arguments map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = arguments
	return request
}

func TestParseSessionID(t *testing.T) {
	tests := []struct {
		name        string
		arguments   map[string]interface{}
		expected    string
		expectError bool
	}{
		{
			name:      "Present",
			arguments: map[string]interface{}{"session_id": "abc"},
			expected:  "abc",
		},
		{
			name:        "Missing",
			arguments:   map[string]interface{}{},
			expectError: true,
		},
		{
			name:        "Empty",
			arguments:   map[string]interface{}{"session_id": ""},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseSessionID(newRequest(tt.arguments))
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestParseDigit(t *testing.T) {
	tests := []struct {
		name          string
		arguments     map[string]interface{}
		expected      int
		expectError   bool
		errorContains string
	}{
		{
			name:      "JSON number",
			arguments: map[string]interface{}{"digit": float64(7)},
			expected:  7,
		},
		{
			name:      "Zero",
			arguments: map[string]interface{}{"digit": float64(0)},
			expected:  0,
		},
		{
			name:      "String",
			arguments: map[string]interface{}{"digit": "3"},
			expected:  3,
		},
		{
			name:          "Above nine",
			arguments:     map[string]interface{}{"digit": float64(12)},
			expectError:   true,
			errorContains: "got 12",
		},
		{
			name:          "Negative",
			arguments:     map[string]interface{}{"digit": float64(-1)},
			expectError:   true,
			errorContains: "got -1",
		},
		{
			name:          "Too large for an int",
			arguments:     map[string]interface{}{"digit": 1e20},
			expectError:   true,
			errorContains: "got 1e+20",
		},
		{
			name:          "Infinity",
			arguments:     map[string]interface{}{"digit": "Inf"},
			expectError:   true,
			errorContains: "got Inf",
		},
		{
			name:          "Not a number value",
			arguments:     map[string]interface{}{"digit": "NaN"},
			expectError:   true,
			errorContains: "got NaN",
		},
		{
			name:        "Missing",
			arguments:   map[string]interface{}{},
			expectError: true,
		},
		{
			name:        "Fractional",
			arguments:   map[string]interface{}{"digit": 2.5},
			expectError: true,
		},
		{
			name:        "Not a number",
			arguments:   map[string]interface{}{"digit": "seven"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDigit(newRequest(tt.arguments))
			if tt.expectError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
