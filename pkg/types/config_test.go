package types

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	assert.NoError(t, config.Validate())
	assert.Equal(t, slog.LevelInfo, config.SlogLevel())
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expected    Config
		expectError bool
	}{
		{
			name:     "Empty file keeps defaults",
			data:     "",
			expected: DefaultConfig(),
		},
		{
			name:     "Partial override",
			data:     "log_level: debug\n",
			expected: Config{LogLevel: "debug", MaxSessions: DefaultMaxSessions},
		},
		{
			name:     "Full override",
			data:     "log_level: warn\nmax_sessions: 3\n",
			expected: Config{LogLevel: "warn", MaxSessions: 3},
		},
		{
			name:        "Unknown key",
			data:        "workspace_root: /tmp\n",
			expectError: true,
		},
		{
			name:        "Malformed YAML",
			data:        "max_sessions: [",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseConfig([]byte(tt.data), DefaultConfig())
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc-mcp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_sessions: 8\n"), 0o644))

	config, err := LoadConfig(path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 8, config.MaxSessions)
	assert.Equal(t, DefaultLogLevel, config.LogLevel)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), DefaultConfig())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{name: "Debug", config: Config{LogLevel: "debug", MaxSessions: 1}},
		{name: "Uppercase level", config: Config{LogLevel: "ERROR", MaxSessions: 1}},
		{name: "Unknown level", config: Config{LogLevel: "verbose", MaxSessions: 1}, expectError: true},
		{name: "Zero sessions", config: Config{LogLevel: "info", MaxSessions: 0}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{LogLevel: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "bogus"}.SlogLevel())
}
