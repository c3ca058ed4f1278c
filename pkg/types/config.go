package types

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel    = "info"
	DefaultMaxSessions = 64
)

// Config represents the configuration for the calc-mcp server
type Config struct {
	LogLevel    string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	MaxSessions int    `json:"max_sessions,omitempty" yaml:"max_sessions,omitempty"`
}

// DefaultConfig returns the configuration used when no flags or file are given
func DefaultConfig() Config {
	return Config{
		LogLevel:    DefaultLogLevel,
		MaxSessions: DefaultMaxSessions,
	}
}

// LoadConfig reads a YAML config file on top of base. Keys missing from the
// file keep their value from base.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data, base)
}

// ParseConfig decodes YAML config data on top of base
func ParseConfig(data []byte, base Config) (Config, error) {
	config := base
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty file decodes to io.EOF and leaves base untouched.
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// Validate checks that the config values are usable
func (c Config) Validate() error {
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxSessions <= 0 {
		return fmt.Errorf("max_sessions must be positive, got %d", c.MaxSessions)
	}
	return nil
}

// SlogLevel returns the slog level for LogLevel, defaulting to info
func (c Config) SlogLevel() slog.Level {
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (expected debug, info, warn or error)", s)
	}
}
