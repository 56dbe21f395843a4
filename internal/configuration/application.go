package configuration

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Settings configuration file keys.
const (
	KeyLogLevel   = "GOCP_LOG_LEVEL"
	KeyBufferSize = "GOCP_BUFFER_SIZE"
	KeyStartDir   = "GOCP_START_DIR"
)

// Settings is the principal structure holding the application configuration.
type Settings struct {
	LogLevel   slog.Level
	BufferSize int
	StartDir   string
}

// DefaultSettings returns the settings used when no configuration file is
// present.
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel:   slog.LevelInfo,
		BufferSize: 0,
	}
}

// DefaultPath returns the default location of the user configuration file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "gocp", "gocp.env")
}

// LoadSettings reads a configuration file into [Settings]. A missing or
// unreadable file yields the defaults without an error, as configuration is
// strictly optional.
func (c *Handler) LoadSettings(path string) *Settings {
	settings := DefaultSettings()

	if path == "" {
		return settings
	}

	envMap, err := c.ReadGeneric(path)
	if err != nil {
		return settings
	}

	switch c.MapKeyToString(envMap, KeyLogLevel) {
	case "debug":
		settings.LogLevel = slog.LevelDebug
	case "warn":
		settings.LogLevel = slog.LevelWarn
	case "error":
		settings.LogLevel = slog.LevelError
	case "info":
		settings.LogLevel = slog.LevelInfo
	}

	if size := c.MapKeyToInt(envMap, KeyBufferSize); size > 0 {
		settings.BufferSize = size
	}

	if dir := c.MapKeyToString(envMap, KeyStartDir); dir != "" {
		settings.StartDir = dir
	}

	return settings
}
