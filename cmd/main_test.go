package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxevent"

	"logview/internal/config"
	"logview/internal/config/logger"
)

func Test_LoadConfig(t *testing.T) {
	dir := t.TempDir()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte("server:\n  url: http://store:9000\n"), 0600))

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://store:9000", cfg.Server.URL)
}

func Test_CreateApp(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		output io.Writer
	}{
		{name: "Info level logging to stderr", level: logger.InfoLevel},
		{name: "Debug level logging discarded for the TUI", level: logger.DebugLevel, output: io.Discard},
		{name: "Error level logging", level: logger.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			app := createApp(cfg, tt.output)
			assert.NotNil(t, app)
		})
	}
}

func Test_IsTUIMode(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{name: "No args", args: []string{}, expected: true},
		{name: "Root filters only", args: []string{"--search", "timeout", "--follow"}, expected: true},
		{name: "No UI flag", args: []string{"--no-ui"}, expected: false},
		{name: "Logs command", args: []string{"logs", "--limit", "5"}, expected: false},
		{name: "Logs alias", args: []string{"l"}, expected: false},
		{name: "Set level", args: []string{"set-level", "3", "debug"}, expected: false},
		{name: "Help flag", args: []string{"-h"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isTUIMode(tt.args))
		})
	}
}

func Test_ApplyServerFlag(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "No flag keeps config", args: []string{"logs"}, expected: config.DefaultServerURL},
		{name: "Separate value", args: []string{"logs", "--server", "http://a:1"}, expected: "http://a:1"},
		{name: "Inline value", args: []string{"--server=http://b:2", "loggers"}, expected: "http://b:2"},
		{name: "Dangling flag is ignored", args: []string{"--server"}, expected: config.DefaultServerURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			applyServerFlag(cfg, tt.args)
			assert.Equal(t, tt.expected, cfg.Server.URL)
		})
	}
}

func Test_CreateFxLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected fxevent.Logger
	}{
		{name: "Debug level returns console logger", level: logger.DebugLevel, expected: &fxevent.ConsoleLogger{W: os.Stderr}},
		{name: "Info level returns nop logger", level: logger.InfoLevel, expected: fxevent.NopLogger},
		{name: "Error level returns nop logger", level: logger.ErrorLevel, expected: fxevent.NopLogger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			result := createFxLogger(cfg)()
			assert.Equal(t, tt.expected, result)
		})
	}
}
