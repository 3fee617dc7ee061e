package logger

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logview/internal/config"
)

func Test_NewLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		expected zerolog.Level
	}{
		{name: "Default", level: config.DefaultLogLevel, format: config.DefaultLogFormat, expected: zerolog.InfoLevel},
		{name: "Debug level", level: DebugLevel, format: ConsoleFormat, expected: zerolog.DebugLevel},
		{name: "Warn level and json format", level: WarnLevel, format: JSONFormat, expected: zerolog.WarnLevel},
		{name: "Empty level and format (defaults)", level: "", format: "", expected: zerolog.InfoLevel},
		{name: "Error level", level: ErrorLevel, format: ConsoleFormat, expected: zerolog.ErrorLevel},
		{name: "Trace level", level: TraceLevel, format: ConsoleFormat, expected: zerolog.TraceLevel},
		{name: "Unknown format (defaults to console)", level: InfoLevel, format: "unknown", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			logger := NewLogger(cfg)
			assert.NotNil(t, logger)

			appLogger, ok := logger.(*AppLogger)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, appLogger.log.GetLevel())
		})
	}
}

func Test_NewLogger_FillsEmptyConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = ""
	cfg.Logging.Format = ""

	NewLogger(cfg)

	assert.Equal(t, InfoLevel, cfg.Logging.Level)
	assert.Equal(t, ConsoleFormat, cfg.Logging.Format)
}

func Test_NewLoggerWithOutput_JSON(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Format = JSONFormat

	var buf bytes.Buffer

	logger := NewLoggerWithOutput(cfg, &buf).WithComponent("FETCH")
	logger.Info().Str("key", "value").Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"FETCH"`)
	assert.Contains(t, out, `"message":"hello"`)
	assert.Contains(t, out, `"version":"`+config.Version+`"`)
}

func Test_NewLoggerWithOutput_Console(t *testing.T) {
	cfg := config.DefaultConfig()

	var buf bytes.Buffer

	logger := NewLoggerWithOutput(cfg, &buf).WithComponent("API")
	logger.Warn().Msg("slow backend")

	out := buf.String()
	assert.Contains(t, out, "[API]")
	assert.Contains(t, out, "slow backend")
}

func Test_NewLoggerWithOutput_RespectsLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = WarnLevel
	cfg.Logging.Format = JSONFormat

	var buf bytes.Buffer

	logger := NewLoggerWithOutput(cfg, &buf)
	logger.Debug().Msg("hidden")
	logger.Info().Msg("hidden")

	assert.Empty(t, buf.String())
}

func Test_NewNopLogger(t *testing.T) {
	logger := NewNopLogger()

	assert.NotNil(t, logger)
	logger.Error().Err(errors.New("ignored")).Msg("nothing happens")
	assert.NotNil(t, logger.WithComponent("X"))
}

func Test_OpenOutput(t *testing.T) {
	t.Run("no file discards", func(t *testing.T) {
		cfg := config.DefaultConfig()

		w, closeFn, err := OpenOutput(cfg)
		require.NoError(t, err)
		assert.Equal(t, io.Discard, w)
		assert.NoError(t, closeFn())
	})

	t.Run("file output", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Logging.File = filepath.Join(t.TempDir(), "logview.log")

		w, closeFn, err := OpenOutput(cfg)
		require.NoError(t, err)

		_, err = w.Write([]byte("line\n"))
		assert.NoError(t, err)
		assert.NoError(t, closeFn())
	})

	t.Run("unwritable path", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Logging.File = filepath.Join(t.TempDir(), "missing", "logview.log")

		_, _, err := OpenOutput(cfg)
		assert.Error(t, err)
	})
}

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "Debug", level: DebugLevel, expected: zerolog.DebugLevel},
		{name: "Info", level: InfoLevel, expected: zerolog.InfoLevel},
		{name: "Warn", level: WarnLevel, expected: zerolog.WarnLevel},
		{name: "Error", level: ErrorLevel, expected: zerolog.ErrorLevel},
		{name: "Fatal", level: FatalLevel, expected: zerolog.FatalLevel},
		{name: "Panic", level: PanicLevel, expected: zerolog.PanicLevel},
		{name: "Trace", level: TraceLevel, expected: zerolog.TraceLevel},
		{name: "Upper case", level: "WARN", expected: zerolog.WarnLevel},
		{name: "Empty", level: "", expected: zerolog.InfoLevel},
		{name: "Unknown", level: "unknown", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.level))
		})
	}
}

func Test_zerologEvent(t *testing.T) {
	logger := NewLoggerWithOutput(config.DefaultConfig(), io.Discard)

	event := logger.Info()
	assert.NotNil(t, event.Str("key", "value"))
	assert.NotNil(t, event.Dur("duration", time.Second))

	event.Msg("test message")
}
