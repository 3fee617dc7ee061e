package telemetry

import (
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logview/internal/app/errors"
	"logview/internal/config"
	"logview/internal/config/logger"
)

func Test_New_Disabled(t *testing.T) {
	tel, err := New(config.DefaultConfig(), logger.NewNopLogger())
	require.NoError(t, err)

	assert.False(t, tel.Enabled())

	tel.CaptureError(errors.New("ignored"), nil)
	tel.Flush()
}

func Test_New_InvalidDSN(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Telemetry.DSN = "not a dsn"

	tel, err := New(cfg, logger.NewNopLogger())

	assert.ErrorIs(t, err, errors.ErrTelemetryInitFailed)
	assert.Nil(t, tel)
}

func Test_CaptureError(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Telemetry.DSN = "https://public@sentry.example.com/1"
	cfg.Telemetry.Environment = "test"

	var captured []*sentry.Event

	tel, err := NewWithOptions(cfg, sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			captured = append(captured, event)
			return nil
		},
	}, logger.NewNopLogger())
	require.NoError(t, err)
	assert.True(t, tel.Enabled())

	tel.CaptureError(errors.New("Logs request failed, status: 500 Internal Server Error"), map[string]string{"command": "logs"})
	tel.CaptureError(nil, nil)

	require.Len(t, captured, 1)

	event := captured[0]
	assert.Equal(t, "test", event.Environment)
	assert.Equal(t, "logview@"+config.Version, event.Release)
	assert.Equal(t, "logs", event.Tags["command"])
	assert.Equal(t, config.DefaultServerURL, event.Tags["server"])
	require.NotEmpty(t, event.Exception)
	assert.Equal(t, "Logs request failed, status: 500 Internal Server Error", event.Exception[0].Value)
}
