//go:generate mockgen -source=telemetry.go -destination=telemetry_mock.go -package=telemetry
package telemetry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"logview/internal/app/errors"
	"logview/internal/config"
	"logview/internal/config/logger"
)

const flushTimeout = 2 * time.Second

// Telemetry reports failures to Sentry when a DSN is configured
type Telemetry interface {
	Enabled() bool
	CaptureError(err error, tags map[string]string)
	Flush()
}

// telemetry implements the Telemetry interface
type telemetry struct {
	hub *sentry.Hub
	log logger.Logger
}

// New creates telemetry from the config; an empty DSN disables reporting
func New(cfg *config.Config, log logger.Logger) (Telemetry, error) {
	return NewWithOptions(cfg, sentry.ClientOptions{}, log)
}

// NewWithOptions creates telemetry with extra client options such as a BeforeSend hook
func NewWithOptions(cfg *config.Config, opts sentry.ClientOptions, log logger.Logger) (Telemetry, error) {
	if cfg.Telemetry.DSN == "" {
		return &telemetry{log: log}, nil
	}

	opts.Dsn = cfg.Telemetry.DSN
	opts.Environment = cfg.Telemetry.Environment
	opts.Release = fmt.Sprintf("%s@%s", config.AppName, config.Version)
	opts.AttachStacktrace = true

	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrTelemetryInitFailed, err)
	}

	scope := sentry.NewScope()
	scope.SetTag("server", cfg.Server.URL)

	log.Debug().Msgf("Error reporting enabled (environment '%s')", cfg.Telemetry.Environment)

	return &telemetry{hub: sentry.NewHub(client, scope), log: log}, nil
}

// Enabled reports whether errors are sent anywhere
func (t *telemetry) Enabled() bool {
	return t.hub != nil
}

// CaptureError reports err with the given tags; it is a no-op when disabled
func (t *telemetry) CaptureError(err error, tags map[string]string) {
	if t.hub == nil || err == nil {
		return
	}

	t.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)

		if id := t.hub.CaptureException(err); id != nil {
			t.log.Debug().Msgf("Reported error as event %s", *id)
		}
	})
}

// Flush waits for queued events to be delivered
func (t *telemetry) Flush() {
	if t.hub == nil {
		return
	}

	if !t.hub.Flush(flushTimeout) {
		t.log.Warn().Msg("Timed out flushing error reports")
	}
}
