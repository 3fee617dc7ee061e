package telemetry

import (
	"context"

	"go.uber.org/fx"

	"logview/internal/config"
	"logview/internal/config/logger"
)

// Module provides error reporting
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, log logger.Logger) (Telemetry, error) {
		return New(cfg, log.WithComponent("TELEMETRY"))
	}),
	fx.Invoke(func(lc fx.Lifecycle, t Telemetry) {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				t.Flush()
				return nil
			},
		})
	}),
)
