package session

import (
	"context"

	"go.uber.org/fx"

	"logview/internal/app/api"
	"logview/internal/config"
	"logview/internal/config/logger"
)

// Module provides the fx dependency injection options for the session package
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, log logger.Logger) (api.Client, error) {
		return api.New(cfg, log.WithComponent("API"))
	}),
	fx.Provide(New),
	fx.Invoke(register),
)

// register ties the session to the application lifecycle
func register(lc fx.Lifecycle, s Session) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			s.Close()
			return nil
		},
	})
}
