package watcher

import (
	"context"

	"go.uber.org/fx"

	"logview/internal/app/bus"
	"logview/internal/app/session"
	"logview/internal/config"
	"logview/internal/config/logger"
)

// Module provides the config watcher and its dependencies
var Module = fx.Options(
	fx.Provide(func(s session.Session, b bus.Bus, log logger.Logger) (Watcher, error) {
		return NewWatcher(config.ConfigFile, s, b, config.LoadFile, log)
	}),
	fx.Invoke(register),
)

// register starts the watcher with the application and stops it on shutdown
func register(lc fx.Lifecycle, w Watcher, log logger.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := w.Start(ctx); err != nil {
				log.Warn().Err(err).Msg("Config watcher disabled")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			w.Close()

			return nil
		},
	})
}
