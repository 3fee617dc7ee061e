package app

import (
	"go.uber.org/fx"

	"logview/internal/app/bus"
	"logview/internal/app/cli"
	"logview/internal/app/generator"
	"logview/internal/app/monitor"
	"logview/internal/app/session"
	"logview/internal/app/telemetry"
	"logview/internal/app/ui/wire"
	"logview/internal/app/watcher"
)

var Module = fx.Options(
	bus.Module,
	session.Module,
	watcher.Module,
	monitor.Module,
	generator.Module,
	telemetry.Module,
	wire.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
