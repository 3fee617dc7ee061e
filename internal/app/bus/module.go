package bus

import (
	"go.uber.org/fx"

	"logview/internal/config"
	"logview/internal/config/logger"
)

// Module provides bus for dependency injection
var Module = fx.Module("bus",
	fx.Provide(func(log logger.Logger) Bus {
		return New(config.EventBufferSize, log.WithComponent("BUS"))
	}),
)
