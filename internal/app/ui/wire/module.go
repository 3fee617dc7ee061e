package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"logview/internal/app/bus"
	"logview/internal/app/monitor"
	"logview/internal/app/session"
	"logview/internal/app/ui/logview"
	"logview/internal/config/logger"
)

// UI creates a Bubble Tea program for the TUI
type UI func(ctx context.Context) (*tea.Program, error)

// Module provides the UI factory
var Module = fx.Options(
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Session session.Session
	Bus     bus.Bus
	Monitor monitor.Monitor
	Logger  logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context) (*tea.Program, error) {
		model := logview.NewModel(
			ctx,
			params.Session,
			params.Bus,
			params.Monitor,
			params.Logger,
		)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI program created via factory")

		return p, nil
	}
}
