package logview

import (
	"context"
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"logview/internal/app/bus"
	"logview/internal/app/criteria"
	"logview/internal/app/fetch"
	"logview/internal/app/model"
	"logview/internal/app/monitor"
	"logview/internal/app/session"
	"logview/internal/app/ui/components"
	"logview/internal/config/logger"
)

// focus is the pane receiving navigation keys
type focus int

const (
	focusLogs focus = iota
	focusLoggers
)

// Model represents the Bubble Tea model of the log viewer
type Model struct {
	ctx     context.Context
	session session.Session
	monitor monitor.Monitor
	msgChan <-chan bus.Message

	state struct {
		criteria    criteria.Criteria
		logs        fetch.State[[]model.LogEntry]
		loggers     fetch.State[[]model.Logger]
		drilldown   fetch.State[model.LogEntry]
		levels      map[int]fetch.State[string]
		selected    int64
		hasSelected bool
		polling     bool
		notice      string
		noticeError bool
		appCPU      float64
		appMEM      float64
	}

	ui struct {
		width        int
		height       int
		ready        bool
		keys         KeyMap
		inputKeys    InputKeyMap
		help         help.Model
		spinner      spinner.Model
		input        textinput.Model
		editing      field
		focus        focus
		showLoggers  bool
		cursor       int
		loggerCursor int
		tickCounter  int
		tipOffset    int
		pulse        *components.Blink
	}

	log logger.Logger
}

// NewModel creates the log viewer model and subscribes it to session events
func NewModel(
	ctx context.Context,
	sess session.Session,
	b bus.Bus,
	mon monitor.Monitor,
	log logger.Logger,
) Model {
	log = log.WithComponent("UI")
	msgChan := b.Subscribe(ctx)

	m := Model{
		ctx:     ctx,
		session: sess,
		monitor: mon,
		msgChan: msgChan,
		log:     log,
	}

	m.state.criteria = sess.Filters().Criteria()
	m.state.logs = sess.Logs()
	m.state.loggers = sess.Loggers()
	m.state.drilldown = sess.Drilldown()
	m.state.levels = make(map[int]fetch.State[string])
	m.state.selected, m.state.hasSelected = sess.Selected()
	m.state.polling = sess.Polling()

	m.ui.keys = DefaultKeyMap()
	m.ui.inputKeys = DefaultInputKeyMap()
	m.ui.help = help.New()
	m.ui.spinner = spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(components.SpinnerStyle))
	m.ui.input = textinput.New()
	m.ui.input.CharLimit = 256
	m.ui.tipOffset = rand.Intn(len(components.Tips)) //nolint:gosec // not security-critical
	m.ui.pulse = components.NewBlink()

	if m.state.polling {
		m.ui.pulse.Start()
	}

	log.Debug().Msg("Created model and subscribed to events")

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.ui.spinner.Tick,
		waitForMsgCmd(m.msgChan),
		tickCmd(),
		statsCmd(m.ctx, m.monitor),
	)
}

// loading reports whether any request of the view is in flight
func (m Model) loading() bool {
	return m.state.logs.IsLoading() || m.state.loggers.IsLoading() || m.state.drilldown.IsLoading()
}

// currentEntry returns the log entry under the cursor
func (m Model) currentEntry() (model.LogEntry, bool) {
	entries := m.state.logs.Data
	if m.ui.cursor < 0 || m.ui.cursor >= len(entries) {
		return model.LogEntry{}, false
	}

	return entries[m.ui.cursor], true
}

// currentLogger returns the logger under the loggers panel cursor
func (m Model) currentLogger() (model.Logger, bool) {
	loggers := m.state.loggers.Data
	if m.ui.loggerCursor < 0 || m.ui.loggerCursor >= len(loggers) {
		return model.Logger{}, false
	}

	return loggers[m.ui.loggerCursor], true
}

// clampCursors keeps both cursors inside their lists
func (m *Model) clampCursors() {
	m.ui.cursor = clamp(m.ui.cursor, len(m.state.logs.Data))
	m.ui.loggerCursor = clamp(m.ui.loggerCursor, len(m.state.loggers.Data))
}

func clamp(cursor, size int) int {
	if cursor >= size {
		cursor = size - 1
	}

	if cursor < 0 {
		cursor = 0
	}

	return cursor
}
