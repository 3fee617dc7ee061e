package logview

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"logview/internal/app/bus"
	"logview/internal/app/model"
	"logview/internal/app/ui/components"
)

// Tick timing constants
const (
	tickInterval       = components.UITickInterval
	tickCounterMaximum = 1000000
)

// msgMsg wraps a bus message for tea messaging
type msgMsg bus.Message

// tickMsg signals a UI tick for animations
type tickMsg time.Time

// channelClosedMsg signals the event channel has closed
type channelClosedMsg struct{}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.ui.input.Width = msg.Width - len(m.ui.input.Prompt) - 4
		m.ui.ready = true

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.ui.spinner, cmd = m.ui.spinner.Update(msg)

		return m, cmd

	case tickMsg:
		m.ui.tickCounter++

		if m.ui.tickCounter >= tickCounterMaximum {
			m.ui.tickCounter = 0
		}

		m.ui.pulse.Update()

		return m, tickCmd()

	case statsUpdateMsg:
		if msg.Err != nil {
			m.log.Debug().Err(msg.Err).Msg("Failed to sample viewer stats")
		} else {
			m.state.appCPU = msg.CPU
			m.state.appMEM = msg.MEM
		}

		return m, statsCmd(m.ctx, m.monitor)

	case msgMsg:
		return m.handleMessage(bus.Message(msg))

	case channelClosedMsg:
		m.log.Warn().Msg("Event channel closed, quitting")

		return m, tea.Quit
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.ui.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.ui.editing != fieldNone {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.ui.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.ui.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.ui.keys.Top):
		m.jumpCursor(false)

	case key.Matches(msg, m.ui.keys.Bottom):
		m.jumpCursor(true)

	case key.Matches(msg, m.ui.keys.PrevPage):
		m.session.Filters().PrevPage()
		m.ui.cursor = 0

	case key.Matches(msg, m.ui.keys.NextPage):
		m.session.Filters().NextPage()
		m.ui.cursor = 0

	case key.Matches(msg, m.ui.keys.Search):
		return m.startEditing(fieldSearch)

	case key.Matches(msg, m.ui.keys.MinTime):
		return m.startEditing(fieldMinTime)

	case key.Matches(msg, m.ui.keys.MaxTime):
		return m.startEditing(fieldMaxTime)

	case key.Matches(msg, m.ui.keys.Offset):
		return m.startEditing(fieldOffset)

	case key.Matches(msg, m.ui.keys.Limit):
		return m.startEditing(fieldLimit)

	case key.Matches(msg, m.ui.keys.Clear):
		m.session.Filters().Clear()
		m.setNotice("", false)

	case key.Matches(msg, m.ui.keys.Refresh):
		m.session.Refresh()

	case key.Matches(msg, m.ui.keys.Follow):
		m.setPolling(!m.state.polling)
		m.session.SetPolling(m.state.polling)

	case key.Matches(msg, m.ui.keys.ToggleLoggers):
		m.ui.showLoggers = !m.ui.showLoggers
		m.ui.focus = focusLogs

		if m.ui.showLoggers {
			m.ui.focus = focusLoggers
		}

	case key.Matches(msg, m.ui.keys.Help):
		m.ui.help.ShowAll = !m.ui.help.ShowAll

	case m.ui.focus == focusLoggers:
		return m.handleLoggersKey(msg)

	case key.Matches(msg, m.ui.keys.Select):
		if entry, ok := m.currentEntry(); ok {
			m.session.ToggleSelection(entry.ID)
		}
	}

	return m, nil
}

// handleLoggersKey processes keys aimed at the loggers panel
func (m Model) handleLoggersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.ToggleAll):
		m.session.Filters().ToggleAllLoggers(model.LoggerIDs(m.state.loggers.Data))
		return m, nil

	case key.Matches(msg, m.ui.keys.Select):
		m.ui.focus = focusLogs
		return m, nil
	}

	l, ok := m.currentLogger()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.ui.keys.ToggleLogger):
		included := !m.state.criteria.ExcludeLoggers.Contains(l.ID)
		m.session.Filters().SetLoggerIncluded(l.ID, !included)

	case key.Matches(msg, m.ui.keys.LevelUp):
		m.changeLevel(l, l.Level.Next())

	case key.Matches(msg, m.ui.keys.LevelDown):
		m.changeLevel(l, l.Level.Prev())
	}

	return m, nil
}

// changeLevel sends a level change unless one is already in flight for the logger
func (m Model) changeLevel(l model.Logger, level model.Level) {
	if m.state.levels[l.ID].IsLoading() {
		return
	}

	m.session.ChangeLoggerLevel(l.ID, level)
}

// handleInputKey routes keys to the filter input
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.inputKeys.Cancel):
		m.stopEditing()
		return m, nil

	case key.Matches(msg, m.ui.inputKeys.Submit):
		if err := m.ui.editing.apply(m.session.Filters(), m.ui.input.Value()); err != nil {
			m.setNotice(err.Error(), true)
			return m, nil
		}

		m.setNotice("", false)
		m.ui.cursor = 0
		m.stopEditing()

		return m, nil
	}

	var cmd tea.Cmd

	m.ui.input, cmd = m.ui.input.Update(msg)

	return m, cmd
}

// startEditing opens the input for f prefilled with its current value
func (m Model) startEditing(f field) (tea.Model, tea.Cmd) {
	m.ui.editing = f
	m.ui.input.Prompt = f.label() + ": "
	m.ui.input.Placeholder = f.placeholder()
	m.ui.input.SetValue(f.current(m.state.criteria))
	m.ui.input.CursorEnd()
	m.setNotice("", false)

	return m, m.ui.input.Focus()
}

func (m *Model) stopEditing() {
	m.ui.editing = fieldNone
	m.ui.input.Blur()
	m.ui.input.Reset()
}

func (m *Model) setNotice(text string, isError bool) {
	m.state.notice = text
	m.state.noticeError = isError
}

func (m *Model) setPolling(enabled bool) {
	m.state.polling = enabled

	if enabled {
		m.ui.pulse.Start()
		return
	}

	m.ui.pulse.Stop()
}

// moveCursor moves the cursor of the focused pane by delta rows
func (m *Model) moveCursor(delta int) {
	if m.ui.focus == focusLoggers {
		m.ui.loggerCursor = clamp(m.ui.loggerCursor+delta, len(m.state.loggers.Data))
		return
	}

	m.ui.cursor = clamp(m.ui.cursor+delta, len(m.state.logs.Data))
}

// jumpCursor moves the cursor of the focused pane to its first or last row
func (m *Model) jumpCursor(last bool) {
	size := len(m.state.logs.Data)
	if m.ui.focus == focusLoggers {
		size = len(m.state.loggers.Data)
	}

	if last {
		m.moveCursor(size)
		return
	}

	m.moveCursor(-size)
}

// handleMessage applies a session event to the view state.
// Fetch states older than the one on screen arrived late and are dropped.
func (m Model) handleMessage(msg bus.Message) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case bus.EventCriteriaChanged:
		if data, ok := msg.Data.(bus.CriteriaChanged); ok {
			m.state.criteria = data.Criteria
		}

	case bus.EventLogsUpdated:
		if data, ok := msg.Data.(bus.LogsUpdated); ok && data.State.Generation >= m.state.logs.Generation {
			m.state.logs = data.State
			m.clampCursors()
		}

	case bus.EventLoggersUpdated:
		if data, ok := msg.Data.(bus.LoggersUpdated); ok && data.State.Generation >= m.state.loggers.Generation {
			m.state.loggers = data.State
			m.clampCursors()
		}

	case bus.EventDrilldownUpdated:
		if data, ok := msg.Data.(bus.DrilldownUpdated); ok && data.State.Generation >= m.state.drilldown.Generation {
			m.state.drilldown = data.State
		}

	case bus.EventLevelUpdated:
		if data, ok := msg.Data.(bus.LevelUpdated); ok && data.State.Generation >= m.state.levels[data.LoggerID].Generation {
			m.state.levels[data.LoggerID] = data.State
		}

	case bus.EventSelectionChanged:
		if data, ok := msg.Data.(bus.SelectionChanged); ok {
			m.state.selected = data.ID
			m.state.hasSelected = data.Selected
		}

	case bus.EventPollingChanged:
		if data, ok := msg.Data.(bus.PollingChanged); ok {
			m.setPolling(data.Enabled)
		}

	case bus.EventConfigReloaded:
		if data, ok := msg.Data.(bus.ConfigReloaded); ok {
			m.setNotice("reloaded "+data.Path, false)
		}

	default:
		m.log.Debug().Msgf("Ignoring event %s", msg.Type)
	}

	return m, waitForMsgCmd(m.msgChan)
}

// waitForMsgCmd returns a command that waits for the next message
func waitForMsgCmd(msgChan <-chan bus.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-msgChan
		if !ok {
			return channelClosedMsg{}
		}

		return msgMsg(msg)
	}
}

// tickCmd returns a command that sends a tick after the interval
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
