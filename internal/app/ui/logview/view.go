package logview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"logview/internal/app/criteria"
	"logview/internal/app/fetch"
	"logview/internal/app/model"
	"logview/internal/app/ui/components"
	"logview/internal/config"
)

// View renders the UI
func (m Model) View() string {
	if !m.ui.ready {
		return "Initializing…"
	}

	width := m.ui.width - components.AppContainerStyle.GetHorizontalPadding()

	sections := []string{
		components.RenderHeader(width, m.renderTitle(), m.renderBannerInfo()),
		m.renderFilters(),
		m.renderStatusLine(),
		m.renderBody(width),
	}

	if m.state.hasSelected {
		sections = append(sections, m.renderDrilldown(width))
	}

	sections = append(sections, components.RenderFooter(width, m.renderHelp(), m.renderTip()))

	return components.AppContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderTitle renders the app name, or a spinner while anything is loading
func (m Model) renderTitle() string {
	if m.loading() {
		return m.ui.spinner.View() + components.LoaderSpacerStyle.Render("loading…")
	}

	return components.TitleStyle.Render(config.AppName)
}

// renderBannerInfo renders the poll indicator and the viewer's own stats
func (m Model) renderBannerInfo() string {
	parts := make([]string, 0, 2)

	if m.state.polling {
		parts = append(parts, m.ui.pulse.Render(components.PollActiveStyle)+" following")
	} else {
		parts = append(parts, components.PollIdleStyle.Render("○ paused"))
	}

	if m.state.appCPU != 0 || m.state.appMEM != 0 {
		parts = append(parts, fmt.Sprintf("cpu %s • mem %s", formatCPU(m.state.appCPU), formatMEM(m.state.appMEM)))
	}

	return strings.Join(parts, " • ")
}

// renderFilters renders the current criteria on one line
func (m Model) renderFilters() string {
	c := m.state.criteria

	return strings.Join([]string{
		renderFilter("search", c.Search),
		renderFilter("min", c.MinTime),
		renderFilter("max", c.MaxTime),
		renderFilter("offset", strconv.Itoa(c.Offset)),
		renderFilter("limit", strconv.Itoa(c.Limit)),
		renderFilter("excluded", strconv.Itoa(c.ExcludeLoggers.Len())),
	}, "  ")
}

func renderFilter(label, value string) string {
	if value == "" {
		value = "–"
	}

	return components.LabelStyle.Render(label+": ") + components.ValueStyle.Render(value)
}

// renderStatusLine renders the active input, or the latest notice
func (m Model) renderStatusLine() string {
	if m.ui.editing != fieldNone {
		return m.ui.input.View()
	}

	if m.state.notice == "" {
		return ""
	}

	if m.state.noticeError {
		return components.ErrorStyle.Render(m.state.notice)
	}

	return components.WarningStyle.Render(m.state.notice)
}

// renderBody renders the logs table with the optional loggers panel on the right
func (m Model) renderBody(width int) string {
	height := m.tableHeight()

	if !m.ui.showLoggers {
		return m.renderLogs(width, height)
	}

	panelWidth := components.LoggersPanelWidth
	logsWidth := width - panelWidth - 1

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderLogs(logsWidth, height),
		" ",
		m.renderLoggers(panelWidth, height),
	)
}

// tableHeight returns the number of log rows that fit on screen
func (m Model) tableHeight() int {
	height := m.ui.height - components.ChromeHeight
	if m.state.hasSelected {
		height -= m.drilldownHeight()
	}

	if m.ui.help.ShowAll {
		height -= len(m.ui.keys.FullHelp()) - 1
	}

	if height < components.MinTableHeight {
		height = components.MinTableHeight
	}

	return height
}

func (m Model) drilldownHeight() int {
	height := m.ui.height / 3
	if height < components.DrilldownMinHeight {
		height = components.DrilldownMinHeight
	}

	return height
}

// renderLogs renders the logs table and the pagination line
func (m Model) renderLogs(width, height int) string {
	c := m.state.criteria
	header := components.RenderHeader(width, "logs", fmt.Sprintf("page %d", criteria.PageNumber(c)))

	var body string

	switch {
	case m.state.logs.Failed():
		body = components.ErrorStyle.Render("Error: " + m.state.logs.Err)
	case len(m.state.logs.Data) == 0 && m.state.logs.IsLoading():
		body = components.EmptyStateStyle.Render("Loading…")
	case len(m.state.logs.Data) == 0:
		body = components.EmptyStateStyle.Render("No logs to display")
	default:
		body = m.renderLogRows(width, height)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderLogColumns(width), body)
}

func (m Model) messageWidth(width int) int {
	fixed := components.ColWidthIndicator + components.ColWidthID + components.ColWidthTimestamp +
		components.ColWidthLevel + components.ColWidthLogger + 5

	if width-fixed < components.MessageMinWidth {
		return components.MessageMinWidth
	}

	return width - fixed
}

// renderLogColumns renders the column headers row
func (m Model) renderLogColumns(width int) string {
	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s %s",
		components.ColWidthIndicator, "",
		components.ColWidthID, "id",
		components.ColWidthTimestamp, "time",
		components.ColWidthLevel, "level",
		components.ColWidthLogger, "logger",
		"message",
	)

	return components.TableHeaderStyle.Render(components.TruncateAndPad(header, width))
}

// renderLogRows renders the window of rows that keeps the cursor visible
func (m Model) renderLogRows(width, height int) string {
	entries := m.state.logs.Data

	start := 0
	if m.ui.cursor >= height {
		start = m.ui.cursor - height + 1
	}

	end := start + height
	if end > len(entries) {
		end = len(entries)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderLogRow(entries[i], i == m.ui.cursor, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderLogRow renders one log entry
func (m Model) renderLogRow(e model.LogEntry, isCursor bool, width int) string {
	indicator := components.IndicatorEmpty
	if isCursor && m.ui.focus == focusLogs {
		indicator = components.IndicatorSelected
	}

	isSelected := m.state.hasSelected && m.state.selected == e.ID
	level := components.TruncateAndPad(e.Level.Label(), components.ColWidthLevel)
	name := components.TruncateAndPad(e.Logger, components.ColWidthLogger)

	if !isSelected {
		level = lipgloss.NewStyle().Foreground(components.LevelColor(e.Level)).Render(level)
		name = lipgloss.NewStyle().Foreground(components.LoggerColor(e.LoggerID)).Render(name)
	}

	row := fmt.Sprintf("%s %s %s %s %s %s",
		indicator,
		components.TruncateAndPad(strconv.FormatInt(e.ID, 10), components.ColWidthID),
		components.TruncateAndPad(formatTimestamp(e.Timestamp), components.ColWidthTimestamp),
		level,
		name,
		components.Truncate(components.SingleLine(e.Message), m.messageWidth(width)),
	)

	if isSelected {
		return components.SelectedRowStyle.Render(components.PadRight(row, width))
	}

	return components.RowStyle.Render(row)
}

// renderLoggers renders the loggers panel with the master checkbox
func (m Model) renderLoggers(width, height int) string {
	style := components.PanelStyle
	if m.ui.focus == focusLoggers {
		style = components.FocusedPanelStyle
	}

	inner := width - style.GetHorizontalFrameSize()
	lines := []string{components.TitleStyle.Render(m.masterCheckbox() + " Loggers")}

	switch {
	case m.state.loggers.Failed():
		lines = append(lines, components.ErrorStyle.Render(components.Truncate("Error: "+m.state.loggers.Err, inner)))
	case len(m.state.loggers.Data) == 0:
		lines = append(lines, components.EmptyStateStyle.Render("No loggers to display"))
	default:
		lines = append(lines, m.renderLoggerRows(inner, height-style.GetVerticalFrameSize()-1)...)
	}

	return style.Width(width - style.GetHorizontalBorderSize()).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// masterCheckbox reflects whether every logger is included
func (m Model) masterCheckbox() string {
	excluded := m.state.criteria.ExcludeLoggers

	switch {
	case excluded.IsAllIncluded():
		return components.IndicatorIncluded
	case excluded.Len() >= len(m.state.loggers.Data):
		return components.IndicatorExcluded
	default:
		return components.IndicatorPartial
	}
}

func (m Model) renderLoggerRows(width, height int) []string {
	loggers := m.state.loggers.Data
	if height < 1 {
		height = 1
	}

	start := 0
	if m.ui.loggerCursor >= height {
		start = m.ui.loggerCursor - height + 1
	}

	end := start + height
	if end > len(loggers) {
		end = len(loggers)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderLoggerRow(loggers[i], i == m.ui.loggerCursor, width))
	}

	return rows
}

// renderLoggerRow renders checkbox, name and level picker of one logger
func (m Model) renderLoggerRow(l model.Logger, isCursor bool, width int) string {
	indicator := components.IndicatorEmpty
	if isCursor && m.ui.focus == focusLoggers {
		indicator = components.IndicatorSelected
	}

	checkbox := components.IndicatorIncluded
	if m.state.criteria.ExcludeLoggers.Contains(l.ID) {
		checkbox = components.IndicatorExcluded
	}

	level := m.renderLevelPicker(l)
	nameWidth := width - lipgloss.Width(indicator) - lipgloss.Width(checkbox) - lipgloss.Width(level) - 3

	row := fmt.Sprintf("%s %s %s %s", indicator, checkbox, components.TruncateAndPad(l.Name, nameWidth), level)

	if isCursor && m.ui.focus == focusLoggers {
		return components.SelectedRowStyle.Render(row)
	}

	return row
}

// renderLevelPicker shows the level, or the state of a pending change
func (m Model) renderLevelPicker(l model.Logger) string {
	st, ok := m.state.levels[l.ID]

	switch {
	case ok && st.IsLoading():
		return components.WarningStyle.Render("setting…")
	case ok && st.Failed():
		return components.ErrorStyle.Render("failed")
	default:
		return lipgloss.NewStyle().Foreground(components.LevelColor(l.Level)).Render("‹" + l.Level.Label() + "›")
	}
}

// renderDrilldown renders the selected entry with its pretty-printed meta
func (m Model) renderDrilldown(width int) string {
	height := m.drilldownHeight()
	header := components.RenderHeader(width, "drilldown", fmt.Sprintf("log %d", m.state.selected))
	dd := m.state.drilldown

	var lines []string

	switch {
	case dd.IsLoading():
		lines = []string{components.EmptyStateStyle.Render("Loading…")}
	case dd.Failed():
		lines = []string{components.ErrorStyle.Render("Error: " + dd.Err)}
	case dd.Status != fetch.StatusSuccess:
		lines = []string{components.EmptyStateStyle.Render("Select log…")}
	default:
		e := dd.Data
		lines = []string{
			renderField("timestamp", e.Timestamp),
			renderField("logger", e.Logger),
			renderField("level", e.Level.Label()),
			renderField("message", components.SingleLine(e.Message)),
		}

		if e.HasMeta() {
			lines = append(lines, components.LabelStyle.Render("meta:"))
			lines = append(lines, strings.Split(formatMeta(e.Meta), "\n")...)
		}
	}

	if len(lines) > height-1 {
		lines = append(lines[:height-2], components.LabelStyle.Render("…"))
	}

	for i, line := range lines {
		lines[i] = components.Truncate(line, width)
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, lines...)...)
}

func renderField(label, value string) string {
	return components.LabelStyle.Render(label+": ") + value
}

// renderHelp renders the help text with keybindings
func (m Model) renderHelp() string {
	if m.ui.editing != fieldNone {
		return m.ui.help.View(m.ui.inputKeys)
	}

	return m.ui.help.View(m.ui.keys)
}

// renderTip returns the current rotating tip
func (m Model) renderTip() string {
	if m.ui.help.ShowAll {
		return ""
	}

	rotation := m.ui.tickCounter / components.TipRotationTicks
	tipIndex := (m.ui.tipOffset + rotation) % len(components.Tips)

	return components.Tips[tipIndex]
}

// formatTimestamp shortens RFC 3339 timestamps; other formats are shown verbatim
func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}

	return t.Format("2006-01-02 15:04:05.000")
}

// formatMeta indents a JSON payload; invalid payloads are shown verbatim
func formatMeta(meta json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, meta, "", "  "); err != nil {
		return string(meta)
	}

	return buf.String()
}
