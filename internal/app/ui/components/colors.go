package components

import (
	"github.com/charmbracelet/lipgloss"

	"logview/internal/app/model"
)

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text

	// Background colors
	BgSelection = lipgloss.Color("235") // Dark gray - selected background

	// Status colors
	FgStatusOK      = lipgloss.Color("10") // Green - settled/polling
	FgStatusWarning = lipgloss.Color("11") // Yellow - loading/warning
	FgStatusError   = lipgloss.Color("9")  // Red - failed request
	FgStatusIdle    = lipgloss.Color("8")  // Gray - idle
)

// Level colors
var (
	LevelDebugColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}
	LevelInfoColor  = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	LevelWarnColor  = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
	LevelErrorColor = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
)

// LoggerColorPalette provides distinct colors for logger names
var LoggerColorPalette = []lipgloss.AdaptiveColor{
	{Light: "#0891b2", Dark: "#22d3ee"}, // Cyan
	{Light: "#d97706", Dark: "#fbbf24"}, // Amber
	{Light: "#059669", Dark: "#34d399"}, // Emerald
	{Light: "#7c3aed", Dark: "#a78bfa"}, // Violet
	{Light: "#db2777", Dark: "#f472b6"}, // Pink
	{Light: "#2563eb", Dark: "#60a5fa"}, // Blue
	{Light: "#65a30d", Dark: "#a3e635"}, // Lime
	{Light: "#0d9488", Dark: "#2dd4bf"}, // Teal
	{Light: "#ea580c", Dark: "#fb923c"}, // Orange
	{Light: "#4f46e5", Dark: "#818cf8"}, // Indigo
	{Light: "#0284c7", Dark: "#38bdf8"}, // Sky
	{Light: "#15803d", Dark: "#86efac"}, // Green
}

// LevelColor returns the color of a severity level
func LevelColor(level model.Level) lipgloss.TerminalColor {
	switch level {
	case model.LevelDebug:
		return LevelDebugColor
	case model.LevelInfo:
		return LevelInfoColor
	case model.LevelWarn:
		return LevelWarnColor
	case model.LevelError:
		return LevelErrorColor
	default:
		return FgMuted
	}
}

// LoggerColor returns a stable palette color for a logger id
func LoggerColor(id int) lipgloss.AdaptiveColor {
	if id < 0 {
		id = -id
	}

	return LoggerColorPalette[id%len(LoggerColorPalette)]
}
