package cli

import (
	"github.com/charmbracelet/lipgloss"

	"logview/internal/config"
)

var (
	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	bodyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warningStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// RenderTitle renders the app name, version and description
func RenderTitle() string {
	title := appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version)

	return lipgloss.JoinVertical(lipgloss.Left, title, bodyStyle.Render(config.AppDescription))
}

// RenderError renders a command failure for stderr
func RenderError(err error) string {
	return errorStyle.Render("Error: ") + err.Error()
}

// RenderWarning renders a recoverable problem for stderr
func RenderWarning(msg string) string {
	return warningStyle.Render(msg)
}
