package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed in the footer
var Tips = []string{
	tipDesc("Print one page without TUI using ") + tipKey("logview logs"),
	tipDesc("Follow new entries with ") + tipKey("logview logs --follow"),
	tipDesc("Hide noisy loggers with ") + tipKey("--exclude-pattern 'db.*'"),
	tipDesc("Press ") + tipKey("f") + tipDesc(" to poll for new entries"),
	tipDesc("Press ") + tipKey("tab") + tipDesc(" to pick loggers and change levels"),
	tipDesc("Press ") + tipKey("enter") + tipDesc(" to inspect an entry"),
	tipDesc("Press ") + tipKey("[") + tipDesc(" and ") + tipKey("]") + tipDesc(" to page"),
}
