package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	AppContainerStyle = lipgloss.NewStyle().Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().Foreground(FgPrimary)

	SeparatorStyle = lipgloss.NewStyle().Foreground(FgBorder)

	FooterStyle = lipgloss.NewStyle().Foreground(FgBorder)

	FooterHelpStyle = lipgloss.NewStyle().MarginTop(0)

	HelpStyle = lipgloss.NewStyle().Foreground(FgBorder)

	ContentStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(FgPrimary)

	LabelStyle = lipgloss.NewStyle().Foreground(FgBorder)

	ValueStyle = lipgloss.NewStyle().Foreground(FgMuted)

	ActiveValueStyle = lipgloss.NewStyle().Bold(true).Foreground(FgPrimary)

	TimestampStyle = lipgloss.NewStyle().Foreground(FgMuted)

	ErrorStyle = lipgloss.NewStyle().Foreground(FgStatusError)

	WarningStyle = lipgloss.NewStyle().Foreground(FgStatusWarning)

	EmptyStateStyle = lipgloss.NewStyle().Foreground(FgMuted).MarginTop(1)

	SpinnerStyle = lipgloss.NewStyle().Foreground(FgPrimary)

	LoaderSpacerStyle = lipgloss.NewStyle().MarginLeft(1)

	PollActiveStyle = lipgloss.NewStyle().Foreground(FgStatusOK)

	PollIdleStyle = lipgloss.NewStyle().Foreground(FgStatusIdle)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(FgBorder)

	RowStyle = lipgloss.NewStyle()

	SelectedRowStyle = lipgloss.NewStyle().Background(BgSelection).Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgBorder).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FgPrimary).
				Padding(0, 1)
)
