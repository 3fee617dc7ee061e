package logview

import (
	"github.com/charmbracelet/bubbles/key"

	"logview/internal/app/ui/components"
)

// KeyMap defines the key bindings for the log view
type KeyMap struct {
	components.KeyMap
	Select        key.Binding
	PrevPage      key.Binding
	NextPage      key.Binding
	Search        key.Binding
	MinTime       key.Binding
	MaxTime       key.Binding
	Offset        key.Binding
	Limit         key.Binding
	Clear         key.Binding
	Refresh       key.Binding
	Follow        key.Binding
	ToggleLoggers key.Binding
	ToggleLogger  key.Binding
	ToggleAll     key.Binding
	LevelUp       key.Binding
	LevelDown     key.Binding
	Help          key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeyMap: components.DefaultKeyMap(),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "inspect"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next page"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		MinTime: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "min time"),
		),
		MaxTime: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "max time"),
		),
		Offset: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "offset"),
		),
		Limit: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "limit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow"),
		),
		ToggleLoggers: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "loggers"),
		),
		ToggleLogger: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "include"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle all"),
		),
		LevelUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "level up"),
		),
		LevelDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "level down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.PrevPage, k.NextPage, k.Search, k.Follow, k.ToggleLoggers, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Select, k.PrevPage, k.NextPage},
		{k.Search, k.MinTime, k.MaxTime, k.Offset, k.Limit, k.Clear},
		{k.Refresh, k.Follow, k.ToggleLoggers, k.ToggleLogger, k.ToggleAll, k.LevelUp, k.LevelDown},
		{k.Help, k.Quit},
	}
}

// InputKeyMap defines the key bindings while a filter is being edited
type InputKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultInputKeyMap returns the default input bindings
func DefaultInputKeyMap() InputKeyMap {
	return InputKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k InputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k InputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
