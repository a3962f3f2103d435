package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	Refresh    key.Binding
	CycleLang  key.Binding
	CycleTheme key.Binding
	Suspend    key.Binding

	// Section focus
	Tab           key.Binding
	ShiftTab      key.Binding
	FocusGroup    key.Binding
	FocusOverview key.Binding

	// Selection for the focused section
	Actual    key.Binding
	Predicted key.Binding
	Today     key.Binding
	Tomorrow  key.Binding

	// Scrolling
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh now"),
		),
		CycleLang: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Language"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Theme"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "Suspend"),
		),

		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Switch section"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Switch section (reverse)"),
		),
		FocusGroup: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Group section"),
		),
		FocusOverview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Overview section"),
		),

		Actual: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Actual schedule"),
		),
		Predicted: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Predicted schedule"),
		),
		Today: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Today"),
		),
		Tomorrow: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Tomorrow"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Actual, k.Predicted, k.Today, k.Tomorrow, k.Refresh, k.Help, k.Quit}
}

// FullHelp returns key bindings grouped for the help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.FocusGroup, k.FocusOverview, k.Up},
		{k.Actual, k.Predicted, k.Today, k.Tomorrow},
		{k.CycleLang, k.CycleTheme, k.Refresh, k.Help, k.Quit},
	}
}
