package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/svitlo/internal/prefs"
	"github.com/five82/svitlo/internal/schedule"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and footer bars
	SurfaceAlt string // Inactive tabs

	// Selection colors
	SelectionBg   string // Active tab / current hour
	SelectionText string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Danger  string

	// Outage colors keyed by the three base states: yes, no, maybe.
	StatusColors map[schedule.Status]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Banner: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Danger)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		statusColors: t.StatusColors,
		muted:        t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	// Components
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Banner   lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style
	Tab      lipgloss.Style

	statusColors map[schedule.Status]string
	muted        string
}

// StatusColor returns the color of a base state (yes, no or maybe).
func (s Styles) StatusColor(base schedule.Status) string {
	if color := s.statusColors[base]; color != "" {
		return color
	}
	return s.muted
}

// StatusBlock returns a background-only style for bar and cell segments.
func (s Styles) StatusBlock(base schedule.Status) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(s.StatusColor(base)))
}

// StatusText returns the foreground style for a status label.
func (s Styles) StatusText(status schedule.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.StatusColor(textColorKey(status))))
}

// textColorKey picks the base colour of a status label. Any maybe half reads
// as maybe; a plain split reads by its first half.
func textColorKey(status schedule.Status) schedule.Status {
	switch status {
	case schedule.StatusNo, schedule.StatusFirst:
		return schedule.StatusNo
	case schedule.StatusMaybe, schedule.StatusMaybeFirst, schedule.StatusMaybeSecond:
		return schedule.StatusMaybe
	default:
		return schedule.StatusYes
	}
}

// Theme definitions

const (
	ThemeDark  = prefs.ThemeDark
	ThemeLight = prefs.ThemeLight
)

var themes = map[string]Theme{
	ThemeDark:  darkTheme(),
	ThemeLight: lightTheme(),
}

var themeOrder = []string{ThemeDark, ThemeLight}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return darkTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func darkTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: ThemeDark,

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2

		SelectionBg:   "#719cd6", // blue
		SelectionText: "#131a24",

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red

		StatusColors: map[schedule.Status]string{
			schedule.StatusYes:   "#81b29a", // green
			schedule.StatusNo:    "#c94f6d", // red
			schedule.StatusMaybe: "#f4a261", // orange
		},
	}
}

func lightTheme() Theme {
	// Dayfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: ThemeLight,

		Background: "#f6f2ee", // bg1
		Surface:    "#e4dcd4", // bg2
		SurfaceAlt: "#dbd1dd", // bg3

		SelectionBg:   "#2848a9", // blue
		SelectionText: "#f6f2ee",

		Text:    "#3d2b5a", // fg1
		Muted:   "#643f61", // fg2
		Faint:   "#837a72", // comment
		Accent:  "#2848a9", // blue
		Warning: "#ac5402", // orange
		Danger:  "#a5222f", // red

		StatusColors: map[schedule.Status]string{
			schedule.StatusYes:   "#396847", // green
			schedule.StatusNo:    "#a5222f", // red
			schedule.StatusMaybe: "#955f61", // orange-brown
		},
	}
}
