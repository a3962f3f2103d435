package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/svitlo/internal/i18n"
)

// localize returns a copy of the key map with help text in the given language.
func (k keyMap) localize(tr i18n.Translator) keyMap {
	set := func(b *key.Binding, desc i18n.Key) {
		b.SetHelp(b.Help().Key, tr.T(desc))
	}
	set(&k.Tab, i18n.KeyHelpCycleFocus)
	set(&k.FocusGroup, i18n.KeyHelpFocusGroup)
	set(&k.FocusOverview, i18n.KeyHelpFocusOverview)
	set(&k.Actual, i18n.KeyHelpActual)
	set(&k.Predicted, i18n.KeyHelpPredicted)
	set(&k.Today, i18n.KeyHelpToday)
	set(&k.Tomorrow, i18n.KeyHelpTomorrow)
	set(&k.CycleLang, i18n.KeyHelpLanguage)
	set(&k.CycleTheme, i18n.KeyHelpTheme)
	set(&k.Refresh, i18n.KeyHelpRefresh)
	set(&k.Help, i18n.KeyHelpHelp)
	set(&k.Quit, i18n.KeyHelpQuit)
	k.Up.SetHelp("j/k", tr.T(i18n.KeyHelpScroll))
	return k
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	tr := m.translator()
	keys := m.keys.localize(tr)

	titles := []i18n.Key{i18n.KeyHelpNavigation, i18n.KeyHelpView, i18n.KeyHelpGeneral}
	groups := keys.FullHelp()

	var b strings.Builder
	b.WriteString(styles.Title.Render(tr.T(i18n.KeyHelpTitle)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(10)
	for i, group := range groups {
		b.WriteString(styles.AccentText.Bold(true).Render(tr.T(titles[i])))
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
