package ui

import (
	"strings"

	"github.com/five82/svitlo/internal/i18n"
	"github.com/five82/svitlo/internal/schedule"
	"github.com/five82/svitlo/internal/state"
)

// renderTabs renders the data-kind and day tabs of a section. The tomorrow
// tab is hidden while tomorrow is not visible.
func (f frame) renderTabs(section state.Section) string {
	sel := f.view.Selector(section)

	kinds := []string{
		f.tab(f.tr.T(i18n.KeyTabActual), sel.Kind == schedule.KindLive),
		f.tab(f.tr.T(i18n.KeyTabPredicted), sel.Kind == schedule.KindPredicted),
	}
	days := []string{
		f.tab(f.tr.T(i18n.KeyTabToday)+" "+i18n.FormatDate(f.now), sel.Day == schedule.DayToday),
	}
	if f.snap.TomorrowVisible {
		tomorrow := f.now.AddDate(0, 0, 1)
		days = append(days, f.tab(f.tr.T(i18n.KeyTabTomorrow)+" "+i18n.FormatDate(tomorrow), sel.Day == schedule.DayTomorrow))
	}

	return " " + strings.Join(kinds, " ") + "   " + strings.Join(days, " ")
}

func (f frame) tab(label string, active bool) string {
	if active {
		return f.styles.Selected.Render(label)
	}
	return f.styles.Tab.Render(label)
}
