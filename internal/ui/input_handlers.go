package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/svitlo/internal/i18n"
	"github.com/five82/svitlo/internal/metrics"
	"github.com/five82/svitlo/internal/schedule"
	"github.com/five82/svitlo/internal/state"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Suspend):
		m.visibility.Hide(m.now())
		return m, tea.Suspend

	case key.Matches(msg, m.keys.Refresh):
		return m, m.startRefresh(metrics.TriggerManual, false)

	case key.Matches(msg, m.keys.CycleLang):
		next := m.catalog.Next(i18n.Lang(m.view.Lang))
		if m.view.SetLang(string(next)) {
			m.savePrefs()
			m.syncViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		if m.view.SetTheme(NextTheme(m.view.Theme)) {
			m.theme = GetTheme(m.view.Theme)
			m.savePrefs()
			m.syncViewport()
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		return m.setFocus(otherSection(m.focus)), nil

	case key.Matches(msg, m.keys.FocusGroup):
		return m.setFocus(state.SectionGroup), nil

	case key.Matches(msg, m.keys.FocusOverview):
		return m.setFocus(state.SectionOverview), nil

	case key.Matches(msg, m.keys.Actual):
		return m.selectKind(schedule.KindLive), nil

	case key.Matches(msg, m.keys.Predicted):
		return m.selectKind(schedule.KindPredicted), nil

	case key.Matches(msg, m.keys.Today):
		return m.selectDay(schedule.DayToday), nil

	case key.Matches(msg, m.keys.Tomorrow):
		return m.selectDay(schedule.DayTomorrow), nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func otherSection(s state.Section) state.Section {
	if s == state.SectionGroup {
		return state.SectionOverview
	}
	return state.SectionGroup
}

func (m Model) setFocus(section state.Section) Model {
	if m.focus == section {
		return m
	}
	m.focus = section
	m.syncViewport()
	return m
}

func (m Model) selectKind(kind schedule.DataKind) Model {
	if m.view.SetDataKind(m.focus, kind) {
		m.followNow = m.focus == state.SectionGroup
		m.syncViewport()
	}
	return m
}

// selectDay switches the focused section's day. Tomorrow is ignored while it
// is not visible.
func (m Model) selectDay(day schedule.Day) Model {
	if m.view.SetDay(m.focus, day, m.store.Snapshot().TomorrowVisible) {
		m.followNow = m.focus == state.SectionGroup
		m.syncViewport()
	}
	return m
}
