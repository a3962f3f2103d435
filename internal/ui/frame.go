package ui

import (
	"strings"
	"time"

	"github.com/five82/svitlo/internal/i18n"
	"github.com/five82/svitlo/internal/state"
)

// frame holds everything a single render reads. It is rebuilt for every
// render so the current hour is always derived from the clock.
type frame struct {
	theme     Theme
	styles    Styles
	tr        i18n.Translator
	snap      state.Snapshot
	view      state.ViewState
	groups    []string
	featured  string
	focus     state.Section
	markFocus bool
	now       time.Time
	width     int
}

// groupName resolves the localized display name of a group.
func (f frame) groupName(code string) string {
	feedName := ""
	if f.snap.Document != nil {
		feedName = f.snap.Document.Preset.Names[code]
	}
	return f.tr.GroupName(code, feedName)
}

// sectionTitle renders a section heading, marked when the section has focus.
func (f frame) sectionTitle(section state.Section, title string) string {
	if f.markFocus && f.focus == section {
		return f.styles.AccentText.Render("▌") + f.styles.Title.Render(title)
	}
	return " " + f.styles.Text.Bold(true).Render(title)
}

// placeholder renders the body text shown before any document is available.
func (f frame) placeholder() string {
	key := i18n.KeyStateLoading
	if f.snap.FetchFailed() {
		key = i18n.KeyStateNoData
	}
	return "  " + f.styles.MutedText.Render(f.tr.T(key))
}

// renderBody renders both sections stacked vertically.
func (f frame) renderBody() string {
	var b strings.Builder
	b.WriteString(f.renderGroupSection())
	b.WriteString("\n\n")
	b.WriteString(f.renderOverviewSection())
	return b.String()
}

// groupSectionLead is the number of lines above the first timeline row.
const groupSectionLead = 3
