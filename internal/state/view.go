package state

import "github.com/five82/svitlo/internal/schedule"

// Section identifies one of the two independently controlled views.
type Section int

const (
	SectionGroup Section = iota
	SectionOverview
)

// Sections lists every section in display order.
var Sections = []Section{SectionGroup, SectionOverview}

func (s Section) String() string {
	if s == SectionOverview {
		return "overview"
	}
	return "group"
}

// ViewState holds the user's selections. Mutate it only through its setters.
type ViewState struct {
	selectors [2]schedule.Selector
	Lang      string
	Theme     string
}

// NewViewState starts both sections on today's live schedule.
func NewViewState(lang, theme string) ViewState {
	return ViewState{Lang: lang, Theme: theme}
}

// Selector returns the current selection of a section.
func (v ViewState) Selector(section Section) schedule.Selector {
	return v.selectors[section.index()]
}

// SetDataKind switches a section between live and predicted data. It reports
// whether the selection changed.
func (v *ViewState) SetDataKind(section Section, kind schedule.DataKind) bool {
	sel := &v.selectors[section.index()]
	if sel.Kind == kind {
		return false
	}
	sel.Kind = kind
	return true
}

// SetDay switches a section between today and tomorrow. Selecting tomorrow
// while it is not visible is ignored.
func (v *ViewState) SetDay(section Section, day schedule.Day, tomorrowVisible bool) bool {
	if day == schedule.DayTomorrow && !tomorrowVisible {
		return false
	}
	sel := &v.selectors[section.index()]
	if sel.Day == day {
		return false
	}
	sel.Day = day
	return true
}

// Reconcile moves every section showing tomorrow back to today when tomorrow
// is no longer visible. It returns the sections that changed.
func (v *ViewState) Reconcile(tomorrowVisible bool) []Section {
	if tomorrowVisible {
		return nil
	}
	var changed []Section
	for _, section := range Sections {
		sel := &v.selectors[section.index()]
		if sel.Day == schedule.DayTomorrow {
			sel.Day = schedule.DayToday
			changed = append(changed, section)
		}
	}
	return changed
}

// SetLang switches the interface language. It reports whether it changed.
func (v *ViewState) SetLang(lang string) bool {
	if v.Lang == lang {
		return false
	}
	v.Lang = lang
	return true
}

// SetTheme switches the colour theme. It reports whether it changed.
func (v *ViewState) SetTheme(theme string) bool {
	if v.Theme == theme {
		return false
	}
	v.Theme = theme
	return true
}

func (s Section) index() int {
	if s == SectionOverview {
		return 1
	}
	return 0
}
