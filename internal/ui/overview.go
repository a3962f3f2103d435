package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/svitlo/internal/i18n"
	"github.com/five82/svitlo/internal/schedule"
	"github.com/five82/svitlo/internal/state"
)

// renderOverviewSection renders the all-groups table: one row per group,
// one column per hour.
func (f frame) renderOverviewSection() string {
	var b strings.Builder
	b.WriteString(f.sectionTitle(state.SectionOverview, f.tr.T(i18n.KeySectionOverview)))
	b.WriteString("\n")
	b.WriteString(f.renderTabs(state.SectionOverview))
	b.WriteString("\n\n")

	if !f.snap.HasData() {
		b.WriteString(f.placeholder())
		return b.String()
	}

	doc := f.snap.Document
	sel := f.view.Selector(state.SectionOverview)
	current := schedule.CurrentSlot(f.now)

	b.WriteString(f.overviewHeader(doc, current))
	for _, group := range f.groups {
		b.WriteString("\n")
		b.WriteString(f.overviewRow(group, doc.SlotVector(group, sel, f.now), current))
	}
	b.WriteString("\n\n")
	b.WriteString(f.legend())
	return b.String()
}

func (f frame) overviewHeader(doc *schedule.Document, current int) string {
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(f.styles.MutedText.Bold(true).Render(padRight(truncate(f.tr.T(i18n.KeySectionGroup), overviewNameWidth), overviewNameWidth)))
	highlight := lipgloss.NewStyle().
		Background(lipgloss.Color(f.theme.SelectionBg)).
		Foreground(lipgloss.Color(f.theme.SelectionText)).
		Bold(true)
	for slot := 1; slot <= schedule.SlotsPerDay; slot++ {
		b.WriteString(" ")
		label := padRight(hourLabel(doc.TimeZoneLabel(slot)), overviewCellWidth)
		if slot == current {
			b.WriteString(highlight.Render(label))
		} else {
			b.WriteString(f.styles.FaintText.Render(label))
		}
	}
	return b.String()
}

func (f frame) overviewRow(group string, vec schedule.SlotVector, current int) string {
	var b strings.Builder
	name := padRight(truncate(i18n.ShortGroupName(group), overviewNameWidth-1), overviewNameWidth)
	if group == f.featured {
		b.WriteString(f.styles.AccentText.Render("*"))
		b.WriteString(f.styles.AccentText.Bold(true).Render(name))
	} else {
		b.WriteString(" ")
		b.WriteString(f.styles.Text.Render(name))
	}

	for slot := 1; slot <= schedule.SlotsPerDay; slot++ {
		sep := " "
		if slot == current {
			sep = f.styles.AccentText.Render("▕")
		} else if slot == current+1 {
			sep = f.styles.AccentText.Render("▏")
		}
		b.WriteString(sep)
		b.WriteString(f.bar(schedule.StatusAt(vec, slot), overviewCellWidth))
	}
	if current == schedule.SlotsPerDay {
		b.WriteString(f.styles.AccentText.Render("▏"))
	}
	return b.String()
}
