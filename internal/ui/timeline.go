package ui

import (
	"strings"

	"github.com/five82/svitlo/internal/i18n"
	"github.com/five82/svitlo/internal/schedule"
	"github.com/five82/svitlo/internal/state"
)

// renderGroupSection renders the featured group's 24-hour timeline.
func (f frame) renderGroupSection() string {
	var b strings.Builder
	b.WriteString(f.sectionTitle(state.SectionGroup, f.groupName(f.featured)))
	b.WriteString("\n")
	b.WriteString(f.renderTabs(state.SectionGroup))
	b.WriteString("\n\n")

	if !f.snap.HasData() {
		b.WriteString(f.placeholder())
		return b.String()
	}

	doc := f.snap.Document
	vec := doc.SlotVector(f.featured, f.view.Selector(state.SectionGroup), f.now)
	current := schedule.CurrentSlot(f.now)
	rows := make([]string, 0, schedule.SlotsPerDay)
	for slot := 1; slot <= schedule.SlotsPerDay; slot++ {
		rows = append(rows, f.timelineRow(doc.TimeZoneLabel(slot), schedule.StatusAt(vec, slot), slot == current))
	}
	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}

// timelineRow renders "marker label bar status" for one hour.
func (f frame) timelineRow(label string, status schedule.Status, current bool) string {
	marker := "  "
	labelStyle := f.styles.MutedText
	if current {
		marker = f.styles.AccentText.Render("▶ ")
		labelStyle = f.styles.Text.Bold(true)
	}

	text := f.tr.T(i18n.StatusKey(string(status)))
	textStyle := f.styles.StatusText(status)
	if current {
		textStyle = textStyle.Bold(true)
	}

	return marker +
		labelStyle.Render(padRight(label, 5)) + " " +
		f.bar(status, timelineBarWidth) + " " +
		textStyle.Render(text)
}

// bar renders a status as a block of width cells. Split statuses draw each
// half in its own colour.
func (f frame) bar(status schedule.Status, width int) string {
	if !status.Split() {
		return f.styles.StatusBlock(status).Render(strings.Repeat(" ", width))
	}
	first, second := status.Halves()
	left := width / 2
	return f.styles.StatusBlock(first).Render(strings.Repeat(" ", left)) +
		f.styles.StatusBlock(second).Render(strings.Repeat(" ", width-left))
}

// legend renders a swatch and label for each base state.
func (f frame) legend() string {
	parts := make([]string, 0, 3)
	for _, status := range []schedule.Status{schedule.StatusYes, schedule.StatusNo, schedule.StatusMaybe} {
		swatch := f.styles.StatusBlock(status).Render("  ")
		parts = append(parts, swatch+" "+f.styles.MutedText.Render(f.tr.T(i18n.StatusKey(string(status)))))
	}
	return " " + strings.Join(parts, "   ")
}
