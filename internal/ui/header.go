package ui

import (
	"strings"

	"github.com/five82/svitlo/internal/i18n"
)

// renderHeader renders the status bar: title, last update, refresh countdown,
// language indicator and the feed's own timestamp.
func (f frame) renderHeader(countdown string, refreshing bool) string {
	styles := f.styles
	bg := NewBgStyle(f.theme.Surface)

	parts := []string{
		bg.Render(f.tr.T(i18n.KeyHeaderTitle), styles.Title) +
			bg.Spaces(1) + bg.Render(f.tr.T(i18n.KeyHeaderRegion), styles.MutedText),
		bg.Render(f.tr.T(i18n.KeyHeaderUpdated), styles.FaintText) +
			bg.Spaces(1) + bg.Render(f.tr.Ago(f.snap.LastFetch, f.now), styles.Text),
	}

	refreshStyle := styles.Text
	if f.snap.FetchFailed() {
		refreshStyle = styles.WarningText.Bold(true)
	}
	if refreshing {
		countdown = "…"
	}
	if countdown != "" {
		parts = append(parts, bg.Render(f.tr.T(i18n.KeyHeaderRefresh), styles.FaintText)+
			bg.Spaces(1)+bg.Render(countdown, refreshStyle))
	}

	parts = append(parts, f.langIndicator(bg))

	if doc := f.snap.Document; doc != nil && doc.Fact.Update != "" {
		parts = append(parts, bg.Render(f.tr.T(i18n.KeyHeaderFeedStamp), styles.FaintText)+
			bg.Spaces(1)+bg.Render(doc.Fact.Update, styles.MutedText))
	}

	return styles.Header.
		Width(f.width).
		MaxHeight(headerLines).
		Render(bg.Join(parts, "   "))
}

// langIndicator renders "UK EN" with the active language highlighted.
func (f frame) langIndicator(bg BgStyle) string {
	langs := []i18n.Lang{i18n.LangUK, i18n.LangEN}
	out := make([]string, 0, len(langs))
	for _, lang := range langs {
		label := strings.ToUpper(string(lang))
		if lang == f.tr.Lang() {
			out = append(out, bg.Render(label, f.styles.AccentText.Bold(true)))
		} else {
			out = append(out, bg.Render(label, f.styles.FaintText))
		}
	}
	return strings.Join(out, bg.Spaces(1))
}

// renderBanner renders the persistent fetch-failure banner.
func (f frame) renderBanner() string {
	return f.styles.Banner.
		Width(f.width).
		MaxHeight(bannerLines).
		Render(truncate(f.tr.T(i18n.KeyErrorFetchFailed), f.width-2))
}

// renderSource renders the data source line at the end of the body.
func (f frame) renderSource(feedURL string) string {
	if feedURL == "" {
		return ""
	}
	return " " + f.styles.FaintText.Render(f.tr.T(i18n.KeyFooterSource)) + " " +
		f.styles.MutedText.Render(feedURL)
}
