package ui

import (
	"strings"
	"time"

	"github.com/five82/svitlo/internal/i18n"
	"github.com/five82/svitlo/internal/schedule"
	"github.com/five82/svitlo/internal/state"
)

// StaticOptions configures a one-shot render outside the interactive program.
type StaticOptions struct {
	Snapshot state.Snapshot
	Groups   []string
	Featured string
	Catalog  *i18n.Catalog
	Lang     i18n.Lang
	Theme    string
	Selector schedule.Selector
	FeedURL  string
	Now      time.Time
	Width    int
}

// RenderStatic renders the header, timeline and overview once with both
// sections on the same selection. Tomorrow falls back to today when it is not
// visible.
func RenderStatic(opts StaticOptions) string {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = i18n.Default()
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	width := opts.Width
	if width <= 0 {
		width = 80
	}

	view := state.NewViewState(string(opts.Lang), opts.Theme)
	for _, section := range state.Sections {
		view.SetDataKind(section, opts.Selector.Kind)
		view.SetDay(section, opts.Selector.Day, opts.Snapshot.TomorrowVisible)
	}

	theme := GetTheme(opts.Theme)
	f := frame{
		theme:    theme,
		styles:   theme.Styles(),
		tr:       catalog.For(catalog.Normalize(opts.Lang)),
		snap:     opts.Snapshot,
		view:     view,
		groups:   opts.Groups,
		featured: opts.Featured,
		now:      now,
		width:    width,
	}

	var b strings.Builder
	b.WriteString(f.renderHeader("", false))
	b.WriteString("\n")
	if f.snap.FetchFailed() {
		b.WriteString(f.renderBanner())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(f.renderBody())
	if source := f.renderSource(opts.FeedURL); source != "" {
		b.WriteString("\n\n")
		b.WriteString(source)
	}
	b.WriteString("\n")
	return b.String()
}
