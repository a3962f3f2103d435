package ui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/svitlo/internal/feed"
	"github.com/five82/svitlo/internal/i18n"
	"github.com/five82/svitlo/internal/prefs"
	"github.com/five82/svitlo/internal/schedule"
	"github.com/five82/svitlo/internal/state"
)

const pollEvery = 300 * time.Second

var testGroups = []string{"GPV1.1", "GPV3.2"}

// fakeFetcher returns queued results in order and repeats the last one.
type fakeFetcher struct {
	results []fetchResult
	calls   int
}

type fetchResult struct {
	doc *schedule.Document
	err error
}

func (f *fakeFetcher) FetchSchedule(context.Context) (*schedule.Document, error) {
	i := f.calls
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	f.calls++
	return f.results[i].doc, f.results[i].err
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func testDocument(at time.Time, tomorrow schedule.DayTable) *schedule.Document {
	midnight := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	keys := schedule.KeysFor(midnight.Unix())
	data := map[string]schedule.DayTable{
		keys.Today: {
			"GPV3.2": schedule.SlotVector{"1": schedule.StatusNo, "15": schedule.StatusFirst},
		},
	}
	if tomorrow != nil {
		data[keys.Tomorrow] = tomorrow
	}
	return &schedule.Document{
		Fact: schedule.Fact{Today: midnight.Unix(), Update: "17.10.2026 09:12", Data: data},
		Preset: schedule.Preset{
			Names: map[string]string{"GPV3.2": "Черга 3.2"},
		},
	}
}

func newTestModel(t *testing.T, fetcher feed.Fetcher, c *clock) Model {
	t.Helper()
	m := New(Options{
		Fetcher:   fetcher,
		Store:     state.NewStore(testGroups),
		Prefs:     prefs.Defaults(),
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		Featured:  "GPV3.2",
		FeedURL:   "https://example.com/kyiv-region.json",
		PollEvery: pollEvery,
		Now:       c.now,
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	return updated.(Model)
}

// runFetch executes the in-flight fetch and applies its result.
func runFetch(t *testing.T, m Model) Model {
	t.Helper()
	if !m.refreshing {
		t.Fatalf("runFetch: no refresh in flight")
	}
	msg := fetchCmd(m.ctx, m.fetcher, m.cycle, m.now)()
	updated, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatalf("refresh result produced no report command")
	}
	return updated.(Model)
}

func press(t *testing.T, m Model, keys string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return updated.(Model)
}

func TestStartupFetchStartsCountdown(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)}
	fetcher := &fakeFetcher{results: []fetchResult{{doc: testDocument(c.t, nil)}}}
	m := newTestModel(t, fetcher, c)

	if m.countdown.Running() {
		t.Fatalf("countdown running before the first result")
	}
	m = runFetch(t, m)

	if fetcher.calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", fetcher.calls)
	}
	if !m.countdown.Running() || m.countdown.Remaining() != 300 {
		t.Fatalf("countdown = %s running=%v, want 5:00 running", m.countdown, m.countdown.Running())
	}
	if !m.store.Snapshot().HasData() {
		t.Fatalf("store has no document after startup fetch")
	}
}

func TestTicksDoNotCountDownWhileRefreshing(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)}
	fetcher := &fakeFetcher{results: []fetchResult{{doc: testDocument(c.t, nil)}}}
	m := newTestModel(t, fetcher, c)
	m = runFetch(t, m)

	updated, _ := m.Update(tickMsg(c.t))
	m = updated.(Model)
	if m.countdown.Remaining() != 299 {
		t.Fatalf("remaining = %d, want 299", m.countdown.Remaining())
	}

	m.startRefresh("manual", false)
	updated, _ = m.Update(tickMsg(c.t))
	m = updated.(Model)
	if m.countdown.Remaining() != 299 {
		t.Fatalf("remaining during refresh = %d, want 299", m.countdown.Remaining())
	}
}

func TestCountdownExpiryTriggersSingleFetch(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)}
	fetcher := &fakeFetcher{results: []fetchResult{{doc: testDocument(c.t, nil)}}}
	m := newTestModel(t, fetcher, c)
	m = runFetch(t, m)

	for i := 0; i < 300; i++ {
		updated, _ := m.Update(tickMsg(c.t))
		m = updated.(Model)
	}
	if !m.refreshing {
		t.Fatalf("countdown expiry did not start a refresh")
	}
	updated, _ := m.Update(tickMsg(c.t))
	m = updated.(Model)

	m = runFetch(t, m)
	if fetcher.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", fetcher.calls)
	}
	if m.countdown.Remaining() != 300 || !m.countdown.Running() {
		t.Fatalf("countdown = %s running=%v, want 5:00 running", m.countdown, m.countdown.Running())
	}
}

// A failed refresh keeps the last good document and shows the banner.
func TestFetchFailureKeepsDocumentAndShowsBanner(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)}
	doc := testDocument(c.t, nil)
	fetcher := &fakeFetcher{results: []fetchResult{
		{doc: doc},
		{err: &feed.StatusError{Code: 500}},
	}}
	m := newTestModel(t, fetcher, c)
	m = runFetch(t, m)

	m = press(t, m, "r")
	m = runFetch(t, m)

	snap := m.store.Snapshot()
	if snap.Document != doc {
		t.Fatalf("document replaced after failure")
	}
	if !snap.FetchFailed() {
		t.Fatalf("FetchFailed = false, want true")
	}
	banner := i18n.Default().For(i18n.LangUK).T(i18n.KeyErrorFetchFailed)
	if !strings.Contains(m.View(), banner) {
		t.Fatalf("view missing banner %q", banner)
	}
	if m.countdown.Remaining() != 300 {
		t.Fatalf("remaining = %d, want 300 after failure", m.countdown.Remaining())
	}
}

// Returning after more than one poll interval stops the countdown, runs
// exactly one refresh and restarts the countdown at the full interval.
func TestReturnAfterLongAbsenceRefreshesOnce(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)}
	fetcher := &fakeFetcher{results: []fetchResult{{doc: testDocument(c.t, nil)}}}
	m := newTestModel(t, fetcher, c)
	m = runFetch(t, m)

	updated, _ := m.Update(tea.BlurMsg{})
	m = updated.(Model)

	c.t = c.t.Add(pollEvery + time.Second)
	updated, cmd := m.Update(tea.FocusMsg{})
	m = updated.(Model)
	if cmd == nil || !m.refreshing {
		t.Fatalf("focus after long absence did not refresh")
	}
	if m.countdown.Running() {
		t.Fatalf("countdown still running while the visibility refresh is in flight")
	}

	m = runFetch(t, m)
	if fetcher.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", fetcher.calls)
	}
	if !m.countdown.Running() || m.countdown.Remaining() != 300 {
		t.Fatalf("countdown = %s running=%v, want 5:00 running", m.countdown, m.countdown.Running())
	}
}

func TestShortAbsenceDoesNotRefresh(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)}
	fetcher := &fakeFetcher{results: []fetchResult{{doc: testDocument(c.t, nil)}}}
	m := newTestModel(t, fetcher, c)
	m = runFetch(t, m)

	updated, _ := m.Update(tea.BlurMsg{})
	m = updated.(Model)
	c.t = c.t.Add(time.Minute)
	updated, cmd := m.Update(tea.ResumeMsg{})
	m = updated.(Model)

	if cmd != nil || m.refreshing {
		t.Fatalf("short absence triggered a refresh")
	}
	if !m.countdown.Running() {
		t.Fatalf("countdown stopped after short absence")
	}
}

func TestTomorrowKeyIgnoredWhileHidden(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)}
	fetcher := &fakeFetcher{results: []fetchResult{{doc: testDocument(c.t, nil)}}}
	m := newTestModel(t, fetcher, c)
	m = runFetch(t, m)

	m = press(t, m, "2")
	if got := m.view.Selector(state.SectionGroup).Day; got != schedule.DayToday {
		t.Fatalf("day = %v, want today while tomorrow is hidden", got)
	}
}

func TestSectionSelectionsAreIndependent(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)}
	tomorrow := schedule.DayTable{"GPV3.2": schedule.SlotVector{"9": schedule.StatusMaybe}}
	fetcher := &fakeFetcher{results: []fetchResult{{doc: testDocument(c.t, tomorrow)}}}
	m := newTestModel(t, fetcher, c)
	m = runFetch(t, m)

	m = press(t, m, "2")
	m = press(t, m, "o")
	m = press(t, m, "p")

	group := m.view.Selector(state.SectionGroup)
	overview := m.view.Selector(state.SectionOverview)
	if group.Day != schedule.DayTomorrow || group.Kind != schedule.KindLive {
		t.Fatalf("group selector = %+v, want live tomorrow", group)
	}
	if overview.Day != schedule.DayToday || overview.Kind != schedule.KindPredicted {
		t.Fatalf("overview selector = %+v, want predicted today", overview)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if updated.(Model).focus != state.SectionGroup {
		t.Fatalf("tab did not move focus back to the group section")
	}
}

func TestRefreshHidingTomorrowPinsToday(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)}
	tomorrow := schedule.DayTable{"GPV3.2": schedule.SlotVector{"9": schedule.StatusNo}}
	fetcher := &fakeFetcher{results: []fetchResult{
		{doc: testDocument(c.t, tomorrow)},
		{doc: testDocument(c.t, nil)},
	}}
	m := newTestModel(t, fetcher, c)
	m = runFetch(t, m)
	m = press(t, m, "2")
	if m.view.Selector(state.SectionGroup).Day != schedule.DayTomorrow {
		t.Fatalf("could not select visible tomorrow")
	}

	m = press(t, m, "r")
	m = runFetch(t, m)
	if m.view.Selector(state.SectionGroup).Day != schedule.DayToday {
		t.Fatalf("group section still on tomorrow after it was hidden")
	}
}

func TestLanguageAndThemePersist(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)}
	fetcher := &fakeFetcher{results: []fetchResult{{doc: testDocument(c.t, nil)}}}
	m := newTestModel(t, fetcher, c)
	m = runFetch(t, m)

	m = press(t, m, "L")
	m = press(t, m, "T")
	if m.view.Lang != string(i18n.LangEN) || m.theme.Name != ThemeLight {
		t.Fatalf("lang=%q theme=%q, want en/light", m.view.Lang, m.theme.Name)
	}

	p, _ := prefs.Load(m.prefsPath)
	if p.Lang != "en" || p.Theme != "light" {
		t.Fatalf("saved prefs = %+v, want en/light", p)
	}
	if !strings.Contains(m.View(), "Group 3.2") {
		t.Fatalf("english view missing group title")
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)}
	fetcher := &fakeFetcher{results: []fetchResult{{doc: testDocument(c.t, nil)}}}
	m := newTestModel(t, fetcher, c)

	m = press(t, m, "?")
	if !m.showHelp {
		t.Fatalf("help not shown")
	}
	title := i18n.Default().For(i18n.LangUK).T(i18n.KeyHelpTitle)
	if !strings.Contains(m.View(), title) {
		t.Fatalf("help view missing title %q", title)
	}
	m = press(t, m, "x")
	if m.showHelp {
		t.Fatalf("help still shown after a key press")
	}
}

func TestNilFetcherReportsError(t *testing.T) {
	c := &clock{t: time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)}
	m := newTestModel(t, nil, c)
	m = runFetch(t, m)

	snap := m.store.Snapshot()
	if !snap.FetchFailed() || snap.HasData() {
		t.Fatalf("snapshot = %+v, want failure without data", snap)
	}
	noData := i18n.Default().For(i18n.LangUK).T(i18n.KeyStateNoData)
	if !strings.Contains(m.View(), noData) {
		t.Fatalf("view missing %q", noData)
	}
}
