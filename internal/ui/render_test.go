package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/five82/svitlo/internal/i18n"
	"github.com/five82/svitlo/internal/schedule"
	"github.com/five82/svitlo/internal/state"
)

func staticSnapshot(t *testing.T, now time.Time, tomorrow schedule.DayTable) state.Snapshot {
	t.Helper()
	store := state.NewStore(testGroups)
	store.Ingest(testDocument(now, tomorrow), now.Add(-3*time.Minute))
	return store.Snapshot()
}

func TestRenderStaticTimelineAndOverview(t *testing.T) {
	now := time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)
	out := RenderStatic(StaticOptions{
		Snapshot: staticSnapshot(t, now, nil),
		Groups:   testGroups,
		Featured: "GPV3.2",
		Lang:     i18n.LangUK,
		FeedURL:  "https://example.com/kyiv-region.json",
		Now:      now,
		Width:    120,
	})

	for _, want := range []string{
		"Черга 3.2",           // feed name for the featured group
		"Сьогодні 17.10.2026", // day tab with date suffix
		"00-01",
		"23-00",
		"Немає", // slot 1 is "no"
		"3 хв. тому",
		"https://example.com/kyiv-region.json",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "Завтра") {
		t.Errorf("tomorrow tab rendered while tomorrow is hidden")
	}
}

func TestRenderStaticTomorrowFallsBackWhenHidden(t *testing.T) {
	now := time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)
	out := RenderStatic(StaticOptions{
		Snapshot: staticSnapshot(t, now, nil),
		Groups:   testGroups,
		Featured: "GPV3.2",
		Lang:     i18n.LangEN,
		Selector: schedule.Selector{Kind: schedule.KindLive, Day: schedule.DayTomorrow},
		Now:      now,
	})
	if !strings.Contains(out, "Power off") {
		t.Fatalf("hidden tomorrow did not fall back to today's schedule")
	}
	if !strings.Contains(out, "Group 3.2") {
		t.Fatalf("english output missing group title")
	}
}

func TestRenderStaticShowsTomorrowTab(t *testing.T) {
	now := time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local)
	tomorrow := schedule.DayTable{"GPV3.2": schedule.SlotVector{"9": schedule.StatusMaybe}}
	out := RenderStatic(StaticOptions{
		Snapshot: staticSnapshot(t, now, tomorrow),
		Groups:   testGroups,
		Featured: "GPV3.2",
		Lang:     i18n.LangEN,
		Selector: schedule.Selector{Day: schedule.DayTomorrow},
		Now:      now,
		Width:    120,
	})
	if !strings.Contains(out, "Tomorrow 18.10.2026") {
		t.Fatalf("output missing tomorrow tab")
	}
	if !strings.Contains(out, "Maybe off") {
		t.Fatalf("tomorrow timeline missing maybe slot")
	}
}

func TestRenderStaticWithoutData(t *testing.T) {
	out := RenderStatic(StaticOptions{
		Snapshot: state.Snapshot{},
		Groups:   testGroups,
		Featured: "GPV3.2",
		Lang:     i18n.LangEN,
	})
	if !strings.Contains(out, "Loading") {
		t.Fatalf("output missing loading placeholder:\n%s", out)
	}
	if !strings.Contains(out, "never") {
		t.Fatalf("header should report the last update as never")
	}
}

func TestHourLabel(t *testing.T) {
	cases := map[string]string{
		"07-08": "07",
		"23-00": "23",
		"9":     "9",
	}
	for in, want := range cases {
		if got := hourLabel(in); got != want {
			t.Fatalf("hourLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  abc  ", 10); got != "abc" {
		t.Fatalf("truncate trims = %q, want abc", got)
	}
	got := truncate("Overview of everything", 8)
	if len([]rune(got)) > 8 || !strings.HasSuffix(got, "…") {
		t.Fatalf("truncate = %q, want at most 8 runes ending in ellipsis", got)
	}
}
