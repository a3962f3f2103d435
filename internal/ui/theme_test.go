package ui

import (
	"testing"

	"github.com/five82/svitlo/internal/schedule"
)

func TestTextColorKey(t *testing.T) {
	cases := []struct {
		status schedule.Status
		want   schedule.Status
	}{
		{schedule.StatusYes, schedule.StatusYes},
		{schedule.StatusNo, schedule.StatusNo},
		{schedule.StatusMaybe, schedule.StatusMaybe},
		{schedule.StatusFirst, schedule.StatusNo},
		{schedule.StatusSecond, schedule.StatusYes},
		{schedule.StatusMaybeFirst, schedule.StatusMaybe},
		{schedule.StatusMaybeSecond, schedule.StatusMaybe},
	}
	for _, tc := range cases {
		if got := textColorKey(tc.status); got != tc.want {
			t.Fatalf("textColorKey(%s) = %s, want %s", tc.status, got, tc.want)
		}
	}
}

func TestStatusColorFallsBackToMuted(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		styles := th.Styles()
		for _, base := range []schedule.Status{schedule.StatusYes, schedule.StatusNo, schedule.StatusMaybe} {
			if got := styles.StatusColor(base); got != th.StatusColors[base] || got == "" {
				t.Fatalf("%s StatusColor(%s) = %q", name, base, got)
			}
		}
		if got := styles.StatusColor(schedule.StatusFirst); got != th.Muted {
			t.Fatalf("%s StatusColor(first) = %q, want muted %q", name, got, th.Muted)
		}
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 || names[0] != ThemeDark || names[1] != ThemeLight {
		t.Fatalf("ThemeNames() = %v, want [dark light]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme(ThemeDark); got != ThemeLight {
		t.Fatalf("NextTheme(dark) = %q, want light", got)
	}
	if got := NextTheme(ThemeLight); got != ThemeDark {
		t.Fatalf("NextTheme(light) = %q, want dark", got)
	}
	if got := NextTheme("unknown"); got != ThemeDark {
		t.Fatalf("NextTheme(unknown) = %q, want dark", got)
	}
}

func TestGetThemeUnknownIsDark(t *testing.T) {
	if got := GetTheme("solarized").Name; got != ThemeDark {
		t.Fatalf("GetTheme(unknown) = %q, want dark", got)
	}
}
