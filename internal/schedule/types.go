package schedule

import (
	"fmt"
	"strings"
)

// Status is the outage state of a group during one hour slot.
type Status string

const (
	StatusYes         Status = "yes"
	StatusNo          Status = "no"
	StatusMaybe       Status = "maybe"
	StatusFirst       Status = "first"
	StatusSecond      Status = "second"
	StatusMaybeFirst  Status = "mfirst"
	StatusMaybeSecond Status = "msecond"
)

var statuses = []Status{
	StatusYes,
	StatusNo,
	StatusMaybe,
	StatusFirst,
	StatusSecond,
	StatusMaybeFirst,
	StatusMaybeSecond,
}

// Statuses returns every known status in display order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// Valid reports whether s belongs to the closed status set.
func (s Status) Valid() bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Split reports whether the hour is divided into two differently coloured halves.
func (s Status) Split() bool {
	switch s {
	case StatusFirst, StatusSecond, StatusMaybeFirst, StatusMaybeSecond:
		return true
	}
	return false
}

// Halves returns the state of the first and second half of the hour.
// first is off-then-on, second is on-then-off; the m-variants replace the
// off half with maybe.
func (s Status) Halves() (Status, Status) {
	switch s {
	case StatusFirst:
		return StatusNo, StatusYes
	case StatusSecond:
		return StatusYes, StatusNo
	case StatusMaybeFirst:
		return StatusMaybe, StatusYes
	case StatusMaybeSecond:
		return StatusYes, StatusMaybe
	case StatusNo, StatusMaybe:
		return s, s
	default:
		return StatusYes, StatusYes
	}
}

// SlotVector maps hour slots ("1".."24") to statuses.
type SlotVector map[string]Status

// DayTable maps group codes to their slot vectors for one day.
type DayTable map[string]SlotVector

// Document mirrors the JSON feed: a live schedule and a weekly template.
type Document struct {
	Fact   Fact   `json:"fact"`
	Preset Preset `json:"preset"`
}

// Fact holds the live schedule keyed by day reference.
type Fact struct {
	Today  int64               `json:"today"`
	Update string              `json:"update"`
	Data   map[string]DayTable `json:"data"`
}

// Preset holds the predicted schedule keyed by group and day of week.
type Preset struct {
	Data     map[string]map[string]SlotVector `json:"data"`
	Names    map[string]string                `json:"sch_names"`
	TimeZone map[string][]string              `json:"time_zone"`
}

// DataKind selects the live or predicted schedule.
type DataKind int

const (
	KindLive DataKind = iota
	KindPredicted
)

func (k DataKind) String() string {
	if k == KindPredicted {
		return "predicted"
	}
	return "live"
}

// ParseDataKind accepts the CLI spellings of a data kind.
func ParseDataKind(value string) (DataKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "live", "fact", "actual":
		return KindLive, nil
	case "predicted", "preset", "forecast":
		return KindPredicted, nil
	}
	return KindLive, fmt.Errorf("unknown data kind %q", value)
}

// Day selects today or tomorrow.
type Day int

const (
	DayToday Day = iota
	DayTomorrow
)

func (d Day) String() string {
	if d == DayTomorrow {
		return "tomorrow"
	}
	return "today"
}

// ParseDay accepts "today" or "tomorrow".
func ParseDay(value string) (Day, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "today":
		return DayToday, nil
	case "tomorrow":
		return DayTomorrow, nil
	}
	return DayToday, fmt.Errorf("unknown day %q", value)
}

// Selector picks which schedule a section displays.
type Selector struct {
	Kind DataKind
	Day  Day
}
