package schedule

import (
	"fmt"
	"strconv"
	"time"
)

// SlotsPerDay is the number of hour slots in a schedule day.
const SlotsPerDay = 24

const secondsPerDay = 24 * 60 * 60

// DayKeys are the live-schedule keys for today and tomorrow.
type DayKeys struct {
	Today    string
	Tomorrow string
}

// KeysFor derives the day keys from the feed's reference value.
func KeysFor(today int64) DayKeys {
	return DayKeys{
		Today:    strconv.FormatInt(today, 10),
		Tomorrow: strconv.FormatInt(today+secondsPerDay, 10),
	}
}

// Keys returns the day keys of the document.
func (d *Document) Keys() DayKeys {
	if d == nil {
		return DayKeys{}
	}
	return KeysFor(d.Fact.Today)
}

// TomorrowVisible reports whether the live schedule has a tomorrow entry that
// is not "yes" for every group and slot. An all-clear day usually means the
// feed has not published real data yet.
func (d *Document) TomorrowVisible(groups []string) bool {
	if d == nil {
		return false
	}
	table, ok := d.Fact.Data[d.Keys().Tomorrow]
	if !ok || table == nil {
		return false
	}
	for _, group := range groups {
		vec := table[group]
		for slot := 1; slot <= SlotsPerDay; slot++ {
			if vec[SlotKey(slot)] != StatusYes {
				return true
			}
		}
	}
	return false
}

// SlotVector returns the slot statuses for group under sel, or nil when the
// document has no entry for it. now anchors "today" for the predicted schedule.
func (d *Document) SlotVector(group string, sel Selector, now time.Time) SlotVector {
	if d == nil {
		return nil
	}
	if sel.Kind == KindLive {
		keys := d.Keys()
		key := keys.Today
		if sel.Day == DayTomorrow {
			key = keys.Tomorrow
		}
		table, ok := d.Fact.Data[key]
		if !ok {
			return nil
		}
		return table[group]
	}

	target := now
	if sel.Day == DayTomorrow {
		target = now.AddDate(0, 0, 1)
	}
	byDay, ok := d.Preset.Data[group]
	if !ok {
		return nil
	}
	return byDay[DayOfWeekKey(target)]
}

// StatusFor resolves one slot for group under sel, applying StatusAt.
func (d *Document) StatusFor(group string, sel Selector, slot int, now time.Time) Status {
	return StatusAt(d.SlotVector(group, sel, now), slot)
}

// StatusAt is the single place where missing data becomes "yes": an absent
// vector, an absent slot or a value outside the status set all mean power is on.
func StatusAt(vec SlotVector, slot int) Status {
	if vec == nil {
		return StatusYes
	}
	status, ok := vec[SlotKey(slot)]
	if !ok || !status.Valid() {
		return StatusYes
	}
	return status
}

// CurrentStatuses returns today's live status of each group for the slot
// containing now.
func (d *Document) CurrentStatuses(groups []string, now time.Time) map[string]Status {
	out := make(map[string]Status, len(groups))
	slot := CurrentSlot(now)
	sel := Selector{Kind: KindLive, Day: DayToday}
	for _, group := range groups {
		out[group] = d.StatusFor(group, sel, slot, now)
	}
	return out
}

// DayOfWeekKey maps a date to the predicted-schedule key: Monday is "1" and
// Sunday is "7".
func DayOfWeekKey(t time.Time) string {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return strconv.Itoa(wd)
}

// CurrentSlot returns the slot (1..24) containing t.
func CurrentSlot(t time.Time) int {
	return t.Hour() + 1
}

// SlotKey formats a slot number as a feed key.
func SlotKey(slot int) string {
	return strconv.Itoa(slot)
}

// TimeZoneLabel returns the display label of a slot, preferring the feed's
// time-zone table and falling back to "HH-HH" with hour 24 shown as 00.
func (d *Document) TimeZoneLabel(slot int) string {
	if d != nil {
		if labels := d.Preset.TimeZone[SlotKey(slot)]; len(labels) > 0 && labels[0] != "" {
			return labels[0]
		}
	}
	start := slot - 1
	end := slot
	if end == 24 {
		end = 0
	}
	return fmt.Sprintf("%02d-%02d", start, end)
}

// GroupName returns the feed's display name for a group, or the code itself.
func (d *Document) GroupName(group string) string {
	if d != nil {
		if name := d.Preset.Names[group]; name != "" {
			return name
		}
	}
	return group
}
