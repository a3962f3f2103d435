package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const today = int64(1760648400)

func allYes() SlotVector {
	vec := SlotVector{}
	for slot := 1; slot <= SlotsPerDay; slot++ {
		vec[SlotKey(slot)] = StatusYes
	}
	return vec
}

func testDocument() *Document {
	todayKey := KeysFor(today).Today
	return &Document{
		Fact: Fact{
			Today: today,
			Data: map[string]DayTable{
				todayKey: {
					"GPV1.1": SlotVector{"1": StatusNo, "2": StatusFirst, "3": StatusMaybeSecond},
					"GPV1.2": allYes(),
				},
			},
		},
		Preset: Preset{
			Data: map[string]map[string]SlotVector{
				"GPV1.1": {
					"1": SlotVector{"5": StatusNo},
					"7": SlotVector{"5": StatusMaybe},
				},
			},
			Names:    map[string]string{"GPV1.1": "Черга 1.1"},
			TimeZone: map[string][]string{"1": {"00-01", "00:00", "01:00"}},
		},
	}
}

func TestKeysFor(t *testing.T) {
	keys := KeysFor(today)
	assert.Equal(t, "1760648400", keys.Today)
	assert.Equal(t, "1760734800", keys.Tomorrow)
}

func TestDayOfWeekKey(t *testing.T) {
	cases := []struct {
		name string
		date time.Time
		want string
	}{
		{"sunday", time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC), "7"},
		{"monday", time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC), "1"},
		{"saturday", time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC), "6"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DayOfWeekKey(tc.date))
		})
	}
}

func TestSlotVector_Live(t *testing.T) {
	doc := testDocument()
	now := time.Date(2026, time.October, 17, 10, 30, 0, 0, time.UTC)

	vec := doc.SlotVector("GPV1.1", Selector{Kind: KindLive, Day: DayToday}, now)
	require.NotNil(t, vec)
	assert.Equal(t, StatusNo, vec["1"])

	assert.Nil(t, doc.SlotVector("GPV1.1", Selector{Kind: KindLive, Day: DayTomorrow}, now))
	assert.Nil(t, doc.SlotVector("GPV9.9", Selector{Kind: KindLive, Day: DayToday}, now))
}

func TestSlotVector_PredictedUsesDayOfWeek(t *testing.T) {
	doc := testDocument()
	saturday := time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)
	sunday := saturday.AddDate(0, 0, 1)

	// Saturday has no template entry; tomorrow (Sunday) does.
	assert.Nil(t, doc.SlotVector("GPV1.1", Selector{Kind: KindPredicted, Day: DayToday}, saturday))
	vec := doc.SlotVector("GPV1.1", Selector{Kind: KindPredicted, Day: DayTomorrow}, saturday)
	require.NotNil(t, vec)
	assert.Equal(t, StatusMaybe, vec["5"])

	vec = doc.SlotVector("GPV1.1", Selector{Kind: KindPredicted, Day: DayToday}, sunday)
	require.NotNil(t, vec)
	assert.Equal(t, StatusMaybe, vec["5"])
}

func TestSlotVector_AbsentPresetGroupDefaultsToYes(t *testing.T) {
	doc := testDocument()
	now := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	sel := Selector{Kind: KindPredicted, Day: DayToday}

	assert.Nil(t, doc.SlotVector("GPV6.2", sel, now))
	for slot := 1; slot <= SlotsPerDay; slot++ {
		assert.Equal(t, StatusYes, doc.StatusFor("GPV6.2", sel, slot, now))
	}
}

func TestSlotVector_Idempotent(t *testing.T) {
	doc := testDocument()
	now := time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)
	sel := Selector{Kind: KindLive, Day: DayToday}
	assert.Equal(t, doc.SlotVector("GPV1.1", sel, now), doc.SlotVector("GPV1.1", sel, now))
}

func TestSlotVector_NilDocument(t *testing.T) {
	var doc *Document
	now := time.Now()
	assert.Nil(t, doc.SlotVector("GPV1.1", Selector{}, now))
	assert.Equal(t, StatusYes, doc.StatusFor("GPV1.1", Selector{}, 3, now))
	assert.False(t, doc.TomorrowVisible([]string{"GPV1.1"}))
}

func TestStatusAt_AlwaysInEnumeration(t *testing.T) {
	vec := SlotVector{"1": StatusNo, "2": Status("bogus"), "3": ""}
	assert.Equal(t, StatusNo, StatusAt(vec, 1))
	assert.Equal(t, StatusYes, StatusAt(vec, 2))
	assert.Equal(t, StatusYes, StatusAt(vec, 3))
	assert.Equal(t, StatusYes, StatusAt(vec, 4))
	assert.Equal(t, StatusYes, StatusAt(nil, 1))

	doc := testDocument()
	now := time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)
	for _, group := range []string{"GPV1.1", "GPV1.2", "GPV2.1"} {
		for _, sel := range []Selector{{KindLive, DayToday}, {KindLive, DayTomorrow}, {KindPredicted, DayToday}, {KindPredicted, DayTomorrow}} {
			for slot := 1; slot <= SlotsPerDay; slot++ {
				assert.True(t, doc.StatusFor(group, sel, slot, now).Valid())
			}
		}
	}
}

func TestTomorrowVisible(t *testing.T) {
	groups := []string{"GPV1.1", "GPV1.2"}
	tomorrowKey := KeysFor(today).Tomorrow

	doc := testDocument()
	assert.False(t, doc.TomorrowVisible(groups), "absent tomorrow entry")

	doc.Fact.Data[tomorrowKey] = DayTable{"GPV1.1": allYes(), "GPV1.2": allYes()}
	assert.False(t, doc.TomorrowVisible(groups), "all-yes tomorrow")

	outage := allYes()
	outage["17"] = StatusSecond
	doc.Fact.Data[tomorrowKey] = DayTable{"GPV1.1": allYes(), "GPV1.2": outage}
	assert.True(t, doc.TomorrowVisible(groups), "one non-yes slot")

	doc.Fact.Data[tomorrowKey] = DayTable{"GPV1.1": allYes()}
	assert.True(t, doc.TomorrowVisible(groups), "missing group is not all-yes")

	assert.False(t, doc.TomorrowVisible(nil), "no configured groups")
}

func TestCurrentSlot(t *testing.T) {
	assert.Equal(t, 1, CurrentSlot(time.Date(2026, 1, 1, 0, 15, 0, 0, time.UTC)))
	assert.Equal(t, 24, CurrentSlot(time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)))
}

func TestTimeZoneLabel(t *testing.T) {
	doc := testDocument()
	assert.Equal(t, "00-01", doc.TimeZoneLabel(1))
	assert.Equal(t, "23-00", doc.TimeZoneLabel(24))
	assert.Equal(t, "09-10", doc.TimeZoneLabel(10))

	var empty *Document
	assert.Equal(t, "23-00", empty.TimeZoneLabel(24))
}

func TestCurrentStatuses(t *testing.T) {
	doc := testDocument()
	now := time.Date(2026, time.October, 17, 1, 10, 0, 0, time.UTC)
	got := doc.CurrentStatuses([]string{"GPV1.1", "GPV1.2", "GPV3.1"}, now)
	assert.Equal(t, map[string]Status{"GPV1.1": StatusFirst, "GPV1.2": StatusYes, "GPV3.1": StatusYes}, got)
}

func TestGroupName(t *testing.T) {
	doc := testDocument()
	assert.Equal(t, "Черга 1.1", doc.GroupName("GPV1.1"))
	assert.Equal(t, "GPV2.1", doc.GroupName("GPV2.1"))
}

func TestDocument_DecodesFeedShape(t *testing.T) {
	raw := `{
		"fact": {"today": 1760648400, "update": "17.10.2025 08:43",
			"data": {"1760648400": {"GPV3.2": {"1": "yes", "2": "mfirst"}}}},
		"preset": {"data": {"GPV3.2": {"6": {"1": "no"}}},
			"sch_names": {"GPV3.2": "Черга 3.2"},
			"time_zone": {"1": ["00-01", "00:00", "01:00"]}}
	}`
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, today, doc.Fact.Today)
	assert.Equal(t, StatusMaybeFirst, doc.Fact.Data["1760648400"]["GPV3.2"]["2"])
	assert.Equal(t, StatusNo, doc.Preset.Data["GPV3.2"]["6"]["1"])
	assert.Equal(t, "00-01", doc.TimeZoneLabel(1))
}
