package metrics

import (
	"errors"
	"time"

	"github.com/five82/svitlo/internal/schedule"
)

// Trigger names what started a refresh.
const (
	TriggerStartup    = "startup"
	TriggerTimer      = "timer"
	TriggerVisibility = "visibility"
	TriggerManual     = "manual"
)

// RefreshEvent describes one completed refresh cycle.
type RefreshEvent struct {
	CycleID         string
	Trigger         string
	Time            time.Time
	Duration        time.Duration
	Err             error
	TomorrowVisible bool
	Failures        int                        // consecutive failures after this cycle
	Current         map[string]schedule.Status // live status per group for the current hour
}

// OK reports whether the fetch succeeded.
func (e RefreshEvent) OK() bool { return e.Err == nil }

// Result returns "ok" or "error" for labelling.
func (e RefreshEvent) Result() string {
	if e.OK() {
		return "ok"
	}
	return "error"
}

// Sink records refresh outcomes for observability.
type Sink interface {
	RecordRefresh(ev RefreshEvent) error
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) RecordRefresh(RefreshEvent) error { return nil }

// MultiSink fans events out to several sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRefresh forwards the event to every sink, even after one fails, and
// joins the errors.
func (m *MultiSink) RecordRefresh(ev RefreshEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordRefresh(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
