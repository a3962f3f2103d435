package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/five82/svitlo/internal/schedule"
)

// PromSink exposes refresh outcomes and current group states as Prometheus
// metrics.
type PromSink struct {
	refreshes   *prometheus.CounterVec
	duration    prometheus.Histogram
	lastSuccess prometheus.Gauge
	tomorrow    prometheus.Gauge
	failures    prometheus.Gauge
	groupStatus *prometheus.GaugeVec
}

// NewPromSink registers metrics on the default Prometheus registerer.
// The HTTP endpoint is started separately with StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{}
	var err error
	if s.refreshes, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "svitlo_refresh_total",
		Help: "Schedule refresh attempts by result and trigger",
	}, []string{"result", "trigger"})); err != nil {
		return nil, err
	}
	if s.duration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "svitlo_refresh_duration_seconds",
		Help:    "Time spent fetching the schedule feed",
		Buckets: prometheus.DefBuckets,
	})); err != nil {
		return nil, err
	}
	if s.lastSuccess, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "svitlo_last_success_timestamp_seconds",
		Help: "Unix time of the last successful refresh",
	})); err != nil {
		return nil, err
	}
	if s.tomorrow, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "svitlo_tomorrow_visible",
		Help: "1 when the feed publishes a meaningful schedule for tomorrow",
	})); err != nil {
		return nil, err
	}
	if s.failures, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "svitlo_consecutive_failures",
		Help: "Refresh failures since the last success",
	})); err != nil {
		return nil, err
	}
	if s.groupStatus, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "svitlo_group_status",
		Help: "Current live status per group; the active status is 1, all others 0",
	}, []string{"group", "status"})); err != nil {
		return nil, err
	}
	return s, nil
}

// register adds c to reg, reusing an identical collector registered earlier.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordRefresh updates counters and gauges for one refresh cycle. Group
// states are only updated on success; a failed fetch leaves the last known
// values in place, matching what the UI shows.
func (s *PromSink) RecordRefresh(ev RefreshEvent) error {
	s.refreshes.WithLabelValues(ev.Result(), ev.Trigger).Inc()
	s.duration.Observe(ev.Duration.Seconds())
	s.failures.Set(float64(ev.Failures))
	if !ev.OK() {
		return nil
	}
	s.lastSuccess.Set(float64(ev.Time.Unix()))
	s.tomorrow.Set(boolGauge(ev.TomorrowVisible))
	for group, current := range ev.Current {
		for _, status := range schedule.Statuses() {
			s.groupStatus.WithLabelValues(group, string(status)).Set(boolGauge(status == current))
		}
	}
	return nil
}

func boolGauge(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
