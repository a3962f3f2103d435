package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/svitlo/internal/schedule"
)

type recordSink struct {
	count int
	err   error
}

func (r *recordSink) RecordRefresh(RefreshEvent) error {
	r.count++
	return r.err
}

func TestMultiSink_ForwardsToAll(t *testing.T) {
	failing := &recordSink{err: errors.New("boom")}
	ok := &recordSink{}
	m := NewMultiSink(failing, ok, NopSink{})

	err := m.RecordRefresh(RefreshEvent{})
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 1, failing.count)
	assert.Equal(t, 1, ok.count, "later sinks still receive the event")

	assert.NoError(t, NewMultiSink().RecordRefresh(RefreshEvent{}))
}

func TestRefreshEvent_Result(t *testing.T) {
	assert.Equal(t, "ok", RefreshEvent{}.Result())
	assert.Equal(t, "error", RefreshEvent{Err: errors.New("x")}.Result())
}

func TestPromSink_RecordRefresh(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	at := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)
	require.NoError(t, sink.RecordRefresh(RefreshEvent{
		Trigger:         TriggerStartup,
		Time:            at,
		Duration:        200 * time.Millisecond,
		TomorrowVisible: true,
		Current: map[string]schedule.Status{
			"GPV1.1": schedule.StatusNo,
			"GPV3.2": schedule.StatusMaybeFirst,
		},
	}))
	require.NoError(t, sink.RecordRefresh(RefreshEvent{
		Trigger:  TriggerTimer,
		Time:     at.Add(5 * time.Minute),
		Err:      errors.New("feed returned status 500"),
		Failures: 1,
	}))

	assert.Equal(t, 1.0, testutil.ToFloat64(sink.refreshes.WithLabelValues("ok", TriggerStartup)))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.refreshes.WithLabelValues("error", TriggerTimer)))
	assert.Equal(t, float64(at.Unix()), testutil.ToFloat64(sink.lastSuccess), "failure keeps last success")
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.tomorrow))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.failures))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.groupStatus.WithLabelValues("GPV1.1", "no")))
	assert.Equal(t, 0.0, testutil.ToFloat64(sink.groupStatus.WithLabelValues("GPV1.1", "yes")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.groupStatus.WithLabelValues("GPV3.2", "mfirst")))
}

func TestPromSink_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	second, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, first.RecordRefresh(RefreshEvent{Trigger: TriggerManual}))
	assert.Equal(t, 1.0, testutil.ToFloat64(second.refreshes.WithLabelValues("ok", TriggerManual)))
}

func TestPromMux_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	require.NoError(t, sink.RecordRefresh(RefreshEvent{Trigger: TriggerStartup}))

	srv := httptest.NewServer(newMux(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `svitlo_refresh_total{result="ok",trigger="startup"} 1`)
}

func TestInfluxSink_RecordRefresh(t *testing.T) {
	bodies := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		bodies <- string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL+"/api/v2/write", "token", "org", "bucket")
	defer sink.Close()

	err := sink.RecordRefresh(RefreshEvent{
		CycleID:  "c1",
		Trigger:  TriggerTimer,
		Time:     time.Now(),
		Duration: 1500 * time.Millisecond,
		Current:  map[string]schedule.Status{"GPV3.2": schedule.StatusNo},
	})
	require.NoError(t, err)

	body := <-bodies
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "schedule_refresh,result=ok,trigger=timer "), lines[0])
	assert.Contains(t, lines[0], `cycle_id="c1"`)
	assert.Contains(t, lines[0], "duration_ms=1500i")
	assert.True(t, strings.HasPrefix(lines[1], "group_status,group=GPV3.2 "), lines[1])
	assert.Contains(t, lines[1], `status="no"`)
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	sink := NewInfluxSinkWithFallback(ctx, srv.URL, "tok", "org", "bucket")
	if _, ok := sink.(NopSink); !ok {
		t.Fatalf("expected NopSink on failing health check, got %T", sink)
	}
}
