package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/five82/svitlo/internal/logging"
)

// InfluxSink writes refresh outcomes to InfluxDB using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logging.Logger
}

// NewInfluxSink creates a sink for the given InfluxDB v2 endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logging.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a NopSink
// if the health check fails.
func NewInfluxSinkWithFallback(ctx context.Context, url, token, org, bucket string) Sink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return NopSink{}
	}
	return sink
}

// RecordRefresh writes one schedule_refresh point and, on success, one
// group_status point per group.
func (s *InfluxSink) RecordRefresh(ev RefreshEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := write.NewPointWithMeasurement("schedule_refresh").
		AddTag("result", ev.Result()).
		AddTag("trigger", ev.Trigger).
		AddField("cycle_id", ev.CycleID).
		AddField("duration_ms", ev.Duration.Milliseconds()).
		AddField("consecutive_failures", ev.Failures).
		AddField("tomorrow_visible", ev.TomorrowVisible).
		SetTime(ev.Time)
	if ev.Err != nil {
		p.AddField("error", ev.Err.Error())
	}
	points := []*write.Point{p}
	if ev.OK() {
		for group, status := range ev.Current {
			points = append(points, write.NewPointWithMeasurement("group_status").
				AddTag("group", group).
				AddField("status", string(status)).
				SetTime(ev.Time))
		}
	}
	return s.writeAPI.WritePoint(ctx, points...)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}
