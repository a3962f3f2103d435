// Package metrics records the outcome of every schedule refresh.
//
// A Sink receives one RefreshEvent per cycle. PromSink keeps counters and
// gauges for a /metrics endpoint served by StartPromServer; InfluxSink writes
// points to an InfluxDB bucket and degrades to NopSink when the server fails
// its health check at startup. MultiSink fans out to several sinks.
//
// Sink errors are meant to be logged by the caller, never shown in the UI.
package metrics
