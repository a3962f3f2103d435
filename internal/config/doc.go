// Package config loads svitlo's runtime configuration.
//
// # Overview
//
// Configuration comes from an optional file plus environment overrides and
// is resolved once at startup. Config errors are the only fatal errors in
// svitlo and always surface before the terminal UI starts.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/svitlo/config.toml (default)
//  3. If the file doesn't exist, continue with an empty document
//  4. Apply SVITLO_ environment variables on top
//  5. Fill defaults for everything still empty, then validate
//
// The file format follows the extension: .toml, .yaml/.yml or .json. Any
// other extension is rejected.
//
// # Environment Overrides
//
// Variables are lower-cased, stripped of the SVITLO_ prefix, and "__" marks
// nesting:
//
//	SVITLO_FEED_URL=https://example.org/kyiv.json
//	SVITLO_POLL_INTERVAL=120
//	SVITLO_GROUPS=GPV1.1,GPV3.2
//	SVITLO_MQTT__BROKER=tcp://localhost:1883
//
// A comma-separated groups value is split into a list.
//
// # Default Values
//
//   - feed_url: the public Kyiv region outage feed
//   - poll_interval: 300 seconds
//   - request_timeout: 15 seconds
//   - groups: GPV1.1 through GPV6.2 (twelve groups)
//   - featured_group: GPV3.2
//   - log_file: ~/.local/state/svitlo/svitlo.log
//   - mqtt.topic_prefix: svitlo
//
// Prometheus, InfluxDB and MQTT stay disabled until their address, URL or
// broker is set.
//
// # Example
//
//	feed_url = "https://example.org/kyiv-region.json"
//	poll_interval = 300
//	groups = ["GPV1.1", "GPV1.2", "GPV3.2"]
//	featured_group = "GPV3.2"
//
//	[metrics]
//	prometheus_addr = ":9105"
//
//	[mqtt]
//	broker = "tcp://localhost:1883"
//	retain = true
//
// # Validation
//
// Validate rejects a non-positive poll interval or timeout, an empty or
// duplicated group list, a featured group missing from the list, an MQTT QoS
// outside 0..2, and an InfluxDB URL without org or bucket.
package config
