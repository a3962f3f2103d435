// Package app provides the orchestration layer for svitlo.
//
// # Overview
//
// This package wires together configuration, logging, the feed client, the
// metric sinks, MQTT publication and the UI. It is the composition root where
// every dependency is initialized and connected.
//
// # Architecture
//
// Run follows a simple initialization pattern:
//
//  1. Load config from ~/.config/svitlo/config.toml plus SVITLO_ overrides
//  2. Open the log file (the TUI owns the terminal)
//  3. Create the feed client and load saved preferences
//  4. Build the optional Prometheus/InfluxDB sinks and the MQTT publisher
//  5. Start the TUI and block until the user quits or the context is cancelled
//
// The UI owns polling: it fetches on startup, on every countdown expiry, on
// manual refresh and after returning from a long absence. This package does
// not run a background poller.
//
// Print is the non-interactive path used by "svitlo print": it fetches once,
// renders the timeline and overview as text, and exits.
//
// # Components
//
//   - app.go: Run, Print and sink/publisher construction
//   - fetch.go: One-shot fetch into a state.Store
//
// # Error Handling
//
// Configuration errors are fatal and returned before the UI starts. Failures
// of optional integrations (metrics, MQTT, log file) are logged and the
// integration is disabled for the run.
package app
