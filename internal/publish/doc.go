// Package publish mirrors the current outage state to MQTT so home
// automation can react to it.
//
// After every refresh the application hands an Update to a Publisher.
// MQTTPublisher writes the live status of each group for the current hour to
// <prefix>/<group>/status and a JSON summary to <prefix>/state, and keeps
// <prefix>/availability at "online" while connected (the broker publishes
// "offline" as the last will). NopPublisher is used when no broker is
// configured.
package publish
