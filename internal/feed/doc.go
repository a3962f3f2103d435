// Package feed fetches the outage schedule document from its JSON endpoint.
//
// Every request carries no-cache headers and a millisecond cache-busting
// query parameter, so intermediate proxies never serve a stale schedule.
// A response outside the 2xx range is reported as *StatusError; transport
// and decoding failures are wrapped with context. The caller decides what to
// keep on failure, the client itself holds no state between requests.
package feed
