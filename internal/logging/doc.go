// Package logging provides component loggers backed by zerolog.
//
// Loggers write JSON lines to a file chosen at startup via Setup; until then
// output is discarded so the terminal UI is never disturbed. Set APP_ENV=dev
// for console formatting.
package logging
