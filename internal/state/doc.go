// Package state holds the schedule data and view selections shared by the UI.
//
// # Overview
//
// Store keeps the last successfully fetched schedule document together with
// the facts derived from it at ingest time: the day keys, whether tomorrow's
// live schedule is worth showing, and the fetch bookkeeping (last success,
// last attempt, last error, consecutive failures). A failed fetch never
// discards the document, so the last known schedule stays on screen.
//
// ViewState holds what the user picked: live or predicted data and today or
// tomorrow, independently for the group section and the overview section,
// plus the interface language and theme.
//
// # Core Types
//
// Store:
//   - Written by the refresh path (Ingest, MarkFetchError)
//   - Read through Snapshot, which returns a value copy
//   - Uses sync.RWMutex so snapshots can be taken from any goroutine
//
// Snapshot:
//   - Document, day keys and TomorrowVisible
//   - LastFetch, LastAttempt, LastError and ConsecutiveFailures
//   - HasData and FetchFailed helpers for rendering decisions
//
// ViewState:
//   - SetDataKind and SetDay report whether the selection changed
//   - SetDay ignores tomorrow while tomorrow is not visible
//   - Reconcile pins sections back to today after tomorrow disappears
//
// # Tomorrow Visibility
//
// Tomorrow is visible only when the live schedule has an entry for it and
// that entry is not "yes" for every configured group and hour. Missing groups
// or hours count as not "yes". The rule is evaluated once per ingest.
//
// # Usage Example
//
//	store := state.NewStore(cfg.Groups)
//	doc, err := client.FetchSchedule(ctx)
//	if err != nil {
//		store.MarkFetchError(err, time.Now())
//	} else {
//		store.Ingest(doc, time.Now())
//	}
//	view := state.NewViewState("uk", "dark")
//	view.Reconcile(store.Snapshot().TomorrowVisible)
package state
