package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/svitlo/internal/schedule"
)

// Snapshot represents the latest schedule data available to the UI.
type Snapshot struct {
	Document            *schedule.Document
	Keys                schedule.DayKeys
	TomorrowVisible     bool
	LastFetch           time.Time // last successful fetch
	LastAttempt         time.Time
	LastError           error
	ConsecutiveFailures int
}

// HasData reports whether a document has ever been fetched successfully.
func (s Snapshot) HasData() bool {
	return s.Document != nil
}

// FetchFailed reports whether the most recent fetch failed.
func (s Snapshot) FetchFailed() bool {
	return s.LastError != nil
}

// Store keeps the last good schedule document and the facts derived from it.
// It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	groups   []string
	snapshot Snapshot
}

// NewStore creates a store that evaluates tomorrow visibility over groups.
func NewStore(groups []string) *Store {
	dup := make([]string, len(groups))
	copy(dup, groups)
	return &Store{groups: dup}
}

// Ingest replaces the stored document and recomputes the derived facts.
func (s *Store) Ingest(doc *schedule.Document, at time.Time) {
	if doc == nil {
		s.MarkFetchError(fmt.Errorf("empty schedule document"), at)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Document = doc
	s.snapshot.Keys = doc.Keys()
	s.snapshot.TomorrowVisible = doc.TomorrowVisible(s.groups)
	s.snapshot.LastFetch = at
	s.snapshot.LastAttempt = at
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// MarkFetchError records a failed fetch. The previous document is kept so the
// last known schedule stays on screen.
func (s *Store) MarkFetchError(err error, at time.Time) {
	if err == nil {
		err = fmt.Errorf("fetch failed")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastError = err
	s.snapshot.LastAttempt = at
	s.snapshot.ConsecutiveFailures++
}

// Snapshot returns a copy of the current snapshot. The document itself is
// shared; it is never mutated after ingest.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Groups returns the configured group order.
func (s *Store) Groups() []string {
	dup := make([]string, len(s.groups))
	copy(dup, s.groups)
	return dup
}
