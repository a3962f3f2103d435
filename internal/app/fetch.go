package app

import (
	"context"
	"errors"
	"time"

	"github.com/five82/svitlo/internal/feed"
	"github.com/five82/svitlo/internal/logging"
	"github.com/five82/svitlo/internal/state"
)

var errEmptyDocument = errors.New("empty schedule document")

// refresh fetches the schedule once and records the outcome in store.
func refresh(ctx context.Context, store *state.Store, fetcher feed.Fetcher, log logging.Logger, now func() time.Time) error {
	doc, err := fetcher.FetchSchedule(ctx)
	if err == nil && doc == nil {
		err = errEmptyDocument
	}
	if err != nil {
		store.MarkFetchError(err, now())
		log.Warnf("schedule fetch failed: %v", err)
		return err
	}
	store.Ingest(doc, now())
	return nil
}
