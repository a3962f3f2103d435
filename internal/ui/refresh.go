package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/five82/svitlo/internal/feed"
	"github.com/five82/svitlo/internal/logging"
	"github.com/five82/svitlo/internal/metrics"
	"github.com/five82/svitlo/internal/publish"
	"github.com/five82/svitlo/internal/schedule"
	"github.com/five82/svitlo/internal/state"
)

var errNoFetcher = errors.New("no feed configured")

// refreshCycle identifies one fetch for logs and metrics.
type refreshCycle struct {
	id      string
	trigger string
	started time.Time
}

func newRefreshCycle(trigger string, at time.Time) refreshCycle {
	return refreshCycle{id: uuid.NewString(), trigger: trigger, started: at}
}

// refreshResultMsg carries the outcome of a fetch back to Update.
type refreshResultMsg struct {
	cycle refreshCycle
	doc   *schedule.Document
	err   error
	at    time.Time
}

// reportDoneMsg signals that sinks and publishers have been notified.
type reportDoneMsg struct{}

// fetchCmd fetches the feed off the update loop.
func fetchCmd(ctx context.Context, fetcher feed.Fetcher, cycle refreshCycle, now func() time.Time) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return refreshResultMsg{cycle: cycle, err: errNoFetcher, at: now()}
		}
		doc, err := fetcher.FetchSchedule(ctx)
		return refreshResultMsg{cycle: cycle, doc: doc, err: err, at: now()}
	}
}

// startRefresh begins a refresh cycle unless one is already in flight.
// With restart set, the countdown starts once the result is applied, even if
// the result belongs to a refresh that was already running.
func (m *Model) startRefresh(trigger string, restart bool) tea.Cmd {
	if restart {
		m.restartAfter = true
	}
	if m.refreshing {
		return nil
	}
	m.refreshing = true
	m.cycle = newRefreshCycle(trigger, m.now())
	m.log.Debugw("refresh started", map[string]any{"cycle": m.cycle.id, "trigger": trigger})
	return fetchCmd(m.ctx, m.fetcher, m.cycle, m.now)
}

// handleRefreshResult applies a fetch outcome. Success replaces the document;
// failure keeps it and raises the error banner. Either way the countdown is
// reset, tomorrow selections are reconciled and the outcome is reported.
func (m Model) handleRefreshResult(msg refreshResultMsg) (tea.Model, tea.Cmd) {
	if msg.cycle.id != m.cycle.id {
		return m, nil
	}

	if msg.err == nil && msg.doc == nil {
		msg.err = errors.New("empty schedule document")
	}
	if msg.err != nil {
		m.store.MarkFetchError(msg.err, msg.at)
		m.log.Warnf("refresh %s (%s) failed: %v", msg.cycle.id, msg.cycle.trigger, msg.err)
	} else {
		m.store.Ingest(msg.doc, msg.at)
		m.log.Infof("refresh %s (%s) ok", msg.cycle.id, msg.cycle.trigger)
	}

	m.refreshing = false
	m.countdown.Reset()
	if m.restartAfter {
		m.countdown.Start()
		m.restartAfter = false
	}

	snap := m.store.Snapshot()
	if changed := m.view.Reconcile(snap.TomorrowVisible); len(changed) > 0 {
		m.log.Debugw("tomorrow hidden, sections pinned to today", map[string]any{"sections": len(changed)})
	}
	m.followNow = true
	m.syncViewport()

	return m, reportCmd(m.sink, m.publisher, m.log, m.refreshEvent(msg, snap), m.publishUpdate(msg, snap))
}

func (m Model) refreshEvent(msg refreshResultMsg, snap state.Snapshot) metrics.RefreshEvent {
	ev := metrics.RefreshEvent{
		CycleID:         msg.cycle.id,
		Trigger:         msg.cycle.trigger,
		Time:            msg.at,
		Duration:        msg.at.Sub(msg.cycle.started),
		Err:             msg.err,
		TomorrowVisible: snap.TomorrowVisible,
		Failures:        snap.ConsecutiveFailures,
	}
	if snap.HasData() {
		ev.Current = snap.Document.CurrentStatuses(m.store.Groups(), msg.at)
	}
	return ev
}

func (m Model) publishUpdate(msg refreshResultMsg, snap state.Snapshot) publish.Update {
	u := publish.Update{
		Time:            msg.at,
		Groups:          m.store.Groups(),
		Slot:            schedule.CurrentSlot(msg.at),
		TomorrowVisible: snap.TomorrowVisible,
		LastFetch:       snap.LastFetch,
	}
	if snap.HasData() {
		u.Current = snap.Document.CurrentStatuses(u.Groups, msg.at)
	}
	if msg.err != nil {
		u.FetchError = msg.err.Error()
	}
	return u
}

// reportCmd records metrics and publishes state off the update loop. Sink
// and publisher errors are logged only.
func reportCmd(sink metrics.Sink, pub publish.Publisher, log logging.Logger, ev metrics.RefreshEvent, u publish.Update) tea.Cmd {
	return func() tea.Msg {
		if err := sink.RecordRefresh(ev); err != nil {
			log.Warnf("record refresh %s: %v", ev.CycleID, err)
		}
		if err := pub.Publish(u); err != nil {
			log.Warnf("publish refresh %s: %v", ev.CycleID, err)
		}
		return reportDoneMsg{}
	}
}
