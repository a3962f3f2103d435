package publish

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/five82/svitlo/internal/schedule"
)

// Update is the state published after each refresh.
type Update struct {
	Time            time.Time
	Groups          []string // publication order
	Current         map[string]schedule.Status
	Slot            int
	TomorrowVisible bool
	LastFetch       time.Time
	FetchError      string
}

// Publisher pushes updates to an external system.
type Publisher interface {
	Publish(u Update) error
	Close()
}

// NopPublisher drops every update.
type NopPublisher struct{}

func (NopPublisher) Publish(Update) error { return nil }
func (NopPublisher) Close()               {}

// Message is one topic/payload pair.
type Message struct {
	Topic   string
	Payload []byte
}

type statePayload struct {
	Time            time.Time         `json:"time"`
	Slot            int               `json:"slot"`
	TomorrowVisible bool              `json:"tomorrow_visible"`
	LastFetch       *time.Time        `json:"last_fetch,omitempty"`
	FetchError      string            `json:"fetch_error,omitempty"`
	Groups          map[string]string `json:"groups"`
}

// BuildMessages renders an update into messages under prefix: one plain
// status per group at <prefix>/<group>/status, then a JSON summary at
// <prefix>/state. Group topics are skipped while no schedule is known.
func BuildMessages(prefix string, u Update) ([]Message, error) {
	prefix = strings.Trim(prefix, "/")
	msgs := make([]Message, 0, len(u.Groups)+1)
	groups := make(map[string]string, len(u.Current))
	for _, g := range u.Groups {
		status, ok := u.Current[g]
		if !ok {
			continue
		}
		groups[g] = string(status)
		msgs = append(msgs, Message{
			Topic:   fmt.Sprintf("%s/%s/status", prefix, g),
			Payload: []byte(status),
		})
	}

	state := statePayload{
		Time:            u.Time.UTC(),
		Slot:            u.Slot,
		TomorrowVisible: u.TomorrowVisible,
		FetchError:      u.FetchError,
		Groups:          groups,
	}
	if !u.LastFetch.IsZero() {
		lf := u.LastFetch.UTC()
		state.LastFetch = &lf
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	msgs = append(msgs, Message{Topic: prefix + "/state", Payload: payload})
	return msgs, nil
}
