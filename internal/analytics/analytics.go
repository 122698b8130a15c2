// Package analytics buffers usage events client-side and flushes them to
// the backend in batches. The tracker is an explicit instance wired at app
// start; whether it records at all follows the user's analytics setting.
package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cannadex/cannadex-go/internal/logging"
)

// Event is one recorded usage event.
type Event struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// Sink delivers flushed event batches. Implemented by the API client.
type Sink interface {
	SendAnalyticsEvents(ctx context.Context, events []Event) error
}

const (
	// flushThreshold triggers an automatic flush once this many events are
	// buffered.
	flushThreshold = 10
	// maxBuffered bounds the buffer when flushes keep failing; the oldest
	// events are dropped beyond it.
	maxBuffered = 100
)

// Tracker is a bounded in-memory event buffer. Safe for concurrent use.
type Tracker struct {
	sink Sink
	log  logging.Logger
	now  func() time.Time

	mu      sync.Mutex
	enabled bool
	events  []Event
}

// NewTracker builds a tracker. The enabled flag normally comes from the
// persisted analytics setting.
func NewTracker(sink Sink, enabled bool, log logging.Logger) *Tracker {
	return &Tracker{
		sink:    sink,
		log:     log.With("component", "analytics"),
		now:     time.Now,
		enabled: enabled,
	}
}

// SetEnabled switches recording on or off. Disabling does not discard
// already-buffered events.
func (t *Tracker) SetEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = enabled
}

// Track records an event when the tracker is enabled, auto-flushing once
// the buffer reaches the threshold. Flush failures are logged, never
// surfaced: analytics must not break user flows.
func (t *Tracker) Track(ctx context.Context, name string, properties map[string]any) {
	t.mu.Lock()
	if !t.enabled {
		t.mu.Unlock()
		return
	}
	t.events = append(t.events, Event{
		ID:         uuid.NewString(),
		Name:       name,
		Properties: properties,
		Timestamp:  t.now(),
	})
	if len(t.events) > maxBuffered {
		t.events = t.events[len(t.events)-maxBuffered:]
	}
	shouldFlush := len(t.events) >= flushThreshold
	t.mu.Unlock()

	if shouldFlush {
		if err := t.Flush(ctx); err != nil {
			t.log.Warn(ctx, "analytics flush failed", "error", err)
		}
	}
}

// Flush sends all buffered events through the sink. On failure the batch is
// kept (bounded) and retried on the next flush.
func (t *Tracker) Flush(ctx context.Context) error {
	t.mu.Lock()
	if len(t.events) == 0 {
		t.mu.Unlock()
		return nil
	}
	batch := t.events
	t.events = nil
	t.mu.Unlock()

	if err := t.sink.SendAnalyticsEvents(ctx, batch); err != nil {
		t.mu.Lock()
		t.events = append(batch, t.events...)
		if len(t.events) > maxBuffered {
			t.events = t.events[len(t.events)-maxBuffered:]
		}
		t.mu.Unlock()
		return err
	}
	return nil
}

// Pending reports the number of buffered events.
func (t *Tracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.events)
}

// ScreenView records a screen impression.
func (t *Tracker) ScreenView(ctx context.Context, screenName string) {
	t.Track(ctx, "screen_view", map[string]any{"screen_name": screenName})
}

// UserAction records a generic user interaction.
func (t *Tracker) UserAction(ctx context.Context, action string) {
	t.Track(ctx, "user_action", map[string]any{"action": action})
}

// EncounterCreated records a logged encounter.
func (t *Tracker) EncounterCreated(ctx context.Context, strainID int64, overallRating int) {
	t.Track(ctx, "encounter_created", map[string]any{
		"strain_id":      strainID,
		"overall_rating": overallRating,
	})
}

// BattleCreated records an issued challenge.
func (t *Tracker) BattleCreated(ctx context.Context, opponentID int64) {
	t.Track(ctx, "battle_created", map[string]any{"opponent_id": opponentID})
}

// SearchPerformed records a search. Only the query length is kept, never
// the query text.
func (t *Tracker) SearchPerformed(ctx context.Context, query string, resultCount int) {
	t.Track(ctx, "search_performed", map[string]any{
		"query_length": len(query),
		"result_count": resultCount,
	})
}
