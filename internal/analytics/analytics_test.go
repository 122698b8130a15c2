package analytics

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cannadex/cannadex-go/internal/logging"
)

type fakeSink struct {
	batches [][]Event
	err     error
}

func (f *fakeSink) SendAnalyticsEvents(_ context.Context, events []Event) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, events)
	return nil
}

func TestTrack_Disabled(t *testing.T) {
	sink := &fakeSink{}
	tr := NewTracker(sink, false, logging.Nop())

	tr.Track(context.Background(), "screen_view", nil)
	assert.Zero(t, tr.Pending())
}

func TestTrack_BuffersUntilThreshold(t *testing.T) {
	sink := &fakeSink{}
	tr := NewTracker(sink, true, logging.Nop())
	ctx := context.Background()

	for i := 0; i < flushThreshold-1; i++ {
		tr.Track(ctx, "user_action", map[string]any{"n": i})
	}
	assert.Equal(t, flushThreshold-1, tr.Pending())
	assert.Empty(t, sink.batches)

	tr.Track(ctx, "user_action", nil)
	require.Len(t, sink.batches, 1)
	assert.Len(t, sink.batches[0], flushThreshold)
	assert.Zero(t, tr.Pending())
}

func TestTrack_EventShape(t *testing.T) {
	sink := &fakeSink{}
	tr := NewTracker(sink, true, logging.Nop())
	tr.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	tr.SearchPerformed(context.Background(), "purple haze", 7)
	require.NoError(t, tr.Flush(context.Background()))

	require.Len(t, sink.batches, 1)
	ev := sink.batches[0][0]
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "search_performed", ev.Name)
	// the query text itself is never recorded
	assert.Equal(t, len("purple haze"), ev.Properties["query_length"])
	assert.Equal(t, 7, ev.Properties["result_count"])
	assert.Equal(t, 2026, ev.Timestamp.Year())
}

func TestFlush_KeepsBatchOnFailure(t *testing.T) {
	sink := &fakeSink{err: errors.New("offline")}
	tr := NewTracker(sink, true, logging.Nop())
	ctx := context.Background()

	tr.Track(ctx, "user_action", nil)
	require.Error(t, tr.Flush(ctx))
	assert.Equal(t, 1, tr.Pending())

	sink.err = nil
	require.NoError(t, tr.Flush(ctx))
	assert.Zero(t, tr.Pending())
	require.Len(t, sink.batches, 1)
}

func TestFlush_EmptyIsNoop(t *testing.T) {
	sink := &fakeSink{}
	tr := NewTracker(sink, true, logging.Nop())
	require.NoError(t, tr.Flush(context.Background()))
	assert.Empty(t, sink.batches)
}

func TestBuffer_BoundedDropsOldest(t *testing.T) {
	sink := &fakeSink{err: errors.New("offline")}
	tr := NewTracker(sink, true, logging.Nop())
	ctx := context.Background()

	for i := 0; i < maxBuffered+25; i++ {
		tr.Track(ctx, "user_action", map[string]any{"n": strconv.Itoa(i)})
	}
	assert.Equal(t, maxBuffered, tr.Pending())
}

func TestSetEnabled_KeepsBufferedEvents(t *testing.T) {
	sink := &fakeSink{}
	tr := NewTracker(sink, true, logging.Nop())
	ctx := context.Background()

	tr.Track(ctx, "user_action", nil)
	tr.SetEnabled(false)
	tr.Track(ctx, "user_action", nil)
	assert.Equal(t, 1, tr.Pending())

	require.NoError(t, tr.Flush(ctx))
	require.Len(t, sink.batches, 1)
}
