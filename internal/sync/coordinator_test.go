package sync

import (
	"context"
	"errors"
	"net/http"
	stdsync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cannadex/cannadex-go/internal/logging"
	"github.com/cannadex/cannadex-go/internal/models"
)

type fakeStore struct {
	mu       stdsync.Mutex
	items    []models.QueueItem
	lastSync time.Time
}

func (f *fakeStore) OfflineQueue() ([]models.QueueItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.QueueItem(nil), f.items...), nil
}

func (f *fakeStore) ReplaceOfflineQueue(items []models.QueueItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]models.QueueItem(nil), items...)
	return nil
}

func (f *fakeStore) SetLastSync(t time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSync = t
	return nil
}

func (f *fakeStore) add(item models.QueueItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, item)
}

type fakeReplayer struct {
	mu     stdsync.Mutex
	fail   map[string]error
	seen   []string
	during func()
}

func (f *fakeReplayer) Replay(_ context.Context, item models.QueueItem) error {
	f.mu.Lock()
	f.seen = append(f.seen, item.ID)
	during := f.during
	f.during = nil
	err := f.fail[item.ID]
	f.mu.Unlock()
	if during != nil {
		during()
	}
	return err
}

type onlineStub bool

func (o onlineStub) Online(context.Context) bool { return bool(o) }

func item(id string, age time.Duration) models.QueueItem {
	return models.QueueItem{
		ID:        id,
		Method:    http.MethodPost,
		URL:       "/encounters",
		Timestamp: time.Now().Add(-age),
	}
}

func TestPerformSync_ReplaysInOrderAndClearsQueue(t *testing.T) {
	store := &fakeStore{items: []models.QueueItem{item("a", time.Minute), item("b", time.Minute)}}
	rep := &fakeReplayer{}
	c := New(store, rep, onlineStub(true), logging.Nop())

	require.NoError(t, c.PerformSync(context.Background()))

	assert.Equal(t, []string{"a", "b"}, rep.seen)
	left, _ := store.OfflineQueue()
	assert.Empty(t, left)
	assert.False(t, store.lastSync.IsZero())
}

func TestPerformSync_KeepsYoungFailuresDropsExpired(t *testing.T) {
	store := &fakeStore{items: []models.QueueItem{
		item("young", time.Hour),
		item("expired", 25*time.Hour),
		item("ok", time.Minute),
	}}
	rep := &fakeReplayer{fail: map[string]error{
		"young":   errors.New("boom"),
		"expired": errors.New("boom"),
	}}
	c := New(store, rep, onlineStub(true), logging.Nop())

	require.NoError(t, c.PerformSync(context.Background()))

	left, _ := store.OfflineQueue()
	require.Len(t, left, 1)
	assert.Equal(t, "young", left[0].ID)
}

func TestPerformSync_OfflineIsNoop(t *testing.T) {
	store := &fakeStore{items: []models.QueueItem{item("a", time.Minute)}}
	rep := &fakeReplayer{}
	c := New(store, rep, onlineStub(false), logging.Nop())

	require.NoError(t, c.PerformSync(context.Background()))

	assert.Empty(t, rep.seen)
	left, _ := store.OfflineQueue()
	assert.Len(t, left, 1)
	assert.True(t, store.lastSync.IsZero())
}

func TestPerformSync_PreservesItemsEnqueuedDuringPass(t *testing.T) {
	store := &fakeStore{items: []models.QueueItem{item("a", time.Minute)}}
	rep := &fakeReplayer{}
	rep.during = func() { store.add(item("late", 0)) }
	c := New(store, rep, onlineStub(true), logging.Nop())

	require.NoError(t, c.PerformSync(context.Background()))

	assert.Equal(t, []string{"a"}, rep.seen)
	left, _ := store.OfflineQueue()
	require.Len(t, left, 1)
	assert.Equal(t, "late", left[0].ID)
}

func TestPerformSync_SecondConcurrentCallIsNoop(t *testing.T) {
	store := &fakeStore{items: []models.QueueItem{item("a", time.Minute)}}
	rep := &fakeReplayer{}
	c := New(store, rep, onlineStub(true), logging.Nop())

	release := make(chan struct{})
	entered := make(chan struct{})
	rep.during = func() {
		close(entered)
		<-release
	}

	done := make(chan error, 1)
	go func() { done <- c.PerformSync(context.Background()) }()
	<-entered

	assert.True(t, c.InProgress())
	require.NoError(t, c.PerformSync(context.Background()))
	assert.Equal(t, []string{"a"}, rep.seen)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, c.InProgress())
}

func TestOnSync_NotifiesAndUnsubscribes(t *testing.T) {
	store := &fakeStore{}
	c := New(store, &fakeReplayer{}, onlineStub(true), logging.Nop())

	var calls int
	unsubscribe := c.OnSync(func() { calls++ })

	require.NoError(t, c.PerformSync(context.Background()))
	assert.Equal(t, 1, calls)

	unsubscribe()
	require.NoError(t, c.PerformSync(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	store := &fakeStore{}
	c := New(store, &fakeReplayer{}, onlineStub(true), logging.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	assert.False(t, store.lastSync.IsZero())
}
