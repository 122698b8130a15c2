// Package sync drains the offline request queue against the backend when
// connectivity returns. A single Coordinator instance owns the drain loop;
// callers may fire PerformSync from anywhere (app foreground, connectivity
// change, timer) without worrying about overlap.
package sync

import (
	"context"
	"fmt"
	stdsync "sync"
	"time"

	"github.com/cannadex/cannadex-go/internal/logging"
	"github.com/cannadex/cannadex-go/internal/models"
	"github.com/cannadex/cannadex-go/internal/netx"
)

// defaultMaxItemAge is how long a failing queued item is retried before it
// is dropped for good.
const defaultMaxItemAge = 24 * time.Hour

// Store is the slice of the persistent store the coordinator needs.
//
// Contract: OfflineQueue returns items in append order; ReplaceOfflineQueue
// atomically swaps the queue contents preserving the given order.
type Store interface {
	OfflineQueue() ([]models.QueueItem, error)
	ReplaceOfflineQueue(items []models.QueueItem) error
	SetLastSync(t time.Time) error
}

// Replayer re-issues one queued request. Implemented by the API client.
//
// Contract: a replayed request is sent verbatim and is never re-queued on
// failure; requeue decisions belong to the coordinator.
type Replayer interface {
	Replay(ctx context.Context, item models.QueueItem) error
}

// Coordinator serializes queue drains. At most one drain pass runs at a
// time; a PerformSync call that finds one in flight is a no-op.
type Coordinator struct {
	store      Store
	replayer   Replayer
	online     netx.Checker
	log        logging.Logger
	now        func() time.Time
	maxItemAge time.Duration

	mu           stdsync.Mutex
	syncing      bool
	nextListener int
	listeners    map[int]func()
}

// New builds a coordinator with the default item expiry.
func New(store Store, replayer Replayer, online netx.Checker, log logging.Logger) *Coordinator {
	return &Coordinator{
		store:      store,
		replayer:   replayer,
		online:     online,
		log:        log.With("component", "sync"),
		now:        time.Now,
		maxItemAge: defaultMaxItemAge,
		listeners:  map[int]func(){},
	}
}

// InProgress reports whether a drain pass is currently running.
func (c *Coordinator) InProgress() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.syncing
}

// OnSync registers fn to run after every completed drain pass. The returned
// function unsubscribes it.
func (c *Coordinator) OnSync(fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// PerformSync drains the offline queue once. The pass works on a snapshot
// of the queue taken at the start: each snapshotted item is replayed in
// order, failing items younger than the expiry are kept, older ones are
// dropped. Items enqueued while the pass runs are preserved behind the
// survivors. When offline, or when a pass is already running, the call
// returns nil without touching the queue.
func (c *Coordinator) PerformSync(ctx context.Context) error {
	c.mu.Lock()
	if c.syncing {
		c.mu.Unlock()
		return nil
	}
	c.syncing = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.syncing = false
		c.mu.Unlock()
	}()

	if !c.online.Online(ctx) {
		c.log.Debug(ctx, "sync skipped, offline")
		return nil
	}

	snapshot, err := c.store.OfflineQueue()
	if err != nil {
		return fmt.Errorf("load offline queue: %w", err)
	}

	inSnapshot := make(map[string]bool, len(snapshot))
	for _, item := range snapshot {
		inSnapshot[item.ID] = true
	}

	var kept []models.QueueItem
	var replayed int
	for _, item := range snapshot {
		if err := c.replayer.Replay(ctx, item); err != nil {
			if c.now().Sub(item.Timestamp) < c.maxItemAge {
				c.log.Warn(ctx, "replay failed, keeping item", "id", item.ID, "url", item.URL, "error", err)
				kept = append(kept, item)
			} else {
				c.log.Warn(ctx, "replay failed, item expired", "id", item.ID, "url", item.URL, "error", err)
			}
			continue
		}
		replayed++
	}

	// Anything enqueued during the pass goes behind the survivors.
	current, err := c.store.OfflineQueue()
	if err != nil {
		return fmt.Errorf("load offline queue: %w", err)
	}
	for _, item := range current {
		if !inSnapshot[item.ID] {
			kept = append(kept, item)
		}
	}

	if err := c.store.ReplaceOfflineQueue(kept); err != nil {
		return fmt.Errorf("write back offline queue: %w", err)
	}
	if err := c.store.SetLastSync(c.now()); err != nil {
		return fmt.Errorf("record sync time: %w", err)
	}

	c.log.Info(ctx, "sync complete", "replayed", replayed, "kept", len(kept))
	c.notify()
	return nil
}

// Run fires PerformSync every interval until ctx is cancelled. Errors are
// logged and the loop keeps going.
func (c *Coordinator) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.PerformSync(ctx); err != nil {
				c.log.Error(ctx, "periodic sync failed", "error", err)
			}
		}
	}
}

func (c *Coordinator) notify() {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
