package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/cannadex/cannadex-go/internal/models"
)

// AddToOfflineQueue appends item to the queue. Keys come from the bucket
// sequence, so iteration order is append order.
func (s *Store) AddToOfflineQueue(item models.QueueItem) error {
	if item.Timestamp.IsZero() {
		item.Timestamp = s.now()
	}
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode queue item: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketQueue)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(queueKey(seq), data)
	})
}

// OfflineQueue returns every queued item in append order.
func (s *Store) OfflineQueue() ([]models.QueueItem, error) {
	var items []models.QueueItem
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketQueue).ForEach(func(_, v []byte) error {
			var item models.QueueItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("decode queue item: %w", err)
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceOfflineQueue atomically swaps the queue contents for items,
// preserving their order. Used by sync to write back the survivors of a
// drain pass.
func (s *Store) ReplaceOfflineQueue(items []models.QueueItem) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketQueue); err != nil {
			return err
		}
		b, err := tx.CreateBucket(bucketQueue)
		if err != nil {
			return err
		}
		for _, item := range items {
			data, err := json.Marshal(item)
			if err != nil {
				return fmt.Errorf("encode queue item: %w", err)
			}
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			if err := b.Put(queueKey(seq), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// ClearOfflineQueue drops every queued item.
func (s *Store) ClearOfflineQueue() error {
	return s.ReplaceOfflineQueue(nil)
}

// QueueLen reports the number of queued items.
func (s *Store) QueueLen() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(bucketQueue).Stats().KeyN
		return nil
	})
	return n, err
}

func queueKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}
