// Package storage is the sole owner of durable client state: the auth
// session, cached entity lists, app settings, the onboarding flag, the
// last-sync timestamp, and the offline request queue. Everything else in
// the app goes through this package, never to disk directly.
//
// State lives in a single bbolt file. Every write runs in its own update
// transaction, which gives per-key atomicity: a reader always observes a
// complete prior write. No cross-key transactions are offered or needed.
package storage

import (
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketAuth     = []byte("auth")
	bucketCache    = []byte("cache")
	bucketSettings = []byte("settings")
	bucketQueue    = []byte("queue")
)

var buckets = [][]byte{bucketAuth, bucketCache, bucketSettings, bucketQueue}

// ErrIncompleteSession is returned when a session write would store a token
// without its user. A token must never exist without a cached identity.
var ErrIncompleteSession = errors.New("session requires both token and user")

// Store is the bbolt-backed local persistent store. Safe for interleaved
// use from multiple goroutines.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// Open opens (or creates) the store file and ensures all buckets exist.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ClearAll wipes every key in every bucket. Used only for full
// logout/reset flows.
func (s *Store) ClearAll() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, b := range buckets {
			if err := tx.DeleteBucket(b); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(b); err != nil {
				return err
			}
		}
		return nil
	})
}

// get returns the value for key in bucket, or nil when absent. The returned
// slice is a copy and safe to keep.
func (s *Store) get(bucket, key []byte) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucket).Get(key)
		if v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

// put stores value under key in bucket.
func (s *Store) put(bucket, key, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(key, value)
	})
}
