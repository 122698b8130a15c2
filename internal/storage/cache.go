package storage

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/cannadex/cannadex-go/internal/models"
)

// Cache keys for the entity lists the app keeps offline copies of.
const (
	KeyStrains    = "cached_strains"
	KeyEncounters = "cached_encounters"
)

// Default staleness windows. Strains change rarely; the encounter journal
// is the user's own data and goes stale faster.
const (
	DefaultStrainsMaxAge    = time.Hour
	DefaultEncountersMaxAge = 30 * time.Minute
)

// cacheEntry wraps a cached payload with its write time. Data and timestamp
// live in one value so staleness can never be judged against the wrong
// generation of the payload.
type cacheEntry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// SetCached stores v under key, stamped with the current time.
func (s *Store) SetCached(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	entry, err := json.Marshal(cacheEntry{Data: data, Timestamp: s.now()})
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	return s.put(bucketCache, []byte(key), entry)
}

// GetCached loads the entry under key into dst when it exists and is no
// older than maxAge. Returns false on a miss or a stale entry; dst is left
// untouched in both cases.
func (s *Store) GetCached(key string, maxAge time.Duration, dst any) (bool, error) {
	v, err := s.get(bucketCache, []byte(key))
	if err != nil || v == nil {
		return false, err
	}
	var entry cacheEntry
	if err := json.Unmarshal(v, &entry); err != nil {
		return false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	if s.now().Sub(entry.Timestamp) > maxAge {
		return false, nil
	}
	if err := json.Unmarshal(entry.Data, dst); err != nil {
		return false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	return true, nil
}

// SetCachedStrains stores the strain catalog snapshot.
func (s *Store) SetCachedStrains(strains []models.Strain) error {
	return s.SetCached(KeyStrains, strains)
}

// CachedStrains returns the cached catalog when fresh within maxAge.
func (s *Store) CachedStrains(maxAge time.Duration) ([]models.Strain, bool, error) {
	var strains []models.Strain
	ok, err := s.GetCached(KeyStrains, maxAge, &strains)
	if !ok {
		return nil, ok, err
	}
	return strains, true, nil
}

// SetCachedEncounters stores the user's encounter journal snapshot.
func (s *Store) SetCachedEncounters(encounters []models.Encounter) error {
	return s.SetCached(KeyEncounters, encounters)
}

// CachedEncounters returns the cached journal when fresh within maxAge.
func (s *Store) CachedEncounters(maxAge time.Duration) ([]models.Encounter, bool, error) {
	var encounters []models.Encounter
	ok, err := s.GetCached(KeyEncounters, maxAge, &encounters)
	if !ok {
		return nil, ok, err
	}
	return encounters, true, nil
}

// ClearCache drops every cached entry. Session, settings and the offline
// queue are untouched.
func (s *Store) ClearCache() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketCache); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketCache)
		return err
	})
}
