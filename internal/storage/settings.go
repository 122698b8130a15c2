package storage

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/cannadex/cannadex-go/internal/models"
)

var (
	keySettings   = []byte("app_settings")
	keyOnboarding = []byte("onboarding_completed")
	keyLastSync   = []byte("last_sync")
)

// Settings returns the stored app settings, falling back to defaults when
// nothing has been saved yet.
func (s *Store) Settings() (models.Settings, error) {
	v, err := s.get(bucketSettings, keySettings)
	if err != nil {
		return models.Settings{}, err
	}
	if v == nil {
		return models.DefaultSettings(), nil
	}
	var settings models.Settings
	if err := json.Unmarshal(v, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies the non-nil fields of patch on top of the current
// settings and persists the result. Read and write happen in one
// transaction so concurrent patches cannot lose fields.
func (s *Store) UpdateSettings(patch models.SettingsPatch) (models.Settings, error) {
	var merged models.Settings
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSettings)
		merged = models.DefaultSettings()
		if v := b.Get(keySettings); v != nil {
			if err := json.Unmarshal(v, &merged); err != nil {
				return fmt.Errorf("decode settings: %w", err)
			}
		}
		if patch.Theme != nil {
			merged.Theme = *patch.Theme
		}
		if patch.Notifications != nil {
			merged.Notifications = *patch.Notifications
		}
		if patch.LocationSharing != nil {
			merged.LocationSharing = *patch.LocationSharing
		}
		if patch.Analytics != nil {
			merged.Analytics = *patch.Analytics
		}
		data, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("encode settings: %w", err)
		}
		return b.Put(keySettings, data)
	})
	if err != nil {
		return models.Settings{}, err
	}
	return merged, nil
}

// SetOnboardingCompleted marks first-run onboarding as done. There is no
// way back short of ClearAll.
func (s *Store) SetOnboardingCompleted() error {
	return s.put(bucketSettings, keyOnboarding, []byte("true"))
}

// OnboardingCompleted reports whether onboarding has been completed.
func (s *Store) OnboardingCompleted() (bool, error) {
	v, err := s.get(bucketSettings, keyOnboarding)
	return string(v) == "true", err
}

// SetLastSync records when the offline queue was last drained.
func (s *Store) SetLastSync(t time.Time) error {
	return s.put(bucketSettings, keyLastSync, []byte(t.UTC().Format(time.RFC3339Nano)))
}

// LastSync returns the last successful sync time, zero when none happened.
func (s *Store) LastSync() (time.Time, error) {
	v, err := s.get(bucketSettings, keyLastSync)
	if err != nil || v == nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, string(v))
	if err != nil {
		return time.Time{}, fmt.Errorf("decode last sync: %w", err)
	}
	return t, nil
}
