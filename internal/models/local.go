package models

import (
	"encoding/json"
	"time"
)

// Session is the locally persisted authentication state. A token is never
// stored without its user: the store rejects such writes.
type Session struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	User         *User  `json:"user"`
}

// Settings are the client-side app preferences.
type Settings struct {
	Theme           string `json:"theme"` // light|dark|system
	Notifications   bool   `json:"notifications"`
	LocationSharing bool   `json:"location_sharing"`
	Analytics       bool   `json:"analytics"`
}

// DefaultSettings are used when nothing has been persisted yet.
func DefaultSettings() Settings {
	return Settings{
		Theme:           "system",
		Notifications:   true,
		LocationSharing: true,
		Analytics:       true,
	}
}

// SettingsPatch is a shallow settings update; nil fields keep their current
// value.
type SettingsPatch struct {
	Theme           *string `json:"theme,omitempty"`
	Notifications   *bool   `json:"notifications,omitempty"`
	LocationSharing *bool   `json:"location_sharing,omitempty"`
	Analytics       *bool   `json:"analytics,omitempty"`
}

// QueueItem is one deferred mutating request awaiting replay. Items older
// than 24 hours that still fail replay are discarded by the sync pass.
type QueueItem struct {
	ID        string          `json:"id"`
	Method    string          `json:"method"`
	URL       string          `json:"url"`
	Body      json.RawMessage `json:"body,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
