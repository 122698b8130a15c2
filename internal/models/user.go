// Package models mirrors the Cannadex backend resources consumed by the
// client. The backend is the schema source of truth: these types transport
// and cache values, they do not compute or validate business invariants.
package models

// GeoPoint is a GeoJSON point as the backend serializes locations.
// Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// User is a Cannadex account as returned by the backend.
type User struct {
	ID                          int64     `json:"id"`
	FirstName                   string    `json:"first_name"`
	LastName                    string    `json:"last_name"`
	Username                    string    `json:"username"`
	Email                       string    `json:"email"`
	Phone                       string    `json:"phone,omitempty"`
	AvatarURL                   string    `json:"avatar_url,omitempty"`
	Bio                         string    `json:"bio,omitempty"`
	DateOfBirth                 string    `json:"date_of_birth"`
	AgeVerified                 bool      `json:"age_verified"`
	AgeVerifiedAt               string    `json:"age_verified_at,omitempty"`
	ProfilePublic               bool      `json:"profile_public"`
	LocationSharingEnabled      bool      `json:"location_sharing_enabled"`
	BattleNotifications         bool      `json:"battle_notifications"`
	EmailNotifications          bool      `json:"email_notifications"`
	PushNotifications           bool      `json:"push_notifications"`
	FriendRequestNotifications  bool      `json:"friend_request_notifications"`
	AchievementNotifications    bool      `json:"achievement_notifications"`
	ShowLocationInProfile       bool      `json:"show_location_in_profile"`
	DiscoverableByUsername      bool      `json:"discoverable_by_username"`
	DiscoverableByLocation      bool      `json:"discoverable_by_location"`
	TotalEncounters             int       `json:"total_encounters"`
	BattlesWon                  int       `json:"battles_won"`
	BattlesLost                 int       `json:"battles_lost"`
	Level                       int       `json:"level"`
	ExperiencePoints            int       `json:"experience_points"`
	Location                    *GeoPoint `json:"location,omitempty"`
	City                        string    `json:"city,omitempty"`
	State                       string    `json:"state,omitempty"`
	Country                     string    `json:"country,omitempty"`
	CreatedAt                   string    `json:"created_at"`
	UpdatedAt                   string    `json:"updated_at"`
	IsOnline                    bool      `json:"is_online,omitempty"`
	LastSeen                    string    `json:"last_seen,omitempty"`
	Distance                    float64   `json:"distance,omitempty"` // populated for nearby lookups
}

// BattleStats summarizes a user's battle history on their profile.
type BattleStats struct {
	TotalBattles     int   `json:"total_battles"`
	WinRate          float64 `json:"win_rate"`
	FavoriteOpponent *User `json:"favorite_opponent,omitempty"`
}

// UserProfile is the expanded profile view of a user.
type UserProfile struct {
	User
	RecentEncounters []Encounter   `json:"recent_encounters"`
	Achievements     []Achievement `json:"achievements"`
	BattleStats      *BattleStats  `json:"battle_stats,omitempty"`
	FavoriteStrains  []Strain      `json:"favorite_strains"`
	FriendStatus     string        `json:"friend_status,omitempty"` // none|pending|friends|requested
}

// RegisterData is the payload for account creation.
type RegisterData struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth string `json:"date_of_birth"`
	Phone       string `json:"phone,omitempty"`
}

// UserPatch carries a partial profile update. Nil fields are omitted from
// the request body, so the backend only touches what was set.
type UserPatch struct {
	FirstName              *string `json:"first_name,omitempty"`
	LastName               *string `json:"last_name,omitempty"`
	Bio                    *string `json:"bio,omitempty"`
	Phone                  *string `json:"phone,omitempty"`
	ProfilePublic          *bool   `json:"profile_public,omitempty"`
	LocationSharingEnabled *bool   `json:"location_sharing_enabled,omitempty"`
	BattleNotifications    *bool   `json:"battle_notifications,omitempty"`
	EmailNotifications     *bool   `json:"email_notifications,omitempty"`
	PushNotifications      *bool   `json:"push_notifications,omitempty"`
	FCMToken               *string `json:"fcm_token,omitempty"`
}
