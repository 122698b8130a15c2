package models

// Friendship statuses.
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipBlocked  = "blocked"
)

// Friendship is an edge in the friendship graph, from the perspective of
// the requesting user.
type Friendship struct {
	ID                 int64  `json:"id"`
	UserID             int64  `json:"user_id"`
	User               *User  `json:"user,omitempty"`
	FriendID           int64  `json:"friend_id"`
	Friend             *User  `json:"friend,omitempty"`
	Status             string `json:"status"`
	RequestedAt        string `json:"requested_at"`
	AcceptedAt         string `json:"accepted_at,omitempty"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
	MutualFriendsCount int    `json:"mutual_friends_count,omitempty"`
	CanAccept          bool   `json:"can_accept,omitempty"`
	CanReject          bool   `json:"can_reject,omitempty"`
}

// Achievement is a gamification milestone with unlock/claim state.
type Achievement struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"user_id"`
	AchievementType    string  `json:"achievement_type"` // encounters|battles|social|exploration|rating|special
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Progress           int     `json:"progress"`
	Goal               int     `json:"goal"`
	RewardDescription  string  `json:"reward_description,omitempty"`
	XPReward           int     `json:"xp_reward"`
	BadgeImageURL      string  `json:"badge_image_url,omitempty"`
	IsUnlocked         bool    `json:"is_unlocked"`
	IsClaimed          bool    `json:"is_claimed"`
	UnlockedAt         string  `json:"unlocked_at,omitempty"`
	ClaimedAt          string  `json:"claimed_at,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
	ProgressPercentage float64 `json:"progress_percentage"`
	Category           string  `json:"category"` // bronze|silver|gold|platinum|special
}
