package models

// UserStats is the personal dashboard aggregate.
type UserStats struct {
	TotalEncounters      int     `json:"total_encounters"`
	UniqueStrains        int     `json:"unique_strains"`
	BattlesWon           int     `json:"battles_won"`
	BattlesLost          int     `json:"battles_lost"`
	WinRate              float64 `json:"win_rate"`
	Level                int     `json:"level"`
	ExperiencePoints     int     `json:"experience_points"`
	AchievementsUnlocked int     `json:"achievements_unlocked"`
	FriendsCount         int     `json:"friends_count"`
	FavoriteEffect       string  `json:"favorite_effect,omitempty"`
}

// CommunityStats is the global dashboard aggregate.
type CommunityStats struct {
	TotalUsers      int      `json:"total_users"`
	TotalEncounters int      `json:"total_encounters"`
	TotalBattles    int      `json:"total_battles"`
	TopStrains      []Strain `json:"top_strains"`
	TrendingEffects []string `json:"trending_effects"`
}

// SearchResults is the payload of a global search, grouped per resource.
type SearchResults struct {
	Users      []User      `json:"users"`
	Strains    []Strain    `json:"strains"`
	Encounters []Encounter `json:"encounters"`
}
