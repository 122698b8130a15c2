package models

// Battle statuses as the backend reports them. The client never drives this
// state machine; it only issues transition requests and reflects the result.
const (
	BattleStatusPending   = "pending"
	BattleStatusActive    = "active"
	BattleStatusCompleted = "completed"
	BattleStatusCancelled = "cancelled"
	BattleStatusExpired   = "expired"
)

// Battle is a peer challenge comparing two users' strain picks. All scoring
// and winner determination happens server-side.
type Battle struct {
	ID               int64          `json:"id"`
	ChallengerID     int64          `json:"challenger_id"`
	Challenger       *User          `json:"challenger,omitempty"`
	OpponentID       int64          `json:"opponent_id"`
	Opponent         *User          `json:"opponent,omitempty"`
	Status           string         `json:"status"`
	WinnerID         int64          `json:"winner_id,omitempty"`
	Winner           *User          `json:"winner,omitempty"`
	ChallengerScore  float64        `json:"challenger_score"`
	OpponentScore    float64        `json:"opponent_score"`
	Results          *BattleResults `json:"battle_results,omitempty"`
	BattledAt        string         `json:"battled_at,omitempty"`
	ExpiresAt        string         `json:"expires_at"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
	ChallengerStrains []BattleStrain `json:"challenger_strains"`
	OpponentStrains   []BattleStrain `json:"opponent_strains"`
	Rounds            []BattleRound  `json:"rounds"`
	CanAccept         bool           `json:"can_accept,omitempty"`
	CanDecline        bool           `json:"can_decline,omitempty"`
	CanCancel         bool           `json:"can_cancel,omitempty"`
}

// BattleResults is the backend's summary of a completed battle. Absent until
// the battle resolves.
type BattleResults struct {
	TotalRounds     int            `json:"total_rounds"`
	RoundsWon       RoundsWon      `json:"rounds_won"`
	DecisiveFactors []string       `json:"decisive_factors"`
	Notes           string         `json:"notes,omitempty"`
}

// RoundsWon splits round wins between the two sides.
type RoundsWon struct {
	Challenger int `json:"challenger"`
	Opponent   int `json:"opponent"`
}

// BattleStrain is one strain slotted into a battle lineup.
type BattleStrain struct {
	ID        int64   `json:"id"`
	BattleID  int64   `json:"battle_id"`
	UserID    int64   `json:"user_id"`
	StrainID  int64   `json:"strain_id"`
	Strain    *Strain `json:"strain,omitempty"`
	Position  int     `json:"position"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// SideScores is a per-category score pair within a round.
type SideScores struct {
	Challenger float64 `json:"challenger"`
	Opponent   float64 `json:"opponent"`
}

// RoundResults carries the server-computed category scores for one round.
type RoundResults struct {
	TasteScore   SideScores `json:"taste_score"`
	SmellScore   SideScores `json:"smell_score"`
	TextureScore SideScores `json:"texture_score"`
	PotencyScore SideScores `json:"potency_score"`
	OverallScore SideScores `json:"overall_score"`
	Notes        string     `json:"notes,omitempty"`
}

// BattleRound is one strain-vs-strain comparison within a battle.
type BattleRound struct {
	ID                 int64         `json:"id"`
	BattleID           int64         `json:"battle_id"`
	RoundNumber        int           `json:"round_number"`
	ChallengerStrainID int64         `json:"challenger_strain_id"`
	ChallengerStrain   *Strain       `json:"challenger_strain,omitempty"`
	OpponentStrainID   int64         `json:"opponent_strain_id"`
	OpponentStrain     *Strain       `json:"opponent_strain,omitempty"`
	WinnerStrainID     int64         `json:"winner_strain_id,omitempty"`
	WinnerStrain       *Strain       `json:"winner_strain,omitempty"`
	Results            *RoundResults `json:"round_results,omitempty"`
	CreatedAt          string        `json:"created_at"`
	UpdatedAt          string        `json:"updated_at"`
}

// CreateBattleData is the challenge payload. The UI enforces exactly three
// strain ids per product rule; the server is the authority.
type CreateBattleData struct {
	OpponentID int64   `json:"opponent_id"`
	Strains    []int64 `json:"strains"`
	Message    string  `json:"message,omitempty"`
}
