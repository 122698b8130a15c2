package models

// Encounter is a user's logged experience with a strain.
type Encounter struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	User               *User     `json:"user,omitempty"`
	StrainID           int64     `json:"strain_id"`
	Strain             *Strain   `json:"strain,omitempty"`
	EncounteredAt      string    `json:"encountered_at"`
	TasteRating        int       `json:"taste_rating"`
	SmellRating        int       `json:"smell_rating"`
	TextureRating      int       `json:"texture_rating"`
	OverallRating      int       `json:"overall_rating"`
	PotencyRating      int       `json:"potency_rating"`
	Description        string    `json:"description,omitempty"`
	Experience         string    `json:"experience,omitempty"`
	EffectsExperienced []string  `json:"effects_experienced"`
	Location           *GeoPoint `json:"location,omitempty"`
	LocationName       string    `json:"location_name,omitempty"`
	SourceType         string    `json:"source_type,omitempty"` // dispensary|delivery|friend|home_grown|other
	SourceName         string    `json:"source_name,omitempty"`
	PricePaid          float64   `json:"price_paid,omitempty"`
	AmountPurchased    string    `json:"amount_purchased,omitempty"`
	Public             bool      `json:"public"`
	FriendsOnly        bool      `json:"friends_only"`
	CardImageURL       string    `json:"card_image_url,omitempty"`
	CardGenerated      bool      `json:"card_generated"`
	CreatedAt          string    `json:"created_at"`
	UpdatedAt          string    `json:"updated_at"`
	LikeCount          int       `json:"like_count,omitempty"`
	CommentCount       int       `json:"comment_count,omitempty"`
	IsLiked            bool      `json:"is_liked,omitempty"`
	Distance           float64   `json:"distance,omitempty"`
}

// LatLng is the coordinate pair accepted on encounter creation.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateEncounterData is the payload for logging a new encounter.
type CreateEncounterData struct {
	StrainID           int64    `json:"strain_id"`
	TasteRating        int      `json:"taste_rating"`
	SmellRating        int      `json:"smell_rating"`
	TextureRating      int      `json:"texture_rating"`
	OverallRating      int      `json:"overall_rating"`
	PotencyRating      int      `json:"potency_rating"`
	Description        string   `json:"description,omitempty"`
	Experience         string   `json:"experience,omitempty"`
	EffectsExperienced []string `json:"effects_experienced"`
	Location           *LatLng  `json:"location,omitempty"`
	LocationName       string   `json:"location_name,omitempty"`
	SourceType         string   `json:"source_type,omitempty"`
	SourceName         string   `json:"source_name,omitempty"`
	PricePaid          float64  `json:"price_paid,omitempty"`
	AmountPurchased    string   `json:"amount_purchased,omitempty"`
	Public             *bool    `json:"public,omitempty"`
	FriendsOnly        *bool    `json:"friends_only,omitempty"`
}

// EncounterPatch carries a partial encounter update; nil fields are left
// untouched by the backend.
type EncounterPatch struct {
	TasteRating        *int     `json:"taste_rating,omitempty"`
	SmellRating        *int     `json:"smell_rating,omitempty"`
	TextureRating      *int     `json:"texture_rating,omitempty"`
	OverallRating      *int     `json:"overall_rating,omitempty"`
	PotencyRating      *int     `json:"potency_rating,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Experience         *string  `json:"experience,omitempty"`
	EffectsExperienced []string `json:"effects_experienced,omitempty"`
	LocationName       *string  `json:"location_name,omitempty"`
	SourceType         *string  `json:"source_type,omitempty"`
	SourceName         *string  `json:"source_name,omitempty"`
	PricePaid          *float64 `json:"price_paid,omitempty"`
	AmountPurchased    *string  `json:"amount_purchased,omitempty"`
	Public             *bool    `json:"public,omitempty"`
	FriendsOnly        *bool    `json:"friends_only,omitempty"`
}

// EncounterFilters narrows encounter listings.
type EncounterFilters struct {
	UserID   int64 `url:"user_id,omitempty"`
	StrainID int64 `url:"strain_id,omitempty"`
	Page     int   `url:"page,omitempty"`
	Limit    int   `url:"limit,omitempty"`
}
