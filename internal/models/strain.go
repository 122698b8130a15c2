package models

// Category groups strains by type, effect, or flavor profile.
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	CategoryType string `json:"category_type"` // strain_type|effect_category|flavor_profile
	Active       bool   `json:"active"`
	StrainsCount int    `json:"strains_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// CommunityStrainStats is the aggregate the backend attaches to a strain
// detail view.
type CommunityStrainStats struct {
	TotalEncounters    int                   `json:"total_encounters"`
	CommonEffects      []EffectFrequency     `json:"common_effects"`
	RatingDistribution map[string]int        `json:"rating_distribution"`
	RecentActivity     int                   `json:"recent_activity"`
}

// EffectFrequency is one entry of a strain's common-effects breakdown.
type EffectFrequency struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// Strain is a catalog entry.
type Strain struct {
	ID                    int64                 `json:"id"`
	Name                  string                `json:"name"`
	Description           string                `json:"description,omitempty"`
	ImageURL              string                `json:"image_url,omitempty"`
	CategoryID            int64                 `json:"category_id"`
	Category              *Category             `json:"category,omitempty"`
	Genetics              string                `json:"genetics,omitempty"`
	THCPercentage         float64               `json:"thc_percentage,omitempty"`
	CBDPercentage         float64               `json:"cbd_percentage,omitempty"`
	Effects               []string              `json:"effects"`
	Flavors               []string              `json:"flavors"`
	MedicalUses           []string              `json:"medical_uses"`
	EncountersCount       int                   `json:"encounters_count"`
	AverageTasteRating    float64               `json:"average_taste_rating"`
	AverageSmellRating    float64               `json:"average_smell_rating"`
	AverageTextureRating  float64               `json:"average_texture_rating"`
	AverageOverallRating  float64               `json:"average_overall_rating"`
	AveragePotencyRating  float64               `json:"average_potency_rating"`
	Verified              bool                  `json:"verified"`
	DataSource            string                `json:"data_source"` // user_contributed|verified|imported
	CreatedAt             string                `json:"created_at"`
	UpdatedAt             string                `json:"updated_at"`
	UserEncounter         *Encounter            `json:"user_encounter,omitempty"`
	IsFavorite            bool                  `json:"is_favorite,omitempty"`
	CommunityStats        *CommunityStrainStats `json:"community_stats,omitempty"`
}

// StrainFilters narrows strain listings. The url tags drive query-string
// encoding; zero values are omitted.
type StrainFilters struct {
	CategoryID   int64    `url:"category_id,omitempty"`
	Search       string   `url:"search,omitempty"`
	Effects      []string `url:"effects,omitempty"`
	Flavors      []string `url:"flavors,omitempty"`
	THCMin       float64  `url:"thc_min,omitempty"`
	THCMax       float64  `url:"thc_max,omitempty"`
	CBDMin       float64  `url:"cbd_min,omitempty"`
	CBDMax       float64  `url:"cbd_max,omitempty"`
	VerifiedOnly bool     `url:"verified_only,omitempty"`
	MinRating    float64  `url:"min_rating,omitempty"`
	SortBy       string   `url:"sort_by,omitempty"`    // name|rating|encounters|created_at|popularity
	SortOrder    string   `url:"sort_order,omitempty"` // asc|desc
	Page         int      `url:"page,omitempty"`
	Limit        int      `url:"limit,omitempty"`
}
