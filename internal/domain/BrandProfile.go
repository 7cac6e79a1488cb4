package domain

import "time"

// BrandPersonality é a personalidade declarada de uma marca
type BrandPersonality string

const (
	PersonalityYouthful     BrandPersonality = "youthful"
	PersonalityProfessional BrandPersonality = "professional"
	PersonalityLuxurious    BrandPersonality = "luxurious"
	PersonalityPlayful      BrandPersonality = "playful"
	PersonalityTrustworthy  BrandPersonality = "trustworthy"
	PersonalityAdventurous  BrandPersonality = "adventurous"
	PersonalityMinimalist   BrandPersonality = "minimalist"
)

// BrandTone descreve o tom declarado da marca
type BrandTone struct {
	Personality        BrandPersonality `json:"personality"`
	CommunicationStyle string           `json:"communication_style"`
	VisualStyle        string           `json:"visual_style"`
	Keywords           []string         `json:"keywords"`
}

// TargetAudience descreve a audiência alvo da marca
type TargetAudience struct {
	AgeRanges          []string           `json:"age_ranges"`
	GenderDistribution map[string]float64 `json:"gender_distribution"`
	Locations          []string           `json:"locations"`
	Interests          []string           `json:"interests"`
	IncomeLevel        string             `json:"income_level"`
}

// BudgetRange é a faixa de orçamento da marca para campanhas
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BrandProfile é o perfil de uma marca usado pelo matcher. Entrada somente
// leitura do motor: criado e editado pela camada de gestão de marcas.
type BrandProfile struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Industry          string         `json:"industry"`
	HomeMarket        string         `json:"home_market"`
	Tone              BrandTone      `json:"tone"`
	TargetAudience    TargetAudience `json:"target_audience"`
	CampaignGoals     []string       `json:"campaign_goals"`
	PreferredContent  []ContentType  `json:"preferred_content"`
	TargetMarkets     []string       `json:"target_markets"`
	Budget            BudgetRange    `json:"budget"`
	ProductComplexity string         `json:"product_complexity"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// UpdateBrandProfileRequest carrega alterações parciais de um perfil de marca
type UpdateBrandProfileRequest struct {
	ID                string          `json:"id"`
	Name              *string         `json:"name"`
	Industry          *string         `json:"industry"`
	HomeMarket        *string         `json:"home_market"`
	Tone              *BrandTone      `json:"tone"`
	TargetAudience    *TargetAudience `json:"target_audience"`
	CampaignGoals     []string        `json:"campaign_goals"`
	PreferredContent  []ContentType   `json:"preferred_content"`
	TargetMarkets     []string        `json:"target_markets"`
	Budget            *BudgetRange    `json:"budget"`
	ProductComplexity *string         `json:"product_complexity"`
}
