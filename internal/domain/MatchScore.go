package domain

import "time"

// MatchCategoryScores traz as cinco categorias do score de compatibilidade,
// todas na escala 0–1
type MatchCategoryScores struct {
	BrandToneMatch      float64 `json:"brand_tone_match"`
	AudienceMatch       float64 `json:"audience_match"`
	ContentTypeMatch    float64 `json:"content_type_match"`
	MarketReach         float64 `json:"market_reach"`
	EngagementPotential float64 `json:"engagement_potential"`
}

// BrandToneDetail detalha a categoria de tom de marca
type BrandToneDetail struct {
	PersonalityMatch   float64 `json:"personality_match"`
	CommunicationMatch float64 `json:"communication_match"`
	VisualMatch        float64 `json:"visual_match"`
	KeywordOverlap     float64 `json:"keyword_overlap"`
}

// AudienceDetail detalha a categoria de audiência
type AudienceDetail struct {
	AgeMatch        float64 `json:"age_match"`
	GenderMatch     float64 `json:"gender_match"`
	LocationMatch   float64 `json:"location_match"`
	InterestOverlap float64 `json:"interest_overlap"`
}

// ContentTypeDetail detalha a categoria de formato de conteúdo
type ContentTypeDetail struct {
	ContentTypePreference float64 `json:"content_type_preference"`
	ContentQuality        float64 `json:"content_quality"`
	ContentConsistency    float64 `json:"content_consistency"`
}

// MarketReachDetail detalha a categoria de alcance de mercado
type MarketReachDetail struct {
	MarketPresence    float64 `json:"market_presence"`
	LocalInfluence    float64 `json:"local_influence"`
	CulturalRelevance float64 `json:"cultural_relevance"`
}

// EngagementDetail detalha a categoria de potencial de engajamento
type EngagementDetail struct {
	ReachPotential      float64 `json:"reach_potential"`
	EngagementRateScore float64 `json:"engagement_rate_score"`
	AudienceRetention   float64 `json:"audience_retention"`
}

// MatchAnalysis espelha as cinco categorias com seus sub-scores
type MatchAnalysis struct {
	BrandTone   BrandToneDetail   `json:"brand_tone"`
	Audience    AudienceDetail    `json:"audience"`
	ContentType ContentTypeDetail `json:"content_type"`
	MarketReach MarketReachDetail `json:"market_reach"`
	Engagement  EngagementDetail  `json:"engagement"`
}

// InfluencerMatchScore é o artefato de compatibilidade entre um influenciador
// e uma marca. Calculado sob demanda; a persistência é responsabilidade de
// quem chama, nunca do motor.
type InfluencerMatchScore struct {
	KolID           string              `json:"kol_id"`
	BrandID         string              `json:"brand_id"`
	OverallScore    float64             `json:"overall_score"`
	Categories      MatchCategoryScores `json:"categories"`
	Analysis        MatchAnalysis       `json:"analysis"`
	Recommendations []string            `json:"recommendations"`
	RiskFactors     []string            `json:"risk_factors"`
	WeightsVersion  string              `json:"weights_version"`
	ComputedAt      time.Time           `json:"computed_at"`
}
