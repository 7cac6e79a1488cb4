package domain

import (
	"fmt"
	"math"
)

// ScoringWeights é a tabela versionada de pesos das oito dimensões de
// avaliação. A soma dos pesos deve ser exatamente 1.0.
type ScoringWeights struct {
	Version         string  `json:"version"`
	BrandFit        float64 `json:"brand_fit"`
	ContentQuality  float64 `json:"content_quality"`
	Engagement      float64 `json:"engagement"`
	AudienceProfile float64 `json:"audience_profile"`
	Professionalism float64 `json:"professionalism"`
	BusinessAbility float64 `json:"business_ability"`
	BrandSafety     float64 `json:"brand_safety"`
	Stability       float64 `json:"stability"`
}

// DefaultScoringWeights retorna a tabela de pesos padrão das dimensões
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Version:         "2024-01",
		BrandFit:        0.15,
		ContentQuality:  0.20,
		Engagement:      0.15,
		AudienceProfile: 0.10,
		Professionalism: 0.15,
		BusinessAbility: 0.10,
		BrandSafety:     0.10,
		Stability:       0.05,
	}
}

// Validate garante que os pesos somam 1.0 (tolerância de arredondamento)
func (w ScoringWeights) Validate() error {
	sum := w.BrandFit + w.ContentQuality + w.Engagement + w.AudienceProfile +
		w.Professionalism + w.BusinessAbility + w.BrandSafety + w.Stability
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("pesos de avaliação devem somar 1.0, soma atual: %.4f (versão %s)", sum, w.Version)
	}
	return nil
}

// MatchWeights é a tabela versionada de pesos das cinco categorias do score
// de compatibilidade marca/influenciador. A soma deve ser exatamente 1.0.
type MatchWeights struct {
	Version             string  `json:"version"`
	BrandToneMatch      float64 `json:"brand_tone_match"`
	AudienceMatch       float64 `json:"audience_match"`
	ContentTypeMatch    float64 `json:"content_type_match"`
	MarketReach         float64 `json:"market_reach"`
	EngagementPotential float64 `json:"engagement_potential"`
}

// DefaultMatchWeights retorna a tabela de pesos padrão do matcher
func DefaultMatchWeights() MatchWeights {
	return MatchWeights{
		Version:             "2024-01",
		BrandToneMatch:      0.25,
		AudienceMatch:       0.25,
		ContentTypeMatch:    0.20,
		MarketReach:         0.15,
		EngagementPotential: 0.15,
	}
}

// Validate garante que os pesos somam 1.0 (tolerância de arredondamento)
func (w MatchWeights) Validate() error {
	sum := w.BrandToneMatch + w.AudienceMatch + w.ContentTypeMatch +
		w.MarketReach + w.EngagementPotential
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("pesos de compatibilidade devem somar 1.0, soma atual: %.4f (versão %s)", sum, w.Version)
	}
	return nil
}
