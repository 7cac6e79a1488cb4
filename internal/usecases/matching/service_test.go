package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kol-manager-api/internal/domain"
)

func testClock() time.Time {
	return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
}

func fullReport() *domain.StandardizedKOLReport {
	return &domain.StandardizedKOLReport{
		KolID:    "youtube:yt-1",
		Platform: domain.PlatformYouTube,
		Metrics: domain.KolMetrics{
			Followers:          1200000,
			EngagementRate:     4.2,
			PostingConsistency: 100,
		},
		Audience: domain.AudienceAnalysis{
			PrimaryMarket: "BR",
			MarketShares:  map[string]float64{"BR": 60, "PT": 20},
			AgeBrackets:   map[string]float64{"18-24": 30, "25-34": 35},
			GenderSplit:   map[string]float64{"female": 55, "male": 43, "other": 2},
			Interests:     []string{"tecnologia", "games"},
		},
		Content: domain.ContentAnalysis{
			Categories: []string{"tecnologia", "games", "reviews"},
			Styles:     []string{"video", "tutorial"},
		},
	}
}

func alignedBrand() *domain.BrandProfile {
	return &domain.BrandProfile{
		ID:         "brand-1",
		Name:       "TechCo",
		HomeMarket: "BR",
		Tone: domain.BrandTone{
			Personality:        domain.PersonalityProfessional,
			CommunicationStyle: "educational",
			Keywords:           []string{"tecnologia"},
		},
		TargetAudience: domain.TargetAudience{
			AgeRanges:          []string{"18-24", "25-34"},
			GenderDistribution: map[string]float64{"female": 50, "male": 50},
			Locations:          []string{"BR"},
			Interests:          []string{"games"},
		},
		PreferredContent: []domain.ContentType{domain.ContentTypeVideo},
		TargetMarkets:    []string{"BR"},
	}
}

func TestMatch(t *testing.T) {
	matcher := NewService(domain.DefaultMatchWeights(), WithClock(testClock))

	tests := []struct {
		name     string
		report   *domain.StandardizedKOLReport
		brand    *domain.BrandProfile
		validate func(t *testing.T, score *domain.InfluencerMatchScore)
	}{
		{
			name:   "Marca e influenciador alinhados - score alto com recomendações",
			report: fullReport(),
			brand:  alignedBrand(),
			validate: func(t *testing.T, score *domain.InfluencerMatchScore) {
				assert.Equal(t, "youtube:yt-1", score.KolID)
				assert.Equal(t, "brand-1", score.BrandID)

				assert.Equal(t, 0.68, score.Categories.BrandToneMatch)
				assert.Equal(t, 0.96, score.Categories.AudienceMatch)
				assert.Equal(t, 0.93, score.Categories.ContentTypeMatch)
				assert.Equal(t, 0.9, score.Categories.MarketReach)
				assert.Equal(t, 0.87, score.Categories.EngagementPotential)
				assert.Equal(t, 0.86, score.OverallScore)

				assert.Len(t, score.Recommendations, 3)
				assert.Empty(t, score.RiskFactors)
				assert.Equal(t, testClock(), score.ComputedAt)
			},
		},
		{
			name:   "Marca sem declarações e perfil vazio - neutros e fatores de risco",
			report: &domain.StandardizedKOLReport{KolID: "instagram:ig-0"},
			brand:  &domain.BrandProfile{ID: "brand-2"},
			validate: func(t *testing.T, score *domain.InfluencerMatchScore) {
				assert.Equal(t, 0.5, score.Categories.BrandToneMatch)
				assert.Equal(t, 0.5, score.Categories.AudienceMatch)
				assert.Equal(t, 0.33, score.Categories.ContentTypeMatch)
				assert.Equal(t, 0.47, score.Categories.MarketReach)
				assert.Equal(t, 0.43, score.Categories.EngagementPotential)
				assert.Equal(t, 0.45, score.OverallScore)

				assert.Empty(t, score.Recommendations)
				assert.Len(t, score.RiskFactors, 2)
			},
		},
		{
			name: "Interesses da marca comparados com os tópicos de conteúdo",
			report: func() *domain.StandardizedKOLReport {
				report := fullReport()
				report.Content.Categories = []string{"games", "tecnologia"}
				report.Audience.Interests = []string{"moda"}
				return report
			}(),
			brand: &domain.BrandProfile{
				ID: "brand-4",
				TargetAudience: domain.TargetAudience{
					Interests: []string{"games"},
				},
			},
			validate: func(t *testing.T, score *domain.InfluencerMatchScore) {
				// o termo alvo existe nos tópicos de conteúdo, mesmo ausente
				// dos interesses declarados da audiência
				assert.Equal(t, 1.0, score.Analysis.Audience.InterestOverlap)
			},
		},
		{
			name:   "Audiência fora do alvo - score de gênero penalizado",
			report: fullReport(),
			brand: &domain.BrandProfile{
				ID: "brand-3",
				TargetAudience: domain.TargetAudience{
					GenderDistribution: map[string]float64{"female": 90, "male": 10},
				},
			},
			validate: func(t *testing.T, score *domain.InfluencerMatchScore) {
				// distância |90-55| + |10-43| = 68 -> 1 - 68/200
				assert.Equal(t, 0.66, score.Analysis.Audience.GenderMatch)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, matcher.Match(tt.report, tt.brand))
		})
	}
}

func TestMatchWeightsVersionStamped(t *testing.T) {
	weights := domain.DefaultMatchWeights()
	matcher := NewService(weights, WithClock(testClock))

	score := matcher.Match(fullReport(), alignedBrand())
	assert.Equal(t, weights.Version, score.WeightsVersion)
}

func TestPersonalityMatch(t *testing.T) {
	tests := []struct {
		name        string
		personality domain.BrandPersonality
		styles      []string
		expected    float64
	}{
		{name: "Estilo aceitável para a personalidade", personality: domain.PersonalityProfessional, styles: []string{"tutorial"}, expected: 0.8},
		{name: "Nenhum estilo aceitável", personality: domain.PersonalityLuxurious, styles: []string{"humor"}, expected: 0.3},
		{name: "Personalidade fora da tabela - neutro", personality: "desconhecida", styles: []string{"vlog"}, expected: 0.5},
		{name: "Comparação sem diferenciar caixa", personality: domain.PersonalityYouthful, styles: []string{"VLOG"}, expected: 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, personalityMatch(tt.personality, tt.styles))
		})
	}
}

func TestFollowerLadder(t *testing.T) {
	tests := []struct {
		name      string
		followers int64
		expected  float64
	}{
		{name: "Mega influenciador", followers: 1500000, expected: 0.9},
		{name: "Limite de um milhão fica na faixa anterior", followers: 1000000, expected: 0.8},
		{name: "Acima de quinhentos mil", followers: 600000, expected: 0.8},
		{name: "Acima de cem mil", followers: 250000, expected: 0.7},
		{name: "Acima de cinquenta mil", followers: 80000, expected: 0.6},
		{name: "Base pequena", followers: 9000, expected: 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, followerLadder(tt.followers))
		})
	}
}

func TestSubstringOverlap(t *testing.T) {
	tests := []struct {
		name       string
		brandTerms []string
		kolTerms   []string
		expected   float64
	}{
		{name: "Marca sem termos - neutro", brandTerms: nil, kolTerms: []string{"moda"}, expected: 0.5},
		{name: "Todos os termos encontrados", brandTerms: []string{"tec"}, kolTerms: []string{"tecnologia"}, expected: 1.0},
		{name: "Metade dos termos encontrados", brandTerms: []string{"moda", "esporte"}, kolTerms: []string{"moda"}, expected: 0.5},
		{name: "Nenhum termo encontrado", brandTerms: []string{"finanças"}, kolTerms: []string{"games"}, expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, substringOverlap(tt.brandTerms, tt.kolTerms))
		})
	}
}
