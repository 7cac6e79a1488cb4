package standardizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kol-manager-api/internal/domain"
)

func TestAnalyzeAudience(t *testing.T) {
	tests := []struct {
		name     string
		record   *domain.RawPlatformRecord
		validate func(t *testing.T, analyzed AnalyzedAudience)
	}{
		{
			name: "Todos os grupos presentes - qualidade máxima",
			record: &domain.RawPlatformRecord{
				AudienceLocation: "BR",
				MarketShares:     map[string]float64{"BR": 70, "PT": 20},
				AgeBrackets:      map[string]float64{"18-24": 40, "25-34": 30},
				GenderSplit:      map[string]float64{"female": 60, "male": 40},
				Interests:        []string{"Moda", "moda", "Beleza"},
			},
			validate: func(t *testing.T, analyzed AnalyzedAudience) {
				assert.Equal(t, 100.0, analyzed.Analysis.QualityScore)
				assert.Equal(t, 1.0, analyzed.Presence)
				assert.Equal(t, "BR", analyzed.Analysis.PrimaryMarket)
				assert.Equal(t, []string{"moda", "beleza"}, analyzed.Analysis.Interests)
			},
		},
		{
			name:   "Nenhum dado de audiência - score neutro",
			record: &domain.RawPlatformRecord{},
			validate: func(t *testing.T, analyzed AnalyzedAudience) {
				assert.Equal(t, 50.0, analyzed.Analysis.QualityScore)
				assert.Equal(t, 0.0, analyzed.Presence)
				assert.Equal(t, "unknown", analyzed.Analysis.PurchasingPower)
			},
		},
		{
			name: "Sem distribuição de mercados - usa a localização informada",
			record: &domain.RawPlatformRecord{
				AudienceLocation: "PT",
			},
			validate: func(t *testing.T, analyzed AnalyzedAudience) {
				assert.Equal(t, "PT", analyzed.Analysis.PrimaryMarket)
			},
		},
		{
			name: "Percentuais somando mais que cem - reescala proporcional",
			record: &domain.RawPlatformRecord{
				GenderSplit: map[string]float64{"female": 90, "male": 60},
			},
			validate: func(t *testing.T, analyzed AnalyzedAudience) {
				assert.Equal(t, 60.0, analyzed.Analysis.GenderSplit["female"])
				assert.Equal(t, 40.0, analyzed.Analysis.GenderSplit["male"])
			},
		},
		{
			name: "Faixa etária fora do conjunto fixo - descartada",
			record: &domain.RawPlatformRecord{
				AgeBrackets: map[string]float64{"18-24": 50, "12-15": 10},
			},
			validate: func(t *testing.T, analyzed AnalyzedAudience) {
				assert.Contains(t, analyzed.Analysis.AgeBrackets, "18-24")
				assert.NotContains(t, analyzed.Analysis.AgeBrackets, "12-15")
			},
		},
		{
			name: "Poder de compra - faixas de maior consumo dominantes",
			record: &domain.RawPlatformRecord{
				AgeBrackets: map[string]float64{"25-34": 30, "35-44": 15},
			},
			validate: func(t *testing.T, analyzed AnalyzedAudience) {
				assert.Equal(t, "high", analyzed.Analysis.PurchasingPower)
			},
		},
		{
			name: "Poder de compra baixo - audiência jovem demais",
			record: &domain.RawPlatformRecord{
				AgeBrackets: map[string]float64{"13-17": 60, "18-24": 30},
			},
			validate: func(t *testing.T, analyzed AnalyzedAudience) {
				assert.Equal(t, "low", analyzed.Analysis.PurchasingPower)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, AnalyzeAudience(tt.record))
		})
	}
}

func TestPrimaryMarketTieBreak(t *testing.T) {
	// Empate de participação resolve por ordem alfabética para manter o
	// resultado determinístico
	market := primaryMarket(map[string]float64{"PT": 50, "BR": 50}, "")
	assert.Equal(t, "BR", market)
}
