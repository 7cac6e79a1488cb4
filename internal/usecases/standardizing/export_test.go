package standardizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kol-manager-api/internal/domain"
)

func TestFlattenReport(t *testing.T) {
	report := &domain.StandardizedKOLReport{
		Name:     "Canal Tech",
		Platform: domain.PlatformYouTube,
		URL:      "https://youtube.com/@canaltech",
		Metrics: domain.KolMetrics{
			FollowersFormatted: "1.2M",
			EngagementRate:     4.2,
			PostsPerWeek:       1.14,
			Growth:             domain.GrowthMetrics{Monthly: 15000},
		},
		Evaluation: domain.KolEvaluation{
			Grade:          domain.GradeAMinus,
			WeightedScore:  82.6,
			Recommendation: domain.TierRecommended,
		},
		Audience: domain.AudienceAnalysis{
			PrimaryMarket:   "BR",
			PurchasingPower: "high",
		},
		Content: domain.ContentAnalysis{
			Categories: []string{"tecnologia", "games"},
		},
		Risk: domain.RiskAnalysis{OverallTier: domain.RiskTierMedium},
		Metadata: domain.ReportMetadata{
			Confidence:  0.95,
			GeneratedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	fields := FlattenReport(report)

	byLabel := make(map[string]string, len(fields))
	for _, field := range fields {
		byLabel[field.Label] = field.Value
	}

	assert.Equal(t, "Canal Tech", byLabel["Influenciador"])
	assert.Equal(t, "youtube", byLabel["Plataforma"])
	assert.Equal(t, "1.2M", byLabel["Seguidores"])
	assert.Equal(t, "4.20%", byLabel["Taxa de engajamento"])
	assert.Equal(t, "+15000", byLabel["Crescimento mensal"])
	assert.Equal(t, "A-", byLabel["Nota geral"])
	assert.Equal(t, "82.60", byLabel["Score ponderado"])
	assert.Equal(t, "tecnologia, games", byLabel["Categorias de conteúdo"])
	assert.Equal(t, "95%", byLabel["Confiabilidade dos dados"])
	assert.Equal(t, "2024-03-01 10:00", byLabel["Gerado em"])

	// A ordem de leitura começa pela identidade do influenciador
	assert.Equal(t, "Influenciador", fields[0].Label)
}
