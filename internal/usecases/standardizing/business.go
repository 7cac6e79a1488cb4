package standardizing

import (
	"fmt"
	"math"

	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/pkg/utils"
)

// AnalyzedBusiness agrupa a análise comercial e a fração de grupos de dados
// observados
type AnalyzedBusiness struct {
	Analysis domain.BusinessAnalysis
	Presence float64
}

// AnalyzeBusiness estima valor de mercado, facetas de colaboração e de
// conversão a partir do registro normalizado, das métricas e da qualidade de
// audiência já calculada.
func AnalyzeBusiness(record *domain.RawPlatformRecord, metrics domain.KolMetrics, audienceQuality float64) AnalyzedBusiness {
	cpm := baseCPM(record.FollowerCount)
	if metrics.EngagementRate > 3 {
		cpm = cpm * 1.2
	}

	cpe := 0.0
	if metrics.EngagementRate > 0 {
		cpe = cpm / metrics.EngagementRate
	}

	analysis := domain.BusinessAnalysis{
		MarketValue: domain.MarketValue{
			CPM:          utils.RoundWithTwoDecimalPlace(cpm),
			CPV:          utils.RoundWithTwoDecimalPlace(cpm / 10),
			CPE:          utils.RoundWithTwoDecimalPlace(cpe),
			ROIPotential: roiPotential(metrics),
		},
		Responsiveness:      responsivenessScore(metrics),
		ContentFlexibility:  contentFlexibilityScore(record),
		DeadlineReliability: utils.RoundWithTwoDecimalPlace(clampScore(metrics.PostingConsistency*0.8 + 12)),
		PriceFairness:       priceFairnessScore(record.FollowerCount),
		ClickPotential:      utils.RoundWithTwoDecimalPlace(clampScore(metrics.EngagementRate*12 + 30)),
		ConversionPotential: utils.RoundWithTwoDecimalPlace(clampScore(metrics.EngagementRate*10 + audienceQuality*0.3)),
		RepurchaseAffinity:  utils.RoundWithTwoDecimalPlace(clampScore(50 + (metrics.PostingConsistency-50)*0.4)),
		Recommendation:      businessRecommendation(record, metrics, cpm),
	}

	present := 0
	if record.FollowerCount > 0 {
		present++
	}
	if metrics.EngagementRate > 0 {
		present++
	}
	if metrics.PostsPerWeek > 0 {
		present++
	}

	return AnalyzedBusiness{
		Analysis: analysis,
		Presence: float64(present) / 3,
	}
}

// baseCPM segue a escada de porte do influenciador
func baseCPM(followers int64) float64 {
	switch {
	case followers > 1_000_000:
		return 20
	case followers > 500_000:
		return 15
	case followers > 100_000:
		return 10
	case followers > 50_000:
		return 7
	default:
		return 5
	}
}

// roiPotential combina engajamento com tendência de crescimento mensal
func roiPotential(metrics domain.KolMetrics) float64 {
	score := 50.0
	switch {
	case metrics.EngagementRate > 5:
		score = 85
	case metrics.EngagementRate > 3:
		score = 75
	case metrics.EngagementRate > 1:
		score = 60
	case metrics.EngagementRate == 0:
		score = 50
	default:
		score = 45
	}

	if metrics.Growth.Monthly > 0 {
		score += 5
	}
	if metrics.Growth.Monthly < 0 {
		score -= 10
	}

	return utils.RoundWithTwoDecimalPlace(clampScore(score))
}

func responsivenessScore(metrics domain.KolMetrics) float64 {
	if metrics.PostsPerWeek == 0 {
		return 50
	}

	score := 50 + metrics.PostsPerWeek*6
	if score > 80 {
		score = 80
	}

	return utils.RoundWithTwoDecimalPlace(score)
}

// contentFlexibilityScore cresce com os formatos suportados pela plataforma e
// os estilos declarados
func contentFlexibilityScore(record *domain.RawPlatformRecord) float64 {
	score := 40 + 10*float64(len(record.Platform.ContentTypes())) + 5*float64(len(record.ContentStyles))
	return utils.RoundWithTwoDecimalPlace(clampScore(score))
}

// priceFairnessScore: quanto maior o porte, mais caro o post e menor a folga
// de negociação
func priceFairnessScore(followers int64) float64 {
	switch {
	case followers > 1_000_000:
		return 55
	case followers > 100_000:
		return 70
	default:
		return 80
	}
}

func businessRecommendation(record *domain.RawPlatformRecord, metrics domain.KolMetrics, cpm float64) domain.BusinessRecommendation {
	campaignTypes := make([]string, 0, 3)
	if record.FollowerCount > 500_000 {
		campaignTypes = append(campaignTypes, "brand_awareness")
	}
	if metrics.EngagementRate > 3 {
		campaignTypes = append(campaignTypes, "conversion")
	}
	if record.FollowerCount <= 100_000 {
		campaignTypes = append(campaignTypes, "product_seeding")
	}
	if len(campaignTypes) == 0 {
		campaignTypes = append(campaignTypes, "content_partnership")
	}

	// Estimativa de valor por publicação: CPM x alcance estimado (milhares)
	perPost := cpm * float64(record.FollowerCount) / 1000
	budget := fmt.Sprintf("R$ %s – R$ %s", formatMoney(perPost*0.8), formatMoney(perPost*1.2))

	notes := "estimativas derivadas de porte e engajamento; validar com mídia kit do influenciador"
	if metrics.EngagementRate == 0 {
		notes = "sem dados de engajamento; estimativas apenas pelo porte da base"
	}

	return domain.BusinessRecommendation{
		CampaignTypes: campaignTypes,
		BudgetRange:   budget,
		Notes:         notes,
	}
}

func formatMoney(value float64) string {
	return fmt.Sprintf("%.0f", math.Max(value, 0))
}
