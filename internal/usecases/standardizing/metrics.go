package standardizing

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/pkg/utils"
)

// Horizontes fixos de crescimento, em deslocamento de dias
const (
	horizonDaily     = 1
	horizonWeekly    = 7
	horizonMonthly   = 30
	horizonQuarterly = 90
	horizonYearly    = 365
)

// ExtractedMetrics agrupa as métricas derivadas e a fração de grupos de dados
// efetivamente observados (usada nos indicadores de qualidade do relatório)
type ExtractedMetrics struct {
	Metrics  domain.KolMetrics
	Presence float64
}

// FormatFollowers formata a contagem de seguidores com sufixo legível:
// 999 -> "999", 1500 -> "1.5K", 2500000 -> "2.5M"
func FormatFollowers(count int64) string {
	switch {
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK", float64(count)/1_000)
	default:
		return strconv.FormatInt(count, 10)
	}
}

// ExtractMetrics deriva as métricas padronizadas de um registro normalizado.
// Determinística: o mesmo registro produz sempre as mesmas métricas.
func ExtractMetrics(record *domain.RawPlatformRecord) ExtractedMetrics {
	metrics := domain.KolMetrics{
		Followers:          record.FollowerCount,
		FollowersFormatted: FormatFollowers(record.FollowerCount),
		AvgLikes:           record.AvgLikes,
		AvgComments:        record.AvgComments,
		EngagementRate:     engagementRate(record),
		Growth:             growthAtHorizons(record.GrowthSeries),
	}

	metrics.PostsPerWeek, metrics.PostingConsistency = postingCadence(record.PostDates)

	// Grupos de dados observáveis: seguidores, interações, crescimento e
	// histórico de publicações. Cada grupo ausente rebaixa a completude.
	present := 0
	if record.FollowerCount > 0 {
		present++
	}
	if record.AvgLikes > 0 || record.AvgComments > 0 {
		present++
	}
	if record.HasGrowthData() {
		present++
	}
	if len(record.PostDates) >= 3 {
		present++
	}

	return ExtractedMetrics{
		Metrics:  metrics,
		Presence: float64(present) / 4,
	}
}

// engagementRate calcula a taxa de engajamento em percentual:
// (likes médios + comentários médios) / seguidores * 100
func engagementRate(record *domain.RawPlatformRecord) float64 {
	if record.FollowerCount == 0 {
		return 0
	}

	interactions := record.AvgLikes + record.AvgComments
	return utils.RoundWithTwoDecimalPlace(interactions / float64(record.FollowerCount) * 100)
}

// growthAtHorizons lê a série bruta nos cinco horizontes fixos. O trimestral
// é derivado quando a série não o traz diretamente: média entre a projeção
// semanal (13 semanas) e a mensal (3 meses).
func growthAtHorizons(series map[int]int64) domain.GrowthMetrics {
	growth := domain.GrowthMetrics{
		Daily:   series[horizonDaily],
		Weekly:  series[horizonWeekly],
		Monthly: series[horizonMonthly],
		Yearly:  series[horizonYearly],
	}

	if quarterly, ok := series[horizonQuarterly]; ok {
		growth.Quarterly = quarterly
		return growth
	}

	growth.Quarterly = int64(math.Round((float64(growth.Weekly)*13 + float64(growth.Monthly)*3) / 2))

	return growth
}

// postingCadence deriva publicações por semana e um score de consistência
// 0–100 baseado na variância dos intervalos entre publicações. Menos de três
// publicações não permitem medir variância: devolve o valor neutro 50.
func postingCadence(dates []time.Time) (postsPerWeek, consistency float64) {
	if len(dates) == 0 {
		return 0, 50
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	spanDays := sorted[len(sorted)-1].Sub(sorted[0]).Hours() / 24
	weeks := spanDays / 7
	if weeks < 1 {
		weeks = 1
	}
	postsPerWeek = utils.RoundWithTwoDecimalPlace(float64(len(sorted)) / weeks)

	if len(sorted) < 3 {
		return postsPerWeek, 50
	}

	intervals := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		intervals = append(intervals, sorted[i].Sub(sorted[i-1]).Hours())
	}

	mean := 0.0
	for _, interval := range intervals {
		mean += interval
	}
	mean /= float64(len(intervals))

	if mean == 0 {
		return postsPerWeek, 50
	}

	variance := 0.0
	for _, interval := range intervals {
		variance += (interval - mean) * (interval - mean)
	}
	variance /= float64(len(intervals))

	// Coeficiente de variação normalizado: cv 0 = cadência perfeita
	cv := math.Sqrt(variance) / mean
	consistency = utils.RoundWithTwoDecimalPlace(clampScore((1 - cv) * 100))

	return postsPerWeek, consistency
}

// clampScore limita um score ao intervalo [0,100]
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
