package standardizing

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/pkg/utils"
)

// AnalyzedContent agrupa a análise de conteúdo e a fração de grupos de dados
// observados
type AnalyzedContent struct {
	Analysis domain.ContentAnalysis
	Presence float64
}

// AnalyzeContent deriva o detalhamento de conteúdo do registro normalizado e
// das métricas já extraídas. Cada faceta é função de atributos observáveis;
// na ausência total de dados o valor neutro é 50.
func AnalyzeContent(record *domain.RawPlatformRecord, metrics domain.KolMetrics) AnalyzedContent {
	categories := dedupLower(record.ContentTopics)
	styles := dedupLower(record.ContentStyles)

	analysis := domain.ContentAnalysis{
		Categories:     categories,
		Styles:         styles,
		Creativity:     creativityScore(categories, styles),
		Production:     productionScore(record, metrics),
		Storytelling:   storytellingScore(categories, metrics),
		Authenticity:   authenticityScore(metrics),
		RecentActivity: recentActivitySummary(record.PostDates, metrics.PostsPerWeek),
		Safety:         contentSafety(record.GradeSignal),
	}

	present := 0
	if len(categories) > 0 {
		present++
	}
	if len(styles) > 0 {
		present++
	}
	if len(record.PostDates) > 0 {
		present++
	}
	if record.GradeSignal != "" {
		present++
	}

	return AnalyzedContent{
		Analysis: analysis,
		Presence: float64(present) / 4,
	}
}

// creativityScore cresce com a variedade de temas e estilos declarados
func creativityScore(categories, styles []string) float64 {
	if len(categories) == 0 && len(styles) == 0 {
		return 50
	}

	score := 40 + 4*float64(len(categories)) + 8*float64(len(styles))
	if score > 95 {
		score = 95
	}

	return utils.RoundWithTwoDecimalPlace(score)
}

// productionScore parte da verificação do perfil e do engajamento observado
func productionScore(record *domain.RawPlatformRecord, metrics domain.KolMetrics) float64 {
	if record.FollowerCount == 0 && !record.Verified {
		return 50
	}

	score := 60.0
	if record.Verified {
		score = 75
	}
	if metrics.EngagementRate > 3 {
		score += 10
	}

	return utils.RoundWithTwoDecimalPlace(clampScore(score))
}

// storytellingScore cresce com cadência de publicação e amplitude temática
func storytellingScore(categories []string, metrics domain.KolMetrics) float64 {
	if metrics.PostsPerWeek == 0 && len(categories) == 0 {
		return 50
	}

	score := 50 + metrics.PostsPerWeek*5
	if score > 75 {
		score = 75
	}
	if len(categories) > 2 {
		score += 10
	}

	return utils.RoundWithTwoDecimalPlace(clampScore(score))
}

// authenticityScore deriva da taxa de engajamento: engajamento real sustenta
// audiência genuína
func authenticityScore(metrics domain.KolMetrics) float64 {
	rate := metrics.EngagementRate
	switch {
	case rate > 5:
		return 85
	case rate > 3:
		return 80
	case rate > 1:
		return 70
	case rate > 0:
		return 55
	default:
		return 50
	}
}

// recentActivitySummary resume a atividade recente em texto legível
func recentActivitySummary(dates []time.Time, postsPerWeek float64) string {
	if len(dates) == 0 {
		return "sem atividade recente observada"
	}

	last := dates[0]
	for _, date := range dates[1:] {
		if date.After(last) {
			last = date
		}
	}

	return fmt.Sprintf("%.1f publicações/semana, última em %s", postsPerWeek, last.Format("2006-01-02"))
}

// contentSafety deriva o sub-bloco de segurança de marca do sinal externo de
// classificação. Escada fixa: A* -> 90, B* -> 75, C* -> 60, demais -> 40.
func contentSafety(gradeSignal string) domain.ContentSafety {
	score := gradeSignalSafetyScore(gradeSignal)

	safety := domain.ContentSafety{SafetyScore: score}

	switch {
	case score >= 75:
		safety.RiskTier = domain.RiskTierLow
	case score >= 60:
		safety.RiskTier = domain.RiskTierMedium
		safety.Concerns = append(safety.Concerns, "classificação externa intermediária, revisar histórico de conteúdo")
	default:
		safety.RiskTier = domain.RiskTierHigh
		safety.Concerns = append(safety.Concerns, "sem classificação externa confiável de segurança de marca")
	}

	return safety
}

// gradeSignalSafetyScore converte o sinal externo de classificação em score
// de segurança de marca
func gradeSignalSafetyScore(gradeSignal string) float64 {
	grade := strings.ToUpper(strings.TrimSpace(gradeSignal))
	switch {
	case strings.HasPrefix(grade, "A") || grade == "S":
		return 90
	case strings.HasPrefix(grade, "B"):
		return 75
	case strings.HasPrefix(grade, "C"):
		return 60
	default:
		return 40
	}
}
