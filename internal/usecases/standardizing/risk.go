package standardizing

import (
	"strings"

	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/pkg/utils"
)

// AnalyzedRisk agrupa a análise de risco e a fração de grupos de dados
// observados
type AnalyzedRisk struct {
	Analysis domain.RiskAnalysis
	Presence float64
}

// AnalyzeRisk deriva os quatro fatores de risco e a faixa geral a partir do
// registro normalizado e do bloco de segurança de conteúdo já calculado. A
// faixa geral segue o máximo dos fatores: >=70 high, >=40 medium, senão low.
func AnalyzeRisk(record *domain.RawPlatformRecord, safety domain.ContentSafety, metrics domain.KolMetrics) AnalyzedRisk {
	analysis := domain.RiskAnalysis{
		ContentRisk:    utils.RoundWithTwoDecimalPlace(100 - safety.SafetyScore),
		ReputationRisk: reputationRisk(record.GradeSignal),
		LegalRisk:      legalRisk(record),
		BrandFitRisk:   brandFitRisk(record),
	}

	maxRisk := analysis.ContentRisk
	for _, factor := range []float64{analysis.ReputationRisk, analysis.LegalRisk, analysis.BrandFitRisk} {
		if factor > maxRisk {
			maxRisk = factor
		}
	}

	switch {
	case maxRisk >= 70:
		analysis.OverallTier = domain.RiskTierHigh
	case maxRisk >= 40:
		analysis.OverallTier = domain.RiskTierMedium
	default:
		analysis.OverallTier = domain.RiskTierLow
	}

	analysis.Concerns, analysis.Mitigations, analysis.Monitoring = riskGuidance(analysis, record, metrics)

	present := 0
	if record.GradeSignal != "" {
		present++
	}
	if record.Verified {
		present++
	}
	if len(record.ContentTopics) > 0 {
		present++
	}

	return AnalyzedRisk{
		Analysis: analysis,
		Presence: float64(present) / 3,
	}
}

// reputationRisk segue o sinal externo de classificação
func reputationRisk(gradeSignal string) float64 {
	grade := strings.ToUpper(strings.TrimSpace(gradeSignal))
	switch {
	case grade == "S" || strings.HasPrefix(grade, "A"):
		return 20
	case strings.HasPrefix(grade, "B"):
		return 35
	case strings.HasPrefix(grade, "C"):
		return 55
	default:
		return 70
	}
}

// legalRisk parte de uma base moderada; perfis não verificados carregam risco
// adicional de identidade
func legalRisk(record *domain.RawPlatformRecord) float64 {
	risk := 30.0
	if !record.Verified {
		risk += 20
	}
	return risk
}

// brandFitRisk diminui quando o influenciador tem nicho temático claro
func brandFitRisk(record *domain.RawPlatformRecord) float64 {
	if len(record.ContentTopics) == 0 {
		return 50
	}

	risk := 60 - 5*float64(len(record.ContentTopics))
	if risk < 15 {
		risk = 15
	}

	return risk
}

// riskGuidance gera listas de preocupações, mitigações e monitoramento por
// regra, a partir dos fatores calculados
func riskGuidance(analysis domain.RiskAnalysis, record *domain.RawPlatformRecord, metrics domain.KolMetrics) (concerns, mitigations, monitoring []string) {
	if analysis.ContentRisk >= 40 {
		concerns = append(concerns, "histórico de conteúdo sem classificação externa favorável")
		mitigations = append(mitigations, "solicitar amostra recente de conteúdo antes da contratação")
	}
	if analysis.LegalRisk >= 50 {
		concerns = append(concerns, "perfil não verificado pela plataforma")
		mitigations = append(mitigations, "exigir comprovação de titularidade do perfil em contrato")
	}
	if analysis.BrandFitRisk >= 50 {
		concerns = append(concerns, "nicho temático pouco definido")
		mitigations = append(mitigations, "alinhar briefing detalhado de conteúdo por campanha")
	}
	if metrics.Growth.Monthly < 0 {
		concerns = append(concerns, "base de seguidores em retração no último mês")
		monitoring = append(monitoring, "acompanhar crescimento mensal de seguidores")
	}

	monitoring = append(monitoring, "revisar classificação de segurança de marca a cada ciclo de campanha")

	return concerns, mitigations, monitoring
}
