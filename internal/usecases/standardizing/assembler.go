package standardizing

import (
	"fmt"
	"time"

	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/pkg/utils"
)

// ReportInputs reúne as saídas intermediárias que o assembler compõe
type ReportInputs struct {
	Record     *domain.RawPlatformRecord
	Metrics    ExtractedMetrics
	Audience   AnalyzedAudience
	Content    AnalyzedContent
	Business   AnalyzedBusiness
	Risk       AnalyzedRisk
	Evaluation domain.KolEvaluation
	Source     domain.DataSource
	Now        time.Time
}

// AssembleReport é o passo final e incondicional: compõe o relatório
// padronizado com os metadados de origem, timestamps e qualidade. Nunca falha
// com entradas bem formadas.
func AssembleReport(in ReportInputs) *domain.StandardizedKOLReport {
	name := in.Record.DisplayName
	if name == "" {
		name = in.Record.Username
	}

	return &domain.StandardizedKOLReport{
		KolID:      KolID(in.Record),
		Name:       name,
		Platform:   in.Record.Platform,
		URL:        in.Record.ProfileURL,
		Metrics:    in.Metrics.Metrics,
		Evaluation: in.Evaluation,
		Audience:   in.Audience.Analysis,
		Content:    in.Content.Analysis,
		Business:   in.Business.Analysis,
		Risk:       in.Risk.Analysis,
		Metadata: domain.ReportMetadata{
			DataSource:    in.Source,
			GeneratedAt:   in.Now,
			UpdatedAt:     in.Now,
			Quality:       reportQuality(in),
			Confidence:    confidence(in),
			SchemaVersion: domain.ReportSchemaVersion,
		},
	}
}

// KolID deriva o identificador canônico de um registro normalizado
func KolID(record *domain.RawPlatformRecord) string {
	return fmt.Sprintf("%s:%s", record.Platform, record.ExternalID)
}

// reportQuality calcula o indicador de qualidade em quatro partes. Dados
// ausentes nos analisadores rebaixam a completude em vez de gerar erro.
func reportQuality(in ReportInputs) domain.ReportQuality {
	completeness := (in.Metrics.Presence + in.Audience.Presence + in.Content.Presence +
		in.Business.Presence + in.Risk.Presence) / 5

	consistency := 0.9
	if !in.Record.HasGrowthData() {
		consistency -= 0.15
	}

	return domain.ReportQuality{
		Completeness: utils.RoundWithTwoDecimalPlace(completeness),
		Freshness:    freshness(in.Record.PostDates, in.Now),
		Accuracy:     sourceAccuracy(in.Source),
		Consistency:  utils.RoundWithTwoDecimalPlace(consistency),
	}
}

// freshness reflete a idade da última publicação observada
func freshness(dates []time.Time, now time.Time) float64 {
	if len(dates) == 0 {
		return 0.5
	}

	last := dates[0]
	for _, date := range dates[1:] {
		if date.After(last) {
			last = date
		}
	}

	age := now.Sub(last)
	switch {
	case age <= 7*24*time.Hour:
		return 1.0
	case age <= 30*24*time.Hour:
		return 0.8
	case age <= 90*24*time.Hour:
		return 0.6
	default:
		return 0.5
	}
}

// sourceAccuracy atribui a acurácia base por origem de dados
func sourceAccuracy(source domain.DataSource) float64 {
	switch source {
	case domain.DataSourceProviderAggregated:
		return 0.9
	case domain.DataSourceHybrid:
		return 0.85
	case domain.DataSourceAIDerived:
		return 0.75
	default:
		return 0.7
	}
}

func confidence(in ReportInputs) float64 {
	quality := reportQuality(in)
	return utils.RoundWithTwoDecimalPlace(
		(quality.Completeness + quality.Freshness + quality.Accuracy + quality.Consistency) / 4,
	)
}
