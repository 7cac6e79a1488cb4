package standardizing

import (
	"sort"
	"strings"

	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/pkg/utils"
)

// ageBracketKeys são as seis faixas etárias do relatório padronizado
var ageBracketKeys = []string{"13-17", "18-24", "25-34", "35-44", "45-54", "55+"}

// genderKeys é a divisão de gênero em três vias
var genderKeys = []string{"female", "male", "other"}

// AnalyzedAudience agrupa a análise de audiência e a fração de grupos de
// dados observados
type AnalyzedAudience struct {
	Analysis domain.AudienceAnalysis
	Presence float64
}

// AnalyzeAudience deriva o detalhamento de audiência do registro normalizado.
// Dados ausentes rebaixam a presença e resultam no score neutro 50, nunca em
// erro.
func AnalyzeAudience(record *domain.RawPlatformRecord) AnalyzedAudience {
	analysis := domain.AudienceAnalysis{
		MarketShares: capPercentages(record.MarketShares, nil),
		AgeBrackets:  capPercentages(record.AgeBrackets, ageBracketKeys),
		GenderSplit:  capPercentages(record.GenderSplit, genderKeys),
		Interests:    dedupLower(record.Interests),
	}

	analysis.PrimaryMarket = primaryMarket(analysis.MarketShares, record.AudienceLocation)
	analysis.PurchasingPower = purchasingPower(analysis.AgeBrackets)

	present := 0
	if len(analysis.MarketShares) > 0 || record.AudienceLocation != "" {
		present++
	}
	if len(record.AgeBrackets) > 0 {
		present++
	}
	if len(record.GenderSplit) > 0 {
		present++
	}
	if len(analysis.Interests) > 0 {
		present++
	}

	if present == 0 {
		analysis.QualityScore = 50
		return AnalyzedAudience{Analysis: analysis, Presence: 0}
	}

	// Quanto mais grupos observados, maior a qualidade atribuível à audiência
	analysis.QualityScore = utils.RoundWithTwoDecimalPlace(clampScore(48 + 13*float64(present)))

	return AnalyzedAudience{
		Analysis: analysis,
		Presence: float64(present) / 4,
	}
}

// capPercentages copia o grupo percentual garantindo soma <= 100; o restante
// desconhecido fica implícito. Com keys informadas, valores fora delas são
// descartados.
func capPercentages(values map[string]float64, keys []string) map[string]float64 {
	if len(values) == 0 {
		return map[string]float64{}
	}

	allowed := map[string]bool{}
	for _, key := range keys {
		allowed[key] = true
	}

	out := make(map[string]float64, len(values))
	sum := 0.0
	for key, value := range values {
		if value <= 0 {
			continue
		}
		if len(keys) > 0 && !allowed[key] {
			continue
		}
		out[key] = value
		sum += value
	}

	if sum <= 100 {
		return out
	}

	// Reescalar proporcionalmente quando o provedor entrega soma > 100
	for key, value := range out {
		out[key] = utils.RoundWithTwoDecimalPlace(value / sum * 100)
	}

	return out
}

// primaryMarket escolhe o mercado com maior participação; na ausência de
// distribuição, usa a localização informada pelo provedor
func primaryMarket(shares map[string]float64, fallback string) string {
	if len(shares) == 0 {
		return fallback
	}

	markets := make([]string, 0, len(shares))
	for market := range shares {
		markets = append(markets, market)
	}

	sort.Slice(markets, func(i, j int) bool {
		if shares[markets[i]] != shares[markets[j]] {
			return shares[markets[i]] > shares[markets[j]]
		}
		return markets[i] < markets[j]
	})

	return markets[0]
}

// purchasingPower deriva a faixa de poder de compra da participação das
// faixas etárias de maior consumo (25–44)
func purchasingPower(ageBrackets map[string]float64) string {
	if len(ageBrackets) == 0 {
		return "unknown"
	}

	prime := ageBrackets["25-34"] + ageBrackets["35-44"]
	switch {
	case prime >= 40:
		return "high"
	case prime >= 20:
		return "medium"
	default:
		return "low"
	}
}

// dedupLower normaliza uma lista de tags para minúsculas sem duplicatas,
// preservando a ordem de chegada
func dedupLower(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := map[string]bool{}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized := strings.ToLower(strings.TrimSpace(tag))
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}

	return out
}
