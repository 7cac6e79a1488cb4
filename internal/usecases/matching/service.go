// Package matching calcula o score de compatibilidade entre um relatório
// padronizado de KOL e um perfil de marca. Cálculo puro e sob demanda: o
// matcher nunca altera o relatório nem persiste o resultado.
package matching

import (
	"strings"
	"time"

	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/pkg/utils"
)

// personalityStyles é a tabela fixa personalidade -> estilos de conteúdo
// aceitáveis, consultada pelo personalityMatch
var personalityStyles = map[domain.BrandPersonality][]string{
	domain.PersonalityYouthful:     {"trendy", "casual", "humor", "vlog", "challenge"},
	domain.PersonalityProfessional: {"educational", "review", "tutorial", "documentary"},
	domain.PersonalityLuxurious:    {"aesthetic", "editorial", "cinematic", "lifestyle"},
	domain.PersonalityPlayful:      {"humor", "challenge", "casual", "meme"},
	domain.PersonalityTrustworthy:  {"review", "educational", "testimonial", "documentary"},
	domain.PersonalityAdventurous:  {"travel", "outdoor", "vlog", "cinematic"},
	domain.PersonalityMinimalist:   {"aesthetic", "tutorial", "editorial"},
}

// Matcher define a interface do scorer de compatibilidade
type Matcher interface {
	Match(report *domain.StandardizedKOLReport, brand *domain.BrandProfile) *domain.InfluencerMatchScore
}

type Service struct {
	weights domain.MatchWeights
	now     func() time.Time
}

// ServiceOption configura o serviço de matching
type ServiceOption func(*Service)

// WithClock substitui a fonte de tempo (usado em testes)
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(weights domain.MatchWeights, opts ...ServiceOption) Matcher {
	service := &Service{
		weights: weights,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

// Match calcula as cinco categorias (escala 0–1), o score geral ponderado e
// as recomendações e fatores de risco gerados por regra
func (s *Service) Match(report *domain.StandardizedKOLReport, brand *domain.BrandProfile) *domain.InfluencerMatchScore {
	analysis := domain.MatchAnalysis{
		BrandTone:   brandToneDetail(report, brand),
		Audience:    audienceDetail(report, brand),
		ContentType: contentTypeDetail(report, brand),
		MarketReach: marketReachDetail(report, brand),
		Engagement:  engagementDetail(report),
	}

	categories := domain.MatchCategoryScores{
		BrandToneMatch: mean(
			analysis.BrandTone.PersonalityMatch,
			analysis.BrandTone.CommunicationMatch,
			analysis.BrandTone.VisualMatch,
			analysis.BrandTone.KeywordOverlap,
		),
		AudienceMatch: mean(
			analysis.Audience.AgeMatch,
			analysis.Audience.GenderMatch,
			analysis.Audience.LocationMatch,
			analysis.Audience.InterestOverlap,
		),
		ContentTypeMatch: mean(
			analysis.ContentType.ContentTypePreference,
			analysis.ContentType.ContentQuality,
			analysis.ContentType.ContentConsistency,
		),
		MarketReach: mean(
			analysis.MarketReach.MarketPresence,
			analysis.MarketReach.LocalInfluence,
			analysis.MarketReach.CulturalRelevance,
		),
		EngagementPotential: mean(
			analysis.Engagement.ReachPotential,
			analysis.Engagement.EngagementRateScore,
			analysis.Engagement.AudienceRetention,
		),
	}

	overall := utils.RoundWithTwoDecimalPlace(
		categories.BrandToneMatch*s.weights.BrandToneMatch +
			categories.AudienceMatch*s.weights.AudienceMatch +
			categories.ContentTypeMatch*s.weights.ContentTypeMatch +
			categories.MarketReach*s.weights.MarketReach +
			categories.EngagementPotential*s.weights.EngagementPotential,
	)

	recommendations, riskFactors := matchGuidance(report, brand)

	return &domain.InfluencerMatchScore{
		KolID:           report.KolID,
		BrandID:         brand.ID,
		OverallScore:    overall,
		Categories:      categories,
		Analysis:        analysis,
		Recommendations: recommendations,
		RiskFactors:     riskFactors,
		WeightsVersion:  s.weights.Version,
		ComputedAt:      s.now(),
	}
}

func brandToneDetail(report *domain.StandardizedKOLReport, brand *domain.BrandProfile) domain.BrandToneDetail {
	return domain.BrandToneDetail{
		PersonalityMatch:   personalityMatch(brand.Tone.Personality, report.Content.Styles),
		CommunicationMatch: styleMatch(brand.Tone.CommunicationStyle, report.Content.Styles),
		VisualMatch:        styleMatch(brand.Tone.VisualStyle, report.Content.Styles),
		KeywordOverlap:     substringOverlap(brand.Tone.Keywords, report.Content.Categories),
	}
}

// personalityMatch consulta a tabela fixa de personalidade: 0.8 quando algum
// estilo do influenciador é aceitável para a personalidade, 0.3 caso
// contrário; personalidade fora da tabela recebe o neutro 0.5
func personalityMatch(personality domain.BrandPersonality, styles []string) float64 {
	acceptable, ok := personalityStyles[personality]
	if !ok {
		return 0.5
	}

	for _, style := range styles {
		for _, candidate := range acceptable {
			if strings.EqualFold(style, candidate) {
				return 0.8
			}
		}
	}

	return 0.3
}

// styleMatch compara um estilo declarado da marca com os estilos do
// influenciador; marca sem declaração recebe o neutro 0.5
func styleMatch(declared string, styles []string) float64 {
	if declared == "" {
		return 0.5
	}

	for _, style := range styles {
		if strings.Contains(strings.ToLower(style), strings.ToLower(declared)) ||
			strings.Contains(strings.ToLower(declared), strings.ToLower(style)) {
			return 0.8
		}
	}

	return 0.4
}

// substringOverlap retorna a fração de termos da marca encontrados (substring
// sem caixa) na lista do influenciador; 0.5 quando a marca não declara termos
func substringOverlap(brandTerms, kolTerms []string) float64 {
	if len(brandTerms) == 0 {
		return 0.5
	}

	matched := 0
	for _, term := range brandTerms {
		needle := strings.ToLower(term)
		for _, candidate := range kolTerms {
			if strings.Contains(strings.ToLower(candidate), needle) {
				matched++
				break
			}
		}
	}

	overlap := float64(matched) / float64(len(brandTerms))
	if overlap > 1 {
		overlap = 1
	}

	return overlap
}

func audienceDetail(report *domain.StandardizedKOLReport, brand *domain.BrandProfile) domain.AudienceDetail {
	return domain.AudienceDetail{
		AgeMatch:      ageMatch(brand.TargetAudience.AgeRanges, report.Audience.AgeBrackets),
		GenderMatch:   genderMatch(brand.TargetAudience.GenderDistribution, report.Audience.GenderSplit),
		LocationMatch: locationMatch(brand.TargetAudience.Locations, report.Audience.PrimaryMarket),
		// Interesses alvo da marca são procurados nos tópicos de conteúdo do
		// influenciador, não nos interesses declarados da audiência
		InterestOverlap: substringOverlap(brand.TargetAudience.Interests, report.Content.Categories),
	}
}

// ageMatch é a fração de faixas alvo da marca com presença relevante (>= 10%)
// na audiência do influenciador
func ageMatch(targetRanges []string, brackets map[string]float64) float64 {
	if len(targetRanges) == 0 || len(brackets) == 0 {
		return 0.5
	}

	matched := 0
	for _, target := range targetRanges {
		if brackets[target] >= 10 {
			matched++
		}
	}

	return float64(matched) / float64(len(targetRanges))
}

// genderMatch mede a similaridade entre a distribuição alvo e a observada:
// 1 - metade da distância absoluta normalizada
func genderMatch(target, observed map[string]float64) float64 {
	if len(target) == 0 || len(observed) == 0 {
		return 0.5
	}

	distance := 0.0
	for key, share := range target {
		distance += absFloat(share - observed[key])
	}

	similarity := 1 - distance/200
	if similarity < 0 {
		similarity = 0
	}

	return utils.RoundWithTwoDecimalPlace(similarity)
}

// locationMatch: 0.9 quando alguma localização alvo da marca é substring (sem
// caixa) da localização de audiência do influenciador, 0.3 caso contrário,
// 0.5 quando a marca não declara localizações
func locationMatch(targetLocations []string, audienceLocation string) float64 {
	if len(targetLocations) == 0 {
		return 0.5
	}

	haystack := strings.ToLower(audienceLocation)
	for _, location := range targetLocations {
		if location == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(location)) {
			return 0.9
		}
	}

	return 0.3
}

func contentTypeDetail(report *domain.StandardizedKOLReport, brand *domain.BrandProfile) domain.ContentTypeDetail {
	return domain.ContentTypeDetail{
		ContentTypePreference: contentTypePreference(brand.PreferredContent, report.Platform),
		ContentQuality:        contentQualityScore(report),
		ContentConsistency:    utils.RoundWithTwoDecimalPlace(report.Metrics.PostingConsistency / 100),
	}
}

// contentTypePreference consulta a tabela plataforma -> formatos suportados:
// 0.8 com interseção, 0.4 sem, 0.5 quando a marca não declara preferência
func contentTypePreference(preferred []domain.ContentType, platform domain.Platform) float64 {
	if len(preferred) == 0 {
		return 0.5
	}

	for _, contentType := range preferred {
		if platform.SupportsContentType(contentType) {
			return 0.8
		}
	}

	return 0.4
}

// contentQualityScore: base 0.5, +0.2 acima de 100 mil seguidores, +0.3 acima
// de 3% de engajamento, teto 1.0
func contentQualityScore(report *domain.StandardizedKOLReport) float64 {
	score := 0.5
	if report.Metrics.Followers > 100_000 {
		score += 0.2
	}
	if report.Metrics.EngagementRate > 3 {
		score += 0.3
	}
	if score > 1 {
		score = 1
	}

	return score
}

func marketReachDetail(report *domain.StandardizedKOLReport, brand *domain.BrandProfile) domain.MarketReachDetail {
	return domain.MarketReachDetail{
		MarketPresence:    followerLadder(report.Metrics.Followers),
		LocalInfluence:    localInfluence(brand.HomeMarket, report.Audience.PrimaryMarket),
		CulturalRelevance: culturalRelevance(brand.TargetMarkets, report.Audience.MarketShares),
	}
}

// followerLadder é a escada de porte compartilhada por marketPresence e
// reachPotential: >1M 0.9, >500K 0.8, >100K 0.7, >50K 0.6, senão 0.4
func followerLadder(followers int64) float64 {
	switch {
	case followers > 1_000_000:
		return 0.9
	case followers > 500_000:
		return 0.8
	case followers > 100_000:
		return 0.7
	case followers > 50_000:
		return 0.6
	default:
		return 0.4
	}
}

func localInfluence(homeMarket, primaryMarket string) float64 {
	if homeMarket == "" || primaryMarket == "" {
		return 0.5
	}

	if strings.Contains(strings.ToLower(primaryMarket), strings.ToLower(homeMarket)) {
		return 0.8
	}

	return 0.4
}

// culturalRelevance é a fração de mercados alvo presentes na distribuição
// geográfica da audiência
func culturalRelevance(targetMarkets []string, shares map[string]float64) float64 {
	if len(targetMarkets) == 0 {
		return 0.5
	}

	matched := 0
	for _, market := range targetMarkets {
		for share := range shares {
			if strings.Contains(strings.ToLower(share), strings.ToLower(market)) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(targetMarkets))
}

func engagementDetail(report *domain.StandardizedKOLReport) domain.EngagementDetail {
	return domain.EngagementDetail{
		ReachPotential:      followerLadder(report.Metrics.Followers),
		EngagementRateScore: engagementRateScore(report.Metrics.EngagementRate),
		AudienceRetention:   audienceRetention(report),
	}
}

// engagementRateScore: >5% 0.9, >3% 0.8, >1% 0.6, senão 0.4
func engagementRateScore(rate float64) float64 {
	switch {
	case rate > 5:
		return 0.9
	case rate > 3:
		return 0.8
	case rate > 1:
		return 0.6
	default:
		return 0.4
	}
}

// audienceRetention combina cadência consistente com engajamento observado
func audienceRetention(report *domain.StandardizedKOLReport) float64 {
	if report.Metrics.PostingConsistency == 0 && report.Metrics.EngagementRate == 0 {
		return 0.5
	}

	score := 0.4 + report.Metrics.EngagementRate*0.05 + report.Metrics.PostingConsistency/100*0.3
	if score > 1 {
		score = 1
	}

	return utils.RoundWithTwoDecimalPlace(score)
}

// matchGuidance gera recomendações e fatores de risco por regra
func matchGuidance(report *domain.StandardizedKOLReport, brand *domain.BrandProfile) (recommendations, riskFactors []string) {
	if report.Metrics.Followers > 500_000 {
		recommendations = append(recommendations, "alto alcance: adequado para campanhas de visibilidade de marca")
	}
	if report.Metrics.EngagementRate > 3 {
		recommendations = append(recommendations, "engajamento profundo: adequado para campanhas de conversão e comunidade")
	}
	if brand.HomeMarket != "" &&
		strings.Contains(strings.ToLower(report.Audience.PrimaryMarket), strings.ToLower(brand.HomeMarket)) {
		recommendations = append(recommendations, "audiência concentrada no mercado da marca: priorizar conteúdo localizado")
	}

	if report.Metrics.Followers < 10_000 {
		riskFactors = append(riskFactors, "alcance limitado: base de seguidores abaixo de 10 mil")
	}
	if report.Metrics.EngagementRate < 1 {
		riskFactors = append(riskFactors, "engajamento baixo: taxa abaixo de 1%")
	}

	return recommendations, riskFactors
}

func mean(values ...float64) float64 {
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return utils.RoundWithTwoDecimalPlace(sum / float64(len(values)))
}

func absFloat(value float64) float64 {
	if value < 0 {
		return -value
	}
	return value
}
