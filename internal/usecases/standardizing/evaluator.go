package standardizing

import (
	"math"

	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/pkg/utils"
)

// EvaluationInput reúne tudo que os scorers de dimensão podem observar:
// métricas extraídas, saídas dos analisadores e sinais externos do registro.
type EvaluationInput struct {
	Metrics     domain.KolMetrics
	Audience    domain.AudienceAnalysis
	Content     domain.ContentAnalysis
	Business    domain.BusinessAnalysis
	Risk        domain.RiskAnalysis
	GradeSignal string
	Verified    bool
}

// DimensionScorer calcula um sub-score 0–100 de uma dimensão a partir dos
// atributos observáveis. Implementações alternativas (estatísticas, NLP)
// podem substituir as heurísticas padrão sem tocar nos chamadores.
type DimensionScorer func(input EvaluationInput) float64

// DimensionScorers agrupa um scorer por dimensão
type DimensionScorers struct {
	BrandFit        DimensionScorer
	ContentQuality  DimensionScorer
	Engagement      DimensionScorer
	AudienceProfile DimensionScorer
	Professionalism DimensionScorer
	BusinessAbility DimensionScorer
	BrandSafety     DimensionScorer
	Stability       DimensionScorer
}

// Evaluator computa as oito dimensões, os agregados, a letra e a faixa de
// recomendação usando uma tabela de pesos versionada
type Evaluator struct {
	weights domain.ScoringWeights
	scorers DimensionScorers
}

// EvaluatorOption configura o Evaluator na construção
type EvaluatorOption func(*Evaluator)

// WithScorers substitui scorers específicos; campos nil mantêm o padrão
func WithScorers(scorers DimensionScorers) EvaluatorOption {
	return func(e *Evaluator) {
		if scorers.BrandFit != nil {
			e.scorers.BrandFit = scorers.BrandFit
		}
		if scorers.ContentQuality != nil {
			e.scorers.ContentQuality = scorers.ContentQuality
		}
		if scorers.Engagement != nil {
			e.scorers.Engagement = scorers.Engagement
		}
		if scorers.AudienceProfile != nil {
			e.scorers.AudienceProfile = scorers.AudienceProfile
		}
		if scorers.Professionalism != nil {
			e.scorers.Professionalism = scorers.Professionalism
		}
		if scorers.BusinessAbility != nil {
			e.scorers.BusinessAbility = scorers.BusinessAbility
		}
		if scorers.BrandSafety != nil {
			e.scorers.BrandSafety = scorers.BrandSafety
		}
		if scorers.Stability != nil {
			e.scorers.Stability = scorers.Stability
		}
	}
}

func NewEvaluator(weights domain.ScoringWeights, opts ...EvaluatorOption) *Evaluator {
	evaluator := &Evaluator{
		weights: weights,
		scorers: defaultScorers(),
	}

	for _, opt := range opts {
		opt(evaluator)
	}

	return evaluator
}

// Evaluate produz a avaliação completa. Determinística: entradas iguais
// produzem avaliações idênticas.
func (e *Evaluator) Evaluate(input EvaluationInput) domain.KolEvaluation {
	evaluation := domain.KolEvaluation{
		BrandFit:        scoreDimension(e.scorers.BrandFit, input),
		ContentQuality:  scoreDimension(e.scorers.ContentQuality, input),
		Engagement:      scoreDimension(e.scorers.Engagement, input),
		AudienceProfile: scoreDimension(e.scorers.AudienceProfile, input),
		Professionalism: scoreDimension(e.scorers.Professionalism, input),
		BusinessAbility: scoreDimension(e.scorers.BusinessAbility, input),
		BrandSafety:     scoreDimension(e.scorers.BrandSafety, input),
		Stability:       scoreDimension(e.scorers.Stability, input),
		WeightsVersion:  e.weights.Version,
	}

	sum := evaluation.BrandFit + evaluation.ContentQuality + evaluation.Engagement +
		evaluation.AudienceProfile + evaluation.Professionalism + evaluation.BusinessAbility +
		evaluation.BrandSafety + evaluation.Stability

	evaluation.OverallScore = math.Round(sum / 8)

	evaluation.WeightedScore = utils.RoundWithTwoDecimalPlace(
		evaluation.BrandFit*e.weights.BrandFit +
			evaluation.ContentQuality*e.weights.ContentQuality +
			evaluation.Engagement*e.weights.Engagement +
			evaluation.AudienceProfile*e.weights.AudienceProfile +
			evaluation.Professionalism*e.weights.Professionalism +
			evaluation.BusinessAbility*e.weights.BusinessAbility +
			evaluation.BrandSafety*e.weights.BrandSafety +
			evaluation.Stability*e.weights.Stability,
	)

	evaluation.Grade = GradeForScore(evaluation.WeightedScore)
	evaluation.Recommendation = TierForScore(evaluation.WeightedScore)

	return evaluation
}

func scoreDimension(scorer DimensionScorer, input EvaluationInput) float64 {
	return utils.RoundWithTwoDecimalPlace(clampScore(scorer(input)))
}

// GradeForScore aplica a escada ordenada de letras sobre o weightedScore
func GradeForScore(score float64) domain.Grade {
	switch {
	case score >= 95:
		return domain.GradeS
	case score >= 90:
		return domain.GradeAPlus
	case score >= 85:
		return domain.GradeA
	case score >= 80:
		return domain.GradeAMinus
	case score >= 75:
		return domain.GradeBPlus
	case score >= 70:
		return domain.GradeB
	case score >= 65:
		return domain.GradeBMinus
	case score >= 60:
		return domain.GradeCPlus
	case score >= 55:
		return domain.GradeC
	case score >= 50:
		return domain.GradeCMinus
	default:
		return domain.GradeD
	}
}

// TierForScore aplica a escada de recomendação sobre o weightedScore
func TierForScore(score float64) domain.RecommendationTier {
	switch {
	case score >= 85:
		return domain.TierStronglyRecommended
	case score >= 75:
		return domain.TierRecommended
	case score >= 60:
		return domain.TierConditional
	default:
		return domain.TierNotRecommended
	}
}

// defaultScorers são as heurísticas padrão: cada dimensão deriva das saídas
// dos analisadores, nunca de constantes fixas
func defaultScorers() DimensionScorers {
	return DimensionScorers{
		BrandFit: func(in EvaluationInput) float64 {
			return (in.Content.Authenticity + (100 - in.Risk.BrandFitRisk) + in.Audience.QualityScore) / 3
		},
		ContentQuality: func(in EvaluationInput) float64 {
			return (in.Content.Creativity + in.Content.Production + in.Content.Storytelling + in.Content.Authenticity) / 4
		},
		Engagement: func(in EvaluationInput) float64 {
			rate := in.Metrics.EngagementRate
			switch {
			case rate >= 10:
				return 95
			case rate >= 5:
				return 88
			case rate >= 3:
				return 78
			case rate >= 1:
				return 62
			case rate > 0:
				return 48
			default:
				return 40
			}
		},
		AudienceProfile: func(in EvaluationInput) float64 {
			return in.Audience.QualityScore
		},
		Professionalism: func(in EvaluationInput) float64 {
			verifiedScore := 60.0
			if in.Verified {
				verifiedScore = 90
			}
			return (in.Content.Production + in.Metrics.PostingConsistency + verifiedScore) / 3
		},
		BusinessAbility: func(in EvaluationInput) float64 {
			return (in.Business.MarketValue.ROIPotential + in.Business.Responsiveness + in.Business.ConversionPotential) / 3
		},
		BrandSafety: func(in EvaluationInput) float64 {
			// Derivado explicitamente do sinal externo de classificação
			return gradeSignalSafetyScore(in.GradeSignal)
		},
		Stability: func(in EvaluationInput) float64 {
			trend := 50.0
			if in.Metrics.Growth.Monthly > 0 {
				trend = 80
			}
			if in.Metrics.Growth.Monthly < 0 {
				trend = 30
			}
			return (in.Metrics.PostingConsistency + trend) / 2
		},
	}
}
