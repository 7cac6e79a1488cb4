// Package standardizing é o núcleo do motor: transforma registros
// normalizados em relatórios padronizados de KOL, com métricas, oito
// dimensões de avaliação, análises de audiência/conteúdo/negócio/risco e
// metadados de qualidade. Todas as funções são puras e determinísticas; a
// única entrada variável (relógio) é injetada na construção.
package standardizing

import (
	"time"

	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/internal/usecases/normalizing"
)

// Standardizer define a interface do pipeline de padronização
type Standardizer interface {
	// BuildReport normaliza um payload de provedor e padroniza em relatório
	BuildReport(payload map[string]any, platformTag string) (*domain.StandardizedKOLReport, error)

	// StandardizeRecord padroniza um registro já normalizado
	StandardizeRecord(record *domain.RawPlatformRecord) *domain.StandardizedKOLReport
}

type Service struct {
	normalizer normalizing.Normalizer
	evaluator  *Evaluator
	source     domain.DataSource
	now        func() time.Time
}

// ServiceOption configura o serviço de padronização
type ServiceOption func(*Service)

// WithClock substitui a fonte de tempo (usado em testes)
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// WithDataSource define a origem de dados estampada nos relatórios
func WithDataSource(source domain.DataSource) ServiceOption {
	return func(s *Service) {
		s.source = source
	}
}

func NewService(normalizer normalizing.Normalizer, evaluator *Evaluator, opts ...ServiceOption) *Service {
	service := &Service{
		normalizer: normalizer,
		evaluator:  evaluator,
		source:     domain.DataSourceProviderAggregated,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

func (s *Service) BuildReport(payload map[string]any, platformTag string) (*domain.StandardizedKOLReport, error) {
	record, err := s.normalizer.Normalize(payload, platformTag)
	if err != nil {
		return nil, err
	}

	return s.StandardizeRecord(record), nil
}

// StandardizeRecord executa o pipeline completo: métricas, analisadores,
// avaliação e montagem final. O fluxo é unidirecional e cada passo consome
// apenas as saídas dos anteriores.
func (s *Service) StandardizeRecord(record *domain.RawPlatformRecord) *domain.StandardizedKOLReport {
	extracted := ExtractMetrics(record)

	audience := AnalyzeAudience(record)
	content := AnalyzeContent(record, extracted.Metrics)
	business := AnalyzeBusiness(record, extracted.Metrics, audience.Analysis.QualityScore)
	risk := AnalyzeRisk(record, content.Analysis.Safety, extracted.Metrics)

	evaluation := s.evaluator.Evaluate(EvaluationInput{
		Metrics:     extracted.Metrics,
		Audience:    audience.Analysis,
		Content:     content.Analysis,
		Business:    business.Analysis,
		Risk:        risk.Analysis,
		GradeSignal: record.GradeSignal,
		Verified:    record.Verified,
	})

	return AssembleReport(ReportInputs{
		Record:     record,
		Metrics:    extracted,
		Audience:   audience,
		Content:    content,
		Business:   business,
		Risk:       risk,
		Evaluation: evaluation,
		Source:     s.source,
		Now:        s.now(),
	})
}
