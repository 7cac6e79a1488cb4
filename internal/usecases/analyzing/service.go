// Package analyzing orquestra a análise de perfis: busca os dados brutos no
// provedor externo, padroniza em relatório e persiste o resultado. Lotes de
// URLs são processados em paralelo com isolamento de falhas por item.
package analyzing

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/kol-manager-api/infrastructure/integrator/socialdata"
	"github.com/vfg2006/kol-manager-api/infrastructure/repository"
	"github.com/vfg2006/kol-manager-api/internal/config"
	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/internal/usecases/normalizing"
	"github.com/vfg2006/kol-manager-api/internal/usecases/standardizing"
	"github.com/vfg2006/kol-manager-api/pkg/utils"
)

// BatchRequest é uma entrada de lote: a URL do perfil e a plataforma declarada
type BatchRequest struct {
	URL      string `json:"url"`
	Platform string `json:"platform"`
}

type Analyzer interface {
	// AnalyzeProfile busca, padroniza e persiste o relatório de um perfil
	AnalyzeProfile(platformTag, profileURL string) (*domain.StandardizedKOLReport, error)

	// SubmitBatch registra um lote e dispara o processamento assíncrono
	SubmitBatch(requests []BatchRequest) (*domain.AnalysisBatch, error)

	// GetBatch retorna uma cópia do estado atual de um lote
	GetBatch(batchID string) (*domain.AnalysisBatch, error)

	// GetReport retorna o relatório persistido de um influenciador
	GetReport(kolID string) (*domain.StandardizedKOLReport, error)

	// ListReports lista os relatórios mais recentes
	ListReports(limit int) ([]*domain.StandardizedKOLReport, error)
}

type Service struct {
	cfg          config.Analysis
	integrator   socialdata.SocialDataIntegrator
	standardizer standardizing.Standardizer
	reports      repository.KolReportRepository
	now          func() time.Time

	mu      sync.RWMutex
	batches map[string]*domain.AnalysisBatch
}

type Option func(*Service)

// WithClock injeta o relógio, usado nos testes para resultados determinísticos
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	cfg config.Analysis,
	integrator socialdata.SocialDataIntegrator,
	standardizer standardizing.Standardizer,
	reports repository.KolReportRepository,
	opts ...Option,
) *Service {
	s := &Service{
		cfg:          cfg,
		integrator:   integrator,
		standardizer: standardizer,
		reports:      reports,
		now:          time.Now,
		batches:      make(map[string]*domain.AnalysisBatch),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.MaxConcurrentJobs < 1 {
		s.cfg.MaxConcurrentJobs = 1
	}

	return s
}

func (s *Service) AnalyzeProfile(platformTag, profileURL string) (*domain.StandardizedKOLReport, error) {
	platform, ok := domain.ParsePlatform(platformTag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", normalizing.ErrUnsupportedPlatform, platformTag)
	}

	payload, err := s.integrator.FetchProfile(platform, profileURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar perfil no provedor: %w", err)
	}

	report, err := s.standardizer.BuildReport(payload, platformTag)
	if err != nil {
		return nil, err
	}

	if err := s.reports.SaveOrUpdate(report); err != nil {
		return nil, fmt.Errorf("erro ao persistir relatório: %w", err)
	}

	return report, nil
}

func (s *Service) SubmitBatch(requests []BatchRequest) (*domain.AnalysisBatch, error) {
	if len(requests) == 0 {
		return nil, ErrEmptyBatch
	}

	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador do lote: %w", err)
	}

	batch := &domain.AnalysisBatch{
		ID:        batchID,
		Items:     make([]*domain.BatchItem, 0, len(requests)),
		StartedAt: s.now(),
	}
	for _, req := range requests {
		batch.Items = append(batch.Items, &domain.BatchItem{
			URL:      req.URL,
			Platform: domain.Platform(req.Platform),
			Status:   domain.BatchItemPending,
		})
	}

	s.mu.Lock()
	s.batches[batchID] = batch
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"batch_id":    batchID,
		"total_items": len(requests),
	}).Info("Lote de análise registrado. Iniciando processamento")

	go s.processBatch(batch, requests)

	return s.snapshot(batchID)
}

func (s *Service) GetBatch(batchID string) (*domain.AnalysisBatch, error) {
	return s.snapshot(batchID)
}

func (s *Service) GetReport(kolID string) (*domain.StandardizedKOLReport, error) {
	report, err := s.reports.GetByKolID(kolID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar relatório: %w", err)
	}

	return report, nil
}

func (s *Service) ListReports(limit int) ([]*domain.StandardizedKOLReport, error) {
	reports, err := s.reports.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar relatórios: %w", err)
	}

	return reports, nil
}

// processBatch executa os itens do lote com workers limitados por semáforo.
// A falha de um item apenas marca o próprio item como erro.
func (s *Service) processBatch(batch *domain.AnalysisBatch, requests []BatchRequest) {
	semaphore := make(chan struct{}, s.cfg.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for i, req := range requests {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(index int, request BatchRequest) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			s.processItem(batch.ID, index, request)

			// Aguardar antes da próxima requisição para evitar sobrecarga no provedor
			if s.cfg.RequestDelaySeconds > 0 {
				time.Sleep(time.Duration(s.cfg.RequestDelaySeconds) * time.Second)
			}
		}(i, req)
	}

	wg.Wait()

	s.finishBatch(batch.ID)
}

func (s *Service) processItem(batchID string, index int, request BatchRequest) {
	s.setItemStatus(batchID, index, domain.BatchItemProcessing, "", "")

	report, err := s.AnalyzeProfile(request.Platform, request.URL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"batch_id": batchID,
			"url":      request.URL,
			"platform": request.Platform,
		}).WithError(err).Warn("Falha ao analisar item do lote")

		s.setItemStatus(batchID, index, domain.BatchItemError, "", err.Error())
		return
	}

	s.setItemStatus(batchID, index, domain.BatchItemCompleted, report.KolID, "")
}

func (s *Service) setItemStatus(batchID string, index int, status domain.BatchItemStatus, kolID, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, ok := s.batches[batchID]
	if !ok || index >= len(batch.Items) {
		return
	}

	item := batch.Items[index]
	item.Status = status
	item.KolID = kolID
	item.Error = errMsg

	if status == domain.BatchItemCompleted || status == domain.BatchItemError {
		finishedAt := s.now()
		item.FinishedAt = &finishedAt
	}
}

func (s *Service) finishBatch(batchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, ok := s.batches[batchID]
	if !ok {
		return
	}

	summary := domain.BatchSummary{}
	for _, item := range batch.Items {
		switch item.Status {
		case domain.BatchItemCompleted:
			summary.Success++
		case domain.BatchItemError:
			summary.Failed++
		}
	}

	finishedAt := s.now()
	batch.Summary = summary
	batch.Done = true
	batch.FinishedAt = &finishedAt

	logrus.WithFields(logrus.Fields{
		"batch_id": batchID,
		"success":  summary.Success,
		"failed":   summary.Failed,
	}).Info("Lote de análise concluído")
}

// snapshot devolve uma cópia profunda para leitura sem corrida com os workers
func (s *Service) snapshot(batchID string) (*domain.AnalysisBatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batch, ok := s.batches[batchID]
	if !ok {
		return nil, ErrBatchNotFound
	}

	copied := &domain.AnalysisBatch{
		ID:        batch.ID,
		Items:     make([]*domain.BatchItem, 0, len(batch.Items)),
		Summary:   batch.Summary,
		Done:      batch.Done,
		StartedAt: batch.StartedAt,
	}
	if batch.FinishedAt != nil {
		finishedAt := *batch.FinishedAt
		copied.FinishedAt = &finishedAt
	}
	for _, item := range batch.Items {
		itemCopy := *item
		if item.FinishedAt != nil {
			finishedAt := *item.FinishedAt
			itemCopy.FinishedAt = &finishedAt
		}
		copied.Items = append(copied.Items, &itemCopy)
	}

	return copied, nil
}
