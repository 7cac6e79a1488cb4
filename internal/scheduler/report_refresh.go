package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-manager-api/infrastructure/repository"
	"github.com/vfg2006/kol-manager-api/internal/config"
	"github.com/vfg2006/kol-manager-api/internal/usecases/analyzing"
)

// ReportRefreshConfig representa a configuração do agendador de renovação de relatórios
type ReportRefreshConfig struct {
	CronSchedule        string
	StaleAfterDays      int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// ReportRefreshService reanalisa periodicamente os relatórios de influenciadores
// que não são atualizados há mais tempo que o limite configurado
type ReportRefreshService struct {
	scheduler           *gocron.Scheduler
	config              ReportRefreshConfig
	reportRepo          repository.KolReportRepository
	analyzer            analyzing.Analyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportRefreshService cria uma nova instância do serviço de renovação de relatórios
func NewReportRefreshService(
	reportRepo repository.KolReportRepository,
	analyzer analyzing.Analyzer,
	appConfig *config.Config,
) *ReportRefreshService {
	// Criar a configuração com base na config global
	refreshConfig := ReportRefreshConfig{
		CronSchedule:        appConfig.ReportRefresh.CronSchedule,
		StaleAfterDays:      appConfig.ReportRefresh.StaleAfterDays,
		RequestDelaySeconds: appConfig.ReportRefresh.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.ReportRefresh.MaxConcurrentJobs,
		SyncEnabled:         appConfig.ReportRefresh.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         refreshConfig.CronSchedule,
		"stale_after_days":      refreshConfig.StaleAfterDays,
		"request_delay_seconds": refreshConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   refreshConfig.MaxConcurrentJobs,
		"sync_enabled":          refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de renovação de relatórios carregada")

	return &ReportRefreshService{
		scheduler:   scheduler,
		config:      refreshConfig,
		reportRepo:  reportRepo,
		analyzer:    analyzer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *ReportRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Renovação de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de renovação de relatórios")

	// Agendar a renovação de relatórios
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshStaleReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar renovação de relatórios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de renovação de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshStaleReports reanalisa todos os relatórios mais antigos que o limite
func (s *ReportRefreshService) refreshStaleReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Renovação de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	cutoff := time.Now().AddDate(0, 0, -s.config.StaleAfterDays)

	logrus.WithFields(logrus.Fields{
		"cutoff":           cutoff.Format(time.DateOnly),
		"stale_after_days": s.config.StaleAfterDays,
	}).Info("Iniciando renovação de relatórios antigos")

	staleReports, err := s.reportRepo.ListStaleBefore(cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar relatórios antigos para renovação")
		return
	}

	if len(staleReports) == 0 {
		logrus.Info("Nenhum relatório antigo encontrado para renovação")
		return
	}

	logrus.WithField("stale_reports", len(staleReports)).Info("Relatórios encontrados para renovação")

	// Criar um canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	refreshed := 0
	failed := 0
	var countMutex sync.Mutex

	for _, report := range staleReports {
		// Sem URL de origem não há como reanalisar
		if report.URL == "" {
			logrus.WithField("kol_id", report.KolID).Warn("Relatório sem URL de perfil. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(kolID, platform, profileURL string) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			_, err := s.analyzer.AnalyzeProfile(platform, profileURL)

			countMutex.Lock()
			if err != nil {
				failed++
			} else {
				refreshed++
			}
			countMutex.Unlock()

			if err != nil {
				logrus.WithFields(logrus.Fields{
					"kol_id": kolID,
					"url":    profileURL,
				}).WithError(err).Error("Erro ao renovar relatório")
			}

			// Aguardar antes da próxima requisição para evitar sobrecarga no provedor
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(report.KolID, string(report.Platform), report.URL)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"refreshed": refreshed,
		"failed":    failed,
	}).Info("Renovação de relatórios concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma renovação de relatórios
func (s *ReportRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Renovação de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando renovação manual de relatórios")
	go s.refreshStaleReports()
}

// GetStatus retorna o status atual do agendador
func (s *ReportRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	lastStartedAt := s.lastSyncStartedAt
	lastCompletedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"stale_after_days":       s.config.StaleAfterDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   lastStartedAt,
		"last_sync_completed_at": lastCompletedAt,
	}
}
