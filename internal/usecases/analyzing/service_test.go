package analyzing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	integratorMocks "github.com/vfg2006/kol-manager-api/infrastructure/integrator/socialdata/mocks"
	repositoryMocks "github.com/vfg2006/kol-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kol-manager-api/internal/config"
	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/internal/usecases/normalizing"
	"github.com/vfg2006/kol-manager-api/internal/usecases/standardizing"
)

func testClock() time.Time {
	return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
}

func profilePayload(id, url string) map[string]any {
	return map[string]any{
		"id":        id,
		"url":       url,
		"username":  id,
		"followers": float64(120000),
		"avg_likes": float64(4800),
	}
}

func newTestService(t *testing.T, cfg config.Analysis) (*Service, *integratorMocks.MockSocialDataIntegrator, *repositoryMocks.MockKolReportRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	integrator := integratorMocks.NewMockSocialDataIntegrator(ctrl)
	reports := repositoryMocks.NewMockKolReportRepository(ctrl)

	standardizer := standardizing.NewService(
		normalizing.NewService(),
		standardizing.NewEvaluator(domain.DefaultScoringWeights()),
		standardizing.WithClock(testClock),
	)

	service := NewService(cfg, integrator, standardizer, reports, WithClock(testClock))

	return service, integrator, reports
}

func TestAnalyzeProfile(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		url      string
		setup    func(integrator *integratorMocks.MockSocialDataIntegrator, reports *repositoryMocks.MockKolReportRepository)
		validate func(t *testing.T, report *domain.StandardizedKOLReport, err error)
	}{
		{
			name:     "Perfil válido - busca, padroniza e persiste",
			platform: "instagram",
			url:      "https://instagram.com/kol",
			setup: func(integrator *integratorMocks.MockSocialDataIntegrator, reports *repositoryMocks.MockKolReportRepository) {
				integrator.EXPECT().
					FetchProfile(domain.PlatformInstagram, "https://instagram.com/kol").
					Return(profilePayload("ig-1", "https://instagram.com/kol"), nil)
				reports.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, report *domain.StandardizedKOLReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "instagram:ig-1", report.KolID)
				assert.Equal(t, int64(120000), report.Metrics.Followers)
			},
		},
		{
			name:     "Plataforma não suportada - falha antes de chamar o provedor",
			platform: "orkut",
			url:      "https://orkut.com/perfil",
			setup:    func(*integratorMocks.MockSocialDataIntegrator, *repositoryMocks.MockKolReportRepository) {},
			validate: func(t *testing.T, report *domain.StandardizedKOLReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, normalizing.ErrUnsupportedPlatform)
			},
		},
		{
			name:     "Provedor indisponível - erro propagado com contexto",
			platform: "instagram",
			url:      "https://instagram.com/kol",
			setup: func(integrator *integratorMocks.MockSocialDataIntegrator, reports *repositoryMocks.MockKolReportRepository) {
				integrator.EXPECT().
					FetchProfile(domain.PlatformInstagram, "https://instagram.com/kol").
					Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, report *domain.StandardizedKOLReport, err error) {
				assert.Nil(t, report)
				assert.ErrorContains(t, err, "erro ao buscar perfil no provedor")
			},
		},
		{
			name:     "Falha de persistência - erro propagado com contexto",
			platform: "instagram",
			url:      "https://instagram.com/kol",
			setup: func(integrator *integratorMocks.MockSocialDataIntegrator, reports *repositoryMocks.MockKolReportRepository) {
				integrator.EXPECT().
					FetchProfile(domain.PlatformInstagram, "https://instagram.com/kol").
					Return(profilePayload("ig-1", "https://instagram.com/kol"), nil)
				reports.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, report *domain.StandardizedKOLReport, err error) {
				assert.Nil(t, report)
				assert.ErrorContains(t, err, "erro ao persistir relatório")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, integrator, reports := newTestService(t, config.Analysis{MaxConcurrentJobs: 1})
			tt.setup(integrator, reports)

			report, err := service.AnalyzeProfile(tt.platform, tt.url)
			tt.validate(t, report, err)
		})
	}
}

func TestSubmitBatch(t *testing.T) {
	t.Run("Lote vazio - deve recusar", func(t *testing.T) {
		service, _, _ := newTestService(t, config.Analysis{MaxConcurrentJobs: 1})

		batch, err := service.SubmitBatch(nil)
		assert.Nil(t, batch)
		assert.ErrorIs(t, err, ErrEmptyBatch)
	})

	t.Run("Lote com falha parcial - itens isolados e totalizador correto", func(t *testing.T) {
		service, integrator, reports := newTestService(t, config.Analysis{MaxConcurrentJobs: 2})

		integrator.EXPECT().
			FetchProfile(domain.PlatformInstagram, "https://instagram.com/um").
			Return(profilePayload("ig-1", "https://instagram.com/um"), nil)
		integrator.EXPECT().
			FetchProfile(domain.PlatformInstagram, "https://instagram.com/dois").
			Return(nil, errors.New("perfil inexistente"))
		integrator.EXPECT().
			FetchProfile(domain.PlatformYouTube, "https://youtube.com/@tres").
			Return(profilePayload("yt-3", "https://youtube.com/@tres"), nil)
		reports.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)

		batch, err := service.SubmitBatch([]BatchRequest{
			{URL: "https://instagram.com/um", Platform: "instagram"},
			{URL: "https://instagram.com/dois", Platform: "instagram"},
			{URL: "https://youtube.com/@tres", Platform: "youtube"},
		})
		assert.NoError(t, err)
		assert.Len(t, batch.Items, 3)

		assert.Eventually(t, func() bool {
			current, getErr := service.GetBatch(batch.ID)
			return getErr == nil && current.Done
		}, 5*time.Second, 10*time.Millisecond)

		finished, getErr := service.GetBatch(batch.ID)
		assert.NoError(t, getErr)
		assert.Equal(t, domain.BatchSummary{Success: 2, Failed: 1}, finished.Summary)
		assert.NotNil(t, finished.FinishedAt)

		assert.Equal(t, domain.BatchItemCompleted, finished.Items[0].Status)
		assert.Equal(t, "instagram:ig-1", finished.Items[0].KolID)
		assert.Equal(t, domain.BatchItemError, finished.Items[1].Status)
		assert.Contains(t, finished.Items[1].Error, "perfil inexistente")
		assert.Equal(t, domain.BatchItemCompleted, finished.Items[2].Status)
		assert.Equal(t, "youtube:yt-3", finished.Items[2].KolID)
	})

	t.Run("Snapshot é cópia - mutações externas não vazam para o lote", func(t *testing.T) {
		service, integrator, reports := newTestService(t, config.Analysis{MaxConcurrentJobs: 1})

		integrator.EXPECT().
			FetchProfile(domain.PlatformInstagram, "https://instagram.com/um").
			Return(profilePayload("ig-1", "https://instagram.com/um"), nil)
		reports.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

		batch, err := service.SubmitBatch([]BatchRequest{
			{URL: "https://instagram.com/um", Platform: "instagram"},
		})
		assert.NoError(t, err)

		batch.Items[0].Status = "adulterado"

		assert.Eventually(t, func() bool {
			current, getErr := service.GetBatch(batch.ID)
			return getErr == nil && current.Done
		}, 5*time.Second, 10*time.Millisecond)

		finished, getErr := service.GetBatch(batch.ID)
		assert.NoError(t, getErr)
		assert.Equal(t, domain.BatchItemCompleted, finished.Items[0].Status)
	})
}

func TestGetBatch(t *testing.T) {
	service, _, _ := newTestService(t, config.Analysis{MaxConcurrentJobs: 1})

	batch, err := service.GetBatch("inexistente")
	assert.Nil(t, batch)
	assert.ErrorIs(t, err, ErrBatchNotFound)
}

func TestGetReport(t *testing.T) {
	t.Run("Relatório existente", func(t *testing.T) {
		service, _, reports := newTestService(t, config.Analysis{MaxConcurrentJobs: 1})

		expected := &domain.StandardizedKOLReport{KolID: "instagram:ig-1"}
		reports.EXPECT().GetByKolID("instagram:ig-1").Return(expected, nil)

		report, err := service.GetReport("instagram:ig-1")
		assert.NoError(t, err)
		assert.Equal(t, expected, report)
	})

	t.Run("Falha do repositório - erro com contexto", func(t *testing.T) {
		service, _, reports := newTestService(t, config.Analysis{MaxConcurrentJobs: 1})

		reports.EXPECT().GetByKolID("instagram:ig-1").Return(nil, errors.New("conexão perdida"))

		report, err := service.GetReport("instagram:ig-1")
		assert.Nil(t, report)
		assert.ErrorContains(t, err, "erro ao buscar relatório")
	})
}

func TestListReports(t *testing.T) {
	service, _, reports := newTestService(t, config.Analysis{MaxConcurrentJobs: 1})

	expected := []*domain.StandardizedKOLReport{
		{KolID: "instagram:ig-1"},
		{KolID: "youtube:yt-2"},
	}
	reports.EXPECT().ListRecent(50).Return(expected, nil)

	listed, err := service.ListReports(50)
	assert.NoError(t, err)
	assert.Equal(t, expected, listed)
}
