package branding

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/kol-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kol-manager-api/internal/domain"
)

func testClock() time.Time {
	return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) (BrandingService, *mocks.MockBrandProfileRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockBrandProfileRepository(ctrl)
	return NewService(repo, WithClock(testClock)), repo
}

func stringPtr(s string) *string {
	return &s
}

func TestCreateBrand(t *testing.T) {
	tests := []struct {
		name     string
		brand    *domain.BrandProfile
		setup    func(repo *mocks.MockBrandProfileRepository)
		validate func(t *testing.T, created *domain.BrandProfile, err error)
	}{
		{
			name:  "Marca válida - deve gerar identificador e timestamps",
			brand: &domain.BrandProfile{Name: "TechCo", Industry: "tecnologia"},
			setup: func(repo *mocks.MockBrandProfileRepository) {
				repo.EXPECT().Create(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, created *domain.BrandProfile, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, created.ID)
				assert.Equal(t, testClock(), created.CreatedAt)
				assert.Equal(t, created.CreatedAt, created.UpdatedAt)
			},
		},
		{
			name:  "Marca sem nome - deve recusar",
			brand: &domain.BrandProfile{Industry: "tecnologia"},
			setup: func(*mocks.MockBrandProfileRepository) {},
			validate: func(t *testing.T, created *domain.BrandProfile, err error) {
				assert.Nil(t, created)
				assert.ErrorIs(t, err, ErrBrandNameRequired)
			},
		},
		{
			name:  "Falha no banco - deve devolver erro de operação",
			brand: &domain.BrandProfile{Name: "TechCo"},
			setup: func(repo *mocks.MockBrandProfileRepository) {
				repo.EXPECT().Create(gomock.Any()).Return(errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, created *domain.BrandProfile, err error) {
				assert.Nil(t, created)
				assert.ErrorIs(t, err, ErrDatabaseOperation)

				var brandingErr *BrandingError
				assert.ErrorAs(t, err, &brandingErr)
				assert.NotEmpty(t, brandingErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			created, err := service.CreateBrand(tt.brand)
			tt.validate(t, created, err)
		})
	}
}

func TestUpdateBrand(t *testing.T) {
	existing := func() *domain.BrandProfile {
		return &domain.BrandProfile{
			ID:         "brand-1",
			Name:       "TechCo",
			Industry:   "tecnologia",
			HomeMarket: "BR",
			CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	tests := []struct {
		name     string
		request  *domain.UpdateBrandProfileRequest
		setup    func(repo *mocks.MockBrandProfileRepository)
		validate func(t *testing.T, updated *domain.BrandProfile, err error)
	}{
		{
			name: "Atualização parcial - só os campos presentes mudam",
			request: &domain.UpdateBrandProfileRequest{
				ID:   "brand-1",
				Name: stringPtr("TechCo Brasil"),
			},
			setup: func(repo *mocks.MockBrandProfileRepository) {
				repo.EXPECT().GetByID("brand-1").Return(existing(), nil)
				repo.EXPECT().Update(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, updated *domain.BrandProfile, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "TechCo Brasil", updated.Name)
				assert.Equal(t, "tecnologia", updated.Industry)
				assert.Equal(t, "BR", updated.HomeMarket)
				assert.Equal(t, testClock(), updated.UpdatedAt)
			},
		},
		{
			name:    "Requisição sem identificador - deve recusar",
			request: &domain.UpdateBrandProfileRequest{Name: stringPtr("X")},
			setup:   func(*mocks.MockBrandProfileRepository) {},
			validate: func(t *testing.T, updated *domain.BrandProfile, err error) {
				assert.Nil(t, updated)
				assert.ErrorIs(t, err, ErrBrandIDRequired)
			},
		},
		{
			name:    "Marca inexistente - deve devolver não encontrada",
			request: &domain.UpdateBrandProfileRequest{ID: "brand-9"},
			setup: func(repo *mocks.MockBrandProfileRepository) {
				repo.EXPECT().GetByID("brand-9").Return(nil, nil)
			},
			validate: func(t *testing.T, updated *domain.BrandProfile, err error) {
				assert.Nil(t, updated)
				assert.ErrorIs(t, err, ErrBrandNotFound)

				var brandingErr *BrandingError
				assert.ErrorAs(t, err, &brandingErr)
				assert.Equal(t, "brand-9", brandingErr.BrandID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			updated, err := service.UpdateBrand(tt.request)
			tt.validate(t, updated, err)
		})
	}
}

func TestGetBrand(t *testing.T) {
	t.Run("Marca existente", func(t *testing.T) {
		service, repo := newTestService(t)

		expected := &domain.BrandProfile{ID: "brand-1", Name: "TechCo"}
		repo.EXPECT().GetByID("brand-1").Return(expected, nil)

		brand, err := service.GetBrand("brand-1")
		assert.NoError(t, err)
		assert.Equal(t, expected, brand)
	})

	t.Run("Identificador vazio - deve recusar", func(t *testing.T) {
		service, _ := newTestService(t)

		brand, err := service.GetBrand("")
		assert.Nil(t, brand)
		assert.ErrorIs(t, err, ErrBrandIDRequired)
	})

	t.Run("Marca inexistente - deve devolver não encontrada", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetByID("brand-9").Return(nil, nil)

		brand, err := service.GetBrand("brand-9")
		assert.Nil(t, brand)
		assert.ErrorIs(t, err, ErrBrandNotFound)
	})
}

func TestDeleteBrand(t *testing.T) {
	t.Run("Marca existente - deve remover", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetByID("brand-1").Return(&domain.BrandProfile{ID: "brand-1"}, nil)
		repo.EXPECT().Delete("brand-1").Return(nil)

		assert.NoError(t, service.DeleteBrand("brand-1"))
	})

	t.Run("Marca inexistente - não deve chamar a remoção", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetByID("brand-9").Return(nil, nil)

		assert.ErrorIs(t, service.DeleteBrand("brand-9"), ErrBrandNotFound)
	})
}

func TestListBrands(t *testing.T) {
	service, repo := newTestService(t)

	expected := []*domain.BrandProfile{
		{ID: "brand-1", Name: "TechCo"},
		{ID: "brand-2", Name: "ModaCo"},
	}
	repo.EXPECT().List().Return(expected, nil)

	brands, err := service.ListBrands()
	assert.NoError(t, err)
	assert.Equal(t, expected, brands)
}
