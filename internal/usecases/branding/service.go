// Package branding gerencia os perfis de marca usados pelo cálculo de
// compatibilidade entre marcas e influenciadores.
package branding

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-manager-api/infrastructure/repository"
	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/pkg/apiErrors"
	"github.com/vfg2006/kol-manager-api/pkg/utils"
)

type BrandingService interface {
	CreateBrand(brand *domain.BrandProfile) (*domain.BrandProfile, error)
	UpdateBrand(request *domain.UpdateBrandProfileRequest) (*domain.BrandProfile, error)
	GetBrand(brandID string) (*domain.BrandProfile, error)
	ListBrands() ([]*domain.BrandProfile, error)
	DeleteBrand(brandID string) error
}

type Service struct {
	brandRepository repository.BrandProfileRepository
	now             func() time.Time
}

type Option func(*Service)

// WithClock injeta o relógio, usado nos testes
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(brandRepository repository.BrandProfileRepository, opts ...Option) BrandingService {
	s := &Service{
		brandRepository: brandRepository,
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) CreateBrand(brand *domain.BrandProfile) (*domain.BrandProfile, error) {
	if brand.Name == "" {
		return nil, NewBrandingError(ErrBrandNameRequired, apiErrors.ErrMissingRequiredData, "Nome da marca não informado")
	}

	brandID, err := utils.GenerateID()
	if err != nil {
		return nil, NewBrandingError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para marca")
	}

	brand.ID = brandID
	brand.CreatedAt = s.now()
	brand.UpdatedAt = brand.CreatedAt

	if err := s.brandRepository.Create(brand); err != nil {
		logrus.Error("Error creating brand on the repository:", err)
		return nil, NewBrandingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar marca no banco de dados")
	}

	return brand, nil
}

func (s *Service) UpdateBrand(request *domain.UpdateBrandProfileRequest) (*domain.BrandProfile, error) {
	if request.ID == "" {
		return nil, NewBrandingError(ErrBrandIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da marca não informado")
	}

	// Busca a marca para verificar se existe
	brand, err := s.brandRepository.GetByID(request.ID)
	if err != nil {
		logrus.Error("Error getting brand by id on the repository:", err)
		return nil, NewBrandingErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Erro ao buscar marca no banco de dados")
	}

	if brand == nil {
		return nil, NewBrandingErrorWithID(ErrBrandNotFound, apiErrors.ErrBrandNotFound, request.ID, "Marca não encontrada")
	}

	applyBrandUpdate(brand, request)
	brand.UpdatedAt = s.now()

	if err := s.brandRepository.Update(brand); err != nil {
		logrus.Error("Error updating brand on the repository:", err)
		return nil, NewBrandingErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar marca no banco de dados")
	}

	return brand, nil
}

func (s *Service) GetBrand(brandID string) (*domain.BrandProfile, error) {
	if brandID == "" {
		return nil, NewBrandingError(ErrBrandIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da marca não informado")
	}

	brand, err := s.brandRepository.GetByID(brandID)
	if err != nil {
		logrus.Error("Error getting brand by id on the repository:", err)
		return nil, NewBrandingErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, brandID, "Erro ao buscar marca no banco de dados")
	}

	if brand == nil {
		return nil, NewBrandingErrorWithID(ErrBrandNotFound, apiErrors.ErrBrandNotFound, brandID, "Marca não encontrada")
	}

	return brand, nil
}

func (s *Service) ListBrands() ([]*domain.BrandProfile, error) {
	brands, err := s.brandRepository.List()
	if err != nil {
		logrus.Error("Error listing brands on the repository:", err)
		return nil, NewBrandingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar marcas no banco de dados")
	}

	return brands, nil
}

func (s *Service) DeleteBrand(brandID string) error {
	if brandID == "" {
		return NewBrandingError(ErrBrandIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da marca não informado")
	}

	brand, err := s.brandRepository.GetByID(brandID)
	if err != nil {
		logrus.Error("Error getting brand by id on the repository:", err)
		return NewBrandingErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, brandID, "Erro ao buscar marca no banco de dados")
	}

	if brand == nil {
		return NewBrandingErrorWithID(ErrBrandNotFound, apiErrors.ErrBrandNotFound, brandID, "Marca não encontrada")
	}

	if err := s.brandRepository.Delete(brandID); err != nil {
		logrus.Error("Error deleting brand on the repository:", err)
		return NewBrandingErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, brandID, "Falha ao remover marca do banco de dados")
	}

	return nil
}

// applyBrandUpdate aplica apenas os campos presentes na requisição parcial
func applyBrandUpdate(brand *domain.BrandProfile, request *domain.UpdateBrandProfileRequest) {
	if request.Name != nil {
		brand.Name = *request.Name
	}
	if request.Industry != nil {
		brand.Industry = *request.Industry
	}
	if request.HomeMarket != nil {
		brand.HomeMarket = *request.HomeMarket
	}
	if request.Tone != nil {
		brand.Tone = *request.Tone
	}
	if request.TargetAudience != nil {
		brand.TargetAudience = *request.TargetAudience
	}
	if request.CampaignGoals != nil {
		brand.CampaignGoals = request.CampaignGoals
	}
	if request.PreferredContent != nil {
		brand.PreferredContent = request.PreferredContent
	}
	if request.TargetMarkets != nil {
		brand.TargetMarkets = request.TargetMarkets
	}
	if request.Budget != nil {
		brand.Budget = *request.Budget
	}
	if request.ProductComplexity != nil {
		brand.ProductComplexity = *request.ProductComplexity
	}
}
