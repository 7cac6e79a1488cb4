package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/internal/usecases/branding"
	"github.com/vfg2006/kol-manager-api/pkg/apiErrors"
)

// CreateBrand cria um novo perfil de marca
func CreateBrand(service branding.BrandingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateBrand")

		var brand *domain.BrandProfile
		if err := json.NewDecoder(r.Body).Decode(&brand); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		brand, err := service.CreateBrand(brand)
		if err != nil {
			logrus.Error(err)
			handleBrandingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(brand); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateBrand atualiza parcialmente um perfil de marca
func UpdateBrand(service branding.BrandingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateBrand")

		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if brandID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da marca não fornecido", nil)
			return
		}

		var req *domain.UpdateBrandProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.ID = brandID

		brand, err := service.UpdateBrand(req)
		if err != nil {
			logrus.Error(err)
			handleBrandingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(brand); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetBrand retorna um perfil de marca por ID
func GetBrand(service branding.BrandingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if brandID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da marca não fornecido", nil)
			return
		}

		brand, err := service.GetBrand(brandID)
		if err != nil {
			logrus.Error(err)
			handleBrandingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(brand); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ListBrands lista todos os perfis de marca
func ListBrands(service branding.BrandingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brands, err := service.ListBrands()
		if err != nil {
			logrus.Error(err)
			handleBrandingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(brands); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteBrand remove um perfil de marca
func DeleteBrand(service branding.BrandingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteBrand")

		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if brandID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da marca não fornecido", nil)
			return
		}

		if err := service.DeleteBrand(brandID); err != nil {
			logrus.Error(err)
			handleBrandingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleBrandingError converte erros do serviço de marcas em respostas de API
func handleBrandingError(w http.ResponseWriter, err error) {
	var brandErr *branding.BrandingError
	if errors.As(err, &brandErr) {
		apiErrors.WriteError(w, brandErr.Code, brandErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, branding.ErrBrandNotFound):
		apiErrors.WriteError(w, apiErrors.ErrBrandNotFound, "Marca não encontrada", nil)

	case errors.Is(err, branding.ErrBrandNameRequired), errors.Is(err, branding.ErrBrandIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar marca", nil)
	}
}
