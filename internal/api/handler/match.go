package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/kol-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/kol-manager-api/internal/usecases/branding"
	"github.com/vfg2006/kol-manager-api/internal/usecases/matching"
	"github.com/vfg2006/kol-manager-api/pkg/apiErrors"
	"github.com/vfg2006/kol-manager-api/pkg/log"
)

// MatchKolToBrand calcula a compatibilidade entre um influenciador e uma marca
func MatchKolToBrand(matcher matching.Matcher, analyzer analyzing.Analyzer, brands branding.BrandingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		brandID := params.ByName("id")
		kolID := params.ByName("kol_id")

		logger.WithFields(log.Fields{
			"brand_id": brandID,
			"kol_id":   kolID,
		}).Info("matching: computing match score")

		report, err := analyzer.GetReport(kolID)
		if err != nil {
			logger.WithFields(log.Fields{
				"kol_id": kolID,
				"error":  err.Error(),
			}).Error("matching: failed to get report")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar relatório do influenciador", nil)
			return
		}

		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrKolReportNotFound, "Relatório não encontrado", nil)
			return
		}

		brand, err := brands.GetBrand(brandID)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand_id": brandID,
				"error":    err.Error(),
			}).Error("matching: failed to get brand")

			handleBrandingError(w, err)
			return
		}

		score := matcher.Match(report, brand)

		logger.WithFields(log.Fields{
			"brand_id":      brandID,
			"kol_id":        kolID,
			"overall_score": score.OverallScore,
		}).Info("matching: match score computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(score); err != nil {
			logger.WithFields(log.Fields{
				"brand_id": brandID,
				"kol_id":   kolID,
				"error":    err.Error(),
			}).Error("matching: failed to encode response")
		}
	})
}
