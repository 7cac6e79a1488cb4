package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/kol-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/kol-manager-api/internal/usecases/normalizing"
	"github.com/vfg2006/kol-manager-api/internal/usecases/standardizing"
	"github.com/vfg2006/kol-manager-api/pkg/apiErrors"
	"github.com/vfg2006/kol-manager-api/pkg/log"
)

type AnalyzeKolRequest struct {
	URL      string `json:"url"`
	Platform string `json:"platform"`
}

// AnalyzeKol analisa um perfil de influenciador e retorna o relatório padronizado
func AnalyzeKol(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req AnalyzeKolRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.URL == "" || req.Platform == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "URL e plataforma são obrigatórios", nil)
			return
		}

		logger.WithFields(log.Fields{
			"url":      req.URL,
			"platform": req.Platform,
		}).Info("kols: analyzing profile")

		report, err := service.AnalyzeProfile(req.Platform, req.URL)
		if err != nil {
			logger.WithFields(log.Fields{
				"url":      req.URL,
				"platform": req.Platform,
				"error":    err.Error(),
			}).Error("kols: failed to analyze profile")

			switch {
			case errors.Is(err, normalizing.ErrUnsupportedPlatform):
				apiErrors.WriteError(w, apiErrors.ErrUnsupportedPlatform, "Plataforma não suportada", nil)
			case errors.Is(err, normalizing.ErrMalformedInput):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dados do perfil malformados", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao analisar o perfil", nil)
			}
			return
		}

		logger.WithField("kol_id", report.KolID).Info("kols: profile analyzed successfully")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithField("error", err.Error()).Error("kols: failed to encode response")
		}
	})
}

// GetKolReport retorna o relatório mais recente de um influenciador
func GetKolReport(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kolID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("kol_id", kolID).Info("kols: fetching report by ID")

		report, err := service.GetReport(kolID)
		if err != nil {
			logger.WithFields(log.Fields{
				"kol_id": kolID,
				"error":  err.Error(),
			}).Error("kols: failed to get report")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar relatório", nil)
			return
		}

		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrKolReportNotFound, "Relatório não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithFields(log.Fields{
				"kol_id": kolID,
				"error":  err.Error(),
			}).Error("kols: failed to encode response")
		}
	})
}

// ListKolReports lista os relatórios mais recentes
func ListKolReports(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := 50
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		reports, err := service.ListReports(limit)
		if err != nil {
			logger.WithField("error", err.Error()).Error("kols: failed to list reports")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar relatórios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reports); err != nil {
			logger.WithField("error", err.Error()).Error("kols: failed to encode response")
		}
	})
}

// ExportKolReport retorna o relatório achatado em campos rotulados para exportação
func ExportKolReport(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kolID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("kol_id", kolID).Info("kols: exporting report")

		report, err := service.GetReport(kolID)
		if err != nil {
			logger.WithFields(log.Fields{
				"kol_id": kolID,
				"error":  err.Error(),
			}).Error("kols: failed to get report for export")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar relatório", nil)
			return
		}

		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrKolReportNotFound, "Relatório não encontrado", nil)
			return
		}

		fields := standardizing.FlattenReport(report)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(fields); err != nil {
			logger.WithFields(log.Fields{
				"kol_id": kolID,
				"error":  err.Error(),
			}).Error("kols: failed to encode response")
		}
	})
}
