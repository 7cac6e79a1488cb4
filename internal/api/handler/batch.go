package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/kol-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/kol-manager-api/pkg/apiErrors"
	"github.com/vfg2006/kol-manager-api/pkg/log"
)

type SubmitBatchRequest struct {
	Profiles []analyzing.BatchRequest `json:"profiles"`
}

// SubmitBatch registra um lote de perfis para análise assíncrona
func SubmitBatch(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req SubmitBatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		batch, err := service.SubmitBatch(req.Profiles)
		if err != nil {
			if errors.Is(err, analyzing.ErrEmptyBatch) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Lote sem perfis para analisar", nil)
				return
			}

			logger.WithField("error", err.Error()).Error("batches: failed to submit batch")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar lote de análise", nil)
			return
		}

		logger.WithFields(log.Fields{
			"batch_id":    batch.ID,
			"total_items": len(batch.Items),
		}).Info("batches: batch submitted")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(batch); err != nil {
			logger.WithField("error", err.Error()).Error("batches: failed to encode response")
		}
	})
}

// GetBatch retorna o andamento de um lote de análise
func GetBatch(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		batchID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		batch, err := service.GetBatch(batchID)
		if err != nil {
			if errors.Is(err, analyzing.ErrBatchNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrBatchNotFound, "Lote não encontrado", nil)
				return
			}

			logger.WithFields(log.Fields{
				"batch_id": batchID,
				"error":    err.Error(),
			}).Error("batches: failed to get batch")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar lote de análise", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(batch); err != nil {
			logger.WithFields(log.Fields{
				"batch_id": batchID,
				"error":    err.Error(),
			}).Error("batches: failed to encode response")
		}
	})
}
