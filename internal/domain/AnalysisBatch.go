package domain

import "time"

// BatchItemStatus é o estado de um item dentro de um lote de análise
type BatchItemStatus string

const (
	BatchItemPending    BatchItemStatus = "pending"
	BatchItemProcessing BatchItemStatus = "processing"
	BatchItemCompleted  BatchItemStatus = "completed"
	BatchItemError      BatchItemStatus = "error"
)

// BatchItem é um item (URL de perfil) de um lote de análise
type BatchItem struct {
	URL        string          `json:"url"`
	Platform   Platform        `json:"platform"`
	Status     BatchItemStatus `json:"status"`
	KolID      string          `json:"kol_id,omitempty"`
	Error      string          `json:"error,omitempty"`
	FinishedAt *time.Time      `json:"finished_at,omitempty"`
}

// BatchSummary é o totalizador final de um lote
type BatchSummary struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// AnalysisBatch acompanha o processamento de N URLs. A falha de um item
// nunca interrompe os demais; cada item guarda seu próprio motivo de erro.
type AnalysisBatch struct {
	ID         string       `json:"id"`
	Items      []*BatchItem `json:"items"`
	Summary    BatchSummary `json:"summary"`
	Done       bool         `json:"done"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt *time.Time   `json:"finished_at,omitempty"`
}

// Progress retorna quantos itens já saíram dos estados pending/processing
func (b *AnalysisBatch) Progress() (finished, total int) {
	for _, item := range b.Items {
		if item.Status == BatchItemCompleted || item.Status == BatchItemError {
			finished++
		}
	}
	return finished, len(b.Items)
}
