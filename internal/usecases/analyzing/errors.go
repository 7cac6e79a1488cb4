package analyzing

import "errors"

var (
	ErrEmptyBatch    = errors.New("lote sem itens para analisar")
	ErrBatchNotFound = errors.New("lote não encontrado")
)
