package branding

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de marcas
var (
	// Erros de validação
	ErrBrandIDRequired   = errors.New("identificador da marca é obrigatório")
	ErrBrandNameRequired = errors.New("nome da marca é obrigatório")
	ErrBrandNotFound     = errors.New("marca não encontrada")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")

	// Erros de geração de identificador
	ErrGenerateID = errors.New("erro ao gerar identificador único")
)

// BrandingError é um erro com contexto adicional para marcas
type BrandingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	BrandID string // ID da marca envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *BrandingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *BrandingError) Unwrap() error {
	return e.Err
}

// NewBrandingError cria um novo BrandingError
func NewBrandingError(err error, code string, details string) *BrandingError {
	return &BrandingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewBrandingErrorWithID cria um novo BrandingError com ID da marca
func NewBrandingErrorWithID(err error, code string, brandID string, details string) *BrandingError {
	return &BrandingError{
		Err:     err,
		Code:    code,
		BrandID: brandID,
		Details: details,
	}
}
