package normalizing

import (
	"errors"
	"fmt"
)

// Erros fatais de normalização. Campos opcionais ausentes nunca geram erro:
// recebem valores neutros e rebaixam a qualidade no metadata do relatório.
var (
	ErrUnsupportedPlatform = errors.New("plataforma não suportada")
	ErrMalformedInput      = errors.New("payload sem campos obrigatórios de identidade")
)

// NormalizationError carrega contexto adicional de uma falha de normalização
type NormalizationError struct {
	Err      error
	Platform string
	Field    string
}

func (e *NormalizationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: campo %q (plataforma %s)", e.Err.Error(), e.Field, e.Platform)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Platform)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

// IsUnsupportedPlatform verifica se o erro é de plataforma não suportada
func IsUnsupportedPlatform(err error) bool {
	return errors.Is(err, ErrUnsupportedPlatform)
}

// IsMalformedInput verifica se o erro é de payload malformado
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}
