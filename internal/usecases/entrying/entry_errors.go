package entrying

import (
	"errors"
	"fmt"
)

// Tipos de erros de submissão de entradas
var (
	// Erros de validação
	ErrInvalidEntry = errors.New("entrada inválida")

	// Erros de consulta
	ErrPersonNotFound = errors.New("person não encontrado")

	// Erros de banco de dados
	ErrStoreOperation = errors.New("erro ao realizar operação no banco de dados")
)

// EntryError é um erro com contexto adicional para submissões
type EntryError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *EntryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *EntryError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica se o erro foi detectado antes de qualquer mutação
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEntry)
}

// IsNotFoundError verifica se o person não foi resolvido
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrPersonNotFound)
}

// NewEntryError cria um novo erro de submissão
func NewEntryError(baseErr error, code string, details string) *EntryError {
	return &EntryError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
