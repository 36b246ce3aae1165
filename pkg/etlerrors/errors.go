package etlerrors

import (
	"fmt"
)

// Códigos de erro do pipeline
const (
	// Erros de validação de linha (VAL)
	ErrMissingRequiredField = "VAL_001" // Campo obrigatório ausente
	ErrInvalidNumericField  = "VAL_002" // Campo numérico malformado
	ErrInvalidDateField     = "VAL_003" // Campo de data malformado

	// Erros de origem (SRC)
	ErrSourceUnreadable = "SRC_001" // Arquivo de origem ausente ou ilegível
	ErrSourceMalformed  = "SRC_002" // Arquivo de origem corrompido/estrutura inesperada
	ErrUnknownEntity    = "SRC_003" // Entidade não reconhecida no nome do arquivo

	// Erros do warehouse (DB)
	ErrDatabaseOperation = "DB_001" // Erro de operação de banco de dados
)

// PipelineError representa um erro do pipeline com código estável,
// usado como motivo de skip de linha ou de falha de carga
type PipelineError struct {
	Code    string
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// New cria um erro de pipeline com código e mensagem formatada
func New(code string, format string, args ...any) *PipelineError {
	return &PipelineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap envolve um erro existente com um código de pipeline
func Wrap(err error, code string, format string, args ...any) *PipelineError {
	return &PipelineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// IsValidation indica se o erro é de validação de linha (skip) e não de infraestrutura
func IsValidation(err error) bool {
	pipeErr, ok := err.(*PipelineError)
	if !ok {
		return false
	}

	switch pipeErr.Code {
	case ErrMissingRequiredField, ErrInvalidNumericField, ErrInvalidDateField:
		return true
	}
	return false
}
