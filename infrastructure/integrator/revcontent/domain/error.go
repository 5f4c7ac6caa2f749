package revcontentdomain

import (
	"errors"
)

// Categorias de falha da integração com a Revcontent
var (
	ErrNotAuthenticated  = errors.New("not authenticated: call Authenticate first")
	ErrBadRequest        = errors.New("request rejected by the Revcontent API")
	ErrProtocolViolation = errors.New("unexpected response shape from the Revcontent API")
	ErrRequestFailed     = errors.New("Revcontent API request failed")
)

// APIError carrega o contexto da falha retornada pela plataforma
type APIError struct {
	Err        error  // Categoria base do erro
	Message    string // Mensagem pronta para logs e respostas
	StatusCode int    // Status HTTP retornado pela plataforma (zero quando a falha é local)
	Body       string // Corpo bruto da resposta, quando houver
}

// Error implementa a interface error
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap retorna a categoria base, permitindo errors.Is com os sentinelas
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewNotAuthenticated cria o erro de operação sem token
func NewNotAuthenticated() *APIError {
	return &APIError{
		Err:     ErrNotAuthenticated,
		Message: ErrNotAuthenticated.Error(),
	}
}

// NewBadRequest cria um erro para rejeições 400 da plataforma
func NewBadRequest(message string, statusCode int, body string) *APIError {
	return &APIError{
		Err:        ErrBadRequest,
		Message:    message,
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewProtocolViolation cria um erro para respostas de sucesso com formato inesperado
func NewProtocolViolation(message string) *APIError {
	return &APIError{
		Err:     ErrProtocolViolation,
		Message: message,
	}
}

// NewRequestFailed cria um erro para os demais status de falha
func NewRequestFailed(message string, statusCode int, body string) *APIError {
	return &APIError{
		Err:        ErrRequestFailed,
		Message:    message,
		StatusCode: statusCode,
		Body:       body,
	}
}

// IsAPIError verifica se o erro pertence a alguma das categorias da integração
func IsAPIError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrProtocolViolation) ||
		errors.Is(err, ErrRequestFailed)
}
