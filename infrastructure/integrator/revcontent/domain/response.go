package revcontentdomain

import (
	"fmt"
	"strconv"
)

// Valores aplicados quando a plataforma omite campos nos corpos de erro
const (
	defaultErrorCode   = "Unknown code"
	defaultErrorTitle  = "Unknown title"
	defaultErrorDetail = "No details provided"
)

// AuthErrorBody representa o corpo de erro do endpoint /oauth/token
type AuthErrorBody struct {
	Error            *string `json:"error"`
	ErrorDescription *string `json:"error_description"`
}

// Code retorna o código de erro informado pela plataforma
func (b AuthErrorBody) Code() string {
	if b.Error == nil {
		return "unknown_error"
	}

	return *b.Error
}

// Description retorna a descrição do erro informada pela plataforma
func (b AuthErrorBody) Description() string {
	if b.ErrorDescription == nil {
		return "No description provided."
	}

	return *b.ErrorDescription
}

// ErrorListBody representa o corpo de erro padrão dos endpoints de boosts
type ErrorListBody struct {
	Errors []map[string]interface{} `json:"errors"`
}

// Messages monta uma linha "[code] title - detail" por erro, aplicando os padrões da API
func (b ErrorListBody) Messages() []string {
	messages := make([]string, 0, len(b.Errors))
	for _, item := range b.Errors {
		code := fieldOrDefault(item, "code", defaultErrorCode)
		title := fieldOrDefault(item, "title", defaultErrorTitle)
		detail := fieldOrDefault(item, "detail", defaultErrorDetail)

		messages = append(messages, fmt.Sprintf("[%s] %s - %s", code, title, detail))
	}

	return messages
}

func fieldOrDefault(item map[string]interface{}, key, fallback string) string {
	raw, ok := item[key]
	if !ok || raw == nil {
		return fallback
	}

	switch value := raw.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	return fmt.Sprintf("%v", raw)
}
