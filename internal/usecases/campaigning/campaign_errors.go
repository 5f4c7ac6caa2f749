package campaigning

import (
	"errors"
	"fmt"
)

// Tipos de erros de campanha personalizados
var (
	// Erros de operação de campanha
	ErrCampaignNotFound    = errors.New("campanha não encontrada")
	ErrBoostAlreadyExists  = errors.New("boost já vinculado a uma campanha")
	ErrLaunchRejected      = errors.New("lançamento rejeitado pela plataforma de anúncios")
	ErrPlatformUnavailable = errors.New("plataforma de anúncios indisponível")

	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidBudget       = errors.New("orçamento inválido")
	ErrInvalidBidAmount    = errors.New("lance inválido")

	// Erros internos
	ErrGenerateID          = errors.New("erro ao gerar identificador da campanha")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
	ErrCredentialsRotation = errors.New("erro ao atualizar credenciais da plataforma")
)

// CampaignError é um erro com contexto adicional das operações de campanha
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // ID da campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CampaignError) Unwrap() error {
	return e.Err
}

// NewCampaignError cria um novo erro de campanha
func NewCampaignError(baseErr error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewCampaignErrorWithID cria um novo erro de campanha com o ID da campanha envolvida
func NewCampaignErrorWithID(baseErr error, code string, campaignID string, details string) *CampaignError {
	return &CampaignError{
		Err:        baseErr,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
