package domain

import (
	"fmt"
	"strings"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusActive  CampaignStatus = "ACTIVE"
	CampaignStatusPaused  CampaignStatus = "PAUSED"
	CampaignStatusErrored CampaignStatus = "ERRORED"
)

// AvailableCampaignStatus lista os status aceitos em filtros da API
var AvailableCampaignStatus = []CampaignStatus{
	CampaignStatusActive,
	CampaignStatusPaused,
	CampaignStatusErrored,
}

// CampaignStatusFromString converte o valor recebido na query string para um status válido
func CampaignStatusFromString(value string) (CampaignStatus, error) {
	status := CampaignStatus(strings.ToUpper(strings.TrimSpace(value)))
	for _, available := range AvailableCampaignStatus {
		if status == available {
			return status, nil
		}
	}

	return "", fmt.Errorf("status de campanha inválido: %s", value)
}

// Campaign representa uma campanha gerenciada localmente e vinculada a um boost da Revcontent
type Campaign struct {
	ID           string         `json:"id"`
	BoostID      string         `json:"boost_id"`
	Name         string         `json:"name"`
	Budget       float64        `json:"budget"`
	BidAmount    float64        `json:"bid_amount"`
	CountryCodes []string       `json:"country_codes"`
	Status       CampaignStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type LaunchCampaignRequest struct {
	Name         string   `json:"name"`
	Budget       float64  `json:"budget"`
	BidAmount    float64  `json:"bid_amount"`
	CountryCodes []string `json:"country_codes"`
}
