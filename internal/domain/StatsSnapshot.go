package domain

import (
	"time"
)

// StatsSnapshot representa uma medição diária de performance de um boost armazenada no banco
type StatsSnapshot struct {
	ID          int64                  `json:"id"`
	CampaignID  string                 `json:"campaign_id"`
	BoostID     string                 `json:"boost_id"`
	Date        time.Time              `json:"date"`
	Impressions int                    `json:"impressions"`
	Clicks      int                    `json:"clicks"`
	CTR         float64                `json:"ctr"`
	Status      string                 `json:"status"`
	Stats       map[string]interface{} `json:"stats"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// PerformanceReport agrega os registros retornados pela Revcontent e o resumo persistido
type PerformanceReport struct {
	Campaign *Campaign                `json:"campaign"`
	Records  []map[string]interface{} `json:"records"`
	Snapshot *StatsSnapshot           `json:"snapshot,omitempty"`
}
