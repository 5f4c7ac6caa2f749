package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	revcontentdomain "github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/domain"
	"github.com/vfg2006/boost-manager-api/internal/domain"
	"github.com/vfg2006/boost-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/boost-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/boost-manager-api/pkg/apiErrors"
	"github.com/vfg2006/boost-manager-api/pkg/utils"
)

type UpdateCredentialsRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// LaunchCampaign cria o boost na Revcontent e registra a campanha
func LaunchCampaign(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - LaunchCampaign")

		var request domain.LaunchCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		campaign, err := service.Launch(r.Context(), &request)
		if err != nil {
			logrus.Error("Error launching campaign:", err)
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// ListCampaigns lista as campanhas registradas, com filtro opcional de status
func ListCampaigns(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		availableStatus := make([]domain.CampaignStatus, 0)
		if filterStatus != "" {
			for _, value := range strings.Split(filterStatus, ",") {
				status, err := domain.CampaignStatusFromString(value)
				if err != nil {
					apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
					return
				}

				availableStatus = append(availableStatus, status)
			}
		}

		campaigns, err := service.ListCampaigns(availableStatus)
		if err != nil {
			logrus.Error("Error listing campaigns:", err)
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// GetCampaign retorna uma campanha pelo ID
func GetCampaign(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		campaign, err := service.GetCampaign(id)
		if err != nil {
			logrus.Error("Error getting campaign:", err)
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// CampaignPerformance consulta a performance da campanha direto na Revcontent
func CampaignPerformance(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CampaignPerformance")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		report, err := service.CampaignPerformance(r.Context(), id)
		if err != nil {
			logrus.Error("Error getting campaign performance:", err)
			handleReportingError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// CampaignPerformanceHistory retorna os snapshots persistidos da campanha no período
func CampaignPerformanceHistory(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		var startDate, endDate *time.Time

		if value := r.URL.Query().Get("start_date"); value != "" {
			parsed, err := utils.ParseDate(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start_date inválido", nil)
				return
			}
			startDate = parsed
		}

		if value := r.URL.Query().Get("end_date"); value != "" {
			parsed, err := utils.ParseDate(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end_date inválido", nil)
				return
			}
			endDate = parsed
		}

		snapshots, err := service.PerformanceHistory(id, startDate, endDate)
		if err != nil {
			logrus.Error("Error getting campaign performance history:", err)
			handleReportingError(w, err, id)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// UpdateCredentials troca as credenciais de acesso à Revcontent
func UpdateCredentials(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCredentials")

		var request UpdateCredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if err := service.UpdateCredentials(request.ClientID, request.ClientSecret); err != nil {
			logrus.Error("Error updating platform credentials:", err)
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Credenciais atualizadas com sucesso",
		})
	}
}

// handleCampaignError traduz os erros do caso de uso de campanhas para a resposta HTTP
func handleCampaignError(w http.ResponseWriter, err error) {
	// Verificar se é um CampaignError para obter o código específico do erro
	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		var details map[string]interface{}
		if campaignErr.CampaignID != "" {
			details = map[string]interface{}{
				"campaign_id": campaignErr.CampaignID,
			}
		}

		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), details)
		return
	}

	// Caso não seja um CampaignError específico, verificar erros comuns
	switch {
	case errors.Is(err, campaigning.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)

	case errors.Is(err, campaigning.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar campanhas no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar a campanha", nil)
	}
}

// handleReportingError traduz os erros de consulta de performance para a resposta HTTP
func handleReportingError(w http.ResponseWriter, err error, campaignID string) {
	switch {
	case errors.Is(err, reporting.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", map[string]interface{}{
			"campaign_id": campaignID,
		})

	case errors.Is(err, reporting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Intervalo de datas inválido", nil)

	case errors.Is(err, revcontentdomain.ErrBadRequest):
		apiErrors.WriteError(w, apiErrors.ErrRevcontentBadRequest, err.Error(), nil)

	case errors.Is(err, revcontentdomain.ErrProtocolViolation):
		apiErrors.WriteError(w, apiErrors.ErrRevcontentProtocol, err.Error(), nil)

	case errors.Is(err, revcontentdomain.ErrNotAuthenticated), errors.Is(err, revcontentdomain.ErrRequestFailed):
		apiErrors.WriteError(w, apiErrors.ErrRevcontentRequest, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar performance da campanha", nil)
	}
}
