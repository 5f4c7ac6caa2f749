package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	revcontentdomain "github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/domain"
	"github.com/vfg2006/boost-manager-api/internal/api/handler/router"
	"github.com/vfg2006/boost-manager-api/internal/domain"
	"github.com/vfg2006/boost-manager-api/internal/usecases/campaigning"
	campaigningmocks "github.com/vfg2006/boost-manager-api/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/boost-manager-api/internal/usecases/reporting"
	reportingmocks "github.com/vfg2006/boost-manager-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/boost-manager-api/pkg/apiErrors"
	"github.com/vfg2006/boost-manager-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

// authenticatedRequest monta a requisição já com as claims no contexto,
// como o AuthMiddleware faria após validar o token
func authenticatedRequest(method, target string, body io.Reader, roleID int) *http.Request {
	req := httptest.NewRequest(method, target, body)

	claims := &domain.Claims{
		UserID:     1,
		UserName:   "Usuário",
		UserEmail:  "usuario@boostmanager.com",
		UserActive: true,
		UserRoleID: roleID,
	}

	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	var apiErr apiErrors.APIError
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func TestLaunchCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockService := campaigningmocks.NewMockCampaigner(ctrl)

	r := router.New(router.WithRoutes(Campaigns(mockService)...))

	validBody := `{"name":"Campanha de inverno","budget":150,"bid_amount":0.35,"country_codes":["BR","PT"]}`

	tests := []struct {
		name     string
		roleID   int
		body     string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Deve criar a campanha e responder 201",
			roleID: middleware.RoleAdmin,
			body:   validBody,
			setup: func() {
				mockService.EXPECT().
					Launch(gomock.Any(), &domain.LaunchCampaignRequest{
						Name:         "Campanha de inverno",
						Budget:       150,
						BidAmount:    0.35,
						CountryCodes: []string{"BR", "PT"},
					}).
					Return(&domain.Campaign{
						ID:      "abc123",
						BoostID: "B777",
						Name:    "Campanha de inverno",
						Status:  domain.CampaignStatusActive,
					}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

				var campaign domain.Campaign
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&campaign))
				assert.Equal(t, "abc123", campaign.ID)
				assert.Equal(t, "B777", campaign.BoostID)
				assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
			},
		},
		{
			name:   "Deve permitir o lançamento para supervisores",
			roleID: middleware.RoleSupervisor,
			body:   validBody,
			setup: func() {
				mockService.EXPECT().
					Launch(gomock.Any(), gomock.Any()).
					Return(&domain.Campaign{ID: "abc123", BoostID: "B777"}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)
			},
		},
		{
			name:   "Deve responder 400 para corpo inválido",
			roleID: middleware.RoleAdmin,
			body:   `{"name":`,
			setup:  func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
				assert.Contains(t, apiErr.Message, "Corpo da requisição inválido")
			},
		},
		{
			name:   "Deve mapear a rejeição da plataforma para 400",
			roleID: middleware.RoleAdmin,
			body:   validBody,
			setup: func() {
				mockService.EXPECT().
					Launch(gomock.Any(), gomock.Any()).
					Return(nil, campaigning.NewCampaignError(
						campaigning.ErrLaunchRejected,
						apiErrors.ErrRevcontentBadRequest,
						"400 Bad Request: [invalid_targeting] Invalid Targeting - Country code XX is not supported",
					))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrRevcontentBadRequest, apiErr.Code)
				assert.Contains(t, apiErr.Message, "invalid_targeting")
			},
		},
		{
			name:   "Deve mapear a indisponibilidade da plataforma para 502",
			roleID: middleware.RoleAdmin,
			body:   validBody,
			setup: func() {
				mockService.EXPECT().
					Launch(gomock.Any(), gomock.Any()).
					Return(nil, campaigning.NewCampaignError(
						campaigning.ErrPlatformUnavailable,
						apiErrors.ErrRevcontentAuth,
						"Falha ao autenticar na plataforma de anúncios",
					))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadGateway, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrRevcontentAuth, apiErr.Code)
			},
		},
		{
			name:   "Deve incluir o campaign_id nos detalhes quando a primeira coleta falha",
			roleID: middleware.RoleAdmin,
			body:   validBody,
			setup: func() {
				mockService.EXPECT().
					Launch(gomock.Any(), gomock.Any()).
					Return(nil, campaigning.NewCampaignErrorWithID(
						campaigning.ErrPlatformUnavailable,
						apiErrors.ErrRevcontentRequest,
						"camp-123",
						"Campanha criada, mas a consulta de performance falhou",
					))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadGateway, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrRevcontentRequest, apiErr.Code)

				details, ok := apiErr.Details.(map[string]interface{})
				assert.True(t, ok)
				assert.Equal(t, "camp-123", details["campaign_id"])
			},
		},
		{
			name:   "Deve mapear boost duplicado para 400",
			roleID: middleware.RoleAdmin,
			body:   validBody,
			setup: func() {
				mockService.EXPECT().
					Launch(gomock.Any(), gomock.Any()).
					Return(nil, campaigning.NewCampaignError(
						campaigning.ErrBoostAlreadyExists,
						apiErrors.ErrCampaignExists,
						"Boost já vinculado a uma campanha existente",
					))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrCampaignExists, apiErr.Code)
			},
		},
		{
			name:   "Deve negar o lançamento para clientes",
			roleID: middleware.RoleClient,
			body:   validBody,
			setup:  func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInsufficientPrivilege, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := authenticatedRequest(http.MethodPost, "/v1/campaigns", strings.NewReader(tt.body), tt.roleID)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestLaunchCampaign_SemAutenticacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := campaigningmocks.NewMockCampaigner(ctrl)

	r := router.New(router.WithRoutes(Campaigns(mockService)...))

	// Requisição sem claims no contexto, como se o AuthMiddleware não tivesse rodado
	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, apiErrors.ErrInvalidToken, apiErr.Code)
}

func TestListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := campaigningmocks.NewMockCampaigner(ctrl)

	r := router.New(router.WithRoutes(Campaigns(mockService)...))

	campaigns := []*domain.Campaign{
		{ID: "camp-1", BoostID: "B111", Name: "Campanha de inverno", Status: domain.CampaignStatusActive},
		{ID: "camp-2", BoostID: "B222", Name: "Campanha de verão", Status: domain.CampaignStatusPaused},
	}

	tests := []struct {
		name     string
		target   string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Deve listar todas as campanhas sem filtro de status",
			target: "/v1/campaigns",
			setup: func() {
				mockService.EXPECT().
					ListCampaigns([]domain.CampaignStatus{}).
					Return(campaigns, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var result []*domain.Campaign
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
				assert.Len(t, result, 2)
				assert.Equal(t, "camp-1", result[0].ID)
				assert.Equal(t, "camp-2", result[1].ID)
			},
		},
		{
			name:   "Deve normalizar e repassar o filtro de status",
			target: "/v1/campaigns?status=active,paused",
			setup: func() {
				mockService.EXPECT().
					ListCampaigns([]domain.CampaignStatus{
						domain.CampaignStatusActive,
						domain.CampaignStatusPaused,
					}).
					Return(campaigns[:1], nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var result []*domain.Campaign
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
				assert.Len(t, result, 1)
			},
		},
		{
			name:   "Deve responder 400 para status desconhecido",
			target: "/v1/campaigns?status=banana",
			setup:  func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
				assert.Contains(t, apiErr.Message, "status de campanha inválido")
			},
		},
		{
			name:   "Deve responder 500 quando a listagem falha no banco",
			target: "/v1/campaigns",
			setup: func() {
				mockService.EXPECT().
					ListCampaigns(gomock.Any()).
					Return(nil, campaigning.NewCampaignError(
						campaigning.ErrDatabaseOperation,
						apiErrors.ErrDatabaseOperation,
						"Falha ao listar campanhas no banco de dados",
					))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := authenticatedRequest(http.MethodGet, tt.target, nil, middleware.RoleClient)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestGetCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := campaigningmocks.NewMockCampaigner(ctrl)

	r := router.New(router.WithRoutes(Campaigns(mockService)...))

	tests := []struct {
		name     string
		target   string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Deve retornar a campanha pelo ID",
			target: "/v1/campaigns/camp-1",
			setup: func() {
				mockService.EXPECT().
					GetCampaign("camp-1").
					Return(&domain.Campaign{
						ID:      "camp-1",
						BoostID: "B111",
						Name:    "Campanha de inverno",
						Status:  domain.CampaignStatusActive,
					}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var campaign domain.Campaign
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&campaign))
				assert.Equal(t, "camp-1", campaign.ID)
				assert.Equal(t, "B111", campaign.BoostID)
			},
		},
		{
			name:   "Deve responder 404 com o campaign_id nos detalhes quando a campanha não existe",
			target: "/v1/campaigns/camp-404",
			setup: func() {
				mockService.EXPECT().
					GetCampaign("camp-404").
					Return(nil, campaigning.NewCampaignErrorWithID(
						campaigning.ErrCampaignNotFound,
						apiErrors.ErrCampaignNotFound,
						"camp-404",
						"",
					))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrCampaignNotFound, apiErr.Code)

				details, ok := apiErr.Details.(map[string]interface{})
				assert.True(t, ok)
				assert.Equal(t, "camp-404", details["campaign_id"])
			},
		},
		{
			name:   "Deve responder 500 quando a consulta falha no banco",
			target: "/v1/campaigns/camp-1",
			setup: func() {
				mockService.EXPECT().
					GetCampaign("camp-1").
					Return(nil, campaigning.NewCampaignError(
						campaigning.ErrDatabaseOperation,
						apiErrors.ErrDatabaseOperation,
						"Falha ao consultar a campanha no banco de dados",
					))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := authenticatedRequest(http.MethodGet, tt.target, nil, middleware.RoleClient)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestCampaignPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := reportingmocks.NewMockReporter(ctrl)

	r := router.New(router.WithRoutes(Performance(mockService)...))

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Deve retornar o relatório de performance da campanha",
			setup: func() {
				mockService.EXPECT().
					CampaignPerformance(gomock.Any(), "camp-1").
					Return(&domain.PerformanceReport{
						Campaign: &domain.Campaign{ID: "camp-1", BoostID: "B111"},
						Records: []map[string]interface{}{
							{"impressions": "1200", "clicks": "45", "status": "active"},
						},
						Snapshot: &domain.StatsSnapshot{
							CampaignID:  "camp-1",
							BoostID:     "B111",
							Impressions: 1200,
							Clicks:      45,
							CTR:         3.75,
						},
					}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var report domain.PerformanceReport
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
				assert.Equal(t, "camp-1", report.Campaign.ID)
				assert.Len(t, report.Records, 1)
				assert.Equal(t, 1200, report.Snapshot.Impressions)
			},
		},
		{
			name: "Deve responder 404 quando a campanha não existe",
			setup: func() {
				mockService.EXPECT().
					CampaignPerformance(gomock.Any(), "camp-1").
					Return(nil, reporting.ErrCampaignNotFound)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrCampaignNotFound, apiErr.Code)

				details, ok := apiErr.Details.(map[string]interface{})
				assert.True(t, ok)
				assert.Equal(t, "camp-1", details["campaign_id"])
			},
		},
		{
			name: "Deve mapear rejeições da Revcontent para 400",
			setup: func() {
				mockService.EXPECT().
					CampaignPerformance(gomock.Any(), "camp-1").
					Return(nil, revcontentdomain.NewBadRequest(
						"400 Bad Request: [invalid_boost] Invalid Boost - Boost not found",
						http.StatusBadRequest,
						`{"errors":[]}`,
					))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrRevcontentBadRequest, apiErr.Code)
				assert.Contains(t, apiErr.Message, "invalid_boost")
			},
		},
		{
			name: "Deve mapear respostas fora do formato esperado para 502",
			setup: func() {
				mockService.EXPECT().
					CampaignPerformance(gomock.Any(), "camp-1").
					Return(nil, revcontentdomain.NewProtocolViolation(`response does not contain "data" key`))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadGateway, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrRevcontentProtocol, apiErr.Code)
			},
		},
		{
			name: "Deve mapear falhas de comunicação com a Revcontent para 502",
			setup: func() {
				mockService.EXPECT().
					CampaignPerformance(gomock.Any(), "camp-1").
					Return(nil, revcontentdomain.NewRequestFailed(
						"API request failed: 500 internal error",
						http.StatusInternalServerError,
						"internal error",
					))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadGateway, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrRevcontentRequest, apiErr.Code)
			},
		},
		{
			name: "Deve mapear sessão não autenticada para 502",
			setup: func() {
				mockService.EXPECT().
					CampaignPerformance(gomock.Any(), "camp-1").
					Return(nil, revcontentdomain.NewNotAuthenticated())
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadGateway, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrRevcontentRequest, apiErr.Code)
			},
		},
		{
			name: "Deve responder 500 para erros não mapeados",
			setup: func() {
				mockService.EXPECT().
					CampaignPerformance(gomock.Any(), "camp-1").
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := authenticatedRequest(http.MethodGet, "/v1/campaigns/camp-1/performance", nil, middleware.RoleClient)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestCampaignPerformanceHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := reportingmocks.NewMockReporter(ctrl)

	r := router.New(router.WithRoutes(Performance(mockService)...))

	snapshots := []*domain.StatsSnapshot{
		{CampaignID: "camp-1", BoostID: "B111", Impressions: 1200, Clicks: 45},
		{CampaignID: "camp-1", BoostID: "B111", Impressions: 800, Clicks: 15},
	}

	tests := []struct {
		name     string
		target   string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Deve repassar o período informado na query string",
			target: "/v1/campaigns/camp-1/performance/history?start_date=2026-01-01&end_date=2026-01-31",
			setup: func() {
				mockService.EXPECT().
					PerformanceHistory("camp-1", gomock.Any(), gomock.Any()).
					DoAndReturn(func(campaignID string, startDate, endDate *time.Time) ([]*domain.StatsSnapshot, error) {
						assert.NotNil(t, startDate)
						assert.NotNil(t, endDate)
						assert.Equal(t, "2026-01-01", startDate.Format("2006-01-02"))
						assert.Equal(t, "2026-01-31", endDate.Format("2006-01-02"))
						return snapshots, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var result []*domain.StatsSnapshot
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
				assert.Len(t, result, 2)
			},
		},
		{
			name:   "Deve consultar sem período quando a query string está vazia",
			target: "/v1/campaigns/camp-1/performance/history",
			setup: func() {
				mockService.EXPECT().
					PerformanceHistory("camp-1", nil, nil).
					Return(snapshots, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var result []*domain.StatsSnapshot
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
				assert.Len(t, result, 2)
			},
		},
		{
			name:   "Deve responder 400 para start_date fora do formato",
			target: "/v1/campaigns/camp-1/performance/history?start_date=31-01-2026",
			setup:  func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
				assert.Equal(t, "Parâmetro start_date inválido", apiErr.Message)
			},
		},
		{
			name:   "Deve responder 400 para end_date fora do formato",
			target: "/v1/campaigns/camp-1/performance/history?end_date=ontem",
			setup:  func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
				assert.Equal(t, "Parâmetro end_date inválido", apiErr.Message)
			},
		},
		{
			name:   "Deve responder 400 quando o período é inválido",
			target: "/v1/campaigns/camp-1/performance/history?start_date=2026-01-31&end_date=2026-01-01",
			setup: func() {
				mockService.EXPECT().
					PerformanceHistory("camp-1", gomock.Any(), gomock.Any()).
					Return(nil, reporting.ErrInvalidPeriod)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
				assert.Equal(t, "Intervalo de datas inválido", apiErr.Message)
			},
		},
		{
			name:   "Deve responder 404 quando a campanha não existe",
			target: "/v1/campaigns/camp-1/performance/history",
			setup: func() {
				mockService.EXPECT().
					PerformanceHistory("camp-1", nil, nil).
					Return(nil, reporting.ErrCampaignNotFound)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrCampaignNotFound, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := authenticatedRequest(http.MethodGet, tt.target, nil, middleware.RoleClient)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestUpdateCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := campaigningmocks.NewMockCampaigner(ctrl)

	r := router.New(router.WithRoutes(Credentials(mockService)...))

	tests := []struct {
		name     string
		roleID   int
		body     string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Deve atualizar as credenciais e responder com a mensagem de sucesso",
			roleID: middleware.RoleAdmin,
			body:   `{"client_id":"novo-id","client_secret":"novo-secret"}`,
			setup: func() {
				mockService.EXPECT().
					UpdateCredentials("novo-id", "novo-secret").
					Return(nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var response map[string]string
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, "Credenciais atualizadas com sucesso", response["message"])
			},
		},
		{
			name:   "Deve negar a rotação de credenciais para supervisores",
			roleID: middleware.RoleSupervisor,
			body:   `{"client_id":"novo-id","client_secret":"novo-secret"}`,
			setup:  func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInsufficientPrivilege, apiErr.Code)
			},
		},
		{
			name:   "Deve responder 400 para corpo inválido",
			roleID: middleware.RoleAdmin,
			body:   `{"client_id":`,
			setup:  func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
			},
		},
		{
			name:   "Deve responder 400 quando faltam credenciais",
			roleID: middleware.RoleAdmin,
			body:   `{"client_id":"novo-id"}`,
			setup: func() {
				mockService.EXPECT().
					UpdateCredentials("novo-id", "").
					Return(campaigning.NewCampaignError(
						campaigning.ErrMissingRequiredData,
						apiErrors.ErrMissingRequiredData,
						"client_id e client_secret são obrigatórios",
					))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
			},
		},
		{
			name:   "Deve responder 502 quando o cofre de secrets rejeita a atualização",
			roleID: middleware.RoleAdmin,
			body:   `{"client_id":"novo-id","client_secret":"novo-secret"}`,
			setup: func() {
				mockService.EXPECT().
					UpdateCredentials("novo-id", "novo-secret").
					Return(campaigning.NewCampaignError(
						campaigning.ErrCredentialsRotation,
						apiErrors.ErrExternalService,
						"Falha ao atualizar o client_id no cofre de secrets",
					))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadGateway, rec.Code)

				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := authenticatedRequest(http.MethodPut, "/v1/credentials", strings.NewReader(tt.body), tt.roleID)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}
