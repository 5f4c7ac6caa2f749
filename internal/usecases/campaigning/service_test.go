package campaigning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	revcontentdomain "github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/domain"
	revcontentmocks "github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/mocks"
	"github.com/vfg2006/boost-manager-api/infrastructure/repository"
	"github.com/vfg2006/boost-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/boost-manager-api/internal/config"
	configmocks "github.com/vfg2006/boost-manager-api/internal/config/mocks"
	"github.com/vfg2006/boost-manager-api/internal/domain"
	reportingmocks "github.com/vfg2006/boost-manager-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/boost-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_Launch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockIntegrator := revcontentmocks.NewMockRevcontentIntegrator(ctrl)
	mockReporter := reportingmocks.NewMockReporter(ctrl)

	// Service
	service := &Service{
		campaignRepo: mockCampaignRepo,
		integrator:   mockIntegrator,
		reporter:     mockReporter,
		cfg:          &config.Config{},
	}

	validRequest := func() *domain.LaunchCampaignRequest {
		return &domain.LaunchCampaignRequest{
			Name:         "Campanha de inverno",
			Budget:       150,
			BidAmount:    0.35,
			CountryCodes: []string{"BR", "PT"},
		}
	}

	expectedBoost := revcontentdomain.NewBoost{
		Name:         "Campanha de inverno",
		Budget:       150,
		BidAmount:    0.35,
		CountryCodes: []string{"BR", "PT"},
	}

	tests := []struct {
		name     string
		request  *domain.LaunchCampaignRequest
		setup    func()
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name:    "Deve lançar a campanha e coletar a primeira medição",
			request: validRequest(),
			setup: func() {
				mockIntegrator.EXPECT().
					EnsureAuthenticated(gomock.Any()).
					Return(nil)

				mockIntegrator.EXPECT().
					CreateBoost(gomock.Any(), expectedBoost).
					Return("B777", nil)

				mockCampaignRepo.EXPECT().
					Insert(gomock.Any()).
					DoAndReturn(func(campaign *domain.Campaign) error {
						assert.NotEmpty(t, campaign.ID)
						assert.Equal(t, "B777", campaign.BoostID)
						assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
						return nil
					})

				mockReporter.EXPECT().
					CollectBoostPerformance(gomock.Any(), gomock.Any()).
					Return(&domain.StatsSnapshot{Impressions: 100, Clicks: 7, Status: "active"}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, campaign)
				assert.Equal(t, "B777", campaign.BoostID)
				assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
			},
		},
		{
			name:    "Deve rejeitar requisição sem nome",
			request: &domain.LaunchCampaignRequest{Budget: 150, BidAmount: 0.35},
			setup:   func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
				assert.EqualError(t, err, "dados obrigatórios ausentes: O nome da campanha é obrigatório")

				var campErr *CampaignError
				assert.ErrorAs(t, err, &campErr)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, campErr.Code)
			},
		},
		{
			name:    "Deve rejeitar orçamento menor ou igual a zero",
			request: &domain.LaunchCampaignRequest{Name: "Campanha", Budget: 0, BidAmount: 0.35},
			setup:   func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)
				assert.ErrorIs(t, err, ErrInvalidBudget)
				assert.EqualError(t, err, "orçamento inválido: O orçamento deve ser maior que zero")
			},
		},
		{
			name:    "Deve rejeitar lance menor ou igual a zero",
			request: &domain.LaunchCampaignRequest{Name: "Campanha", Budget: 150, BidAmount: -1},
			setup:   func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)
				assert.ErrorIs(t, err, ErrInvalidBidAmount)
				assert.EqualError(t, err, "lance inválido: O lance deve ser maior que zero")
			},
		},
		{
			name:    "Deve rejeitar requisição sem países de veiculação",
			request: &domain.LaunchCampaignRequest{Name: "Campanha", Budget: 150, BidAmount: 0.35},
			setup:   func() {},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
				assert.EqualError(t, err, "dados obrigatórios ausentes: Informe ao menos um código de país")
			},
		},
		{
			name:    "Deve falhar quando a autenticação na plataforma falha",
			request: validRequest(),
			setup: func() {
				mockIntegrator.EXPECT().
					EnsureAuthenticated(gomock.Any()).
					Return(assert.AnError)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)
				assert.ErrorIs(t, err, ErrPlatformUnavailable)

				var campErr *CampaignError
				assert.ErrorAs(t, err, &campErr)
				assert.Equal(t, apiErrors.ErrRevcontentAuth, campErr.Code)
			},
		},
		{
			name:    "Deve traduzir a rejeição da plataforma no lançamento",
			request: validRequest(),
			setup: func() {
				mockIntegrator.EXPECT().
					EnsureAuthenticated(gomock.Any()).
					Return(nil)

				mockIntegrator.EXPECT().
					CreateBoost(gomock.Any(), expectedBoost).
					Return("", revcontentdomain.NewBadRequest("400 Bad Request: [invalid_targeting] Invalid Targeting - XX", 400, ""))
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)
				assert.ErrorIs(t, err, ErrLaunchRejected)

				var campErr *CampaignError
				assert.ErrorAs(t, err, &campErr)
				assert.Equal(t, apiErrors.ErrRevcontentBadRequest, campErr.Code)
				assert.Contains(t, campErr.Details, "invalid_targeting")
			},
		},
		{
			name:    "Deve tratar falha de requisição ao criar o boost",
			request: validRequest(),
			setup: func() {
				mockIntegrator.EXPECT().
					EnsureAuthenticated(gomock.Any()).
					Return(nil)

				mockIntegrator.EXPECT().
					CreateBoost(gomock.Any(), expectedBoost).
					Return("", revcontentdomain.NewRequestFailed("API request failed: 500 internal error", 500, ""))
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)
				assert.ErrorIs(t, err, ErrPlatformUnavailable)

				var campErr *CampaignError
				assert.ErrorAs(t, err, &campErr)
				assert.Equal(t, apiErrors.ErrRevcontentRequest, campErr.Code)
			},
		},
		{
			name:    "Deve apontar o boost já vinculado a outra campanha",
			request: validRequest(),
			setup: func() {
				mockIntegrator.EXPECT().
					EnsureAuthenticated(gomock.Any()).
					Return(nil)

				mockIntegrator.EXPECT().
					CreateBoost(gomock.Any(), expectedBoost).
					Return("B777", nil)

				mockCampaignRepo.EXPECT().
					Insert(gomock.Any()).
					Return(repository.ErrBoostAlreadyTracked)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)
				assert.ErrorIs(t, err, ErrBoostAlreadyExists)

				var campErr *CampaignError
				assert.ErrorAs(t, err, &campErr)
				assert.Equal(t, apiErrors.ErrCampaignExists, campErr.Code)
			},
		},
		{
			name:    "Deve tratar falha de banco ao registrar a campanha",
			request: validRequest(),
			setup: func() {
				mockIntegrator.EXPECT().
					EnsureAuthenticated(gomock.Any()).
					Return(nil)

				mockIntegrator.EXPECT().
					CreateBoost(gomock.Any(), expectedBoost).
					Return("B777", nil)

				mockCampaignRepo.EXPECT().
					Insert(gomock.Any()).
					Return(assert.AnError)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)
				assert.ErrorIs(t, err, ErrDatabaseOperation)

				var campErr *CampaignError
				assert.ErrorAs(t, err, &campErr)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, campErr.Code)
			},
		},
		{
			name:    "Deve marcar ERRORED quando a primeira coleta falha na plataforma",
			request: validRequest(),
			setup: func() {
				mockIntegrator.EXPECT().
					EnsureAuthenticated(gomock.Any()).
					Return(nil)

				mockIntegrator.EXPECT().
					CreateBoost(gomock.Any(), expectedBoost).
					Return("B777", nil)

				mockCampaignRepo.EXPECT().
					Insert(gomock.Any()).
					Return(nil)

				mockReporter.EXPECT().
					CollectBoostPerformance(gomock.Any(), gomock.Any()).
					Return(nil, revcontentdomain.NewRequestFailed("API request failed: 503 unavailable", 503, ""))

				mockCampaignRepo.EXPECT().
					UpdateStatus(gomock.Any(), domain.CampaignStatusErrored).
					Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)
				assert.ErrorIs(t, err, ErrPlatformUnavailable)

				var campErr *CampaignError
				assert.ErrorAs(t, err, &campErr)
				assert.Equal(t, apiErrors.ErrRevcontentRequest, campErr.Code)
				assert.NotEmpty(t, campErr.CampaignID)
				assert.Equal(t, "Campanha criada, mas a consulta de performance falhou", campErr.Details)
			},
		},
		{
			name:    "Deve manter a campanha quando só a persistência da medição falha",
			request: validRequest(),
			setup: func() {
				mockIntegrator.EXPECT().
					EnsureAuthenticated(gomock.Any()).
					Return(nil)

				mockIntegrator.EXPECT().
					CreateBoost(gomock.Any(), expectedBoost).
					Return("B777", nil)

				mockCampaignRepo.EXPECT().
					Insert(gomock.Any()).
					Return(nil)

				mockReporter.EXPECT().
					CollectBoostPerformance(gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, campaign)
				assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
			},
		},
		{
			name:    "Deve lançar mesmo sem registros de performance disponíveis",
			request: validRequest(),
			setup: func() {
				mockIntegrator.EXPECT().
					EnsureAuthenticated(gomock.Any()).
					Return(nil)

				mockIntegrator.EXPECT().
					CreateBoost(gomock.Any(), expectedBoost).
					Return("B777", nil)

				mockCampaignRepo.EXPECT().
					Insert(gomock.Any()).
					Return(nil)

				mockReporter.EXPECT().
					CollectBoostPerformance(gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, campaign)
			},
		},
	}

	for _, tt := range tests {
		// Executar apenas o teste específico
		// if tt.name != "Deve lançar a campanha e coletar a primeira medição" {
		// 	continue
		// }

		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			campaign, err := service.Launch(context.Background(), tt.request)

			tt.validate(t, campaign, err)
		})
	}
}

func TestService_ListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := &Service{
		campaignRepo: mockCampaignRepo,
	}

	activeOnly := []domain.CampaignStatus{domain.CampaignStatusActive}

	t.Run("Deve repassar o filtro de status para o repositório", func(t *testing.T) {
		expected := []*domain.Campaign{
			{ID: "camp-1", BoostID: "B1", Status: domain.CampaignStatusActive},
		}

		mockCampaignRepo.EXPECT().
			ListCampaigns(activeOnly).
			Return(expected, nil)

		campaigns, err := service.ListCampaigns(activeOnly)

		assert.NoError(t, err)
		assert.Equal(t, expected, campaigns)
	})

	t.Run("Deve traduzir falha de banco ao listar", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			ListCampaigns(gomock.Any()).
			Return(nil, assert.AnError)

		campaigns, err := service.ListCampaigns(nil)

		assert.Nil(t, campaigns)
		assert.ErrorIs(t, err, ErrDatabaseOperation)

		var campErr *CampaignError
		assert.ErrorAs(t, err, &campErr)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, campErr.Code)
	})
}

func TestService_GetCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := &Service{
		campaignRepo: mockCampaignRepo,
	}

	t.Run("Deve devolver a campanha encontrada", func(t *testing.T) {
		expected := &domain.Campaign{ID: "camp-1", BoostID: "B1"}

		mockCampaignRepo.EXPECT().
			GetByID("camp-1").
			Return(expected, nil)

		campaign, err := service.GetCampaign("camp-1")

		assert.NoError(t, err)
		assert.Equal(t, expected, campaign)
	})

	t.Run("Deve sinalizar campanha inexistente", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetByID("camp-404").
			Return(nil, nil)

		campaign, err := service.GetCampaign("camp-404")

		assert.Nil(t, campaign)
		assert.ErrorIs(t, err, ErrCampaignNotFound)

		var campErr *CampaignError
		assert.ErrorAs(t, err, &campErr)
		assert.Equal(t, apiErrors.ErrCampaignNotFound, campErr.Code)
		assert.Equal(t, "camp-404", campErr.CampaignID)
	})

	t.Run("Deve traduzir falha de banco na consulta", func(t *testing.T) {
		mockCampaignRepo.EXPECT().
			GetByID("camp-1").
			Return(nil, assert.AnError)

		campaign, err := service.GetCampaign("camp-1")

		assert.Nil(t, campaign)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestService_UpdateCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		serviceID    string
		clientID     string
		clientSecret string
		setup        func(secrets *configmocks.MockSecretStorage)
		wantErr      error
		wantUpdated  bool
	}{
		{
			name:         "Deve atualizar somente a configuração local quando não há cofre",
			serviceID:    "",
			clientID:     "novo-id",
			clientSecret: "novo-secret",
			setup:        func(secrets *configmocks.MockSecretStorage) {},
			wantUpdated:  true,
		},
		{
			name:         "Deve propagar as credenciais para o cofre de secrets",
			serviceID:    "srv-123",
			clientID:     "novo-id",
			clientSecret: "novo-secret",
			setup: func(secrets *configmocks.MockSecretStorage) {
				secrets.EXPECT().
					AddOrUpdateSecret("srv-123", config.SecretRevcontentClientID, "novo-id").
					Return(nil)

				secrets.EXPECT().
					AddOrUpdateSecret("srv-123", config.SecretRevcontentClientSecret, "novo-secret").
					Return(nil)
			},
			wantUpdated: true,
		},
		{
			name:         "Deve falhar quando o cofre rejeita o client_id",
			serviceID:    "srv-123",
			clientID:     "novo-id",
			clientSecret: "novo-secret",
			setup: func(secrets *configmocks.MockSecretStorage) {
				secrets.EXPECT().
					AddOrUpdateSecret("srv-123", config.SecretRevcontentClientID, "novo-id").
					Return(assert.AnError)
			},
			wantErr: ErrCredentialsRotation,
		},
		{
			name:         "Deve falhar quando o cofre rejeita o client_secret",
			serviceID:    "srv-123",
			clientID:     "novo-id",
			clientSecret: "novo-secret",
			setup: func(secrets *configmocks.MockSecretStorage) {
				secrets.EXPECT().
					AddOrUpdateSecret("srv-123", config.SecretRevcontentClientID, "novo-id").
					Return(nil)

				secrets.EXPECT().
					AddOrUpdateSecret("srv-123", config.SecretRevcontentClientSecret, "novo-secret").
					Return(assert.AnError)
			},
			wantErr: ErrCredentialsRotation,
		},
		{
			name:         "Deve exigir client_id e client_secret",
			serviceID:    "srv-123",
			clientID:     "",
			clientSecret: "novo-secret",
			setup:        func(secrets *configmocks.MockSecretStorage) {},
			wantErr:      ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Revcontent: config.Revcontent{
					ClientID:     "antigo-id",
					ClientSecret: "antigo-secret",
				},
				Render: config.Render{
					ServiceID: tt.serviceID,
				},
			}

			mockSecrets := configmocks.NewMockSecretStorage(ctrl)
			tt.setup(mockSecrets)

			service := &Service{
				secrets: mockSecrets,
				cfg:     cfg,
			}

			err := service.UpdateCredentials(tt.clientID, tt.clientSecret)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "antigo-id", cfg.Revcontent.ClientID)
				assert.Equal(t, "antigo-secret", cfg.Revcontent.ClientSecret)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.clientID, cfg.Revcontent.ClientID)
			assert.Equal(t, tt.clientSecret, cfg.Revcontent.ClientSecret)
		})
	}
}
