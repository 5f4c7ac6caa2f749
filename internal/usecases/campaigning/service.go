package campaigning

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent"
	revcontentdomain "github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/domain"
	"github.com/vfg2006/boost-manager-api/infrastructure/repository"
	"github.com/vfg2006/boost-manager-api/internal/config"
	"github.com/vfg2006/boost-manager-api/internal/domain"
	"github.com/vfg2006/boost-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/boost-manager-api/pkg/apiErrors"
	"github.com/vfg2006/boost-manager-api/pkg/utils"
)

type Campaigner interface {
	Launch(ctx context.Context, request *domain.LaunchCampaignRequest) (*domain.Campaign, error)
	ListCampaigns(availableStatus []domain.CampaignStatus) ([]*domain.Campaign, error)
	GetCampaign(campaignID string) (*domain.Campaign, error)
	UpdateCredentials(clientID, clientSecret string) error
}

type Service struct {
	campaignRepo repository.CampaignRepository
	integrator   revcontent.RevcontentIntegrator
	reporter     reporting.Reporter
	secrets      config.SecretStorage
	cfg          *config.Config
}

func NewService(
	campaignRepo repository.CampaignRepository,
	integrator revcontent.RevcontentIntegrator,
	reporter reporting.Reporter,
	secrets config.SecretStorage,
	cfg *config.Config,
) Campaigner {
	return &Service{
		campaignRepo: campaignRepo,
		integrator:   integrator,
		reporter:     reporter,
		secrets:      secrets,
		cfg:          cfg,
	}
}

// Launch cria o boost na Revcontent, registra a campanha no banco e coleta a
// primeira medição de performance. Falhas de plataforma após a campanha já
// existir marcam o status como ERRORED e devolvem o erro com o ID preenchido.
func (s *Service) Launch(ctx context.Context, request *domain.LaunchCampaignRequest) (*domain.Campaign, error) {
	if err := validateLaunchRequest(request); err != nil {
		return nil, err
	}

	if err := s.integrator.EnsureAuthenticated(ctx); err != nil {
		return nil, NewCampaignError(ErrPlatformUnavailable, apiErrors.ErrRevcontentAuth, "Falha ao autenticar na plataforma de anúncios")
	}

	boostID, err := s.integrator.CreateBoost(ctx, revcontentdomain.NewBoost{
		Name:         request.Name,
		Budget:       request.Budget,
		BidAmount:    request.BidAmount,
		CountryCodes: request.CountryCodes,
	})
	if err != nil {
		if errors.Is(err, revcontentdomain.ErrBadRequest) {
			return nil, NewCampaignError(ErrLaunchRejected, apiErrors.ErrRevcontentBadRequest, err.Error())
		}

		return nil, NewCampaignError(ErrPlatformUnavailable, apiErrors.ErrRevcontentRequest, "Falha ao criar o boost na plataforma de anúncios")
	}

	campaignID, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para a campanha")
	}

	campaign := &domain.Campaign{
		ID:           campaignID,
		BoostID:      boostID,
		Name:         request.Name,
		Budget:       request.Budget,
		BidAmount:    request.BidAmount,
		CountryCodes: request.CountryCodes,
		Status:       domain.CampaignStatusActive,
	}

	if err := s.campaignRepo.Insert(campaign); err != nil {
		if errors.Is(err, repository.ErrBoostAlreadyTracked) {
			return nil, NewCampaignError(ErrBoostAlreadyExists, apiErrors.ErrCampaignExists, "Boost já vinculado a uma campanha existente")
		}

		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao registrar a campanha no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"boost_id":    campaign.BoostID,
	}).Info("Campanha registrada, coletando a primeira medição de performance")

	snapshot, err := s.reporter.CollectBoostPerformance(ctx, campaign)
	if err != nil {
		if revcontentdomain.IsAPIError(err) {
			s.markErrored(campaign)
			return nil, NewCampaignErrorWithID(ErrPlatformUnavailable, apiErrors.ErrRevcontentRequest, campaign.ID, "Campanha criada, mas a consulta de performance falhou")
		}

		// A campanha existe e o scheduler voltará a coletar; não desfaz o lançamento
		logrus.WithError(err).WithField("campaign_id", campaign.ID).Warn("Erro ao persistir a primeira medição de performance")
		return campaign, nil
	}

	if snapshot == nil {
		logrus.WithField("campaign_id", campaign.ID).Info("Campanha lançada sem registros de performance disponíveis ainda")
		return campaign, nil
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"impressions": snapshot.Impressions,
		"clicks":      snapshot.Clicks,
		"status":      snapshot.Status,
	}).Info("Campanha lançada com a primeira medição de performance coletada")

	return campaign, nil
}

func (s *Service) ListCampaigns(availableStatus []domain.CampaignStatus) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepo.ListCampaigns(availableStatus)
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas no banco de dados")
	}

	return campaigns, nil
}

func (s *Service) GetCampaign(campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar a campanha no banco de dados")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	return campaign, nil
}

// UpdateCredentials troca as credenciais usadas na autenticação com a Revcontent.
// A troca vale para as próximas autenticações; o token corrente permanece em uso
// até ser invalidado pela própria plataforma.
func (s *Service) UpdateCredentials(clientID, clientSecret string) error {
	if clientID == "" || clientSecret == "" {
		return NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "client_id e client_secret são obrigatórios")
	}

	if s.cfg.Render.ServiceID != "" {
		if err := s.secrets.AddOrUpdateSecret(s.cfg.Render.ServiceID, config.SecretRevcontentClientID, clientID); err != nil {
			logrus.WithError(err).Error("Erro ao atualizar o client_id no cofre de secrets")
			return NewCampaignError(ErrCredentialsRotation, apiErrors.ErrExternalService, "Falha ao atualizar o client_id no cofre de secrets")
		}

		if err := s.secrets.AddOrUpdateSecret(s.cfg.Render.ServiceID, config.SecretRevcontentClientSecret, clientSecret); err != nil {
			logrus.WithError(err).Error("Erro ao atualizar o client_secret no cofre de secrets")
			return NewCampaignError(ErrCredentialsRotation, apiErrors.ErrExternalService, "Falha ao atualizar o client_secret no cofre de secrets")
		}
	}

	s.cfg.Revcontent.ClientID = clientID
	s.cfg.Revcontent.ClientSecret = clientSecret

	logrus.Info("Credenciais da Revcontent atualizadas")

	return nil
}

func (s *Service) markErrored(campaign *domain.Campaign) {
	if err := s.campaignRepo.UpdateStatus(campaign.ID, domain.CampaignStatusErrored); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaign.ID).Warn("Erro ao marcar a campanha como ERRORED")
		return
	}

	campaign.Status = domain.CampaignStatusErrored
}

func validateLaunchRequest(request *domain.LaunchCampaignRequest) error {
	if request == nil || request.Name == "" {
		return NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "O nome da campanha é obrigatório")
	}

	if request.Budget <= 0 {
		return NewCampaignError(ErrInvalidBudget, apiErrors.ErrInvalidRequest, "O orçamento deve ser maior que zero")
	}

	if request.BidAmount <= 0 {
		return NewCampaignError(ErrInvalidBidAmount, apiErrors.ErrInvalidRequest, "O lance deve ser maior que zero")
	}

	if len(request.CountryCodes) == 0 {
		return NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Informe ao menos um código de país")
	}

	return nil
}
