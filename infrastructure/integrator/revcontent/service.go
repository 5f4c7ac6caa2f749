package revcontent

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	revcontentdomain "github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/domain"
	"github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/revcontentclient"
	"github.com/vfg2006/boost-manager-api/internal/config"
)

type RevcontentIntegrator interface {
	EnsureAuthenticated(ctx context.Context) error
	CreateBoost(ctx context.Context, boost revcontentdomain.NewBoost) (string, error)
	BoostPerformance(ctx context.Context, boostID string) ([]revcontentdomain.BoostStats, error)
}

type RevcontentService struct {
	cfg    *config.Config
	Client revcontentclient.Client

	// Serializa o acesso ao fluxo de autenticação, já que o cliente guarda um único token
	authMutex sync.Mutex
}

func New(cfg *config.Config, client revcontentclient.Client) RevcontentIntegrator {
	return &RevcontentService{
		cfg:    cfg,
		Client: client,
	}
}

// EnsureAuthenticated autentica na primeira chamada e vira no-op enquanto o cliente tiver token
func (s *RevcontentService) EnsureAuthenticated(ctx context.Context) error {
	s.authMutex.Lock()
	defer s.authMutex.Unlock()

	if s.Client.IsAuthenticated() {
		return nil
	}

	if err := s.Client.Authenticate(ctx); err != nil {
		logrus.WithField("error", err.Error()).Error("boosts: failed to authenticate with the Revcontent API")
		return err
	}

	logrus.Info("boosts: successfully authenticated with the Revcontent API")

	return nil
}

func (s *RevcontentService) CreateBoost(ctx context.Context, boost revcontentdomain.NewBoost) (string, error) {
	boostID, err := s.Client.CreateBoost(ctx, boost)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"boost_name": boost.Name,
			"error":      err.Error(),
		}).Error("boosts: failed to create boost on the Revcontent API")
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"boost_id":   boostID,
		"boost_name": boost.Name,
	}).Info("boosts: boost successfully created")

	return boostID, nil
}

func (s *RevcontentService) BoostPerformance(ctx context.Context, boostID string) ([]revcontentdomain.BoostStats, error) {
	stats, err := s.Client.BoostPerformance(ctx, boostID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"boost_id": boostID,
			"error":    err.Error(),
		}).Error("boosts: failed to get boost performance from API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"boost_id": boostID,
		"records":  len(stats),
	}).Debug("boosts: successfully retrieved boost performance")

	return stats, nil
}
