package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/boost-manager-api/infrastructure/repository"
	"github.com/vfg2006/boost-manager-api/internal/config"
	"github.com/vfg2006/boost-manager-api/internal/domain"
	"github.com/vfg2006/boost-manager-api/internal/usecases/reporting"
)

// PerformanceSyncConfig representa a configuração do agendador de performance dos boosts
type PerformanceSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// PerformanceSyncService gerencia o agendamento e execução da coleta de performance dos boosts
type PerformanceSyncService struct {
	scheduler           *gocron.Scheduler
	config              PerformanceSyncConfig
	appConfig           *config.Config
	campaignRepo        repository.CampaignRepository
	reporter            reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewPerformanceSyncService cria uma nova instância do serviço de sincronização de performance
func NewPerformanceSyncService(
	campaignRepo repository.CampaignRepository,
	reporter reporting.Reporter,
	appConfig *config.Config,
) *PerformanceSyncService {
	// Criar a configuração com base na config global
	syncConfig := PerformanceSyncConfig{
		CronSchedule:        appConfig.PerformanceSync.CronSchedule,
		RequestDelaySeconds: appConfig.PerformanceSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.PerformanceSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.PerformanceSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de performance dos boosts carregada")

	return &PerformanceSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		campaignRepo: campaignRepo,
		reporter:     reporter,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *PerformanceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de performance dos boosts desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de performance dos boosts")

	// Agendar a coleta de performance
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllBoostPerformance()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de performance dos boosts: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de performance dos boosts")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllBoostPerformance coleta a performance de todas as campanhas ativas
func (s *PerformanceSyncService) syncAllBoostPerformance() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de performance já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de performance para todas as campanhas ativas")

	// Buscar todas as campanhas ativas
	activeCampaigns, err := s.getActiveCampaigns()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de campanhas para sincronização de performance")
		return
	}

	if len(activeCampaigns) == 0 {
		logrus.Info("Nenhuma campanha ativa encontrada para sincronização de performance")
		return
	}

	// Coletar a performance de cada campanha
	s.processCampaigns(activeCampaigns)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"campaigns": len(activeCampaigns),
	}).Info("Sincronização de performance dos boosts concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getActiveCampaigns busca e filtra campanhas ativas
func (s *PerformanceSyncService) getActiveCampaigns() ([]*domain.Campaign, error) {
	activeCampaigns, err := s.campaignRepo.ListCampaigns([]domain.CampaignStatus{domain.CampaignStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeCampaigns) == 0 {
		logrus.Info("Nenhuma campanha encontrada para sincronização de performance")
		return []*domain.Campaign{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_campaigns": len(activeCampaigns),
	}).Info("Campanhas encontradas para sincronização de performance")

	return activeCampaigns, nil
}

// processCampaigns coleta a performance de cada campanha com um limite de workers concorrentes
func (s *PerformanceSyncService) processCampaigns(campaigns []*domain.Campaign) {
	// Criar um canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, campaign := range campaigns {
		// Se a campanha não tiver boost_id, pular
		if campaign.BoostID == "" {
			logrus.WithField("campaign_id", campaign.ID).Warn("Campanha sem boost_id. Pulando.")
			continue
		}

		// Adicionar uma tarefa ao grupo de espera
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(c *domain.Campaign) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			s.processCampaignPerformance(c)

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(campaign)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()
}

// processCampaignPerformance coleta e persiste a performance de uma campanha
func (s *PerformanceSyncService) processCampaignPerformance(campaign *domain.Campaign) {
	logrus.WithFields(logrus.Fields{
		"campaign_id":   campaign.ID,
		"boost_id":      campaign.BoostID,
		"campaign_name": campaign.Name,
	}).Info("Coletando performance do boost para a campanha")

	snapshot, err := s.reporter.CollectBoostPerformance(context.Background(), campaign)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"boost_id":    campaign.BoostID,
			"error":       err.Error(),
		}).Error("Erro ao coletar performance do boost para a campanha")
		return
	}

	if snapshot == nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"boost_id":    campaign.BoostID,
		}).Warn("Nenhum registro de performance obtido para a campanha")
		return
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"impressions": snapshot.Impressions,
		"clicks":      snapshot.Clicks,
	}).Info("Performance do boost salva com sucesso para a campanha")
}

// TriggerManualSync inicia manualmente uma coleta de performance dos boosts
func (s *PerformanceSyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de performance já em andamento, ignorando solicitação manual")
		return errors.New("sincronização de performance já em andamento")
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de performance dos boosts")
	go s.syncAllBoostPerformance()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *PerformanceSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           running,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
