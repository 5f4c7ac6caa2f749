package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/boost-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/boost-manager-api/internal/config"
	"github.com/vfg2006/boost-manager-api/internal/domain"
	reportingmocks "github.com/vfg2006/boost-manager-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestNewPerformanceSyncService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		PerformanceSync: config.PerformanceSync{
			CronSchedule:        "0 */6 * * *",
			RequestDelaySeconds: 2,
			MaxConcurrentJobs:   3,
			Enabled:             true,
		},
	}

	service := NewPerformanceSyncService(
		mocks.NewMockCampaignRepository(ctrl),
		reportingmocks.NewMockReporter(ctrl),
		cfg,
	)

	assert.Equal(t, "0 */6 * * *", service.config.CronSchedule)
	assert.Equal(t, 2, service.config.RequestDelaySeconds)
	assert.Equal(t, 3, service.config.MaxConcurrentJobs)
	assert.True(t, service.config.SyncEnabled)
	assert.False(t, service.syncRunning)
}

func TestPerformanceSyncService_syncAllBoostPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockReporter := reportingmocks.NewMockReporter(ctrl)

	// Service
	service := &PerformanceSyncService{
		config: PerformanceSyncConfig{
			CronSchedule:        "0 */6 * * *",
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   2,
			SyncEnabled:         true,
		},
		campaignRepo: mockCampaignRepo,
		reporter:     mockReporter,
	}

	activeOnly := []domain.CampaignStatus{domain.CampaignStatusActive}

	campaignA := &domain.Campaign{ID: "camp-a", BoostID: "B001", Name: "Campanha A", Status: domain.CampaignStatusActive}
	campaignB := &domain.Campaign{ID: "camp-b", BoostID: "B002", Name: "Campanha B", Status: domain.CampaignStatusActive}
	campaignSemBoost := &domain.Campaign{ID: "camp-c", Name: "Campanha C", Status: domain.CampaignStatusActive}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T)
	}{
		{
			name: "Deve coletar a performance de todas as campanhas ativas com boost",
			setup: func() {
				mockCampaignRepo.EXPECT().
					ListCampaigns(activeOnly).
					Return([]*domain.Campaign{campaignA, campaignB, campaignSemBoost}, nil)

				// Campanha sem boost_id não gera coleta
				mockReporter.EXPECT().
					CollectBoostPerformance(gomock.Any(), campaignA).
					Return(&domain.StatsSnapshot{Impressions: 100, Clicks: 5}, nil)

				mockReporter.EXPECT().
					CollectBoostPerformance(gomock.Any(), campaignB).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T) {
				status := service.GetStatus()

				assert.False(t, status["sync_running"].(bool))
				assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name: "Deve encerrar sem coletas quando não há campanhas ativas",
			setup: func() {
				mockCampaignRepo.EXPECT().
					ListCampaigns(activeOnly).
					Return([]*domain.Campaign{}, nil)
			},
			validate: func(t *testing.T) {
				status := service.GetStatus()
				assert.False(t, status["sync_running"].(bool))
			},
		},
		{
			name: "Deve registrar o erro e encerrar quando a listagem falha",
			setup: func() {
				mockCampaignRepo.EXPECT().
					ListCampaigns(activeOnly).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T) {
				status := service.GetStatus()
				assert.False(t, status["sync_running"].(bool))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service.syncAllBoostPerformance()

			tt.validate(t)
		})
	}
}

func TestPerformanceSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockReporter := reportingmocks.NewMockReporter(ctrl)

	service := &PerformanceSyncService{
		config: PerformanceSyncConfig{
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   1,
			SyncEnabled:         true,
		},
		campaignRepo: mockCampaignRepo,
		reporter:     mockReporter,
	}

	t.Run("Deve recusar quando já existe sincronização em andamento", func(t *testing.T) {
		service.syncMutex.Lock()
		service.syncRunning = true
		service.syncMutex.Unlock()

		err := service.TriggerManualSync()

		assert.EqualError(t, err, "sincronização de performance já em andamento")

		service.syncMutex.Lock()
		service.syncRunning = false
		service.syncMutex.Unlock()
	})

	t.Run("Deve disparar a sincronização em segundo plano", func(t *testing.T) {
		listed := make(chan struct{})

		mockCampaignRepo.EXPECT().
			ListCampaigns(gomock.Any()).
			DoAndReturn(func(_ []domain.CampaignStatus) ([]*domain.Campaign, error) {
				defer close(listed)
				return []*domain.Campaign{}, nil
			})

		err := service.TriggerManualSync()

		assert.NoError(t, err)

		select {
		case <-listed:
		case <-time.After(2 * time.Second):
			t.Fatal("a sincronização manual não listou as campanhas no tempo esperado")
		}

		// A flag de execução é liberada logo após o término da rotina
		assert.Eventually(t, func() bool {
			return !service.GetStatus()["sync_running"].(bool)
		}, 2*time.Second, 10*time.Millisecond)
	})
}

func TestPerformanceSyncService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockReporter := reportingmocks.NewMockReporter(ctrl)

	t.Run("Deve ignorar o agendamento quando a sincronização está desabilitada", func(t *testing.T) {
		cfg := &config.Config{
			PerformanceSync: config.PerformanceSync{
				CronSchedule: "0 */6 * * *",
				Enabled:      false,
			},
		}

		service := NewPerformanceSyncService(mockCampaignRepo, mockReporter, cfg)

		err := service.Start(context.Background())

		assert.NoError(t, err)
	})

	t.Run("Deve agendar a rotina e parar junto com o contexto", func(t *testing.T) {
		cfg := &config.Config{
			PerformanceSync: config.PerformanceSync{
				CronSchedule:      "0 */6 * * *",
				MaxConcurrentJobs: 1,
				Enabled:           true,
			},
		}

		service := NewPerformanceSyncService(mockCampaignRepo, mockReporter, cfg)

		ctx, cancel := context.WithCancel(context.Background())

		err := service.Start(ctx)

		assert.NoError(t, err)
		cancel()
	})

	t.Run("Deve falhar com expressão cron inválida", func(t *testing.T) {
		cfg := &config.Config{
			PerformanceSync: config.PerformanceSync{
				CronSchedule: "isso não é um cron",
				Enabled:      true,
			},
		}

		service := NewPerformanceSyncService(mockCampaignRepo, mockReporter, cfg)

		err := service.Start(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "erro ao agendar sincronização de performance dos boosts")
	})
}

func TestPerformanceSyncService_GetStatus(t *testing.T) {
	service := &PerformanceSyncService{
		config: PerformanceSyncConfig{
			CronSchedule:        "0 */6 * * *",
			RequestDelaySeconds: 2,
			MaxConcurrentJobs:   3,
			SyncEnabled:         true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 */6 * * *", status["sync_cron"])
	assert.Equal(t, 3, status["sync_max_concurrent"])
	assert.Equal(t, 2, status["sync_request_delay_s"])
	assert.Equal(t, false, status["sync_running"])
	assert.True(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}
