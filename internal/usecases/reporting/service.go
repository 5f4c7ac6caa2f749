package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/boost-manager-api/infrastructure/archive"
	"github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent"
	revcontentdomain "github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/domain"
	"github.com/vfg2006/boost-manager-api/infrastructure/repository"
	"github.com/vfg2006/boost-manager-api/internal/domain"
	"github.com/vfg2006/boost-manager-api/pkg/utils"
)

var (
	ErrCampaignNotFound = errors.New("campanha não encontrada")
	ErrInvalidPeriod    = errors.New("intervalo de datas inválido")
)

// Período padrão do histórico quando o chamador não informa datas
const defaultHistoryDays = 30

type Reporter interface {
	CollectBoostPerformance(ctx context.Context, campaign *domain.Campaign) (*domain.StatsSnapshot, error)
	CampaignPerformance(ctx context.Context, campaignID string) (*domain.PerformanceReport, error)
	PerformanceHistory(campaignID string, startDate, endDate *time.Time) ([]*domain.StatsSnapshot, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	snapshotRepo repository.StatsSnapshotRepository
	integrator   revcontent.RevcontentIntegrator
	archiver     archive.Archiver
}

func NewService(
	campaignRepo repository.CampaignRepository,
	snapshotRepo repository.StatsSnapshotRepository,
	integrator revcontent.RevcontentIntegrator,
	archiver archive.Archiver,
) Reporter {
	return &Service{
		campaignRepo: campaignRepo,
		snapshotRepo: snapshotRepo,
		integrator:   integrator,
		archiver:     archiver,
	}
}

// CollectBoostPerformance consulta a performance do boost na Revcontent e persiste
// o resumo do dia. Sem registros retornados não há snapshot nem arquivamento.
func (s *Service) CollectBoostPerformance(ctx context.Context, campaign *domain.Campaign) (*domain.StatsSnapshot, error) {
	if err := s.integrator.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}

	records, err := s.integrator.BoostPerformance(ctx, campaign.BoostID)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"boost_id":    campaign.BoostID,
		}).Debug("Nenhum registro de performance retornado para o boost")
		return nil, nil
	}

	snapshot := s.buildSnapshot(campaign, records, time.Now())

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		return nil, fmt.Errorf("erro ao salvar o snapshot de performance: %w", err)
	}

	if _, err := s.archiver.SaveStats(campaign.BoostID, records); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"boost_id":    campaign.BoostID,
		}).Warn("Erro ao arquivar as estatísticas brutas de performance")
	}

	return snapshot, nil
}

// CampaignPerformance consulta a performance ao vivo de uma campanha e devolve os
// registros na forma em que a API os retornou, junto com o resumo persistido.
func (s *Service) CampaignPerformance(ctx context.Context, campaignID string) (*domain.PerformanceReport, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a campanha no banco de dados: %w", err)
	}

	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	if err := s.integrator.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}

	records, err := s.integrator.BoostPerformance(ctx, campaign.BoostID)
	if err != nil {
		return nil, err
	}

	report := &domain.PerformanceReport{
		Campaign: campaign,
		Records:  make([]map[string]interface{}, 0, len(records)),
	}

	for _, record := range records {
		report.Records = append(report.Records, record)
	}

	if len(records) == 0 {
		return report, nil
	}

	snapshot := s.buildSnapshot(campaign, records, time.Now())

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaign.ID).Warn("Erro ao salvar o snapshot de performance da consulta")
	} else {
		report.Snapshot = snapshot
	}

	if _, err := s.archiver.SaveStats(campaign.BoostID, records); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"boost_id":    campaign.BoostID,
		}).Warn("Erro ao arquivar as estatísticas brutas de performance")
	}

	return report, nil
}

// PerformanceHistory devolve os snapshots persistidos da campanha no período informado
func (s *Service) PerformanceHistory(campaignID string, startDate, endDate *time.Time) ([]*domain.StatsSnapshot, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a campanha no banco de dados: %w", err)
	}

	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	end := time.Now()
	if endDate != nil {
		end = *endDate
	}

	start := end.AddDate(0, 0, -defaultHistoryDays)
	if startDate != nil {
		start = *startDate
	}

	if start.After(end) {
		return nil, ErrInvalidPeriod
	}

	snapshots, err := s.snapshotRepo.GetByDateRange(campaign.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o histórico de snapshots: %w", err)
	}

	return snapshots, nil
}

// buildSnapshot agrega os registros do dia em um resumo. O campo Stats preserva o
// registro mais recente na forma em que foi recebido da API.
func (s *Service) buildSnapshot(campaign *domain.Campaign, records []revcontentdomain.BoostStats, date time.Time) *domain.StatsSnapshot {
	var impressions, clicks int
	var status string

	for _, record := range records {
		if value, ok := record.IntMetric("impressions"); ok {
			impressions += value
		}

		if value, ok := record.IntMetric("clicks"); ok {
			clicks += value
		}

		if value := record.StringField("status"); value != "" {
			status = value
		}
	}

	var ctr float64
	if impressions > 0 {
		ctr = utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
	}

	return &domain.StatsSnapshot{
		CampaignID:  campaign.ID,
		BoostID:     campaign.BoostID,
		Date:        date,
		Impressions: impressions,
		Clicks:      clicks,
		CTR:         ctr,
		Status:      status,
		Stats:       records[len(records)-1],
	}
}
