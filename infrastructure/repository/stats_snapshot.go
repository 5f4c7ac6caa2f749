package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/boost-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/boost-manager-api/internal/domain"
)

const (
	campaignStatsTable = "campaign_stats cs"
)

type StatsSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.StatsSnapshot) error
	GetByCampaignAndDate(campaignID string, date time.Time) (*domain.StatsSnapshot, error)
	GetByDateRange(campaignID string, startDate, endDate time.Time) ([]*domain.StatsSnapshot, error)
	LatestByCampaign(campaignID string) (*domain.StatsSnapshot, error)
	DeleteByCampaignID(campaignID string) (int64, error)
}

type statsSnapshotRepository struct {
	conn *postgres.Connection
}

func NewStatsSnapshotRepository(conn *postgres.Connection) StatsSnapshotRepository {
	return &statsSnapshotRepository{
		conn: conn,
	}
}

func (r *statsSnapshotRepository) SaveOrUpdate(snapshot *domain.StatsSnapshot) error {
	var statsJSON []byte
	var err error

	if snapshot.Stats != nil {
		statsJSON, err = json.Marshal(snapshot.Stats)
		if err != nil {
			return fmt.Errorf("erro ao serializar as estatísticas para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("campaign_stats").
		Columns("campaign_id", "boost_id", "date", "impressions", "clicks", "ctr", "status", "stats").
		Values(
			snapshot.CampaignID,
			snapshot.BoostID,
			snapshot.Date.Format("2006-01-02"),
			snapshot.Impressions,
			snapshot.Clicks,
			snapshot.CTR,
			snapshot.Status,
			statsJSON,
		).
		Suffix(`
			ON CONFLICT (campaign_id, date) DO UPDATE SET
				boost_id = EXCLUDED.boost_id,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				ctr = EXCLUDED.ctr,
				status = EXCLUDED.status,
				stats = EXCLUDED.stats,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *statsSnapshotRepository) GetByCampaignAndDate(campaignID string, date time.Time) (*domain.StatsSnapshot, error) {
	query, args, err := squirrel.
		Select("cs.id, cs.campaign_id, cs.boost_id, cs.date, cs.impressions, cs.clicks, cs.ctr, cs.status, cs.stats, cs.created_at, cs.updated_at").
		From(campaignStatsTable).
		Where(squirrel.Eq{"cs.campaign_id": campaignID, "cs.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *statsSnapshotRepository) GetByDateRange(campaignID string, startDate, endDate time.Time) ([]*domain.StatsSnapshot, error) {
	query, args, err := squirrel.
		Select("cs.id, cs.campaign_id, cs.boost_id, cs.date, cs.impressions, cs.clicks, cs.ctr, cs.status, cs.stats, cs.created_at, cs.updated_at").
		From(campaignStatsTable).
		Where(squirrel.Eq{"cs.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"cs.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"cs.date": endDate.Format("2006-01-02")}).
		OrderBy("cs.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.StatsSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *statsSnapshotRepository) LatestByCampaign(campaignID string) (*domain.StatsSnapshot, error) {
	query, args, err := squirrel.
		Select("cs.id, cs.campaign_id, cs.boost_id, cs.date, cs.impressions, cs.clicks, cs.ctr, cs.status, cs.stats, cs.created_at, cs.updated_at").
		From(campaignStatsTable).
		Where(squirrel.Eq{"cs.campaign_id": campaignID}).
		OrderBy("cs.date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *statsSnapshotRepository) DeleteByCampaignID(campaignID string) (int64, error) {
	query, args, err := squirrel.
		Delete("campaign_stats").
		Where(squirrel.Eq{"campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *statsSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.StatsSnapshot, error) {
	snapshot := &domain.StatsSnapshot{}
	var statsJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.CampaignID,
		&snapshot.BoostID,
		&snapshot.Date,
		&snapshot.Impressions,
		&snapshot.Clicks,
		&snapshot.CTR,
		&snapshot.Status,
		&statsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if statsJSON != nil {
		stats := map[string]interface{}{}
		if err := json.Unmarshal(statsJSON, &stats); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de stats: %w", err)
		}
		snapshot.Stats = stats
	}

	return snapshot, nil
}

func (r *statsSnapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.StatsSnapshot, error) {
	snapshot := &domain.StatsSnapshot{}
	var statsJSON []byte

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.CampaignID,
		&snapshot.BoostID,
		&snapshot.Date,
		&snapshot.Impressions,
		&snapshot.Clicks,
		&snapshot.CTR,
		&snapshot.Status,
		&statsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if statsJSON != nil {
		stats := map[string]interface{}{}
		if err := json.Unmarshal(statsJSON, &stats); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de stats: %w", err)
		}
		snapshot.Stats = stats
	}

	return snapshot, nil
}
