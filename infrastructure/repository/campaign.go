package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/boost-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/boost-manager-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

// ErrBoostAlreadyTracked indica que o boost_id informado já pertence a outra campanha.
var ErrBoostAlreadyTracked = errors.New("boost já vinculado a uma campanha existente")

type CampaignRepository interface {
	Insert(campaign *domain.Campaign) error
	GetByID(campaignID string) (*domain.Campaign, error)
	GetByBoostID(boostID string) (*domain.Campaign, error)
	ListCampaigns(availableStatus []domain.CampaignStatus) ([]*domain.Campaign, error)
	UpdateStatus(campaignID string, status domain.CampaignStatus) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Insert(campaign *domain.Campaign) error {
	query := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("id", "boost_id", "name", "budget", "bid_amount", "country_codes", "status").
		Values(
			campaign.ID,
			campaign.BoostID,
			campaign.Name,
			campaign.Budget,
			campaign.BidAmount,
			pq.Array(campaign.CountryCodes),
			campaign.Status,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			// 23505 = unique_violation: a coluna boost_id possui índice único
			if pqErr.Code == "23505" {
				return ErrBoostAlreadyTracked
			}
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *campaignRepository) GetByID(campaignID string) (*domain.Campaign, error) {
	return r.getCampaign(squirrel.Eq{"c.id": campaignID})
}

func (r *campaignRepository) GetByBoostID(boostID string) (*domain.Campaign, error) {
	return r.getCampaign(squirrel.Eq{"c.boost_id": boostID})
}

func (r *campaignRepository) getCampaign(whereClause map[string]interface{}) (*domain.Campaign, error) {
	campaignsSQL, campaignsArgs, err := squirrel.
		Select("c.id, c.boost_id, c.name, c.budget, c.bid_amount, c.country_codes, c.status, c.created_at, c.updated_at").
		From(campaignsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(campaignsSQL, campaignsArgs...)

	campaign, err := r.deserializeCampaign(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) deserializeCampaign(row *sql.Row) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	if err := row.Scan(
		&campaign.ID,
		&campaign.BoostID,
		&campaign.Name,
		&campaign.Budget,
		&campaign.BidAmount,
		pq.Array(&campaign.CountryCodes),
		&campaign.Status,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) ListCampaigns(availableStatus []domain.CampaignStatus) ([]*domain.Campaign, error) {
	queryBuilder := squirrel.
		Select("c.id, c.boost_id, c.name, c.budget, c.bid_amount, c.country_codes, c.status, c.created_at, c.updated_at").
		From(campaignsTable).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.status": availableStatus})
	}

	campaignsSQL, campaignsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(campaignsSQL, campaignsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)

	for rows.Next() {
		campaign, err := r.deserializeCampaignRows(rows)
		if err != nil {
			return nil, err
		}

		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) deserializeCampaignRows(rows *sql.Rows) (*domain.Campaign, error) {
	campaign := domain.Campaign{}

	if err := rows.Scan(
		&campaign.ID,
		&campaign.BoostID,
		&campaign.Name,
		&campaign.Budget,
		&campaign.BidAmount,
		pq.Array(&campaign.CountryCodes),
		&campaign.Status,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (r *campaignRepository) UpdateStatus(campaignID string, status domain.CampaignStatus) error {
	if campaignID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update("campaigns").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("campaign not found")
	}

	return nil
}
