package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const venueColumns = `id, name, description, address, capacity, price_per_hour, price_per_day,
	currency, status, created_at, updated_at`

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `INSERT INTO venues (` + venueColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Description, v.Address, v.Capacity,
		v.PricePerHour, v.PricePerDay, v.Currency, v.Status,
		v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return wrapErr("insert venue", err)
	}

	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, wrapErr("get venue", err)
	}

	v, err := scanVenue(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, wrapErr("scan venue", err)
	}

	return v, nil
}

func (r *VenueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY name, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, wrapErr("list venues", err)
	}
	defer rows.Close()

	res := make([]*domain.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, wrapErr("scan venue", err)
		}
		res = append(res, v)
	}

	return res, rows.Err()
}

func (r *VenueRepository) Update(ctx context.Context, v *domain.Venue) error {
	query := `UPDATE venues
			  SET name = $2, description = $3, address = $4, capacity = $5,
			      price_per_hour = $6, price_per_day = $7, currency = $8,
			      status = $9, updated_at = $10
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Description, v.Address, v.Capacity,
		v.PricePerHour, v.PricePerDay, v.Currency, v.Status, v.UpdatedAt,
	)
	if err != nil {
		return wrapErr("update venue", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr("venue rows affected", err)
	}
	if n == 0 {
		return domain.ErrVenueNotFound
	}

	return nil
}

// GetSummary counts the venue's events per status. Revenue only includes
// paid events that were not cancelled.
func (r *VenueRepository) GetSummary(ctx context.Context, venueID string) (*domain.VenueSummary, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COUNT(*) FILTER (WHERE status = $4),
			COUNT(*) FILTER (WHERE status = $5),
			COALESCE(SUM(final_price) FILTER (WHERE is_paid AND status <> $5), 0)
		FROM events
		WHERE venue_id = $1`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, venueID,
		domain.EventStatusUpcoming, domain.EventStatusOngoing,
		domain.EventStatusCompleted, domain.EventStatusCancelled,
	)
	if err != nil {
		return nil, wrapErr("get venue summary", err)
	}

	var s domain.VenueSummary
	if err = row.Scan(&s.Upcoming, &s.Ongoing, &s.Completed, &s.Cancelled, &s.PaidRevenue); err != nil {
		return nil, wrapErr("scan venue summary", err)
	}

	return &s, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVenue(s scanner) (*domain.Venue, error) {
	var v domain.Venue
	err := s.Scan(
		&v.ID, &v.Name, &v.Description, &v.Address, &v.Capacity,
		&v.PricePerHour, &v.PricePerDay, &v.Currency, &v.Status,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// activeStatuses is the bind value for "status = ANY(...)" filters.
func activeStatuses() any {
	return pq.Array(domain.ActiveStatuses)
}
