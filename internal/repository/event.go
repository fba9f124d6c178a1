package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, venue_id, name, description, start_at, end_at, status, rental_type,
	attendee_count, base_price, discount_percent, additional_fees, final_price,
	is_paid, payment_date, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, wrapErr("get event", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, wrapErr("scan event", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	var (
		conds []string
		args  []any
	)
	if filter.VenueID != "" {
		args = append(args, filter.VenueID)
		conds = append(conds, fmt.Sprintf("venue_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY start_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, wrapErr("list events", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) ListActiveEvents(ctx context.Context, venueID, excludeEventID string) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, activeEventsQuery, venueID, activeStatuses(), excludeEventID)
	if err != nil {
		return nil, wrapErr("list active events", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) UpdatePayment(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET is_paid = $2, payment_date = $3, updated_at = $4
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, e.ID, e.IsPaid, e.PaymentDate, e.UpdatedAt)
	if err != nil {
		return wrapErr("update payment", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr("payment rows affected", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return wrapErr("delete event", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr("delete rows affected", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// AdvanceStatuses promotes upcoming events whose window has started and
// completes active events whose window has ended. Events that skipped the
// ongoing phase entirely go straight to completed.
func (r *EventRepository) AdvanceStatuses(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	query := `
		UPDATE events
		SET status = CASE WHEN end_at <= $1 THEN $4 ELSE $3 END,
		    updated_at = $1
		WHERE (status = $2 AND start_at <= $1)
		   OR (status = $3 AND end_at <= $1)
		RETURNING ` + eventColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query, now,
		domain.EventStatusUpcoming, domain.EventStatusOngoing, domain.EventStatusCompleted,
	)
	if err != nil {
		return nil, wrapErr("advance statuses", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

const activeEventsQuery = `SELECT ` + eventColumns + `
	FROM events
	WHERE venue_id = $1 AND status = ANY($2) AND id::text <> $3
	ORDER BY start_at, id`

func scanEvent(s scanner) (*domain.Event, error) {
	var e domain.Event
	err := s.Scan(
		&e.ID, &e.VenueID, &e.Name, &e.Description, &e.StartAt, &e.EndAt,
		&e.Status, &e.RentalType, &e.AttendeeCount,
		&e.BasePrice, &e.DiscountPercent, &e.AdditionalFees, &e.FinalPrice,
		&e.IsPaid, &e.PaymentDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.StartAt = e.StartAt.UTC()
	e.EndAt = e.EndAt.UTC()
	return &e, nil
}

type rowIterator interface {
	scanner
	Next() bool
	Err() error
}

func collectEvents(rows rowIterator) ([]*domain.Event, error) {
	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, wrapErr("scan event", err)
		}
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate events", err)
	}
	return res, nil
}
