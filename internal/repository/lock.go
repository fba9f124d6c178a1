package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/Ranggadya/Venue-Event-Management-System/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
)

type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type txQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// VenueLockRepository serializes writers per venue by holding a row lock on
// the venue for the lifetime of one transaction.
type VenueLockRepository struct {
	db txBeginner
}

func NewVenueLockRepo(db *dbpg.DB) *VenueLockRepository {
	return &VenueLockRepository{db: db}
}

func (r *VenueLockRepository) WithVenueLock(ctx context.Context, venueID string, fn ports.VenueTxFunc) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr("begin tx", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1 FOR UPDATE`
	venue, err := scanVenue(tx.QueryRowContext(ctx, lockQuery, venueID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVenueNotFound
		}
		return wrapErr("lock venue", err)
	}

	if err = fn(ctx, venue, &venueTx{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return wrapErr("commit", err)
	}
	return nil
}

// venueTx implements ports.VenueTx on top of an open transaction.
type venueTx struct {
	tx txQuerier
}

func (t *venueTx) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`

	e, err := scanEvent(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, wrapErr("lock event", err)
	}
	return e, nil
}

func (t *venueTx) ListActiveEvents(ctx context.Context, venueID, excludeEventID string) ([]*domain.Event, error) {
	rows, err := t.tx.QueryContext(ctx, activeEventsQuery, venueID, activeStatuses(), excludeEventID)
	if err != nil {
		return nil, wrapErr("list active events", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (t *venueTx) InsertEvent(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := t.tx.ExecContext(
		ctx, query,
		e.ID, e.VenueID, e.Name, e.Description, e.StartAt, e.EndAt,
		e.Status, e.RentalType, e.AttendeeCount,
		e.BasePrice, e.DiscountPercent, e.AdditionalFees, e.FinalPrice,
		e.IsPaid, e.PaymentDate, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return wrapErr("insert event", err)
	}
	return nil
}

func (t *venueTx) UpdateEvent(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET venue_id = $2, name = $3, description = $4, start_at = $5, end_at = $6,
			      status = $7, rental_type = $8, attendee_count = $9,
			      base_price = $10, discount_percent = $11, additional_fees = $12, final_price = $13,
			      is_paid = $14, payment_date = $15, updated_at = $16
			  WHERE id = $1`

	res, err := t.tx.ExecContext(
		ctx, query,
		e.ID, e.VenueID, e.Name, e.Description, e.StartAt, e.EndAt,
		e.Status, e.RentalType, e.AttendeeCount,
		e.BasePrice, e.DiscountPercent, e.AdditionalFees, e.FinalPrice,
		e.IsPaid, e.PaymentDate, e.UpdatedAt,
	)
	if err != nil {
		return wrapErr("update event", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr("event rows affected", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// DeleteVenue removes the venue. Its remaining completed and cancelled
// events go with it through the foreign key cascade.
func (t *venueTx) DeleteVenue(ctx context.Context, venueID string) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, venueID)
	if err != nil {
		return wrapErr("delete venue", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr("delete rows affected", err)
	}
	if n == 0 {
		return fmt.Errorf("delete venue: %w", domain.ErrVenueNotFound)
	}
	return nil
}
