package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/Ranggadya/Venue-Event-Management-System/internal/service/ports"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lockVenueSQL   = `(?s)SELECT .+FROM venues WHERE id = \$1 FOR UPDATE`
	lockEventSQL   = `(?s)SELECT .+FROM events WHERE id = \$1 FOR UPDATE`
	activeSQL      = `(?s)SELECT .+FROM events\s+WHERE venue_id = \$1 AND status = ANY\(\$2\)`
	insertEventSQL = `INSERT INTO events`
)

var (
	venueCols = []string{
		"id", "name", "description", "address", "capacity", "price_per_hour", "price_per_day",
		"currency", "status", "created_at", "updated_at",
	}
	eventCols = []string{
		"id", "venue_id", "name", "description", "start_at", "end_at", "status", "rental_type",
		"attendee_count", "base_price", "discount_percent", "additional_fees", "final_price",
		"is_paid", "payment_date", "created_at", "updated_at",
	}
	fixedAt = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
)

func newLockRepo(t *testing.T) (*VenueLockRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &VenueLockRepository{db: db}, m
}

func venueRow() *sqlmock.Rows {
	return sqlmock.NewRows(venueCols).AddRow(
		"v1", "Grand Hall", "", "", 100, "100000", "700000",
		"IDR", "active", fixedAt, fixedAt,
	)
}

func draftEvent() *domain.Event {
	return &domain.Event{
		ID:         "e1",
		VenueID:    "v1",
		Name:       "Seminar",
		StartAt:    fixedAt.Add(48 * time.Hour),
		EndAt:      fixedAt.Add(51 * time.Hour),
		Status:     domain.EventStatusUpcoming,
		RentalType: domain.RentalTypeHourly,
		BasePrice:  decimal.NewFromInt(300000),
		FinalPrice: decimal.NewFromInt(300000),
		CreatedAt:  fixedAt,
		UpdatedAt:  fixedAt,
	}
}

// listThenInsert is the check-then-write sequence bookings go through.
func listThenInsert(e *domain.Event) ports.VenueTxFunc {
	return func(ctx context.Context, v *domain.Venue, tx ports.VenueTx) error {
		if _, err := tx.ListActiveEvents(ctx, v.ID, ""); err != nil {
			return err
		}
		return tx.InsertEvent(ctx, e)
	}
}

func TestWithVenueLock_CheckAndInsertInOneTx(t *testing.T) {
	repo, m := newLockRepo(t)

	m.ExpectBegin()
	m.ExpectQuery(lockVenueSQL).WithArgs("v1").WillReturnRows(venueRow())
	m.ExpectQuery(activeSQL).WithArgs("v1", sqlmock.AnyArg(), "").WillReturnRows(sqlmock.NewRows(eventCols))
	m.ExpectExec(insertEventSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	m.ExpectCommit()

	var locked *domain.Venue
	err := repo.WithVenueLock(context.Background(), "v1", func(ctx context.Context, v *domain.Venue, tx ports.VenueTx) error {
		locked = v
		return listThenInsert(draftEvent())(ctx, v, tx)
	})

	require.NoError(t, err)
	assert.Equal(t, "Grand Hall", locked.Name)
	assert.Equal(t, "100000", locked.PricePerHour.Decimal.String())
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestWithVenueLock_CallbackErrorRollsBack(t *testing.T) {
	repo, m := newLockRepo(t)
	conflict := domain.NewConflictError(draftEvent())

	m.ExpectBegin()
	m.ExpectQuery(lockVenueSQL).WithArgs("v1").WillReturnRows(venueRow())
	m.ExpectRollback()

	err := repo.WithVenueLock(context.Background(), "v1", func(context.Context, *domain.Venue, ports.VenueTx) error {
		return conflict
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestWithVenueLock_VenueMissing(t *testing.T) {
	repo, m := newLockRepo(t)

	m.ExpectBegin()
	m.ExpectQuery(lockVenueSQL).WithArgs("missing").WillReturnRows(sqlmock.NewRows(venueCols))
	m.ExpectRollback()

	called := false
	err := repo.WithVenueLock(context.Background(), "missing", func(context.Context, *domain.Venue, ports.VenueTx) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
	assert.False(t, called)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestWithVenueLock_OverlapBackstop(t *testing.T) {
	repo, m := newLockRepo(t)

	m.ExpectBegin()
	m.ExpectQuery(lockVenueSQL).WithArgs("v1").WillReturnRows(venueRow())
	m.ExpectQuery(activeSQL).WithArgs("v1", sqlmock.AnyArg(), "").WillReturnRows(sqlmock.NewRows(eventCols))
	m.ExpectExec(insertEventSQL).WillReturnError(&pq.Error{Code: codeExclusionViolation})
	m.ExpectRollback()

	err := repo.WithVenueLock(context.Background(), "v1", listThenInsert(draftEvent()))

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestWithVenueLock_CommitFailure(t *testing.T) {
	repo, m := newLockRepo(t)

	m.ExpectBegin()
	m.ExpectQuery(lockVenueSQL).WithArgs("v1").WillReturnRows(venueRow())
	m.ExpectCommit().WillReturnError(errors.New("connection reset"))

	err := repo.WithVenueLock(context.Background(), "v1", func(context.Context, *domain.Venue, ports.VenueTx) error {
		return nil
	})

	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestVenueTx_GetEventLocksRow(t *testing.T) {
	repo, m := newLockRepo(t)
	e := draftEvent()

	m.ExpectBegin()
	m.ExpectQuery(lockVenueSQL).WithArgs("v1").WillReturnRows(venueRow())
	m.ExpectQuery(lockEventSQL).WithArgs("e1").WillReturnRows(sqlmock.NewRows(eventCols).AddRow(
		e.ID, e.VenueID, e.Name, "", e.StartAt, e.EndAt, "upcoming", "hourly",
		nil, "300000", "0", "0", "300000",
		false, nil, fixedAt, fixedAt,
	))
	m.ExpectQuery(lockEventSQL).WithArgs("gone").WillReturnRows(sqlmock.NewRows(eventCols))
	m.ExpectRollback()

	var got *domain.Event
	err := repo.WithVenueLock(context.Background(), "v1", func(ctx context.Context, _ *domain.Venue, tx ports.VenueTx) error {
		var err error
		if got, err = tx.GetEvent(ctx, "e1"); err != nil {
			return err
		}
		_, err = tx.GetEvent(ctx, "gone")
		return err
	})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	require.NotNil(t, got)
	assert.Equal(t, domain.EventStatusUpcoming, got.Status)
	assert.Equal(t, e.StartAt, got.StartAt)
	assert.Nil(t, got.AttendeeCount)
	assert.NoError(t, m.ExpectationsWereMet())
}
