package ports

import (
	"context"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
)

// VenueTx is the view of storage available while a venue is locked. Reads
// through it see every write committed before the lock was taken.
type VenueTx interface {
	// GetEvent loads a booking and holds its row until the transaction ends.
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	ListActiveEvents(ctx context.Context, venueID, excludeEventID string) ([]*domain.Event, error)
	InsertEvent(ctx context.Context, e *domain.Event) error
	UpdateEvent(ctx context.Context, e *domain.Event) error
	DeleteVenue(ctx context.Context, venueID string) error
}

// VenueTxFunc runs with the locked venue row loaded. Returning an error
// rolls back every write made through tx.
type VenueTxFunc func(ctx context.Context, venue *domain.Venue, tx VenueTx) error

// VenueLocker serializes writers per venue. Check-then-write sequences that
// must not race run inside WithVenueLock.
type VenueLocker interface {
	WithVenueLock(ctx context.Context, venueID string, fn VenueTxFunc) error
}
