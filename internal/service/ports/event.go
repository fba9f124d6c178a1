package ports

import (
	"context"
	"time"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
)

type EventRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	// ListActiveEvents returns upcoming and ongoing events of a venue,
	// skipping excludeEventID when it is not empty.
	ListActiveEvents(ctx context.Context, venueID, excludeEventID string) ([]*domain.Event, error)
	UpdatePayment(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	AdvanceStatuses(ctx context.Context, now time.Time) ([]*domain.Event, error)
}
