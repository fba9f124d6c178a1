package ports

import (
	"context"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
)

type VenueRepo interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) error
	GetSummary(ctx context.Context, venueID string) (*domain.VenueSummary, error)
}
