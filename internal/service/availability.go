package service

import (
	"context"
	"fmt"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
)

type activeEventLister interface {
	ListActiveEvents(ctx context.Context, venueID, excludeEventID string) ([]*domain.Event, error)
}

// AvailabilityChecker decides whether a window is free on a venue. It only
// reads; atomicity with the following write is the caller's business.
type AvailabilityChecker struct{}

// FindConflict returns the first active booking on venueID that overlaps
// window, ignoring excludeEventID. A nil event means the window is free.
func (AvailabilityChecker) FindConflict(
	ctx context.Context,
	src activeEventLister,
	venueID string,
	window domain.Interval,
	excludeEventID string,
) (*domain.Event, error) {
	active, err := src.ListActiveEvents(ctx, venueID, excludeEventID)
	if err != nil {
		return nil, fmt.Errorf("list active events: %w", err)
	}

	return domain.FirstConflict(active, window), nil
}

func (c AvailabilityChecker) IsAvailable(
	ctx context.Context,
	src activeEventLister,
	venueID string,
	window domain.Interval,
	excludeEventID string,
) (bool, error) {
	conflict, err := c.FindConflict(ctx, src, venueID, window, excludeEventID)
	if err != nil {
		return false, err
	}
	return conflict == nil, nil
}

// EnsureAvailable fails with a *domain.ConflictError naming the blocking
// booking.
func (c AvailabilityChecker) EnsureAvailable(
	ctx context.Context,
	src activeEventLister,
	venueID string,
	window domain.Interval,
	excludeEventID string,
) error {
	conflict, err := c.FindConflict(ctx, src, venueID, window, excludeEventID)
	if err != nil {
		return err
	}
	if conflict != nil {
		return domain.NewConflictError(conflict)
	}
	return nil
}
