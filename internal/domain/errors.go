package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrVenueNotFound = fmt.Errorf("venue %w", ErrNotFound)
	ErrEventNotFound = fmt.Errorf("event %w", ErrNotFound)
)

var (
	ErrInvalidRange        = errors.New("invalid time range")
	ErrPastDate            = errors.New("start time is in the past")
	ErrVenueUnavailable    = errors.New("venue is not available for booking")
	ErrCapacityExceeded    = errors.New("attendee count exceeds venue capacity")
	ErrConflict            = errors.New("time window conflicts with an existing booking")
	ErrConfiguration       = errors.New("venue pricing is not configured")
	ErrActiveBookingsExist = errors.New("venue has active bookings")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrStorage marks infrastructure failures. Unlike the business rule errors
// above it may be transient, so callers are free to retry.
var ErrStorage = errors.New("storage error")

// ConflictError identifies the booking that blocks a requested window.
type ConflictError struct {
	EventID   string
	EventName string
	StartAt   time.Time
	EndAt     time.Time
}

func NewConflictError(e *Event) *ConflictError {
	return &ConflictError{
		EventID:   e.ID,
		EventName: e.Name,
		StartAt:   e.StartAt,
		EndAt:     e.EndAt,
	}
}

func (e *ConflictError) Error() string {
	if e.EventID == "" {
		return ErrConflict.Error()
	}
	return fmt.Sprintf("%s: %q (%s - %s)",
		ErrConflict.Error(), e.EventName,
		e.StartAt.Format(time.RFC3339), e.EndAt.Format(time.RFC3339),
	)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func (e *ConflictError) Conflict() *Conflict {
	return &Conflict{
		EventID:   e.EventID,
		EventName: e.EventName,
		StartAt:   e.StartAt,
		EndAt:     e.EndAt,
	}
}

// IsBusinessRuleError reports whether err is a deterministic rule violation
// that retrying would not fix.
func IsBusinessRuleError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrPastDate) ||
		errors.Is(err, ErrVenueUnavailable) ||
		errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrConfiguration) ||
		errors.Is(err, ErrActiveBookingsExist) ||
		errors.Is(err, ErrValidation)
}
