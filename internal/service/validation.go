package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	defaultMinDuration = time.Hour
	defaultMaxDuration = 720 * time.Hour
)

// BookingRules bounds the length of a single booking.
type BookingRules struct {
	MinDuration time.Duration
	MaxDuration time.Duration
}

func (r BookingRules) withDefaults() BookingRules {
	if r.MinDuration <= 0 {
		r.MinDuration = defaultMinDuration
	}
	if r.MaxDuration <= 0 {
		r.MaxDuration = defaultMaxDuration
	}
	return r
}

// checkSet selects which pipeline stages run. Create runs all of them; an
// update only re-runs the stages its changed fields can affect.
type checkSet struct {
	temporal     bool
	notInPast    bool
	venueActive  bool
	capacity     bool
	availability bool
}

var createChecks = checkSet{
	temporal:     true,
	notInPast:    true,
	venueActive:  true,
	capacity:     true,
	availability: true,
}

func updateChecks(prev, next *domain.Event) checkSet {
	venueChanged := prev.VenueID != next.VenueID
	startChanged := !prev.StartAt.Equal(next.StartAt)
	windowChanged := startChanged || !prev.EndAt.Equal(next.EndAt)
	reactivated := !prev.Status.IsActive() && next.Status.IsActive()

	// a booking leaving the active set cannot collide with anything
	placement := (venueChanged || windowChanged || reactivated) && next.Status.IsActive()

	return checkSet{
		temporal:     windowChanged,
		notInPast:    startChanged,
		venueActive:  placement,
		capacity:     venueChanged || !sameCount(prev.AttendeeCount, next.AttendeeCount),
		availability: placement,
	}
}

func sameCount(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type bookingValidator struct {
	rules        BookingRules
	availability AvailabilityChecker
	now          func() time.Time
}

type stage struct {
	enabled bool
	check   func() error
}

// run executes the enabled stages in order and stops at the first failure.
// Every stage is read-only.
func (v *bookingValidator) run(
	ctx context.Context,
	checks checkSet,
	draft *domain.Event,
	venue *domain.Venue,
	src activeEventLister,
	excludeEventID string,
) error {
	window := draft.Window()

	stages := []stage{
		{checks.temporal, func() error { return v.checkTemporal(window) }},
		{checks.notInPast, func() error { return v.checkNotInPast(window) }},
		{checks.venueActive, func() error { return checkVenueActive(venue) }},
		{checks.capacity, func() error { return checkCapacity(venue, draft.AttendeeCount) }},
		{checks.availability, func() error {
			return v.availability.EnsureAvailable(ctx, src, venue.ID, window, excludeEventID)
		}},
	}

	for _, s := range stages {
		if !s.enabled {
			continue
		}
		if err := s.check(); err != nil {
			return err
		}
	}
	return nil
}

func (v *bookingValidator) checkTemporal(window domain.Interval) error {
	if !window.Valid() {
		return fmt.Errorf("%w: start %s must be before end %s",
			domain.ErrInvalidRange,
			window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339),
		)
	}

	d := window.Duration()
	if d < v.rules.MinDuration || d > v.rules.MaxDuration {
		return fmt.Errorf("%w: duration %s must be between %s and %s",
			domain.ErrInvalidRange, d, v.rules.MinDuration, v.rules.MaxDuration,
		)
	}
	return nil
}

func (v *bookingValidator) checkNotInPast(window domain.Interval) error {
	if window.Start.Before(v.now()) {
		return fmt.Errorf("%w: %s", domain.ErrPastDate, window.Start.Format(time.RFC3339))
	}
	return nil
}

func checkVenueActive(venue *domain.Venue) error {
	if venue.Status != domain.VenueStatusActive {
		return fmt.Errorf("%w: venue %q is %s", domain.ErrVenueUnavailable, venue.Name, venue.Status)
	}
	return nil
}

func checkCapacity(venue *domain.Venue, attendees *int) error {
	if attendees == nil || *attendees <= 0 {
		return nil
	}
	if *attendees > venue.Capacity {
		return fmt.Errorf("%w: %d attendees, venue %q holds %d",
			domain.ErrCapacityExceeded, *attendees, venue.Name, venue.Capacity,
		)
	}
	return nil
}

// Input checks run before the pipeline and reject malformed values outright.

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return name, nil
}

func validateAttendees(n *int) error {
	if n != nil && *n <= 0 {
		return fmt.Errorf("%w: attendee_count must be positive", domain.ErrValidation)
	}
	return nil
}

func validateFees(fees decimal.Decimal) error {
	if fees.IsNegative() {
		return fmt.Errorf("%w: additional_fees must not be negative", domain.ErrValidation)
	}
	return validateScale("additional_fees", fees)
}

func validateDiscount(d decimal.Decimal) error {
	return validateScale("discount_percent", d)
}

// moneyScale is the number of fraction digits the storage keeps for rates,
// fees and discounts. Prices are computed from exactly what gets stored.
const moneyScale = 2

func validateScale(field string, d decimal.Decimal) error {
	if !d.Equal(d.Round(moneyScale)) {
		return fmt.Errorf("%w: %s allows at most %d decimal places", domain.ErrValidation, field, moneyScale)
	}
	return nil
}

func validateRentalType(rt *domain.RentalType) error {
	if rt != nil && !rt.Valid() {
		return fmt.Errorf("%w: unknown rental_type %q", domain.ErrValidation, *rt)
	}
	return nil
}

func validateStatus(s domain.EventStatus) error {
	if !s.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, s)
	}
	return nil
}
