package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/Ranggadya/Venue-Event-Management-System/internal/pricing"
	"github.com/Ranggadya/Venue-Event-Management-System/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/singleflight"
)

const previewTimeout = 10 * time.Second

type BookingService struct {
	events    ports.EventRepo
	venues    ports.VenueRepo
	locker    ports.VenueLocker
	notifier  ports.BookingNotifier
	logger    logger.Logger
	checker   AvailabilityChecker
	validator *bookingValidator
	previews  singleflight.Group
	now       func() time.Time
}

func NewBookingService(
	events ports.EventRepo,
	venues ports.VenueRepo,
	locker ports.VenueLocker,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	rules BookingRules,
) *BookingService {
	s := &BookingService{
		events:   events,
		venues:   venues,
		locker:   locker,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
	s.validator = &bookingValidator{
		rules: rules.withDefaults(),
		now:   func() time.Time { return s.now() },
	}
	return s
}

// Create validates a draft booking, prices it and stores it. The pipeline
// and the insert run under the venue lock, so two overlapping requests for
// the same venue cannot both succeed.
func (s *BookingService) Create(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	name, err := validateName(in.Name)
	if err != nil {
		return nil, err
	}
	if err = validateAttendees(in.AttendeeCount); err != nil {
		return nil, err
	}
	if err = validateFees(in.AdditionalFees); err != nil {
		return nil, err
	}
	if err = validateDiscount(in.DiscountPercent); err != nil {
		return nil, err
	}
	if err = validateRentalType(in.RentalType); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	event := &domain.Event{
		ID:              uuid.New().String(),
		VenueID:         in.VenueID,
		Name:            name,
		Description:     in.Description,
		StartAt:         in.StartAt.UTC(),
		EndAt:           in.EndAt.UTC(),
		Status:          domain.EventStatusUpcoming,
		AttendeeCount:   in.AttendeeCount,
		DiscountPercent: pricing.ClampDiscount(in.DiscountPercent),
		AdditionalFees:  in.AdditionalFees,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	event.SetPaid(in.IsPaid, now)

	var venue *domain.Venue
	err = s.locker.WithVenueLock(ctx, in.VenueID, func(ctx context.Context, v *domain.Venue, tx ports.VenueTx) error {
		if err := s.validator.run(ctx, createChecks, event, v, tx, ""); err != nil {
			return err
		}
		if err := priceEvent(v, event, in.RentalType); err != nil {
			return err
		}
		venue = v
		return tx.InsertEvent(ctx, event)
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("event_id", event.ID),
		logger.String("venue_id", event.VenueID),
		logger.String("rental_type", string(event.RentalType)),
		logger.String("final_price", event.FinalPrice.String()),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), venue, event)

	return event, nil
}

// maxRelocks bounds how often Update follows a booking that another writer
// moved to a different venue between the lookup and the lock.
const maxRelocks = 3

// Update merges in into the stored booking. Only the checks affected by the
// changed fields are re-run, and prices are recomputed when any pricing
// input changed. The stored booking is re-read under the lock of the venue
// it ends up in, so the merge always starts from the latest committed row.
func (s *BookingService) Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error) {
	stored, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	venueID := stored.VenueID
	if in.VenueID != nil {
		venueID = *in.VenueID
	}

	for range maxRelocks {
		res, err := s.updateLocked(ctx, venueID, id, in)
		var moved *bookingMovedError
		if errors.As(err, &moved) {
			venueID = moved.venueID
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("update event: %w", err)
		}
		return res, nil
	}
	return nil, fmt.Errorf("update event: %w: booking %s keeps moving between venues", domain.ErrConflict, id)
}

type bookingMovedError struct {
	venueID string
}

func (e *bookingMovedError) Error() string {
	return "booking moved to venue " + e.venueID
}

func (s *BookingService) updateLocked(ctx context.Context, venueID, id string, in domain.UpdateEventInput) (*domain.Event, error) {
	now := s.now().UTC()

	var prev, next *domain.Event
	var venue *domain.Venue
	err := s.locker.WithVenueLock(ctx, venueID, func(ctx context.Context, v *domain.Venue, tx ports.VenueTx) error {
		var err error
		if prev, err = tx.GetEvent(ctx, id); err != nil {
			return err
		}
		if in.VenueID == nil && prev.VenueID != v.ID {
			return &bookingMovedError{venueID: prev.VenueID}
		}

		if next, err = mergeEvent(prev, in, now); err != nil {
			return err
		}
		if err = s.validator.run(ctx, updateChecks(prev, next), next, v, tx, next.ID); err != nil {
			return err
		}

		if repriceNeeded(prev, next, in) {
			override := in.RentalType
			if override == nil && !placementChanged(prev, next) {
				rt := prev.RentalType
				override = &rt
			}
			if err = priceEvent(v, next, override); err != nil {
				return err
			}
		}

		next.UpdatedAt = now
		venue = v
		return tx.UpdateEvent(ctx, next)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking updated",
		logger.String("event_id", next.ID),
		logger.String("venue_id", next.VenueID),
		logger.String("status", string(next.Status)),
		logger.String("final_price", next.FinalPrice.String()),
	)

	if prev.Status != domain.EventStatusCancelled && next.Status == domain.EventStatusCancelled {
		go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), venue, next)
	}
	if !prev.IsPaid && next.IsPaid {
		go s.notifier.NotifyPaymentReceived(context.WithoutCancel(ctx), venue, next)
	}

	return next, nil
}

func mergeEvent(prev *domain.Event, in domain.UpdateEventInput, now time.Time) (*domain.Event, error) {
	next := *prev

	if in.VenueID != nil {
		next.VenueID = *in.VenueID
	}
	if in.Name != nil {
		name, err := validateName(*in.Name)
		if err != nil {
			return nil, err
		}
		next.Name = name
	}
	if in.Description != nil {
		next.Description = *in.Description
	}
	if in.StartAt != nil {
		next.StartAt = in.StartAt.UTC()
	}
	if in.EndAt != nil {
		next.EndAt = in.EndAt.UTC()
	}
	if in.Status != nil {
		if err := validateStatus(*in.Status); err != nil {
			return nil, err
		}
		next.Status = *in.Status
	}
	if in.AttendeeCount != nil {
		if err := validateAttendees(in.AttendeeCount); err != nil {
			return nil, err
		}
		n := *in.AttendeeCount
		next.AttendeeCount = &n
	}
	if in.DiscountPercent != nil {
		if err := validateDiscount(*in.DiscountPercent); err != nil {
			return nil, err
		}
		next.DiscountPercent = pricing.ClampDiscount(*in.DiscountPercent)
	}
	if in.AdditionalFees != nil {
		if err := validateFees(*in.AdditionalFees); err != nil {
			return nil, err
		}
		next.AdditionalFees = *in.AdditionalFees
	}
	if err := validateRentalType(in.RentalType); err != nil {
		return nil, err
	}
	if in.IsPaid != nil {
		next.SetPaid(*in.IsPaid, now)
	}

	return &next, nil
}

func placementChanged(prev, next *domain.Event) bool {
	return prev.VenueID != next.VenueID ||
		!prev.StartAt.Equal(next.StartAt) ||
		!prev.EndAt.Equal(next.EndAt)
}

func repriceNeeded(prev, next *domain.Event, in domain.UpdateEventInput) bool {
	return placementChanged(prev, next) ||
		in.DiscountPercent != nil ||
		in.AdditionalFees != nil ||
		in.RentalType != nil
}

func priceEvent(v *domain.Venue, e *domain.Event, override *domain.RentalType) error {
	quote, err := pricing.NewQuote(pricing.VenueRates(v), e.Window(), override, e.DiscountPercent, e.AdditionalFees)
	if err != nil {
		return fmt.Errorf("price event: %w", err)
	}
	quote.Apply(e)
	return nil
}

// CheckAvailability reports whether [start, end) is free on the venue and,
// when it is not, which booking blocks it. The answer is advisory: Create
// re-checks under the venue lock.
func (s *BookingService) CheckAvailability(
	ctx context.Context,
	venueID string,
	start, end time.Time,
	excludeEventID string,
) (*domain.AvailabilityResult, error) {
	window := domain.NewInterval(start.UTC(), end.UTC())
	if !window.Valid() {
		return nil, fmt.Errorf("%w: start must be before end", domain.ErrInvalidRange)
	}

	key := fmt.Sprintf("%s|%d|%d|%s", venueID, window.Start.UnixNano(), window.End.UnixNano(), excludeEventID)
	ch := s.previews.DoChan(key, func() (any, error) {
		// shared by every caller waiting on key, so no single caller's
		// cancellation may abort it
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), previewTimeout)
		defer cancel()

		if _, err := s.venues.GetByID(ctx, venueID); err != nil {
			return nil, fmt.Errorf("get venue: %w", err)
		}

		conflict, err := s.checker.FindConflict(ctx, s.events, venueID, window, excludeEventID)
		if err != nil {
			return nil, err
		}

		res := &domain.AvailabilityResult{Available: conflict == nil}
		if conflict != nil {
			res.Conflict = domain.NewConflictError(conflict).Conflict()
		}
		return res, nil
	})

	var r singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("check availability: %w", ctx.Err())
	case r = <-ch:
	}
	if r.Err != nil {
		return nil, fmt.Errorf("check availability: %w", r.Err)
	}

	res := *r.Val.(*domain.AvailabilityResult)
	return &res, nil
}

// Quote prices a prospective booking without storing anything.
func (s *BookingService) Quote(ctx context.Context, venueID string, in domain.QuoteInput) (*pricing.Quote, error) {
	if err := validateFees(in.AdditionalFees); err != nil {
		return nil, err
	}
	if err := validateDiscount(in.DiscountPercent); err != nil {
		return nil, err
	}
	if err := validateRentalType(in.RentalType); err != nil {
		return nil, err
	}

	window := domain.NewInterval(in.StartAt.UTC(), in.EndAt.UTC())
	if err := s.validator.checkTemporal(window); err != nil {
		return nil, err
	}

	venue, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	quote, err := pricing.NewQuote(
		pricing.VenueRates(venue), window, in.RentalType,
		pricing.ClampDiscount(in.DiscountPercent), in.AdditionalFees,
	)
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}
	return quote, nil
}

// SetPaid flips the payment flag. Payment does not affect placement, so it
// bypasses the venue lock.
func (s *BookingService) SetPaid(ctx context.Context, id string, paid bool) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	wasPaid := event.IsPaid
	now := s.now().UTC()
	event.SetPaid(paid, now)
	event.UpdatedAt = now

	if err = s.events.UpdatePayment(ctx, event); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	s.logger.Info("booking payment updated",
		logger.String("event_id", event.ID),
		logger.Any("is_paid", paid),
	)

	if !wasPaid && paid {
		venue, err := s.venues.GetByID(ctx, event.VenueID)
		if err != nil {
			s.logger.Error("failed to get venue for notification",
				logger.String("venue_id", event.VenueID),
				logger.String("error", err.Error()),
			)
			return event, nil
		}
		go s.notifier.NotifyPaymentReceived(context.WithoutCancel(ctx), venue, event)
	}

	return event, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	if filter.Status != "" {
		if err := validateStatus(filter.Status); err != nil {
			return nil, err
		}
	}
	return s.events.List(ctx, filter)
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("booking deleted", logger.String("event_id", id))
	return nil
}

// AdvanceStatuses moves bookings along upcoming -> ongoing -> completed as
// their windows start and end.
func (s *BookingService) AdvanceStatuses(ctx context.Context) ([]*domain.Event, error) {
	changed, err := s.events.AdvanceStatuses(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("advance statuses: %w", err)
	}

	if len(changed) > 0 {
		s.logger.Info("booking statuses advanced",
			logger.Int("count", len(changed)),
		)
	}

	return changed, nil
}
