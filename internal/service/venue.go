package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/Ranggadya/Venue-Event-Management-System/internal/service/ports"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

const defaultCurrency = "IDR"

var validate = validator.New()

type VenueService struct {
	venues          ports.VenueRepo
	events          ports.EventRepo
	locker          ports.VenueLocker
	logger          logger.Logger
	defaultCurrency string
	now             func() time.Time
}

func NewVenueService(
	venues ports.VenueRepo,
	events ports.EventRepo,
	locker ports.VenueLocker,
	logger logger.Logger,
	currency string,
) *VenueService {
	if currency == "" {
		currency = defaultCurrency
	}
	return &VenueService{
		venues:          venues,
		events:          events,
		locker:          locker,
		logger:          logger,
		defaultCurrency: strings.ToUpper(currency),
		now:             time.Now,
	}
}

func (s *VenueService) Create(ctx context.Context, in domain.CreateVenueInput) (*domain.Venue, error) {
	status := in.Status
	if status == "" {
		status = domain.VenueStatusActive
	}
	currency := in.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	now := s.now().UTC()
	venue := &domain.Venue{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Address:      in.Address,
		Capacity:     in.Capacity,
		PricePerHour: in.PricePerHour,
		PricePerDay:  in.PricePerDay,
		Currency:     strings.ToUpper(currency),
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := validateVenue(venue); err != nil {
		return nil, err
	}

	if err := s.venues.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	if !venue.PricePerHour.Valid && !venue.PricePerDay.Valid {
		s.logger.Warn("venue created without rates, bookings will fail to price",
			logger.String("venue_id", venue.ID),
		)
	}
	s.logger.Info("venue created",
		logger.String("venue_id", venue.ID),
		logger.String("name", venue.Name),
	)

	return venue, nil
}

// Update applies an administrator edit. Status changes are free-form;
// existing bookings keep the prices they were quoted.
func (s *VenueService) Update(ctx context.Context, id string, in domain.UpdateVenueInput) (*domain.Venue, error) {
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	if in.Name != nil {
		venue.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		venue.Description = *in.Description
	}
	if in.Address != nil {
		venue.Address = *in.Address
	}
	if in.Capacity != nil {
		venue.Capacity = *in.Capacity
	}
	if in.PricePerHour != nil {
		venue.PricePerHour = *in.PricePerHour
	}
	if in.PricePerDay != nil {
		venue.PricePerDay = *in.PricePerDay
	}
	if in.Currency != nil {
		venue.Currency = strings.ToUpper(*in.Currency)
	}
	if in.Status != nil {
		venue.Status = *in.Status
	}
	venue.UpdatedAt = s.now().UTC()

	if err = validateVenue(venue); err != nil {
		return nil, err
	}

	if err = s.venues.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}

	s.logger.Info("venue updated",
		logger.String("venue_id", venue.ID),
		logger.String("status", string(venue.Status)),
	)

	return venue, nil
}

func (s *VenueService) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	return s.venues.GetByID(ctx, id)
}

func (s *VenueService) List(ctx context.Context) ([]*domain.Venue, error) {
	return s.venues.List(ctx)
}

func (s *VenueService) GetDetails(ctx context.Context, id string) (*domain.VenueDetails, error) {
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	summary, err := s.venues.GetSummary(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}

	active, err := s.events.ListActiveEvents(ctx, id, "")
	if err != nil {
		return nil, fmt.Errorf("list active events: %w", err)
	}

	details := &domain.VenueDetails{
		Venue:        *venue,
		Summary:      *summary,
		ActiveEvents: make([]domain.Event, len(active)),
	}
	for i, e := range active {
		details.ActiveEvents[i] = *e
	}

	return details, nil
}

// Delete removes a venue that has no upcoming or ongoing bookings. The
// guard and the delete share the venue lock, so a booking cannot slip in
// between them.
func (s *VenueService) Delete(ctx context.Context, id string) error {
	err := s.locker.WithVenueLock(ctx, id, func(ctx context.Context, v *domain.Venue, tx ports.VenueTx) error {
		active, err := tx.ListActiveEvents(ctx, v.ID, "")
		if err != nil {
			return fmt.Errorf("list active events: %w", err)
		}
		if len(active) > 0 {
			return fmt.Errorf("%w: venue %q has %d upcoming or ongoing events",
				domain.ErrActiveBookingsExist, v.Name, len(active),
			)
		}
		return tx.DeleteVenue(ctx, v.ID)
	})
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}

	s.logger.Info("venue deleted", logger.String("venue_id", id))
	return nil
}

func validateVenue(v *domain.Venue) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	if err := validateRate("price_per_hour", v.PricePerHour); err != nil {
		return err
	}
	return validateRate("price_per_day", v.PricePerDay)
}

func validateRate(field string, rate decimal.NullDecimal) error {
	if !rate.Valid {
		return nil
	}
	if !rate.Decimal.IsPositive() {
		return fmt.Errorf("%w: %s must be positive", domain.ErrValidation, field)
	}
	return validateScale(field, rate.Decimal)
}
