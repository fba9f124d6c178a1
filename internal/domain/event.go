package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// ActiveStatuses block overlapping bookings and venue deletion.
var ActiveStatuses = []EventStatus{EventStatusUpcoming, EventStatusOngoing}

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

func (s EventStatus) IsActive() bool {
	return s == EventStatusUpcoming || s == EventStatusOngoing
}

type RentalType string

const (
	RentalTypeHourly RentalType = "hourly"
	RentalTypeDaily  RentalType = "daily"
)

func (t RentalType) Valid() bool {
	return t == RentalTypeHourly || t == RentalTypeDaily
}

type Event struct {
	ID              string          `json:"id"`
	VenueID         string          `json:"venue_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	StartAt         time.Time       `json:"start_at"`
	EndAt           time.Time       `json:"end_at"`
	Status          EventStatus     `json:"status"`
	RentalType      RentalType      `json:"rental_type"`
	AttendeeCount   *int            `json:"attendee_count,omitempty"`
	BasePrice       decimal.Decimal `json:"base_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	AdditionalFees  decimal.Decimal `json:"additional_fees"`
	FinalPrice      decimal.Decimal `json:"final_price"`
	IsPaid          bool            `json:"is_paid"`
	PaymentDate     *time.Time      `json:"payment_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (e *Event) Window() Interval {
	return Interval{Start: e.StartAt, End: e.EndAt}
}

// SetPaid records a payment flag change. The payment date is stamped only on
// a false->true transition and cleared whenever the flag goes false.
func (e *Event) SetPaid(paid bool, now time.Time) {
	switch {
	case paid && !e.IsPaid:
		at := now
		e.PaymentDate = &at
	case !paid:
		e.PaymentDate = nil
	}
	e.IsPaid = paid
}

type CreateEventInput struct {
	VenueID         string
	Name            string
	Description     string
	StartAt         time.Time
	EndAt           time.Time
	AttendeeCount   *int
	DiscountPercent decimal.Decimal
	AdditionalFees  decimal.Decimal
	RentalType      *RentalType
	IsPaid          bool
}

// UpdateEventInput carries a partial edit; nil fields keep their value.
type UpdateEventInput struct {
	VenueID         *string
	Name            *string
	Description     *string
	StartAt         *time.Time
	EndAt           *time.Time
	Status          *EventStatus
	AttendeeCount   *int
	DiscountPercent *decimal.Decimal
	AdditionalFees  *decimal.Decimal
	RentalType      *RentalType
	IsPaid          *bool
}

type EventFilter struct {
	VenueID string
	Status  EventStatus
}

type QuoteInput struct {
	StartAt         time.Time
	EndAt           time.Time
	DiscountPercent decimal.Decimal
	AdditionalFees  decimal.Decimal
	RentalType      *RentalType
}

// Conflict names the booking blocking a requested window.
type Conflict struct {
	EventID   string    `json:"event_id"`
	EventName string    `json:"event_name"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
}

type AvailabilityResult struct {
	Available bool      `json:"available"`
	Conflict  *Conflict `json:"conflict,omitempty"`
}
