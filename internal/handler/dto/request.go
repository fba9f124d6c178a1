package dto

import "github.com/shopspring/decimal"

// Money fields accept either a JSON number or a decimal string.

type CreateVenueRequest struct {
	Name         string           `json:"name" binding:"required,max=200"`
	Description  string           `json:"description"`
	Address      string           `json:"address"`
	Capacity     int              `json:"capacity" binding:"required,gt=0"`
	PricePerHour *decimal.Decimal `json:"price_per_hour"`
	PricePerDay  *decimal.Decimal `json:"price_per_day"`
	Currency     string           `json:"currency" binding:"omitempty,len=3"`
	Status       string           `json:"status" binding:"omitempty,oneof=active maintenance inactive"`
}

// UpdateVenueRequest is a partial update. A rate can be removed with the
// matching clear flag.
type UpdateVenueRequest struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	Address           *string          `json:"address"`
	Capacity          *int             `json:"capacity"`
	PricePerHour      *decimal.Decimal `json:"price_per_hour"`
	PricePerDay       *decimal.Decimal `json:"price_per_day"`
	ClearPricePerHour bool             `json:"clear_price_per_hour"`
	ClearPricePerDay  bool             `json:"clear_price_per_day"`
	Currency          *string          `json:"currency"`
	Status            *string          `json:"status"`
}

type CreateEventRequest struct {
	VenueID         string          `json:"venue_id" binding:"required,uuid"`
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	StartAt         string          `json:"start_at" binding:"required"`
	EndAt           string          `json:"end_at" binding:"required"`
	AttendeeCount   *int            `json:"attendee_count"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	AdditionalFees  decimal.Decimal `json:"additional_fees"`
	RentalType      *string         `json:"rental_type"`
	IsPaid          bool            `json:"is_paid"`
}

type UpdateEventRequest struct {
	VenueID         *string          `json:"venue_id" binding:"omitempty,uuid"`
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	StartAt         *string          `json:"start_at"`
	EndAt           *string          `json:"end_at"`
	Status          *string          `json:"status"`
	AttendeeCount   *int             `json:"attendee_count"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
	AdditionalFees  *decimal.Decimal `json:"additional_fees"`
	RentalType      *string          `json:"rental_type"`
	IsPaid          *bool            `json:"is_paid"`
}

type QuoteRequest struct {
	StartAt         string          `json:"start_at" binding:"required"`
	EndAt           string          `json:"end_at" binding:"required"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	AdditionalFees  decimal.Decimal `json:"additional_fees"`
	RentalType      *string         `json:"rental_type"`
}

type PaymentRequest struct {
	IsPaid *bool `json:"is_paid" binding:"required"`
}
