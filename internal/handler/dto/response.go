package dto

import (
	"time"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/Ranggadya/Venue-Event-Management-System/internal/pricing"
	"github.com/shopspring/decimal"
)

type VenueResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	Capacity     int     `json:"capacity"`
	PricePerHour *string `json:"price_per_hour"`
	PricePerDay  *string `json:"price_per_day"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type VenueSummaryResponse struct {
	Upcoming    int    `json:"upcoming"`
	Ongoing     int    `json:"ongoing"`
	Completed   int    `json:"completed"`
	Cancelled   int    `json:"cancelled"`
	PaidRevenue string `json:"paid_revenue"`
}

type VenueDetailsResponse struct {
	Venue        VenueResponse        `json:"venue"`
	Summary      VenueSummaryResponse `json:"summary"`
	ActiveEvents []EventResponse      `json:"active_events"`
}

type EventResponse struct {
	ID              string  `json:"id"`
	VenueID         string  `json:"venue_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	StartAt         string  `json:"start_at"`
	EndAt           string  `json:"end_at"`
	Status          string  `json:"status"`
	RentalType      string  `json:"rental_type"`
	AttendeeCount   *int    `json:"attendee_count"`
	BasePrice       string  `json:"base_price"`
	DiscountPercent string  `json:"discount_percent"`
	AdditionalFees  string  `json:"additional_fees"`
	FinalPrice      string  `json:"final_price"`
	IsPaid          bool    `json:"is_paid"`
	PaymentDate     *string `json:"payment_date"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type ConflictResponse struct {
	EventID   string `json:"event_id"`
	EventName string `json:"event_name"`
	StartAt   string `json:"start_at"`
	EndAt     string `json:"end_at"`
}

type AvailabilityResponse struct {
	Available bool              `json:"available"`
	Conflict  *ConflictResponse `json:"conflict,omitempty"`
}

type QuoteResponse struct {
	RentalType      string `json:"rental_type"`
	DurationHours   int64  `json:"duration_hours"`
	BasePrice       string `json:"base_price"`
	DiscountPercent string `json:"discount_percent"`
	AdditionalFees  string `json:"additional_fees"`
	FinalPrice      string `json:"final_price"`
}

type ErrorResponse struct {
	Error    string            `json:"error"`
	Conflict *ConflictResponse `json:"conflict,omitempty"`
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:           v.ID,
		Name:         v.Name,
		Description:  v.Description,
		Address:      v.Address,
		Capacity:     v.Capacity,
		PricePerHour: nullMoney(v.PricePerHour),
		PricePerDay:  nullMoney(v.PricePerDay),
		Currency:     v.Currency,
		Status:       string(v.Status),
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.Format(time.RFC3339),
	}
}

func ToVenueDetailsResponse(d *domain.VenueDetails) VenueDetailsResponse {
	events := make([]EventResponse, 0, len(d.ActiveEvents))
	for _, e := range d.ActiveEvents {
		events = append(events, ToEventResponse(&e))
	}

	return VenueDetailsResponse{
		Venue: ToVenueResponse(&d.Venue),
		Summary: VenueSummaryResponse{
			Upcoming:    d.Summary.Upcoming,
			Ongoing:     d.Summary.Ongoing,
			Completed:   d.Summary.Completed,
			Cancelled:   d.Summary.Cancelled,
			PaidRevenue: d.Summary.PaidRevenue.String(),
		},
		ActiveEvents: events,
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:              e.ID,
		VenueID:         e.VenueID,
		Name:            e.Name,
		Description:     e.Description,
		StartAt:         e.StartAt.UTC().Format(time.RFC3339),
		EndAt:           e.EndAt.UTC().Format(time.RFC3339),
		Status:          string(e.Status),
		RentalType:      string(e.RentalType),
		AttendeeCount:   e.AttendeeCount,
		BasePrice:       e.BasePrice.String(),
		DiscountPercent: e.DiscountPercent.String(),
		AdditionalFees:  e.AdditionalFees.String(),
		FinalPrice:      e.FinalPrice.String(),
		IsPaid:          e.IsPaid,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       e.UpdatedAt.Format(time.RFC3339),
	}
	if e.PaymentDate != nil {
		s := e.PaymentDate.UTC().Format(time.RFC3339)
		resp.PaymentDate = &s
	}
	return resp
}

func ToConflictResponse(c *domain.Conflict) *ConflictResponse {
	if c == nil {
		return nil
	}
	return &ConflictResponse{
		EventID:   c.EventID,
		EventName: c.EventName,
		StartAt:   c.StartAt.UTC().Format(time.RFC3339),
		EndAt:     c.EndAt.UTC().Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(r *domain.AvailabilityResult) AvailabilityResponse {
	return AvailabilityResponse{
		Available: r.Available,
		Conflict:  ToConflictResponse(r.Conflict),
	}
}

func ToQuoteResponse(q *pricing.Quote) QuoteResponse {
	return QuoteResponse{
		RentalType:      string(q.RentalType),
		DurationHours:   q.DurationHours,
		BasePrice:       q.BasePrice.String(),
		DiscountPercent: q.DiscountPercent.String(),
		AdditionalFees:  q.AdditionalFees.String(),
		FinalPrice:      q.FinalPrice.String(),
	}
}

func nullMoney(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}
