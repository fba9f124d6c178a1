package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type VenueStatus string

const (
	VenueStatusActive      VenueStatus = "active"
	VenueStatusMaintenance VenueStatus = "maintenance"
	VenueStatusInactive    VenueStatus = "inactive"
)

func (s VenueStatus) Valid() bool {
	switch s {
	case VenueStatusActive, VenueStatusMaintenance, VenueStatusInactive:
		return true
	}
	return false
}

type Venue struct {
	ID           string              `json:"id"`
	Name         string              `json:"name" validate:"required,max=200"`
	Description  string              `json:"description"`
	Address      string              `json:"address"`
	Capacity     int                 `json:"capacity" validate:"gt=0"`
	PricePerHour decimal.NullDecimal `json:"price_per_hour"`
	PricePerDay  decimal.NullDecimal `json:"price_per_day"`
	Currency     string              `json:"currency" validate:"len=3,alpha"`
	Status       VenueStatus         `json:"status" validate:"oneof=active maintenance inactive"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// VenueSummary aggregates a venue's bookings for the admin dashboard.
type VenueSummary struct {
	Upcoming    int             `json:"upcoming"`
	Ongoing     int             `json:"ongoing"`
	Completed   int             `json:"completed"`
	Cancelled   int             `json:"cancelled"`
	PaidRevenue decimal.Decimal `json:"paid_revenue"`
}

type VenueDetails struct {
	Venue        Venue        `json:"venue"`
	Summary      VenueSummary `json:"summary"`
	ActiveEvents []Event      `json:"active_events"`
}

type CreateVenueInput struct {
	Name         string
	Description  string
	Address      string
	Capacity     int
	PricePerHour decimal.NullDecimal
	PricePerDay  decimal.NullDecimal
	Currency     string
	Status       VenueStatus
}

// UpdateVenueInput carries a partial venue edit; nil fields keep their value.
type UpdateVenueInput struct {
	Name         *string
	Description  *string
	Address      *string
	Capacity     *int
	PricePerHour *decimal.NullDecimal
	PricePerDay  *decimal.NullDecimal
	Currency     *string
	Status       *VenueStatus
}
