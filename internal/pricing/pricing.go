// Package pricing turns a booking window and a venue rate card into a price.
//
// Money is carried as decimal.Decimal throughout; final prices are rounded to
// whole currency units.
package pricing

import (
	"fmt"
	"time"

	"github.com/Ranggadya/Venue-Event-Management-System/internal/domain"
	"github.com/shopspring/decimal"
)

const hoursPerDay = 24

var hundred = decimal.NewFromInt(100)

// RateCard holds a venue's optional hourly and daily rates.
type RateCard struct {
	PerHour decimal.NullDecimal
	PerDay  decimal.NullDecimal
}

func VenueRates(v *domain.Venue) RateCard {
	return RateCard{PerHour: v.PricePerHour, PerDay: v.PricePerDay}
}

// DurationHours returns the billable hours between start and end. Partial
// hours are rounded up, so 90 minutes bill as 2 hours.
func DurationHours(start, end time.Time) int64 {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	hours := int64(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	return hours
}

// DailyUnits returns how many started days the given hours span.
func DailyUnits(hours int64) int64 {
	if hours <= 0 {
		return 0
	}
	return (hours + hoursPerDay - 1) / hoursPerDay
}

// ChooseRentalType picks the cheaper billing mode for the duration. When
// only one rate is configured it is forced; on a tie hourly wins.
func ChooseRentalType(rates RateCard, hours int64) (domain.RentalType, error) {
	switch {
	case rates.PerHour.Valid && rates.PerDay.Valid:
		hourly := rates.PerHour.Decimal.Mul(decimal.NewFromInt(hours))
		daily := rates.PerDay.Decimal.Mul(decimal.NewFromInt(DailyUnits(hours)))
		if hourly.LessThanOrEqual(daily) {
			return domain.RentalTypeHourly, nil
		}
		return domain.RentalTypeDaily, nil
	case rates.PerHour.Valid:
		return domain.RentalTypeHourly, nil
	case rates.PerDay.Valid:
		return domain.RentalTypeDaily, nil
	default:
		return "", fmt.Errorf("%w: neither hourly nor daily rate is set", domain.ErrConfiguration)
	}
}

func BasePrice(rt domain.RentalType, rates RateCard, hours int64) (decimal.Decimal, error) {
	switch rt {
	case domain.RentalTypeHourly:
		if !rates.PerHour.Valid {
			return decimal.Zero, fmt.Errorf("%w: hourly rate is not set", domain.ErrConfiguration)
		}
		return rates.PerHour.Decimal.Mul(decimal.NewFromInt(hours)), nil
	case domain.RentalTypeDaily:
		if !rates.PerDay.Valid {
			return decimal.Zero, fmt.Errorf("%w: daily rate is not set", domain.ErrConfiguration)
		}
		return rates.PerDay.Decimal.Mul(decimal.NewFromInt(DailyUnits(hours))), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown rental type %q", domain.ErrValidation, rt)
	}
}

// FinalPrice applies a percentage discount and additive fees to base and
// rounds to whole currency units. The discount is expected in [0, 100] and
// fees to be non-negative; callers clamp and validate before calling.
func FinalPrice(base, discountPercent, fees decimal.Decimal) decimal.Decimal {
	discounted := base.Mul(hundred.Sub(discountPercent)).Div(hundred)
	return discounted.Add(fees).Round(0)
}

// ClampDiscount limits a discount percentage to [0, 100].
func ClampDiscount(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// Quote is a fully computed price for one booking window.
type Quote struct {
	RentalType      domain.RentalType `json:"rental_type"`
	DurationHours   int64             `json:"duration_hours"`
	BasePrice       decimal.Decimal   `json:"base_price"`
	DiscountPercent decimal.Decimal   `json:"discount_percent"`
	AdditionalFees  decimal.Decimal   `json:"additional_fees"`
	FinalPrice      decimal.Decimal   `json:"final_price"`
}

// NewQuote prices window against rates. A non-nil override bypasses the
// rental type resolver.
func NewQuote(
	rates RateCard,
	window domain.Interval,
	override *domain.RentalType,
	discountPercent, fees decimal.Decimal,
) (*Quote, error) {
	hours := DurationHours(window.Start, window.End)

	var rt domain.RentalType
	if override != nil {
		rt = *override
	} else {
		var err error
		if rt, err = ChooseRentalType(rates, hours); err != nil {
			return nil, err
		}
	}

	basePrice, err := BasePrice(rt, rates, hours)
	if err != nil {
		return nil, err
	}

	return &Quote{
		RentalType:      rt,
		DurationHours:   hours,
		BasePrice:       basePrice,
		DiscountPercent: discountPercent,
		AdditionalFees:  fees,
		FinalPrice:      FinalPrice(basePrice, discountPercent, fees),
	}, nil
}

// Apply copies the quote's price fields onto e.
func (q *Quote) Apply(e *domain.Event) {
	e.RentalType = q.RentalType
	e.BasePrice = q.BasePrice
	e.DiscountPercent = q.DiscountPercent
	e.AdditionalFees = q.AdditionalFees
	e.FinalPrice = q.FinalPrice
}
