package pricing

import (
	"math"
	"time"

	"court-booking/internal/domain/timerange"
	"court-booking/internal/domain/user"
)

type Calculator interface {
	Quote(in QuoteInput) Quote
}

type QuoteInput struct {
	// Profile is nil when no active profile covers the court.
	Profile *Profile
	Range   timerange.TimeRange
	// Location is where weekday and time-of-day are read; nil keeps Range's own location.
	Location *time.Location
	Currency string
	Tier     user.MembershipTier
}

type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

func (DefaultCalculator) Quote(in QuoteInput) Quote {
	minutes := in.Range.DurationMinutes()

	if in.Profile == nil {
		return Quote{
			DurationMinutes: minutes,
			Currency:        in.Currency,
		}
	}

	p := in.Profile
	local := in.Range.In(in.Location)

	hourly := p.BaseRatePerHour
	rule, matched := MatchRule(p.Rules, local)
	if matched {
		hourly = rule.HourlyRate(p.BaseRatePerHour)
	}

	subtotal := hourly / 60 * float64(minutes)

	discountPercent := p.DiscountPercentFor(in.Tier)
	discount := subtotal * discountPercent / 100
	discounted := math.Max(0, subtotal-discount)

	tax := discounted * p.TaxPercent / 100
	total := discounted + tax

	profileID := p.ID
	return Quote{
		ProfileID:       &profileID,
		BaseRatePerHour: p.BaseRatePerHour,
		RuleApplied:     rule,
		HourlyRate:      hourly,
		DurationMinutes: minutes,
		Subtotal:        roundMinor(subtotal),
		DiscountPercent: discountPercent,
		Discount:        roundMinor(discount),
		TaxPercent:      p.TaxPercent,
		Tax:             roundMinor(tax),
		Total:           roundMinor(total),
		Currency:        in.Currency,
	}
}
