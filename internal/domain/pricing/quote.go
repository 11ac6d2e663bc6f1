package pricing

import (
	"math"

	"github.com/google/uuid"
)

// Quote is an immutable price breakdown. Monetary fields are rounded to minor units;
// HourlyRate is kept unrounded so the breakdown can be re-derived exactly.
type Quote struct {
	ProfileID       *uuid.UUID `json:"profileId,omitempty"`
	BaseRatePerHour float64    `json:"baseRatePerHour"`
	RuleApplied     Rule       `json:"ruleApplied"`
	HourlyRate      float64    `json:"hourlyRate"`
	DurationMinutes int        `json:"durationMinutes"`
	Subtotal        float64    `json:"subtotal"`
	DiscountPercent float64    `json:"discountPercent"`
	Discount        float64    `json:"discount"`
	TaxPercent      float64    `json:"taxPercent"`
	Tax             float64    `json:"tax"`
	Total           float64    `json:"total"`
	Currency        string     `json:"currency"`
}

// HasRule reports whether a pricing rule adjusted the base rate.
func (q Quote) HasRule() bool {
	return !q.RuleApplied.IsZero()
}

// IsZeroPriced reports whether the quote came from missing pricing configuration.
func (q Quote) IsZeroPriced() bool {
	return q.ProfileID == nil && q.Total == 0
}

func roundMinor(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}
