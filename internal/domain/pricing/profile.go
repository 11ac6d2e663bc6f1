package pricing

import (
	"court-booking/internal/domain/user"

	"github.com/google/uuid"
)

type MembershipDiscount struct {
	Tier       user.MembershipTier `json:"tier"`
	PercentOff float64             `json:"percentOff"`
}

// Profile is scoped to (facility, sport) and optionally narrowed to a single court.
type Profile struct {
	ID                  uuid.UUID
	Name                string
	FacilityID          uuid.UUID
	SportID             uuid.UUID
	CourtID             *uuid.UUID
	Currency            string
	BaseRatePerHour     float64
	Rules               []Rule
	MembershipDiscounts []MembershipDiscount
	TaxPercent          float64
	Active              bool
}

func (p *Profile) IsCourtSpecific() bool {
	return p.CourtID != nil
}

// DiscountPercentFor returns the first discount listed for tier, or 0.
func (p *Profile) DiscountPercentFor(tier user.MembershipTier) float64 {
	if tier == "" {
		return 0
	}
	for _, d := range p.MembershipDiscounts {
		if d.Tier == tier {
			return d.PercentOff
		}
	}
	return 0
}

// SelectProfile picks the active court-specific profile for courtID, falling back to an active
// (facility, sport) profile without a court restriction. Returns nil when neither exists.
func SelectProfile(profiles []Profile, facilityID, sportID, courtID uuid.UUID) *Profile {
	var fallback *Profile
	for i := range profiles {
		p := &profiles[i]
		if !p.Active || p.FacilityID != facilityID || p.SportID != sportID {
			continue
		}
		if p.CourtID != nil {
			if *p.CourtID == courtID {
				return p
			}
			continue
		}
		if fallback == nil {
			fallback = p
		}
	}
	return fallback
}
