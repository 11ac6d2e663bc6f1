//go:build unit || e2e

package builder

import (
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/user"

	"github.com/google/uuid"
)

type ProfileBuilder struct {
	ID                  uuid.UUID
	Name                string
	FacilityID          uuid.UUID
	SportID             uuid.UUID
	CourtID             *uuid.UUID
	Currency            string
	BaseRatePerHour     float64
	Rules               []pricing.Rule
	MembershipDiscounts []pricing.MembershipDiscount
	TaxPercent          float64
	Active              bool
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		ID:              uuid.New(),
		Name:            "Standard",
		FacilityID:      uuid.New(),
		SportID:         uuid.New(),
		Currency:        "VND",
		BaseRatePerHour: 200000,
		TaxPercent:      10,
		Active:          true,
	}
}

func (p *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(p)
	return p
}

func (p *ProfileBuilder) ForCourt(c *CourtBuilder) *ProfileBuilder {
	p.FacilityID = c.FacilityID
	p.SportID = c.SportID
	return p
}

func (p *ProfileBuilder) WithRule(r pricing.Rule) *ProfileBuilder {
	p.Rules = append(p.Rules, r)
	return p
}

func (p *ProfileBuilder) WithDiscount(tier user.MembershipTier, percent float64) *ProfileBuilder {
	p.MembershipDiscounts = append(p.MembershipDiscounts, pricing.MembershipDiscount{Tier: tier, PercentOff: percent})
	return p
}

func (p *ProfileBuilder) BuildDomain() pricing.Profile {
	return pricing.Profile{
		ID:                  p.ID,
		Name:                p.Name,
		FacilityID:          p.FacilityID,
		SportID:             p.SportID,
		CourtID:             p.CourtID,
		Currency:            p.Currency,
		BaseRatePerHour:     p.BaseRatePerHour,
		Rules:               p.Rules,
		MembershipDiscounts: p.MembershipDiscounts,
		TaxPercent:          p.TaxPercent,
		Active:              p.Active,
	}
}

func Float(v float64) *float64 {
	return &v
}
