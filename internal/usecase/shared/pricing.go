package shared

import (
	"context"
	"strings"
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// PricingContext carries everything the calculator needs besides the range.
type PricingContext struct {
	Profile  *pricing.Profile
	Location *time.Location
	Currency string
	Tier     user.MembershipTier
}

func (p PricingContext) Input(r timerange.TimeRange) pricing.QuoteInput {
	return pricing.QuoteInput{
		Profile:  p.Profile,
		Range:    r,
		Location: p.Location,
		Currency: p.Currency,
		Tier:     p.Tier,
	}
}

type PricingResolver struct {
	refs            ReferenceDataStore
	clock           clock.Clock
	defaultCurrency string
	defaultLocation *time.Location
}

func NewPricingResolver(refs ReferenceDataStore, clk clock.Clock, defaultCurrency string, defaultLocation *time.Location) *PricingResolver {
	if defaultLocation == nil {
		defaultLocation = time.UTC
	}
	return &PricingResolver{
		refs:            refs,
		clock:           clk,
		defaultCurrency: defaultCurrency,
		defaultLocation: defaultLocation,
	}
}

type PricingRequest struct {
	Court      *court.Court
	CustomerID *uuid.UUID
	Currency   string
}

// Resolve selects the profile for the court, the facility's location and the customer's
// active membership tier. A missing profile is not an error.
func (p *PricingResolver) Resolve(ctx context.Context, reads CommandReads, req PricingRequest) (PricingContext, error) {
	c := req.Court

	facility, err := p.refs.Facility(ctx, c.FacilityID())
	if err != nil {
		return PricingContext{}, err
	}

	profiles, err := reads.ProfilesFor(ctx, c.FacilityID(), c.SportID())
	if err != nil {
		return PricingContext{}, errs.Wrap(err, "load price profiles")
	}
	profile := pricing.SelectProfile(profiles, c.FacilityID(), c.SportID(), c.ID())

	var tier user.MembershipTier
	if req.CustomerID != nil {
		member, err := reads.Member(ctx, *req.CustomerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return PricingContext{}, errs.Mark(err, errs.ErrInvalidResource)
			}
			return PricingContext{}, errs.Wrap(err, "load customer")
		}
		tier = member.ActiveTier(p.clock.Now())
	}

	return PricingContext{
		Profile:  profile,
		Location: facility.Location(p.defaultLocation),
		Currency: p.currency(req.Currency, profile),
		Tier:     tier,
	}, nil
}

func (p *PricingResolver) currency(requested string, profile *pricing.Profile) string {
	if c := strings.ToUpper(strings.TrimSpace(requested)); c != "" {
		return c
	}
	if profile != nil && profile.Currency != "" {
		return profile.Currency
	}
	return p.defaultCurrency
}
