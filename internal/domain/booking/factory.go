package booking

import (
	"strings"
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock      clock.Clock
	Calculator pricing.Calculator
}

func NewFactory(clk clock.Clock, calc pricing.Calculator) *Factory {
	return &Factory{
		Clock:      clk,
		Calculator: calc,
	}
}

type CreateInput struct {
	Court      *court.Court
	FacilityID uuid.UUID
	SportID    uuid.UUID
	CustomerID uuid.UUID
	// StaffID is set when staff book on a customer's behalf.
	StaffID        *uuid.UUID
	MatchRequestID *uuid.UUID
	Range          timerange.TimeRange
	Note           string
	// Confirm is honoured only for staff-created bookings.
	Confirm bool

	Profile  *pricing.Profile
	Location *time.Location
	Currency string
	Tier     user.MembershipTier
}

// Create builds a booking with a freshly computed quote. Any client-side quote is ignored.
func (f *Factory) Create(in CreateInput) (*Booking, error) {
	if in.Court == nil || !in.Court.AcceptsReservations() {
		return nil, ErrCourtUnavailable
	}
	if in.Court.FacilityID() != in.FacilityID || in.Court.SportID() != in.SportID {
		return nil, ErrCourtMismatch
	}
	if in.Range.IsZero() {
		return nil, timerange.ErrInvalidRange
	}

	quote := f.Calculator.Quote(pricing.QuoteInput{
		Profile:  in.Profile,
		Range:    in.Range,
		Location: in.Location,
		Currency: in.Currency,
		Tier:     in.Tier,
	})

	status := StatusPending
	if in.StaffID != nil && in.Confirm {
		status = StatusConfirmed
	}

	now := f.Clock.Now()
	return &Booking{
		id:               uuid.New(),
		courtID:          in.Court.ID(),
		facilityID:       in.FacilityID,
		sportID:          in.SportID,
		customerID:       in.CustomerID,
		createdByStaffID: in.StaffID,
		matchRequestID:   in.MatchRequestID,
		timeRange:        in.Range,
		status:           status,
		quote:            quote,
		note:             strings.TrimSpace(in.Note),
		createdAt:        now,
		updatedAt:        now,
	}, nil
}
