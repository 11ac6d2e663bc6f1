//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/timerange"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID               uuid.UUID
	CourtID          uuid.UUID
	FacilityID       uuid.UUID
	SportID          uuid.UUID
	CustomerID       uuid.UUID
	CreatedByStaffID *uuid.UUID
	MatchRequestID   *uuid.UUID
	Range            timerange.TimeRange
	Status           booking.Status
	Quote            pricing.Quote
	Note             string
	Cancellation     *booking.Cancellation
	CreatedAt        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Minute)
	return &BookingBuilder{
		ID:         uuid.New(),
		CourtID:    uuid.New(),
		FacilityID: uuid.New(),
		SportID:    uuid.New(),
		CustomerID: uuid.New(),
		Range:      Range(now.Add(24*time.Hour), time.Hour),
		Status:     booking.StatusPending,
		Quote:      pricing.Quote{DurationMinutes: 60, Currency: "VND"},
		CreatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) OnCourt(c *CourtBuilder) *BookingBuilder {
	b.CourtID = c.ID
	b.FacilityID = c.FacilityID
	b.SportID = c.SportID
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.Reconstruct(booking.Snapshot{
		ID:               b.ID,
		CourtID:          b.CourtID,
		FacilityID:       b.FacilityID,
		SportID:          b.SportID,
		CustomerID:       b.CustomerID,
		CreatedByStaffID: b.CreatedByStaffID,
		MatchRequestID:   b.MatchRequestID,
		Range:            b.Range,
		Status:           b.Status,
		Quote:            b.Quote,
		Note:             b.Note,
		Cancellation:     b.Cancellation,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	})
}
