//go:build unit || e2e

package builder

import (
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/timerange"

	"github.com/google/uuid"
)

type CourtBuilder struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	SportID    uuid.UUID
	Name       string
	Status     court.Status
}

func NewCourtBuilder() *CourtBuilder {
	return &CourtBuilder{
		ID:         uuid.New(),
		FacilityID: uuid.New(),
		SportID:    uuid.New(),
		Name:       "Court 1",
		Status:     court.StatusActive,
	}
}

func (c *CourtBuilder) With(mutate func(*CourtBuilder)) *CourtBuilder {
	mutate(c)
	return c
}

func (c *CourtBuilder) BuildDomain() *court.Court {
	return court.Reconstruct(c.ID, c.FacilityID, c.SportID, c.Name, c.Status, time.Now())
}

// Range builds a TimeRange starting at start and lasting d. It panics on invalid input.
func Range(start time.Time, d time.Duration) timerange.TimeRange {
	r, err := timerange.New(start, start.Add(d))
	if err != nil {
		panic(err)
	}
	return r
}

// At returns a fixed UTC instant used as a readable test anchor.
func At(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
