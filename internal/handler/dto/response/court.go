package response

import (
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourtResponse struct {
	ID         uuid.UUID `json:"id"`
	FacilityID uuid.UUID `json:"facilityId"`
	SportID    uuid.UUID `json:"sportId"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromCourt(c *court.Court) *CourtResponse {
	return &CourtResponse{
		ID:         c.ID(),
		FacilityID: c.FacilityID(),
		SportID:    c.SportID(),
		Name:       c.Name(),
		Status:     c.Status().String(),
		UpdatedAt:  c.UpdatedAt(),
	}
}

type AvailabilityResponse struct {
	Available           bool `json:"available"`
	BookingConflict     bool `json:"bookingConflict"`
	MaintenanceConflict bool `json:"maintenanceConflict"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:           v.Available,
		BookingConflict:     v.BookingConflict,
		MaintenanceConflict: v.MaintenanceConflict,
	}
}

type QuoteResponse = pricing.Quote
