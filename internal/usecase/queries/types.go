package queries

import (
	"time"

	"court-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

type BookingView struct {
	ID               uuid.UUID     `json:"id"`
	CourtID          uuid.UUID     `json:"courtId"`
	CourtName        string        `json:"courtName,omitempty"`
	FacilityID       uuid.UUID     `json:"facilityId"`
	FacilityName     string        `json:"facilityName,omitempty"`
	SportID          uuid.UUID     `json:"sportId"`
	SportName        string        `json:"sportName,omitempty"`
	CustomerID       uuid.UUID     `json:"customerId"`
	CustomerName     string        `json:"customerName,omitempty"`
	CustomerEmail    string        `json:"customerEmail,omitempty"`
	Start            time.Time     `json:"start"`
	End              time.Time     `json:"end"`
	Status           string        `json:"status"`
	Pricing          pricing.Quote `json:"pricing"`
	Note             string        `json:"note,omitempty"`
	CreatedByStaffID *uuid.UUID    `json:"createdByStaffId,omitempty"`
	MatchRequestID   *uuid.UUID    `json:"matchRequestId,omitempty"`
	CancelledAt      *time.Time    `json:"cancelledAt,omitempty"`
	CancelledByRole  string        `json:"cancelledByRole,omitempty"`
	CancelReasonCode string        `json:"cancelReasonCode,omitempty"`
	CancelReasonText string        `json:"cancelReasonText,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

type AvailabilityView struct {
	Available           bool   `json:"available"`
	BookingConflict     bool   `json:"bookingConflict"`
	MaintenanceConflict bool   `json:"maintenanceConflict"`
	Reason              string `json:"reason,omitempty"`
}

const (
	DefaultListLimit = 100
	MaxListLimit     = 200
)

// ClampLimit keeps list sizes within 1..MaxListLimit, defaulting when unset.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
