package readmodel

import (
	"time"

	"court-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

// BookingRM is a booking joined with the names a client needs to render it.
type BookingRM struct {
	ID               uuid.UUID
	CourtID          uuid.UUID
	CourtName        string
	FacilityID       uuid.UUID
	FacilityName     string
	SportID          uuid.UUID
	SportName        string
	CustomerID       uuid.UUID
	CustomerName     string
	CustomerEmail    string
	Start            time.Time
	End              time.Time
	Status           string
	Pricing          pricing.Quote
	Note             string
	CreatedByStaffID *uuid.UUID
	MatchRequestID   *uuid.UUID
	CancelledAt      *time.Time
	CancelledByRole  string
	CancelReasonCode string
	CancelReasonText string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type BookingFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
	Limit  int
}
