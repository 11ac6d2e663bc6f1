package matchrequest

import (
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/domain/user"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusMatched   Status = "matched"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

const (
	ReasonOverlappedBooking = "overlapped_booking"
	overlapReasonText       = "Cancelled because the court was booked for an overlapping time"
)

// Request is a customer's open invitation to play on a court. Only the fields the booking
// lifecycle touches are modelled here.
type Request struct {
	ID                uuid.UUID
	CourtID           uuid.UUID
	CreatorID         uuid.UUID
	Desired           timerange.TimeRange
	Status            Status
	BookingID         *uuid.UUID
	BookingStatus     string
	CancelReasonCode  string
	CancelReasonText  string
	CancelledByRole   user.Role
	CancelledAt       *time.Time
	ConflictBookingID *uuid.UUID
	UpdatedAt         time.Time
}

func (r *Request) IsOpen() bool {
	return r.Status == StatusOpen
}

// ConflictsWith reports whether b takes the slot this open request wants. A booking made
// for the request itself never conflicts with it.
func (r *Request) ConflictsWith(b *booking.Booking) bool {
	if !r.IsOpen() || r.CourtID != b.CourtID() {
		return false
	}
	if linked := b.MatchRequestID(); linked != nil && *linked == r.ID {
		return false
	}
	return r.Desired.Overlaps(b.Range())
}

func (r *Request) CancelForOverlap(conflictBookingID uuid.UUID, now time.Time) {
	r.Status = StatusCancelled
	r.BookingStatus = string(booking.StatusCancelled)
	r.CancelReasonCode = ReasonOverlappedBooking
	r.CancelReasonText = overlapReasonText
	r.CancelledByRole = user.RoleSystem
	r.CancelledAt = &now
	r.ConflictBookingID = &conflictBookingID
	r.UpdatedAt = now
}

// SyncWithBooking mirrors the linked booking's state onto the request. A cancelled booking
// reopens the request while its desired start is still ahead, otherwise cancels it.
func (r *Request) SyncWithBooking(b *booking.Booking, now time.Time) {
	status := b.Status()
	r.BookingStatus = string(status)
	r.UpdatedAt = now

	switch {
	case status.BlocksTimeline():
		id := b.ID()
		r.Status = StatusMatched
		r.BookingID = &id
	case status == booking.StatusCancelled:
		if r.Desired.Start().After(now) {
			r.Status = StatusOpen
			r.BookingID = nil
			r.BookingStatus = ""
			return
		}
		r.Status = StatusCancelled
		r.CancelledAt = &now
		if c := b.Cancellation(); c != nil {
			r.CancelReasonCode = c.ReasonCode
			r.CancelReasonText = c.ReasonText
			r.CancelledByRole = c.Role
		}
	}
}
