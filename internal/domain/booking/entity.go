package booking

import (
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/domain/user"

	"github.com/google/uuid"
)

type Booking struct {
	id               uuid.UUID
	courtID          uuid.UUID
	facilityID       uuid.UUID
	sportID          uuid.UUID
	customerID       uuid.UUID
	createdByStaffID *uuid.UUID
	matchRequestID   *uuid.UUID
	timeRange        timerange.TimeRange
	status           Status
	quote            pricing.Quote
	note             string
	cancellation     *Cancellation
	createdAt        time.Time
	updatedAt        time.Time
}

type Snapshot struct {
	ID               uuid.UUID
	CourtID          uuid.UUID
	FacilityID       uuid.UUID
	SportID          uuid.UUID
	CustomerID       uuid.UUID
	CreatedByStaffID *uuid.UUID
	MatchRequestID   *uuid.UUID
	Range            timerange.TimeRange
	Status           Status
	Quote            pricing.Quote
	Note             string
	Cancellation     *Cancellation
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Reconstruct rebuilds a booking loaded from storage without re-validating it.
func Reconstruct(s Snapshot) *Booking {
	return &Booking{
		id:               s.ID,
		courtID:          s.CourtID,
		facilityID:       s.FacilityID,
		sportID:          s.SportID,
		customerID:       s.CustomerID,
		createdByStaffID: s.CreatedByStaffID,
		matchRequestID:   s.MatchRequestID,
		timeRange:        s.Range,
		status:           s.Status,
		quote:            s.Quote,
		note:             s.Note,
		cancellation:     s.Cancellation,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
	}
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:               b.id,
		CourtID:          b.courtID,
		FacilityID:       b.facilityID,
		SportID:          b.sportID,
		CustomerID:       b.customerID,
		CreatedByStaffID: b.createdByStaffID,
		MatchRequestID:   b.matchRequestID,
		Range:            b.timeRange,
		Status:           b.status,
		Quote:            b.quote,
		Note:             b.note,
		Cancellation:     b.cancellation,
		CreatedAt:        b.createdAt,
		UpdatedAt:        b.updatedAt,
	}
}

func (b *Booking) Confirm(now time.Time) error {
	if err := b.transition(StatusConfirmed); err != nil {
		return err
	}
	b.updatedAt = now
	return nil
}

// Cancel applies c and reports whether the booking changed. Cancelling a cancelled booking
// is a no-op. Customers may only cancel pending bookings; the system only cancels pending ones.
func (b *Booking) Cancel(c Cancellation) (bool, error) {
	if b.status == StatusCancelled {
		return false, nil
	}

	switch c.Role {
	case user.RoleCustomer:
		if b.status != StatusPending {
			return false, ErrNotCancellable
		}
	case user.RoleSystem:
		if b.status != StatusPending {
			return false, ErrInvalidTransition
		}
	}

	if err := b.transition(StatusCancelled); err != nil {
		return false, err
	}
	b.cancellation = &c
	b.updatedAt = c.At
	return true, nil
}

func (b *Booking) Complete(now time.Time) error {
	if !b.status.CanTransitionTo(StatusCompleted) {
		return ErrInvalidTransition
	}
	if !b.timeRange.HasEnded(now) {
		return ErrNotYetEnded
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

func (b *Booking) MarkNoShow(now time.Time) error {
	if !b.status.CanTransitionTo(StatusNoShow) {
		return ErrInvalidTransition
	}
	if now.Before(b.timeRange.Start()) {
		return ErrNotYetStarted
	}
	b.status = StatusNoShow
	b.updatedAt = now
	return nil
}

func (b *Booking) transition(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

// IsStalePending reports whether a pending booking started at or before now-timeout.
func (b *Booking) IsStalePending(now time.Time, timeout time.Duration) bool {
	if b.status != StatusPending || timeout <= 0 {
		return false
	}
	return !b.timeRange.Start().After(now.Add(-timeout))
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.customerID == userID
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) CourtID() uuid.UUID           { return b.courtID }
func (b *Booking) FacilityID() uuid.UUID        { return b.facilityID }
func (b *Booking) SportID() uuid.UUID           { return b.sportID }
func (b *Booking) CustomerID() uuid.UUID        { return b.customerID }
func (b *Booking) CreatedByStaffID() *uuid.UUID { return b.createdByStaffID }
func (b *Booking) MatchRequestID() *uuid.UUID   { return b.matchRequestID }
func (b *Booking) Range() timerange.TimeRange   { return b.timeRange }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Quote() pricing.Quote         { return b.quote }
func (b *Booking) Note() string                 { return b.note }
func (b *Booking) Cancellation() *Cancellation  { return b.cancellation }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
