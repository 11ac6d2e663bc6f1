package shared

import (
	"context"

	"court-booking/internal/domain/timerange"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	ReasonBookingConflict     = "booking_conflict"
	ReasonMaintenanceConflict = "maintenance_conflict"
)

type Availability struct {
	Available             bool
	BookingConflict       bool
	MaintenanceConflict   bool
	Reason                string
	ConflictBookingID     *uuid.UUID
	ConflictMaintenanceID *uuid.UUID
}

// Err maps an unavailable result to its taxonomy error. Booking conflicts take precedence.
func (a Availability) Err() error {
	switch {
	case a.Available:
		return nil
	case a.BookingConflict:
		return errs.ErrBookingConflict
	default:
		return errs.ErrMaintenanceConflict
	}
}

// CheckAvailability looks for active bookings and non-cancelled maintenance overlapping r on
// courtID. exclude skips one booking, used when re-checking an existing booking's own slot.
// Run inside the court lock it is authoritative; outside it the answer is advisory.
func CheckAvailability(ctx context.Context, tx Tx, courtID uuid.UUID, r timerange.TimeRange, exclude *uuid.UUID) (Availability, error) {
	return checkAvailability(ctx, tx, courtID, r, exclude, nil)
}

// CheckMaintenanceWindow is CheckAvailability for a maintenance block, which skips itself.
func CheckMaintenanceWindow(ctx context.Context, tx Tx, courtID uuid.UUID, r timerange.TimeRange, excludeBlock *uuid.UUID) (Availability, error) {
	return checkAvailability(ctx, tx, courtID, r, nil, excludeBlock)
}

func checkAvailability(ctx context.Context, tx Tx, courtID uuid.UUID, r timerange.TimeRange, excludeBooking, excludeBlock *uuid.UUID) (Availability, error) {
	if r.IsZero() {
		return Availability{}, errs.ErrInvalidRange
	}

	bookings, err := tx.Bookings().FindOverlapping(ctx, courtID, r, excludeBooking)
	if err != nil {
		return Availability{}, errs.Wrap(err, "find overlapping bookings")
	}
	blocks, err := tx.Maintenance().FindOverlapping(ctx, courtID, r, excludeBlock)
	if err != nil {
		return Availability{}, errs.Wrap(err, "find overlapping maintenance")
	}

	result := Availability{
		BookingConflict:     len(bookings) > 0,
		MaintenanceConflict: len(blocks) > 0,
	}
	if result.BookingConflict {
		id := bookings[0].ID()
		result.ConflictBookingID = &id
		result.Reason = ReasonBookingConflict
	}
	if result.MaintenanceConflict {
		id := blocks[0].ID()
		result.ConflictMaintenanceID = &id
		if result.Reason == "" {
			result.Reason = ReasonMaintenanceConflict
		}
	}
	result.Available = !result.BookingConflict && !result.MaintenanceConflict
	return result, nil
}
