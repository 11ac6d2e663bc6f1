package errs

import "errors"

// Taxonomy shared by the availability, pricing and admission layers.
var (
	ErrInvalidRange        = errors.New("invalid time range")
	ErrInvalidResource     = errors.New("invalid resource")
	ErrBookingConflict     = errors.New("court already booked for the requested time")
	ErrMaintenanceConflict = errors.New("court under maintenance for the requested time")
	ErrStaleTransition     = errors.New("booking state changed concurrently")

	ErrBookingNotFound       = errors.New("booking not found")
	ErrMaintenanceNotFound   = errors.New("maintenance block not found")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrBookingNotCancellable = errors.New("booking not cancellable")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotAssignedFacility   = errors.New("staff user is not assigned to any facility")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// ReasonCode returns the machine-readable reason for a taxonomy error, or "" if err is not one.
func ReasonCode(err error) string {
	switch {
	case Is(err, ErrInvalidRange):
		return "invalid_range"
	case Is(err, ErrInvalidResource):
		return "invalid_resource"
	case Is(err, ErrBookingConflict):
		return "booking_conflict"
	case Is(err, ErrMaintenanceConflict):
		return "maintenance_conflict"
	case Is(err, ErrStaleTransition):
		return "stale_transition"
	case Is(err, ErrBookingNotFound):
		return "booking_not_found"
	case Is(err, ErrMaintenanceNotFound):
		return "maintenance_not_found"
	case Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case Is(err, ErrBookingNotCancellable):
		return "booking_not_cancellable"
	case Is(err, ErrInvalidInput):
		return "invalid_input"
	case Is(err, ErrForbidden), Is(err, ErrNotAssignedFacility):
		return "forbidden"
	default:
		return ""
	}
}
