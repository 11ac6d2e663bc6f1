package shared

import (
	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/maintenance"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
)

// Classify marks domain and repository errors with the taxonomy sentinel the transport layer
// understands. Errors it does not recognise are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errs.ReasonCode(err) != "" {
		return err
	}

	switch {
	case errs.Is(err, timerange.ErrInvalidRange), errs.Is(err, timerange.ErrInvalidTimestamp):
		return errs.Mark(err, errs.ErrInvalidRange)
	case errs.Is(err, booking.ErrNotCancellable):
		return errs.Mark(err, errs.ErrBookingNotCancellable)
	case errs.Is(err, booking.ErrInvalidTransition),
		errs.Is(err, booking.ErrNotYetEnded),
		errs.Is(err, booking.ErrNotYetStarted),
		errs.Is(err, booking.ErrInvalidStatus),
		errs.Is(err, maintenance.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errs.Is(err, booking.ErrCourtUnavailable), errs.Is(err, booking.ErrCourtMismatch):
		return errs.Mark(err, errs.ErrInvalidResource)
	case errs.Is(err, maintenance.ErrUnsupportedAction), errs.Is(err, court.ErrInvalidStatus):
		return errs.Mark(err, errs.ErrInvalidInput)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrBookingConflict)
	default:
		return err
	}
}
