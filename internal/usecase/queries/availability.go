package queries

import (
	"context"

	"court-booking/internal/domain/timerange"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	Check(ctx context.Context, courtID uuid.UUID, r timerange.TimeRange) (*AvailabilityView, error)
}

type availabilityQueries struct {
	uow  shared.UnitOfWork
	refs shared.ReferenceDataStore
}

func NewAvailabilityQueries(uow shared.UnitOfWork, refs shared.ReferenceDataStore) AvailabilityQueries {
	return &availabilityQueries{uow: uow, refs: refs}
}

// Check is advisory: admission re-runs it under the court lock.
func (q *availabilityQueries) Check(ctx context.Context, courtID uuid.UUID, r timerange.TimeRange) (*AvailabilityView, error) {
	if r.IsZero() {
		return nil, errs.ErrInvalidRange
	}
	c, err := q.refs.Court(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if !c.AcceptsReservations() {
		return nil, errs.Mark(errs.Newf("court is %s", c.Status()), errs.ErrInvalidResource)
	}

	var result shared.Availability
	err = q.uow.ReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		result, err = shared.CheckAvailability(ctx, tx, c.ID(), r, nil)
		return err
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	return &AvailabilityView{
		Available:           result.Available,
		BookingConflict:     result.BookingConflict,
		MaintenanceConflict: result.MaintenanceConflict,
		Reason:              result.Reason,
	}, nil
}
