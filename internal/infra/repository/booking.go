package repository

import (
	"context"
	"math"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	TransitionBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionBookingParams) (int64, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	FindOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOverlappingBookingsParams) ([]sqlc.Bookings, error)
	ListStalePendingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStalePendingBookingsParams) ([]sqlc.Bookings, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create fails with infra.KindConflict when the exclusion constraint rejects an overlap.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	params, err := converter.BookingToCreateParams(b)
	if err != nil {
		return infra.NewRepoErr(infra.KindDBFailure, "failed to encode booking", err)
	}
	if err := r.queries.CreateBooking(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Transition(ctx context.Context, b *booking.Booking, from booking.Status) (bool, error) {
	n, err := r.queries.TransitionBooking(ctx, r.db, converter.BookingToTransitionParams(b, from))
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return n == 1, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode booking", err)
	}
	return b, nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, courtID uuid.UUID, tr timerange.TimeRange, exclude *uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.FindOverlappingBookings(ctx, r.db, sqlc.FindOverlappingBookingsParams{
		CourtID:    courtID,
		RangeStart: pgconv.TimeToPgtype(tr.Start()),
		RangeEnd:   pgconv.TimeToPgtype(tr.End()),
		ExcludeID:  pgconv.UUIDPtrToPgtype(exclude),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping bookings", err)
	}
	out, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode bookings", err)
	}
	return out, nil
}

func (r *BookingRepository) ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*booking.Booking, error) {
	if limit <= 0 || limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	rows, err := r.queries.ListStalePendingBookings(ctx, r.db, sqlc.ListStalePendingBookingsParams{
		Cutoff:   pgconv.TimeToPgtype(cutoff),
		RowLimit: int32(limit), // #nosec G115 -- bounded above
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale pending bookings", err)
	}
	out, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode bookings", err)
	}
	return out, nil
}
