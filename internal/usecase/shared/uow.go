package shared

import (
	"context"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/maintenance"
	"court-booking/internal/domain/matchrequest"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction, retrying on serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// ReadOnly runs fn in a read-only transaction for consistent multi-table reads.
	ReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Courts() CourtRepository
	Bookings() BookingRepository
	Maintenance() MaintenanceRepository
	MatchRequests() MatchRequestRepository
	Reads() CommandReads
}

type CourtRepository interface {
	// Lock loads the court and holds a row lock on it until the transaction ends. Every writer
	// to a court's timeline takes it before checking availability.
	Lock(ctx context.Context, id uuid.UUID) (*court.Court, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status court.Status, at time.Time) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// Transition writes b's status and cancellation metadata only if the stored status is still
	// from. It reports false when another writer got there first.
	Transition(ctx context.Context, b *booking.Booking, from booking.Status) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindOverlapping returns bookings in an active status on courtID whose range overlaps r.
	FindOverlapping(ctx context.Context, courtID uuid.UUID, r timerange.TimeRange, exclude *uuid.UUID) ([]*booking.Booking, error)
	// ListStalePending returns pending bookings starting at or before cutoff, oldest first.
	ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]*booking.Booking, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, b *maintenance.Block) error
	Update(ctx context.Context, b *maintenance.Block) error
	FindByID(ctx context.Context, id uuid.UUID) (*maintenance.Block, error)
	// FindOverlapping returns non-cancelled blocks on courtID whose range overlaps r.
	FindOverlapping(ctx context.Context, courtID uuid.UUID, r timerange.TimeRange, exclude *uuid.UUID) ([]*maintenance.Block, error)
}

type MatchRequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*matchrequest.Request, error)
	FindOpenOverlapping(ctx context.Context, courtID uuid.UUID, r timerange.TimeRange) ([]*matchrequest.Request, error)
	Save(ctx context.Context, r *matchrequest.Request) error
}

// CommandReads are the lookups admission needs besides the timeline itself.
type CommandReads interface {
	ProfilesFor(ctx context.Context, facilityID, sportID uuid.UUID) ([]pricing.Profile, error)
	Member(ctx context.Context, id uuid.UUID) (*user.Member, error)
}
