package shared

import (
	"context"

	"court-booking/internal/domain/court"

	"github.com/google/uuid"
)

// ReferenceDataStore serves read-mostly facility, court and sport lookups, possibly from a
// short-TTL cache. Lookups of unknown ids fail with errs.ErrInvalidResource.
// Stale entries only affect display; admission re-reads the court under its row lock.
type ReferenceDataStore interface {
	Court(ctx context.Context, id uuid.UUID) (*court.Court, error)
	Facility(ctx context.Context, id uuid.UUID) (*court.Facility, error)
	Sport(ctx context.Context, id uuid.UUID) (*court.Sport, error)
	InvalidateCourt(ctx context.Context, id uuid.UUID)
}
