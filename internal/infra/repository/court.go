package repository

import (
	"context"
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CourtWriteQueries interface {
	LockCourt(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Courts, error)
	UpdateCourtStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCourtStatusParams) (int64, error)
}

type CourtRepository struct {
	queries CourtWriteQueries
	db      sqlc.DBTX
}

func NewCourtRepository(queries CourtWriteQueries, db sqlc.DBTX) *CourtRepository {
	return &CourtRepository{
		queries: queries,
		db:      db,
	}
}

// Lock must run inside a transaction; outside one the row lock is released immediately.
func (r *CourtRepository) Lock(ctx context.Context, id uuid.UUID) (*court.Court, error) {
	row, err := r.queries.LockCourt(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock court", err)
	}
	return converter.CourtFromRow(row), nil
}

func (r *CourtRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status court.Status, at time.Time) error {
	n, err := r.queries.UpdateCourtStatus(ctx, r.db, sqlc.UpdateCourtStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update court status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("court not found", pgx.ErrNoRows)
	}
	return nil
}
