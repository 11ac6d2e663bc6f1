package repository

import (
	"context"

	"court-booking/internal/domain/maintenance"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MaintenanceWriteQueries interface {
	CreateMaintenanceBlock(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMaintenanceBlockParams) error
	UpdateMaintenanceBlock(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMaintenanceBlockParams) (int64, error)
	GetMaintenanceBlock(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.MaintenanceBlocks, error)
	FindOverlappingMaintenance(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOverlappingMaintenanceParams) ([]sqlc.MaintenanceBlocks, error)
}

type MaintenanceRepository struct {
	queries MaintenanceWriteQueries
	db      sqlc.DBTX
}

func NewMaintenanceRepository(queries MaintenanceWriteQueries, db sqlc.DBTX) *MaintenanceRepository {
	return &MaintenanceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MaintenanceRepository) Create(ctx context.Context, b *maintenance.Block) error {
	if err := r.queries.CreateMaintenanceBlock(ctx, r.db, converter.MaintenanceToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create maintenance block", err)
	}
	return nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, b *maintenance.Block) error {
	n, err := r.queries.UpdateMaintenanceBlock(ctx, r.db, converter.MaintenanceToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update maintenance block", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("maintenance block not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.Block, error) {
	row, err := r.queries.GetMaintenanceBlock(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find maintenance block", err)
	}
	b, err := converter.MaintenanceFromRow(row)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode maintenance block", err)
	}
	return b, nil
}

func (r *MaintenanceRepository) FindOverlapping(ctx context.Context, courtID uuid.UUID, tr timerange.TimeRange, exclude *uuid.UUID) ([]*maintenance.Block, error) {
	rows, err := r.queries.FindOverlappingMaintenance(ctx, r.db, sqlc.FindOverlappingMaintenanceParams{
		CourtID:    courtID,
		RangeEnd:   pgconv.TimeToPgtype(tr.End()),
		RangeStart: pgconv.TimeToPgtype(tr.Start()),
		ExcludeID:  pgconv.UUIDPtrToPgtype(exclude),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping maintenance", err)
	}

	out := make([]*maintenance.Block, 0, len(rows))
	for _, row := range rows {
		b, err := converter.MaintenanceFromRow(row)
		if err != nil {
			return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode maintenance block", err)
		}
		out = append(out, b)
	}
	return out, nil
}
