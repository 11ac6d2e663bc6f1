package converter

import (
	"court-booking/internal/domain/maintenance"
	"court-booking/internal/domain/timerange"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/pgconv"
)

func MaintenanceToCreateParams(b *maintenance.Block) sqlc.CreateMaintenanceBlockParams {
	s := b.Snapshot()
	return sqlc.CreateMaintenanceBlockParams{
		ID:               s.ID,
		CourtID:          s.CourtID,
		FacilityID:       s.FacilityID,
		StartTime:        pgconv.TimeToPgtype(s.Range.Start()),
		EndTime:          pgconv.TimeToPgtype(s.Range.End()),
		Reason:           s.Reason,
		Status:           string(s.Status),
		CreatedByStaffID: s.CreatedByStaffID,
		StartedAt:        pgconv.TimePtrToPgtype(s.StartedAt),
		CompletedAt:      pgconv.TimePtrToPgtype(s.CompletedAt),
		CancelledAt:      pgconv.TimePtrToPgtype(s.CancelledAt),
		CreatedAt:        pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:        pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

func MaintenanceToUpdateParams(b *maintenance.Block) sqlc.UpdateMaintenanceBlockParams {
	s := b.Snapshot()
	return sqlc.UpdateMaintenanceBlockParams{
		ID:          s.ID,
		StartTime:   pgconv.TimeToPgtype(s.Range.Start()),
		EndTime:     pgconv.TimeToPgtype(s.Range.End()),
		Reason:      s.Reason,
		Status:      string(s.Status),
		StartedAt:   pgconv.TimePtrToPgtype(s.StartedAt),
		CompletedAt: pgconv.TimePtrToPgtype(s.CompletedAt),
		CancelledAt: pgconv.TimePtrToPgtype(s.CancelledAt),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

func MaintenanceFromRow(row sqlc.MaintenanceBlocks) (*maintenance.Block, error) {
	r, err := timerange.New(row.StartTime.Time, row.EndTime.Time)
	if err != nil {
		return nil, errs.Wrapf(err, "maintenance block %s has a corrupt range", row.ID)
	}
	return maintenance.Reconstruct(maintenance.Snapshot{
		ID:               row.ID,
		CourtID:          row.CourtID,
		FacilityID:       row.FacilityID,
		Range:            r,
		Reason:           row.Reason,
		Status:           maintenance.Status(row.Status),
		CreatedByStaffID: row.CreatedByStaffID,
		StartedAt:        pgconv.TimePtrFromPgtype(row.StartedAt),
		CompletedAt:      pgconv.TimePtrFromPgtype(row.CompletedAt),
		CancelledAt:      pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
