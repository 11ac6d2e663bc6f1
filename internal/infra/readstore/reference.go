package readstore

import (
	"context"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReferenceReadQueries interface {
	GetCourt(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Courts, error)
	GetFacility(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Facilities, error)
	GetSport(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Sports, error)
	ListActivePriceProfiles(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActivePriceProfilesParams) ([]sqlc.PriceProfiles, error)
}

// ReferenceReadStore reads facilities, courts, sports and price profiles straight from the
// database. The refdata cache sits in front of it.
type ReferenceReadStore struct {
	queries ReferenceReadQueries
	db      sqlc.DBTX
}

func NewReferenceReadStore(queries ReferenceReadQueries, db sqlc.DBTX) *ReferenceReadStore {
	return &ReferenceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReferenceReadStore) Court(ctx context.Context, id uuid.UUID) (*court.Court, error) {
	row, err := r.queries.GetCourt(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find court", err)
	}
	return converter.CourtFromRow(row), nil
}

func (r *ReferenceReadStore) Facility(ctx context.Context, id uuid.UUID) (*court.Facility, error) {
	row, err := r.queries.GetFacility(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find facility", err)
	}
	return converter.FacilityFromRow(row), nil
}

func (r *ReferenceReadStore) Sport(ctx context.Context, id uuid.UUID) (*court.Sport, error) {
	row, err := r.queries.GetSport(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find sport", err)
	}
	return converter.SportFromRow(row), nil
}

func (r *ReferenceReadStore) ProfilesFor(ctx context.Context, facilityID, sportID uuid.UUID) ([]pricing.Profile, error) {
	rows, err := r.queries.ListActivePriceProfiles(ctx, r.db, sqlc.ListActivePriceProfilesParams{
		FacilityID: facilityID,
		SportID:    sportID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list price profiles", err)
	}

	out := make([]pricing.Profile, 0, len(rows))
	for _, row := range rows {
		p, err := converter.ProfileFromRow(row)
		if err != nil {
			return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode price profile", err)
		}
		out = append(out, p)
	}
	return out, nil
}
