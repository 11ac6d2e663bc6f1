package repository

import (
	"context"

	"court-booking/internal/domain/matchrequest"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MatchRequestWriteQueries interface {
	GetMatchRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.MatchRequests, error)
	FindOpenOverlappingMatchRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOpenOverlappingMatchRequestsParams) ([]sqlc.MatchRequests, error)
	UpdateMatchRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMatchRequestParams) (int64, error)
}

type MatchRequestRepository struct {
	queries MatchRequestWriteQueries
	db      sqlc.DBTX
}

func NewMatchRequestRepository(queries MatchRequestWriteQueries, db sqlc.DBTX) *MatchRequestRepository {
	return &MatchRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MatchRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*matchrequest.Request, error) {
	row, err := r.queries.GetMatchRequest(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find match request", err)
	}
	req, err := converter.MatchRequestFromRow(row)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode match request", err)
	}
	return req, nil
}

// FindOpenOverlapping locks the returned rows for the rest of the transaction.
func (r *MatchRequestRepository) FindOpenOverlapping(ctx context.Context, courtID uuid.UUID, tr timerange.TimeRange) ([]*matchrequest.Request, error) {
	rows, err := r.queries.FindOpenOverlappingMatchRequests(ctx, r.db, sqlc.FindOpenOverlappingMatchRequestsParams{
		CourtID:    courtID,
		RangeEnd:   pgconv.TimeToPgtype(tr.End()),
		RangeStart: pgconv.TimeToPgtype(tr.Start()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find open match requests", err)
	}

	out := make([]*matchrequest.Request, 0, len(rows))
	for _, row := range rows {
		req, err := converter.MatchRequestFromRow(row)
		if err != nil {
			return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode match request", err)
		}
		out = append(out, req)
	}
	return out, nil
}

func (r *MatchRequestRepository) Save(ctx context.Context, req *matchrequest.Request) error {
	n, err := r.queries.UpdateMatchRequest(ctx, r.db, converter.MatchRequestToUpdateParams(req))
	if err != nil {
		return infra.WrapRepoErr("failed to update match request", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("match request not found", pgx.ErrNoRows)
	}
	return nil
}
