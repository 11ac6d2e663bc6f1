package readstore

import (
	"context"

	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MemberReadQueries interface {
	GetMember(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type MemberReadStore struct {
	queries MemberReadQueries
	db      sqlc.DBTX
}

func NewMemberReadStore(queries MemberReadQueries, db sqlc.DBTX) *MemberReadStore {
	return &MemberReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MemberReadStore) Member(ctx context.Context, id uuid.UUID) (*user.Member, error) {
	row, err := r.queries.GetMember(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return converter.MemberFromRow(row), nil
}

func (r *MemberReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.MemberRM, error) {
	m, err := r.Member(ctx, id)
	if err != nil {
		return nil, err
	}

	var rm readmodel.MemberRM
	if err := copier.Copy(&rm, m); err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to map user", err)
	}
	rm.Role = m.Role.String()
	rm.MembershipTier = string(m.MembershipTier)
	return &rm, nil
}
