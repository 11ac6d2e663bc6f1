package readstore

import (
	"context"
	"math"

	"court-booking/internal/infra"
	"court-booking/internal/infra/repository/converter"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListBookingViewsByCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByCustomerParams) ([]sqlc.ListBookingViewsByCustomerRow, error)
	ListBookingViewsByFacility(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByFacilityParams) ([]sqlc.ListBookingViewsByFacilityRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return toBookingRM(row)
}

func (r *BookingReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, filter readmodel.BookingFilter) ([]*readmodel.BookingRM, error) {
	rows, err := r.queries.ListBookingViewsByCustomer(ctx, r.db, sqlc.ListBookingViewsByCustomerParams{
		CustomerID: customerID,
		Status:     pgconv.EmptyAsNullText(filter.Status),
		FromTime:   pgconv.TimePtrToPgtype(filter.From),
		ToTime:     pgconv.TimePtrToPgtype(filter.To),
		RowLimit:   rowLimit(filter.Limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer bookings", err)
	}

	out := make([]*readmodel.BookingRM, 0, len(rows))
	for _, row := range rows {
		rm, err := toBookingRM(sqlc.GetBookingViewRow(row))
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, nil
}

func (r *BookingReadStore) ListByFacility(ctx context.Context, facilityID uuid.UUID, filter readmodel.BookingFilter) ([]*readmodel.BookingRM, error) {
	rows, err := r.queries.ListBookingViewsByFacility(ctx, r.db, sqlc.ListBookingViewsByFacilityParams{
		FacilityID: facilityID,
		Status:     pgconv.EmptyAsNullText(filter.Status),
		FromTime:   pgconv.TimePtrToPgtype(filter.From),
		ToTime:     pgconv.TimePtrToPgtype(filter.To),
		RowLimit:   rowLimit(filter.Limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list facility bookings", err)
	}

	out := make([]*readmodel.BookingRM, 0, len(rows))
	for _, row := range rows {
		rm, err := toBookingRM(sqlc.GetBookingViewRow(row))
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, nil
}

// The three view queries select identical columns, so list rows convert to GetBookingViewRow.
func toBookingRM(row sqlc.GetBookingViewRow) (*readmodel.BookingRM, error) {
	quote, err := converter.DecodeQuote(row.Pricing)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "failed to decode booking pricing", err)
	}

	return &readmodel.BookingRM{
		ID:               row.ID,
		CourtID:          row.CourtID,
		CourtName:        row.CourtName,
		FacilityID:       row.FacilityID,
		FacilityName:     row.FacilityName,
		SportID:          row.SportID,
		SportName:        row.SportName,
		CustomerID:       row.CustomerID,
		CustomerName:     row.CustomerName,
		CustomerEmail:    row.CustomerEmail,
		Start:            pgconv.TimeFromPgtype(row.StartTime),
		End:              pgconv.TimeFromPgtype(row.EndTime),
		Status:           row.Status,
		Pricing:          quote,
		Note:             pgconv.StringFromPgtype(row.Note),
		CreatedByStaffID: pgconv.UUIDPtrFromPgtype(row.CreatedByStaffID),
		MatchRequestID:   pgconv.UUIDPtrFromPgtype(row.MatchRequestID),
		CancelledAt:      pgconv.TimePtrFromPgtype(row.CancelledAt),
		CancelledByRole:  pgconv.StringFromPgtype(row.CancelledByRole),
		CancelReasonCode: pgconv.StringFromPgtype(row.CancelReasonCode),
		CancelReasonText: pgconv.StringFromPgtype(row.CancelReasonText),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func rowLimit(limit int) int32 {
	if limit <= 0 || limit > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(limit) // #nosec G115 -- bounded above
}
