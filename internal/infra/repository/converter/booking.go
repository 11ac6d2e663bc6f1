package converter

import (
	"encoding/json"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/domain/user"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) (sqlc.CreateBookingParams, error) {
	pricingJSON, err := json.Marshal(b.Quote())
	if err != nil {
		return sqlc.CreateBookingParams{}, errs.Wrap(err, "encode pricing snapshot")
	}

	return sqlc.CreateBookingParams{
		ID:               b.ID(),
		CourtID:          b.CourtID(),
		FacilityID:       b.FacilityID(),
		SportID:          b.SportID(),
		CustomerID:       b.CustomerID(),
		CreatedByStaffID: pgconv.UUIDPtrToPgtype(b.CreatedByStaffID()),
		MatchRequestID:   pgconv.UUIDPtrToPgtype(b.MatchRequestID()),
		StartTime:        pgconv.TimeToPgtype(b.Range().Start()),
		EndTime:          pgconv.TimeToPgtype(b.Range().End()),
		Status:           b.Status().String(),
		Pricing:          pricingJSON,
		Total:            pgconv.NumericFromFloat64(b.Quote().Total),
		Currency:         b.Quote().Currency,
		Note:             pgconv.EmptyAsNullText(b.Note()),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}, nil
}

func BookingToTransitionParams(b *booking.Booking, from booking.Status) sqlc.TransitionBookingParams {
	params := sqlc.TransitionBookingParams{
		Status:     b.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:         b.ID(),
		FromStatus: from.String(),
	}
	if c := b.Cancellation(); c != nil {
		params.CancelledAt = pgconv.TimeToPgtype(c.At)
		params.CancelledByUserID = pgconv.UUIDPtrToPgtype(c.UserID)
		params.CancelledByRole = pgconv.EmptyAsNullText(c.Role.String())
		params.CancelReasonCode = pgconv.EmptyAsNullText(c.ReasonCode)
		params.CancelReasonText = pgconv.EmptyAsNullText(c.ReasonText)
	}
	return params
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	r, err := timerange.New(row.StartTime.Time, row.EndTime.Time)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s has a corrupt range", row.ID)
	}
	quote, err := DecodeQuote(row.Pricing)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(booking.Snapshot{
		ID:               row.ID,
		CourtID:          row.CourtID,
		FacilityID:       row.FacilityID,
		SportID:          row.SportID,
		CustomerID:       row.CustomerID,
		CreatedByStaffID: pgconv.UUIDPtrFromPgtype(row.CreatedByStaffID),
		MatchRequestID:   pgconv.UUIDPtrFromPgtype(row.MatchRequestID),
		Range:            r,
		Status:           booking.Status(row.Status),
		Quote:            quote,
		Note:             pgconv.StringFromPgtype(row.Note),
		Cancellation: CancellationFromColumns(
			row.CancelledAt,
			row.CancelledByUserID,
			row.CancelledByRole,
			row.CancelReasonCode,
			row.CancelReasonText,
		),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func BookingsFromRows(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// CancellationFromColumns returns nil for bookings that were never cancelled.
func CancellationFromColumns(at pgtype.Timestamptz, userID pgtype.UUID, role, code, text pgtype.Text) *booking.Cancellation {
	if !at.Valid && !code.Valid {
		return nil
	}
	return &booking.Cancellation{
		ReasonCode: pgconv.StringFromPgtype(code),
		ReasonText: pgconv.StringFromPgtype(text),
		Role:       user.Role(pgconv.StringFromPgtype(role)),
		UserID:     pgconv.UUIDPtrFromPgtype(userID),
		At:         pgconv.TimeFromPgtype(at),
	}
}

func DecodeQuote(raw []byte) (pricing.Quote, error) {
	var q pricing.Quote
	if len(raw) == 0 {
		return q, nil
	}
	if err := json.Unmarshal(raw, &q); err != nil {
		return pricing.Quote{}, errs.Wrap(err, "decode pricing snapshot")
	}
	return q, nil
}
