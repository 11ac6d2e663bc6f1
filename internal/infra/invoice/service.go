package invoice

import (
	"context"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/infra"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InvoiceQueries interface {
	UpsertInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertInvoiceParams) error
	VoidInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.VoidInvoiceParams) (int64, error)
}

// Service keeps one unpaid invoice per confirmed booking, due when the session ends.
type Service struct {
	queries InvoiceQueries
	db      sqlc.DBTX
}

func NewService(queries InvoiceQueries, db sqlc.DBTX) *Service {
	return &Service{queries: queries, db: db}
}

func (s *Service) Ensure(ctx context.Context, b *booking.Booking) error {
	quote := b.Quote()
	err := s.queries.UpsertInvoice(ctx, s.db, sqlc.UpsertInvoiceParams{
		BookingID:  b.ID(),
		CustomerID: b.CustomerID(),
		FacilityID: b.FacilityID(),
		Amount:     pgconv.NumericFromFloat64(quote.Total),
		Currency:   quote.Currency,
		DueAt:      pgconv.TimeToPgtype(b.Range().End()),
		CreatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert invoice", err)
	}
	return nil
}

// Void is a no-op when the booking never had an invoice or it is already void.
func (s *Service) Void(ctx context.Context, bookingID uuid.UUID, reason string, at time.Time) error {
	_, err := s.queries.VoidInvoice(ctx, s.db, sqlc.VoidInvoiceParams{
		BookingID:  bookingID,
		VoidReason: pgconv.EmptyAsNullText(reason),
		VoidedAt:   pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to void invoice", err)
	}
	return nil
}
