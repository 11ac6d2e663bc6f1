//go:build unit

package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/infra"
	"court-booking/internal/infra/invoice"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInvoiceQueries struct {
	mock.Mock
}

func (m *MockInvoiceQueries) UpsertInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertInvoiceParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockInvoiceQueries) VoidInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.VoidInvoiceParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_Ensure(t *testing.T) {
	start := builder.At(2025, time.June, 3, 9, 0)
	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
		bb.Range = builder.Range(start, 90*time.Minute)
		bb.Status = booking.StatusConfirmed
		bb.Quote = pricing.Quote{Total: 330000, Currency: "VND", DurationMinutes: 90}
	}).BuildDomain()

	t.Run("upserts an invoice due at the end of the session", func(t *testing.T) {
		q := new(MockInvoiceQueries)
		q.On("UpsertInvoice", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpsertInvoiceParams) bool {
			amount, err := pgconv.Float64FromNumeric(p.Amount)
			return err == nil &&
				p.BookingID == b.ID() &&
				p.CustomerID == b.CustomerID() &&
				p.FacilityID == b.FacilityID() &&
				amount == 330000 &&
				p.Currency == "VND" &&
				pgconv.TimeFromPgtype(p.DueAt).Equal(start.Add(90*time.Minute))
		})).Return(nil).Once()

		require.NoError(t, invoice.NewService(q, nil).Ensure(context.Background(), b))
		q.AssertExpectations(t)
	})

	t.Run("database errors are wrapped", func(t *testing.T) {
		q := new(MockInvoiceQueries)
		q.On("UpsertInvoice", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

		err := invoice.NewService(q, nil).Ensure(context.Background(), b)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestService_Void(t *testing.T) {
	bookingID := uuid.New()
	at := builder.At(2025, time.June, 3, 8, 0)

	tests := []struct {
		name     string
		reason   string
		affected int64
		wantNull bool
	}{
		{name: "voids with a reason", reason: "customer_cancelled", affected: 1},
		{name: "missing invoice is a no-op", reason: "auto_cancel", affected: 0},
		{name: "empty reason is stored as null", reason: "", affected: 1, wantNull: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockInvoiceQueries)
			q.On("VoidInvoice", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.VoidInvoiceParams) bool {
				return p.BookingID == bookingID &&
					p.VoidReason.Valid == !tt.wantNull &&
					p.VoidReason.String == tt.reason &&
					pgconv.TimeFromPgtype(p.VoidedAt).Equal(at)
			})).Return(tt.affected, nil).Once()

			require.NoError(t, invoice.NewService(q, nil).Void(context.Background(), bookingID, tt.reason, at))
			q.AssertExpectations(t)
		})
	}
}
