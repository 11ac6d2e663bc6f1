//go:build unit

package repository_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/infra/repository"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/tests/common/builder"
	repositorymock "court-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking created",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, p sqlc.CreateBookingParams) error {
						assert.Equal(t, b.ID(), p.ID)
						assert.Equal(t, "pending", p.Status)
						assert.True(t, b.Range().Start().Equal(p.StartTime.Time))
						assert.Equal(t, "VND", p.Currency)
						total, err := pgconv.Float64FromNumeric(p.Total)
						assert.NoError(t, err)
						assert.Equal(t, 330000.0, total)
						return nil
					})
			},
		},
		{
			name: "error: overlapping booking rejected by the exclusion constraint",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				overlap := &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap", Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(overlap)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: unknown court",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) {
				bb.Quote = pricing.Quote{Total: 330000, Currency: "VND", DurationMinutes: 60}
			}).BuildDomain()
			tc.setupMock(mockQueries, b, mockDB)

			actualError := repo.Create(ctx, b)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Transition Tests
// =============================================================================

func TestBookingRepository_Transition(t *testing.T) {
	ctx := context.Background()
	at := builder.At(2025, time.June, 2, 9, 10)
	customerID := uuid.New()

	t.Run("cancellation columns are written with the conditional update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})

		b := builder.NewBookingBuilder().BuildDomain()
		_, err := b.Cancel(booking.Cancellation{ReasonCode: "customer_cancelled", Role: user.RoleCustomer, UserID: &customerID, At: at})
		require.NoError(t, err)

		mockQueries.EXPECT().TransitionBooking(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, p sqlc.TransitionBookingParams) (int64, error) {
				assert.Equal(t, "cancelled", p.Status)
				assert.Equal(t, "pending", p.FromStatus)
				assert.Equal(t, "customer", p.CancelledByRole.String)
				assert.Equal(t, customerID, *pgconv.UUIDPtrFromPgtype(p.CancelledByUserID))
				assert.False(t, p.CancelReasonText.Valid)
				assert.True(t, at.Equal(p.CancelledAt.Time))
				return 1, nil
			})

		ok, err := repo.Transition(ctx, b, booking.StatusPending)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("lost race reports false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})

		b := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, b.Confirm(at))
		mockQueries.EXPECT().TransitionBooking(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		ok, err := repo.Transition(ctx, b, booking.StatusPending)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

// =============================================================================
// Read Tests
// =============================================================================

func TestBookingRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	start := builder.At(2025, time.June, 3, 9, 0)

	t.Run("success: cancelled booking keeps its cancellation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), id).Return(sqlc.Bookings{
			ID:               id,
			StartTime:        pgconv.TimeToPgtype(start),
			EndTime:          pgconv.TimeToPgtype(start.Add(time.Hour)),
			Status:           "cancelled",
			Pricing:          []byte(`{"total":200000,"currency":"VND"}`),
			CancelledAt:      pgconv.TimeToPgtype(start.Add(-time.Hour)),
			CancelledByRole:  pgconv.StringToPgtype("system"),
			CancelReasonCode: pgconv.StringToPgtype("auto_cancel"),
		}, nil)

		b, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.Cancellation())
		assert.Equal(t, user.RoleSystem, b.Cancellation().Role)
		assert.Nil(t, b.Cancellation().UserID)
		assert.Equal(t, time.Hour, b.Range().Duration())
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), id).Return(sqlc.Bookings{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: corrupt range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})
		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), id).Return(sqlc.Bookings{
			ID:        id,
			StartTime: pgconv.TimeToPgtype(start),
			EndTime:   pgconv.TimeToPgtype(start),
			Status:    "pending",
		}, nil)

		_, err := repo.FindByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepository_ListStalePending(t *testing.T) {
	ctx := context.Background()
	cutoff := builder.At(2025, time.June, 2, 9, 0)

	tests := []struct {
		name      string
		limit     int
		wantLimit int32
	}{
		{name: "bounded batch", limit: 100, wantLimit: 100},
		{name: "zero means unbounded", limit: 0, wantLimit: math.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().ListStalePendingBookings(ctx, gomock.Any(), sqlc.ListStalePendingBookingsParams{
				Cutoff:   pgconv.TimeToPgtype(cutoff),
				RowLimit: tt.wantLimit,
			}).Return(nil, nil)

			got, err := repo.ListStalePending(ctx, cutoff, tt.limit)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
