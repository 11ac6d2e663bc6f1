//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"court-booking/internal/infra"
	"court-booking/internal/infra/readstore"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/readmodel"
	readstoremock "court-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func viewRow(id uuid.UUID, start time.Time) sqlc.GetBookingViewRow {
	return sqlc.GetBookingViewRow{
		ID:            id,
		CourtID:       uuid.New(),
		CourtName:     "Court 1",
		FacilityID:    uuid.New(),
		FacilityName:  "Riverside",
		SportID:       uuid.New(),
		SportName:     "Badminton",
		CustomerID:    uuid.New(),
		CustomerName:  "Linh",
		CustomerEmail: "linh@example.com",
		StartTime:     pgconv.TimeToPgtype(start),
		EndTime:       pgconv.TimeToPgtype(start.Add(90 * time.Minute)),
		Status:        "confirmed",
		Pricing:       []byte(`{"total":330000,"currency":"VND","durationMinutes":90}`),
		CreatedAt:     pgconv.TimeToPgtype(start.Add(-24 * time.Hour)),
		UpdatedAt:     pgconv.TimeToPgtype(start.Add(-23 * time.Hour)),
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	start := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBookingViewQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, id uuid.UUID) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), id).Return(viewRow(id, start), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, id uuid.UUID) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), id).Return(sqlc.GetBookingViewRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, id uuid.UUID) {
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), id).Return(sqlc.GetBookingViewRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: undecodable pricing snapshot",
			setupMock: func(mock *readstoremock.MockBookingViewQueries, id uuid.UUID) {
				row := viewRow(id, start)
				row.Pricing = []byte(`{"total":`)
				mock.EXPECT().GetBookingView(ctx, gomock.Any(), id).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries, bookingID)

			result, actualError := store.FindByID(ctx, bookingID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, actualError)
			require.NotNil(t, result)
			assert.Equal(t, bookingID, result.ID)
			assert.Equal(t, "Riverside", result.FacilityName)
			assert.Equal(t, "linh@example.com", result.CustomerEmail)
			assert.Equal(t, 330000.0, result.Pricing.Total)
			assert.True(t, start.Equal(result.Start))
			assert.Nil(t, result.CancelledAt)
			assert.Empty(t, result.Note)
		})
	}
}

// =============================================================================
// List Tests
// =============================================================================

func TestBookingReadStore_ListByCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		filter     readmodel.BookingFilter
		wantParams sqlc.ListBookingViewsByCustomerParams
	}{
		{
			name:   "no filters",
			filter: readmodel.BookingFilter{},
			wantParams: sqlc.ListBookingViewsByCustomerParams{
				CustomerID: customerID,
				RowLimit:   math.MaxInt32,
			},
		},
		{
			name:   "status, window start and limit",
			filter: readmodel.BookingFilter{Status: "pending", From: &from, Limit: 20},
			wantParams: sqlc.ListBookingViewsByCustomerParams{
				CustomerID: customerID,
				Status:     pgtype.Text{String: "pending", Valid: true},
				FromTime:   pgconv.TimeToPgtype(from),
				RowLimit:   20,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

			row := sqlc.ListBookingViewsByCustomerRow(viewRow(uuid.New(), from.Add(48*time.Hour)))
			mockQueries.EXPECT().ListBookingViewsByCustomer(ctx, gomock.Any(), tc.wantParams).
				Return([]sqlc.ListBookingViewsByCustomerRow{row}, nil)

			got, err := store.ListByCustomer(ctx, customerID, tc.filter)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, row.ID, got[0].ID)
		})
	}
}

func TestBookingReadStore_ListByFacility(t *testing.T) {
	ctx := context.Background()
	facilityID := uuid.New()

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBookingViewsByFacility(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		got, err := store.ListByFacility(ctx, facilityID, readmodel.BookingFilter{})
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("success: empty result is an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBookingViewsByFacility(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		got, err := store.ListByFacility(ctx, facilityID, readmodel.BookingFilter{Status: "confirmed"})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
