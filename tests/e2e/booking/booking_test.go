//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"court-booking/internal/domain/user"
	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/tests/common/authtest"
	"court-booking/tests/common/dbtest"
	"court-booking/tests/common/httptest"
	"court-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL      = "/api/bookings"
	cancelURL        = "/api/bookings/%s/cancel"
	staffBookingsURL = "/api/staff/bookings"
	staffStatusURL   = "/api/staff/bookings/%s/status"
	maintenanceURL   = "/api/staff/courts/%s/maintenance"
	availabilityURL  = "/api/courts/%s/availability?start=%s&end=%s"
	quoteURL         = "/api/price/quote"
)

type BookingSuite struct {
	e2e.SharedSuite
	tokens *authtest.JWTHelper
}

// world is the minimal data set most scenarios start from.
type world struct {
	facilityID uuid.UUID
	sportID    uuid.UUID
	courtID    uuid.UUID
	customerID uuid.UUID
	staffID    uuid.UUID
	customer   string
	staff      string
	slot       time.Time
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.tokens = authtest.NewJWTHelper(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) seed() world {
	t := s.T()
	w := world{}
	w.facilityID = dbtest.CreateTestFacility(t, s.DB, "Riverside", "UTC")
	w.sportID = dbtest.SportID(t, s.DB, "Badminton")
	w.courtID = dbtest.CreateTestCourt(t, s.DB, w.facilityID, w.sportID, "Court 1")
	dbtest.CreateTestPriceProfile(t, s.DB, w.facilityID, w.sportID, 200000, 10, `[{"tier":"silver","percentOff":10}]`)

	w.customerID = dbtest.CreateTestUser(t, s.DB, "linh@example.com", string(user.RoleCustomer), nil)
	w.staffID = dbtest.CreateTestUser(t, s.DB, "desk@example.com", string(user.RoleStaff), &w.facilityID)
	w.customer = s.tokens.GenerateToken(t, w.customerID, user.RoleCustomer)
	w.staff = s.tokens.GenerateToken(t, w.staffID, user.RoleStaff)
	w.slot = time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
	return w
}

func (s *BookingSuite) book(token string, courtID uuid.UUID, start time.Time, d time.Duration) (int, resdto.BookingResponse) {
	t := s.T()
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
		CourtID: courtID.String(),
		Start:   start.Format(time.RFC3339),
		End:     start.Add(d).Format(time.RFC3339),
	}, token)

	var res resdto.BookingResponse
	if rec.Code == http.StatusCreated {
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &res))
	}
	return rec.Code, res
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: customer books a free slot at the server-side price", func() {
		t := s.T()
		w := s.seed()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"courtId":         w.courtID.String(),
			"start":           w.slot.Format(time.RFC3339),
			"end":             w.slot.Add(90 * time.Minute).Format(time.RFC3339),
			"status":          "confirmed",
			"pricingSnapshot": map[string]any{"total": 1},
		}, w.customer)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var got resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &got))

		want := resdto.BookingResponse{
			CourtID:    w.courtID,
			FacilityID: w.facilityID,
			SportID:    w.sportID,
			CustomerID: w.customerID,
			Status:     "pending",
			Total:      330000,
			Currency:   "VND",
		}
		opts := cmp.Options{
			cmpopts.IgnoreFields(resdto.BookingResponse{}, "ID", "Start", "End", "Pricing", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(want, got, opts); diff != "" {
			t.Errorf("booking mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, 90, got.Pricing.DurationMinutes)
		require.Equal(t, "pending", dbtest.BookingStatus(t, s.DB, got.ID))
		require.Empty(t, dbtest.InvoiceStatus(t, s.DB, got.ID))
	})

	s.Run("Abnormal case: overlapping slot is rejected, back-to-back is allowed", func() {
		t := s.T()
		w := s.seed()
		other := s.tokens.GenerateToken(t, dbtest.CreateTestUser(t, s.DB, "minh@example.com", "customer", nil), user.RoleCustomer)

		code, _ := s.book(w.customer, w.courtID, w.slot, time.Hour)
		require.Equal(t, http.StatusCreated, code)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
			CourtID: w.courtID.String(),
			Start:   w.slot.Add(30 * time.Minute).Format(time.RFC3339),
			End:     w.slot.Add(90 * time.Minute).Format(time.RFC3339),
		}, other)
		httptest.AssertErrorCode(t, rec, http.StatusConflict, "booking_conflict")

		code, _ = s.book(other, w.courtID, w.slot.Add(time.Hour), time.Hour)
		require.Equal(t, http.StatusCreated, code)
	})

	s.Run("Abnormal case: concurrent requests for one slot admit exactly one", func() {
		t := s.T()
		w := s.seed()

		const racers = 8
		tokens := make([]string, racers)
		for i := 0; i < racers; i++ {
			id := dbtest.CreateTestUser(t, s.DB, fmt.Sprintf("racer%d@example.com", i), "customer", nil)
			tokens[i] = s.tokens.GenerateToken(t, id, user.RoleCustomer)
		}

		codes := make([]int, racers)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := 0; i < racers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				codes[i], _ = s.book(tokens[i], w.courtID, w.slot, time.Hour)
			}(i)
		}
		close(start)
		wg.Wait()

		created, conflicts := 0, 0
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, racers-1, conflicts, "codes: %v", codes)

		var rows int
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM bookings WHERE court_id = $1 AND status = 'pending'", w.courtID).Scan(&rows))
		require.Equal(t, 1, rows)
	})

	s.Run("Abnormal case: maintenance blocks admission", func() {
		t := s.T()
		w := s.seed()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(maintenanceURL, w.courtID), reqdto.CreateMaintenanceRequest{
			Start:  w.slot.Format(time.RFC3339),
			End:    w.slot.Add(2 * time.Hour).Format(time.RFC3339),
			Reason: "resurfacing",
		}, w.staff)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
			CourtID: w.courtID.String(),
			Start:   w.slot.Add(time.Hour).Format(time.RFC3339),
			End:     w.slot.Add(3 * time.Hour).Format(time.RFC3339),
		}, w.customer)
		httptest.AssertErrorCode(t, rec, http.StatusConflict, "maintenance_conflict")

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, w.courtID,
			w.slot.Format(time.RFC3339), w.slot.Add(time.Hour).Format(time.RFC3339)), nil, "")
		var avail resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &avail)
		require.Equal(t, resdto.AvailabilityResponse{MaintenanceConflict: true}, avail)
	})

	s.Run("Abnormal case: unknown court", func() {
		t := s.T()
		w := s.seed()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
			CourtID: uuid.NewString(),
			Start:   w.slot.Format(time.RFC3339),
			End:     w.slot.Add(time.Hour).Format(time.RFC3339),
		}, w.customer)
		httptest.AssertErrorCode(t, rec, http.StatusBadRequest, "invalid_resource")
	})

	s.Run("Abnormal case: staff of another facility", func() {
		t := s.T()
		w := s.seed()
		elsewhere := dbtest.CreateTestFacility(t, s.DB, "Lakeside", "UTC")
		outsider := dbtest.CreateTestUser(t, s.DB, "outsider@example.com", "staff", &elsewhere)

		body := reqdto.StaffCreateBookingRequest{CreateBookingRequest: reqdto.CreateBookingRequest{
			CourtID: w.courtID.String(),
			Start:   w.slot.Format(time.RFC3339),
			End:     w.slot.Add(time.Hour).Format(time.RFC3339),
		}}
		body.CustomerID = w.customerID.String()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, staffBookingsURL, body,
			s.tokens.GenerateToken(t, outsider, user.RoleStaff))
		httptest.AssertErrorCode(t, rec, http.StatusForbidden, "forbidden")
	})
}

// =============================================================================
// TestLifecycle
// =============================================================================

func (s *BookingSuite) TestLifecycle() {
	s.Run("Normal case: customer cancels a pending booking and frees the slot", func() {
		t := s.T()
		w := s.seed()

		code, b := s.book(w.customer, w.courtID, w.slot, time.Hour)
		require.Equal(t, http.StatusCreated, code)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(cancelURL, b.ID),
			reqdto.CancelBookingRequest{Reason: "plans changed"}, w.customer)
		var cancelled resdto.BookingResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &cancelled)
		require.Equal(t, "cancelled", cancelled.Status)
		require.Equal(t, "customer", cancelled.CancelledByRole)

		// idempotent
		rec = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(cancelURL, b.ID), nil, w.customer)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		code, _ = s.book(w.customer, w.courtID, w.slot, time.Hour)
		require.Equal(t, http.StatusCreated, code)
	})

	s.Run("Normal case: staff confirmation issues an invoice, staff cancellation voids it", func() {
		t := s.T()
		w := s.seed()

		code, b := s.book(w.customer, w.courtID, w.slot, time.Hour)
		require.Equal(t, http.StatusCreated, code)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(staffStatusURL, b.ID),
			reqdto.UpdateBookingStatusRequest{Status: "confirmed"}, w.staff)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		require.Equal(t, "confirmed", dbtest.BookingStatus(t, s.DB, b.ID))
		require.Equal(t, "unpaid", dbtest.InvoiceStatus(t, s.DB, b.ID))

		rec = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(cancelURL, b.ID), nil, w.customer)
		httptest.AssertErrorCode(t, rec, http.StatusConflict, "booking_not_cancellable")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(staffStatusURL, b.ID),
			reqdto.UpdateBookingStatusRequest{Status: "cancelled", Reason: "court flooded"}, w.staff)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		require.Equal(t, "void", dbtest.InvoiceStatus(t, s.DB, b.ID))

		require.Eventually(t, func() bool {
			var n int
			err := s.DB.QueryRow(context.Background(),
				"SELECT count(*) FROM audit_logs WHERE resource_id = $1", b.ID).Scan(&n)
			return err == nil && n >= 3
		}, 5*time.Second, 50*time.Millisecond, "audit entries were not written")
	})

	s.Run("Abnormal case: completing before the session ends", func() {
		t := s.T()
		w := s.seed()

		code, b := s.book(w.customer, w.courtID, w.slot, time.Hour)
		require.Equal(t, http.StatusCreated, code)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(staffStatusURL, b.ID),
			reqdto.UpdateBookingStatusRequest{Status: "completed"}, w.staff)
		httptest.AssertErrorCode(t, rec, http.StatusConflict, "invalid_transition")
	})

	s.Run("Normal case: staff listing is scoped to the staff facility", func() {
		t := s.T()
		w := s.seed()

		code, _ := s.book(w.customer, w.courtID, w.slot, time.Hour)
		require.Equal(t, http.StatusCreated, code)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, staffBookingsURL+"?status=pending", nil, w.staff)
		var list []resdto.BookingResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &list)
		require.Len(t, list, 1)
		require.Equal(t, "Court 1", list[0].CourtName)
		require.Equal(t, "linh@example.com", list[0].CustomerEmail)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, staffBookingsURL, nil, w.customer)
		httptest.AssertErrorCode(t, rec, http.StatusForbidden, "forbidden")
	})
}

// =============================================================================
// TestQuote
// =============================================================================

func (s *BookingSuite) TestQuote() {
	s.Run("Normal case: membership discount applies to active members only", func() {
		t := s.T()
		w := s.seed()

		body := reqdto.QuoteRequest{
			FacilityID: w.facilityID.String(),
			SportID:    w.sportID.String(),
			CourtID:    w.courtID.String(),
			Start:      w.slot.Format(time.RFC3339),
			End:        w.slot.Add(time.Hour).Format(time.RFC3339),
			UserID:     w.customerID.String(),
		}

		var anonymous resdto.QuoteResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, body, ""), http.StatusOK, &anonymous)
		require.InDelta(t, 220000, anonymous.Total, 0.01)

		dbtest.SetMembership(t, s.DB, w.customerID, "silver", time.Now().Add(30*24*time.Hour))
		var member resdto.QuoteResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, body, ""), http.StatusOK, &member)
		require.InDelta(t, 10, member.DiscountPercent, 0.001)
		require.InDelta(t, 198000, member.Total, 0.01)

		dbtest.SetMembership(t, s.DB, w.customerID, "silver", time.Now().Add(-time.Hour))
		var lapsed resdto.QuoteResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, body, ""), http.StatusOK, &lapsed)
		require.InDelta(t, 220000, lapsed.Total, 0.01)
	})
}
