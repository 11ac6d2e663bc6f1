//go:build unit

package response_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/handler/dto/response"
	"court-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestFromBookingView(t *testing.T) {
	start := time.Date(2025, time.June, 2, 18, 0, 0, 0, time.UTC)
	cancelledAt := start.Add(-2 * time.Hour)
	staffID := uuid.New()
	requestID := uuid.New()
	quote := pricing.Quote{
		BaseRatePerHour: 200000,
		HourlyRate:      200000,
		DurationMinutes: 90,
		Subtotal:        300000,
		Total:           330000,
		Currency:        "VND",
	}

	v := &queries.BookingView{
		ID:               uuid.New(),
		CourtID:          uuid.New(),
		CourtName:        "Court 1",
		FacilityID:       uuid.New(),
		FacilityName:     "Riverside",
		SportID:          uuid.New(),
		SportName:        "Badminton",
		CustomerID:       uuid.New(),
		CustomerName:     "Lan",
		CustomerEmail:    "lan@example.com",
		Start:            start,
		End:              start.Add(90 * time.Minute),
		Status:           "cancelled",
		Pricing:          quote,
		Note:             "bring shuttles",
		CreatedByStaffID: &staffID,
		MatchRequestID:   &requestID,
		CancelledAt:      &cancelledAt,
		CancelledByRole:  "staff",
		CancelReasonCode: "staff_cancel",
		CancelReasonText: "court closed",
		CreatedAt:        start.Add(-48 * time.Hour),
		UpdatedAt:        cancelledAt,
	}

	want := &response.BookingResponse{
		ID:               v.ID,
		CourtID:          v.CourtID,
		CourtName:        "Court 1",
		FacilityID:       v.FacilityID,
		FacilityName:     "Riverside",
		SportID:          v.SportID,
		SportName:        "Badminton",
		CustomerID:       v.CustomerID,
		CustomerName:     "Lan",
		CustomerEmail:    "lan@example.com",
		Start:            start,
		End:              start.Add(90 * time.Minute),
		Status:           "cancelled",
		Pricing:          quote,
		Total:            330000,
		Currency:         "VND",
		Note:             "bring shuttles",
		CreatedByStaffID: &staffID,
		MatchRequestID:   &requestID,
		CancelledAt:      &cancelledAt,
		CancelledByRole:  "staff",
		CancelReasonCode: "staff_cancel",
		CancelReasonText: "court closed",
		CreatedAt:        start.Add(-48 * time.Hour),
		UpdatedAt:        cancelledAt,
	}

	if diff := cmp.Diff(want, response.FromBookingView(v)); diff != "" {
		t.Errorf("FromBookingView() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromBookingViews(t *testing.T) {
	vs := []*queries.BookingView{{ID: uuid.New()}, {ID: uuid.New()}}

	got := response.FromBookingViews(vs)
	if len(got) != 2 || got[0].ID != vs[0].ID || got[1].ID != vs[1].ID {
		t.Errorf("FromBookingViews() lost ordering: %+v", got)
	}
}
