package response

import (
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID               uuid.UUID     `json:"id"`
	CourtID          uuid.UUID     `json:"courtId"`
	CourtName        string        `json:"courtName,omitempty"`
	FacilityID       uuid.UUID     `json:"facilityId"`
	FacilityName     string        `json:"facilityName,omitempty"`
	SportID          uuid.UUID     `json:"sportId"`
	SportName        string        `json:"sportName,omitempty"`
	CustomerID       uuid.UUID     `json:"customerId"`
	CustomerName     string        `json:"customerName,omitempty"`
	CustomerEmail    string        `json:"customerEmail,omitempty"`
	Start            time.Time     `json:"start"`
	End              time.Time     `json:"end"`
	Status           string        `json:"status"`
	Pricing          pricing.Quote `json:"pricingSnapshot"`
	Total            float64       `json:"total"`
	Currency         string        `json:"currency"`
	Note             string        `json:"note,omitempty"`
	CreatedByStaffID *uuid.UUID    `json:"createdByStaffId,omitempty"`
	MatchRequestID   *uuid.UUID    `json:"matchRequestId,omitempty"`
	CancelledAt      *time.Time    `json:"cancelledAt,omitempty"`
	CancelledByRole  string        `json:"cancelledByRole,omitempty"`
	CancelReasonCode string        `json:"cancelReasonCode,omitempty"`
	CancelReasonText string        `json:"cancelReasonText,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:               v.ID,
		CourtID:          v.CourtID,
		CourtName:        v.CourtName,
		FacilityID:       v.FacilityID,
		FacilityName:     v.FacilityName,
		SportID:          v.SportID,
		SportName:        v.SportName,
		CustomerID:       v.CustomerID,
		CustomerName:     v.CustomerName,
		CustomerEmail:    v.CustomerEmail,
		Start:            v.Start,
		End:              v.End,
		Status:           v.Status,
		Pricing:          v.Pricing,
		Total:            v.Pricing.Total,
		Currency:         v.Pricing.Currency,
		Note:             v.Note,
		CreatedByStaffID: v.CreatedByStaffID,
		MatchRequestID:   v.MatchRequestID,
		CancelledAt:      v.CancelledAt,
		CancelledByRole:  v.CancelledByRole,
		CancelReasonCode: v.CancelReasonCode,
		CancelReasonText: v.CancelReasonText,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromBookingView(v)
	}
	return out
}

// FromBooking renders a freshly written booking, which carries ids but no display names.
func FromBooking(b *booking.Booking) *BookingResponse {
	res := &BookingResponse{
		ID:               b.ID(),
		CourtID:          b.CourtID(),
		FacilityID:       b.FacilityID(),
		SportID:          b.SportID(),
		CustomerID:       b.CustomerID(),
		Start:            b.Range().Start(),
		End:              b.Range().End(),
		Status:           b.Status().String(),
		Pricing:          b.Quote(),
		Total:            b.Quote().Total,
		Currency:         b.Quote().Currency,
		Note:             b.Note(),
		CreatedByStaffID: b.CreatedByStaffID(),
		MatchRequestID:   b.MatchRequestID(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
	if c := b.Cancellation(); c != nil {
		at := c.At
		res.CancelledAt = &at
		res.CancelledByRole = c.Role.String()
		res.CancelReasonCode = c.ReasonCode
		res.CancelReasonText = c.ReasonText
	}
	return res
}
