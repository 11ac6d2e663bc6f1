package request

import (
	"encoding/json"

	"court-booking/internal/domain/timerange"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/ids"
	"court-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// ListBookingsQuery binds the shared filters of the booking list endpoints. A zero Limit
// means the default page size.
type ListBookingsQuery struct {
	Status string `form:"status"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type CreateBookingRequest struct {
	CustomerID     string `json:"customerId"`
	FacilityID     string `json:"facilityId"`
	CourtID        string `json:"courtId" binding:"required"`
	SportID        string `json:"sportId"`
	Start          string `json:"start" binding:"required"`
	End            string `json:"end" binding:"required"`
	Currency       string `json:"currency" binding:"omitempty,len=3"`
	Note           string `json:"note" binding:"max=500"`
	MatchRequestID string `json:"matchRequestId"`
	// Client-side price and status are accepted for compatibility and never trusted.
	Status          string          `json:"status,omitempty" swaggerignore:"true"`
	PricingSnapshot json.RawMessage `json:"pricingSnapshot,omitempty" swaggerignore:"true"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	courtID, err := ids.ParseResourceID(r.CourtID)
	if err != nil {
		return commands.CreateBookingInput{}, errs.Wrap(err, "courtId")
	}
	customerID, err := optionalID(r.CustomerID, "customerId")
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	facilityID, err := optionalID(r.FacilityID, "facilityId")
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	sportID, err := optionalID(r.SportID, "sportId")
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	matchRequestID, err := ids.ParseOptionalResourceID(r.MatchRequestID)
	if err != nil {
		return commands.CreateBookingInput{}, errs.Wrap(err, "matchRequestId")
	}
	rng, err := ParseRange(r.Start, r.End)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	return commands.CreateBookingInput{
		CustomerID:     customerID,
		FacilityID:     facilityID,
		SportID:        sportID,
		CourtID:        courtID,
		Range:          rng,
		Currency:       r.Currency,
		Note:           r.Note,
		MatchRequestID: matchRequestID,
	}, nil
}

type StaffCreateBookingRequest struct {
	CreateBookingRequest
	Confirm bool `json:"confirm"`
}

func (r StaffCreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	in, err := r.CreateBookingRequest.ToInput()
	if err != nil {
		return in, err
	}
	if in.CustomerID == uuid.Nil {
		return in, errs.Mark(errs.New("customerId is required"), errs.ErrInvalidInput)
	}
	in.Confirm = r.Confirm
	return in, nil
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"max=500"`
}

// ParseRange turns raw timestamps into a TimeRange, tagging failures as invalid ranges.
func ParseRange(start, end string) (timerange.TimeRange, error) {
	rng, err := timerange.Parse(start, end)
	if err != nil {
		return timerange.TimeRange{}, errs.Mark(err, errs.ErrInvalidRange)
	}
	return rng, nil
}

func optionalID(raw, field string) (uuid.UUID, error) {
	id, err := ids.ParseOptionalResourceID(raw)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, field)
	}
	if id == nil {
		return uuid.Nil, nil
	}
	return *id, nil
}
