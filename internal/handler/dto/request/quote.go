package request

import (
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/ids"
	"court-booking/internal/usecase/queries"
)

type QuoteRequest struct {
	FacilityID string `json:"facilityId" binding:"required"`
	SportID    string `json:"sportId" binding:"required"`
	CourtID    string `json:"courtId" binding:"required"`
	Start      string `json:"start" binding:"required"`
	End        string `json:"end" binding:"required"`
	Currency   string `json:"currency" binding:"omitempty,len=3"`
	UserID     string `json:"userId"`
}

func (r QuoteRequest) ToInput() (queries.QuoteInput, error) {
	facilityID, err := ids.ParseResourceID(r.FacilityID)
	if err != nil {
		return queries.QuoteInput{}, errs.Wrap(err, "facilityId")
	}
	sportID, err := ids.ParseResourceID(r.SportID)
	if err != nil {
		return queries.QuoteInput{}, errs.Wrap(err, "sportId")
	}
	courtID, err := ids.ParseResourceID(r.CourtID)
	if err != nil {
		return queries.QuoteInput{}, errs.Wrap(err, "courtId")
	}
	userID, err := ids.ParseOptionalResourceID(r.UserID)
	if err != nil {
		return queries.QuoteInput{}, errs.Wrap(err, "userId")
	}
	rng, err := ParseRange(r.Start, r.End)
	if err != nil {
		return queries.QuoteInput{}, err
	}
	return queries.QuoteInput{
		FacilityID: facilityID,
		SportID:    sportID,
		CourtID:    courtID,
		Range:      rng,
		Currency:   r.Currency,
		UserID:     userID,
	}, nil
}
