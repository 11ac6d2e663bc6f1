package converter

import (
	"encoding/json"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/matchrequest"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/domain/user"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/pgconv"
)

func CourtFromRow(row sqlc.Courts) *court.Court {
	return court.Reconstruct(
		row.ID,
		row.FacilityID,
		row.SportID,
		row.Name,
		court.Status(row.Status),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func FacilityFromRow(row sqlc.Facilities) *court.Facility {
	return &court.Facility{
		ID:       row.ID,
		Name:     row.Name,
		TimeZone: pgconv.StringFromPgtype(row.Timezone),
	}
}

func SportFromRow(row sqlc.Sports) *court.Sport {
	return &court.Sport{ID: row.ID, Name: row.Name}
}

func MemberFromRow(row sqlc.Users) *user.Member {
	return &user.Member{
		ID:                  row.ID,
		Name:                row.Name,
		Email:               row.Email,
		Role:                user.Role(row.Role),
		FacilityID:          pgconv.UUIDPtrFromPgtype(row.FacilityID),
		MembershipTier:      user.MembershipTier(pgconv.StringFromPgtype(row.MembershipTier)),
		MembershipExpiresAt: pgconv.TimePtrFromPgtype(row.MembershipExpiresAt),
	}
}

func ProfileFromRow(row sqlc.PriceProfiles) (pricing.Profile, error) {
	base, err := pgconv.Float64FromNumeric(row.BaseRatePerHour)
	if err != nil {
		return pricing.Profile{}, errs.Wrapf(err, "price profile %s base rate", row.ID)
	}
	tax, err := pgconv.Float64FromNumeric(row.TaxPercent)
	if err != nil {
		return pricing.Profile{}, errs.Wrapf(err, "price profile %s tax", row.ID)
	}

	p := pricing.Profile{
		ID:              row.ID,
		Name:            row.Name,
		FacilityID:      row.FacilityID,
		SportID:         row.SportID,
		CourtID:         pgconv.UUIDPtrFromPgtype(row.CourtID),
		Currency:        row.Currency,
		BaseRatePerHour: base,
		TaxPercent:      tax,
		Active:          row.Active,
	}
	if len(row.Rules) > 0 {
		if err := json.Unmarshal(row.Rules, &p.Rules); err != nil {
			return pricing.Profile{}, errs.Wrapf(err, "price profile %s rules", row.ID)
		}
	}
	if len(row.MembershipDiscounts) > 0 {
		if err := json.Unmarshal(row.MembershipDiscounts, &p.MembershipDiscounts); err != nil {
			return pricing.Profile{}, errs.Wrapf(err, "price profile %s discounts", row.ID)
		}
	}
	return p, nil
}

func MatchRequestFromRow(row sqlc.MatchRequests) (*matchrequest.Request, error) {
	desired, err := timerange.New(row.DesiredStart.Time, row.DesiredEnd.Time)
	if err != nil {
		return nil, errs.Wrapf(err, "match request %s has a corrupt range", row.ID)
	}
	return &matchrequest.Request{
		ID:                row.ID,
		CourtID:           row.CourtID,
		CreatorID:         row.CreatorID,
		Desired:           desired,
		Status:            matchrequest.Status(row.Status),
		BookingID:         pgconv.UUIDPtrFromPgtype(row.BookingID),
		BookingStatus:     pgconv.StringFromPgtype(row.BookingStatus),
		CancelReasonCode:  pgconv.StringFromPgtype(row.CancelReasonCode),
		CancelReasonText:  pgconv.StringFromPgtype(row.CancelReasonText),
		CancelledByRole:   user.Role(pgconv.StringFromPgtype(row.CancelledByRole)),
		CancelledAt:       pgconv.TimePtrFromPgtype(row.CancelledAt),
		ConflictBookingID: pgconv.UUIDPtrFromPgtype(row.ConflictBookingID),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func MatchRequestToUpdateParams(r *matchrequest.Request) sqlc.UpdateMatchRequestParams {
	return sqlc.UpdateMatchRequestParams{
		ID:                r.ID,
		Status:            string(r.Status),
		BookingID:         pgconv.UUIDPtrToPgtype(r.BookingID),
		BookingStatus:     pgconv.EmptyAsNullText(r.BookingStatus),
		CancelReasonCode:  pgconv.EmptyAsNullText(r.CancelReasonCode),
		CancelReasonText:  pgconv.EmptyAsNullText(r.CancelReasonText),
		CancelledByRole:   pgconv.EmptyAsNullText(r.CancelledByRole.String()),
		CancelledAt:       pgconv.TimePtrToPgtype(r.CancelledAt),
		ConflictBookingID: pgconv.UUIDPtrToPgtype(r.ConflictBookingID),
		UpdatedAt:         pgconv.TimeToPgtype(r.UpdatedAt),
	}
}
