package commands

import (
	"context"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// authorizeFacility lets admins and the system through and holds staff to their own facility.
func authorizeFacility(ctx context.Context, reads shared.CommandReads, actor shared.Actor, facilityID uuid.UUID) error {
	switch actor.Role {
	case user.RoleAdmin, user.RoleSystem:
		return nil
	case user.RoleStaff:
		member, err := reads.Member(ctx, actor.UserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrForbidden
			}
			return err
		}
		if member.FacilityID == nil {
			return errs.ErrNotAssignedFacility
		}
		if !member.WorksAt(facilityID) {
			return errs.ErrForbidden
		}
		return nil
	default:
		return errs.ErrForbidden
	}
}

// authorizeBooking allows the owning customer, staff of the booking's facility, admins and the system.
func authorizeBooking(ctx context.Context, reads shared.CommandReads, actor shared.Actor, b *booking.Booking) error {
	if actor.Role == user.RoleCustomer {
		if !b.IsOwnedBy(actor.UserID) {
			return errs.ErrForbidden
		}
		return nil
	}
	return authorizeFacility(ctx, reads, actor, b.FacilityID())
}

func lockCourt(ctx context.Context, tx shared.Tx, id uuid.UUID) (*court.Court, error) {
	c, err := tx.Courts().Lock(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrInvalidResource)
	}
	return c, nil
}

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
