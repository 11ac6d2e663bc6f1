package queries

import (
	"context"
	"strings"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/readmodel"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, actor shared.Actor, status string, limit int) ([]*BookingView, error)
	// ListFacility lists the bookings of the staff member's facility. Admins name the facility.
	ListFacility(ctx context.Context, actor shared.Actor, facilityID *uuid.UUID, filter readmodel.BookingFilter) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, filter readmodel.BookingFilter) ([]*readmodel.BookingRM, error)
	ListByFacility(ctx context.Context, facilityID uuid.UUID, filter readmodel.BookingFilter) ([]*readmodel.BookingRM, error)
}

type MemberViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.MemberRM, error)
}

type bookingQueries struct {
	bookings BookingViewRepo
	members  MemberViewRepo
}

func NewBookingQueries(bookings BookingViewRepo, members MemberViewRepo) BookingQueries {
	return &bookingQueries{bookings: bookings, members: members}
}

func (q *bookingQueries) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	rm, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}

	switch actor.Role {
	case user.RoleAdmin:
	case user.RoleStaff:
		facilityID, err := q.staffFacility(ctx, actor)
		if err != nil {
			return nil, err
		}
		if facilityID != rm.FacilityID {
			return nil, errs.ErrForbidden
		}
	default:
		if rm.CustomerID != actor.UserID {
			return nil, errs.ErrForbidden
		}
	}
	return toView(rm)
}

func (q *bookingQueries) ListMine(ctx context.Context, actor shared.Actor, status string, limit int) ([]*BookingView, error) {
	filter, err := normalizeFilter(readmodel.BookingFilter{Status: status, Limit: limit})
	if err != nil {
		return nil, err
	}
	rows, err := q.bookings.ListByCustomer(ctx, actor.UserID, filter)
	if err != nil {
		return nil, err
	}
	return toViews(rows)
}

func (q *bookingQueries) ListFacility(ctx context.Context, actor shared.Actor, facilityID *uuid.UUID, filter readmodel.BookingFilter) ([]*BookingView, error) {
	var target uuid.UUID
	switch actor.Role {
	case user.RoleAdmin:
		if facilityID == nil {
			return nil, errs.Mark(errs.New("facilityId is required"), errs.ErrInvalidInput)
		}
		target = *facilityID
	case user.RoleStaff:
		id, err := q.staffFacility(ctx, actor)
		if err != nil {
			return nil, err
		}
		target = id
	default:
		return nil, errs.ErrForbidden
	}

	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, errs.ErrInvalidRange
	}
	rows, err := q.bookings.ListByFacility(ctx, target, filter)
	if err != nil {
		return nil, err
	}
	return toViews(rows)
}

func (q *bookingQueries) staffFacility(ctx context.Context, actor shared.Actor) (uuid.UUID, error) {
	member, err := q.members.FindByID(ctx, actor.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrForbidden
		}
		return uuid.Nil, err
	}
	if member.FacilityID == nil {
		return uuid.Nil, errs.ErrNotAssignedFacility
	}
	return *member.FacilityID, nil
}

func normalizeFilter(f readmodel.BookingFilter) (readmodel.BookingFilter, error) {
	f.Status = strings.TrimSpace(f.Status)
	if f.Status != "" {
		s, err := booking.NewStatus(f.Status)
		if err != nil {
			return f, errs.Mark(err, errs.ErrInvalidInput)
		}
		f.Status = s.String()
	}
	f.Limit = ClampLimit(f.Limit)
	return f, nil
}

func toView(rm *readmodel.BookingRM) (*BookingView, error) {
	var view BookingView
	if err := copier.Copy(&view, rm); err != nil {
		return nil, errs.Wrap(err, "copy booking view")
	}
	return &view, nil
}

func toViews(rows []*readmodel.BookingRM) ([]*BookingView, error) {
	views := make([]*BookingView, 0, len(rows))
	for _, rm := range rows {
		v, err := toView(rm)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
