package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/matchrequest"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/obs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type BookingCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateBookingInput) (*booking.Booking, error)
	Confirm(ctx context.Context, actor shared.Actor, id uuid.UUID) (*booking.Booking, error)
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID, reason string) (*booking.Booking, error)
	Complete(ctx context.Context, actor shared.Actor, id uuid.UUID) (*booking.Booking, error)
	MarkNoShow(ctx context.Context, actor shared.Actor, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatus maps a staff-requested target status onto the transitions above.
	UpdateStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, status, reason string) (*booking.Booking, error)
}

type CreateBookingInput struct {
	// CustomerID is taken from the actor for customers and required for staff.
	CustomerID uuid.UUID
	// FacilityID and SportID default to the court's when nil.
	FacilityID     uuid.UUID
	SportID        uuid.UUID
	CourtID        uuid.UUID
	Range          timerange.TimeRange
	Currency       string
	Note           string
	MatchRequestID *uuid.UUID
	// Confirm asks for an immediately confirmed booking; only staff may.
	Confirm bool
}

type BookingSettings struct {
	PendingTimeout time.Duration
}

type bookingCommands struct {
	uow      shared.UnitOfWork
	pricing  *shared.PricingResolver
	factory  *booking.Factory
	effects  *shared.SideEffects
	clock    clock.Clock
	logger   *slog.Logger
	settings BookingSettings
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	pricing *shared.PricingResolver,
	factory *booking.Factory,
	effects *shared.SideEffects,
	clk clock.Clock,
	logger *slog.Logger,
	settings BookingSettings,
) BookingCommands {
	return &bookingCommands{
		uow:      uow,
		pricing:  pricing,
		factory:  factory,
		effects:  effects,
		clock:    clk,
		logger:   logger,
		settings: settings,
	}
}

func (uc *bookingCommands) Create(ctx context.Context, actor shared.Actor, in CreateBookingInput) (*booking.Booking, error) {
	ctx, span := obs.Tracer().Start(ctx, "BookingCommands.Create", trace.WithAttributes(
		attribute.String("court.id", in.CourtID.String()),
		attribute.String("actor.role", actor.Role.String()),
	))
	b, err := uc.create(ctx, actor, in)
	obs.EndSpan(span, err)
	return b, err
}

func (uc *bookingCommands) create(ctx context.Context, actor shared.Actor, in CreateBookingInput) (*booking.Booking, error) {
	customerID := in.CustomerID
	var staffID *uuid.UUID
	switch {
	case actor.IsStaff():
		if customerID == uuid.Nil {
			return nil, errs.Mark(errs.New("customerId is required"), errs.ErrInvalidInput)
		}
		id := actor.UserID
		staffID = &id
	case actor.Role == user.RoleCustomer:
		if customerID != uuid.Nil && customerID != actor.UserID {
			return nil, errs.ErrForbidden
		}
		customerID = actor.UserID
	default:
		return nil, errs.ErrForbidden
	}
	if in.Range.IsZero() {
		return nil, errs.ErrInvalidRange
	}

	var (
		created   *booking.Booking
		cancelled []*matchrequest.Request
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, cancelled = nil, nil

		c, err := lockCourt(ctx, tx, in.CourtID)
		if err != nil {
			return err
		}
		if staffID != nil {
			if err := authorizeFacility(ctx, tx.Reads(), actor, c.FacilityID()); err != nil {
				return err
			}
		}

		avail, err := shared.CheckAvailability(ctx, tx, c.ID(), in.Range, nil)
		if err != nil {
			return err
		}
		if !avail.Available {
			return avail.Err()
		}

		if in.MatchRequestID != nil {
			req, err := tx.MatchRequests().FindByID(ctx, *in.MatchRequestID)
			if err != nil {
				return notFoundAs(err, errs.ErrInvalidResource)
			}
			if req.CourtID != c.ID() {
				return errs.Mark(errs.New("match request is for another court"), errs.ErrInvalidResource)
			}
		}

		pc, err := uc.pricing.Resolve(ctx, tx.Reads(), shared.PricingRequest{
			Court:      c,
			CustomerID: &customerID,
			Currency:   in.Currency,
		})
		if err != nil {
			return err
		}

		facilityID, sportID := in.FacilityID, in.SportID
		if facilityID == uuid.Nil {
			facilityID = c.FacilityID()
		}
		if sportID == uuid.Nil {
			sportID = c.SportID()
		}

		b, err := uc.factory.Create(booking.CreateInput{
			Court:          c,
			FacilityID:     facilityID,
			SportID:        sportID,
			CustomerID:     customerID,
			StaffID:        staffID,
			MatchRequestID: in.MatchRequestID,
			Range:          in.Range,
			Note:           in.Note,
			Confirm:        in.Confirm,
			Profile:        pc.Profile,
			Location:       pc.Location,
			Currency:       pc.Currency,
			Tier:           pc.Tier,
		})
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}

		cancelled, err = reconcileMatchRequests(ctx, tx, b, b.CreatedAt(), true)
		if err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	action := "booking.create"
	if staffID != nil {
		action = "staff.booking.create"
	}
	uc.logger.InfoContext(ctx, "Booking created",
		"booking_id", created.ID(),
		"court_id", created.CourtID(),
		"status", created.Status(),
		"total", created.Quote().Total)

	uc.effects.RecordAudit(ctx, shared.AuditEntry{
		ActorID:    actor.UserIDPtr(),
		ActorRole:  actor.Role,
		Action:     action,
		Resource:   "booking",
		ResourceID: created.ID(),
		Changes: map[string]any{
			"status":   created.Status(),
			"courtId":  created.CourtID().String(),
			"start":    created.Range().Start(),
			"end":      created.Range().End(),
			"total":    created.Quote().Total,
			"currency": created.Quote().Currency,
		},
		At: created.CreatedAt(),
	})
	uc.effects.Notify(ctx, bookingEvent(shared.EventBookingCreated, created, created.CreatedAt()))
	if created.Status() == booking.StatusConfirmed {
		uc.effects.EnsureInvoice(ctx, created)
	}
	uc.notifyCancelledRequests(ctx, cancelled, created)

	return created, nil
}

func (uc *bookingCommands) Confirm(ctx context.Context, actor shared.Actor, id uuid.UUID) (*booking.Booking, error) {
	if !actor.IsStaff() {
		return nil, errs.ErrForbidden
	}
	res, err := uc.transition(ctx, "BookingCommands.Confirm", actor, id, true, func(b *booking.Booking, now time.Time) (bool, error) {
		return true, b.Confirm(now)
	})
	if err != nil {
		return nil, err
	}

	if res.changed {
		uc.afterTransition(ctx, actor, res, "booking.confirm", shared.EventBookingConfirmed)
		uc.effects.EnsureInvoice(ctx, res.booking)
	}
	return res.booking, nil
}

func (uc *bookingCommands) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID, reason string) (*booking.Booking, error) {
	reason = strings.TrimSpace(reason)
	res, err := uc.transition(ctx, "BookingCommands.Cancel", actor, id, false, func(b *booking.Booking, now time.Time) (bool, error) {
		return b.Cancel(uc.cancellationFor(actor, reason, now))
	})
	if err != nil {
		return nil, err
	}

	if res.changed {
		action, event := "booking.cancel", shared.EventBookingCancelled
		if actor.IsSystem() {
			action, event = "booking.auto-cancel", shared.EventBookingAutoCancelled
		}
		uc.afterTransition(ctx, actor, res, action, event)
		c := res.booking.Cancellation()
		uc.effects.VoidInvoice(ctx, res.booking.ID(), c.InvoiceVoidReason(), c.At)
	}
	return res.booking, nil
}

func (uc *bookingCommands) Complete(ctx context.Context, actor shared.Actor, id uuid.UUID) (*booking.Booking, error) {
	if !actor.IsStaff() {
		return nil, errs.ErrForbidden
	}
	res, err := uc.transition(ctx, "BookingCommands.Complete", actor, id, false, func(b *booking.Booking, now time.Time) (bool, error) {
		return true, b.Complete(now)
	})
	if err != nil {
		return nil, err
	}
	uc.afterTransition(ctx, actor, res, "booking.complete", shared.EventBookingCompleted)
	return res.booking, nil
}

func (uc *bookingCommands) MarkNoShow(ctx context.Context, actor shared.Actor, id uuid.UUID) (*booking.Booking, error) {
	if !actor.IsStaff() {
		return nil, errs.ErrForbidden
	}
	res, err := uc.transition(ctx, "BookingCommands.MarkNoShow", actor, id, false, func(b *booking.Booking, now time.Time) (bool, error) {
		return true, b.MarkNoShow(now)
	})
	if err != nil {
		return nil, err
	}
	uc.afterTransition(ctx, actor, res, "booking.no-show", shared.EventBookingNoShow)
	return res.booking, nil
}

func (uc *bookingCommands) UpdateStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, status, reason string) (*booking.Booking, error) {
	target, err := booking.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	switch target {
	case booking.StatusConfirmed:
		return uc.Confirm(ctx, actor, id)
	case booking.StatusCancelled:
		return uc.Cancel(ctx, actor, id, reason)
	case booking.StatusCompleted:
		return uc.Complete(ctx, actor, id)
	case booking.StatusNoShow:
		return uc.MarkNoShow(ctx, actor, id)
	default:
		return nil, errs.Mark(errs.Newf("cannot move a booking to %s", target), errs.ErrInvalidTransition)
	}
}

type transitionResult struct {
	booking   *booking.Booking
	from      booking.Status
	changed   bool
	cancelled []*matchrequest.Request
}

// transition loads the booking, applies mutate and writes it back conditionally on the status
// it was loaded with. Losing that race yields errs.ErrStaleTransition.
func (uc *bookingCommands) transition(
	ctx context.Context,
	span string,
	actor shared.Actor,
	id uuid.UUID,
	cancelOverlaps bool,
	mutate func(b *booking.Booking, now time.Time) (bool, error),
) (transitionResult, error) {
	ctx, s := obs.Tracer().Start(ctx, span, trace.WithAttributes(
		attribute.String("booking.id", id.String()),
		attribute.String("actor.role", actor.Role.String()),
	))

	var res transitionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res = transitionResult{}

		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, errs.ErrBookingNotFound)
		}
		if err := authorizeBooking(ctx, tx.Reads(), actor, b); err != nil {
			return err
		}

		now := uc.clock.Now()
		from := b.Status()
		changed, err := mutate(b, now)
		if err != nil {
			if lostRace(err, from, actor) {
				return errs.Mark(err, errs.ErrStaleTransition)
			}
			return err
		}
		res.booking, res.from = b, from
		if !changed {
			return nil
		}

		ok, err := tx.Bookings().Transition(ctx, b, from)
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrStaleTransition
		}

		res.cancelled, err = reconcileMatchRequests(ctx, tx, b, now, cancelOverlaps)
		if err != nil {
			return err
		}
		res.changed = true
		return nil
	})
	err = shared.Classify(err)
	obs.EndSpan(s, err)
	if err != nil {
		return transitionResult{}, err
	}
	return res, nil
}

// lostRace reports whether a rejected transition means another writer moved the booking
// first: it was cancelled under us, or the sweeper found it no longer pending.
func lostRace(err error, from booking.Status, actor shared.Actor) bool {
	if !errs.Is(err, booking.ErrInvalidTransition) {
		return false
	}
	return from == booking.StatusCancelled || actor.IsSystem()
}

func (uc *bookingCommands) cancellationFor(actor shared.Actor, reason string, now time.Time) booking.Cancellation {
	switch {
	case actor.IsSystem():
		return booking.TimeoutCancellation(uc.settings.PendingTimeout, now)
	case actor.IsStaff():
		return booking.StaffCancellation(actor.UserID, actor.Role, reason, now)
	default:
		return booking.CustomerCancellation(actor.UserID, reason, now)
	}
}

func (uc *bookingCommands) afterTransition(ctx context.Context, actor shared.Actor, res transitionResult, action, eventType string) {
	if !res.changed {
		return
	}
	b := res.booking

	uc.logger.InfoContext(ctx, "Booking status changed",
		"booking_id", b.ID(),
		"from", res.from,
		"to", b.Status(),
		"actor_role", actor.Role)

	changes := map[string]any{
		"previousStatus": res.from,
		"nextStatus":     b.Status(),
	}
	if c := b.Cancellation(); c != nil {
		changes["cancelReasonCode"] = c.ReasonCode
		changes["cancelledByRole"] = c.Role
	}
	uc.effects.RecordAudit(ctx, shared.AuditEntry{
		ActorID:    actor.UserIDPtr(),
		ActorRole:  actor.Role,
		Action:     action,
		Resource:   "booking",
		ResourceID: b.ID(),
		Changes:    changes,
		At:         b.UpdatedAt(),
	})
	uc.effects.Notify(ctx, bookingEvent(eventType, b, b.UpdatedAt()))
	uc.notifyCancelledRequests(ctx, res.cancelled, b)
}

func bookingEvent(eventType string, b *booking.Booking, at time.Time) shared.Event {
	data := map[string]any{
		"bookingId":  b.ID().String(),
		"courtId":    b.CourtID().String(),
		"facilityId": b.FacilityID().String(),
		"status":     b.Status(),
		"start":      b.Range().Start(),
		"end":        b.Range().End(),
		"total":      b.Quote().Total,
		"currency":   b.Quote().Currency,
	}
	if c := b.Cancellation(); c != nil {
		data["cancelReasonCode"] = c.ReasonCode
	}
	return shared.Event{
		Type:       eventType,
		ResourceID: b.ID(),
		Recipients: []uuid.UUID{b.CustomerID()},
		Data:       data,
		OccurredAt: at,
	}
}
