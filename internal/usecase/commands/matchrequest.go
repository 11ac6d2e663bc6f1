package commands

import (
	"context"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/matchrequest"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// reconcileMatchRequests keeps match requests consistent with b inside the admission
// transaction. With cancelOverlaps set, open requests on the court that b now overlaps are
// cancelled and returned. The request b was booked for, if any, mirrors b's new state.
func reconcileMatchRequests(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time, cancelOverlaps bool) ([]*matchrequest.Request, error) {
	var cancelled []*matchrequest.Request

	if cancelOverlaps && b.Status().BlocksTimeline() {
		open, err := tx.MatchRequests().FindOpenOverlapping(ctx, b.CourtID(), b.Range())
		if err != nil {
			return nil, errs.Wrap(err, "find overlapping match requests")
		}
		for _, req := range open {
			if !req.ConflictsWith(b) {
				continue
			}
			req.CancelForOverlap(b.ID(), now)
			if err := tx.MatchRequests().Save(ctx, req); err != nil {
				return nil, errs.Wrap(err, "cancel overlapping match request")
			}
			cancelled = append(cancelled, req)
		}
	}

	linkedID := b.MatchRequestID()
	if linkedID == nil {
		return cancelled, nil
	}
	linked, err := tx.MatchRequests().FindByID(ctx, *linkedID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return cancelled, nil
		}
		return nil, errs.Wrap(err, "load linked match request")
	}
	linked.SyncWithBooking(b, now)
	if err := tx.MatchRequests().Save(ctx, linked); err != nil {
		return nil, errs.Wrap(err, "sync linked match request")
	}
	return cancelled, nil
}

func (uc *bookingCommands) notifyCancelledRequests(ctx context.Context, cancelled []*matchrequest.Request, b *booking.Booking) {
	for _, req := range cancelled {
		uc.effects.Notify(ctx, shared.Event{
			Type:       shared.EventMatchRequestCancelled,
			ResourceID: req.ID,
			Recipients: []uuid.UUID{req.CreatorID},
			Data: map[string]any{
				"reason":     matchrequest.ReasonOverlappedBooking,
				"bookingId":  b.ID().String(),
				"courtId":    req.CourtID.String(),
				"startsAt":   req.Desired.Start(),
				"endsAt":     req.Desired.End(),
				"cancelCode": req.CancelReasonCode,
			},
			OccurredAt: req.UpdatedAt,
		})
	}
}
