package commands

import (
	"context"
	"log/slog"

	"court-booking/internal/domain/court"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CourtCommands interface {
	UpdateStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, status string) (*court.Court, error)
}

type courtCommands struct {
	uow     shared.UnitOfWork
	refs    shared.ReferenceDataStore
	effects *shared.SideEffects
	clock   clock.Clock
	logger  *slog.Logger
}

func NewCourtCommands(uow shared.UnitOfWork, refs shared.ReferenceDataStore, effects *shared.SideEffects, clk clock.Clock, logger *slog.Logger) CourtCommands {
	return &courtCommands{uow: uow, refs: refs, effects: effects, clock: clk, logger: logger}
}

// UpdateStatus changes a court's lifecycle status. Existing bookings are kept as history.
func (uc *courtCommands) UpdateStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, rawStatus string) (*court.Court, error) {
	if !actor.IsStaff() {
		return nil, errs.ErrForbidden
	}
	status, err := court.NewStatus(rawStatus)
	if err != nil {
		return nil, shared.Classify(err)
	}

	var (
		updated *court.Court
		from    court.Status
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := lockCourt(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := authorizeFacility(ctx, tx.Reads(), actor, c.FacilityID()); err != nil {
			return err
		}
		now := uc.clock.Now()
		if err := tx.Courts().UpdateStatus(ctx, c.ID(), status, now); err != nil {
			return err
		}
		from = c.Status()
		updated = court.Reconstruct(c.ID(), c.FacilityID(), c.SportID(), c.Name(), status, now)
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	uc.refs.InvalidateCourt(ctx, id)
	uc.logger.InfoContext(ctx, "Court status changed", "court_id", id, "from", from, "to", status)
	uc.effects.RecordAudit(ctx, shared.AuditEntry{
		ActorID:    actor.UserIDPtr(),
		ActorRole:  actor.Role,
		Action:     "staff.court.status",
		Resource:   "court",
		ResourceID: id,
		Changes: map[string]any{
			"previousStatus": from,
			"nextStatus":     status,
		},
		At: updated.UpdatedAt(),
	})
	return updated, nil
}
