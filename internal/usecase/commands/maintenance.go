package commands

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/domain/maintenance"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/patch"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type MaintenanceCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateMaintenanceInput) (*maintenance.Block, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateMaintenanceInput) (*maintenance.Block, error)
	Apply(ctx context.Context, actor shared.Actor, id uuid.UUID, action string) (*maintenance.Block, error)
}

type CreateMaintenanceInput struct {
	CourtID uuid.UUID
	Range   timerange.TimeRange
	Reason  string
}

// UpdateMaintenanceInput leaves fields that are nil unchanged.
type UpdateMaintenanceInput struct {
	Start  *time.Time
	End    *time.Time
	Reason *string
}

type maintenanceCommands struct {
	uow     shared.UnitOfWork
	effects *shared.SideEffects
	clock   clock.Clock
	logger  *slog.Logger
}

func NewMaintenanceCommands(uow shared.UnitOfWork, effects *shared.SideEffects, clk clock.Clock, logger *slog.Logger) MaintenanceCommands {
	return &maintenanceCommands{uow: uow, effects: effects, clock: clk, logger: logger}
}

func (uc *maintenanceCommands) Create(ctx context.Context, actor shared.Actor, in CreateMaintenanceInput) (*maintenance.Block, error) {
	if !actor.IsStaff() {
		return nil, errs.ErrForbidden
	}
	if in.Range.IsZero() {
		return nil, errs.ErrInvalidRange
	}

	var created *maintenance.Block
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := lockCourt(ctx, tx, in.CourtID)
		if err != nil {
			return err
		}
		if err := authorizeFacility(ctx, tx.Reads(), actor, c.FacilityID()); err != nil {
			return err
		}

		avail, err := shared.CheckMaintenanceWindow(ctx, tx, c.ID(), in.Range, nil)
		if err != nil {
			return err
		}
		if !avail.Available {
			return avail.Err()
		}

		blk, err := maintenance.New(c.ID(), c.FacilityID(), actor.UserID, in.Range, in.Reason, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Maintenance().Create(ctx, blk); err != nil {
			return err
		}
		created = blk
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	uc.audit(ctx, actor, "staff.maintenance.create", created)
	return created, nil
}

func (uc *maintenanceCommands) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateMaintenanceInput) (*maintenance.Block, error) {
	if !actor.IsStaff() {
		return nil, errs.ErrForbidden
	}

	var updated *maintenance.Block
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		blk, err := tx.Maintenance().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, errs.ErrMaintenanceNotFound)
		}
		if _, err := lockCourt(ctx, tx, blk.CourtID()); err != nil {
			return err
		}
		if err := authorizeFacility(ctx, tx.Reads(), actor, blk.FacilityID()); err != nil {
			return err
		}

		next, err := timerange.New(
			patch.Coalesce(in.Start, blk.Range().Start()),
			patch.Coalesce(in.End, blk.Range().End()),
		)
		if err != nil {
			return err
		}

		if blk.Status().BlocksTimeline() {
			blockID := blk.ID()
			avail, err := shared.CheckMaintenanceWindow(ctx, tx, blk.CourtID(), next, &blockID)
			if err != nil {
				return err
			}
			if !avail.Available {
				return avail.Err()
			}
		}

		if err := blk.Reschedule(next, in.Reason, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Maintenance().Update(ctx, blk); err != nil {
			return err
		}
		updated = blk
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	uc.audit(ctx, actor, "staff.maintenance.update", updated)
	return updated, nil
}

func (uc *maintenanceCommands) Apply(ctx context.Context, actor shared.Actor, id uuid.UUID, rawAction string) (*maintenance.Block, error) {
	if !actor.IsStaff() {
		return nil, errs.ErrForbidden
	}
	action, err := maintenance.ParseAction(rawAction)
	if err != nil {
		return nil, shared.Classify(err)
	}

	var updated *maintenance.Block
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		blk, err := tx.Maintenance().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, errs.ErrMaintenanceNotFound)
		}
		if err := authorizeFacility(ctx, tx.Reads(), actor, blk.FacilityID()); err != nil {
			return err
		}
		if err := blk.Apply(action, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Maintenance().Update(ctx, blk); err != nil {
			return err
		}
		updated = blk
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	uc.audit(ctx, actor, "staff.maintenance."+string(action), updated)
	return updated, nil
}

func (uc *maintenanceCommands) audit(ctx context.Context, actor shared.Actor, action string, blk *maintenance.Block) {
	uc.logger.InfoContext(ctx, "Maintenance block changed",
		"maintenance_id", blk.ID(),
		"court_id", blk.CourtID(),
		"action", action,
		"status", blk.Status())

	uc.effects.RecordAudit(ctx, shared.AuditEntry{
		ActorID:    actor.UserIDPtr(),
		ActorRole:  actor.Role,
		Action:     action,
		Resource:   "maintenance",
		ResourceID: blk.ID(),
		Changes: map[string]any{
			"courtId": blk.CourtID().String(),
			"start":   blk.Range().Start(),
			"end":     blk.Range().End(),
			"reason":  blk.Reason(),
			"status":  blk.Status(),
		},
		At: blk.UpdatedAt(),
	})
}
