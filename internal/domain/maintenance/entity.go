package maintenance

import (
	"errors"
	"strings"
	"time"

	"court-booking/internal/domain/timerange"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid maintenance status")
	ErrUnsupportedAction = errors.New("unsupported maintenance action")
	ErrInvalidTransition = errors.New("maintenance status transition not allowed")
)

const DefaultReason = "Maintenance"

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// BlocksTimeline is true for every status but cancelled.
func (s Status) BlocksTimeline() bool {
	return s != StatusCancelled
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Action string

const (
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

// ParseAction accepts the verb or the resulting status name ("completed", "cancelled").
func ParseAction(raw string) (Action, error) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "start":
		return ActionStart, nil
	case "complete", "completed":
		return ActionComplete, nil
	case "cancel", "cancelled":
		return ActionCancel, nil
	default:
		return "", ErrUnsupportedAction
	}
}

type Block struct {
	id               uuid.UUID
	courtID          uuid.UUID
	facilityID       uuid.UUID
	timeRange        timerange.TimeRange
	reason           string
	status           Status
	createdByStaffID uuid.UUID
	startedAt        *time.Time
	completedAt      *time.Time
	cancelledAt      *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func New(courtID, facilityID, staffID uuid.UUID, r timerange.TimeRange, reason string, now time.Time) (*Block, error) {
	if r.IsZero() {
		return nil, timerange.ErrInvalidRange
	}
	return &Block{
		id:               uuid.New(),
		courtID:          courtID,
		facilityID:       facilityID,
		timeRange:        r,
		reason:           normalizeReason(reason),
		status:           StatusScheduled,
		createdByStaffID: staffID,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

type Snapshot struct {
	ID               uuid.UUID
	CourtID          uuid.UUID
	FacilityID       uuid.UUID
	Range            timerange.TimeRange
	Reason           string
	Status           Status
	CreatedByStaffID uuid.UUID
	StartedAt        *time.Time
	CompletedAt      *time.Time
	CancelledAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func Reconstruct(s Snapshot) *Block {
	return &Block{
		id:               s.ID,
		courtID:          s.CourtID,
		facilityID:       s.FacilityID,
		timeRange:        s.Range,
		reason:           s.Reason,
		status:           s.Status,
		createdByStaffID: s.CreatedByStaffID,
		startedAt:        s.StartedAt,
		completedAt:      s.CompletedAt,
		cancelledAt:      s.CancelledAt,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
	}
}

func (b *Block) Snapshot() Snapshot {
	return Snapshot{
		ID:               b.id,
		CourtID:          b.courtID,
		FacilityID:       b.facilityID,
		Range:            b.timeRange,
		Reason:           b.reason,
		Status:           b.status,
		CreatedByStaffID: b.createdByStaffID,
		StartedAt:        b.startedAt,
		CompletedAt:      b.completedAt,
		CancelledAt:      b.cancelledAt,
		CreatedAt:        b.createdAt,
		UpdatedAt:        b.updatedAt,
	}
}

// Reschedule moves or re-describes a block that is not yet finished. A nil reason keeps the current one.
func (b *Block) Reschedule(r timerange.TimeRange, reason *string, now time.Time) error {
	if b.status.IsTerminal() {
		return ErrInvalidTransition
	}
	if r.IsZero() {
		return timerange.ErrInvalidRange
	}
	b.timeRange = r
	if reason != nil {
		b.reason = normalizeReason(*reason)
	}
	b.updatedAt = now
	return nil
}

func (b *Block) Apply(action Action, now time.Time) error {
	switch action {
	case ActionStart:
		if b.status != StatusScheduled {
			return ErrInvalidTransition
		}
		b.status = StatusInProgress
		b.startedAt = &now
	case ActionComplete:
		if b.status.IsTerminal() {
			return ErrInvalidTransition
		}
		b.status = StatusCompleted
		b.completedAt = &now
	case ActionCancel:
		if b.status.IsTerminal() {
			return ErrInvalidTransition
		}
		b.status = StatusCancelled
		b.cancelledAt = &now
	default:
		return ErrUnsupportedAction
	}
	b.updatedAt = now
	return nil
}

func normalizeReason(reason string) string {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return DefaultReason
	}
	return reason
}

func (b *Block) ID() uuid.UUID               { return b.id }
func (b *Block) CourtID() uuid.UUID          { return b.courtID }
func (b *Block) FacilityID() uuid.UUID       { return b.facilityID }
func (b *Block) Range() timerange.TimeRange  { return b.timeRange }
func (b *Block) Reason() string              { return b.reason }
func (b *Block) Status() Status              { return b.status }
func (b *Block) CreatedByStaffID() uuid.UUID { return b.createdByStaffID }
func (b *Block) UpdatedAt() time.Time        { return b.updatedAt }
