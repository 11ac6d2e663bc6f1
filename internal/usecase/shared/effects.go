package shared

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/user"

	"github.com/google/uuid"
)

type AuditEntry struct {
	ActorID    *uuid.UUID
	ActorRole  user.Role
	Action     string
	Resource   string
	ResourceID uuid.UUID
	Changes    map[string]any
	At         time.Time
}

type Event struct {
	Type       string
	ResourceID uuid.UUID
	Recipients []uuid.UUID
	Data       map[string]any
	OccurredAt time.Time
}

const (
	EventBookingCreated        = "booking.created"
	EventBookingConfirmed      = "booking.confirmed"
	EventBookingCancelled      = "booking.cancelled"
	EventBookingAutoCancelled  = "booking.auto_cancelled"
	EventBookingCompleted      = "booking.completed"
	EventBookingNoShow         = "booking.no_show"
	EventMatchRequestCancelled = "match_request.cancelled"
)

type AuditSink interface {
	Record(ctx context.Context, entry AuditEntry) error
}

type Notifier interface {
	Publish(ctx context.Context, event Event) error
}

type InvoiceService interface {
	Ensure(ctx context.Context, b *booking.Booking) error
	Void(ctx context.Context, bookingID uuid.UUID, reason string, at time.Time) error
}

// SideEffects groups the collaborators invoked after a transition commits. None of them can
// fail the transition.
type SideEffects struct {
	Audit    AuditSink
	Notifier Notifier
	Invoices InvoiceService
	Logger   *slog.Logger
}

func NewSideEffects(audit AuditSink, notifier Notifier, invoices InvoiceService, logger *slog.Logger) *SideEffects {
	return &SideEffects{
		Audit:    audit,
		Notifier: notifier,
		Invoices: invoices,
		Logger:   logger,
	}
}

// BestEffort runs fn detached from ctx's cancellation, logging errors and recovered panics.
func (s *SideEffects) BestEffort(ctx context.Context, name string, fn func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	defer func() {
		if r := recover(); r != nil {
			s.Logger.ErrorContext(ctx, "side effect panicked", "effect", name, "panic", fmt.Sprint(r))
		}
	}()
	if err := fn(ctx); err != nil {
		s.Logger.WarnContext(ctx, "side effect failed", "effect", name, "error", err.Error())
	}
}

func (s *SideEffects) RecordAudit(ctx context.Context, entry AuditEntry) {
	if s.Audit == nil {
		return
	}
	s.BestEffort(ctx, "audit:"+entry.Action, func(ctx context.Context) error {
		return s.Audit.Record(ctx, entry)
	})
}

func (s *SideEffects) Notify(ctx context.Context, event Event) {
	if s.Notifier == nil {
		return
	}
	s.BestEffort(ctx, "notify:"+event.Type, func(ctx context.Context) error {
		return s.Notifier.Publish(ctx, event)
	})
}

func (s *SideEffects) EnsureInvoice(ctx context.Context, b *booking.Booking) {
	if s.Invoices == nil {
		return
	}
	s.BestEffort(ctx, "invoice:ensure", func(ctx context.Context) error {
		return s.Invoices.Ensure(ctx, b)
	})
}

func (s *SideEffects) VoidInvoice(ctx context.Context, bookingID uuid.UUID, reason string, at time.Time) {
	if s.Invoices == nil {
		return
	}
	s.BestEffort(ctx, "invoice:void", func(ctx context.Context) error {
		return s.Invoices.Void(ctx, bookingID, reason, at)
	})
}
