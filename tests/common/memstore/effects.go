//go:build unit

package memstore

import (
	"context"
	"sync"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type VoidCall struct {
	BookingID uuid.UUID
	Reason    string
	At        time.Time
}

// Recorder captures side effects. It implements shared.AuditSink, shared.Notifier and
// shared.InvoiceService.
type Recorder struct {
	mu      sync.Mutex
	audits  []shared.AuditEntry
	events  []shared.Event
	ensured []uuid.UUID
	voided  []VoidCall

	// Fail makes every call return this error.
	Fail error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Record(_ context.Context, entry shared.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.audits = append(r.audits, entry)
	return nil
}

func (r *Recorder) Publish(_ context.Context, event shared.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Ensure(_ context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.ensured = append(r.ensured, b.ID())
	return nil
}

func (r *Recorder) Void(_ context.Context, bookingID uuid.UUID, reason string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.voided = append(r.voided, VoidCall{BookingID: bookingID, Reason: reason, At: at})
	return nil
}

func (r *Recorder) Audits() []shared.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]shared.AuditEntry(nil), r.audits...)
}

func (r *Recorder) Events() []shared.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]shared.Event(nil), r.events...)
}

// EventTypes lists published event types in order.
func (r *Recorder) EventTypes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func (r *Recorder) Ensured() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.ensured...)
}

func (r *Recorder) Voided() []VoidCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]VoidCall(nil), r.voided...)
}
