package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/pgconv"
	"court-booking/internal/usecase/shared"
)

const defaultQueueSize = 256

type auditWriter interface {
	InsertAuditLog(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAuditLogParams) error
}

// Dispatcher queues audit entries and writes them from a single worker. A full queue drops
// the entry instead of blocking the request.
type Dispatcher struct {
	queries auditWriter
	db      sqlc.DBTX
	logger  *slog.Logger
	queue   chan shared.AuditEntry

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(queries auditWriter, db sqlc.DBTX, logger *slog.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = defaultQueueSize
	}
	d := &Dispatcher{
		queries: queries,
		db:      db,
		logger:  logger,
		queue:   make(chan shared.AuditEntry, size),
		done:    make(chan struct{}),
	}
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for entry := range d.queue {
		if err := d.write(context.Background(), entry); err != nil {
			d.logger.Error("audit write failed",
				"action", entry.Action,
				"resourceId", entry.ResourceID.String(),
				"error", err.Error(),
			)
		}
	}
}

// Record implements shared.AuditSink. It never blocks.
func (d *Dispatcher) Record(ctx context.Context, entry shared.AuditEntry) error {
	select {
	case d.queue <- entry:
		return nil
	default:
		d.logger.WarnContext(ctx, "audit queue full, dropping entry", "action", entry.Action)
		return nil
	}
}

// Close stops accepting entries and waits for queued ones to be written, or for ctx.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() { close(d.queue) })
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) write(ctx context.Context, entry shared.AuditEntry) error {
	changes := []byte("{}")
	if len(entry.Changes) > 0 {
		b, err := json.Marshal(entry.Changes)
		if err != nil {
			return errs.Wrap(err, "marshal audit changes")
		}
		changes = b
	}
	err := d.queries.InsertAuditLog(ctx, d.db, sqlc.InsertAuditLogParams{
		ActorID:    pgconv.UUIDPtrToPgtype(entry.ActorID),
		ActorRole:  string(entry.ActorRole),
		Action:     entry.Action,
		Resource:   entry.Resource,
		ResourceID: entry.ResourceID,
		Changes:    changes,
		CreatedAt:  pgconv.TimeToPgtype(entry.At),
	})
	if err != nil {
		return errs.Wrap(err, "insert audit log")
	}
	return nil
}
