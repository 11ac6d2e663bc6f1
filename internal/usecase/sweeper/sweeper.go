package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/obs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type bookingCanceller interface {
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID, reason string) (*booking.Booking, error)
}

type Settings struct {
	Interval time.Duration
	// Timeout <= 0 disables sweeping.
	Timeout   time.Duration
	BatchSize int
}

type Result struct {
	Scanned   int
	Cancelled int
	Lost      int
	Failed    int
}

// Sweeper cancels pending bookings whose start is at least Timeout in the past, through the
// same cancellation path a staff member would use, as the system actor.
type Sweeper struct {
	uow       shared.UnitOfWork
	canceller bookingCanceller
	clock     clock.Clock
	settings  Settings
	logger    *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(uow shared.UnitOfWork, canceller bookingCanceller, clk clock.Clock, settings Settings, logger *slog.Logger) *Sweeper {
	if settings.BatchSize <= 0 {
		settings.BatchSize = 100
	}
	if settings.Interval <= 0 {
		settings.Interval = time.Minute
	}
	return &Sweeper{
		uow:       uow,
		canceller: canceller,
		clock:     clk,
		settings:  settings,
		logger:    logger,
	}
}

func (s *Sweeper) Enabled() bool {
	return s.settings.Timeout > 0
}

// Start launches the sweep loop in the background. It is a no-op when disabled or running.
func (s *Sweeper) Start(ctx context.Context) {
	if !s.Enabled() {
		s.logger.Info("booking sweeper disabled", "timeout", s.settings.Timeout)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		s.run(runCtx)
	}()
}

// Stop ends the loop and waits for an in-flight sweep, or until ctx expires.
func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.settings.Interval)
	defer ticker.Stop()

	s.logger.Info("booking sweeper started",
		"interval", s.settings.Interval,
		"timeout", s.settings.Timeout,
		"batch_size", s.settings.BatchSize)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("booking sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("booking sweep failed", "error", err.Error())
			}
		}
	}
}

// RunOnce performs a single sweep. Individual cancellation failures are logged and counted
// without stopping the batch.
func (s *Sweeper) RunOnce(ctx context.Context) (Result, error) {
	var res Result
	if !s.Enabled() {
		return res, nil
	}

	ctx, span := obs.Tracer().Start(ctx, "Sweeper.RunOnce")
	var err error
	defer func() {
		span.SetAttributes(
			attribute.Int("sweep.scanned", res.Scanned),
			attribute.Int("sweep.cancelled", res.Cancelled),
			attribute.Int("sweep.lost", res.Lost),
			attribute.Int("sweep.failed", res.Failed),
		)
		obs.EndSpan(span, err)
	}()

	cutoff := s.clock.Now().Add(-s.settings.Timeout)

	var stale []*booking.Booking
	err = s.uow.ReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var lerr error
		stale, lerr = tx.Bookings().ListStalePending(ctx, cutoff, s.settings.BatchSize)
		return lerr
	})
	if err != nil {
		err = errs.Wrap(err, "list stale pending bookings")
		return res, err
	}

	res.Scanned = len(stale)
	s.logger.Debug("booking sweep", "cutoff", cutoff, "candidates", len(stale))

	for _, b := range stale {
		if ctx.Err() != nil {
			break
		}
		got, cerr := s.canceller.Cancel(ctx, shared.SystemActor(), b.ID(), "")
		switch {
		case cerr == nil && !autoCancelled(got):
			// someone else cancelled it after the scan; Cancel was a no-op
			res.Lost++
			s.logger.Debug("pending booking cancelled before auto-cancel", "booking_id", b.ID())
		case cerr == nil:
			res.Cancelled++
			s.logger.Info("pending booking auto-cancelled",
				"booking_id", b.ID(),
				"court_id", b.CourtID(),
				"start", b.Range().Start())
		case errs.Is(cerr, errs.ErrStaleTransition):
			res.Lost++
			s.logger.Debug("pending booking changed before auto-cancel", "booking_id", b.ID())
		default:
			res.Failed++
			s.logger.Warn("failed to auto-cancel pending booking",
				"booking_id", b.ID(),
				"error", cerr.Error())
		}
	}
	return res, nil
}

func autoCancelled(b *booking.Booking) bool {
	if b == nil || b.Cancellation() == nil {
		return false
	}
	return b.Cancellation().ReasonCode == booking.ReasonAutoPendingTimeout
}
