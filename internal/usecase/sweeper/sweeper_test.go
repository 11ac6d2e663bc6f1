//go:build unit

package sweeper_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/shared"
	"court-booking/internal/usecase/sweeper"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = builder.At(2025, time.June, 2, 9, 0)

const timeout = 10 * time.Minute

type env struct {
	store    *memstore.Store
	effects  *memstore.Recorder
	clock    *clock.MockClock
	court    *builder.CourtBuilder
	bookings commands.BookingCommands
	staff    shared.Actor
	sweeper  *sweeper.Sweeper
}

func newEnv(settings sweeper.Settings) *env {
	store := memstore.New()
	rec := memstore.NewRecorder()
	clk := clock.NewMockClock(anchor)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cb := builder.NewCourtBuilder()
	store.AddCourt(cb.BuildDomain())
	facilityID := cb.FacilityID
	staff := user.Member{ID: uuid.New(), Role: user.RoleStaff, FacilityID: &facilityID}
	store.AddMember(staff)

	effects := shared.NewSideEffects(rec, rec, rec, logger)
	calc := pricing.NewDefaultCalculator()
	bookings := commands.NewBookingCommands(store,
		shared.NewPricingResolver(store, clk, "VND", time.UTC),
		booking.NewFactory(clk, calc),
		effects, clk, logger,
		commands.BookingSettings{PendingTimeout: settings.Timeout})

	return &env{
		store:    store,
		effects:  rec,
		clock:    clk,
		court:    cb,
		bookings: bookings,
		staff:    shared.Actor{UserID: staff.ID, Role: user.RoleStaff},
		sweeper:  sweeper.New(store, bookings, clk, settings, logger),
	}
}

func (e *env) pending(start time.Time) *booking.Booking {
	b := builder.NewBookingBuilder().OnCourt(e.court).With(func(b *builder.BookingBuilder) {
		b.Range = builder.Range(start, time.Hour)
		b.CreatedAt = anchor.Add(-time.Hour)
	}).BuildDomain()
	e.store.AddBooking(b)
	return b
}

func TestSweeper_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels pending bookings past the timeout", func(t *testing.T) {
		e := newEnv(sweeper.Settings{Timeout: timeout})
		stale := e.pending(anchor.Add(-15 * time.Minute))
		fresh := e.pending(anchor.Add(-5 * time.Minute))
		future := e.pending(anchor.Add(time.Hour))

		res, err := e.sweeper.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, sweeper.Result{Scanned: 1, Cancelled: 1}, res)

		got, _ := e.store.Booking(stale.ID())
		assert.Equal(t, booking.StatusCancelled, got.Status())
		require.NotNil(t, got.Cancellation())
		assert.Equal(t, booking.ReasonAutoPendingTimeout, got.Cancellation().ReasonCode)
		assert.Equal(t, user.RoleSystem, got.Cancellation().Role)
		assert.Nil(t, got.Cancellation().UserID)

		for _, id := range []uuid.UUID{fresh.ID(), future.ID()} {
			b, _ := e.store.Booking(id)
			assert.Equal(t, booking.StatusPending, b.Status())
		}

		assert.Equal(t, []string{shared.EventBookingAutoCancelled}, e.effects.EventTypes())
		require.Len(t, e.effects.Audits(), 1)
		assert.Equal(t, "booking.auto-cancel", e.effects.Audits()[0].Action)
		assert.Nil(t, e.effects.Audits()[0].ActorID)
		require.Len(t, e.effects.Voided(), 1)
		assert.Equal(t, booking.InvoiceVoidSystem, e.effects.Voided()[0].Reason)
	})

	t.Run("exactly at the timeout boundary", func(t *testing.T) {
		e := newEnv(sweeper.Settings{Timeout: timeout})
		b := e.pending(anchor.Add(-timeout))

		res, err := e.sweeper.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Cancelled)

		got, _ := e.store.Booking(b.ID())
		assert.Equal(t, booking.StatusCancelled, got.Status())
	})

	t.Run("confirmed bookings are left alone", func(t *testing.T) {
		e := newEnv(sweeper.Settings{Timeout: timeout})
		b := e.pending(anchor.Add(-time.Hour))
		e.store.SetBookingStatus(b.ID(), booking.StatusConfirmed)

		res, err := e.sweeper.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Scanned)
	})

	t.Run("batch size bounds a sweep", func(t *testing.T) {
		e := newEnv(sweeper.Settings{Timeout: timeout, BatchSize: 2})
		for i := 0; i < 3; i++ {
			e.pending(anchor.Add(-time.Duration(i+1) * time.Hour))
		}

		res, err := e.sweeper.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Cancelled)

		res, err = e.sweeper.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Cancelled)
	})

	t.Run("disabled sweeper does nothing", func(t *testing.T) {
		e := newEnv(sweeper.Settings{Timeout: 0})
		b := e.pending(anchor.Add(-time.Hour))

		assert.False(t, e.sweeper.Enabled())
		res, err := e.sweeper.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, sweeper.Result{}, res)

		got, _ := e.store.Booking(b.ID())
		assert.Equal(t, booking.StatusPending, got.Status())
	})
}

// A customer books, nobody confirms it, the sweeper cancels it, then staff try to confirm.
func TestSweeper_StaffConfirmAfterAutoCancel(t *testing.T) {
	ctx := context.Background()
	e := newEnv(sweeper.Settings{Timeout: timeout})
	customer := user.Member{ID: uuid.New(), Role: user.RoleCustomer}
	e.store.AddMember(customer)

	start := anchor.Add(time.Hour)
	b, err := e.bookings.Create(ctx, shared.Actor{UserID: customer.ID, Role: user.RoleCustomer}, commands.CreateBookingInput{
		CourtID: e.court.ID,
		Range:   builder.Range(start, time.Hour),
	})
	require.NoError(t, err)

	e.clock.Set(start.Add(15 * time.Minute))
	res, err := e.sweeper.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Cancelled)

	_, err = e.bookings.Confirm(ctx, e.staff, b.ID())
	require.ErrorIs(t, err, errs.ErrStaleTransition)

	got, _ := e.store.Booking(b.ID())
	assert.Equal(t, booking.StatusCancelled, got.Status())
	assert.Equal(t, booking.ReasonAutoPendingTimeout, got.Cancellation().ReasonCode)
}

// cancelFunc lets a test interpose on the sweeper's cancellation path.
type cancelFunc func(ctx context.Context, actor shared.Actor, id uuid.UUID, reason string) (*booking.Booking, error)

func (f cancelFunc) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID, reason string) (*booking.Booking, error) {
	return f(ctx, actor, id, reason)
}

func (e *env) sweeperWith(canceller cancelFunc) *sweeper.Sweeper {
	return sweeper.New(e.store, canceller, e.clock, sweeper.Settings{Timeout: timeout},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSweeper_FailureDoesNotStopBatch(t *testing.T) {
	ctx := context.Background()
	e := newEnv(sweeper.Settings{Timeout: timeout})
	broken := e.pending(anchor.Add(-2 * time.Hour))
	healthy := e.pending(anchor.Add(-time.Hour))

	s := e.sweeperWith(func(ctx context.Context, actor shared.Actor, id uuid.UUID, reason string) (*booking.Booking, error) {
		if id == broken.ID() {
			return nil, errors.New("connection reset")
		}
		return e.bookings.Cancel(ctx, actor, id, reason)
	})

	res, err := s.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, sweeper.Result{Scanned: 2, Cancelled: 1, Failed: 1}, res)

	got, _ := e.store.Booking(healthy.ID())
	assert.Equal(t, booking.StatusCancelled, got.Status())
	got, _ = e.store.Booking(broken.ID())
	assert.Equal(t, booking.StatusPending, got.Status())
}

// Staff act on the booking between the scan and the system cancel.
func TestSweeper_StaffActsAfterScan(t *testing.T) {
	ctx := context.Background()

	t.Run("staff confirm wins", func(t *testing.T) {
		e := newEnv(sweeper.Settings{Timeout: timeout})
		b := e.pending(anchor.Add(-time.Hour))

		s := e.sweeperWith(func(ctx context.Context, actor shared.Actor, id uuid.UUID, reason string) (*booking.Booking, error) {
			_, err := e.bookings.Confirm(ctx, e.staff, id)
			require.NoError(t, err)
			return e.bookings.Cancel(ctx, actor, id, reason)
		})

		res, err := s.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, sweeper.Result{Scanned: 1, Lost: 1}, res)

		got, _ := e.store.Booking(b.ID())
		assert.Equal(t, booking.StatusConfirmed, got.Status())
		assert.Nil(t, got.Cancellation())
	})

	t.Run("staff cancel wins", func(t *testing.T) {
		e := newEnv(sweeper.Settings{Timeout: timeout})
		b := e.pending(anchor.Add(-time.Hour))

		s := e.sweeperWith(func(ctx context.Context, actor shared.Actor, id uuid.UUID, reason string) (*booking.Booking, error) {
			_, err := e.bookings.Cancel(ctx, e.staff, id, "court closed")
			require.NoError(t, err)
			return e.bookings.Cancel(ctx, actor, id, reason)
		})

		res, err := s.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, sweeper.Result{Scanned: 1, Lost: 1}, res)

		got, _ := e.store.Booking(b.ID())
		assert.Equal(t, booking.StatusCancelled, got.Status())
		assert.Equal(t, booking.ReasonStaffCancel, got.Cancellation().ReasonCode)
		assert.NotContains(t, e.effects.EventTypes(), shared.EventBookingAutoCancelled)
	})
}

func TestSweeper_StartStop(t *testing.T) {
	e := newEnv(sweeper.Settings{Timeout: timeout, Interval: 5 * time.Millisecond})
	b := e.pending(anchor.Add(-time.Hour))

	e.sweeper.Start(context.Background())
	e.sweeper.Start(context.Background())

	require.Eventually(t, func() bool {
		got, _ := e.store.Booking(b.ID())
		return got.Status() == booking.StatusCancelled
	}, time.Second, 5*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, e.sweeper.Stop(stopCtx))
	require.NoError(t, e.sweeper.Stop(stopCtx))
}
