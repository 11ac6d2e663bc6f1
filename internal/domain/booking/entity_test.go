//go:build unit

package booking_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/clock"
	"court-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = builder.At(2025, time.June, 2, 9, 0)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from booking.Status
		to   booking.Status
		ok   bool
	}{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusPending, booking.StatusCompleted, false},
		{booking.StatusPending, booking.StatusNoShow, false},
		{booking.StatusConfirmed, booking.StatusCompleted, true},
		{booking.StatusConfirmed, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusNoShow, true},
		{booking.StatusConfirmed, booking.StatusPending, false},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
		{booking.StatusCompleted, booking.StatusCancelled, false},
		{booking.StatusNoShow, booking.StatusCompleted, false},
		{booking.StatusRefunded, booking.StatusPending, false},
	}

	for _, c := range cases {
		t.Run(string(c.from)+"->"+string(c.to), func(t *testing.T) {
			assert.Equal(t, c.ok, c.from.CanTransitionTo(c.to))
		})
	}

	assert.True(t, booking.StatusPending.BlocksTimeline())
	assert.True(t, booking.StatusConfirmed.BlocksTimeline())
	assert.True(t, booking.StatusCompleted.BlocksTimeline())
	assert.False(t, booking.StatusCancelled.BlocksTimeline())
	assert.False(t, booking.StatusNoShow.BlocksTimeline())
}

func TestBookingCancel(t *testing.T) {
	customerID := uuid.New()
	staffID := uuid.New()

	t.Run("customer cancels a pending booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.CustomerID = customerID }).BuildDomain()

		changed, err := b.Cancel(booking.CustomerCancellation(customerID, "", anchor))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.Cancellation())
		assert.Equal(t, booking.ReasonCustomerCancel, b.Cancellation().ReasonCode)
		assert.Equal(t, user.RoleCustomer, b.Cancellation().Role)
		assert.Equal(t, anchor, b.Cancellation().At)
	})

	t.Run("customer cannot cancel a confirmed booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusConfirmed }).BuildDomain()

		changed, err := b.Cancel(booking.CustomerCancellation(customerID, "", anchor))
		require.ErrorIs(t, err, booking.ErrNotCancellable)
		assert.False(t, changed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("staff cancels a confirmed booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusConfirmed }).BuildDomain()

		changed, err := b.Cancel(booking.StaffCancellation(staffID, user.RoleStaff, "", anchor))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.ReasonStaffCancel, b.Cancellation().ReasonCode)
		assert.Equal(t, booking.InvoiceVoidStaff, b.Cancellation().InvoiceVoidReason())
	})

	t.Run("staff cannot cancel a completed booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusCompleted }).BuildDomain()

		_, err := b.Cancel(booking.StaffCancellation(staffID, user.RoleStaff, "", anchor))
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("system only cancels pending bookings", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusConfirmed }).BuildDomain()

		_, err := b.Cancel(booking.TimeoutCancellation(10*time.Minute, anchor))
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("cancelling a cancelled booking is a no-op", func(t *testing.T) {
		original := booking.StaffCancellation(staffID, user.RoleStaff, "double booked", anchor)
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusCancelled
			b.Cancellation = &original
		}).BuildDomain()
		before := b.Snapshot()

		for _, c := range []booking.Cancellation{
			booking.CustomerCancellation(customerID, "", anchor.Add(time.Hour)),
			booking.StaffCancellation(staffID, user.RoleAdmin, "", anchor.Add(time.Hour)),
			booking.TimeoutCancellation(time.Minute, anchor.Add(time.Hour)),
		} {
			changed, err := b.Cancel(c)
			require.NoError(t, err)
			assert.False(t, changed)
		}
		assert.Equal(t, before, b.Snapshot())
	})

	t.Run("cancellation keeps the price snapshot", func(t *testing.T) {
		quote := pricing.Quote{Total: 330000, Currency: "VND", DurationMinutes: 90}
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Quote = quote }).BuildDomain()

		_, err := b.Cancel(booking.TimeoutCancellation(10*time.Minute, anchor))
		require.NoError(t, err)
		assert.Equal(t, quote, b.Quote())
		assert.Equal(t, booking.InvoiceVoidSystem, b.Cancellation().InvoiceVoidReason())
	})
}

func TestBookingComplete(t *testing.T) {
	r := builder.Range(anchor, time.Hour)

	t.Run("before the end", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusConfirmed
			b.Range = r
		}).BuildDomain()
		require.ErrorIs(t, b.Complete(anchor.Add(59*time.Minute)), booking.ErrNotYetEnded)
	})

	t.Run("exactly at the end", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusConfirmed
			b.Range = r
		}).BuildDomain()
		require.NoError(t, b.Complete(r.End()))
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("pending bookings cannot complete", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Range = r }).BuildDomain()
		require.ErrorIs(t, b.Complete(r.End()), booking.ErrInvalidTransition)
	})
}

func TestBookingMarkNoShow(t *testing.T) {
	r := builder.Range(anchor, time.Hour)
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = booking.StatusConfirmed
		b.Range = r
	}).BuildDomain()

	require.ErrorIs(t, b.MarkNoShow(anchor.Add(-time.Minute)), booking.ErrNotYetStarted)
	require.NoError(t, b.MarkNoShow(anchor.Add(15*time.Minute)))
	assert.Equal(t, booking.StatusNoShow, b.Status())
	require.ErrorIs(t, b.MarkNoShow(anchor.Add(time.Hour)), booking.ErrInvalidTransition)
}

func TestBookingIsStalePending(t *testing.T) {
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Range = builder.Range(anchor, time.Hour)
	}).BuildDomain()
	timeout := 10 * time.Minute

	assert.False(t, b.IsStalePending(anchor.Add(9*time.Minute), timeout))
	assert.True(t, b.IsStalePending(anchor.Add(10*time.Minute), timeout))
	assert.True(t, b.IsStalePending(anchor.Add(15*time.Minute), timeout))
	assert.False(t, b.IsStalePending(anchor.Add(15*time.Minute), 0))
}

func TestFactoryCreate(t *testing.T) {
	clk := clock.NewMockClock(anchor)
	factory := booking.NewFactory(clk, pricing.NewDefaultCalculator())
	cb := builder.NewCourtBuilder()
	profile := builder.NewProfileBuilder().ForCourt(cb).BuildDomain()

	input := func(mutate func(*booking.CreateInput)) booking.CreateInput {
		in := booking.CreateInput{
			Court:      cb.BuildDomain(),
			FacilityID: cb.FacilityID,
			SportID:    cb.SportID,
			CustomerID: uuid.New(),
			Range:      builder.Range(anchor.Add(24*time.Hour), 90*time.Minute),
			Note:       "  bring balls  ",
			Profile:    &profile,
			Currency:   "VND",
		}
		if mutate != nil {
			mutate(&in)
		}
		return in
	}

	t.Run("customer booking starts pending with a server quote", func(t *testing.T) {
		b, err := factory.Create(input(nil))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, 330000.0, b.Quote().Total)
		assert.Equal(t, "bring balls", b.Note())
		assert.Equal(t, anchor, b.CreatedAt())
		assert.Nil(t, b.CreatedByStaffID())
	})

	t.Run("customer cannot self-confirm", func(t *testing.T) {
		b, err := factory.Create(input(func(in *booking.CreateInput) { in.Confirm = true }))
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("staff may confirm immediately", func(t *testing.T) {
		staffID := uuid.New()
		b, err := factory.Create(input(func(in *booking.CreateInput) {
			in.StaffID = &staffID
			in.Confirm = true
		}))
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, &staffID, b.CreatedByStaffID())
	})

	t.Run("court under maintenance still accepts bookings", func(t *testing.T) {
		c := builder.NewCourtBuilder().With(func(c *builder.CourtBuilder) {
			*c = *cb
			c.Status = court.StatusMaintenance
		}).BuildDomain()
		_, err := factory.Create(input(func(in *booking.CreateInput) { in.Court = c }))
		require.NoError(t, err)
	})

	t.Run("inactive court is rejected", func(t *testing.T) {
		c := builder.NewCourtBuilder().With(func(c *builder.CourtBuilder) {
			*c = *cb
			c.Status = court.StatusInactive
		}).BuildDomain()
		_, err := factory.Create(input(func(in *booking.CreateInput) { in.Court = c }))
		require.ErrorIs(t, err, booking.ErrCourtUnavailable)
	})

	t.Run("court from another facility is rejected", func(t *testing.T) {
		_, err := factory.Create(input(func(in *booking.CreateInput) { in.FacilityID = uuid.New() }))
		require.ErrorIs(t, err, booking.ErrCourtMismatch)
	})
}
