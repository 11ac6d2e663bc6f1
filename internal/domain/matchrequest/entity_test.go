//go:build unit

package matchrequest_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/matchrequest"
	"court-booking/internal/domain/user"
	"court-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = builder.At(2025, time.June, 2, 9, 0)

func openRequest(courtID uuid.UUID, start time.Time) *matchrequest.Request {
	return &matchrequest.Request{
		ID:        uuid.New(),
		CourtID:   courtID,
		CreatorID: uuid.New(),
		Desired:   builder.Range(start, time.Hour),
		Status:    matchrequest.StatusOpen,
	}
}

func TestConflictsWith(t *testing.T) {
	cb := builder.NewCourtBuilder()
	start := now.Add(24 * time.Hour)
	b := builder.NewBookingBuilder().OnCourt(cb).With(func(b *builder.BookingBuilder) {
		b.Range = builder.Range(start.Add(30*time.Minute), time.Hour)
	}).BuildDomain()

	assert.True(t, openRequest(cb.ID, start).ConflictsWith(b))
	assert.False(t, openRequest(uuid.New(), start).ConflictsWith(b), "other court")
	assert.False(t, openRequest(cb.ID, start.Add(-30*time.Minute)).ConflictsWith(b), "touching bound")

	matched := openRequest(cb.ID, start)
	matched.Status = matchrequest.StatusMatched
	assert.False(t, matched.ConflictsWith(b))

	linked := openRequest(cb.ID, start)
	own := builder.NewBookingBuilder().OnCourt(cb).With(func(b *builder.BookingBuilder) {
		b.Range = builder.Range(start, time.Hour)
		b.MatchRequestID = &linked.ID
	}).BuildDomain()
	assert.False(t, linked.ConflictsWith(own))
}

func TestCancelForOverlap(t *testing.T) {
	req := openRequest(uuid.New(), now.Add(time.Hour))
	bookingID := uuid.New()

	req.CancelForOverlap(bookingID, now)

	assert.Equal(t, matchrequest.StatusCancelled, req.Status)
	assert.Equal(t, "cancelled", req.BookingStatus)
	assert.Equal(t, matchrequest.ReasonOverlappedBooking, req.CancelReasonCode)
	assert.Equal(t, user.RoleSystem, req.CancelledByRole)
	require.NotNil(t, req.ConflictBookingID)
	assert.Equal(t, bookingID, *req.ConflictBookingID)
}

func TestSyncWithBooking(t *testing.T) {
	t.Run("active booking matches the request", func(t *testing.T) {
		req := openRequest(uuid.New(), now.Add(time.Hour))
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusConfirmed }).BuildDomain()

		req.SyncWithBooking(b, now)

		assert.Equal(t, matchrequest.StatusMatched, req.Status)
		assert.Equal(t, "confirmed", req.BookingStatus)
		require.NotNil(t, req.BookingID)
		assert.Equal(t, b.ID(), *req.BookingID)
	})

	t.Run("cancelled booking reopens a future request", func(t *testing.T) {
		req := openRequest(uuid.New(), now.Add(time.Hour))
		req.Status = matchrequest.StatusMatched
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusCancelled }).BuildDomain()

		req.SyncWithBooking(b, now)

		assert.Equal(t, matchrequest.StatusOpen, req.Status)
		assert.Nil(t, req.BookingID)
	})

	t.Run("cancelled booking cancels a past request", func(t *testing.T) {
		req := openRequest(uuid.New(), now.Add(-time.Hour))
		req.Status = matchrequest.StatusMatched
		cancel := booking.TimeoutCancellation(10*time.Minute, now)
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusCancelled
			b.Cancellation = &cancel
		}).BuildDomain()

		req.SyncWithBooking(b, now)

		assert.Equal(t, matchrequest.StatusCancelled, req.Status)
		assert.Equal(t, booking.ReasonAutoPendingTimeout, req.CancelReasonCode)
		assert.Equal(t, user.RoleSystem, req.CancelledByRole)
	})
}
