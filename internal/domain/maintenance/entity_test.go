//go:build unit

package maintenance_test

import (
	"testing"
	"time"

	"court-booking/internal/domain/maintenance"
	"court-booking/internal/domain/timerange"
	"court-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = builder.At(2025, time.June, 2, 9, 0)

func newBlock(t *testing.T) *maintenance.Block {
	t.Helper()
	b, err := maintenance.New(uuid.New(), uuid.New(), uuid.New(), builder.Range(now.Add(time.Hour), 2*time.Hour), "  ", now)
	require.NoError(t, err)
	return b
}

func TestNew(t *testing.T) {
	b := newBlock(t)
	assert.Equal(t, maintenance.StatusScheduled, b.Status())
	assert.Equal(t, maintenance.DefaultReason, b.Reason())

	_, err := maintenance.New(uuid.New(), uuid.New(), uuid.New(), timerange.TimeRange{}, "net repair", now)
	require.ErrorIs(t, err, timerange.ErrInvalidRange)
}

func TestParseAction(t *testing.T) {
	cases := map[string]maintenance.Action{
		"start":     maintenance.ActionStart,
		"Complete":  maintenance.ActionComplete,
		"completed": maintenance.ActionComplete,
		" cancel ":  maintenance.ActionCancel,
		"cancelled": maintenance.ActionCancel,
	}
	for raw, want := range cases {
		got, err := maintenance.ParseAction(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := maintenance.ParseAction("pause")
	require.ErrorIs(t, err, maintenance.ErrUnsupportedAction)
}

func TestApply(t *testing.T) {
	t.Run("start then complete", func(t *testing.T) {
		b := newBlock(t)
		require.NoError(t, b.Apply(maintenance.ActionStart, now))
		assert.Equal(t, maintenance.StatusInProgress, b.Status())
		require.ErrorIs(t, b.Apply(maintenance.ActionStart, now), maintenance.ErrInvalidTransition)
		require.NoError(t, b.Apply(maintenance.ActionComplete, now.Add(time.Hour)))
		assert.Equal(t, maintenance.StatusCompleted, b.Status())
		assert.True(t, b.Status().BlocksTimeline())
	})

	t.Run("cancel releases the timeline", func(t *testing.T) {
		b := newBlock(t)
		require.NoError(t, b.Apply(maintenance.ActionCancel, now))
		assert.False(t, b.Status().BlocksTimeline())
		require.ErrorIs(t, b.Apply(maintenance.ActionComplete, now), maintenance.ErrInvalidTransition)
	})
}

func TestReschedule(t *testing.T) {
	b := newBlock(t)
	moved := builder.Range(now.Add(5*time.Hour), time.Hour)
	reason := "resurfacing"

	require.NoError(t, b.Reschedule(moved, &reason, now))
	assert.True(t, moved.Equal(b.Range()))
	assert.Equal(t, "resurfacing", b.Reason())

	require.NoError(t, b.Reschedule(moved, nil, now))
	assert.Equal(t, "resurfacing", b.Reason())

	require.NoError(t, b.Apply(maintenance.ActionCancel, now))
	require.ErrorIs(t, b.Reschedule(moved, nil, now), maintenance.ErrInvalidTransition)
}
