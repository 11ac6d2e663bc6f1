//go:build unit

package config_test

import (
	"testing"

	"court-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, config.NewTestConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*config.Config)
		errMsg string
	}{
		{
			name:   "unparseable jwt duration",
			mutate: func(c *config.Config) { c.JWT.Duration = "a day" },
			errMsg: "JWT_DURATION",
		},
		{
			name:   "currency is not ISO-like",
			mutate: func(c *config.Config) { c.Booking.DefaultCurrency = "DONG" },
			errMsg: "BOOKING_DEFAULT_CURRENCY",
		},
		{
			name:   "negative pending timeout",
			mutate: func(c *config.Config) { c.Booking.PendingTimeoutMinutes = -1 },
			errMsg: "AUTO_CANCEL_PENDING_MINUTES",
		},
		{
			name:   "sweeper enabled with empty batches",
			mutate: func(c *config.Config) { c.Booking.SweepBatchSize = 0 },
			errMsg: "AUTO_CANCEL_BATCH_SIZE",
		},
		{
			name:   "negative cache ttl",
			mutate: func(c *config.Config) { c.Booking.ReferenceCacheTTL = -1 },
			errMsg: "REFERENCE_CACHE_TTL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	t.Run("zero batch size is fine with auto-cancel off", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Booking.PendingTimeoutMinutes = 0
		cfg.Booking.SweepBatchSize = 0
		assert.NoError(t, cfg.Validate())
	})
}

func TestBookingConfig(t *testing.T) {
	cfg := config.NewTestConfig().Booking
	assert.True(t, cfg.SweeperEnabled())
	assert.Equal(t, "10m0s", cfg.PendingTimeout().String())

	cfg.TimeZone = "Mars/Olympus_Mons"
	assert.Equal(t, "UTC", cfg.Location().String())

	cfg.SweepInterval = 0
	assert.False(t, cfg.SweeperEnabled())
}
