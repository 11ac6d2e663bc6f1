//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection or a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestFacility(t *testing.T, db DBLike, name, timezone string) uuid.UUID {
	t.Helper()

	facilityID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO facilities (id, name, timezone) VALUES ($1, $2, NULLIF($3, ''))",
		facilityID, name, timezone)
	require.NoError(t, err)
	return facilityID
}

// SportID returns the id of a seeded sport.
func SportID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var sportID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM sports WHERE name = $1", name).Scan(&sportID)
	require.NoError(t, err, "sport %q is not seeded", name)
	return sportID
}

func CreateTestCourt(t *testing.T, db DBLike, facilityID, sportID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	courtID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO courts (id, facility_id, sport_id, name) VALUES ($1, $2, $3, $4)",
		courtID, facilityID, sportID, name)
	require.NoError(t, err)
	return courtID
}

// CreateTestUser inserts a user. facilityID is only meaningful for staff.
func CreateTestUser(t *testing.T, db DBLike, email, role string, facilityID *uuid.UUID) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, name, role, facility_id) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, email, strings.Split(email, "@")[0], role, facilityID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}
	return userID
}

func SetMembership(t *testing.T, db DBLike, userID uuid.UUID, tier string, expiresAt time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE users SET membership_tier = $2, membership_expires_at = $3 WHERE id = $1",
		userID, tier, expiresAt)
	require.NoError(t, err)
}

// CreateTestPriceProfile inserts a facility-wide profile without time rules.
// discountsJSON may be empty.
func CreateTestPriceProfile(t *testing.T, db DBLike, facilityID, sportID uuid.UUID, baseRate, taxPercent float64, discountsJSON string) uuid.UUID {
	t.Helper()

	if discountsJSON == "" {
		discountsJSON = "[]"
	}
	profileID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO price_profiles (id, name, facility_id, sport_id, currency, base_rate_per_hour, membership_discounts, tax_percent)
		VALUES ($1, 'Standard', $2, $3, 'VND', $4, $5::jsonb, $6)`,
		profileID, facilityID, sportID, baseRate, discountsJSON, taxPercent)
	require.NoError(t, err)
	return profileID
}

func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

// InvoiceStatus returns "" when the booking has no invoice.
func InvoiceStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT status FROM invoices WHERE booking_id = $1), '')", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

// BackdateBooking moves a booking's start into the past, e.g. to make it stale for the sweeper.
func BackdateBooking(t *testing.T, db DBLike, bookingID uuid.UUID, start, end time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE bookings SET start_time = $2, end_time = $3 WHERE id = $1", bookingID, start, end)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO sports (name) VALUES
		    ('Badminton'),
		    ('Tennis'),
		    ('Pickleball')
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
