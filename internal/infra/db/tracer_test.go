//go:build unit

package db_test

import (
	"testing"

	"court-booking/internal/infra/db"

	"github.com/stretchr/testify/assert"
)

func TestQueryName(t *testing.T) {
	tests := []struct {
		sql  string
		want string
	}{
		{sql: "-- name: CreateBooking :exec\nINSERT INTO bookings ...", want: "CreateBooking"},
		{sql: "  -- name: ListStalePending :many\nSELECT 1", want: "ListStalePending"},
		{sql: "select pg_advisory_xact_lock($1)", want: "SELECT"},
		{sql: "-- name:", want: "--"},
		{sql: "   ", want: "query"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, db.QueryName(tt.sql))
		})
	}
}
