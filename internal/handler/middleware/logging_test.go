//go:build unit

package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/errs"
	"court-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newObservedRouter(t *testing.T) (*gin.Engine, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := gin.New()
	r.Use(middleware.Recovery(logger), middleware.RequestLogger(logger), middleware.ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	r.GET("/conflict", func(c *gin.Context) {
		_ = c.Error(errs.Mark(errs.New("slot taken"), errs.ErrBookingConflict))
	})
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("disk on fire"))
	})
	r.GET("/panic", func(*gin.Context) {
		panic("unreachable state")
	})
	return r, &buf
}

func TestRequestLogger(t *testing.T) {
	t.Run("generates a request id when none is sent", func(t *testing.T) {
		router, buf := newObservedRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		id := rec.Header().Get("X-Request-ID")
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
		assert.Contains(t, buf.String(), "request_id="+id)
		assert.Contains(t, buf.String(), "route=/ok")
	})

	t.Run("echoes a caller supplied id", func(t *testing.T) {
		router, _ := newObservedRouter(t)

		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/ok", nil, "", map[string]string{"X-Request-ID": "req-42"})
		httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": "req-42"})
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		router, buf := newObservedRouter(t)

		httptest.PerformRequest(t, router, http.MethodGet, "/conflict", nil, "")
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "status=409")
	})
}

func TestErrorHandler(t *testing.T) {
	router, _ := newObservedRouter(t)

	t.Run("unwritten taxonomy errors are classified", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/conflict", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusConflict, "booking_conflict")
	})

	t.Run("unknown errors become 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		httptest.AssertErrorCode(t, rec, http.StatusInternalServerError, "internal_error")
	})
}

func TestRecovery(t *testing.T) {
	router, buf := newObservedRouter(t)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorCode(t, rec, http.StatusInternalServerError, "internal_error")
	assert.Contains(t, buf.String(), "unreachable state")
}
