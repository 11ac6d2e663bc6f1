package httperr

import (
	"net/http"

	"court-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = errs.ReasonCode(err)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort answers without an underlying error, e.g. for missing credentials.
func Abort(c *gin.Context, status int, code, msg string) {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	c.AbortWithStatusJSON(status, resp)
}

// FromUseCase maps a usecase error onto its status, code and user-facing message.
func FromUseCase(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrInvalidRange):
		return http.StatusBadRequest, "Invalid time range"
	case errs.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid request"
	case errs.Is(err, errs.ErrInvalidResource):
		return http.StatusBadRequest, "Invalid or unknown resource"
	case errs.Is(err, errs.ErrBookingConflict):
		return http.StatusConflict, "Court not available: already booked for the requested time"
	case errs.Is(err, errs.ErrMaintenanceConflict):
		return http.StatusConflict, "Court not available: under maintenance for the requested time"
	case errs.Is(err, errs.ErrStaleTransition):
		return http.StatusConflict, "Booking was changed concurrently, reload and retry"
	case errs.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict, "Status transition not allowed"
	case errs.Is(err, errs.ErrBookingNotCancellable):
		return http.StatusConflict, "Only pending bookings can be cancelled"
	case errs.Is(err, errs.ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found"
	case errs.Is(err, errs.ErrMaintenanceNotFound):
		return http.StatusNotFound, "Maintenance block not found"
	case errs.Is(err, errs.ErrNotAssignedFacility):
		return http.StatusForbidden, "Staff user is not assigned to any facility"
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
