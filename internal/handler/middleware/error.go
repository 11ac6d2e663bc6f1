package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"court-booking/internal/handler/httperr"
	"court-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that a handler attached with c.Error but did not write.
// Responses already written by httperr pass through untouched.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if resp, ok := last.Meta.(httperr.Response); ok {
			c.JSON(resp.Status, resp)
			return
		}

		status, msg := httperr.Classify(last.Err)
		resp := httperr.Response{Status: status}
		resp.Error.Message = msg
		resp.Error.Code = errs.ReasonCode(last.Err)
		if status == http.StatusInternalServerError {
			resp.Error.Code = "internal_error"
		}
		c.JSON(status, resp)
	}
}

// Recovery turns a panic into a 500 with the standard error body.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", fmt.Sprint(r),
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path)

				httperr.Abort(c, http.StatusInternalServerError, "internal_error", "Internal server error")
			}
		}()
		c.Next()
	}
}
