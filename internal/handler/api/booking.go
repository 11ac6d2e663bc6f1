package api

import (
	"net/http"

	"court-booking/internal/domain/user"
	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/ids"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a court for a time range. The price is always recomputed on the server.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	b, err := h.cmds.Create(c.Request.Context(), actor, in)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}
	id, err := ids.ParseResourceID(c.Param("id"))
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description Bookings of the caller, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param limit query int false "Max items (1..200, default 100)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/user/bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}
	var query reqdto.ListBookingsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(bindErr, errs.ErrInvalidInput), "limit must be between 1 and 200", nil)
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), actor, query.Status, query.Limit)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Cancel booking
// @Description Customers cancel their own pending bookings. Cancelling twice is a no-op.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [put]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}
	// staff cancel through PATCH /api/staff/bookings/:id/status
	if actor.Role != user.RoleCustomer {
		httperr.Abort(c, http.StatusForbidden, "forbidden", "Only customers can cancel here")
		return
	}
	id, err := ids.ParseResourceID(c.Param("id"))
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}
	b, err := h.cmds.Cancel(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}
