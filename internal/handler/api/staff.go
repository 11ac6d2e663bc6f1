package api

import (
	"net/http"
	"time"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/ids"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

// StaffHandler serves the facility back office. Routes sit behind RequireStaff.
type StaffHandler struct {
	bookings    commands.BookingCommands
	bookingQ    queries.BookingQueries
	maintenance commands.MaintenanceCommands
}

func NewStaffHandler(bookings commands.BookingCommands, bookingQ queries.BookingQueries, maintenance commands.MaintenanceCommands) *StaffHandler {
	return &StaffHandler{bookings: bookings, bookingQ: bookingQ, maintenance: maintenance}
}

// @Summary Create booking on behalf of a customer
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StaffCreateBookingRequest true "Staff booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/staff/bookings [post]
func (h *StaffHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}
	var req reqdto.StaffCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	b, err := h.bookings.Create(c.Request.Context(), actor, in)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

// @Summary List facility bookings
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param from query string false "Bookings ending after (RFC 3339)"
// @Param to query string false "Bookings starting before (RFC 3339)"
// @Param limit query int false "Max items (1..200, default 100)"
// @Param facilityId query string false "Facility (admins only)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/staff/bookings [get]
func (h *StaffHandler) ListBookings(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}
	facilityID, err := ids.ParseOptionalResourceID(c.Query("facilityId"))
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	var query reqdto.ListBookingsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(bindErr, errs.ErrInvalidInput), "limit must be between 1 and 200", nil)
		return
	}
	filter := readmodel.BookingFilter{Status: query.Status, Limit: query.Limit}
	if filter.From, err = queryTime(c, "from"); err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	if filter.To, err = queryTime(c, "to"); err != nil {
		httperr.FromUseCase(c, err)
		return
	}

	views, err := h.bookingQ.ListFacility(c.Request.Context(), actor, facilityID, filter)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Change booking status
// @Description confirmed, cancelled, completed or no_show
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/staff/bookings/{id}/status [patch]
func (h *StaffHandler) UpdateBookingStatus(c *gin.Context) {
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
	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	b, err := h.bookings.UpdateStatus(c.Request.Context(), actor, id, req.Status, req.Reason)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Schedule maintenance
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.CreateMaintenanceRequest true "Maintenance window"
// @Success 201 {object} resdto.MaintenanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/staff/courts/{id}/maintenance [post]
func (h *StaffHandler) CreateMaintenance(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}
	courtID, err := ids.ParseResourceID(c.Param("id"))
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	var req reqdto.CreateMaintenanceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	in, err := req.ToInput(courtID)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	blk, err := h.maintenance.Create(c.Request.Context(), actor, in)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMaintenance(blk))
}

// @Summary Reschedule maintenance
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Maintenance ID"
// @Param request body reqdto.UpdateMaintenanceRequest true "Fields to change"
// @Success 200 {object} resdto.MaintenanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/staff/maintenance/{id} [put]
func (h *StaffHandler) UpdateMaintenance(c *gin.Context) {
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
	var req reqdto.UpdateMaintenanceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	blk, err := h.maintenance.Update(c.Request.Context(), actor, id, in)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaintenance(blk))
}

// @Summary Apply maintenance action
// @Description start, complete or cancel a maintenance block
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Maintenance ID"
// @Param request body reqdto.MaintenanceActionRequest true "Action"
// @Success 200 {object} resdto.MaintenanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/staff/maintenance/{id}/action [post]
func (h *StaffHandler) MaintenanceAction(c *gin.Context) {
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
	var req reqdto.MaintenanceActionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	blk, err := h.maintenance.Apply(c.Request.Context(), actor, id, req.Action)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaintenance(blk))
}

func queryTime(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "%s", key), errs.ErrInvalidRange)
	}
	return &t, nil
}
