package api

import (
	"net/http"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/ids"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CourtHandler struct {
	availability queries.AvailabilityQueries
	quotes       queries.QuoteQueries
	cmds         commands.CourtCommands
}

func NewCourtHandler(availability queries.AvailabilityQueries, quotes queries.QuoteQueries, cmds commands.CourtCommands) *CourtHandler {
	return &CourtHandler{availability: availability, quotes: quotes, cmds: cmds}
}

// @Summary Court availability
// @Description Whether the court is free for [start, end), and which kind of conflict blocks it
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Param start query string true "RFC 3339 start"
// @Param end query string true "RFC 3339 end"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/courts/{id}/availability [get]
func (h *CourtHandler) Availability(c *gin.Context) {
	courtID, err := ids.ParseResourceID(c.Param("id"))
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	rng, err := reqdto.ParseRange(c.Query("start"), c.Query("end"))
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	view, err := h.availability.Check(c.Request.Context(), courtID, rng)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Price quote
// @Description Preview the price of a booking without reserving anything
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /api/price/quote [post]
func (h *CourtHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required fields", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	quote, err := h.quotes.Preview(c.Request.Context(), in)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// @Summary Update court status
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.UpdateCourtStatusRequest true "New status"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/staff/courts/{id}/status [patch]
func (h *CourtHandler) UpdateStatus(c *gin.Context) {
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
	var req reqdto.UpdateCourtStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid status", nil)
		return
	}
	updated, err := h.cmds.UpdateStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		httperr.FromUseCase(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourt(updated))
}
