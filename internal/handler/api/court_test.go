//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/handler/api"
	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/httptest"
	"court-booking/tests/common/testutil"
	commandsmock "court-booking/tests/mock/commands"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CourtHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockQuotes       *queriesmock.MockQuoteQueries
	mockCommands     *commandsmock.MockCourtCommands
	handler          *api.CourtHandler
}

func (s *CourtHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockQuotes = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockCourtCommands(s.mockCtrl)
	s.handler = api.NewCourtHandler(s.mockAvailability, s.mockQuotes, s.mockCommands)

	s.router.GET("/api/courts/:id/availability", s.handler.Availability)
	s.router.POST("/api/price/quote", s.handler.Quote)
	s.router.PATCH("/api/staff/courts/:id/status", fakeAuth(uuid.New()), s.handler.UpdateStatus)
}

func (s *CourtHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCourtHandlerSuite(t *testing.T) {
	suite.Run(t, new(CourtHandlerTestSuite))
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *CourtHandlerTestSuite) TestAvailability() {
	courtID := uuid.New()
	base := "/api/courts/" + courtID.String() + "/availability"

	s.Run("success: available slot", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), courtID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, r timerange.TimeRange) (*queries.AvailabilityView, error) {
				s.Equal(time.Hour, r.Duration())
				return &queries.AvailabilityView{Available: true}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2025-06-03T09:00:00Z&end=2025-06-03T10:00:00Z", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.False(response.BookingConflict)
	})

	s.Run("success: offsets are accepted", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), courtID, gomock.Any()).
			Return(&queries.AvailabilityView{BookingConflict: true, Reason: "booking_conflict"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2025-06-03T16:00:00%2B07:00&end=2025-06-03T17:00:00%2B07:00", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
		s.True(response.BookingConflict)
	})

	s.Run("error: invalid ranges never reach the query", func() {
		for _, q := range []string{
			"",
			"?start=2025-06-03T09:00:00Z",
			"?start=2025-06-03T10:00:00Z&end=2025-06-03T09:00:00Z",
			"?start=2025-06-03T09:00:00Z&end=2025-06-03T09:00:00Z",
			"?start=soon&end=later",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+q, nil, "")
			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_range")
		}
	})

	s.Run("error: malformed court id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/courts/7/availability?start=2025-06-03T09:00:00Z&end=2025-06-03T10:00:00Z", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_resource")
	})
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *CourtHandlerTestSuite) TestQuote() {
	url := "/api/price/quote"
	cb := builder.NewCourtBuilder()
	reqBody := reqdto.QuoteRequest{
		FacilityID: cb.FacilityID.String(),
		SportID:    cb.SportID.String(),
		CourtID:    cb.ID.String(),
		Start:      "2025-06-03T09:00:00Z",
		End:        "2025-06-03T10:30:00Z",
	}

	s.Run("success: returns the quote", func() {
		quote := &pricing.Quote{Total: 330000, Currency: "VND", DurationMinutes: 90, Subtotal: 300000, Tax: 30000}
		s.mockQuotes.EXPECT().Preview(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in queries.QuoteInput) (*pricing.Quote, error) {
				s.Equal(cb.ID, in.CourtID)
				s.Nil(in.UserID)
				return quote, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(330000.0, response.Total)
		s.Equal(90, response.DurationMinutes)
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"facilityId", "sportId", "courtId", "start", "end"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil)), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing required fields")
		}
	})

	s.Run("error: court outside the facility", func() {
		s.mockQuotes.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(nil, errs.ErrInvalidResource).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_resource")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *CourtHandlerTestSuite) TestUpdateStatus() {
	cb := builder.NewCourtBuilder().With(func(c *builder.CourtBuilder) { c.Status = court.StatusMaintenance })
	url := "/api/staff/courts/" + cb.ID.String() + "/status"

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), cb.ID, "maintenance").Return(cb.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.UpdateCourtStatusRequest{Status: "maintenance"}, "staff")

		var response resdto.CourtResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("maintenance", response.Status)
	})

	s.Run("error: unknown status is rejected by binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "closed"}, "staff")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})
}
