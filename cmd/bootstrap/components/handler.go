package components

import (
	"court-booking/internal/handler"
	"court-booking/internal/handler/api"
	"court-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCourtHandler,
		api.NewStaffHandler,
		middleware.NewAuthMiddleware,
		func(b *api.BookingHandler, c *api.CourtHandler, s *api.StaffHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Court: c, Staff: s}
		},
	),
	fx.Invoke(handler.NewRouter),
)
