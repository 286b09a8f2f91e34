package components

import (
	"room-booking/internal/handler"
	"room-booking/internal/handler/api"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewExportHandler,
		func(hub api.EventHub, cfg config.Config) *api.EventsHandler {
			return api.NewEventsHandler(hub, cfg.CORS)
		},
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	booking *api.BookingHandler,
	room *api.RoomHandler,
	export *api.ExportHandler,
	events *api.EventsHandler,
) handler.Handlers {
	return handler.Handlers{
		Booking: booking,
		Room:    room,
		Export:  export,
		Events:  events,
	}
}
