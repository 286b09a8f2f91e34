package components

import (
	"context"

	"room-booking/internal/handler/api"
	"room-booking/internal/infra/realtime"
	"room-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		NewHub,
		func(h *realtime.Hub) shared.ChangeNotifier { return h },
		func(h *realtime.Hub) api.EventHub { return h },
	),
)

func NewHub(lc fx.Lifecycle) *realtime.Hub {
	hub := realtime.NewHub()
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.Close()
			return nil
		},
	})
	return hub
}
