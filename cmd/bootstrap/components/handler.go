package components

import (
	"gourmet-gateway/internal/handler"
	"gourmet-gateway/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVenueHandler,
		api.NewReservationHandler,
		api.NewPlaceHandler,
		api.NewDashboardHandler,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	venue *api.VenueHandler,
	reservation *api.ReservationHandler,
	place *api.PlaceHandler,
	dashboard *api.DashboardHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Venue:       venue,
		Reservation: reservation,
		Place:       place,
		Dashboard:   dashboard,
	}
}
