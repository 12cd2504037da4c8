package components

import (
	"gourmet-gateway/internal/infra/gateway"
	"gourmet-gateway/internal/pkg/config"
	"gourmet-gateway/internal/usecase/commands"
	"gourmet-gateway/internal/usecase/queries"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) config.UpstreamConfig {
			return cfg.Upstream
		},
		gateway.NewClient,
		fx.Annotate(
			gateway.NewVenues,
			fx.As(new(queries.VenueReader)),
			fx.As(new(commands.VenueWriter)),
		),
		fx.Annotate(
			gateway.NewReservations,
			fx.As(new(queries.ReservationReader)),
			fx.As(new(commands.ReservationWriter)),
		),
		fx.Annotate(
			gateway.NewPlaces,
			fx.As(new(queries.PlaceSearcher)),
		),
		fx.Annotate(
			gateway.NewIdentity,
			fx.As(new(commands.IdentityGateway)),
		),
	),
)
