package bootstrap

import (
	"log/slog"

	"staybook/internal/infra/gateway"
	"staybook/internal/pkg/config"
	"staybook/internal/usecase"

	"go.uber.org/fx"
)

// GatewayModule provides the single remote API client behind each of the
// usecase-facing ports.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(usecase.HotelGateway)),
			fx.As(new(usecase.BookingGateway)),
			fx.As(new(usecase.IdentityGateway)),
		),
	),
)

func NewGatewayClient(cfg config.Config, logger *slog.Logger) *gateway.Client {
	return gateway.NewClient(cfg.Gateway, logger)
}
