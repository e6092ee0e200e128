package components

import (
	"staybook/internal/pkg/clock"
	"staybook/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewSearchUseCase,
		usecase.NewBookingUseCase,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
