package components

import (
	"paradise-inn/internal/pkg/clock"
	"paradise-inn/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUsecase,
		usecase.NewUserUsecase,
		usecase.NewRoomUsecase,
		usecase.NewBookingUsecase,
		usecase.NewTokenValidator,
		usecase.NewPrincipalResolver,
	),
)
