package components

import (
	"paradise-inn/internal/infra/imghost"
	"paradise-inn/internal/infra/repo"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repo.NewUserRepository,
		repo.NewRoomRepository,
		repo.NewBookingRepository,
		imghost.NewClient,
	),
)
