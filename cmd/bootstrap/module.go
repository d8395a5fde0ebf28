package bootstrap

import (
	"paradise-inn/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module assembles the reservation service: config and infrastructure first,
// then repositories, usecases, and the HTTP handlers that depend on them.
var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
