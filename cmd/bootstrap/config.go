package bootstrap

import (
	"paradise-inn/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.AuthConfig { return cfg.Auth },
		func(cfg config.Config) config.ImgBBConfig { return cfg.ImgBB },
	),
)
