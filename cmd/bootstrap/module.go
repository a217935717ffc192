package bootstrap

import (
	"allure-rental/cmd/bootstrap/components"
	"allure-rental/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		persistence(cfg),
		components.CatalogModule,
		components.UseCaseModule,
		components.HandlerModule,
	)
}

func persistence(cfg config.Config) fx.Option {
	if cfg.Store.UseMemory() {
		return components.MemoryRepositoryModule
	}
	return fx.Options(
		DBModule,
		RedisModule,
		components.RepositoryModule,
	)
}
