package bootstrap

import (
	"allure-rental/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies a configuration loaded before the graph is built,
// since STORE_DRIVER decides which persistence module is installed.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
