package bootstrap

import (
	"log/slog"

	"allure-rental/internal/pkg/config"
	"allure-rental/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.Maintenance.WebhookSecret == "" {
		slog.Warn("MAINTENANCE_WEBHOOK_SECRET is empty, the maintenance webhook will reject every call")
	}
	return jwt.NewService(cfg.Maintenance.WebhookSecret, cfg.Maintenance.TokenTTL)
}
