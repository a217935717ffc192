package components

import (
	"allure-rental/internal/infra/catalog"
	"allure-rental/internal/pkg/config"
	"allure-rental/internal/usecase/shared"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		fx.Annotate(
			NewCatalogClient,
			fx.As(new(shared.DressCatalog)),
		),
	),
)

func NewCatalogClient(cfg config.Config) *catalog.Client {
	return catalog.NewClient(cfg.Catalog)
}
