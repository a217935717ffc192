package components

import (
	"allure-rental/internal/handler"
	"allure-rental/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDressHandler,
		api.NewCartHandler,
		api.NewProspectHandler,
		api.NewMaintenanceHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	dress *api.DressHandler,
	cart *api.CartHandler,
	prospect *api.ProspectHandler,
	m *api.MaintenanceHandler,
) handler.Handlers {
	return handler.Handlers{
		Dress:       dress,
		Cart:        cart,
		Prospect:    prospect,
		Maintenance: m,
	}
}
