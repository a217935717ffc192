package components

import (
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/pkg/clock"
	"allure-rental/internal/pkg/config"
	"allure-rental/internal/usecase/availability"
	"allure-rental/internal/usecase/commands"
	"allure-rental/internal/usecase/maintenance"
	"allure-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseMaintenanceModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewDailyRateCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
	// browse-time checker over the advisory lister; submissions build their own
	availability.NewChecker,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewCartCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDressQueries,
		queries.NewCartQueries,
		queries.NewProspectQueries,
	),
)

var usecaseMaintenanceModule = fx.Module("usecase/maintenance",
	fx.Provide(
		maintenance.NewTokenValidator,
		NewMaintenanceSwitch,
		NewMaintenanceService,
	),
)

func NewMaintenanceSwitch(cfg config.Config, clk clock.Clock) *maintenance.Switch {
	return maintenance.NewSwitch(cfg.Maintenance.Enabled, cfg.Maintenance.Message, clk.Now())
}

func NewMaintenanceService(
	sw *maintenance.Switch,
	cfg config.Config,
	tokens maintenance.TokenValidator,
	clk clock.Clock,
) maintenance.Service {
	return maintenance.NewService(sw, cfg.Maintenance.SecretHash, tokens, clk)
}
