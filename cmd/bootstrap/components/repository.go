package components

import (
	"log/slog"

	"allure-rental/internal/domain/cart"
	"allure-rental/internal/infra/cache"
	"allure-rental/internal/infra/cartstore"
	"allure-rental/internal/infra/memstore"
	"allure-rental/internal/infra/repository"
	"allure-rental/internal/infra/uow"
	"allure-rental/internal/pkg/config"
	"allure-rental/internal/usecase/availability"
	"allure-rental/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RepositoryModule stores reservations in Postgres and keeps carts and the
// availability cache in redis.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		repository.NewReservationStore,
		NewAvailabilityCache,
		NewPostgresStores,
		fx.Annotate(
			NewRedisCartStore,
			fx.As(new(cart.Store)),
		),
	),
)

// MemoryRepositoryModule keeps everything in process, for local development.
var MemoryRepositoryModule = fx.Module("repository/memory",
	fx.Provide(
		NewMemoryStores,
		fx.Annotate(
			cartstore.NewMemoryStore,
			fx.As(new(cart.Store)),
		),
	),
)

func NewAvailabilityCache(client *redis.Client, cfg config.Config) *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(client, cfg.Cache.AvailabilityTTL)
}

func NewRedisCartStore(client *redis.Client, cfg config.Config) *cartstore.RedisStore {
	return cartstore.NewRedisStore(client, cfg.Cart.TTL)
}

// NewPostgresStores returns the store used by submissions (uncached, it
// invalidates the cache on commit) and the cached lister used for browsing.
func NewPostgresStores(
	pg *repository.ReservationStore,
	c *cache.AvailabilityCache,
) (shared.ReservationStore, availability.Lister, shared.ProspectReader) {
	return cache.NewInvalidatingStore(c, pg), cache.NewCachedLister(c, pg), pg
}

func NewMemoryStores() (shared.ReservationStore, availability.Lister, shared.ProspectReader) {
	slog.Warn("reservations are kept in memory and lost on restart")
	s := memstore.New()
	return s, s, s
}
