package shared

import (
	"context"
	"errors"

	"allure-rental/internal/domain/dress"

	"github.com/google/uuid"
)

var (
	ErrDressNotFound      = errors.New("dress not found in catalog")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrCatalogSchema      = errors.New("catalog returned malformed data")
)

// DressCatalog is the read-only view of the external dress catalog.
// Only published dresses are visible through it.
type DressCatalog interface {
	FindDress(ctx context.Context, id uuid.UUID) (*dress.Dress, error)
	ListDresses(ctx context.Context, filters dress.Filters) (*dress.Page, error)
	Facets(ctx context.Context) (*dress.Facets, error)
}
