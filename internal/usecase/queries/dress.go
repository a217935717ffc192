package queries

import (
	"context"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/dress"
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/usecase/availability"
	"allure-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDressNotFound = errs.New("dress not found")

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type DressQueries interface {
	List(ctx context.Context, filters dress.Filters) (*DressPageView, error)
	Facets(ctx context.Context) (*FacetsView, error)
	Get(ctx context.Context, id uuid.UUID) (*DressView, error)
	// Availability is advisory: a later submission may still be rejected.
	Availability(ctx context.Context, id uuid.UUID, r calendar.DateRange) (*AvailabilityView, error)
	Quote(ctx context.Context, id uuid.UUID, r calendar.DateRange) (*QuoteView, error)
}

type dressQueriesImpl struct {
	catalog shared.DressCatalog
	checker availability.Checker
	calc    reservation.PriceCalculator
}

func NewDressQueries(
	catalog shared.DressCatalog,
	checker availability.Checker,
	calc reservation.PriceCalculator,
) DressQueries {
	return &dressQueriesImpl{catalog: catalog, checker: checker, calc: calc}
}

func (q *dressQueriesImpl) List(ctx context.Context, filters dress.Filters) (*DressPageView, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 {
		filters.Limit = DefaultPageLimit
	}
	if filters.Limit > MaxPageLimit {
		filters.Limit = MaxPageLimit
	}

	page, err := q.catalog.ListDresses(ctx, filters)
	if err != nil {
		return nil, errs.Wrap(err, "list dresses")
	}

	out := &DressPageView{
		Dresses: make([]*DressView, 0, len(page.Dresses)),
		Total:   page.Total,
		Page:    page.Page,
		Limit:   page.Limit,
	}
	for _, d := range page.Dresses {
		out.Dresses = append(out.Dresses, dressView(d))
	}
	return out, nil
}

func (q *dressQueriesImpl) Facets(ctx context.Context) (*FacetsView, error) {
	f, err := q.catalog.Facets(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load facets")
	}
	return &FacetsView{
		Types:  facetViews(f.Types),
		Sizes:  facetViews(f.Sizes),
		Colors: facetViews(f.Colors),
	}, nil
}

func (q *dressQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*DressView, error) {
	d, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return dressView(d), nil
}

func (q *dressQueriesImpl) Availability(ctx context.Context, id uuid.UUID, r calendar.DateRange) (*AvailabilityView, error) {
	// an unknown dress is not found, never "available"
	if _, err := q.find(ctx, id); err != nil {
		return nil, err
	}
	verdict, err := q.checker.IsAvailable(ctx, id, r)
	if err != nil {
		return nil, err
	}
	return &AvailabilityView{
		DressID:   id,
		Range:     rangeView(r),
		Available: verdict.Available,
		Conflict:  rangeViewPtr(verdict.Conflict),
	}, nil
}

func (q *dressQueriesImpl) Quote(ctx context.Context, id uuid.UUID, r calendar.DateRange) (*QuoteView, error) {
	d, err := q.find(ctx, id)
	if err != nil {
		return nil, err
	}
	quote, err := q.calc.Quote(d.Pricing(), r)
	if err != nil {
		return nil, err
	}
	return quoteView(id, r, quote), nil
}

func (q *dressQueriesImpl) find(ctx context.Context, id uuid.UUID) (*dress.Dress, error) {
	d, err := q.catalog.FindDress(ctx, id)
	if err != nil {
		if errs.Is(err, shared.ErrDressNotFound) {
			return nil, errs.Mark(err, ErrDressNotFound)
		}
		return nil, errs.Wrap(err, "find dress")
	}
	return d, nil
}
