package queries

import (
	"context"

	"allure-rental/internal/domain/cart"
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/pkg/errs"
)

type CartQueries interface {
	Get(ctx context.Context, cartID string) (*CartView, error)
}

type cartQueriesImpl struct {
	carts cart.Store
	calc  reservation.PriceCalculator
}

func NewCartQueries(carts cart.Store, calc reservation.PriceCalculator) CartQueries {
	return &cartQueriesImpl{carts: carts, calc: calc}
}

func (q *cartQueriesImpl) Get(ctx context.Context, cartID string) (*CartView, error) {
	if err := cart.ValidateID(cartID); err != nil {
		return nil, err
	}
	c, err := q.carts.Load(ctx, cartID)
	if err != nil {
		return nil, errs.Wrap(err, "load cart")
	}

	total, err := c.Total(q.calc)
	if err != nil {
		return nil, err
	}

	view := &CartView{
		ID:         c.ID(),
		Items:      make([]CartItemView, 0, c.Len()),
		TotalCents: total.Cents(),
		Complete:   c.Validate() == nil,
	}
	for _, it := range c.Items() {
		item := CartItemView{
			DressID:          it.DressID,
			Name:             it.Name,
			Reference:        it.Reference,
			Image:            it.Image,
			PricePerDayCents: it.PricePerDay.Cents(),
			Range:            rangeViewPtr(it.Range),
			Notes:            it.Notes,
		}
		if it.Complete() {
			quote, err := q.calc.Quote(it.Pricing(), *it.Range)
			if err != nil {
				return nil, err
			}
			item.Quote = quoteView(it.DressID, *it.Range, quote)
		}
		view.Items = append(view.Items, item)
	}
	return view, nil
}
