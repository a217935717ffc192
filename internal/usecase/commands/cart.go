package commands

import (
	"context"
	"log/slog"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/cart"
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/usecase/availability"
	"allure-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type PutItemParams struct {
	CartID  string
	DressID uuid.UUID
	Range   *calendar.DateRange
	Notes   string
}

type CartCommands interface {
	PutItem(ctx context.Context, params PutItemParams) (*cart.Cart, error)
	RemoveItem(ctx context.Context, cartID string, dressID uuid.UUID) (*cart.Cart, error)
	Clear(ctx context.Context, cartID string) error
	// Checkout submits the cart as one reservation request and empties it on success.
	Checkout(ctx context.Context, cartID string, customer reservation.Customer) (*SubmitResult, error)
}

type cartCommandsImpl struct {
	carts        cart.Store
	catalog      shared.DressCatalog
	checker      availability.Checker
	reservations ReservationCommands
}

// NewCartCommands takes the browse-time checker. Its verdicts are advisory;
// Checkout re-checks everything through ReservationCommands.
func NewCartCommands(
	carts cart.Store,
	catalog shared.DressCatalog,
	checker availability.Checker,
	reservations ReservationCommands,
) CartCommands {
	return &cartCommandsImpl{
		carts:        carts,
		catalog:      catalog,
		checker:      checker,
		reservations: reservations,
	}
}

func (c *cartCommandsImpl) PutItem(ctx context.Context, params PutItemParams) (*cart.Cart, error) {
	if err := cart.ValidateID(params.CartID); err != nil {
		return nil, err
	}

	d, err := c.catalog.FindDress(ctx, params.DressID)
	if err != nil {
		if errs.Is(err, shared.ErrDressNotFound) {
			return nil, errs.Mark(err, ErrDressNotFound)
		}
		return nil, errs.Wrap(err, "look up dress")
	}

	if params.Range != nil {
		verdict, err := c.checker.IsAvailable(ctx, d.ID, *params.Range)
		if err != nil {
			return nil, err
		}
		if err := verdict.Err(); err != nil {
			return nil, err
		}
	}

	current, err := c.carts.Load(ctx, params.CartID)
	if err != nil {
		return nil, errs.Wrap(err, "load cart")
	}

	item := cart.Item{
		DressID:     d.ID,
		Name:        d.Name,
		Reference:   d.Reference,
		PricePerDay: d.PricePerDay,
		Range:       params.Range,
		Notes:       params.Notes,
	}
	if len(d.Images) > 0 {
		item.Image = d.Images[0]
	}
	current.Put(item)

	if err := c.carts.Save(ctx, current); err != nil {
		return nil, errs.Wrap(err, "save cart")
	}
	return current, nil
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, cartID string, dressID uuid.UUID) (*cart.Cart, error) {
	if err := cart.ValidateID(cartID); err != nil {
		return nil, err
	}
	current, err := c.carts.Load(ctx, cartID)
	if err != nil {
		return nil, errs.Wrap(err, "load cart")
	}
	if err := current.Remove(dressID); err != nil {
		return nil, err
	}
	if err := c.carts.Save(ctx, current); err != nil {
		return nil, errs.Wrap(err, "save cart")
	}
	return current, nil
}

func (c *cartCommandsImpl) Clear(ctx context.Context, cartID string) error {
	if err := cart.ValidateID(cartID); err != nil {
		return err
	}
	return errs.Wrap(c.carts.Delete(ctx, cartID), "delete cart")
}

func (c *cartCommandsImpl) Checkout(ctx context.Context, cartID string, customer reservation.Customer) (*SubmitResult, error) {
	if err := cart.ValidateID(cartID); err != nil {
		return nil, err
	}
	current, err := c.carts.Load(ctx, cartID)
	if err != nil {
		return nil, errs.Wrap(err, "load cart")
	}

	if err := current.Validate(); err != nil {
		switch {
		case errs.Is(err, cart.ErrEmptyCart):
			return nil, errs.Mark(err, ErrNoItems)
		case errs.Is(err, cart.ErrIncompleteItem):
			return nil, errs.Mark(err, ErrIncompleteItem)
		}
		return nil, err
	}

	items := current.Items()
	params := SubmitParams{Customer: customer, Items: make([]SubmitItem, 0, len(items))}
	for _, it := range items {
		params.Items = append(params.Items, SubmitItem{
			DressID: it.DressID,
			Range:   *it.Range,
			Notes:   it.Notes,
		})
	}

	result, err := c.reservations.Submit(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := c.carts.Delete(ctx, cartID); err != nil {
		slog.WarnContext(ctx, "failed to clear cart after checkout",
			"cart_id", cartID,
			"prospect_id", result.ProspectID.String(),
			"error", err.Error())
	}
	return result, nil
}
