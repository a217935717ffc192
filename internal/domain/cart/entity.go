package cart

import (
	"context"
	"errors"
	"sort"
	"strings"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/dress"
	"allure-rental/internal/domain/money"
	"allure-rental/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrIncompleteItem = errors.New("cart item has no rental dates")
	ErrInvalidCartID  = errors.New("invalid cart id")
	ErrItemNotFound   = errors.New("dress is not in the cart")
)

const maxCartIDLength = 64

// Item is a dress waiting in the cart. Range is nil until the customer picks dates.
type Item struct {
	DressID     uuid.UUID
	Name        string
	Reference   string
	Image       string
	PricePerDay money.Money
	Range       *calendar.DateRange
	Notes       string
}

func (i Item) Complete() bool {
	return i.Range != nil && !i.Range.IsZero()
}

func (i Item) Pricing() dress.Pricing {
	return dress.Pricing{ID: i.DressID, PricePerDay: i.PricePerDay}
}

// Cart holds at most one item per dress; putting a dress again replaces it.
type Cart struct {
	id    string
	items map[uuid.UUID]Item
	order []uuid.UUID
}

func New(id string) (*Cart, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	return &Cart{id: id, items: make(map[uuid.UUID]Item)}, nil
}

// ValidateID accepts opaque client-chosen ids made of letters, digits, '-' and '_'.
func ValidateID(id string) error {
	if id == "" || len(id) > maxCartIDLength {
		return ErrInvalidCartID
	}
	if strings.IndexFunc(id, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_')
	}) >= 0 {
		return ErrInvalidCartID
	}
	return nil
}

func Reconstruct(id string, items []Item) *Cart {
	c := &Cart{id: id, items: make(map[uuid.UUID]Item, len(items))}
	for _, it := range items {
		c.Put(it)
	}
	return c
}

func (c *Cart) ID() string { return c.id }

func (c *Cart) Put(item Item) {
	if _, ok := c.items[item.DressID]; !ok {
		c.order = append(c.order, item.DressID)
	}
	c.items[item.DressID] = item
}

func (c *Cart) Remove(dressID uuid.UUID) error {
	if _, ok := c.items[dressID]; !ok {
		return ErrItemNotFound
	}
	delete(c.items, dressID)
	for i, id := range c.order {
		if id == dressID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *Cart) Clear() {
	c.items = make(map[uuid.UUID]Item)
	c.order = nil
}

// Items returns the items in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Validate reports whether the cart can be checked out.
func (c *Cart) Validate() error {
	if c.IsEmpty() {
		return ErrEmptyCart
	}
	for _, it := range c.items {
		if !it.Complete() {
			return ErrIncompleteItem
		}
	}
	return nil
}

// Total sums the quotes of the dated items. Undated items are skipped.
func (c *Cart) Total(calc reservation.PriceCalculator) (money.Money, error) {
	var total money.Money
	for _, it := range c.Items() {
		if !it.Complete() {
			continue
		}
		q, err := calc.Quote(it.Pricing(), *it.Range)
		if err != nil {
			return money.Money{}, err
		}
		total = total.Add(q.Total)
	}
	return total, nil
}

// DressIDs returns the dresses in the cart sorted by id.
func (c *Cart) DressIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// Store persists carts between requests. Load returns an empty cart when
// nothing is stored under id.
type Store interface {
	Load(ctx context.Context, id string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, id string) error
}
