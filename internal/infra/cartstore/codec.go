package cartstore

import (
	"encoding/json"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/cart"
	"allure-rental/internal/domain/money"

	"github.com/google/uuid"
)

type itemJSON struct {
	DressID          uuid.UUID           `json:"dress_id"`
	Name             string              `json:"name"`
	Reference        string              `json:"reference,omitempty"`
	Image            string              `json:"image,omitempty"`
	PricePerDayCents int64               `json:"price_per_day_cents"`
	Range            *calendar.DateRange `json:"range"`
	Notes            string              `json:"notes,omitempty"`
}

type cartJSON struct {
	ID    string     `json:"id"`
	Items []itemJSON `json:"items"`
}

func marshalCart(c *cart.Cart) ([]byte, error) {
	items := c.Items()
	out := cartJSON{ID: c.ID(), Items: make([]itemJSON, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, itemJSON{
			DressID:          it.DressID,
			Name:             it.Name,
			Reference:        it.Reference,
			Image:            it.Image,
			PricePerDayCents: it.PricePerDay.Cents(),
			Range:            it.Range,
			Notes:            it.Notes,
		})
	}
	return json.Marshal(out)
}

func unmarshalCart(id string, data []byte) (*cart.Cart, error) {
	var in cartJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	items := make([]cart.Item, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, cart.Item{
			DressID:     it.DressID,
			Name:        it.Name,
			Reference:   it.Reference,
			Image:       it.Image,
			PricePerDay: money.FromCents(it.PricePerDayCents),
			Range:       it.Range,
			Notes:       it.Notes,
		})
	}
	return cart.Reconstruct(id, items), nil
}
