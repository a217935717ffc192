//go:build unit

package cart_test

import (
	"testing"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/cart"
	"allure-rental/internal/domain/money"
	"allure-rental/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datedItem(id uuid.UUID, cents int64, start, end string) cart.Item {
	r := calendar.MustParseRange(start, end)
	return cart.Item{DressID: id, Name: "Robe " + id.String()[:4], PricePerDay: money.FromCents(cents), Range: &r}
}

func TestCart(t *testing.T) {
	t.Run("put replaces the item for the same dress", func(t *testing.T) {
		c, err := cart.New("cart-1")
		require.NoError(t, err)

		id := uuid.New()
		c.Put(datedItem(id, 5000, "2025-12-01", "2025-12-05"))
		c.Put(datedItem(id, 5000, "2025-12-10", "2025-12-11"))

		require.Equal(t, 1, c.Len())
		assert.Equal(t, "2025-12-10", c.Items()[0].Range.StartDate())
	})

	t.Run("items keep insertion order", func(t *testing.T) {
		c, _ := cart.New("cart-2")
		a, b, d := uuid.New(), uuid.New(), uuid.New()
		c.Put(cart.Item{DressID: a})
		c.Put(cart.Item{DressID: b})
		c.Put(cart.Item{DressID: d})
		require.NoError(t, c.Remove(b))

		items := c.Items()
		require.Len(t, items, 2)
		assert.Equal(t, a, items[0].DressID)
		assert.Equal(t, d, items[1].DressID)
	})

	t.Run("remove unknown dress", func(t *testing.T) {
		c, _ := cart.New("cart-3")
		require.ErrorIs(t, c.Remove(uuid.New()), cart.ErrItemNotFound)
	})

	t.Run("validate", func(t *testing.T) {
		c, _ := cart.New("cart-4")
		require.ErrorIs(t, c.Validate(), cart.ErrEmptyCart)

		c.Put(cart.Item{DressID: uuid.New()})
		require.ErrorIs(t, c.Validate(), cart.ErrIncompleteItem)

		c.Clear()
		c.Put(datedItem(uuid.New(), 5000, "2025-12-01", "2025-12-05"))
		require.NoError(t, c.Validate())
	})

	t.Run("total skips undated items", func(t *testing.T) {
		c, _ := cart.New("cart-5")
		c.Put(datedItem(uuid.New(), 5000, "2025-12-01", "2025-12-05"))
		c.Put(datedItem(uuid.New(), 2500, "2025-12-01", "2025-12-03"))
		c.Put(cart.Item{DressID: uuid.New(), PricePerDay: money.FromCents(9900)})

		total, err := c.Total(reservation.NewDailyRateCalculator())
		require.NoError(t, err)
		assert.Equal(t, int64(25000), total.Cents())
	})
}

func TestValidateID(t *testing.T) {
	for _, id := range []string{"abc", "A-1_b", uuid.NewString()} {
		assert.NoError(t, cart.ValidateID(id), id)
	}
	for _, id := range []string{"", "with space", "../etc", "a:b"} {
		assert.ErrorIs(t, cart.ValidateID(id), cart.ErrInvalidCartID, id)
	}
}
