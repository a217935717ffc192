//go:build unit

package queries_test

import (
	"context"
	"testing"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/cart"
	"allure-rental/internal/domain/money"
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/infra/cartstore"
	"allure-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartQueries_Get(t *testing.T) {
	ctx := context.Background()
	store := cartstore.NewMemoryStore()
	q := queries.NewCartQueries(store, reservation.NewDailyRateCalculator())

	t.Run("unknown cart is empty", func(t *testing.T) {
		v, err := q.Get(ctx, "fresh-cart")
		require.NoError(t, err)
		assert.Empty(t, v.Items)
		assert.Equal(t, int64(0), v.TotalCents)
		assert.False(t, v.Complete)
	})

	t.Run("totals dated items only", func(t *testing.T) {
		r := calendar.MustParseRange("2025-12-01", "2025-12-04")
		dated := cart.Item{DressID: uuid.New(), Name: "Robe Lina", PricePerDay: money.FromCents(4990), Range: &r}
		undated := cart.Item{DressID: uuid.New(), Name: "Robe Jade", PricePerDay: money.FromCents(6000)}
		require.NoError(t, store.Save(ctx, cart.Reconstruct("cart-1", []cart.Item{dated, undated})))

		v, err := q.Get(ctx, "cart-1")
		require.NoError(t, err)
		require.Len(t, v.Items, 2)
		assert.Equal(t, int64(14970), v.TotalCents)
		assert.False(t, v.Complete)

		require.NotNil(t, v.Items[0].Quote)
		assert.Equal(t, 3, v.Items[0].Quote.Days)
		assert.Equal(t, &queries.RangeView{Start: "2025-12-01", End: "2025-12-04"}, v.Items[0].Range)
		assert.Nil(t, v.Items[1].Quote)
		assert.Nil(t, v.Items[1].Range)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := q.Get(ctx, "../etc")
		assert.ErrorIs(t, err, cart.ErrInvalidCartID)
	})
}
