//go:build unit

package cartstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/cart"
	"allure-rental/internal/domain/money"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ttl = time.Hour

func sampleCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.New("cart-abc")
	require.NoError(t, err)
	r := calendar.MustParseRange("2025-12-01", "2025-12-05")
	c.Put(cart.Item{DressID: uuid.New(), Name: "Robe Lina", PricePerDay: money.FromCents(4500), Range: &r})
	c.Put(cart.Item{DressID: uuid.New(), Name: "Robe Jade", PricePerDay: money.FromCents(6000)})
	return c
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing cart loads empty", func(t *testing.T) {
		client, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(Key("cart-abc")).RedisNil()

		c, err := NewRedisStore(client, ttl).Load(ctx, "cart-abc")
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		assert.Equal(t, "cart-abc", c.ID())
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("save then load keeps items and order", func(t *testing.T) {
		client, redisMock := redismock.NewClientMock()
		c := sampleCart(t)
		payload, err := marshalCart(c)
		require.NoError(t, err)

		redisMock.ExpectSet(Key(c.ID()), string(payload), ttl).SetVal("OK")
		redisMock.ExpectGet(Key(c.ID())).SetVal(string(payload))

		store := NewRedisStore(client, ttl)
		require.NoError(t, store.Save(ctx, c))
		loaded, err := store.Load(ctx, c.ID())
		require.NoError(t, err)

		want, got := c.Items(), loaded.Items()
		require.Len(t, got, 2)
		assert.Equal(t, want[0].DressID, got[0].DressID)
		assert.True(t, want[0].Range.Equal(*got[0].Range))
		assert.Nil(t, got[1].Range)
		assert.Equal(t, int64(6000), got[1].PricePerDay.Cents())
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("saving an empty cart deletes it", func(t *testing.T) {
		client, redisMock := redismock.NewClientMock()
		c, _ := cart.New("cart-abc")
		redisMock.ExpectDel(Key("cart-abc")).SetVal(1)

		require.NoError(t, NewRedisStore(client, ttl).Save(ctx, c))
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("redis error is reported", func(t *testing.T) {
		client, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(Key("cart-abc")).SetErr(errors.New("i/o timeout"))

		_, err := NewRedisStore(client, ttl).Load(ctx, "cart-abc")
		require.Error(t, err)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	c := sampleCart(t)

	require.NoError(t, store.Save(ctx, c))
	loaded, err := store.Load(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())

	require.NoError(t, store.Delete(ctx, c.ID()))
	loaded, err = store.Load(ctx, c.ID())
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
