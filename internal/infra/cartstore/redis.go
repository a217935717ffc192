package cartstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"allure-rental/internal/domain/cart"
	"allure-rental/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

func Key(id string) string {
	return cartKeyPrefix + id
}

// RedisStore keeps each cart as one JSON document that expires after ttl of
// inactivity.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, id string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(id)
	}
	if err != nil {
		return nil, errs.Wrap(err, "redis get cart")
	}

	c, err := unmarshalCart(id, data)
	if err != nil {
		slog.WarnContext(ctx, "discarding unreadable cart", "cart_id", id, "error", err.Error())
		return cart.New(id)
	}
	return c, nil
}

func (s *RedisStore) Save(ctx context.Context, c *cart.Cart) error {
	if c.IsEmpty() {
		return s.Delete(ctx, c.ID())
	}
	data, err := marshalCart(c)
	if err != nil {
		return errs.Wrap(err, "encode cart")
	}
	return errs.Wrap(s.client.Set(ctx, Key(c.ID()), string(data), s.ttl).Err(), "redis set cart")
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return errs.Wrap(s.client.Del(ctx, Key(id)).Err(), "redis del cart")
}
