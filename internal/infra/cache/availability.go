package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/money"
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const availabilityKeyPrefix = "availability:"

func AvailabilityKey(dressID uuid.UUID) string {
	return availabilityKeyPrefix + dressID.String()
}

// AvailabilityCache keeps each dress's active reservations in redis for
// browse-time checks. Entries are advisory; every redis failure falls back
// to the store.
type AvailabilityCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewAvailabilityCache(client redis.Cmdable, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

type entry struct {
	ID          uuid.UUID `json:"id"`
	ProspectID  uuid.UUID `json:"prospect_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	Days        int       `json:"days"`
	PricePerDay int64     `json:"price_per_day_cents"`
	Total       int64     `json:"total_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

func encode(list []*reservation.Reservation) ([]byte, error) {
	entries := make([]entry, 0, len(list))
	for _, r := range list {
		q := r.Quote()
		entries = append(entries, entry{
			ID:          r.ID(),
			ProspectID:  r.ProspectID(),
			Start:       r.DateRange().Start(),
			End:         r.DateRange().End(),
			Status:      r.Status().String(),
			Days:        q.Days,
			PricePerDay: q.PricePerDay.Cents(),
			Total:       q.Total.Cents(),
			CreatedAt:   r.CreatedAt(),
		})
	}
	return json.Marshal(entries)
}

func decode(dressID uuid.UUID, data []byte) ([]*reservation.Reservation, error) {
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	out := make([]*reservation.Reservation, 0, len(entries))
	for _, e := range entries {
		dr, err := calendar.NewDateRange(e.Start, e.End)
		if err != nil {
			return nil, err
		}
		status := reservation.Status(e.Status)
		if !status.IsValid() {
			return nil, reservation.ErrInvalidStatus
		}
		out = append(out, reservation.ReconstructReservation(
			e.ID, e.ProspectID, dressID, dr, status,
			reservation.Quote{Days: e.Days, PricePerDay: money.FromCents(e.PricePerDay), Total: money.FromCents(e.Total)},
			reservation.NewNote(""),
			e.CreatedAt,
		))
	}
	return out, nil
}

func (c *AvailabilityCache) get(ctx context.Context, dressID uuid.UUID) ([]*reservation.Reservation, bool) {
	key := AvailabilityKey(dressID)
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "availability cache read failed", "key", key, "error", err.Error())
		}
		return nil, false
	}
	list, err := decode(dressID, data)
	if err != nil {
		slog.WarnContext(ctx, "discarding unreadable availability cache entry", "key", key, "error", err.Error())
		c.Invalidate(ctx, dressID)
		return nil, false
	}
	return list, true
}

func (c *AvailabilityCache) put(ctx context.Context, dressID uuid.UUID, list []*reservation.Reservation) {
	key := AvailabilityKey(dressID)
	data, err := encode(list)
	if err != nil {
		slog.WarnContext(ctx, "availability cache encode failed", "key", key, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, key, string(data), c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "availability cache write failed", "key", key, "error", err.Error())
	}
}

// Invalidate drops the cached entries of the given dresses.
func (c *AvailabilityCache) Invalidate(ctx context.Context, dressIDs ...uuid.UUID) {
	if len(dressIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(dressIDs))
	for _, id := range dressIDs {
		keys = append(keys, AvailabilityKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.WarnContext(ctx, "availability cache invalidation failed", "keys", keys, "error", err.Error())
	}
}

// CachedLister serves ListReservations from the cache when it can.
type CachedLister struct {
	cache *AvailabilityCache
	inner shared.ReservationStore
}

func NewCachedLister(cache *AvailabilityCache, inner shared.ReservationStore) *CachedLister {
	return &CachedLister{cache: cache, inner: inner}
}

func (l *CachedLister) ListReservations(ctx context.Context, dressID uuid.UUID) ([]*reservation.Reservation, error) {
	if list, ok := l.cache.get(ctx, dressID); ok {
		return list, nil
	}
	list, err := l.inner.ListReservations(ctx, dressID)
	if err != nil {
		return nil, err
	}
	l.cache.put(ctx, dressID, list)
	return list, nil
}

// InvalidatingStore passes everything to the inner store uncached and drops
// the cache entries of every dress it commits.
type InvalidatingStore struct {
	cache *AvailabilityCache
	inner shared.ReservationStore
}

func NewInvalidatingStore(cache *AvailabilityCache, inner shared.ReservationStore) *InvalidatingStore {
	return &InvalidatingStore{cache: cache, inner: inner}
}

func (s *InvalidatingStore) ListReservations(ctx context.Context, dressID uuid.UUID) ([]*reservation.Reservation, error) {
	return s.inner.ListReservations(ctx, dressID)
}

func (s *InvalidatingStore) CreateReservations(ctx context.Context, p *reservation.Prospect) error {
	if err := s.inner.CreateReservations(ctx, p); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, p.DressIDs()...)
	return nil
}
