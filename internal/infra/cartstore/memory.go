package cartstore

import (
	"context"
	"sync"

	"allure-rental/internal/domain/cart"
)

// MemoryStore is used when redis is not configured. Carts are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]cart.Item
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]cart.Item)}
}

func (s *MemoryStore) Load(_ context.Context, id string) (*cart.Cart, error) {
	s.mu.RLock()
	items, ok := s.carts[id]
	s.mu.RUnlock()
	if !ok {
		return cart.New(id)
	}
	return cart.Reconstruct(id, items), nil
}

func (s *MemoryStore) Save(_ context.Context, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.IsEmpty() {
		delete(s.carts, c.ID())
		return nil
	}
	s.carts[c.ID()] = c.Items()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
	return nil
}
