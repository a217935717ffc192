package memstore

import (
	"context"
	"sort"
	"sync"

	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store keeps reservations in process. A single lock covers the check and the
// insert, so it gives the same all-or-nothing guarantee as the Postgres store
// within one process.
type Store struct {
	mu        sync.RWMutex
	byDress   map[uuid.UUID][]*reservation.Reservation
	prospects map[uuid.UUID]*reservation.Prospect
}

func New() *Store {
	return &Store{
		byDress:   make(map[uuid.UUID][]*reservation.Reservation),
		prospects: make(map[uuid.UUID]*reservation.Prospect),
	}
}

func (s *Store) ListReservations(ctx context.Context, dressID uuid.UUID) ([]*reservation.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*reservation.Reservation, 0, len(s.byDress[dressID]))
	for _, r := range s.byDress[dressID] {
		if r.IsActive() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) CreateReservations(ctx context.Context, p *reservation.Prospect) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := p.Reservations()
	var conflicts []shared.ConflictItem
	for j, r := range lines {
		if c, ok := s.firstOverlap(r); ok {
			conflicts = append(conflicts, shared.ConflictItem{DressID: r.DressID(), Range: r.DateRange(), Conflict: c.DateRange()})
			continue
		}
		for i := 0; i < j; i++ {
			if lines[i].DressID() == r.DressID() && lines[i].DateRange().Overlaps(r.DateRange()) {
				conflicts = append(conflicts, shared.ConflictItem{DressID: r.DressID(), Range: r.DateRange(), Conflict: lines[i].DateRange()})
				break
			}
		}
	}
	if len(conflicts) > 0 {
		return &shared.ConflictError{Items: conflicts}
	}

	for _, r := range lines {
		list := append(s.byDress[r.DressID()], r)
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].DateRange().Start().Before(list[j].DateRange().Start())
		})
		s.byDress[r.DressID()] = list
	}
	s.prospects[p.ID()] = p
	return nil
}

func (s *Store) FindProspect(ctx context.Context, id uuid.UUID) (*reservation.Prospect, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prospects[id]
	if !ok {
		return nil, shared.ErrProspectNotFound
	}
	return p, nil
}

func (s *Store) firstOverlap(candidate *reservation.Reservation) (*reservation.Reservation, bool) {
	for _, r := range s.byDress[candidate.DressID()] {
		if r.IsActive() && r.DateRange().Overlaps(candidate.DateRange()) {
			return r, true
		}
	}
	return nil, false
}
