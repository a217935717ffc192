package shared

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrStoreConflict    = errors.New("reservation overlaps an existing reservation")
	ErrProspectNotFound = errors.New("prospect not found")
)

// ReservationStore is the persistence contract of the engine.
type ReservationStore interface {
	// ListReservations returns the non-cancelled reservations of a dress.
	ListReservations(ctx context.Context, dressID uuid.UUID) ([]*reservation.Reservation, error)
	// CreateReservations persists the prospect with all its reservations, or
	// nothing. Implementations re-check overlaps themselves and report them
	// as *ConflictError.
	CreateReservations(ctx context.Context, p *reservation.Prospect) error
}

type ProspectReader interface {
	FindProspect(ctx context.Context, id uuid.UUID) (*reservation.Prospect, error)
}

type ConflictItem struct {
	DressID  uuid.UUID
	Range    calendar.DateRange
	Conflict calendar.DateRange
}

// ConflictError lists the requested ranges found to overlap at commit time.
type ConflictError struct {
	Items []ConflictItem
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		parts = append(parts, fmt.Sprintf("dress %s %s overlaps %s", it.DressID, it.Range, it.Conflict))
	}
	return ErrStoreConflict.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrStoreConflict
}
