package availability

import (
	"context"
	"log/slog"
	"sort"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrCheckFailed means availability could not be determined. It is never
	// reported as "available".
	ErrCheckFailed = errs.New("availability check failed")
	ErrUnavailable = errs.New("dress is not available for the requested dates")
)

// Lister is the read side of the reservation store.
type Lister interface {
	ListReservations(ctx context.Context, dressID uuid.UUID) ([]*reservation.Reservation, error)
}

type Verdict struct {
	Available             bool
	Conflict              *calendar.DateRange
	ConflictReservationID *uuid.UUID
}

// Err returns ErrUnavailable for a negative verdict.
func (v Verdict) Err() error {
	if v.Available {
		return nil
	}
	if v.Conflict != nil {
		return errs.Wrapf(ErrUnavailable, "conflicts with %s", v.Conflict)
	}
	return ErrUnavailable
}

type Checker interface {
	IsAvailable(ctx context.Context, dressID uuid.UUID, candidate calendar.DateRange) (Verdict, error)
}

type checkerImpl struct {
	lister Lister
}

func NewChecker(lister Lister) Checker {
	return &checkerImpl{lister: lister}
}

func (c *checkerImpl) IsAvailable(ctx context.Context, dressID uuid.UUID, candidate calendar.DateRange) (Verdict, error) {
	if candidate.IsZero() {
		return Verdict{}, calendar.ErrInvalidRange
	}

	existing, err := c.lister.ListReservations(ctx, dressID)
	if err != nil {
		slog.WarnContext(ctx, "availability check failed",
			"dress_id", dressID.String(),
			"range", candidate.String(),
			"error", err.Error())
		return Verdict{Available: false}, errs.Mark(errs.Wrap(err, "list reservations"), ErrCheckFailed)
	}

	conflict := firstConflict(existing, candidate)
	if conflict == nil {
		return Verdict{Available: true}, nil
	}

	r := conflict.DateRange()
	id := conflict.ID()
	return Verdict{Available: false, Conflict: &r, ConflictReservationID: &id}, nil
}

// firstConflict returns the earliest-starting active reservation overlapping candidate.
func firstConflict(existing []*reservation.Reservation, candidate calendar.DateRange) *reservation.Reservation {
	var overlapping []*reservation.Reservation
	for _, r := range existing {
		if !r.IsActive() {
			continue
		}
		if calendar.Overlaps(r.DateRange(), candidate) {
			overlapping = append(overlapping, r)
		}
	}
	if len(overlapping) == 0 {
		return nil
	}
	sort.SliceStable(overlapping, func(i, j int) bool {
		return overlapping[i].DateRange().Start().Before(overlapping[j].DateRange().Start())
	})
	return overlapping[0]
}
