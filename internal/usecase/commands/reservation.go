package commands

import (
	"context"
	"log/slog"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/dress"
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/usecase/availability"
	"allure-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentLookups = 8

type ReservationCommands interface {
	// Submit reserves every item of the request or none of them.
	Submit(ctx context.Context, params SubmitParams) (*SubmitResult, error)
}

type reservationCommandsImpl struct {
	store   shared.ReservationStore
	catalog shared.DressCatalog
	checker availability.Checker
	factory *reservation.Factory
}

// NewReservationCommands checks availability against store directly, never
// through a cache.
func NewReservationCommands(
	store shared.ReservationStore,
	catalog shared.DressCatalog,
	factory *reservation.Factory,
) ReservationCommands {
	return &reservationCommandsImpl{
		store:   store,
		catalog: catalog,
		checker: availability.NewChecker(store),
		factory: factory,
	}
}

type submission struct {
	id     uuid.UUID
	state  SubmitState
	logger *slog.Logger
}

func (s *submission) enter(ctx context.Context, next SubmitState) {
	s.logger.InfoContext(ctx, "reservation submission state changed",
		"from", string(s.state),
		"to", string(next))
	s.state = next
}

func (s *submission) reject(ctx context.Context, err error) error {
	s.enter(ctx, StateRejected)
	return err
}

func (r *reservationCommandsImpl) Submit(ctx context.Context, params SubmitParams) (*SubmitResult, error) {
	sub := &submission{id: uuid.New()}
	sub.logger = slog.Default().With(
		"submission_id", sub.id.String(),
		"items", len(params.Items))
	sub.enter(ctx, StateValidating)

	customer, lines, err := r.validate(ctx, params)
	if err != nil {
		return nil, sub.reject(ctx, err)
	}

	sub.enter(ctx, StateCheckingAvailability)
	failures, err := r.checkAvailability(ctx, lines)
	if err != nil {
		return nil, sub.reject(ctx, err)
	}
	if len(failures) > 0 {
		return nil, sub.reject(ctx, &RejectionError{State: StateRejected, Failures: failures})
	}

	sub.enter(ctx, StateCommitting)
	prospect, err := r.factory.CreateProspect(customer, lines)
	if err != nil {
		return nil, sub.reject(ctx, errs.Mark(errs.Wrap(err, "build prospect"), ErrCommitFailed))
	}

	if err := r.store.CreateReservations(ctx, prospect); err != nil {
		var conflict *shared.ConflictError
		if errs.As(err, &conflict) {
			return nil, sub.reject(ctx, rejectionFromConflict(conflict))
		}
		sub.logger.ErrorContext(ctx, "failed to create reservations", "error", err.Error())
		return nil, sub.reject(ctx, errs.Mark(errs.Wrap(err, "create reservations"), ErrCommitFailed))
	}

	sub.enter(ctx, StateCommitted)
	return newSubmitResult(prospect, StateCommitted), nil
}

func (r *reservationCommandsImpl) validate(ctx context.Context, params SubmitParams) (reservation.Customer, []reservation.Line, error) {
	if len(params.Items) == 0 {
		return reservation.Customer{}, nil, ErrNoItems
	}
	for i, item := range params.Items {
		if item.DressID == uuid.Nil || item.Range.IsZero() {
			return reservation.Customer{}, nil, errs.Wrapf(ErrIncompleteItem, "item %d", i)
		}
	}
	now := r.factory.Clock.Now()
	for i, item := range params.Items {
		if err := item.Range.ValidateNotPastAt(now); err != nil {
			return reservation.Customer{}, nil, errs.Wrapf(err, "item %d", i)
		}
	}

	customer, err := reservation.NewCustomer(params.Customer)
	if err != nil {
		return reservation.Customer{}, nil, errs.Mark(err, ErrInvalidCustomer)
	}

	if failures := overlappingItems(params.Items); len(failures) > 0 {
		return reservation.Customer{}, nil, &RejectionError{State: StateRejected, Failures: failures}
	}

	pricing, err := r.resolvePricing(ctx, params.Items)
	if err != nil {
		return reservation.Customer{}, nil, err
	}

	lines := make([]reservation.Line, 0, len(params.Items))
	for _, item := range params.Items {
		lines = append(lines, reservation.Line{
			Dress: pricing[item.DressID],
			Range: item.Range,
			Notes: reservation.NewNote(item.Notes),
		})
	}
	return customer, lines, nil
}

// overlappingItems reports items that overlap an earlier item for the same
// dress in the same request.
func overlappingItems(items []SubmitItem) []ItemFailure {
	var failures []ItemFailure
	for j := range items {
		for i := 0; i < j; i++ {
			if items[i].DressID != items[j].DressID {
				continue
			}
			if calendar.Overlaps(items[i].Range, items[j].Range) {
				conflict := items[i].Range
				failures = append(failures, ItemFailure{
					DressID:  items[j].DressID,
					Range:    items[j].Range,
					Reason:   ReasonDuplicateInRequest,
					Conflict: &conflict,
				})
				break
			}
		}
	}
	return failures
}

func (r *reservationCommandsImpl) resolvePricing(ctx context.Context, items []SubmitItem) (map[uuid.UUID]dress.Pricing, error) {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.DressID]; ok {
			continue
		}
		seen[item.DressID] = struct{}{}
		ids = append(ids, item.DressID)
	}

	found := make([]dress.Pricing, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, id := range ids {
		g.Go(func() error {
			d, err := r.catalog.FindDress(gctx, id)
			if err != nil {
				if errs.Is(err, shared.ErrDressNotFound) {
					return errs.Mark(errs.Wrapf(err, "dress %s", id), ErrDressNotFound)
				}
				return errs.Mark(errs.Wrapf(err, "look up dress %s", id), ErrCheckFailed)
			}
			found[i] = d.Pricing()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pricing := make(map[uuid.UUID]dress.Pricing, len(ids))
	for _, p := range found {
		pricing[p.ID] = p
	}
	return pricing, nil
}

func (r *reservationCommandsImpl) checkAvailability(ctx context.Context, lines []reservation.Line) ([]ItemFailure, error) {
	verdicts := make([]availability.Verdict, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, line := range lines {
		g.Go(func() error {
			v, err := r.checker.IsAvailable(gctx, line.Dress.ID, line.Range)
			if err != nil {
				return err
			}
			verdicts[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errs.Mark(err, ErrCheckFailed)
	}

	var failures []ItemFailure
	for i, v := range verdicts {
		if v.Available {
			continue
		}
		failures = append(failures, ItemFailure{
			DressID:  lines[i].Dress.ID,
			Range:    lines[i].Range,
			Reason:   ReasonUnavailable,
			Conflict: v.Conflict,
		})
	}
	return failures, nil
}

func rejectionFromConflict(conflict *shared.ConflictError) *RejectionError {
	failures := make([]ItemFailure, 0, len(conflict.Items))
	for _, it := range conflict.Items {
		c := it.Conflict
		failures = append(failures, ItemFailure{
			DressID:  it.DressID,
			Range:    it.Range,
			Reason:   ReasonConflictOnCommit,
			Conflict: &c,
		})
	}
	return &RejectionError{State: StateRejected, Failures: failures}
}

func newSubmitResult(p *reservation.Prospect, state SubmitState) *SubmitResult {
	reservations := p.Reservations()
	lines := make([]ReservationLine, 0, len(reservations))
	for _, r := range reservations {
		lines = append(lines, ReservationLine{
			ID:      r.ID(),
			DressID: r.DressID(),
			Range:   r.DateRange(),
			Quote:   r.Quote(),
		})
	}
	return &SubmitResult{
		ProspectID:   p.ID(),
		Reservations: lines,
		Total:        p.Total(),
		State:        state,
	}
}
