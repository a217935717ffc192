package reservation

import (
	"errors"
	"time"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid reservation status")
	ErrNoLines       = errors.New("prospect has no reservations")
)

// Reservation is a claim on one dress over one date range.
type Reservation struct {
	id         uuid.UUID
	prospectID uuid.UUID
	dressID    uuid.UUID
	dateRange  calendar.DateRange
	status     Status
	quote      Quote
	notes      Note
	createdAt  time.Time
}

func NewReservation(
	prospectID, dressID uuid.UUID,
	r calendar.DateRange,
	quote Quote,
	notes Note,
	now time.Time,
) (*Reservation, error) {
	if r.IsZero() {
		return nil, calendar.ErrInvalidRange
	}
	if quote.Total.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Reservation{
		id:         uuid.New(),
		prospectID: prospectID,
		dressID:    dressID,
		dateRange:  r,
		status:     StatusPending,
		quote:      quote,
		notes:      notes,
		createdAt:  now,
	}, nil
}

func ReconstructReservation(
	id, prospectID, dressID uuid.UUID,
	r calendar.DateRange,
	status Status,
	quote Quote,
	notes Note,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		prospectID: prospectID,
		dressID:    dressID,
		dateRange:  r,
		status:     status,
		quote:      quote,
		notes:      notes,
		createdAt:  createdAt,
	}
}

func (r *Reservation) IsActive() bool {
	return r.status.Blocks()
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) ProspectID() uuid.UUID         { return r.prospectID }
func (r *Reservation) DressID() uuid.UUID            { return r.dressID }
func (r *Reservation) DateRange() calendar.DateRange { return r.dateRange }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) Quote() Quote                  { return r.quote }
func (r *Reservation) EstimatedCost() money.Money    { return r.quote.Total }
func (r *Reservation) Notes() Note                   { return r.notes }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }

// Prospect groups the reservations of one submission with the customer who
// made it. It is persisted as a whole or not at all.
type Prospect struct {
	id           uuid.UUID
	customer     Customer
	status       ProspectStatus
	source       string
	reservations []*Reservation
	createdAt    time.Time
}

func ReconstructProspect(
	id uuid.UUID,
	customer Customer,
	status ProspectStatus,
	source string,
	reservations []*Reservation,
	createdAt time.Time,
) *Prospect {
	return &Prospect{
		id:           id,
		customer:     customer,
		status:       status,
		source:       source,
		reservations: reservations,
		createdAt:    createdAt,
	}
}

func (p *Prospect) ID() uuid.UUID          { return p.id }
func (p *Prospect) Customer() Customer     { return p.customer }
func (p *Prospect) Status() ProspectStatus { return p.status }
func (p *Prospect) Source() string         { return p.source }
func (p *Prospect) CreatedAt() time.Time   { return p.createdAt }

func (p *Prospect) Reservations() []*Reservation {
	out := make([]*Reservation, len(p.reservations))
	copy(out, p.reservations)
	return out
}

// DressIDs returns the distinct dresses claimed by the prospect.
func (p *Prospect) DressIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(p.reservations))
	ids := make([]uuid.UUID, 0, len(p.reservations))
	for _, r := range p.reservations {
		if _, ok := seen[r.dressID]; ok {
			continue
		}
		seen[r.dressID] = struct{}{}
		ids = append(ids, r.dressID)
	}
	return ids
}

func (p *Prospect) Total() money.Money {
	var total money.Money
	for _, r := range p.reservations {
		total = total.Add(r.quote.Total)
	}
	return total
}
