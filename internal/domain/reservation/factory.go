package reservation

import (
	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/dress"
	"allure-rental/internal/pkg/clock"

	"github.com/google/uuid"
)

// Line is one requested dress with its priced range.
type Line struct {
	Dress dress.Pricing
	Range calendar.DateRange
	Notes Note
}

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateProspect prices every line and returns a new prospect holding pending
// reservations. Nothing is persisted.
func (f *Factory) CreateProspect(customer Customer, lines []Line) (*Prospect, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	now := f.Clock.Now().UTC()
	prospectID := uuid.New()
	reservations := make([]*Reservation, 0, len(lines))
	for _, line := range lines {
		if err := line.Range.ValidateNotPastAt(now); err != nil {
			return nil, err
		}
		quote, err := f.PriceCalculator.Quote(line.Dress, line.Range)
		if err != nil {
			return nil, err
		}
		r, err := NewReservation(prospectID, line.Dress.ID, line.Range, quote, line.Notes, now)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, r)
	}

	return &Prospect{
		id:           prospectID,
		customer:     customer,
		status:       ProspectStatusNew,
		source:       SourceWebsite,
		reservations: reservations,
		createdAt:    now,
	}, nil
}
