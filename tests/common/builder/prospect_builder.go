//go:build unit || e2e

package builder

import (
	"time"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/dress"
	"allure-rental/internal/domain/money"
	"allure-rental/internal/domain/reservation"
	reqdto "allure-rental/internal/handler/dto/request"
	"allure-rental/internal/pkg/clock"

	"github.com/google/uuid"
)

var DefaultNow = time.Date(2025, time.November, 20, 9, 30, 0, 0, time.UTC)

type ProspectBuilder struct {
	Customer *CustomerBuilder
	Lines    []reservation.Line
	Now      time.Time
}

func NewProspectBuilder() *ProspectBuilder {
	return &ProspectBuilder{
		Customer: NewCustomerBuilder(),
		Now:      DefaultNow,
	}
}

func (p *ProspectBuilder) With(mutate func(*ProspectBuilder)) *ProspectBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ProspectBuilder) BuildDomain() (*reservation.Prospect, error) {
	customer, err := p.Customer.BuildDomain()
	if err != nil {
		return nil, err
	}
	factory := reservation.NewFactory(clock.NewMockClock(p.Now), reservation.NewDailyRateCalculator())
	return factory.CreateProspect(customer, p.Lines)
}

// MustBuildDomain is for fixtures whose data is known to be valid.
func (p *ProspectBuilder) MustBuildDomain() *reservation.Prospect {
	prospect, err := p.BuildDomain()
	if err != nil {
		panic(err)
	}
	return prospect
}

// BuildCreateRequestDTO renders the lines as the checkout page sends them.
func (p *ProspectBuilder) BuildCreateRequestDTO() reqdto.CreateProspectRequest {
	req := reqdto.CreateProspectRequest{
		CustomerRequest:   p.Customer.BuildRequestDTO(),
		DressReservations: make([]reqdto.DressReservationRequest, 0, len(p.Lines)),
	}
	for _, l := range p.Lines {
		req.DressReservations = append(req.DressReservations, reqdto.DressReservationRequest{
			DressID:         l.Dress.ID,
			RentalStartDate: l.Range.StartDate(),
			RentalEndDate:   l.Range.EndDate(),
			Notes:           l.Notes.String(),
		})
	}
	return req
}

// Fluent builder methods
func (p *ProspectBuilder) WithLine(dressID uuid.UUID, pricePerDayCents int64, start, end string) *ProspectBuilder {
	p.Lines = append(p.Lines, reservation.Line{
		Dress: dress.Pricing{ID: dressID, PricePerDay: money.FromCents(pricePerDayCents)},
		Range: calendar.MustParseRange(start, end),
	})
	return p
}

func (p *ProspectBuilder) WithNow(now time.Time) *ProspectBuilder {
	p.Now = now
	return p
}

// ReservationOf builds a single active reservation, as a store would return it.
func ReservationOf(dressID uuid.UUID, start, end string) *reservation.Reservation {
	r := calendar.MustParseRange(start, end)
	return reservation.ReconstructReservation(
		uuid.New(), uuid.New(), dressID, r,
		reservation.StatusConfirmed,
		reservation.Quote{Days: r.Days(), PricePerDay: money.FromCents(5000), Total: money.FromCents(5000).Times(r.Days())},
		reservation.NewNote(""),
		DefaultNow,
	)
}
