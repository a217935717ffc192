package reservation

import (
	"errors"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/dress"
	"allure-rental/internal/domain/money"
)

var ErrNegativePrice = errors.New("price cannot be negative")

// Quote is the estimated cost of renting one dress over one range.
type Quote struct {
	Days        int
	PricePerDay money.Money
	Total       money.Money
}

type PriceCalculator interface {
	Quote(d dress.Pricing, r calendar.DateRange) (Quote, error)
}

// DailyRateCalculator bills every started day at the dress's daily rate.
type DailyRateCalculator struct{}

func NewDailyRateCalculator() *DailyRateCalculator {
	return &DailyRateCalculator{}
}

func (DailyRateCalculator) Quote(d dress.Pricing, r calendar.DateRange) (Quote, error) {
	if d.PricePerDay.IsNegative() {
		return Quote{}, ErrNegativePrice
	}
	days, err := calendar.DurationDays(r)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		Days:        days,
		PricePerDay: d.PricePerDay,
		Total:       d.PricePerDay.Times(days),
	}, nil
}
