//go:build unit

package api_test

import (
	"allure-rental/internal/domain/money"
	"allure-rental/internal/domain/reservation"
)

func quoteOf(days int, perDayCents int64) reservation.Quote {
	perDay := money.FromCents(perDayCents)
	return reservation.Quote{Days: days, PricePerDay: perDay, Total: perDay.Times(days)}
}
