package request

import (
	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/dress"
)

type ListDressesQuery struct {
	Page           *int     `form:"page" binding:"omitempty,min=1"`
	Limit          *int     `form:"limit" binding:"omitempty,min=1,max=100"`
	Sizes          string   `form:"sizes"`
	Types          string   `form:"types"`
	Colors         string   `form:"colors"`
	PriceMax       *float64 `form:"priceMax" binding:"omitempty,gte=0"`
	PricePerDayMax *float64 `form:"pricePerDayMax" binding:"omitempty,gte=0"`
	Search         string   `form:"search" binding:"max=200"`
}

func (q ListDressesQuery) ToFilters() dress.Filters {
	return dress.Filters{
		Page:           valueOrZero(q.Page),
		Limit:          valueOrZero(q.Limit),
		Sizes:          q.Sizes,
		Types:          q.Types,
		Colors:         q.Colors,
		PriceMax:       q.PriceMax,
		PricePerDayMax: q.PricePerDayMax,
		Search:         q.Search,
	}
}

// absent paging parameters are left to the catalog defaults
func valueOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// RangeQuery is shared by the availability and quote endpoints.
type RangeQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

func (q RangeQuery) ToDomain() (calendar.DateRange, error) {
	return calendar.ParseRange(q.Start, q.End)
}
