package request

import (
	"errors"

	"allure-rental/internal/domain/calendar"
)

var ErrPartialRange = errors.New("start and end must be given together")

// PutCartItemRequest dates are optional: a dress can sit in the cart before
// the customer picks a period.
type PutCartItemRequest struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
	Notes string  `json:"notes" binding:"max=1000"`
}

func (r PutCartItemRequest) ToRange() (*calendar.DateRange, error) {
	if r.Start == nil && r.End == nil {
		return nil, nil
	}
	if r.Start == nil || r.End == nil {
		return nil, ErrPartialRange
	}
	dr, err := calendar.ParseRange(*r.Start, *r.End)
	if err != nil {
		return nil, err
	}
	return &dr, nil
}

// CheckoutRequest carries the customer; the items come from the cart.
type CheckoutRequest struct {
	CustomerRequest
}
