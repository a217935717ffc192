package response

import (
	"allure-rental/internal/usecase/queries"
)

type CartItemResponse struct {
	DressID          string         `json:"dress_id"`
	Name             string         `json:"name"`
	Reference        string         `json:"reference"`
	Image            string         `json:"image,omitempty"`
	PricePerDayCents int64          `json:"price_per_day_cents"`
	Range            *RangeResponse `json:"rental_dates"`
	Notes            string         `json:"notes,omitempty"`
	Quote            *QuoteResponse `json:"quote,omitempty"`
}

type CartResponse struct {
	ID         string             `json:"id"`
	Items      []CartItemResponse `json:"items"`
	Total      float64            `json:"total"`
	TotalCents int64              `json:"total_cents"`
	Complete   bool               `json:"complete"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	res := &CartResponse{
		ID:         v.ID,
		Items:      make([]CartItemResponse, 0, len(v.Items)),
		Total:      euros(v.TotalCents),
		TotalCents: v.TotalCents,
		Complete:   v.Complete,
	}
	for _, it := range v.Items {
		res.Items = append(res.Items, CartItemResponse{
			DressID:          it.DressID.String(),
			Name:             it.Name,
			Reference:        it.Reference,
			Image:            it.Image,
			PricePerDayCents: it.PricePerDayCents,
			Range:            fromRangeViewPtr(it.Range),
			Notes:            it.Notes,
			Quote:            FromQuoteView(it.Quote),
		})
	}
	return res
}
