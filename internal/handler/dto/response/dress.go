package response

import (
	"allure-rental/internal/domain/money"
	"allure-rental/internal/usecase/queries"
)

type DressResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Reference        string   `json:"reference"`
	PricePerDayTTC   string   `json:"price_per_day_ttc"`
	PricePerDayCents int64    `json:"price_per_day_cents"`
	Images           []string `json:"images"`
	TypeID           string   `json:"type_id,omitempty"`
	TypeName         string   `json:"type_name,omitempty"`
	SizeID           string   `json:"size_id,omitempty"`
	SizeName         string   `json:"size_name,omitempty"`
	ColorID          string   `json:"color_id,omitempty"`
	ColorName        string   `json:"color_name,omitempty"`
	HexCode          string   `json:"hex_code,omitempty"`
}

func FromDressView(v *queries.DressView) (*DressResponse, error) {
	var res DressResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	res.PricePerDayTTC = money.FromCents(v.PricePerDayCents).String()
	if res.Images == nil {
		res.Images = []string{}
	}
	return &res, nil
}

type DressPageResponse struct {
	Data  []*DressResponse `json:"data"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

func FromDressPageView(v *queries.DressPageView) (*DressPageResponse, error) {
	res := &DressPageResponse{
		Data:  make([]*DressResponse, 0, len(v.Dresses)),
		Total: v.Total,
		Page:  v.Page,
		Limit: v.Limit,
	}
	for _, d := range v.Dresses {
		item, err := FromDressView(d)
		if err != nil {
			return nil, err
		}
		res.Data = append(res.Data, item)
	}
	return res, nil
}

type FacetResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	HexCode     string `json:"hex_code,omitempty"`
}

type FacetsResponse struct {
	Types  []FacetResponse `json:"types"`
	Sizes  []FacetResponse `json:"sizes"`
	Colors []FacetResponse `json:"colors"`
}

func FromFacetsView(v *queries.FacetsView) *FacetsResponse {
	return &FacetsResponse{
		Types:  fromFacetViews(v.Types),
		Sizes:  fromFacetViews(v.Sizes),
		Colors: fromFacetViews(v.Colors),
	}
}

func fromFacetViews(in []queries.FacetView) []FacetResponse {
	out := make([]FacetResponse, 0, len(in))
	for _, f := range in {
		out = append(out, FacetResponse(f))
	}
	return out
}

type RangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func fromRangeView(v queries.RangeView) RangeResponse {
	return RangeResponse(v)
}

func fromRangeViewPtr(v *queries.RangeView) *RangeResponse {
	if v == nil {
		return nil
	}
	r := fromRangeView(*v)
	return &r
}

type AvailabilityResponse struct {
	DressID   string         `json:"dress_id"`
	Range     RangeResponse  `json:"range"`
	Available bool           `json:"is_available"`
	Conflict  *RangeResponse `json:"conflict,omitempty"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		DressID:   v.DressID.String(),
		Range:     fromRangeView(v.Range),
		Available: v.Available,
		Conflict:  fromRangeViewPtr(v.Conflict),
	}
}

type QuoteResponse struct {
	DressID          string        `json:"dress_id"`
	Range            RangeResponse `json:"range"`
	RentalDays       int           `json:"rental_days"`
	PricePerDayCents int64         `json:"price_per_day_cents"`
	EstimatedCost    float64       `json:"estimated_cost"`
	TotalCents       int64         `json:"estimated_cost_cents"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	if v == nil {
		return nil
	}
	return &QuoteResponse{
		DressID:          v.DressID.String(),
		Range:            fromRangeView(v.Range),
		RentalDays:       v.Days,
		PricePerDayCents: v.PricePerDayCents,
		EstimatedCost:    euros(v.TotalCents),
		TotalCents:       v.TotalCents,
	}
}
