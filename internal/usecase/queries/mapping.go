package queries

import (
	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/dress"
	"allure-rental/internal/domain/reservation"

	"github.com/google/uuid"
)

func rangeView(r calendar.DateRange) RangeView {
	return RangeView{Start: r.StartDate(), End: r.EndDate()}
}

func rangeViewPtr(r *calendar.DateRange) *RangeView {
	if r == nil || r.IsZero() {
		return nil
	}
	v := rangeView(*r)
	return &v
}

func dressView(d *dress.Dress) *DressView {
	images := make([]string, len(d.Images))
	copy(images, d.Images)
	return &DressView{
		ID:               d.ID,
		Name:             d.Name,
		Reference:        d.Reference,
		PricePerDayCents: d.PricePerDay.Cents(),
		Images:           images,
		TypeID:           d.TypeID,
		TypeName:         d.TypeName,
		SizeID:           d.SizeID,
		SizeName:         d.SizeName,
		ColorID:          d.ColorID,
		ColorName:        d.ColorName,
		HexCode:          d.HexCode,
	}
}

func facetViews(in []dress.Facet) []FacetView {
	out := make([]FacetView, 0, len(in))
	for _, f := range in {
		out = append(out, FacetView(f))
	}
	return out
}

func quoteView(dressID uuid.UUID, r calendar.DateRange, q reservation.Quote) *QuoteView {
	return &QuoteView{
		DressID:          dressID,
		Range:            rangeView(r),
		Days:             q.Days,
		PricePerDayCents: q.PricePerDay.Cents(),
		TotalCents:       q.Total.Cents(),
	}
}

func prospectView(p *reservation.Prospect) *ProspectView {
	c := p.Customer()
	lines := p.Reservations()
	reservations := make([]ProspectReservationView, 0, len(lines))
	for _, r := range lines {
		q := r.Quote()
		reservations = append(reservations, ProspectReservationView{
			ID:                 r.ID(),
			DressID:            r.DressID(),
			Range:              rangeView(r.DateRange()),
			Status:             r.Status().String(),
			RentalDays:         q.Days,
			PricePerDayCents:   q.PricePerDay.Cents(),
			EstimatedCostCents: q.Total.Cents(),
			Notes:              r.Notes().String(),
		})
	}
	return &ProspectView{
		ID:                      p.ID(),
		Firstname:               c.Firstname,
		Lastname:                c.Lastname,
		Email:                   c.Email,
		Phone:                   c.Phone,
		Country:                 c.Country,
		City:                    c.City,
		Address:                 c.Address,
		PostalCode:              c.PostalCode,
		Notes:                   c.Notes,
		Status:                  string(p.Status()),
		Source:                  p.Source(),
		Reservations:            reservations,
		TotalEstimatedCostCents: p.Total().Cents(),
		CreatedAt:               p.CreatedAt(),
	}
}
