package response

import (
	"time"

	"allure-rental/internal/usecase/commands"
	"allure-rental/internal/usecase/queries"
)

type DressReservationResponse struct {
	ID                 string  `json:"id"`
	DressID            string  `json:"dress_id"`
	RentalStartDate    string  `json:"rental_start_date"`
	RentalEndDate      string  `json:"rental_end_date"`
	Status             string  `json:"status,omitempty"`
	RentalDays         int     `json:"rental_days"`
	PricePerDayCents   int64   `json:"price_per_day_cents"`
	EstimatedCost      float64 `json:"estimated_cost"`
	EstimatedCostCents int64   `json:"estimated_cost_cents"`
	Notes              string  `json:"notes,omitempty"`
}

type ProspectResponse struct {
	ID                      string                     `json:"id"`
	Firstname               string                     `json:"firstname"`
	Lastname                string                     `json:"lastname"`
	Email                   string                     `json:"email"`
	Phone                   string                     `json:"phone"`
	Country                 string                     `json:"country"`
	City                    string                     `json:"city"`
	Address                 string                     `json:"address"`
	PostalCode              string                     `json:"postal_code"`
	Notes                   string                     `json:"notes,omitempty"`
	Status                  string                     `json:"status"`
	Source                  string                     `json:"source"`
	CreatedAt               string                     `json:"created_at"`
	DressReservations       []DressReservationResponse `json:"dress_reservations"`
	TotalEstimatedCost      float64                    `json:"total_estimated_cost"`
	TotalEstimatedCostCents int64                      `json:"total_estimated_cost_cents"`
}

func FromProspectView(v *queries.ProspectView) *ProspectResponse {
	res := &ProspectResponse{
		ID:                      v.ID.String(),
		Firstname:               v.Firstname,
		Lastname:                v.Lastname,
		Email:                   v.Email,
		Phone:                   v.Phone,
		Country:                 v.Country,
		City:                    v.City,
		Address:                 v.Address,
		PostalCode:              v.PostalCode,
		Notes:                   v.Notes,
		Status:                  v.Status,
		Source:                  v.Source,
		CreatedAt:               v.CreatedAt.UTC().Format(time.RFC3339),
		DressReservations:       make([]DressReservationResponse, 0, len(v.Reservations)),
		TotalEstimatedCost:      euros(v.TotalEstimatedCostCents),
		TotalEstimatedCostCents: v.TotalEstimatedCostCents,
	}
	for _, r := range v.Reservations {
		res.DressReservations = append(res.DressReservations, DressReservationResponse{
			ID:                 r.ID.String(),
			DressID:            r.DressID.String(),
			RentalStartDate:    r.Range.Start,
			RentalEndDate:      r.Range.End,
			Status:             r.Status,
			RentalDays:         r.RentalDays,
			PricePerDayCents:   r.PricePerDayCents,
			EstimatedCost:      euros(r.EstimatedCostCents),
			EstimatedCostCents: r.EstimatedCostCents,
			Notes:              r.Notes,
		})
	}
	return res
}

// SubmitResponse answers a committed request. The full confirmation is
// available from GET /api/prospects/{id}.
type SubmitResponse struct {
	ProspectID              string                     `json:"prospect_id"`
	State                   string                     `json:"state"`
	DressReservations       []DressReservationResponse `json:"dress_reservations"`
	TotalEstimatedCost      float64                    `json:"total_estimated_cost"`
	TotalEstimatedCostCents int64                      `json:"total_estimated_cost_cents"`
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitResponse {
	res := &SubmitResponse{
		ProspectID:              r.ProspectID.String(),
		State:                   string(r.State),
		DressReservations:       make([]DressReservationResponse, 0, len(r.Reservations)),
		TotalEstimatedCost:      euros(r.Total.Cents()),
		TotalEstimatedCostCents: r.Total.Cents(),
	}
	for _, line := range r.Reservations {
		res.DressReservations = append(res.DressReservations, DressReservationResponse{
			ID:                 line.ID.String(),
			DressID:            line.DressID.String(),
			RentalStartDate:    line.Range.StartDate(),
			RentalEndDate:      line.Range.EndDate(),
			RentalDays:         line.Quote.Days,
			PricePerDayCents:   line.Quote.PricePerDay.Cents(),
			EstimatedCost:      euros(line.Quote.Total.Cents()),
			EstimatedCostCents: line.Quote.Total.Cents(),
		})
	}
	return res
}

// ItemFailureResponse explains why one requested line was refused.
type ItemFailureResponse struct {
	DressID  string         `json:"dress_id"`
	Range    RangeResponse  `json:"range"`
	Reason   string         `json:"reason"`
	Conflict *RangeResponse `json:"conflict,omitempty"`
}

type RejectionDetail struct {
	State    string                `json:"state"`
	Failures []ItemFailureResponse `json:"failures"`
}

func FromRejection(e *commands.RejectionError) *RejectionDetail {
	res := &RejectionDetail{
		State:    string(e.State),
		Failures: make([]ItemFailureResponse, 0, len(e.Failures)),
	}
	for _, f := range e.Failures {
		item := ItemFailureResponse{
			DressID: f.DressID.String(),
			Range:   RangeResponse{Start: f.Range.StartDate(), End: f.Range.EndDate()},
			Reason:  f.Reason,
		}
		if f.Conflict != nil && !f.Conflict.IsZero() {
			item.Conflict = &RangeResponse{Start: f.Conflict.StartDate(), End: f.Conflict.EndDate()}
		}
		res.Failures = append(res.Failures, item)
	}
	return res
}
