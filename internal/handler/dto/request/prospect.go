package request

import (
	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type CustomerRequest struct {
	Firstname  string `json:"firstname" binding:"required,max=100"`
	Lastname   string `json:"lastname" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,max=254"`
	Phone      string `json:"phone" binding:"required,max=32"`
	Country    string `json:"country" binding:"max=100"`
	City       string `json:"city" binding:"max=100"`
	Address    string `json:"address" binding:"max=255"`
	PostalCode string `json:"postal_code" binding:"max=20"`
	Notes      string `json:"notes" binding:"max=2000"`
}

func (r CustomerRequest) ToDomain() reservation.Customer {
	return reservation.Customer{
		Firstname:  r.Firstname,
		Lastname:   r.Lastname,
		Email:      r.Email,
		Phone:      r.Phone,
		Country:    r.Country,
		City:       r.City,
		Address:    r.Address,
		PostalCode: r.PostalCode,
		Notes:      r.Notes,
	}
}

type DressReservationRequest struct {
	DressID         uuid.UUID `json:"dress_id" binding:"required"`
	RentalStartDate string    `json:"rental_start_date" binding:"required"`
	RentalEndDate   string    `json:"rental_end_date" binding:"required"`
	Notes           string    `json:"notes" binding:"max=1000"`
}

// CreateProspectRequest is the flat body sent by the checkout page. status
// and source are accepted for compatibility and ignored.
type CreateProspectRequest struct {
	CustomerRequest
	Status            string                    `json:"status"`
	Source            string                    `json:"source"`
	DressReservations []DressReservationRequest `json:"dress_reservations" binding:"dive"`
}

func (r CreateProspectRequest) ToParams() (commands.SubmitParams, error) {
	params := commands.SubmitParams{
		Customer: r.CustomerRequest.ToDomain(),
		Items:    make([]commands.SubmitItem, 0, len(r.DressReservations)),
	}
	for _, line := range r.DressReservations {
		dr, err := calendar.ParseRange(line.RentalStartDate, line.RentalEndDate)
		if err != nil {
			return commands.SubmitParams{}, err
		}
		params.Items = append(params.Items, commands.SubmitItem{
			DressID: line.DressID,
			Range:   dr,
			Notes:   line.Notes,
		})
	}
	return params, nil
}
