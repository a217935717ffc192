//go:build unit || e2e

package builder

import (
	"allure-rental/internal/domain/reservation"
	reqdto "allure-rental/internal/handler/dto/request"
)

type CustomerBuilder struct {
	Firstname  string
	Lastname   string
	Email      string
	Phone      string
	Country    string
	City       string
	Address    string
	PostalCode string
	Notes      string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		Firstname:  "Camille",
		Lastname:   "Durand",
		Email:      "camille.durand@example.com",
		Phone:      "+33 6 12 34 56 78",
		Country:    "France",
		City:       "Lyon",
		Address:    "12 rue de la République",
		PostalCode: "69002",
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CustomerBuilder) BuildRaw() reservation.Customer {
	return reservation.Customer{
		Firstname:  c.Firstname,
		Lastname:   c.Lastname,
		Email:      c.Email,
		Phone:      c.Phone,
		Country:    c.Country,
		City:       c.City,
		Address:    c.Address,
		PostalCode: c.PostalCode,
		Notes:      c.Notes,
	}
}

func (c *CustomerBuilder) BuildDomain() (reservation.Customer, error) {
	return reservation.NewCustomer(c.BuildRaw())
}

func (c *CustomerBuilder) BuildRequestDTO() reqdto.CustomerRequest {
	return reqdto.CustomerRequest{
		Firstname:  c.Firstname,
		Lastname:   c.Lastname,
		Email:      c.Email,
		Phone:      c.Phone,
		Country:    c.Country,
		City:       c.City,
		Address:    c.Address,
		PostalCode: c.PostalCode,
		Notes:      c.Notes,
	}
}

// Fluent builder methods
func (c *CustomerBuilder) WithFirstname(v string) *CustomerBuilder {
	c.Firstname = v
	return c
}

func (c *CustomerBuilder) WithLastname(v string) *CustomerBuilder {
	c.Lastname = v
	return c
}

func (c *CustomerBuilder) WithEmail(v string) *CustomerBuilder {
	c.Email = v
	return c
}

func (c *CustomerBuilder) WithPhone(v string) *CustomerBuilder {
	c.Phone = v
	return c
}
