package reservation

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var (
	ErrInvalidCustomer = errors.New("invalid customer")
	ErrMissingName     = fmt.Errorf("%w: firstname and lastname are required", ErrInvalidCustomer)
	ErrInvalidEmail    = fmt.Errorf("%w: email address is invalid", ErrInvalidCustomer)
	ErrMissingPhone    = fmt.Errorf("%w: phone is required", ErrInvalidCustomer)
)

// Customer is the contact data submitted with a reservation request.
type Customer struct {
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

func NewCustomer(c Customer) (Customer, error) {
	c.Firstname = strings.TrimSpace(c.Firstname)
	c.Lastname = strings.TrimSpace(c.Lastname)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)

	if c.Firstname == "" || c.Lastname == "" {
		return Customer{}, ErrMissingName
	}
	addr, err := mail.ParseAddress(c.Email)
	if err != nil || addr.Address != c.Email {
		return Customer{}, ErrInvalidEmail
	}
	if c.Phone == "" {
		return Customer{}, ErrMissingPhone
	}
	return c, nil
}

func (c Customer) FullName() string {
	return c.Firstname + " " + c.Lastname
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
