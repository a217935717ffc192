package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type DressView struct {
	ID               uuid.UUID
	Name             string
	Reference        string
	PricePerDayCents int64
	Images           []string
	TypeID           string
	TypeName         string
	SizeID           string
	SizeName         string
	ColorID          string
	ColorName        string
	HexCode          string
}

type DressPageView struct {
	Dresses []*DressView
	Total   int
	Page    int
	Limit   int
}

type FacetView struct {
	ID          string
	Name        string
	Description string
	HexCode     string
}

type FacetsView struct {
	Types  []FacetView
	Sizes  []FacetView
	Colors []FacetView
}

type RangeView struct {
	Start string
	End   string
}

type AvailabilityView struct {
	DressID   uuid.UUID
	Range     RangeView
	Available bool
	Conflict  *RangeView
}

type QuoteView struct {
	DressID          uuid.UUID
	Range            RangeView
	Days             int
	PricePerDayCents int64
	TotalCents       int64
}

type CartItemView struct {
	DressID          uuid.UUID
	Name             string
	Reference        string
	Image            string
	PricePerDayCents int64
	Range            *RangeView
	Notes            string
	Quote            *QuoteView
}

type CartView struct {
	ID         string
	Items      []CartItemView
	TotalCents int64
	Complete   bool
}

type ProspectReservationView struct {
	ID                 uuid.UUID
	DressID            uuid.UUID
	Range              RangeView
	Status             string
	RentalDays         int
	PricePerDayCents   int64
	EstimatedCostCents int64
	Notes              string
}

type ProspectView struct {
	ID                      uuid.UUID
	Firstname               string
	Lastname                string
	Email                   string
	Phone                   string
	Country                 string
	City                    string
	Address                 string
	PostalCode              string
	Notes                   string
	Status                  string
	Source                  string
	Reservations            []ProspectReservationView
	TotalEstimatedCostCents int64
	CreatedAt               time.Time
}
