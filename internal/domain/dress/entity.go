package dress

import (
	"errors"
	"strings"

	"allure-rental/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyDressName  = errors.New("dress name cannot be empty")
	ErrMissingDressID  = errors.New("dress id is required")
	ErrNegativeDayRate = errors.New("price per day cannot be negative")
	ErrNotPublished    = errors.New("dress is not published")
)

// Dress is owned by the external catalog. The reservation engine only reads
// ID and PricePerDay.
type Dress struct {
	ID          uuid.UUID
	Name        string
	Reference   string
	PricePerDay money.Money
	Images      []string
	TypeID      string
	TypeName    string
	TypeDesc    string
	SizeID      string
	SizeName    string
	ColorID     string
	ColorName   string
	HexCode     string
	Published   bool
}

// Pricing is the slice of a dress needed to quote a rental.
type Pricing struct {
	ID          uuid.UUID
	PricePerDay money.Money
}

func (d *Dress) Validate() error {
	if d.ID == uuid.Nil {
		return ErrMissingDressID
	}
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyDressName
	}
	if d.PricePerDay.IsNegative() {
		return ErrNegativeDayRate
	}
	return nil
}

func (d *Dress) Pricing() Pricing {
	return Pricing{ID: d.ID, PricePerDay: d.PricePerDay}
}

// Facet is a filter value (type, size or color) derived from published dresses.
type Facet struct {
	ID          string
	Name        string
	Description string
	HexCode     string
}

type Facets struct {
	Types  []Facet
	Sizes  []Facet
	Colors []Facet
}

type Filters struct {
	Page           int
	Limit          int
	Sizes          string
	Types          string
	Colors         string
	PriceMax       *float64
	PricePerDayMax *float64
	Search         string
}

type Page struct {
	Dresses []*Dress
	Total   int
	Page    int
	Limit   int
}
