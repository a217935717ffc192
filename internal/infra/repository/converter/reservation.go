package converter

import (
	"fmt"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/money"
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationRow mirrors a dress_reservations row.
type ReservationRow struct {
	ID                 uuid.UUID
	ProspectID         uuid.UUID
	DressID            uuid.UUID
	RentalStart        pgtype.Timestamptz
	RentalEnd          pgtype.Timestamptz
	Status             string
	RentalDays         int32
	PricePerDayCents   int64
	EstimatedCostCents int64
	Notes              pgtype.Text
	CreatedAt          pgtype.Timestamptz
}

// ScanTargets returns the destinations in ReservationColumns order.
func (r *ReservationRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.ProspectID, &r.DressID, &r.RentalStart, &r.RentalEnd, &r.Status,
		&r.RentalDays, &r.PricePerDayCents, &r.EstimatedCostCents, &r.Notes, &r.CreatedAt,
	}
}

const ReservationColumns = `id, prospect_id, dress_id, rental_start, rental_end, status,
	rental_days, price_per_day_cents, estimated_cost_cents, notes, created_at`

func ReservationToRow(r *reservation.Reservation) ReservationRow {
	q := r.Quote()
	dr := r.DateRange()
	return ReservationRow{
		ID:                 r.ID(),
		ProspectID:         r.ProspectID(),
		DressID:            r.DressID(),
		RentalStart:        pgconv.TimeToPgtype(dr.Start()),
		RentalEnd:          pgconv.TimeToPgtype(dr.End()),
		Status:             r.Status().String(),
		RentalDays:         int32(q.Days), // #nosec G115 -- bounded by the date range
		PricePerDayCents:   q.PricePerDay.Cents(),
		EstimatedCostCents: q.Total.Cents(),
		Notes:              pgconv.OptionalText(r.Notes().String()),
		CreatedAt:          pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

// ReservationFromRow re-validates the stored range so a corrupt row is
// reported instead of silently treated as free or busy.
func ReservationFromRow(row ReservationRow) (*reservation.Reservation, error) {
	dr, err := calendar.NewDateRange(pgconv.TimeFromPgtype(row.RentalStart), pgconv.TimeFromPgtype(row.RentalEnd))
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	status := reservation.Status(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("reservation %s: %w: %q", row.ID, reservation.ErrInvalidStatus, row.Status)
	}

	quote := reservation.Quote{
		Days:        int(row.RentalDays),
		PricePerDay: money.FromCents(row.PricePerDayCents),
		Total:       money.FromCents(row.EstimatedCostCents),
	}
	return reservation.ReconstructReservation(
		row.ID, row.ProspectID, row.DressID, dr, status, quote,
		reservation.NewNote(pgconv.TextOrEmpty(row.Notes)),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

// ProspectRow mirrors a prospects row.
type ProspectRow struct {
	ID         uuid.UUID
	Firstname  string
	Lastname   string
	Email      string
	Phone      string
	Country    pgtype.Text
	City       pgtype.Text
	Address    pgtype.Text
	PostalCode pgtype.Text
	Notes      pgtype.Text
	Status     string
	Source     string
	CreatedAt  pgtype.Timestamptz
}

const ProspectColumns = `id, firstname, lastname, email, phone, country, city, address,
	postal_code, notes, status, source, created_at`

func (r *ProspectRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.Firstname, &r.Lastname, &r.Email, &r.Phone, &r.Country, &r.City,
		&r.Address, &r.PostalCode, &r.Notes, &r.Status, &r.Source, &r.CreatedAt,
	}
}

func ProspectToRow(p *reservation.Prospect) ProspectRow {
	c := p.Customer()
	return ProspectRow{
		ID:         p.ID(),
		Firstname:  c.Firstname,
		Lastname:   c.Lastname,
		Email:      c.Email,
		Phone:      c.Phone,
		Country:    pgconv.OptionalText(c.Country),
		City:       pgconv.OptionalText(c.City),
		Address:    pgconv.OptionalText(c.Address),
		PostalCode: pgconv.OptionalText(c.PostalCode),
		Notes:      pgconv.OptionalText(c.Notes),
		Status:     string(p.Status()),
		Source:     p.Source(),
		CreatedAt:  pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func ProspectFromRow(row ProspectRow, reservations []*reservation.Reservation) *reservation.Prospect {
	customer := reservation.Customer{
		Firstname:  row.Firstname,
		Lastname:   row.Lastname,
		Email:      row.Email,
		Phone:      row.Phone,
		Country:    pgconv.TextOrEmpty(row.Country),
		City:       pgconv.TextOrEmpty(row.City),
		Address:    pgconv.TextOrEmpty(row.Address),
		PostalCode: pgconv.TextOrEmpty(row.PostalCode),
		Notes:      pgconv.TextOrEmpty(row.Notes),
	}
	return reservation.ReconstructProspect(
		row.ID, customer,
		reservation.ProspectStatus(row.Status), row.Source,
		reservations,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
