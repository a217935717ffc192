package repository

import (
	"context"
	"encoding/binary"
	"sort"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/infra"
	"allure-rental/internal/infra/db"
	"allure-rental/internal/infra/repository/converter"
	"allure-rental/internal/infra/uow"
	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/pkg/pgconv"
	"allure-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	listActiveByDressSQL = `SELECT ` + converter.ReservationColumns + `
		FROM dress_reservations
		WHERE dress_id = $1 AND status <> 'cancelled'
		ORDER BY rental_start, id`

	firstOverlapSQL = `SELECT rental_start, rental_end
		FROM dress_reservations
		WHERE dress_id = $1 AND status <> 'cancelled'
		  AND rental_start < $3 AND $2 < rental_end
		ORDER BY rental_start
		LIMIT 1`

	lockDressSQL = `SELECT pg_advisory_xact_lock($1)`

	insertProspectSQL = `INSERT INTO prospects (` + converter.ProspectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	insertReservationSQL = `INSERT INTO dress_reservations (` + converter.ReservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	findProspectSQL = `SELECT ` + converter.ProspectColumns + `
		FROM prospects
		WHERE id = $1`

	listByProspectSQL = `SELECT ` + converter.ReservationColumns + `
		FROM dress_reservations
		WHERE prospect_id = $1
		ORDER BY rental_start, id`
)

// ReservationStore is the authoritative Postgres implementation of
// shared.ReservationStore.
type ReservationStore struct {
	uow *uow.PostgresUoW
}

func NewReservationStore(u *uow.PostgresUoW) *ReservationStore {
	return &ReservationStore{uow: u}
}

func (s *ReservationStore) ListReservations(ctx context.Context, dressID uuid.UUID) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	err := s.uow.WithDB(ctx, func(ctx context.Context, q db.DBTX) error {
		var err error
		out, err = queryReservations(ctx, q, listActiveByDressSQL, dressID)
		return err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return out, nil
}

// CreateReservations serialises writers per dress with transaction-scoped
// advisory locks, re-checks overlaps under those locks and inserts everything
// in one transaction. The exclusion constraint on dress_reservations backs
// the check up.
func (s *ReservationStore) CreateReservations(ctx context.Context, p *reservation.Prospect) error {
	if intra := overlapsWithinProspect(p); intra != nil {
		return intra
	}

	err := s.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, key := range lockKeys(p.DressIDs()) {
			if _, err := tx.Exec(ctx, lockDressSQL, key); err != nil {
				return err
			}
		}

		conflicts, err := findConflicts(ctx, tx, p)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &shared.ConflictError{Items: conflicts}
		}

		pr := converter.ProspectToRow(p)
		if _, err := tx.Exec(ctx, insertProspectSQL,
			pr.ID, pr.Firstname, pr.Lastname, pr.Email, pr.Phone, pr.Country, pr.City,
			pr.Address, pr.PostalCode, pr.Notes, pr.Status, pr.Source, pr.CreatedAt,
		); err != nil {
			return err
		}

		for _, r := range p.Reservations() {
			row := converter.ReservationToRow(r)
			if _, err := tx.Exec(ctx, insertReservationSQL,
				row.ID, row.ProspectID, row.DressID, row.RentalStart, row.RentalEnd, row.Status,
				row.RentalDays, row.PricePerDayCents, row.EstimatedCostCents, row.Notes, row.CreatedAt,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		return nil
	}

	var conflict *shared.ConflictError
	if errs.As(err, &conflict) {
		return conflict
	}

	wrapped := infra.WrapRepoErr("failed to create reservations", err)
	if infra.IsKind(wrapped, infra.KindConflict) {
		return s.describeBackstopConflict(ctx, p)
	}
	return wrapped
}

func (s *ReservationStore) FindProspect(ctx context.Context, id uuid.UUID) (*reservation.Prospect, error) {
	var out *reservation.Prospect
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		var row converter.ProspectRow
		if err := tx.QueryRow(ctx, findProspectSQL, id).Scan(row.ScanTargets()...); err != nil {
			return err
		}
		reservations, err := queryReservations(ctx, tx, listByProspectSQL, id)
		if err != nil {
			return err
		}
		out = converter.ProspectFromRow(row, reservations)
		return nil
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("prospect not found", err), shared.ErrProspectNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find prospect", err)
	}
	return out, nil
}

// describeBackstopConflict runs when the exclusion constraint fired after the
// explicit check passed, which only happens if a writer bypassed the locks.
func (s *ReservationStore) describeBackstopConflict(ctx context.Context, p *reservation.Prospect) error {
	var conflicts []shared.ConflictItem
	err := s.uow.WithDB(ctx, func(ctx context.Context, q db.DBTX) error {
		var err error
		conflicts, err = findConflicts(ctx, q, p)
		return err
	})
	if err != nil || len(conflicts) == 0 {
		conflicts = make([]shared.ConflictItem, 0, len(p.Reservations()))
		for _, r := range p.Reservations() {
			conflicts = append(conflicts, shared.ConflictItem{DressID: r.DressID(), Range: r.DateRange()})
		}
	}
	return &shared.ConflictError{Items: conflicts}
}

func findConflicts(ctx context.Context, q db.DBTX, p *reservation.Prospect) ([]shared.ConflictItem, error) {
	var conflicts []shared.ConflictItem
	for _, r := range p.Reservations() {
		dr := r.DateRange()
		var start, end = pgconv.TimeToPgtype(dr.Start()), pgconv.TimeToPgtype(dr.End())
		err := q.QueryRow(ctx, firstOverlapSQL, r.DressID(), start, end).Scan(&start, &end)
		if pgconv.IsNoRows(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		existing, err := calendar.NewDateRange(pgconv.TimeFromPgtype(start), pgconv.TimeFromPgtype(end))
		if err != nil {
			return nil, err
		}
		conflicts = append(conflicts, shared.ConflictItem{DressID: r.DressID(), Range: dr, Conflict: existing})
	}
	return conflicts, nil
}

func queryReservations(ctx context.Context, q db.DBTX, sql string, arg uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := q.Query(ctx, sql, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*reservation.Reservation
	for rows.Next() {
		var row converter.ReservationRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, err
		}
		r, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// overlapsWithinProspect rejects prospects that claim the same dress twice
// over overlapping ranges.
func overlapsWithinProspect(p *reservation.Prospect) *shared.ConflictError {
	lines := p.Reservations()
	var items []shared.ConflictItem
	for j := range lines {
		for i := 0; i < j; i++ {
			if lines[i].DressID() == lines[j].DressID() && lines[i].DateRange().Overlaps(lines[j].DateRange()) {
				items = append(items, shared.ConflictItem{
					DressID:  lines[j].DressID(),
					Range:    lines[j].DateRange(),
					Conflict: lines[i].DateRange(),
				})
				break
			}
		}
	}
	if len(items) == 0 {
		return nil
	}
	return &shared.ConflictError{Items: items}
}

// lockKeys maps dress ids to advisory lock keys, sorted so that concurrent
// transactions always acquire them in the same order.
func lockKeys(ids []uuid.UUID) []int64 {
	keys := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		k := advisoryKey(id)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func advisoryKey(id uuid.UUID) int64 {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])
	// #nosec G115 -- lock keys only need to be stable, not positive
	return int64(hi ^ lo)
}
