//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"allure-rental/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProspect(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	prospectID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO prospects (id, firstname, lastname, email, phone, country, city, address, postal_code)
		 VALUES ($1, 'Camille', 'Durand', $2, '+33 6 12 34 56 78', 'France', 'Lyon', '12 rue de la République', '69002')`,
		prospectID, email)
	require.NoError(t, err)

	return prospectID
}

// InsertReservation books dressID for [start, end) under a fresh prospect, bypassing the engine.
func InsertReservation(t *testing.T, db DBLike, dressID uuid.UUID, start, end, status string) uuid.UUID {
	t.Helper()

	r := calendar.MustParseRange(start, end)
	prospectID := CreateTestProspect(t, db, "fixture-"+uuid.NewString()[:8]+"@example.com")

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO dress_reservations (id, prospect_id, dress_id, rental_start, rental_end, status,
		     rental_days, price_per_day_cents, estimated_cost_cents)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, 5000, $8)`,
		reservationID, prospectID, dressID, r.Start(), r.End(), status, r.Days(), int64(5000*r.Days()))
	require.NoError(t, err)

	return reservationID
}

func CountReservations(t *testing.T, db DBLike, dressID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM dress_reservations WHERE dress_id = $1 AND status <> 'cancelled'", dressID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountProspects(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM prospects").Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
