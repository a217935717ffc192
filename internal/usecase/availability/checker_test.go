//go:build unit

package availability_test

import (
	"context"
	"errors"
	"testing"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/reservation"
	"allure-rental/internal/infra/memstore"
	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/usecase/availability"
	"allure-rental/tests/common/builder"
	availabilitymock "allure-rental/tests/mock/availability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func cancelled(dressID uuid.UUID, start, end string) *reservation.Reservation {
	r := builder.ReservationOf(dressID, start, end)
	return reservation.ReconstructReservation(
		r.ID(), r.ProspectID(), r.DressID(), r.DateRange(),
		reservation.StatusCancelled, r.Quote(), r.Notes(), r.CreatedAt(),
	)
}

func TestChecker_IsAvailable(t *testing.T) {
	ctx := context.Background()
	dressID := uuid.New()

	existing := []*reservation.Reservation{
		builder.ReservationOf(dressID, "2025-12-10", "2025-12-15"),
		builder.ReservationOf(dressID, "2025-12-01", "2025-12-05"),
		cancelled(dressID, "2025-12-20", "2025-12-25"),
	}

	tests := []struct {
		name         string
		start, end   string
		wantFree     bool
		wantConflict *calendar.DateRange
	}{
		{name: "free gap", start: "2025-12-05", end: "2025-12-10", wantFree: true},
		{name: "ends where next begins", start: "2025-11-28", end: "2025-12-01", wantFree: true},
		{name: "cancelled range is free", start: "2025-12-21", end: "2025-12-23", wantFree: true},
		{
			name: "overlap", start: "2025-12-14", end: "2025-12-16",
			wantConflict: ptr(calendar.MustParseRange("2025-12-10", "2025-12-15")),
		},
		{
			name: "earliest conflict is reported", start: "2025-12-03", end: "2025-12-12",
			wantConflict: ptr(calendar.MustParseRange("2025-12-01", "2025-12-05")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lister := availabilitymock.NewMockLister(ctrl)
			lister.EXPECT().ListReservations(gomock.Any(), dressID).Return(existing, nil)

			v, err := availability.NewChecker(lister).IsAvailable(ctx, dressID, calendar.MustParseRange(tt.start, tt.end))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFree, v.Available)
			if tt.wantConflict == nil {
				assert.Nil(t, v.Conflict)
				assert.NoError(t, v.Err())
				return
			}
			require.NotNil(t, v.Conflict)
			assert.True(t, tt.wantConflict.Equal(*v.Conflict), "got %s", v.Conflict)
			assert.NotNil(t, v.ConflictReservationID)
			assert.True(t, errs.Is(v.Err(), availability.ErrUnavailable))
		})
	}

	t.Run("store failure is never available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lister := availabilitymock.NewMockLister(ctrl)
		lister.EXPECT().ListReservations(gomock.Any(), dressID).Return(nil, errors.New("connection reset"))

		v, err := availability.NewChecker(lister).IsAvailable(ctx, dressID, calendar.MustParseRange("2025-12-05", "2025-12-10"))
		require.Error(t, err)
		assert.True(t, errs.Is(err, availability.ErrCheckFailed))
		assert.False(t, v.Available)
	})

	t.Run("zero range is rejected before any lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lister := availabilitymock.NewMockLister(ctrl)

		_, err := availability.NewChecker(lister).IsAvailable(ctx, dressID, calendar.DateRange{})
		assert.ErrorIs(t, err, calendar.ErrInvalidRange)
	})
}

func TestChecker_IsAvailableIsRepeatable(t *testing.T) {
	ctx := context.Background()
	dressID := uuid.New()
	existing := []*reservation.Reservation{builder.ReservationOf(dressID, "2025-12-10", "2025-12-15")}

	for _, candidate := range []calendar.DateRange{
		calendar.MustParseRange("2025-12-05", "2025-12-10"),
		calendar.MustParseRange("2025-12-12", "2025-12-20"),
	} {
		t.Run(candidate.String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lister := availabilitymock.NewMockLister(ctrl)
			lister.EXPECT().ListReservations(gomock.Any(), dressID).Return(existing, nil).Times(2)
			checker := availability.NewChecker(lister)

			first, err := checker.IsAvailable(ctx, dressID, candidate)
			require.NoError(t, err)
			second, err := checker.IsAvailable(ctx, dressID, candidate)
			require.NoError(t, err)

			assert.Equal(t, first, second)
		})
	}

	t.Run("against the in-memory store", func(t *testing.T) {
		store := memstore.New()
		prospect := builder.NewProspectBuilder().
			WithLine(dressID, 5000, "2025-12-10", "2025-12-15").
			MustBuildDomain()
		require.NoError(t, store.CreateReservations(ctx, prospect))
		checker := availability.NewChecker(store)
		candidate := calendar.MustParseRange("2025-12-14", "2025-12-16")

		first, err := checker.IsAvailable(ctx, dressID, candidate)
		require.NoError(t, err)
		second, err := checker.IsAvailable(ctx, dressID, candidate)
		require.NoError(t, err)

		assert.False(t, first.Available)
		require.NotNil(t, first.ConflictReservationID)
		assert.Equal(t, prospect.Reservations()[0].ID(), *first.ConflictReservationID)
		assert.Equal(t, first, second)

		listed, err := store.ListReservations(ctx, dressID)
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})
}

func ptr[T any](v T) *T { return &v }
