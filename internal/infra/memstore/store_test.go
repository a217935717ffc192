//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"allure-rental/internal/infra/memstore"
	"allure-rental/internal/usecase/shared"
	"allure-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("created reservations are listed", func(t *testing.T) {
		s := memstore.New()
		dressID := uuid.New()
		p := builder.NewProspectBuilder().WithLine(dressID, 5000, "2025-12-01", "2025-12-05").MustBuildDomain()

		require.NoError(t, s.CreateReservations(ctx, p))

		list, err := s.ListReservations(ctx, dressID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, p.ID(), list[0].ProspectID())

		found, err := s.FindProspect(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, p.ID(), found.ID())
	})

	t.Run("conflict leaves nothing behind", func(t *testing.T) {
		s := memstore.New()
		busy, free := uuid.New(), uuid.New()
		first := builder.NewProspectBuilder().WithLine(busy, 5000, "2025-12-01", "2025-12-05").MustBuildDomain()
		require.NoError(t, s.CreateReservations(ctx, first))

		second := builder.NewProspectBuilder().
			WithLine(free, 5000, "2025-12-01", "2025-12-05").
			WithLine(busy, 5000, "2025-12-03", "2025-12-07").
			MustBuildDomain()
		err := s.CreateReservations(ctx, second)
		require.ErrorIs(t, err, shared.ErrStoreConflict)

		var conflict *shared.ConflictError
		require.True(t, errors.As(err, &conflict))
		require.Len(t, conflict.Items, 1)
		assert.Equal(t, busy, conflict.Items[0].DressID)
		assert.Equal(t, "2025-12-01", conflict.Items[0].Conflict.StartDate())

		list, err := s.ListReservations(ctx, free)
		require.NoError(t, err)
		assert.Empty(t, list)

		_, err = s.FindProspect(ctx, second.ID())
		require.ErrorIs(t, err, shared.ErrProspectNotFound)
	})

	t.Run("touching ranges are both accepted", func(t *testing.T) {
		s := memstore.New()
		dressID := uuid.New()
		require.NoError(t, s.CreateReservations(ctx,
			builder.NewProspectBuilder().WithLine(dressID, 5000, "2025-12-01", "2025-12-05").MustBuildDomain()))
		require.NoError(t, s.CreateReservations(ctx,
			builder.NewProspectBuilder().WithLine(dressID, 5000, "2025-12-05", "2025-12-08").MustBuildDomain()))

		list, err := s.ListReservations(ctx, dressID)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("overlap inside one prospect", func(t *testing.T) {
		s := memstore.New()
		dressID := uuid.New()
		p := builder.NewProspectBuilder().
			WithLine(dressID, 5000, "2025-12-01", "2025-12-05").
			WithLine(dressID, 5000, "2025-12-04", "2025-12-06").
			MustBuildDomain()
		require.ErrorIs(t, s.CreateReservations(ctx, p), shared.ErrStoreConflict)
	})

	t.Run("concurrent overlapping writers, exactly one wins", func(t *testing.T) {
		s := memstore.New()
		dressID := uuid.New()
		const writers = 32

		var wins atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p := builder.NewProspectBuilder().WithLine(dressID, 5000, "2025-12-01", "2025-12-05").MustBuildDomain()
				if err := s.CreateReservations(ctx, p); err == nil {
					wins.Add(1)
				} else {
					assert.ErrorIs(t, err, shared.ErrStoreConflict)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins.Load())
		list, err := s.ListReservations(ctx, dressID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := memstore.New()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.ListReservations(cctx, uuid.New())
		require.ErrorIs(t, err, context.Canceled)
	})
}
