//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/reservation"
	"allure-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customerCase struct {
	name   string
	mutate func(*builder.CustomerBuilder)
	errIs  error
}

func TestCustomer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		c, err := builder.NewCustomerBuilder().
			WithFirstname("  Camille ").
			WithEmail(" camille@example.com ").
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Camille", c.Firstname)
		assert.Equal(t, "camille@example.com", c.Email)
		assert.Equal(t, "Camille Durand", c.FullName())
	})

	cases := []customerCase{
		{name: "missing firstname", mutate: func(b *builder.CustomerBuilder) { b.WithFirstname("") }, errIs: reservation.ErrMissingName},
		{name: "blank lastname", mutate: func(b *builder.CustomerBuilder) { b.WithLastname("  ") }, errIs: reservation.ErrMissingName},
		{name: "invalid email", mutate: func(b *builder.CustomerBuilder) { b.WithEmail("camille@") }, errIs: reservation.ErrInvalidEmail},
		{name: "display name email", mutate: func(b *builder.CustomerBuilder) { b.WithEmail("Camille <c@example.com>") }, errIs: reservation.ErrInvalidEmail},
		{name: "missing phone", mutate: func(b *builder.CustomerBuilder) { b.WithPhone("") }, errIs: reservation.ErrMissingPhone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := builder.NewCustomerBuilder().With(c.mutate).BuildDomain()
			require.ErrorIs(t, err, c.errIs)
			require.ErrorIs(t, err, reservation.ErrInvalidCustomer)
		})
	}
}

func TestFactoryCreateProspect(t *testing.T) {
	t.Run("prices every line and shares the prospect id", func(t *testing.T) {
		dressA, dressB := uuid.New(), uuid.New()
		p, err := builder.NewProspectBuilder().
			WithLine(dressA, 5000, "2025-12-01", "2025-12-05").
			WithLine(dressB, 7550, "2025-12-10", "2025-12-12").
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, reservation.ProspectStatusNew, p.Status())
		assert.Equal(t, reservation.SourceWebsite, p.Source())
		assert.Equal(t, builder.DefaultNow, p.CreatedAt())

		lines := p.Reservations()
		require.Len(t, lines, 2)
		for _, r := range lines {
			assert.Equal(t, p.ID(), r.ProspectID())
			assert.Equal(t, reservation.StatusPending, r.Status())
			assert.True(t, r.IsActive())
		}
		assert.Equal(t, int64(20000), lines[0].EstimatedCost().Cents())
		assert.Equal(t, int64(15100), lines[1].EstimatedCost().Cents())
		assert.Equal(t, int64(35100), p.Total().Cents())
		assert.ElementsMatch(t, []uuid.UUID{dressA, dressB}, p.DressIDs())
	})

	t.Run("no lines", func(t *testing.T) {
		_, err := builder.NewProspectBuilder().BuildDomain()
		require.ErrorIs(t, err, reservation.ErrNoLines)
	})

	t.Run("a line starting before today is refused", func(t *testing.T) {
		_, err := builder.NewProspectBuilder().
			WithNow(time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)).
			WithLine(uuid.New(), 5000, "2026-10-20", "2026-10-22").
			WithLine(uuid.New(), 5000, "2020-01-01", "2020-01-05").
			BuildDomain()
		require.ErrorIs(t, err, calendar.ErrPastDate)
	})

	t.Run("negative price aborts the whole prospect", func(t *testing.T) {
		_, err := builder.NewProspectBuilder().
			WithLine(uuid.New(), 5000, "2025-12-01", "2025-12-05").
			WithLine(uuid.New(), -100, "2025-12-01", "2025-12-05").
			BuildDomain()
		require.ErrorIs(t, err, reservation.ErrNegativePrice)
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, reservation.StatusPending.Blocks())
	assert.True(t, reservation.StatusConfirmed.Blocks())
	assert.False(t, reservation.StatusCancelled.Blocks())
	assert.False(t, reservation.Status("archived").IsValid())
}
