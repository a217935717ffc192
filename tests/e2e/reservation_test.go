//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"allure-rental/cmd/bootstrap"
	resdto "allure-rental/internal/handler/dto/response"
	"allure-rental/internal/pkg/jwt"
	"allure-rental/tests/common/builder"
	"allure-rental/tests/common/dbtest"
	"allure-rental/tests/common/httptest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReservationE2ESuite struct {
	SharedSuite
}

func TestReservationE2ESuite(t *testing.T) {
	suite.Run(t, new(ReservationE2ESuite))
}

func (s *ReservationE2ESuite) submit(b *builder.ProspectBuilder) *resdto.SubmitResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/prospects", b.BuildCreateRequestDTO(), "")
	var res resdto.SubmitResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return &res
}

func (s *ReservationE2ESuite) TestCreateProspect() {
	s.Run("commits every line and reads back the confirmation", func() {
		b := builder.NewProspectBuilder().
			WithLine(dressLina, 4990, "2031-06-10", "2031-06-13").
			WithLine(dressJade, 6000, "2031-06-10", "2031-06-12")

		res := s.submit(b)

		assert.Equal(s.T(), "committed", res.State)
		assert.Len(s.T(), res.DressReservations, 2)
		assert.Equal(s.T(), int64(14970+12000), res.TotalEstimatedCostCents)
		assert.Equal(s.T(), 1, dbtest.CountReservations(s.T(), s.DB, dressLina))
		assert.Equal(s.T(), 1, dbtest.CountReservations(s.T(), s.DB, dressJade))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/prospects/"+res.ProspectID, nil, "")
		var view resdto.ProspectResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		assert.Equal(s.T(), "camille.durand@example.com", view.Email)
		assert.Equal(s.T(), "new", view.Status)
		assert.Len(s.T(), view.DressReservations, 2)
		assert.Equal(s.T(), int64(26970), view.TotalEstimatedCostCents)
	})

	s.Run("a conflicting line rejects the whole request", func() {
		dbtest.InsertReservation(s.T(), s.DB, dressLina, "2031-07-01", "2031-07-05", "confirmed")
		before := dbtest.CountProspects(s.T(), s.DB)

		b := builder.NewProspectBuilder().
			WithLine(dressJade, 6000, "2031-07-02", "2031-07-04").
			WithLine(dressLina, 4990, "2031-07-04", "2031-07-06")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/prospects", b.BuildCreateRequestDTO(), "")

		failures := httptest.AssertRejection(s.T(), w)
		require.Len(s.T(), failures, 1)
		assert.Equal(s.T(), dressLina.String(), failures[0].DressID)
		assert.Equal(s.T(), "unavailable", failures[0].Reason)
		require.NotNil(s.T(), failures[0].Conflict)
		assert.Equal(s.T(), "2031-07-01", failures[0].Conflict.Start)

		assert.Equal(s.T(), before, dbtest.CountProspects(s.T(), s.DB))
		assert.Equal(s.T(), 0, dbtest.CountReservations(s.T(), s.DB, dressJade))
	})

	s.Run("a cancelled reservation frees the dates", func() {
		dbtest.InsertReservation(s.T(), s.DB, dressLina, "2031-08-01", "2031-08-05", "cancelled")

		res := s.submit(builder.NewProspectBuilder().WithLine(dressLina, 4990, "2031-08-02", "2031-08-03"))
		assert.Equal(s.T(), "committed", res.State)
	})

	s.Run("back to back ranges do not overlap", func() {
		s.submit(builder.NewProspectBuilder().WithLine(dressLina, 4990, "2031-09-01", "2031-09-05"))
		s.submit(builder.NewProspectBuilder().WithLine(dressLina, 4990, "2031-09-05", "2031-09-08"))

		assert.Equal(s.T(), 2, dbtest.CountReservations(s.T(), s.DB, dressLina))
	})

	s.Run("a rental starting in the past is refused", func() {
		b := builder.NewProspectBuilder().WithLine(dressLina, 4990, "2020-01-01", "2020-01-05")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/prospects", b.BuildCreateRequestDTO(), "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "cannot be in the past")
		assert.Equal(s.T(), 0, dbtest.CountProspects(s.T(), s.DB))
	})

	s.Run("unknown dress is not found and stores nothing", func() {
		b := builder.NewProspectBuilder().WithLine(dressGhost, 1000, "2031-06-10", "2031-06-12")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/prospects", b.BuildCreateRequestDTO(), "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
		assert.Equal(s.T(), 0, dbtest.CountProspects(s.T(), s.DB))
	})
}

func (s *ReservationE2ESuite) TestConcurrentSubmissions() {
	s.Run("overlapping requests commit exactly once", func() {
		const workers = 16

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			statuses = map[int]int{}
		)
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				// starts differ but every range covers 2031-10-04
				start := fmt.Sprintf("2031-10-%02d", 1+i%4)
				end := fmt.Sprintf("2031-10-%02d", 6+i%4)
				b := builder.NewProspectBuilder().WithLine(dressLina, 4990, start, end)
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/prospects", b.BuildCreateRequestDTO(), "")

				mu.Lock()
				statuses[w.Code]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(s.T(), 1, statuses[http.StatusCreated], "statuses: %v", statuses)
		assert.Equal(s.T(), workers-1, statuses[http.StatusConflict], "statuses: %v", statuses)
		assert.Equal(s.T(), 1, dbtest.CountReservations(s.T(), s.DB, dressLina))
	})
}

func (s *ReservationE2ESuite) TestAvailability() {
	s.Run("reflects a commit made after the first read", func() {
		path := "/api/dresses/" + dressJade.String() + "/availability?start=2031-11-10&end=2031-11-12"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, "")
		var first resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &first)
		assert.True(s.T(), first.Available)

		s.submit(builder.NewProspectBuilder().WithLine(dressJade, 6000, "2031-11-11", "2031-11-14"))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, "")
		var second resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &second)
		assert.False(s.T(), second.Available)
		require.NotNil(s.T(), second.Conflict)
		assert.Equal(s.T(), "2031-11-11", second.Conflict.Start)
	})

	s.Run("unknown dress is not found", func() {
		path := "/api/dresses/" + dressGhost.String() + "/availability?start=2031-11-10&end=2031-11-12"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Dress not found")
	})

	s.Run("quote uses the catalog price", func() {
		path := "/api/dresses/" + dressLina.String() + "/quote?start=2031-11-10&end=2031-11-13"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, "")
		var quote resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &quote)
		assert.Equal(s.T(), 3, quote.RentalDays)
		assert.Equal(s.T(), int64(14970), quote.TotalCents)
	})
}

func (s *ReservationE2ESuite) TestCartCheckout() {
	s.Run("checks out the cart into a prospect and empties it", func() {
		cartPath := "/api/carts/e2e-cart-1"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, cartPath+"/items/"+dressLina.String(),
			map[string]any{"start": "2031-12-01", "end": "2031-12-04"}, "")
		var cart resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cart)
		require.Len(s.T(), cart.Items, 1)
		assert.True(s.T(), cart.Complete)
		assert.Equal(s.T(), int64(14970), cart.TotalCents)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cartPath+"/checkout",
			builder.NewCustomerBuilder().BuildRequestDTO(), "")
		var res resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		assert.Equal(s.T(), "committed", res.State)
		assert.Equal(s.T(), 1, dbtest.CountReservations(s.T(), s.DB, dressLina))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, cartPath, nil, "")
		var after resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &after)
		assert.Empty(s.T(), after.Items)
	})
}

func (s *ReservationE2ESuite) TestMaintenanceWebhook() {
	s.Run("a signed webhook closes and reopens the API", func() {
		token, err := bootstrap.NewJWTService(s.Config).GenerateToken(jwt.ScopeMaintenance, "back-office")
		require.NoError(s.T(), err)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/webhook/maintenance",
			map[string]any{"enabled": true, "message": "inventory"}, token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/dresses", nil, "")
		assert.Equal(s.T(), http.StatusServiceUnavailable, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/webhook/maintenance",
			map[string]any{"enabled": false}, token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/dresses", nil, "")
		var list resdto.DressPageResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		assert.Len(s.T(), list.Data, 2)
	})
}
