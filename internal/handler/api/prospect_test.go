//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/money"
	"allure-rental/internal/handler/api"
	resdto "allure-rental/internal/handler/dto/response"
	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/usecase/commands"
	"allure-rental/internal/usecase/queries"
	"allure-rental/tests/common/builder"
	"allure-rental/tests/common/httptest"
	"allure-rental/tests/common/testutil"
	commandsmock "allure-rental/tests/mock/commands"
	queriesmock "allure-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProspectHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockProspectQueries
	handler      *api.ProspectHandler

	dressID uuid.UUID
}

func (s *ProspectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProspectQueries(s.mockCtrl)
	s.handler = api.NewProspectHandler(s.mockCommands, s.mockQueries)
	s.dressID = uuid.New()

	s.router.POST("/prospects", s.handler.Create)
	s.router.GET("/prospects/:id", s.handler.Get)
}

func (s *ProspectHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProspectHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProspectHandlerTestSuite))
}

type testCaseProspect struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *ProspectHandlerTestSuite) committed() *commands.SubmitResult {
	r := calendar.MustParseRange("2025-12-01", "2025-12-04")
	return &commands.SubmitResult{
		ProspectID: uuid.New(),
		State:      commands.StateCommitted,
		Reservations: []commands.ReservationLine{{
			ID:      uuid.New(),
			DressID: s.dressID,
			Range:   r,
			Quote:   quoteOf(3, 4990),
		}},
		Total: money.FromCents(14970),
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ProspectHandlerTestSuite) TestCreate() {
	url := "/prospects"
	reqBody := builder.NewProspectBuilder().
		WithLine(s.dressID, 4990, "2025-12-01", "2025-12-04").
		BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with Location", func() {
		result := s.committed()
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.SubmitParams) (*commands.SubmitResult, error) {
				s.Equal("Camille", p.Customer.Firstname)
				s.Require().Len(p.Items, 1)
				s.Equal(s.dressID, p.Items[0].DressID)
				s.Equal(3, p.Items[0].Range.Days())
				return result, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")

		var body resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.ProspectID.String(), body.ProspectID)
		s.Equal("committed", body.State)
		s.Equal(int64(14970), body.TotalEstimatedCostCents)
		s.InDelta(149.70, body.TotalEstimatedCost, 0.001)
		s.Require().Len(body.DressReservations, 1)
		s.Equal("2025-12-01", body.DressReservations[0].RentalStartDate)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/prospects/" + result.ProspectID.String()})
	})

	s.Run("success: status and source are accepted and ignored", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(s.committed(), nil)
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("status", "vip"), testutil.Field("source", "instagram"))

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, body, "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	missing := []testCaseProspect{
		{name: "missing field: firstname", mutate: testutil.Field("firstname", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: lastname", mutate: testutil.Field("lastname", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: phone", mutate: testutil.Field("phone", nil), expectCode: http.StatusBadRequest},
	}
	bound := []testCaseProspect{
		{name: "firstname 101 chars", mutate: testutil.Field("firstname", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
		{name: "notes 2001 chars", mutate: testutil.Field("notes", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
	}
	dates := []testCaseProspect{
		{
			name: "unparseable date",
			mutate: testutil.Field("dress_reservations", []map[string]any{{
				"dress_id": s.dressID.String(), "rental_start_date": "01/12/2025", "rental_end_date": "2025-12-04",
			}}),
			expectCode: http.StatusBadRequest, expectInBody: "Invalid dates",
		},
		{
			name: "end before start",
			mutate: testutil.Field("dress_reservations", []map[string]any{{
				"dress_id": s.dressID.String(), "rental_start_date": "2025-12-04", "rental_end_date": "2025-12-01",
			}}),
			expectCode: http.StatusBadRequest, expectInBody: "Invalid dates",
		},
		{
			name: "same day",
			mutate: testutil.Field("dress_reservations", []map[string]any{{
				"dress_id": s.dressID.String(), "rental_start_date": "2025-12-04", "rental_end_date": "2025-12-04",
			}}),
			expectCode: http.StatusBadRequest, expectInBody: "Invalid dates",
		},
		{
			name: "missing dress id",
			mutate: testutil.Field("dress_reservations", []map[string]any{{
				"rental_start_date": "2025-12-01", "rental_end_date": "2025-12-04",
			}}),
			expectCode: http.StatusBadRequest,
		},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseProspect{missing, bound, dates} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, "POST", url, requestMap, "")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
				})
			}
		}
	})

	s.Run("error: malformed json", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, "POST", url, `{"firstname": `)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	usecaseErrors := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "no items", err: commands.ErrNoItems, expectCode: http.StatusBadRequest, expectMsg: "No dress selected"},
		{name: "start in the past", err: errs.Wrap(calendar.ErrPastDate, "item 0"), expectCode: http.StatusBadRequest, expectMsg: "cannot be in the past"},
		{name: "invalid customer", err: errs.Mark(errs.New("bad email"), commands.ErrInvalidCustomer), expectCode: http.StatusBadRequest, expectMsg: "Invalid customer details"},
		{name: "unknown dress", err: errs.Mark(errs.New("404"), commands.ErrDressNotFound), expectCode: http.StatusNotFound, expectMsg: "Dress not found"},
		{name: "check failed", err: errs.Mark(errs.New("timeout"), commands.ErrCheckFailed), expectCode: http.StatusServiceUnavailable, expectMsg: "retry"},
		{name: "commit failed", err: errs.Mark(errs.New("disk"), commands.ErrCommitFailed), expectCode: http.StatusInternalServerError, expectMsg: "Internal error"},
	}
	for _, tc := range usecaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: 409 lists every refused line", func() {
		conflict := calendar.MustParseRange("2025-11-30", "2025-12-02")
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, &commands.RejectionError{
			State: commands.StateRejected,
			Failures: []commands.ItemFailure{{
				DressID:  s.dressID,
				Range:    calendar.MustParseRange("2025-12-01", "2025-12-04"),
				Reason:   commands.ReasonUnavailable,
				Conflict: &conflict,
			}},
		})

		rec := httptest.PerformRequest(s.T(), s.router, "POST", url, reqBody, "")
		failures := httptest.AssertRejection(s.T(), rec)
		s.Require().Len(failures, 1)
		s.Equal(s.dressID.String(), failures[0].DressID)
		s.Equal("unavailable", failures[0].Reason)
		s.Require().NotNil(failures[0].Conflict)
		s.Equal("2025-11-30", failures[0].Conflict.Start)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ProspectHandlerTestSuite) TestGet() {
	s.Run("success: returns the recorded request", func() {
		view := &queries.ProspectView{
			ID:        uuid.New(),
			Firstname: "Camille",
			Lastname:  "Durand",
			Email:     "camille.durand@example.com",
			Status:    "new",
			Source:    "website",
			Reservations: []queries.ProspectReservationView{{
				ID:                 uuid.New(),
				DressID:            s.dressID,
				Range:              queries.RangeView{Start: "2025-12-01", End: "2025-12-04"},
				Status:             "pending",
				RentalDays:         3,
				PricePerDayCents:   4990,
				EstimatedCostCents: 14970,
			}},
			TotalEstimatedCostCents: 14970,
			CreatedAt:               builder.DefaultNow,
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/prospects/"+view.ID.String(), nil, "")

		var body resdto.ProspectResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("2025-11-20T09:30:00Z", body.CreatedAt)
		s.Require().Len(body.DressReservations, 1)
		s.Equal("pending", body.DressReservations[0].Status)
		s.InDelta(149.70, body.TotalEstimatedCost, 0.001)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("missing"), queries.ErrProspectNotFound))
		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/prospects/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Request not found")
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, "GET", "/prospects/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
