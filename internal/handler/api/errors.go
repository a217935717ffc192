package api

import (
	"net/http"

	"allure-rental/internal/domain/calendar"
	"allure-rental/internal/domain/cart"
	"allure-rental/internal/domain/reservation"
	reqdto "allure-rental/internal/handler/dto/request"
	resdto "allure-rental/internal/handler/dto/response"
	"allure-rental/internal/handler/httperr"
	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/usecase/availability"
	"allure-rental/internal/usecase/commands"
	"allure-rental/internal/usecase/queries"
	"allure-rental/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase and domain errors to HTTP responses.
// Order matters: a rejection also matches ErrConflict.
func abortWithUsecaseError(c *gin.Context, err error) {
	var rejection *commands.RejectionError
	if errs.As(err, &rejection) {
		httperr.AbortWithError(c, http.StatusConflict, err, "Dress unavailable for the requested dates", resdto.FromRejection(rejection))
		return
	}

	switch {
	case errs.Is(err, calendar.ErrInvalidDateFormat),
		errs.Is(err, calendar.ErrInvalidRange),
		errs.Is(err, reqdto.ErrPartialRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dates", nil)
	case errs.Is(err, calendar.ErrPastDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Rental dates cannot be in the past", nil)
	case errs.Is(err, commands.ErrNoItems):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No dress selected", nil)
	case errs.Is(err, commands.ErrIncompleteItem):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Every dress needs rental dates", nil)
	case errs.Is(err, commands.ErrInvalidCustomer),
		errs.Is(err, reservation.ErrInvalidCustomer):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer details", nil)
	case errs.Is(err, cart.ErrInvalidCartID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cart id", nil)
	case errs.Is(err, cart.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Dress not in cart", nil)
	case errs.Is(err, commands.ErrDressNotFound),
		errs.Is(err, queries.ErrDressNotFound),
		errs.Is(err, shared.ErrDressNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Dress not found", nil)
	case errs.Is(err, queries.ErrProspectNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
	case errs.Is(err, availability.ErrUnavailable),
		errs.Is(err, commands.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Dress unavailable for the requested dates", nil)
	case errs.Is(err, availability.ErrCheckFailed),
		errs.Is(err, shared.ErrCatalogUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Availability could not be verified, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
