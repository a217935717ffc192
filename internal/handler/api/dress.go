package api

import (
	"net/http"

	reqdto "allure-rental/internal/handler/dto/request"
	resdto "allure-rental/internal/handler/dto/response"
	"allure-rental/internal/handler/httperr"
	"allure-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DressHandler struct {
	q queries.DressQueries
}

func NewDressHandler(q queries.DressQueries) *DressHandler {
	return &DressHandler{q: q}
}

// @Summary List dresses
// @Description Published dresses from the catalog, filtered
// @Tags dresses
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Param sizes query string false "Size id"
// @Param types query string false "Type id"
// @Param colors query string false "Color id"
// @Param priceMax query number false "Max price"
// @Param pricePerDayMax query number false "Max price per day"
// @Param search query string false "Free text"
// @Success 200 {object} resdto.DressPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/dresses [get]
func (h *DressHandler) List(c *gin.Context) {
	var query reqdto.ListDressesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	page, err := h.q.List(c.Request.Context(), query.ToFilters())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromDressPageView(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Dress filters
// @Description Types, sizes and colors available among published dresses
// @Tags dresses
// @Produce json
// @Success 200 {object} resdto.FacetsResponse
// @Failure 503 {object} httperr.Response
// @Router /api/dresses/facets [get]
func (h *DressHandler) Facets(c *gin.Context) {
	facets, err := h.q.Facets(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFacetsView(facets))
}

// @Summary Get dress
// @Tags dresses
// @Produce json
// @Param id path string true "Dress ID"
// @Success 200 {object} resdto.DressResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/dresses/{id} [get]
func (h *DressHandler) Get(c *gin.Context) {
	id, ok := dressIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromDressView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Check availability
// @Description Advisory answer; the reservation request re-checks authoritatively
// @Tags dresses
// @Produce json
// @Param id path string true "Dress ID"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/dresses/{id}/availability [get]
func (h *DressHandler) Availability(c *gin.Context) {
	id, ok := dressIDParam(c, "id")
	if !ok {
		return
	}
	var query reqdto.RangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	dr, err := query.ToDomain()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.Availability(c.Request.Context(), id, dr)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Quote a rental
// @Tags dresses
// @Produce json
// @Param id path string true "Dress ID"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/dresses/{id}/quote [get]
func (h *DressHandler) Quote(c *gin.Context) {
	id, ok := dressIDParam(c, "id")
	if !ok {
		return
	}
	var query reqdto.RangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	dr, err := query.ToDomain()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.Quote(c.Request.Context(), id, dr)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

func dressIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
