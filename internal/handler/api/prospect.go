package api

import (
	"net/http"

	reqdto "allure-rental/internal/handler/dto/request"
	resdto "allure-rental/internal/handler/dto/response"
	"allure-rental/internal/handler/httperr"
	"allure-rental/internal/usecase/commands"
	"allure-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProspectHandler struct {
	cmds commands.ReservationCommands
	q    queries.ProspectQueries
}

func NewProspectHandler(cmds commands.ReservationCommands, q queries.ProspectQueries) *ProspectHandler {
	return &ProspectHandler{cmds: cmds, q: q}
}

// @Summary Submit reservation request
// @Description Records the customer and all requested dresses, or nothing at all
// @Tags prospects
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProspectRequest true "Customer and dresses"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/prospects [post]
func (h *ProspectHandler) Create(c *gin.Context) {
	var req reqdto.CreateProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/prospects/"+result.ProspectID.String())
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

// @Summary Get reservation request
// @Description Confirmation view with per-dress rental days and estimated cost
// @Tags prospects
// @Produce json
// @Param id path string true "Prospect ID"
// @Success 200 {object} resdto.ProspectResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/prospects/{id} [get]
func (h *ProspectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProspectView(view))
}
