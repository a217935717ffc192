package api

import (
	"net/http"
	"strings"

	reqdto "allure-rental/internal/handler/dto/request"
	resdto "allure-rental/internal/handler/dto/response"
	"allure-rental/internal/handler/httperr"
	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/usecase/maintenance"

	"github.com/gin-gonic/gin"
)

var errMissingToken = errs.New("missing bearer token")

type MaintenanceHandler struct {
	svc maintenance.Service
}

func NewMaintenanceHandler(svc maintenance.Service) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc}
}

// @Summary Maintenance status
// @Tags maintenance
// @Produce json
// @Success 200 {object} resdto.MaintenanceResponse
// @Router /api/maintenance [get]
func (h *MaintenanceHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromMaintenanceStatus(h.svc.Status()))
}

// @Summary Toggle maintenance
// @Tags maintenance
// @Accept json
// @Produce json
// @Param request body reqdto.ToggleMaintenanceRequest true "Toggle"
// @Success 200 {object} resdto.MaintenanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/maintenance [post]
func (h *MaintenanceHandler) Toggle(c *gin.Context) {
	var req reqdto.ToggleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	st, err := h.svc.Toggle(c.Request.Context(), *req.Enabled, req.Secret)
	if err != nil {
		abortWithMaintenanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaintenanceStatus(st))
}

// @Summary Maintenance webhook
// @Description Called by the back office with a signed bearer token
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MaintenanceWebhookRequest true "Webhook payload"
// @Success 200 {object} resdto.MaintenanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/webhook/maintenance [post]
func (h *MaintenanceHandler) Webhook(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Unauthorized", nil)
		return
	}
	var req reqdto.MaintenanceWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	st, err := h.svc.ApplyWebhook(c.Request.Context(), token, *req.Enabled, req.Message)
	if err != nil {
		abortWithMaintenanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaintenanceStatus(st))
}

func abortWithMaintenanceError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, maintenance.ErrNotConfigured):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Maintenance control is not configured", nil)
	case errs.Is(err, maintenance.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[len("Bearer "):])
}
