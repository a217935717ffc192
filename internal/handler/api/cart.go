package api

import (
	"net/http"

	reqdto "allure-rental/internal/handler/dto/request"
	resdto "allure-rental/internal/handler/dto/response"
	"allure-rental/internal/handler/httperr"
	"allure-rental/internal/usecase/commands"
	"allure-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Cart content with a quote for every dated item
// @Tags carts
// @Produce json
// @Param cartId path string true "Cart ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/carts/{cartId} [get]
func (h *CartHandler) Get(c *gin.Context) {
	h.respondWithCart(c, http.StatusOK, c.Param("cartId"))
}

// @Summary Add or update cart item
// @Description Dates are optional; when given they must be free for the dress
// @Tags carts
// @Accept json
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param dressId path string true "Dress ID"
// @Param request body reqdto.PutCartItemRequest true "Item"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/carts/{cartId}/items/{dressId} [put]
func (h *CartHandler) PutItem(c *gin.Context) {
	cartID := c.Param("cartId")
	dressID, ok := dressIDParam(c, "dressId")
	if !ok {
		return
	}
	var req reqdto.PutCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	dr, err := req.ToRange()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	_, err = h.cmds.PutItem(c.Request.Context(), commands.PutItemParams{
		CartID:  cartID,
		DressID: dressID,
		Range:   dr,
		Notes:   req.Notes,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithCart(c, http.StatusOK, cartID)
}

// @Summary Remove cart item
// @Tags carts
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param dressId path string true "Dress ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/carts/{cartId}/items/{dressId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID := c.Param("cartId")
	dressID, ok := dressIDParam(c, "dressId")
	if !ok {
		return
	}
	if _, err := h.cmds.RemoveItem(c.Request.Context(), cartID, dressID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithCart(c, http.StatusOK, cartID)
}

// @Summary Clear cart
// @Tags carts
// @Param cartId path string true "Cart ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/carts/{cartId} [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cmds.Clear(c.Request.Context(), c.Param("cartId")); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Checkout cart
// @Description Submits every cart item as one all-or-nothing reservation request
// @Tags carts
// @Accept json
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param request body reqdto.CheckoutRequest true "Customer"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/carts/{cartId}/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Checkout(c.Request.Context(), c.Param("cartId"), req.CustomerRequest.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/prospects/"+result.ProspectID.String())
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

func (h *CartHandler) respondWithCart(c *gin.Context, status int, cartID string) {
	view, err := h.q.Get(c.Request.Context(), cartID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, resdto.FromCartView(view))
}
