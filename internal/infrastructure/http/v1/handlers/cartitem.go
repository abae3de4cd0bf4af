package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/cartitem"
	"shopapi/internal/infrastructure/http/v1/dto"
)

// CartItemHandler serves the cart line endpoints.
type CartItemHandler struct {
	*BaseHandler
	service *cartitem.Service
}

// NewCartItemHandler creates a new cart item handler.
func NewCartItemHandler(base *BaseHandler, service *cartitem.Service) *CartItemHandler {
	return &CartItemHandler{BaseHandler: base, service: service}
}

// List handles GET /api/cartitems. An optional cartId query parameter
// narrows the result to one cart's lines.
func (h *CartItemHandler) List(c *gin.Context) {
	if raw := c.Query("cartId"); raw != "" {
		cartID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || cartID <= 0 {
			h.Error(c, apperror.NewValidation("cartId must be a positive integer"))
			return
		}
		items, err := h.service.ByCart(c.Request.Context(), cartID)
		if err != nil {
			h.Error(c, err)
			return
		}
		h.OK(c, dto.FromCartItems(items))
		return
	}
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCartItems(items))
}

// Get handles GET /api/cartitems/:id
func (h *CartItemHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	it, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCartItem(it))
}

// Create handles POST /api/cartitems
func (h *CartItemHandler) Create(c *gin.Context) {
	var req dto.CreateCartItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	it, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromCartItem(it))
}

// Update handles PUT /api/cartitems/:id
func (h *CartItemHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCartItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	it, err := h.service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCartItem(it))
}

// Delete handles DELETE /api/cartitems/:id
func (h *CartItemHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !deleted {
		h.Error(c, apperror.NewNotFound("cart_item", id))
		return
	}
	h.NoContent(c)
}
