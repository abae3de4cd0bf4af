package handlers

import (
	"github.com/gin-gonic/gin"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/cart"
	"shopapi/internal/infrastructure/http/v1/dto"
)

// CartHandler serves the user-keyed cart endpoints.
type CartHandler struct {
	*BaseHandler
	service *cart.Service
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(base *BaseHandler, service *cart.Service) *CartHandler {
	return &CartHandler{BaseHandler: base, service: service}
}

// Get handles GET /api/carts/:userId
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := h.ParseIDParam(c, "userId")
	if !ok {
		return
	}
	v, err := h.service.ByUser(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCartView(v))
}

// Create handles POST /api/carts/:userId
func (h *CartHandler) Create(c *gin.Context) {
	userID, ok := h.ParseIDParam(c, "userId")
	if !ok {
		return
	}
	var req dto.CreateCartRequest
	if !h.BindJSON(c, &req) {
		return
	}
	v, err := h.service.Create(c.Request.Context(), userID, req.ToInputs())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromCartView(v))
}

// Update handles PUT /api/carts/:userId
func (h *CartHandler) Update(c *gin.Context) {
	userID, ok := h.ParseIDParam(c, "userId")
	if !ok {
		return
	}
	var req dto.UpdateCartRequest
	if !h.BindJSON(c, &req) {
		return
	}
	v, err := h.service.Update(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCartView(v))
}

// Delete handles DELETE /api/carts/:userId
func (h *CartHandler) Delete(c *gin.Context) {
	userID, ok := h.ParseIDParam(c, "userId")
	if !ok {
		return
	}
	cleared, err := h.service.Clear(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !cleared {
		h.Error(c, apperror.NewNotFound("cart", userID))
		return
	}
	h.Success(c, "cart cleared")
}
