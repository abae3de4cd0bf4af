package handlers

import (
	"github.com/gin-gonic/gin"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/order"
	"shopapi/internal/infrastructure/http/v1/dto"
)

// OrderHandler serves the order endpoints.
type OrderHandler struct {
	*BaseHandler
	service *order.Service
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(base *BaseHandler, service *order.Service) *OrderHandler {
	return &OrderHandler{BaseHandler: base, service: service}
}

// List handles GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	views, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrderViews(views))
}

// Get handles GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	v, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrderView(v))
}

// ByUser handles GET /api/orders/user/:userId
func (h *OrderHandler) ByUser(c *gin.Context) {
	userID, ok := h.ParseIDParam(c, "userId")
	if !ok {
		return
	}
	views, err := h.service.ByUser(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrderViews(views))
}

// Create handles POST /api/orders. When the body omits userId the order is
// placed for the authenticated user.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}
	in := req.ToInput()
	if in.UserID == 0 {
		in.UserID = h.GetUserID(c)
	}
	v, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromOrderView(v))
}

// Update handles PUT /api/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}
	v, err := h.service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrderView(v))
}

// Delete handles DELETE /api/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
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
		h.Error(c, apperror.NewNotFound("order", id))
		return
	}
	h.NoContent(c)
}
