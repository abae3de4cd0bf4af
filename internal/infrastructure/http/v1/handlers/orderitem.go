package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/orderitem"
	"shopapi/internal/infrastructure/http/v1/dto"
)

// OrderItemHandler serves the order line endpoints.
type OrderItemHandler struct {
	*BaseHandler
	service *orderitem.Service
}

// NewOrderItemHandler creates a new order item handler.
func NewOrderItemHandler(base *BaseHandler, service *orderitem.Service) *OrderItemHandler {
	return &OrderItemHandler{BaseHandler: base, service: service}
}

// List handles GET /api/orderitems. An optional orderId query parameter
// narrows the result to one order's lines.
func (h *OrderItemHandler) List(c *gin.Context) {
	if raw := c.Query("orderId"); raw != "" {
		orderID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || orderID <= 0 {
			h.Error(c, apperror.NewValidation("orderId must be a positive integer"))
			return
		}
		items, err := h.service.ByOrder(c.Request.Context(), orderID)
		if err != nil {
			h.Error(c, err)
			return
		}
		h.OK(c, dto.FromOrderItems(items))
		return
	}
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrderItems(items))
}

// Get handles GET /api/orderitems/:id
func (h *OrderItemHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	it, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrderItem(it))
}

// ByOrder handles GET /api/orderitems/order/:orderId
func (h *OrderItemHandler) ByOrder(c *gin.Context) {
	orderID, ok := h.ParseIDParam(c, "orderId")
	if !ok {
		return
	}
	items, err := h.service.ByOrder(c.Request.Context(), orderID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrderItems(items))
}

// Create handles POST /api/orderitems
func (h *OrderItemHandler) Create(c *gin.Context) {
	var req dto.CreateOrderItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	it, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromOrderItem(it))
}

// Update handles PUT /api/orderitems/:id
func (h *OrderItemHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	it, err := h.service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromOrderItem(it))
}

// Delete handles DELETE /api/orderitems/:id
func (h *OrderItemHandler) Delete(c *gin.Context) {
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
		h.Error(c, apperror.NewNotFound("order_item", id))
		return
	}
	h.NoContent(c)
}
