package handlers

import (
	"github.com/gin-gonic/gin"

	"shopapi/internal/domain/account"
	"shopapi/internal/infrastructure/http/v1/dto"
)

// AccountHandler serves registration and login.
type AccountHandler struct {
	*BaseHandler
	service *account.Service
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(base *BaseHandler, service *account.Service) *AccountHandler {
	return &AccountHandler{BaseHandler: base, service: service}
}

// Register handles POST /api/account/register
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}
	u, err := h.service.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromUser(u))
}

// Login handles POST /api/account/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}
	res, err := h.service.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromLoginResult(res))
}
