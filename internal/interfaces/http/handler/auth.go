package handler

import (
	appidentity "github.com/barrovivo/backend/internal/application/identity"
	"github.com/barrovivo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	BaseHandler
	users *appidentity.Service
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(users *appidentity.Service) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register handles POST /usuario/registro
func (h *AuthHandler) Register(c *gin.Context) {
	var input appidentity.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.ValidationError(c, middleware.FormatBindingError(err))
		return
	}

	result, err := h.users.Register(c.Request.Context(), input)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, AuthResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// Login handles POST /usuario/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, middleware.FormatBindingError(err))
		return
	}

	result, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, AuthResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}
