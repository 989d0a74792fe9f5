package handler

import (
	appcart "github.com/barrovivo/backend/internal/application/cart"
	"github.com/barrovivo/backend/internal/interfaces/http/dto"
	"github.com/barrovivo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler manages the per-user cart endpoints
type CartHandler struct {
	BaseHandler
	carts *appcart.Service
}

// NewCartHandler creates a CartHandler
func NewCartHandler(carts *appcart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

// Show handles GET /pedido/carrito
func (h *CartHandler) Show(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	cart, err := h.carts.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toCartResponse(cart))
}

// Add handles POST /pedido/agregar/:id where :id is the product.
// A missing or non-positive body quantity defaults to one unit.
func (h *CartHandler) Add(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req QuantityRequest
	// absent body means one unit
	_ = c.ShouldBindJSON(&req)

	result, err := h.carts.AddItem(c.Request.Context(), userID, uuid.MustParse(uri.ID), req.Quantity)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, AddToCartResponse{
		Outcome:  string(result.Outcome),
		Added:    result.Added,
		Quantity: result.Quantity,
	})
}

// Update handles POST /pedido/actualizar/:id where :id is the cart line
func (h *CartHandler) Update(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid line ID")
		return
	}

	var req QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, middleware.FormatBindingError(err))
		return
	}

	result, err := h.carts.SetQuantity(c.Request.Context(), userID, uuid.MustParse(uri.ID), req.Quantity)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, UpdateCartResponse{
		Outcome:  string(result.Outcome),
		Quantity: result.Quantity,
	})
}

// Remove handles POST /pedido/remover/:id where :id is the cart line
func (h *CartHandler) Remove(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid line ID")
		return
	}

	if err := h.carts.RemoveItem(c.Request.Context(), userID, uuid.MustParse(uri.ID)); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"removido": true})
}
