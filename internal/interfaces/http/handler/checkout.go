package handler

import (
	"errors"
	"net/http"

	appcart "github.com/barrovivo/backend/internal/application/cart"
	appcheckout "github.com/barrovivo/backend/internal/application/checkout"
	apporders "github.com/barrovivo/backend/internal/application/orders"
	"github.com/barrovivo/backend/internal/interfaces/http/dto"
	"github.com/barrovivo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler turns carts into orders
type CheckoutHandler struct {
	BaseHandler
	checkout *appcheckout.Service
	carts    *appcart.Service
	orders   *apporders.Service
}

// NewCheckoutHandler creates a CheckoutHandler
func NewCheckoutHandler(
	checkout *appcheckout.Service,
	carts *appcart.Service,
	orders *apporders.Service,
) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, carts: carts, orders: orders}
}

// Summary handles GET /pedido/checkout, the cart recap shown above the
// billing and shipping forms.
func (h *CheckoutHandler) Summary(c *gin.Context) {
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

// Submit handles POST /pedido/checkout
func (h *CheckoutHandler) Submit(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input appcheckout.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Malformed checkout payload")
		return
	}

	created, err := h.checkout.Checkout(c.Request.Context(), userID, input)
	if err != nil {
		h.handleCheckoutError(c, err)
		return
	}
	h.Created(c, toOrderResponse(created))
}

// handleCheckoutError maps the checkout failure modes onto the envelope
func (h *CheckoutHandler) handleCheckoutError(c *gin.Context, err error) {
	var validationErr *appcheckout.ValidationError
	if errors.As(err, &validationErr) {
		details := make([]dto.FieldDetail, 0, len(validationErr.Fields))
		for _, fieldErr := range validationErr.Fields {
			details = append(details, dto.FieldDetail{
				Field:   fieldErr.Field,
				Message: fieldErr.Message,
			})
		}
		h.ValidationError(c, details)
		return
	}

	var stockErr *appcheckout.InsufficientStockError
	if errors.As(err, &stockErr) {
		c.JSON(http.StatusUnprocessableEntity, dto.Response{
			Success: false,
			Error: &dto.ErrorInfo{
				Code:      dto.ErrCodeInsufficientStock,
				Message:   stockErr.Error(),
				RequestID: getRequestID(c),
				Details: []dto.FieldDetail{{
					Field:   stockErr.ProductID.String(),
					Message: stockErr.ProductName,
				}},
			},
		})
		return
	}

	h.HandleDomainError(c, err)
}

// ThankYou handles GET /pedido/gracias, resolving the order placed moments
// ago through the pending-order store.
func (h *CheckoutHandler) ThankYou(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := h.checkout.PendingOrder(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	placed, err := h.orders.GetOwned(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toOrderResponse(placed))
}
