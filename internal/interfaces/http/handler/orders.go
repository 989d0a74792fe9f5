package handler

import (
	"fmt"
	"net/http"

	apporders "github.com/barrovivo/backend/internal/application/orders"
	"github.com/barrovivo/backend/internal/infrastructure/report"
	"github.com/barrovivo/backend/internal/interfaces/http/dto"
	"github.com/barrovivo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler serves order history and invoices
type OrderHandler struct {
	BaseHandler
	orders  *apporders.Service
	invoice *report.InvoicePDFRenderer
}

// NewOrderHandler creates an OrderHandler
func NewOrderHandler(orders *apporders.Service, invoice *report.InvoicePDFRenderer) *OrderHandler {
	return &OrderHandler{orders: orders, invoice: invoice}
}

// History handles GET /usuario/pedidos
func (h *OrderHandler) History(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.orders.History(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toOrderResponses(orders))
}

// Invoice handles GET /pedido/factura/:id. Only the order's owner may see
// it; formato=pdf downloads the invoice document.
func (h *OrderHandler) Invoice(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	owned, err := h.orders.GetOwned(c.Request.Context(), userID, uuid.MustParse(uri.ID))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if c.Query("formato") == "pdf" {
		data, err := h.invoice.Render(owned)
		if err != nil {
			h.InternalError(c, "Failed to render invoice")
			return
		}
		c.Header("Content-Disposition",
			fmt.Sprintf("attachment; filename=factura_%s.pdf", owned.ID.String()[:8]))
		c.Data(http.StatusOK, h.invoice.ContentType(), data)
		return
	}

	h.Success(c, toOrderResponse(owned))
}
