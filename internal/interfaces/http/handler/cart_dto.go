package handler

import (
	"github.com/barrovivo/backend/internal/domain/order"
)

// QuantityRequest carries a cart quantity from the storefront
type QuantityRequest struct {
	Quantity int `json:"cantidad"`
}

// CartLineResponse is one line of the cart view
type CartLineResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"producto_id"`
	Name      string `json:"nombre"`
	UnitPrice string `json:"precio"`
	Quantity  int    `json:"cantidad"`
	Subtotal  string `json:"subtotal"`
	Image     string `json:"imagen,omitempty"`
}

// CartResponse is the cart view with its running total
type CartResponse struct {
	ID    string             `json:"id"`
	Lines []CartLineResponse `json:"lineas"`
	Total string             `json:"total"`
}

// AddToCartResponse reports the outcome of an add operation
type AddToCartResponse struct {
	Outcome  string `json:"resultado"`
	Added    int    `json:"agregado"`
	Quantity int    `json:"cantidad"`
}

// UpdateCartResponse reports the outcome of a quantity update
type UpdateCartResponse struct {
	Outcome  string `json:"resultado"`
	Quantity int    `json:"cantidad"`
}

func toCartResponse(cart *order.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(cart.Lines))
	for i := range cart.Lines {
		line := &cart.Lines[i]
		lines = append(lines, CartLineResponse{
			ID:        line.ID.String(),
			ProductID: line.ProductID.String(),
			Name:      line.Product.Name,
			UnitPrice: line.Product.Price.StringFixed(2),
			Quantity:  line.Quantity,
			Subtotal:  line.LineTotal().StringFixed(2),
			Image:     line.Product.Image,
		})
	}
	return CartResponse{
		ID:    cart.ID.String(),
		Lines: lines,
		Total: cart.Total().StringFixed(2),
	}
}
