package handler

import (
	"time"

	"github.com/barrovivo/backend/internal/domain/order"
)

// OrderLineResponse is one purchased line with its snapshotted price
type OrderLineResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"producto_id"`
	ProductName string `json:"producto"`
	Quantity    int    `json:"cantidad"`
	UnitPrice   string `json:"precio"`
	Subtotal    string `json:"subtotal"`
}

// OrderResponse is one completed order
type OrderResponse struct {
	ID           string              `json:"id"`
	CreatedAt    time.Time           `json:"fecha"`
	CustomerName string              `json:"cliente"`
	Department   string              `json:"departamento"`
	Municipality string              `json:"municipio"`
	Address      string              `json:"direccion"`
	Total        string              `json:"total"`
	Lines        []OrderLineResponse `json:"lineas"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for i := range o.Lines {
		line := &o.Lines[i]
		lines = append(lines, OrderLineResponse{
			ID:          line.ID.String(),
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.StringFixed(2),
			Subtotal:    line.Amount().StringFixed(2),
		})
	}
	return OrderResponse{
		ID:           o.ID.String(),
		CreatedAt:    o.CreatedAt,
		CustomerName: o.Customer.FullName(),
		Department:   o.Customer.Department,
		Municipality: o.Customer.Municipality,
		Address:      o.Customer.Address,
		Total:        o.Total.StringFixed(2),
		Lines:        lines,
	}
}

func toOrderResponses(orders []order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}
