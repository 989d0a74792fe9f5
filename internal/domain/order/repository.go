package order

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CartRepository provides access to carts and their lines.
// Reads return lines with their products preloaded.
type CartRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	FindLineByID(ctx context.Context, lineID uuid.UUID) (*CartLine, error)
	FindLineByProduct(ctx context.Context, cartID, productID uuid.UUID) (*CartLine, error)
	SaveLine(ctx context.Context, line *CartLine) error
	DeleteLine(ctx context.Context, lineID uuid.UUID) error
	DeleteLinesByCartID(ctx context.Context, cartID uuid.UUID) error
}

// OrderRepository provides access to completed orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Order, error)
	// FindAllInRange returns all orders created inside [from, to) with
	// their lines, oldest first. Zero times mean no bound.
	FindAllInRange(ctx context.Context, from, to time.Time) ([]Order, error)
	Save(ctx context.Context, order *Order) error
}
