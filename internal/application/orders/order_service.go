package orders

import (
	"context"

	"github.com/barrovivo/backend/internal/domain/order"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service exposes read access to completed orders. Orders are immutable
// once created; nothing here mutates them.
type Service struct {
	orders order.OrderRepository
	logger *zap.Logger
}

// NewService creates an order query Service
func NewService(orders order.OrderRepository, logger *zap.Logger) *Service {
	return &Service{orders: orders, logger: logger}
}

// GetOwned returns an order only if it belongs to the requesting user
func (s *Service) GetOwned(ctx context.Context, userID, orderID uuid.UUID) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, shared.ErrNotFound
	}
	return o, nil
}

// History returns the user's orders, newest first
func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]order.Order, error) {
	return s.orders.FindByUserID(ctx, userID)
}
