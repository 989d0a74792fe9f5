package cart

import (
	"context"
	"errors"

	"github.com/barrovivo/backend/internal/domain/catalog"
	"github.com/barrovivo/backend/internal/domain/order"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddOutcome reports what adding a product to the cart did
type AddOutcome string

const (
	AddedAll     AddOutcome = "added"
	AddedPartial AddOutcome = "added_partial"
	NoStock      AddOutcome = "no_stock"
)

// AddResult is the outcome of an add operation with the quantity actually added
type AddResult struct {
	Outcome  AddOutcome
	Added    int
	Quantity int // resulting line quantity
}

// UpdateOutcome reports what a quantity update did
type UpdateOutcome string

const (
	Updated UpdateOutcome = "updated"
	Clamped UpdateOutcome = "clamped"
	Removed UpdateOutcome = "removed"
)

// UpdateResult is the outcome of a set-quantity operation
type UpdateResult struct {
	Outcome  UpdateOutcome
	Quantity int // resulting line quantity, zero when removed
}

// Service manages the per-user cart. Cart operations read stock for
// clamping but never write it.
type Service struct {
	carts    order.CartRepository
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewService creates a new cart Service
func NewService(
	carts order.CartRepository,
	products catalog.ProductRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		carts:    carts,
		products: products,
		logger:   logger,
	}
}

// GetOrCreate returns the user's cart, creating an empty one on first access
func (s *Service) GetOrCreate(ctx context.Context, userID uuid.UUID) (*order.Cart, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	cart = order.NewCart(userID)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem adds requestedQty units of a product to the user's cart.
// The amount actually added is clamped to the remaining stock headroom:
// with stock s and current line quantity c, the line ends at min(c+qty, s).
func (s *Service) AddItem(ctx context.Context, userID, productID uuid.UUID, requestedQty int) (AddResult, error) {
	if requestedQty < 1 {
		requestedQty = 1
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return AddResult{}, err
	}

	cart, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return AddResult{}, err
	}

	line, err := s.carts.FindLineByProduct(ctx, cart.ID, productID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return AddResult{}, err
		}
		line = order.NewCartLine(cart.ID, productID)
	}

	headroom := product.Stock - line.Quantity
	if headroom < 0 {
		headroom = 0
	}
	added := requestedQty
	if added > headroom {
		added = headroom
	}

	if added == 0 {
		// Not an error, the caller surfaces it as a warning.
		return AddResult{Outcome: NoStock, Quantity: line.Quantity}, nil
	}

	line.Quantity += added
	line.Touch()
	if err := s.carts.SaveLine(ctx, line); err != nil {
		return AddResult{}, err
	}

	outcome := AddedAll
	if added < requestedQty {
		outcome = AddedPartial
	}
	return AddResult{Outcome: outcome, Added: added, Quantity: line.Quantity}, nil
}

// SetQuantity sets a line's quantity exactly. Zero or negative quantities
// and zero stock delete the line; quantities above stock clamp to stock.
func (s *Service) SetQuantity(ctx context.Context, userID, lineID uuid.UUID, qty int) (UpdateResult, error) {
	line, err := s.findOwnedLine(ctx, userID, lineID)
	if err != nil {
		return UpdateResult{}, err
	}

	product, err := s.products.FindByID(ctx, line.ProductID)
	if err != nil {
		return UpdateResult{}, err
	}

	if qty <= 0 || product.Stock == 0 {
		if err := s.carts.DeleteLine(ctx, line.ID); err != nil {
			return UpdateResult{}, err
		}
		return UpdateResult{Outcome: Removed}, nil
	}

	outcome := Updated
	if qty > product.Stock {
		qty = product.Stock
		outcome = Clamped
	}

	line.Quantity = qty
	line.Touch()
	if err := s.carts.SaveLine(ctx, line); err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Outcome: outcome, Quantity: qty}, nil
}

// RemoveItem deletes a line from the user's cart unconditionally
func (s *Service) RemoveItem(ctx context.Context, userID, lineID uuid.UUID) error {
	line, err := s.findOwnedLine(ctx, userID, lineID)
	if err != nil {
		return err
	}
	return s.carts.DeleteLine(ctx, line.ID)
}

// findOwnedLine loads a line and checks it belongs to the user's cart
func (s *Service) findOwnedLine(ctx context.Context, userID, lineID uuid.UUID) (*order.CartLine, error) {
	line, err := s.carts.FindLineByID(ctx, lineID)
	if err != nil {
		return nil, err
	}
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if line.CartID != cart.ID {
		return nil, shared.ErrNotFound
	}
	return line, nil
}
