package persistence

import (
	"context"
	"errors"

	"github.com/barrovivo/backend/internal/domain/order"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCartRepository implements order.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByUserID finds a user's cart with lines and their products preloaded
func (r *GormCartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*order.Cart, error) {
	var cart order.Cart
	err := r.db.WithContext(ctx).
		Preload("Lines.Product").
		First(&cart, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// Save creates or updates a cart
func (r *GormCartRepository) Save(ctx context.Context, cart *order.Cart) error {
	return r.db.WithContext(ctx).Omit("Lines").Save(cart).Error
}

// FindLineByID finds a cart line with its product preloaded
func (r *GormCartRepository) FindLineByID(ctx context.Context, lineID uuid.UUID) (*order.CartLine, error) {
	var line order.CartLine
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&line, "id = ?", lineID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// FindLineByProduct finds the cart's line for a product
func (r *GormCartRepository) FindLineByProduct(ctx context.Context, cartID, productID uuid.UUID) (*order.CartLine, error) {
	var line order.CartLine
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&line, "cart_id = ? AND product_id = ?", cartID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// SaveLine creates or updates a cart line
func (r *GormCartRepository) SaveLine(ctx context.Context, line *order.CartLine) error {
	return r.db.WithContext(ctx).Omit("Product").Save(line).Error
}

// DeleteLine deletes a cart line
func (r *GormCartRepository) DeleteLine(ctx context.Context, lineID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&order.CartLine{}, "id = ?", lineID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteLinesByCartID deletes all lines of a cart
func (r *GormCartRepository) DeleteLinesByCartID(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&order.CartLine{}, "cart_id = ?", cartID).Error
}

// Ensure GormCartRepository implements CartRepository
var _ order.CartRepository = (*GormCartRepository)(nil)
