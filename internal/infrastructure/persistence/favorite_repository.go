package persistence

import (
	"context"
	"errors"

	"github.com/barrovivo/backend/internal/domain/catalog"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFavoriteRepository implements catalog.FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GormFavoriteRepository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Find finds a favorite by its (user, product) pair
func (r *GormFavoriteRepository) Find(ctx context.Context, userID, productID uuid.UUID) (*catalog.Favorite, error) {
	var favorite catalog.Favorite
	err := r.db.WithContext(ctx).
		First(&favorite, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

// FindByUserID returns a user's favorites with products preloaded,
// newest first
func (r *GormFavoriteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]catalog.Favorite, error) {
	var favorites []catalog.Favorite
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// Save creates a favorite
func (r *GormFavoriteRepository) Save(ctx context.Context, favorite *catalog.Favorite) error {
	return r.db.WithContext(ctx).Save(favorite).Error
}

// Delete deletes a favorite
func (r *GormFavoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Favorite{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormFavoriteRepository implements FavoriteRepository
var _ catalog.FavoriteRepository = (*GormFavoriteRepository)(nil)
