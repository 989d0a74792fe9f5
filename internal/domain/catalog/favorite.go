package catalog

import (
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Favorite is a user bookmark for a product.
// The (user, product) pair is unique; toggling off deletes the row.
type Favorite struct {
	shared.BaseEntity
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_product,priority:1"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_product,priority:2"`
	Product   Product   `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (Favorite) TableName() string {
	return "favorites"
}

// NewFavorite creates a favorite for a user/product pair
func NewFavorite(userID, productID uuid.UUID) *Favorite {
	return &Favorite{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
	}
}
