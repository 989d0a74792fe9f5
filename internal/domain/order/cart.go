package order

import (
	"time"

	"github.com/barrovivo/backend/internal/domain/catalog"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the per-user mutable collection of pending purchase lines.
// Exactly one cart exists per user; it is created lazily on first access.
type Cart struct {
	shared.BaseEntity
	UserID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Lines  []CartLine `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates an empty cart for a user
func NewCart(userID uuid.UUID) *Cart {
	return &Cart{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
	}
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Total sums all line totals; zero for an empty cart
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Lines {
		total = total.Add(c.Lines[i].LineTotal())
	}
	return total
}

// CartLine holds one product/quantity pair inside a cart.
// The (cart, product) pair is unique.
type CartLine struct {
	shared.BaseEntity
	CartID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_line_product,priority:1"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_line_product,priority:2"`
	Product   catalog.Product `gorm:"foreignKey:ProductID"`
	Quantity  int             `gorm:"not null"`
	AddedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartLine) TableName() string {
	return "cart_lines"
}

// NewCartLine creates a line with quantity zero as the base before adding
func NewCartLine(cartID, productID uuid.UUID) *CartLine {
	return &CartLine{
		BaseEntity: shared.NewBaseEntity(),
		CartID:     cartID,
		ProductID:  productID,
		Quantity:   0,
		AddedAt:    time.Now(),
	}
}

// LineTotal is quantity times the product's current price
func (l *CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
