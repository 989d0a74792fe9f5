package catalog

import (
	"strings"

	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a catalog item available for sale.
// Stock is mutated only through DecrementStock and IncrementStock.
type Product struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(120);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Stock       int             `gorm:"not null;default:0"`
	Active      bool            `gorm:"not null;default:true"`
	Image       string          `gorm:"type:varchar(255)"`
	Categories  []Category      `gorm:"many2many:product_categories"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product
func NewProduct(name, description string, price decimal.Decimal, stock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 120 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name must be 1-120 characters")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price must not be negative")
	}
	if stock < 0 {
		return nil, shared.ErrInvalidAmount
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		Active:      true,
	}, nil
}

// DecrementStock subtracts amount from the available stock.
// The stock count never goes negative.
func (p *Product) DecrementStock(amount int) error {
	if amount < 0 {
		return shared.ErrInvalidAmount
	}
	if p.Stock < amount {
		return shared.ErrInsufficientStock
	}
	p.Stock -= amount
	p.Touch()
	return nil
}

// IncrementStock adds amount to the available stock
func (p *Product) IncrementStock(amount int) error {
	if amount < 0 {
		return shared.ErrInvalidAmount
	}
	p.Stock += amount
	p.Touch()
	return nil
}

// InStock reports whether the product can be sold right now
func (p *Product) InStock() bool {
	return p.Active && p.Stock > 0
}

// Snippet returns the description truncated to max runes
func (p *Product) Snippet(max int) string {
	runes := []rune(p.Description)
	if len(runes) <= max {
		return p.Description
	}
	return string(runes[:max])
}
