package order

import (
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer holds the denormalized billing and shipping details captured
// at checkout time.
type Customer struct {
	FirstName    string `gorm:"type:varchar(120);not null"`
	LastName     string `gorm:"type:varchar(120);not null"`
	NationalID   string `gorm:"type:varchar(30);not null"`
	Email        string `gorm:"type:varchar(254);not null"`
	Phone        string `gorm:"type:varchar(30);not null"`
	Department   string `gorm:"type:varchar(120);not null"`
	Municipality string `gorm:"type:varchar(120);not null"`
	Address      string `gorm:"type:varchar(255);not null"`
	AddressExtra string `gorm:"type:varchar(255)"`
}

// FullName joins first and last name
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Order is the immutable record of a completed checkout.
// Total is computed once from its lines and never recomputed.
type Order struct {
	shared.BaseEntity
	UserID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Customer Customer        `gorm:"embedded"`
	Total    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Lines    []OrderLine     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates an order and its lines from the processed cart lines,
// snapshotting each product's name and unit price.
func NewOrder(userID uuid.UUID, customer Customer, lines []CartLine) *Order {
	o := &Order{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Customer:   customer,
		Total:      decimal.Zero,
	}
	for i := range lines {
		line := OrderLine{
			BaseEntity:  shared.NewBaseEntity(),
			OrderID:     o.ID,
			ProductID:   lines[i].ProductID,
			ProductName: lines[i].Product.Name,
			Quantity:    lines[i].Quantity,
			UnitPrice:   lines[i].Product.Price,
		}
		o.Lines = append(o.Lines, line)
		o.Total = o.Total.Add(line.Amount())
	}
	return o
}

// OrderLine is one purchased product inside an order. UnitPrice is the
// product price at checkout time, not a live reference.
type OrderLine struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(120);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (OrderLine) TableName() string {
	return "order_lines"
}

// Amount is quantity times the snapshotted unit price
func (l *OrderLine) Amount() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
