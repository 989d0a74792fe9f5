package persistence

import (
	"context"

	appcheckout "github.com/barrovivo/backend/internal/application/checkout"
	"github.com/barrovivo/backend/internal/domain/catalog"
	"github.com/barrovivo/backend/internal/domain/order"
	"gorm.io/gorm"
)

// GormTransactionScope implements the checkout TransactionScope using
// GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// An error from fn rolls the transaction back; nil commits it.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appcheckout.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories exposes repositories bound to one transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// CartRepo returns the cart repository scoped to the current transaction
func (r *gormTransactionalRepositories) CartRepo() order.CartRepository {
	return NewGormCartRepository(r.tx)
}

// OrderRepo returns the order repository scoped to the current transaction
func (r *gormTransactionalRepositories) OrderRepo() order.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// Ensure the implementations satisfy the checkout interfaces
var _ appcheckout.TransactionScope = (*GormTransactionScope)(nil)
var _ appcheckout.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
