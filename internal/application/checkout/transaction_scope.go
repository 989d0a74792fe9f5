package checkout

import (
	"context"

	"github.com/barrovivo/backend/internal/domain/catalog"
	"github.com/barrovivo/backend/internal/domain/order"
)

// TransactionScope provides transactional access to the repositories the
// checkout touches. All repository operations inside Execute share one
// database transaction and commit or roll back atomically.
type TransactionScope interface {
	// Execute runs fn within a database transaction. An error from fn
	// rolls the transaction back; nil commits it.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories scoped to the
// current transaction.
type TransactionalRepositories interface {
	ProductRepo() catalog.ProductRepository
	CartRepo() order.CartRepository
	OrderRepo() order.OrderRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful in tests where the backing store handles isolation itself.
type NoOpTransactionScope struct {
	productRepo catalog.ProductRepository
	cartRepo    order.CartRepository
	orderRepo   order.OrderRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	cartRepo order.CartRepository,
	orderRepo order.OrderRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo: productRepo,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
	}
}

// Execute runs the function directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// CartRepo returns the cart repository
func (s *NoOpTransactionScope) CartRepo() order.CartRepository {
	return s.cartRepo
}

// OrderRepo returns the order repository
func (s *NoOpTransactionScope) OrderRepo() order.OrderRepository {
	return s.orderRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
