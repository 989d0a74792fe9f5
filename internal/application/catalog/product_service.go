package catalog

import (
	"context"

	"github.com/barrovivo/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ListQuery holds the catalog listing filters accepted from the storefront
type ListQuery struct {
	CategorySlugs []string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	Sort          string // "mas" (most sold), "menos" (least sold), default newest
}

// ProductService exposes catalog read operations
type ProductService struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
	logger     *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	products catalog.ProductRepository,
	categories catalog.CategoryRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		logger:     logger,
	}
}

// List returns active products matching the storefront filters
func (s *ProductService) List(ctx context.Context, query ListQuery) ([]catalog.Product, error) {
	sort := catalog.ProductSortNewest
	switch query.Sort {
	case "mas":
		sort = catalog.ProductSortMostSold
	case "menos":
		sort = catalog.ProductSortLeastSold
	}

	return s.products.List(ctx, catalog.ProductQuery{
		CategorySlugs: query.CategorySlugs,
		MinPrice:      query.MinPrice,
		MaxPrice:      query.MaxPrice,
		Sort:          sort,
		OnlyActive:    true,
		InStock:       true,
	})
}

// Get returns a single product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return s.products.FindByID(ctx, id)
}

// ClampQuantity bounds a requested quantity to [1, stock] for display.
// A product with no stock clamps to zero.
func (s *ProductService) ClampQuantity(product *catalog.Product, requested int) int {
	if product.Stock <= 0 {
		return 0
	}
	if requested < 1 {
		return 1
	}
	if requested > product.Stock {
		return product.Stock
	}
	return requested
}

// Categories returns all categories for filter rendering
func (s *ProductService) Categories(ctx context.Context) ([]catalog.Category, error) {
	return s.categories.FindAll(ctx)
}
