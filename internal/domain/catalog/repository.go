package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSort selects the catalog listing order
type ProductSort string

const (
	ProductSortNewest    ProductSort = "newest"
	ProductSortMostSold  ProductSort = "most_sold"
	ProductSortLeastSold ProductSort = "least_sold"
)

// ProductQuery holds catalog listing filters
type ProductQuery struct {
	CategorySlugs []string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	Sort          ProductSort
	OnlyActive    bool
	InStock       bool
}

// ProductRepository provides access to products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindByIDForUpdate reads a product under a row lock so concurrent
	// stock mutations serialize on it.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, query ProductQuery) ([]Product, error)
	// FindAvailableByCategories returns active, in-stock products belonging
	// to any of the given categories.
	FindAvailableByCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]Product, error)
	// FindAvailableMatching returns active, in-stock products whose name or
	// description contains any of the given terms (case-insensitive).
	FindAvailableMatching(ctx context.Context, terms []string) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository provides access to categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	// FindMatching returns categories whose slug or name contains any of
	// the given terms (case-insensitive).
	FindMatching(ctx context.Context, terms []string) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FavoriteRepository provides access to user favorites
type FavoriteRepository interface {
	Find(ctx context.Context, userID, productID uuid.UUID) (*Favorite, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Favorite, error)
	Save(ctx context.Context, favorite *Favorite) error
	Delete(ctx context.Context, id uuid.UUID) error
}
