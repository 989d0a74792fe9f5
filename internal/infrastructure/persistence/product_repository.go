package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/barrovivo/backend/internal/domain/catalog"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID with categories preloaded
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDForUpdate reads a product under a row lock. Concurrent stock
// mutations on the same product serialize on this read.
func (r *GormProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// List finds products matching the storefront filters
func (r *GormProductRepository) List(ctx context.Context, query catalog.ProductQuery) ([]catalog.Product, error) {
	q := r.db.WithContext(ctx).Model(&catalog.Product{}).Preload("Categories")

	if query.OnlyActive {
		q = q.Where("products.active = ?", true)
	}
	if query.InStock {
		q = q.Where("products.stock > 0")
	}
	if len(query.CategorySlugs) > 0 {
		q = q.Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Joins("JOIN categories ON categories.id = pc.category_id").
			Where("categories.slug IN ?", query.CategorySlugs).
			Distinct("products.*")
	}
	if query.MinPrice != nil {
		q = q.Where("products.price >= ?", query.MinPrice)
	}
	if query.MaxPrice != nil {
		q = q.Where("products.price <= ?", query.MaxPrice)
	}

	switch query.Sort {
	case catalog.ProductSortMostSold:
		q = r.joinSales(q).Order("COALESCE(sales.units, 0) DESC, products.created_at DESC")
	case catalog.ProductSortLeastSold:
		q = r.joinSales(q).Order("COALESCE(sales.units, 0) ASC, products.created_at DESC")
	default:
		q = q.Order("products.created_at DESC")
	}

	var products []catalog.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// joinSales joins the per-product units-sold aggregate
func (r *GormProductRepository) joinSales(q *gorm.DB) *gorm.DB {
	sub := r.db.Table("order_lines").
		Select("product_id, SUM(quantity) AS units").
		Group("product_id")
	return q.Joins("LEFT JOIN (?) AS sales ON sales.product_id = products.id", sub)
}

// FindAvailableByCategories returns active in-stock products in any of
// the given categories
func (r *GormProductRepository) FindAvailableByCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]catalog.Product, error) {
	var products []catalog.Product
	err := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Joins("JOIN product_categories pc ON pc.product_id = products.id").
		Where("pc.category_id IN ?", categoryIDs).
		Where("products.active = ? AND products.stock > 0", true).
		Distinct("products.*").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// FindAvailableMatching returns active in-stock products whose name or
// description contains any of the terms, case-insensitively
func (r *GormProductRepository) FindAvailableMatching(ctx context.Context, terms []string) ([]catalog.Product, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	q := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("active = ? AND stock > 0", true)

	var conditions []string
	var args []interface{}
	for _, term := range terms {
		pattern := "%" + strings.ToLower(term) + "%"
		conditions = append(conditions, "(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)")
		args = append(args, pattern, pattern)
	}
	q = q.Where(strings.Join(conditions, " OR "), args...)

	var products []catalog.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Omit("Categories").Save(product).Error
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
