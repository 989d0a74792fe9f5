package catalog

import (
	"context"
	"testing"

	"github.com/barrovivo/backend/internal/domain/catalog"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProductRepo struct {
	products  map[uuid.UUID]*catalog.Product
	lastQuery catalog.ProductQuery
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*catalog.Product{}}
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeProductRepo) List(_ context.Context, query catalog.ProductQuery) ([]catalog.Product, error) {
	r.lastQuery = query
	var out []catalog.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) FindAvailableByCategories(_ context.Context, _ []uuid.UUID) ([]catalog.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) FindAvailableMatching(_ context.Context, _ []string) ([]catalog.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Save(_ context.Context, p *catalog.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

type fakeCategoryRepo struct {
	categories []catalog.Category
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, _ uuid.UUID) (*catalog.Category, error) {
	return nil, shared.ErrNotFound
}

func (r *fakeCategoryRepo) FindBySlug(_ context.Context, _ string) (*catalog.Category, error) {
	return nil, shared.ErrNotFound
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]catalog.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) FindMatching(_ context.Context, _ []string) ([]catalog.Category, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) Save(_ context.Context, _ *catalog.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }

type fakeFavoriteRepo struct {
	favorites map[uuid.UUID]*catalog.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: map[uuid.UUID]*catalog.Favorite{}}
}

func (r *fakeFavoriteRepo) Find(_ context.Context, userID, productID uuid.UUID) (*catalog.Favorite, error) {
	for _, f := range r.favorites {
		if f.UserID == userID && f.ProductID == productID {
			return f, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeFavoriteRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]catalog.Favorite, error) {
	var out []catalog.Favorite
	for _, f := range r.favorites {
		if f.UserID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) Save(_ context.Context, f *catalog.Favorite) error {
	r.favorites[f.ID] = f
	return nil
}

func (r *fakeFavoriteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.favorites, id)
	return nil
}

func mustProduct(t *testing.T, name string, price int64, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, "", decimal.NewFromInt(price), stock)
	require.NoError(t, err)
	return p
}

func TestProductList_SortMapping(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewProductService(products, &fakeCategoryRepo{}, zap.NewNop())
	ctx := context.Background()

	_, err := svc.List(ctx, ListQuery{Sort: "mas"})
	require.NoError(t, err)
	assert.Equal(t, catalog.ProductSortMostSold, products.lastQuery.Sort)
	assert.True(t, products.lastQuery.OnlyActive)
	assert.True(t, products.lastQuery.InStock)

	_, err = svc.List(ctx, ListQuery{Sort: "menos"})
	require.NoError(t, err)
	assert.Equal(t, catalog.ProductSortLeastSold, products.lastQuery.Sort)

	_, err = svc.List(ctx, ListQuery{Sort: "otro"})
	require.NoError(t, err)
	assert.Equal(t, catalog.ProductSortNewest, products.lastQuery.Sort)
}

func TestClampQuantity(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), &fakeCategoryRepo{}, zap.NewNop())
	p := mustProduct(t, "Matera", 30000, 4)

	assert.Equal(t, 1, svc.ClampQuantity(p, 0))
	assert.Equal(t, 1, svc.ClampQuantity(p, -3))
	assert.Equal(t, 3, svc.ClampQuantity(p, 3))
	assert.Equal(t, 4, svc.ClampQuantity(p, 10))

	p.Stock = 0
	assert.Equal(t, 0, svc.ClampQuantity(p, 2))
}

func TestFavoriteToggle(t *testing.T) {
	products := newFakeProductRepo()
	favorites := newFakeFavoriteRepo()
	svc := NewFavoriteService(favorites, products, zap.NewNop())
	ctx := context.Background()

	p := mustProduct(t, "Jarrón", 85000, 2)
	require.NoError(t, products.Save(ctx, p))
	userID := uuid.New()

	outcome, err := svc.Toggle(ctx, userID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, FavoriteAdded, outcome)

	outcome, err = svc.Toggle(ctx, userID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, FavoriteRemoved, outcome)

	listed, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestFavoriteToggle_UnknownProduct(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteRepo(), newFakeProductRepo(), zap.NewNop())

	_, err := svc.Toggle(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
