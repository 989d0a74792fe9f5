package assistant

import (
	"context"
	"strings"
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
	products []catalog.Product
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeProductRepo) List(_ context.Context, _ catalog.ProductQuery) ([]catalog.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) FindAvailableByCategories(_ context.Context, categoryIDs []uuid.UUID) ([]catalog.Product, error) {
	ids := map[uuid.UUID]bool{}
	for _, id := range categoryIDs {
		ids[id] = true
	}
	var out []catalog.Product
	for _, p := range r.products {
		if !p.InStock() {
			continue
		}
		for _, c := range p.Categories {
			if ids[c.ID] {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindAvailableMatching(_ context.Context, terms []string) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range r.products {
		if !p.InStock() {
			continue
		}
		haystack := Normalize(p.Name + " " + p.Description)
		for _, term := range terms {
			if term != "" && strings.Contains(haystack, term) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Save(_ context.Context, p *catalog.Product) error {
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = *p
			return nil
		}
	}
	r.products = append(r.products, *p)
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeCategoryRepo struct {
	categories []catalog.Category
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Category, error) {
	for i := range r.categories {
		if r.categories[i].ID == id {
			return &r.categories[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*catalog.Category, error) {
	for i := range r.categories {
		if r.categories[i].Slug == slug {
			return &r.categories[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]catalog.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) FindMatching(_ context.Context, terms []string) ([]catalog.Category, error) {
	var out []catalog.Category
	for _, c := range r.categories {
		haystack := Normalize(c.Name + " " + c.Slug)
		for _, term := range terms {
			if term != "" && strings.Contains(haystack, term) {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Save(_ context.Context, _ *catalog.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }

func newProduct(t *testing.T, name, description string, price int64, stock int) catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, description, decimal.NewFromInt(price), stock)
	require.NoError(t, err)
	return *p
}

func TestSearch_NoCanonicalType(t *testing.T) {
	svc := NewSearchService(&fakeProductRepo{}, &fakeCategoryRepo{}, 0, zap.NewNop())

	hits, err := svc.Search(context.Background(), EmptyCriteria(), "quiero algo bonito")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearch_ByCategory(t *testing.T) {
	materas, err := catalog.NewCategory("Materas", "")
	require.NoError(t, err)

	matera := newProduct(t, "Matera de barro", "Para plantas de exterior", 30000, 4)
	matera.Categories = []catalog.Category{*materas}
	taza := newProduct(t, "Taza esmaltada", "", 15000, 2)

	products := &fakeProductRepo{products: []catalog.Product{matera, taza}}
	categories := &fakeCategoryRepo{categories: []catalog.Category{*materas}}
	svc := NewSearchService(products, categories, 0, zap.NewNop())

	hits, err := svc.Search(context.Background(), EmptyCriteria(), "necesito una matera para mi jardín")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Matera de barro", hits[0].Nombre)
	assert.Equal(t, float64(30000), hits[0].Precio)
}

func TestSearch_TextMatchWhenNoCategory(t *testing.T) {
	jarron := newProduct(t, "Jarrón alto", "Vasija decorativa", 85000, 1)
	products := &fakeProductRepo{products: []catalog.Product{jarron}}
	svc := NewSearchService(products, &fakeCategoryRepo{}, 0, zap.NewNop())

	hits, err := svc.Search(context.Background(), EmptyCriteria(), "busco un florero")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Jarrón alto", hits[0].Nombre)
}

func TestSearch_CriteriaTipoTakesPrecedence(t *testing.T) {
	matera := newProduct(t, "Matera colgante", "", 25000, 3)
	products := &fakeProductRepo{products: []catalog.Product{matera}}
	svc := NewSearchService(products, &fakeCategoryRepo{}, 0, zap.NewNop())

	tipo := "maceta"
	criteria := EmptyCriteria()
	criteria.Tipo = &tipo

	hits, err := svc.Search(context.Background(), criteria, "algo para el balcón")
	require.NoError(t, err)
	require.Len(t, hits, 1)
}

func TestSearch_SoftFilters(t *testing.T) {
	azul := newProduct(t, "Matera azul", "Esmalte azul cobalto", 40000, 2)
	roja := newProduct(t, "Matera roja", "Arcilla natural", 35000, 2)
	products := &fakeProductRepo{products: []catalog.Product{azul, roja}}
	svc := NewSearchService(products, &fakeCategoryRepo{}, 0, zap.NewNop())

	color := "azul"
	criteria := EmptyCriteria()
	criteria.Color = &color

	hits, err := svc.Search(context.Background(), criteria, "una matera")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Matera azul", hits[0].Nombre)
}

func TestSearch_SortsByPriceAndLimits(t *testing.T) {
	var all []catalog.Product
	for i, price := range []int64{90000, 10000, 50000} {
		p := newProduct(t, "Matera "+string(rune('A'+i)), "", price, 2)
		all = append(all, p)
	}
	products := &fakeProductRepo{products: all}
	svc := NewSearchService(products, &fakeCategoryRepo{}, 2, zap.NewNop())

	hits, err := svc.Search(context.Background(), EmptyCriteria(), "materas")
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, float64(10000), hits[0].Precio)
	assert.Equal(t, float64(50000), hits[1].Precio)
}
