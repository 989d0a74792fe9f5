package assistant

import (
	"context"
	"sort"
	"strings"

	"github.com/barrovivo/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultResultLimit caps how many products a search returns
const DefaultResultLimit = 8

// snippetLength bounds the description excerpt in a search hit
const snippetLength = 180

// Criteria is the structured intent extracted from free text. Only tipo,
// color, and palabras_clave drive the search; the rest is echoed back to
// the answer composer.
type Criteria struct {
	Uso           any      `json:"uso"`
	Persona       any      `json:"persona"`
	Tipo          *string  `json:"tipo"`
	Color         *string  `json:"color"`
	Estilo        any      `json:"estilo"`
	RangoPrecio   any      `json:"rango_precio"`
	PalabrasClave []string `json:"palabras_clave"`
}

// EmptyCriteria is the degraded all-null criteria object
func EmptyCriteria() Criteria {
	return Criteria{PalabrasClave: []string{}}
}

// ProductHit is one serialized search result
type ProductHit struct {
	ID     uuid.UUID `json:"id"`
	Nombre string    `json:"nombre"`
	Precio float64   `json:"precio"`
	Nota   string    `json:"nota"`
	Imagen string    `json:"imagen,omitempty"`
}

// SearchService resolves free text to a canonical product type and
// queries the catalog. It never mutates state.
type SearchService struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
	limit      int
	logger     *zap.Logger
}

// NewSearchService creates a SearchService. A non-positive limit falls
// back to DefaultResultLimit.
func NewSearchService(
	products catalog.ProductRepository,
	categories catalog.CategoryRepository,
	limit int,
	logger *zap.Logger,
) *SearchService {
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	return &SearchService{
		products:   products,
		categories: categories,
		limit:      limit,
		logger:     logger,
	}
}

// Search finds products for the extracted criteria and raw user text.
// The criteria's tipo hint takes precedence over the free text; when
// neither names a known product type the result is empty.
func (s *SearchService) Search(ctx context.Context, criteria Criteria, userText string) ([]ProductHit, error) {
	canon := ""
	if criteria.Tipo != nil {
		canon = ResolveCanon(*criteria.Tipo)
	}
	if canon == "" {
		canon = ResolveCanon(userText)
	}
	if canon == "" {
		return []ProductHit{}, nil
	}

	terms := SynonymsFor(canon)

	var products []catalog.Product
	cats, err := s.categories.FindMatching(ctx, terms)
	if err != nil {
		return nil, err
	}
	if len(cats) > 0 {
		products, err = s.products.FindAvailableByCategories(ctx, []uuid.UUID{cats[0].ID})
	} else {
		products, err = s.products.FindAvailableMatching(ctx, terms)
	}
	if err != nil {
		return nil, err
	}

	products = applySoftFilters(products, criteria)

	sort.Slice(products, func(i, j int) bool {
		if !products[i].Price.Equal(products[j].Price) {
			return products[i].Price.LessThan(products[j].Price)
		}
		return products[i].Name < products[j].Name
	})
	if len(products) > s.limit {
		products = products[:s.limit]
	}

	hits := make([]ProductHit, 0, len(products))
	for i := range products {
		p := &products[i]
		price, _ := p.Price.Float64()
		hits = append(hits, ProductHit{
			ID:     p.ID,
			Nombre: p.Name,
			Precio: price,
			Nota:   p.Snippet(snippetLength),
			Imagen: p.Image,
		})
	}
	return hits, nil
}

// applySoftFilters keeps products whose name or description contains the
// color or any keyword, OR-combined. No filter terms means no filtering.
func applySoftFilters(products []catalog.Product, criteria Criteria) []catalog.Product {
	var terms []string
	if criteria.Color != nil {
		if c := Normalize(*criteria.Color); c != "" {
			terms = append(terms, c)
		}
	}
	for _, kw := range criteria.PalabrasClave {
		if n := Normalize(kw); n != "" {
			terms = append(terms, n)
		}
	}
	if len(terms) == 0 {
		return products
	}

	out := products[:0:0]
	for i := range products {
		haystack := strings.ToLower(products[i].Name + " " + products[i].Description)
		for _, t := range terms {
			if strings.Contains(haystack, t) {
				out = append(out, products[i])
				break
			}
		}
	}
	return out
}
