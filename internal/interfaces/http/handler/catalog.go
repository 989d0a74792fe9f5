package handler

import (
	"strconv"

	appcatalog "github.com/barrovivo/backend/internal/application/catalog"
	"github.com/barrovivo/backend/internal/interfaces/http/dto"
	"github.com/barrovivo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogHandler serves the product listing, detail, and favorites
type CatalogHandler struct {
	BaseHandler
	products  *appcatalog.ProductService
	favorites *appcatalog.FavoriteService
}

// NewCatalogHandler creates a CatalogHandler
func NewCatalogHandler(products *appcatalog.ProductService, favorites *appcatalog.FavoriteService) *CatalogHandler {
	return &CatalogHandler{products: products, favorites: favorites}
}

// List handles GET /. Filters: cat (repeatable), min, max, orden.
func (h *CatalogHandler) List(c *gin.Context) {
	query := appcatalog.ListQuery{
		CategorySlugs: c.QueryArray("cat"),
		Sort:          c.Query("orden"),
	}

	if raw := c.Query("min"); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			h.BadRequest(c, "Invalid minimum price")
			return
		}
		query.MinPrice = &value
	}
	if raw := c.Query("max"); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			h.BadRequest(c, "Invalid maximum price")
			return
		}
		query.MaxPrice = &value
	}

	products, err := h.products.List(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	categories, err := h.products.Categories(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, CatalogResponse{
		Products:   toProductResponses(products),
		Categories: toCategoryResponses(categories),
	})
}

// Detail handles GET /producto/:id. An optional q parameter is clamped
// to the available stock.
func (h *CatalogHandler) Detail(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	productID := uuid.MustParse(req.ID)

	product, err := h.products.Get(c.Request.Context(), productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	requested := 1
	if raw := c.Query("q"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			requested = n
		}
	}

	h.Success(c, ProductDetailResponse{
		Product:  toProductResponse(product),
		Quantity: h.products.ClampQuantity(product, requested),
	})
}

// ToggleFavorite handles POST /producto/toggle-favorito/:id
func (h *CatalogHandler) ToggleFavorite(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	outcome, err := h.favorites.Toggle(c.Request.Context(), userID, uuid.MustParse(req.ID))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, ToggleFavoriteResponse{Outcome: string(outcome)})
}

// Favorites handles GET /producto/favoritos
func (h *CatalogHandler) Favorites(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	products, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, toProductResponses(products))
}
