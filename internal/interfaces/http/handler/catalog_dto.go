package handler

import (
	"github.com/barrovivo/backend/internal/domain/catalog"
)

// CategoryResponse is one category for the filter bar
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"nombre"`
	Slug string `json:"slug"`
}

// ProductResponse is one catalog product
type ProductResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"nombre"`
	Description string             `json:"descripcion"`
	Price       string             `json:"precio"`
	Stock       int                `json:"stock"`
	Image       string             `json:"imagen,omitempty"`
	Categories  []CategoryResponse `json:"categorias,omitempty"`
}

// CatalogResponse is the storefront listing with its filter categories
type CatalogResponse struct {
	Products   []ProductResponse  `json:"productos"`
	Categories []CategoryResponse `json:"categorias"`
}

// ProductDetailResponse is the product page payload; Quantity is the
// requested purchase quantity clamped to stock.
type ProductDetailResponse struct {
	Product  ProductResponse `json:"producto"`
	Quantity int             `json:"cantidad"`
}

// ToggleFavoriteResponse reports what the toggle did
type ToggleFavoriteResponse struct {
	Outcome string `json:"resultado"`
}

func toCategoryResponse(category *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
		Slug: category.Slug,
	}
}

func toCategoryResponses(categories []catalog.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	return out
}

func toProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.StringFixed(2),
		Stock:       product.Stock,
		Image:       product.Image,
		Categories:  toCategoryResponses(product.Categories),
	}
}

func toProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}
