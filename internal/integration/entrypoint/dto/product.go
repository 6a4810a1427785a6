package dto

import (
	"github.com/pantry-bot/backend/internal/domain/entity"
)

// RenameProductRequest represents the request body for renaming a product.
type RenameProductRequest struct {
	Name string `json:"name" binding:"required,min=2,max=200"`
}

// ProductResponse represents a single product in API responses.
type ProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ProductListResponse represents the response for listing products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ProductDetailResponse represents a product with its recipe usage.
type ProductDetailResponse struct {
	ProductResponse
	RecipeCount int      `json:"recipe_count"`
	Recipes     []string `json:"recipes"`
}

// ToProductResponse converts a product with category to a ProductResponse DTO.
func ToProductResponse(product *entity.ProductWithCategory) ProductResponse {
	response := ProductResponse{
		ID:   product.Product.ID.String(),
		Name: product.Product.Name,
	}
	if product.Category != nil {
		response.Category = product.Category.Name
	}
	return response
}

// ToProductListResponse converts products to a ProductListResponse.
func ToProductListResponse(products []*entity.ProductWithCategory) ProductListResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p)
	}
	return ProductListResponse{
		Products: out,
	}
}

// ToProductDetailResponse converts a product and its usage to a detail DTO.
func ToProductDetailResponse(product *entity.ProductWithCategory, recipeCount int, recipes []*entity.Recipe) ProductDetailResponse {
	names := make([]string, len(recipes))
	for i, r := range recipes {
		names[i] = r.Name
	}
	return ProductDetailResponse{
		ProductResponse: ToProductResponse(product),
		RecipeCount:     recipeCount,
		Recipes:         names,
	}
}
