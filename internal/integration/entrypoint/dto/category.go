package dto

import (
	"github.com/pantry-bot/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// ReorderCategoryRequest represents the request body for changing a
// category's display order.
type ReorderCategoryRequest struct {
	DisplayOrder int `json:"display_order" binding:"required,min=1"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
	ProductCount int    `json:"product_count"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		DisplayOrder: category.DisplayOrder,
	}
}

// ToCategoryListResponse converts counted categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.CategoryWithCount) CategoryListResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response := ToCategoryResponse(c.Category)
		response.ProductCount = c.ProductCount
		out[i] = response
	}
	return CategoryListResponse{
		Categories: out,
	}
}
