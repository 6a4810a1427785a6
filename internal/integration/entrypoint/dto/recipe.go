package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pantry-bot/backend/internal/application/usecase/recipe"
	"github.com/pantry-bot/backend/internal/domain/entity"
)

// IngredientLineRequest represents one ingredient line in a recipe request.
type IngredientLineRequest struct {
	ProductName  string          `json:"product_name" binding:"required,min=2,max=200"`
	CategoryName string          `json:"category_name" binding:"required,min=2,max=100"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	Unit         string          `json:"unit" binding:"required,max=16"`
}

// CreateRecipeRequest represents the request body for recipe creation.
type CreateRecipeRequest struct {
	Name  string                  `json:"name" binding:"required,min=2,max=200"`
	Lines []IngredientLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateRecipeRequest represents the request body for replacing a recipe.
type UpdateRecipeRequest struct {
	Name  string                  `json:"name" binding:"required,min=2,max=200"`
	Lines []IngredientLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// RecipeResponse represents a single recipe in API responses.
type RecipeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RecipeListResponse represents the response for listing recipes.
type RecipeListResponse struct {
	Recipes []RecipeResponse `json:"recipes"`
}

// IngredientLineResponse represents one resolved ingredient line.
type IngredientLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Position    int             `json:"position"`
}

// RecipeDetailResponse represents a recipe with its resolved lines.
type RecipeDetailResponse struct {
	RecipeResponse
	Lines []IngredientLineResponse `json:"lines"`
}

// ToLineInputs converts request lines to use case line inputs.
func ToLineInputs(lines []IngredientLineRequest) []recipe.LineInput {
	out := make([]recipe.LineInput, len(lines))
	for i, line := range lines {
		out[i] = recipe.LineInput{
			ProductName:  line.ProductName,
			CategoryName: line.CategoryName,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
		}
	}
	return out
}

// ToRecipeResponse converts a domain Recipe entity to a RecipeResponse DTO.
func ToRecipeResponse(r *entity.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
	}
}

// ToRecipeListResponse converts recipes to a RecipeListResponse.
func ToRecipeListResponse(recipes []*entity.Recipe) RecipeListResponse {
	out := make([]RecipeResponse, len(recipes))
	for i, r := range recipes {
		out[i] = ToRecipeResponse(r)
	}
	return RecipeListResponse{
		Recipes: out,
	}
}

// ToRecipeDetailResponse converts a recipe with lines to a detail DTO.
func ToRecipeDetailResponse(r *entity.RecipeWithLines) RecipeDetailResponse {
	lines := make([]IngredientLineResponse, len(r.Lines))
	for i, line := range r.Lines {
		lr := IngredientLineResponse{
			Quantity: line.Line.Quantity,
			Unit:     line.Line.Unit,
			Position: line.Line.Position,
		}
		if line.Product != nil {
			lr.ProductID = line.Product.ID.String()
			lr.ProductName = line.Product.Name
		}
		if line.Category != nil {
			lr.Category = line.Category.Name
		}
		lines[i] = lr
	}
	return RecipeDetailResponse{
		RecipeResponse: ToRecipeResponse(r.Recipe),
		Lines:          lines,
	}
}
