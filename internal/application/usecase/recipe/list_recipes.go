package recipe

import (
	"context"
	"fmt"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
)

// ListRecipesInput represents the input for listing recipes.
type ListRecipesInput struct {
	// UserID filters recipes by owner; empty lists every recipe.
	UserID string
}

// ListRecipesOutput represents the output of listing recipes.
type ListRecipesOutput struct {
	Recipes []*entity.Recipe
}

// ListRecipesUseCase lists recipes ordered by name.
type ListRecipesUseCase struct {
	recipeRepo adapter.RecipeRepository
}

// NewListRecipesUseCase creates a new ListRecipesUseCase instance.
func NewListRecipesUseCase(recipeRepo adapter.RecipeRepository) *ListRecipesUseCase {
	return &ListRecipesUseCase{
		recipeRepo: recipeRepo,
	}
}

// Execute lists the recipes.
func (uc *ListRecipesUseCase) Execute(ctx context.Context, input ListRecipesInput) (*ListRecipesOutput, error) {
	recipes, err := uc.recipeRepo.FindAll(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	return &ListRecipesOutput{Recipes: recipes}, nil
}
