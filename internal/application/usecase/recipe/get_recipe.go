package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// GetRecipeInput represents the input for retrieving one recipe.
type GetRecipeInput struct {
	RecipeID uuid.UUID
}

// GetRecipeOutput represents the retrieved recipe with resolved lines.
type GetRecipeOutput struct {
	Recipe *entity.RecipeWithLines
}

// GetRecipeUseCase retrieves a recipe with its ingredient lines resolved
// down to products and categories.
type GetRecipeUseCase struct {
	recipeRepo adapter.RecipeRepository
}

// NewGetRecipeUseCase creates a new GetRecipeUseCase instance.
func NewGetRecipeUseCase(recipeRepo adapter.RecipeRepository) *GetRecipeUseCase {
	return &GetRecipeUseCase{
		recipeRepo: recipeRepo,
	}
}

// Execute retrieves the recipe.
func (uc *GetRecipeUseCase) Execute(ctx context.Context, input GetRecipeInput) (*GetRecipeOutput, error) {
	rec, err := uc.recipeRepo.FindByID(ctx, input.RecipeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecipeNotFound) {
			return nil, domainerror.NewRecipeError(
				domainerror.ErrCodeRecipeNotFound,
				"recipe not found",
				domainerror.ErrRecipeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}

	return &GetRecipeOutput{Recipe: rec}, nil
}
