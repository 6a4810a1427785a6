package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// DeleteRecipeInput represents the input for recipe deletion.
type DeleteRecipeInput struct {
	RecipeID uuid.UUID
}

// DeleteRecipeOutput represents the output of recipe deletion.
type DeleteRecipeOutput struct {
	Success bool
}

// DeleteRecipeUseCase deletes a recipe. Its ingredient lines and any
// selection entries go with it; catalog products stay.
type DeleteRecipeUseCase struct {
	recipeRepo adapter.RecipeRepository
}

// NewDeleteRecipeUseCase creates a new DeleteRecipeUseCase instance.
func NewDeleteRecipeUseCase(recipeRepo adapter.RecipeRepository) *DeleteRecipeUseCase {
	return &DeleteRecipeUseCase{
		recipeRepo: recipeRepo,
	}
}

// Execute deletes the recipe.
func (uc *DeleteRecipeUseCase) Execute(ctx context.Context, input DeleteRecipeInput) (*DeleteRecipeOutput, error) {
	if _, err := uc.recipeRepo.FindByID(ctx, input.RecipeID); err != nil {
		if errors.Is(err, domainerror.ErrRecipeNotFound) {
			return nil, domainerror.NewRecipeError(
				domainerror.ErrCodeRecipeNotFound,
				"recipe not found",
				domainerror.ErrRecipeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}

	if err := uc.recipeRepo.Delete(ctx, input.RecipeID); err != nil {
		return nil, fmt.Errorf("failed to delete recipe: %w", err)
	}

	return &DeleteRecipeOutput{Success: true}, nil
}
