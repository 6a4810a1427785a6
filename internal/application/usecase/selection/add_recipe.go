package selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// AddRecipeInput represents the input for queueing a recipe.
type AddRecipeInput struct {
	UserID   string
	RecipeID uuid.UUID
}

// AddRecipeOutput reports the repeat count after the add.
type AddRecipeOutput struct {
	Count int
}

// AddRecipeUseCase queues a recipe for the user's next shopping list.
// Adding an already-queued recipe bumps its repeat count.
type AddRecipeUseCase struct {
	selectionRepo adapter.SelectionRepository
	recipeRepo    adapter.RecipeRepository
}

// NewAddRecipeUseCase creates a new AddRecipeUseCase instance.
func NewAddRecipeUseCase(
	selectionRepo adapter.SelectionRepository,
	recipeRepo adapter.RecipeRepository,
) *AddRecipeUseCase {
	return &AddRecipeUseCase{
		selectionRepo: selectionRepo,
		recipeRepo:    recipeRepo,
	}
}

// Execute queues the recipe.
func (uc *AddRecipeUseCase) Execute(ctx context.Context, input AddRecipeInput) (*AddRecipeOutput, error) {
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

	existing, err := uc.selectionRepo.FindByUserAndRecipe(ctx, input.UserID, input.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up selection entry: %w", err)
	}

	if existing != nil {
		newCount := existing.Count + 1
		if err := uc.selectionRepo.UpdateCount(ctx, existing.ID, newCount); err != nil {
			return nil, fmt.Errorf("failed to bump selection count: %w", err)
		}
		return &AddRecipeOutput{Count: newCount}, nil
	}

	entry := entity.NewSelectionEntry(input.UserID, input.RecipeID)
	if err := uc.selectionRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create selection entry: %w", err)
	}

	return &AddRecipeOutput{Count: entry.Count}, nil
}
