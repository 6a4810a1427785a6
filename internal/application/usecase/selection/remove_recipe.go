package selection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// RemoveRecipeInput represents the input for dequeueing a recipe.
type RemoveRecipeInput struct {
	UserID   string
	RecipeID uuid.UUID
}

// RemoveRecipeOutput reports the repeat count after the removal; zero
// means the entry is gone.
type RemoveRecipeOutput struct {
	Count int
}

// RemoveRecipeUseCase steps a queued recipe down by one repeat. At count
// one the entry is removed outright; counts never reach zero.
type RemoveRecipeUseCase struct {
	selectionRepo adapter.SelectionRepository
}

// NewRemoveRecipeUseCase creates a new RemoveRecipeUseCase instance.
func NewRemoveRecipeUseCase(selectionRepo adapter.SelectionRepository) *RemoveRecipeUseCase {
	return &RemoveRecipeUseCase{
		selectionRepo: selectionRepo,
	}
}

// Execute dequeues one repeat of the recipe.
func (uc *RemoveRecipeUseCase) Execute(ctx context.Context, input RemoveRecipeInput) (*RemoveRecipeOutput, error) {
	existing, err := uc.selectionRepo.FindByUserAndRecipe(ctx, input.UserID, input.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up selection entry: %w", err)
	}
	if existing == nil {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeSelectionNotFound,
			"recipe is not in the selection",
			domainerror.ErrSelectionNotFound,
		)
	}

	if existing.Count <= 1 {
		if err := uc.selectionRepo.Delete(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to delete selection entry: %w", err)
		}
		return &RemoveRecipeOutput{Count: 0}, nil
	}

	newCount := existing.Count - 1
	if err := uc.selectionRepo.UpdateCount(ctx, existing.ID, newCount); err != nil {
		return nil, fmt.Errorf("failed to lower selection count: %w", err)
	}

	return &RemoveRecipeOutput{Count: newCount}, nil
}
