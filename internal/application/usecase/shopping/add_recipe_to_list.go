package shopping

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// AddRecipeToListInput represents the input for appending one recipe to
// an existing shopping list.
type AddRecipeToListInput struct {
	UserID   string
	RecipeID uuid.UUID
}

// AddRecipeToListOutput reports how the append landed.
type AddRecipeToListOutput struct {
	MergedLines int
	NewLines    int
}

// AddRecipeToListUseCase folds one recipe into the current shopping list
// without touching the selection. A line whose product already has a row
// adds its quantity onto that row; the match is by product name alone,
// so quantities in different units can end up summed on one row. New
// products get fresh unbought rows.
type AddRecipeToListUseCase struct {
	recipeRepo   adapter.RecipeRepository
	shoppingRepo adapter.ShoppingListRepository
}

// NewAddRecipeToListUseCase creates a new AddRecipeToListUseCase instance.
func NewAddRecipeToListUseCase(
	recipeRepo adapter.RecipeRepository,
	shoppingRepo adapter.ShoppingListRepository,
) *AddRecipeToListUseCase {
	return &AddRecipeToListUseCase{
		recipeRepo:   recipeRepo,
		shoppingRepo: shoppingRepo,
	}
}

// Execute appends the recipe's lines to the list.
func (uc *AddRecipeToListUseCase) Execute(ctx context.Context, input AddRecipeToListInput) (*AddRecipeToListOutput, error) {
	rec, err := uc.recipeRepo.FindByID(ctx, input.RecipeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecipeNotFound) {
			return nil, domainerror.NewRecipeError(
				domainerror.ErrCodeRecipeNotFound,
				"recipe not found",
				domainerror.ErrRecipeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}

	out := &AddRecipeToListOutput{}
	for _, line := range rec.Lines {
		existing, err := uc.shoppingRepo.FindByUserAndProductName(ctx, input.UserID, line.Product.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to look up shopping row: %w", err)
		}

		if existing != nil {
			existing.Quantity = existing.Quantity.Add(line.Line.Quantity)
			if err := uc.shoppingRepo.Update(ctx, existing); err != nil {
				return nil, fmt.Errorf("failed to update shopping row: %w", err)
			}
			out.MergedLines++
			continue
		}

		item := entity.NewShoppingItem(input.UserID, line.Product.ID, line.Line.Quantity, line.Line.Unit)
		if err := uc.shoppingRepo.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to create shopping row: %w", err)
		}
		out.NewLines++
	}

	return out, nil
}
