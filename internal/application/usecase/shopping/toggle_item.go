package shopping

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// ToggleItemInput represents the input for flipping a row's bought flag.
type ToggleItemInput struct {
	UserID string
	ItemID uuid.UUID
}

// ToggleItemOutput reports the flag after the flip.
type ToggleItemOutput struct {
	IsBought bool
}

// ToggleItemUseCase flips the bought flag of one shopping row. The row
// stays on the list either way.
type ToggleItemUseCase struct {
	shoppingRepo adapter.ShoppingListRepository
}

// NewToggleItemUseCase creates a new ToggleItemUseCase instance.
func NewToggleItemUseCase(shoppingRepo adapter.ShoppingListRepository) *ToggleItemUseCase {
	return &ToggleItemUseCase{
		shoppingRepo: shoppingRepo,
	}
}

// Execute toggles the row.
func (uc *ToggleItemUseCase) Execute(ctx context.Context, input ToggleItemInput) (*ToggleItemOutput, error) {
	item, err := uc.shoppingRepo.FindByIDAndUser(ctx, input.ItemID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find shopping row: %w", err)
	}
	if item == nil {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeShoppingItemNotFound,
			"shopping item not found",
			domainerror.ErrShoppingItemNotFound,
		)
	}

	item.IsBought = !item.IsBought
	if err := uc.shoppingRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update shopping row: %w", err)
	}

	return &ToggleItemOutput{IsBought: item.IsBought}, nil
}
