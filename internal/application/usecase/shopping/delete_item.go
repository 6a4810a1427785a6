package shopping

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// DeleteItemInput represents the input for removing one shopping row.
type DeleteItemInput struct {
	UserID string
	ItemID uuid.UUID
}

// DeleteItemOutput represents the output of removing a shopping row.
type DeleteItemOutput struct {
	Success bool
}

// DeleteItemUseCase removes one row from the user's shopping list.
type DeleteItemUseCase struct {
	shoppingRepo adapter.ShoppingListRepository
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(shoppingRepo adapter.ShoppingListRepository) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		shoppingRepo: shoppingRepo,
	}
}

// Execute deletes the row.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, input DeleteItemInput) (*DeleteItemOutput, error) {
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

	if err := uc.shoppingRepo.Delete(ctx, item.ID); err != nil {
		return nil, fmt.Errorf("failed to delete shopping row: %w", err)
	}

	return &DeleteItemOutput{Success: true}, nil
}
