package shopping

import (
	"context"
	"fmt"

	"github.com/pantry-bot/backend/internal/application/adapter"
)

// FinishShoppingInput represents the input for finishing a shopping trip.
type FinishShoppingInput struct {
	UserID string
}

// FinishShoppingUseCase ends a shopping trip: the persisted list and the
// in-memory ad-hoc entries are both dropped, bought or not.
type FinishShoppingUseCase struct {
	shoppingRepo adapter.ShoppingListRepository
	adhoc        adapter.AdHocRegistry
}

// NewFinishShoppingUseCase creates a new FinishShoppingUseCase instance.
func NewFinishShoppingUseCase(
	shoppingRepo adapter.ShoppingListRepository,
	adhoc adapter.AdHocRegistry,
) *FinishShoppingUseCase {
	return &FinishShoppingUseCase{
		shoppingRepo: shoppingRepo,
		adhoc:        adhoc,
	}
}

// Execute clears the list and the ad-hoc entries.
func (uc *FinishShoppingUseCase) Execute(ctx context.Context, input FinishShoppingInput) error {
	if err := uc.shoppingRepo.ClearByUser(ctx, input.UserID); err != nil {
		return fmt.Errorf("failed to clear shopping list: %w", err)
	}
	uc.adhoc.Clear(input.UserID)
	return nil
}
