package shopping

import (
	"context"
	"fmt"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
)

// GetListInput represents the input for reading the shopping list.
type GetListInput struct {
	UserID string
}

// GetListOutput is the persisted list plus the user's ad-hoc entries.
type GetListOutput struct {
	Items      []*entity.ShoppingItemWithProduct
	AdHocItems []*entity.AdHocItem
}

// GetListUseCase reads the user's shopping list, grouped rows first,
// ad-hoc entries appended after.
type GetListUseCase struct {
	shoppingRepo adapter.ShoppingListRepository
	adhoc        adapter.AdHocRegistry
}

// NewGetListUseCase creates a new GetListUseCase instance.
func NewGetListUseCase(
	shoppingRepo adapter.ShoppingListRepository,
	adhoc adapter.AdHocRegistry,
) *GetListUseCase {
	return &GetListUseCase{
		shoppingRepo: shoppingRepo,
		adhoc:        adhoc,
	}
}

// Execute reads the list.
func (uc *GetListUseCase) Execute(ctx context.Context, input GetListInput) (*GetListOutput, error) {
	items, err := uc.shoppingRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shopping list: %w", err)
	}

	return &GetListOutput{
		Items:      items,
		AdHocItems: uc.adhoc.List(input.UserID),
	}, nil
}
