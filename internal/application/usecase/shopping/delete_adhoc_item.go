package shopping

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// DeleteAdHocItemInput represents the input for removing an ad-hoc entry.
type DeleteAdHocItemInput struct {
	UserID string
	ItemID uuid.UUID
}

// DeleteAdHocItemUseCase removes one ad-hoc entry from the user's list.
type DeleteAdHocItemUseCase struct {
	adhoc adapter.AdHocRegistry
}

// NewDeleteAdHocItemUseCase creates a new DeleteAdHocItemUseCase instance.
func NewDeleteAdHocItemUseCase(adhoc adapter.AdHocRegistry) *DeleteAdHocItemUseCase {
	return &DeleteAdHocItemUseCase{
		adhoc: adhoc,
	}
}

// Execute deletes the entry.
func (uc *DeleteAdHocItemUseCase) Execute(_ context.Context, input DeleteAdHocItemInput) error {
	if !uc.adhoc.Remove(input.UserID, input.ItemID) {
		return domainerror.NewShoppingError(
			domainerror.ErrCodeAdHocItemNotFound,
			"ad-hoc item not found",
			domainerror.ErrAdHocItemNotFound,
		)
	}
	return nil
}
