package shopping

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// ToggleAdHocItemInput represents the input for flipping an ad-hoc entry.
type ToggleAdHocItemInput struct {
	UserID string
	ItemID uuid.UUID
}

// ToggleAdHocItemUseCase flips the bought flag of one ad-hoc entry.
type ToggleAdHocItemUseCase struct {
	adhoc adapter.AdHocRegistry
}

// NewToggleAdHocItemUseCase creates a new ToggleAdHocItemUseCase instance.
func NewToggleAdHocItemUseCase(adhoc adapter.AdHocRegistry) *ToggleAdHocItemUseCase {
	return &ToggleAdHocItemUseCase{
		adhoc: adhoc,
	}
}

// Execute toggles the entry.
func (uc *ToggleAdHocItemUseCase) Execute(_ context.Context, input ToggleAdHocItemInput) error {
	if !uc.adhoc.Toggle(input.UserID, input.ItemID) {
		return domainerror.NewShoppingError(
			domainerror.ErrCodeAdHocItemNotFound,
			"ad-hoc item not found",
			domainerror.ErrAdHocItemNotFound,
		)
	}
	return nil
}
