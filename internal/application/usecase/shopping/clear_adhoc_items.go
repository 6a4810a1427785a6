package shopping

import (
	"context"

	"github.com/pantry-bot/backend/internal/application/adapter"
)

// ClearAdHocItemsInput contains the input data for clearing the ad-hoc list.
type ClearAdHocItemsInput struct {
	UserID string
}

// ClearAdHocItemsUseCase discards every ad-hoc entry of the user without
// touching the persisted shopping rows.
type ClearAdHocItemsUseCase struct {
	adhoc adapter.AdHocRegistry
}

// NewClearAdHocItemsUseCase creates a new ClearAdHocItemsUseCase instance.
func NewClearAdHocItemsUseCase(adhoc adapter.AdHocRegistry) *ClearAdHocItemsUseCase {
	return &ClearAdHocItemsUseCase{
		adhoc: adhoc,
	}
}

// Execute clears the user's ad-hoc list.
func (uc *ClearAdHocItemsUseCase) Execute(_ context.Context, input ClearAdHocItemsInput) error {
	uc.adhoc.Clear(input.UserID)
	return nil
}
