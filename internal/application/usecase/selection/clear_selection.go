package selection

import (
	"context"
	"fmt"

	"github.com/pantry-bot/backend/internal/application/adapter"
)

// ClearSelectionInput represents the input for clearing the selection.
type ClearSelectionInput struct {
	UserID string
}

// ClearSelectionUseCase empties the user's recipe selection.
type ClearSelectionUseCase struct {
	selectionRepo adapter.SelectionRepository
}

// NewClearSelectionUseCase creates a new ClearSelectionUseCase instance.
func NewClearSelectionUseCase(selectionRepo adapter.SelectionRepository) *ClearSelectionUseCase {
	return &ClearSelectionUseCase{
		selectionRepo: selectionRepo,
	}
}

// Execute clears the selection.
func (uc *ClearSelectionUseCase) Execute(ctx context.Context, input ClearSelectionInput) error {
	if err := uc.selectionRepo.ClearByUser(ctx, input.UserID); err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}
	return nil
}
