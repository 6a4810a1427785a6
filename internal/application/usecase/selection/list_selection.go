package selection

import (
	"context"
	"fmt"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
)

// ListSelectionInput represents the input for listing the selection.
type ListSelectionInput struct {
	UserID string
}

// ListSelectionOutput represents the user's queued recipes.
type ListSelectionOutput struct {
	Entries []*entity.SelectionWithRecipe
}

// ListSelectionUseCase lists the user's queued recipes with repeat counts.
type ListSelectionUseCase struct {
	selectionRepo adapter.SelectionRepository
}

// NewListSelectionUseCase creates a new ListSelectionUseCase instance.
func NewListSelectionUseCase(selectionRepo adapter.SelectionRepository) *ListSelectionUseCase {
	return &ListSelectionUseCase{
		selectionRepo: selectionRepo,
	}
}

// Execute lists the selection.
func (uc *ListSelectionUseCase) Execute(ctx context.Context, input ListSelectionInput) (*ListSelectionOutput, error) {
	entries, err := uc.selectionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list selection: %w", err)
	}

	return &ListSelectionOutput{Entries: entries}, nil
}
