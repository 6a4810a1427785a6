package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// ReorderCategoryInput represents the input for changing a category's display order.
type ReorderCategoryInput struct {
	CategoryID uuid.UUID
	NewOrder   int
}

// ReorderCategoryOutput represents the output of reordering a category.
type ReorderCategoryOutput struct {
	Category *entity.Category
}

// ReorderCategoryUseCase handles category display-order changes.
// The order is used for display only; duplicates are tolerated.
type ReorderCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewReorderCategoryUseCase creates a new ReorderCategoryUseCase instance.
func NewReorderCategoryUseCase(categoryRepo adapter.CategoryRepository) *ReorderCategoryUseCase {
	return &ReorderCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute updates the category's display order.
func (uc *ReorderCategoryUseCase) Execute(ctx context.Context, input ReorderCategoryInput) (*ReorderCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCatalogError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	category.DisplayOrder = input.NewOrder
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category order: %w", err)
	}

	return &ReorderCategoryOutput{
		Category: category,
	}, nil
}
