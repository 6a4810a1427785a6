package catalog

import (
	"context"
	"fmt"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	// WithCounts additionally resolves the number of products per category.
	WithCounts bool
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.CategoryWithCount
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute lists every category ordered by display order.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]*entity.CategoryWithCount, len(categories))
	for i, c := range categories {
		withCount := &entity.CategoryWithCount{Category: c}
		if input.WithCounts {
			count, err := uc.categoryRepo.CountProducts(ctx, c.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to count products in category: %w", err)
			}
			withCount.ProductCount = int(count)
		}
		result[i] = withCount
	}

	return &ListCategoriesOutput{
		Categories: result,
	}, nil
}
