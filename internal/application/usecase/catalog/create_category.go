// Package catalog contains category and product use cases.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

const (
	// MinNameLength is the minimum accepted length for category and product names.
	MinNameLength = 2
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 100
	// MaxProductNameLength is the maximum allowed length for product names.
	MaxProductNameLength = 200
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation. The display order is assigned
// as the current category count plus one.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)

	if len([]rune(name)) < MinNameLength {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeCategoryNameTooShort,
			fmt.Sprintf("category name must be at least %d characters", MinNameLength),
			domainerror.ErrCategoryNameTooShort,
		)
	}

	exists, err := uc.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	count, err := uc.categoryRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	category := entity.NewCategory(name, int(count)+1)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
