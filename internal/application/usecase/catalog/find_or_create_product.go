package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
)

// FindOrCreateProductInput represents the input for product resolution.
type FindOrCreateProductInput struct {
	Name         string
	CategoryName string
}

// FindOrCreateProductOutput represents the resolved product.
type FindOrCreateProductOutput struct {
	Product *entity.ProductWithCategory
	Created bool
}

// FindOrCreateProductUseCase resolves a product name to a catalog row,
// creating the product (and its category) when the name is unknown.
// Lookup is by exact, case-sensitive name; an existing product keeps its
// existing category and the requested category name is ignored.
//
// This is the single place where unknown names auto-vivify catalog rows:
// recipe saves and the shopping-list append path both go through here.
type FindOrCreateProductUseCase struct {
	categoryRepo adapter.CategoryRepository
	productRepo  adapter.ProductRepository
}

// NewFindOrCreateProductUseCase creates a new FindOrCreateProductUseCase instance.
func NewFindOrCreateProductUseCase(
	categoryRepo adapter.CategoryRepository,
	productRepo adapter.ProductRepository,
) *FindOrCreateProductUseCase {
	return &FindOrCreateProductUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Execute resolves or creates the product.
func (uc *FindOrCreateProductUseCase) Execute(ctx context.Context, input FindOrCreateProductInput) (*FindOrCreateProductOutput, error) {
	name := strings.TrimSpace(input.Name)

	existing, err := uc.productRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if existing != nil {
		return &FindOrCreateProductOutput{Product: existing}, nil
	}

	categoryName := strings.TrimSpace(input.CategoryName)
	category, err := uc.categoryRepo.FindByName(ctx, categoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	if category == nil {
		count, err := uc.categoryRepo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count categories: %w", err)
		}
		category = entity.NewCategory(categoryName, int(count)+1)
		if err := uc.categoryRepo.Create(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to create category: %w", err)
		}
	}

	product := entity.NewProduct(name, category.ID)
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &FindOrCreateProductOutput{
		Product: &entity.ProductWithCategory{Product: product, Category: category},
		Created: true,
	}, nil
}
