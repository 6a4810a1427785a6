package catalog

import (
	"context"
	"fmt"

	"github.com/pantry-bot/backend/internal/application/adapter"
)

// GetStatsOutput carries catalog-wide counters for the saved-data screen.
type GetStatsOutput struct {
	CategoryCount int
	ProductCount  int
	RecipeCount   int
}

// GetStatsUseCase counts the stored categories, products and recipes.
type GetStatsUseCase struct {
	categoryRepo adapter.CategoryRepository
	productRepo  adapter.ProductRepository
	recipeRepo   adapter.RecipeRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(
	categoryRepo adapter.CategoryRepository,
	productRepo adapter.ProductRepository,
	recipeRepo adapter.RecipeRepository,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		recipeRepo:   recipeRepo,
	}
}

// Execute collects the counters.
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*GetStatsOutput, error) {
	categories, err := uc.categoryRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	products, err := uc.productRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	recipes, err := uc.recipeRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count recipes: %w", err)
	}

	return &GetStatsOutput{
		CategoryCount: int(categories),
		ProductCount:  int(products),
		RecipeCount:   int(recipes),
	}, nil
}
