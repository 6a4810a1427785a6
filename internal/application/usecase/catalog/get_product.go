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

// GetProductInput represents the input for retrieving one product.
type GetProductInput struct {
	ProductID uuid.UUID
}

// GetProductOutput is a product together with its recipe usage.
type GetProductOutput struct {
	Product     *entity.ProductWithCategory
	RecipeCount int
	Recipes     []*entity.Recipe
}

// GetProductUseCase retrieves a product with the recipes that use it.
type GetProductUseCase struct {
	productRepo adapter.ProductRepository
	recipeRepo  adapter.RecipeRepository
}

// NewGetProductUseCase creates a new GetProductUseCase instance.
func NewGetProductUseCase(
	productRepo adapter.ProductRepository,
	recipeRepo adapter.RecipeRepository,
) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		recipeRepo:  recipeRepo,
	}
}

// Execute retrieves the product and its usage.
func (uc *GetProductUseCase) Execute(ctx context.Context, input GetProductInput) (*GetProductOutput, error) {
	product, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProductNotFound) {
			return nil, domainerror.NewCatalogError(
				domainerror.ErrCodeProductNotFound,
				"product not found",
				domainerror.ErrProductNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	count, err := uc.recipeRepo.CountUsingProduct(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to count recipes using product: %w", err)
	}

	recipes, err := uc.recipeRepo.FindUsingProduct(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to find recipes using product: %w", err)
	}

	return &GetProductOutput{
		Product:     product,
		RecipeCount: int(count),
		Recipes:     recipes,
	}, nil
}
