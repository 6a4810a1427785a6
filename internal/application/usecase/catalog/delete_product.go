package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// DeleteProductInput represents the input for product deletion.
type DeleteProductInput struct {
	ProductID uuid.UUID
}

// DeleteProductOutput reports the deletion and how many recipes lost the product.
type DeleteProductOutput struct {
	Success            bool
	RemovedFromRecipes int
}

// DeleteProductUseCase deletes a product, cascading to its recipe
// ingredient lines and shopping list rows.
type DeleteProductUseCase struct {
	productRepo adapter.ProductRepository
	recipeRepo  adapter.RecipeRepository
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(
	productRepo adapter.ProductRepository,
	recipeRepo adapter.RecipeRepository,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		recipeRepo:  recipeRepo,
	}
}

// Execute deletes the product.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) (*DeleteProductOutput, error) {
	_, err := uc.productRepo.FindByID(ctx, input.ProductID)
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

	usage, err := uc.recipeRepo.CountUsingProduct(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to count recipes using product: %w", err)
	}

	if err := uc.productRepo.Delete(ctx, input.ProductID); err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	return &DeleteProductOutput{
		Success:            true,
		RemovedFromRecipes: int(usage),
	}, nil
}
