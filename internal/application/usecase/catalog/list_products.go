package catalog

import (
	"context"
	"fmt"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
)

// ListProductsOutput represents the output of listing products.
type ListProductsOutput struct {
	Products []*entity.ProductWithCategory
}

// ListProductsUseCase lists every catalog product with its category,
// ordered by category display order then product name.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute lists the products.
func (uc *ListProductsUseCase) Execute(ctx context.Context) (*ListProductsOutput, error) {
	products, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ListProductsOutput{
		Products: products,
	}, nil
}
