package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// RenameProductInput represents the input for renaming a product.
type RenameProductInput struct {
	ProductID uuid.UUID
	NewName   string
}

// RenameProductOutput represents the output of renaming a product.
type RenameProductOutput struct {
	Success bool
}

// RenameProductUseCase renames a catalog product in place. Recipe lines
// and shopping rows reference the product by id and follow the rename.
type RenameProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewRenameProductUseCase creates a new RenameProductUseCase instance.
func NewRenameProductUseCase(productRepo adapter.ProductRepository) *RenameProductUseCase {
	return &RenameProductUseCase{
		productRepo: productRepo,
	}
}

// Execute renames the product.
func (uc *RenameProductUseCase) Execute(ctx context.Context, input RenameProductInput) (*RenameProductOutput, error) {
	name := strings.TrimSpace(input.NewName)

	if len([]rune(name)) < MinNameLength {
		return nil, domainerror.NewCatalogError(
			domainerror.ErrCodeProductNameTooShort,
			fmt.Sprintf("product name must be at least %d characters", MinNameLength),
			domainerror.ErrProductNameTooShort,
		)
	}

	existing, err := uc.productRepo.FindByID(ctx, input.ProductID)
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

	if existing.Product.Name != name {
		taken, err := uc.productRepo.ExistsByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check product name existence: %w", err)
		}
		if taken {
			return nil, domainerror.NewCatalogError(
				domainerror.ErrCodeProductNameExists,
				"a product with this name already exists",
				domainerror.ErrProductNameExists,
			)
		}
	}

	if err := uc.productRepo.UpdateName(ctx, input.ProductID, name); err != nil {
		return nil, fmt.Errorf("failed to rename product: %w", err)
	}

	return &RenameProductOutput{
		Success: true,
	}, nil
}
