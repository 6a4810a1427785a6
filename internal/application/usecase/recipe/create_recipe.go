package recipe

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/application/usecase/catalog"
	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// MinNameLength is the minimum trimmed length of a recipe name.
const MinNameLength = 2

// LineInput is one ingredient line as collected from the user: a product
// name plus quantity, unit and category. Product names are resolved to
// catalog rows on save.
type LineInput struct {
	ProductName  string
	CategoryName string
	Quantity     decimal.Decimal
	Unit         string
}

// CreateRecipeInput represents the input for recipe creation.
type CreateRecipeInput struct {
	Name   string
	UserID string
	Lines  []LineInput
}

// CreateRecipeOutput represents the output of recipe creation.
type CreateRecipeOutput struct {
	Recipe *entity.Recipe
}

// CreateRecipeUseCase persists a recipe with its ingredient lines.
// Product names are resolved through the catalog: unknown names create
// catalog rows, known names reuse them.
type CreateRecipeUseCase struct {
	recipeRepo    adapter.RecipeRepository
	productFinder *catalog.FindOrCreateProductUseCase
}

// NewCreateRecipeUseCase creates a new CreateRecipeUseCase instance.
func NewCreateRecipeUseCase(
	recipeRepo adapter.RecipeRepository,
	productFinder *catalog.FindOrCreateProductUseCase,
) *CreateRecipeUseCase {
	return &CreateRecipeUseCase{
		recipeRepo:    recipeRepo,
		productFinder: productFinder,
	}
}

// Execute creates the recipe.
func (uc *CreateRecipeUseCase) Execute(ctx context.Context, input CreateRecipeInput) (*CreateRecipeOutput, error) {
	name := strings.TrimSpace(input.Name)

	if len([]rune(name)) < MinNameLength {
		return nil, domainerror.NewRecipeError(
			domainerror.ErrCodeRecipeNameTooShort,
			fmt.Sprintf("recipe name must be at least %d characters", MinNameLength),
			domainerror.ErrRecipeNameTooShort,
		)
	}

	if len(input.Lines) == 0 {
		return nil, domainerror.NewRecipeError(
			domainerror.ErrCodeRecipeNoIngredients,
			"a recipe needs at least one ingredient",
			domainerror.ErrRecipeNoIngredients,
		)
	}

	lines, err := uc.resolveLines(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	rec := entity.NewRecipe(name, input.UserID)
	for _, line := range lines {
		line.RecipeID = rec.ID
	}

	if err := uc.recipeRepo.Create(ctx, rec, lines); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return &CreateRecipeOutput{Recipe: rec}, nil
}

func (uc *CreateRecipeUseCase) resolveLines(ctx context.Context, inputs []LineInput) ([]*entity.IngredientLine, error) {
	return resolveLines(ctx, uc.productFinder, inputs)
}

// resolveLines turns draft lines into ingredient lines with catalog
// product ids, validating each quantity on the way.
func resolveLines(ctx context.Context, finder *catalog.FindOrCreateProductUseCase, inputs []LineInput) ([]*entity.IngredientLine, error) {
	lines := make([]*entity.IngredientLine, 0, len(inputs))
	for i, in := range inputs {
		if !in.Quantity.IsPositive() {
			return nil, domainerror.NewRecipeError(
				domainerror.ErrCodeInvalidQuantity,
				fmt.Sprintf("quantity for %q must be a positive number", in.ProductName),
				domainerror.ErrInvalidQuantity,
			)
		}

		resolved, err := finder.Execute(ctx, catalog.FindOrCreateProductInput{
			Name:         in.ProductName,
			CategoryName: in.CategoryName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %q: %w", in.ProductName, err)
		}

		lines = append(lines, entity.NewIngredientLine(resolved.Product.Product.ID, in.Quantity, in.Unit, i+1))
	}
	return lines, nil
}
