package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/application/usecase/catalog"
	"github.com/pantry-bot/backend/internal/domain/entity"
	domainerror "github.com/pantry-bot/backend/internal/domain/error"
)

// UpdateRecipeInput represents the input for recipe editing. The new
// lines replace the stored ones wholesale.
type UpdateRecipeInput struct {
	RecipeID uuid.UUID
	Name     string
	Lines    []LineInput
}

// UpdateRecipeOutput represents the output of recipe editing.
type UpdateRecipeOutput struct {
	Recipe *entity.Recipe
}

// UpdateRecipeUseCase renames a recipe and replaces its ingredient lines.
type UpdateRecipeUseCase struct {
	recipeRepo    adapter.RecipeRepository
	productFinder *catalog.FindOrCreateProductUseCase
}

// NewUpdateRecipeUseCase creates a new UpdateRecipeUseCase instance.
func NewUpdateRecipeUseCase(
	recipeRepo adapter.RecipeRepository,
	productFinder *catalog.FindOrCreateProductUseCase,
) *UpdateRecipeUseCase {
	return &UpdateRecipeUseCase{
		recipeRepo:    recipeRepo,
		productFinder: productFinder,
	}
}

// Execute updates the recipe.
func (uc *UpdateRecipeUseCase) Execute(ctx context.Context, input UpdateRecipeInput) (*UpdateRecipeOutput, error) {
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

	existing, err := uc.recipeRepo.FindByID(ctx, input.RecipeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecipeNotFound) {
			return nil, domainerror.NewRecipeError(
				domainerror.ErrCodeRecipeNotFound,
				"recipe not found",
				domainerror.ErrRecipeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}

	lines, err := resolveLines(ctx, uc.productFinder, input.Lines)
	if err != nil {
		return nil, err
	}

	rec := existing.Recipe
	rec.Name = name
	for _, line := range lines {
		line.RecipeID = rec.ID
	}

	if err := uc.recipeRepo.Replace(ctx, rec, lines); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	return &UpdateRecipeOutput{Recipe: rec}, nil
}
