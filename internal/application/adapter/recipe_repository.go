package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// RecipeRepository defines the interface for recipe persistence operations.
type RecipeRepository interface {
	// Create creates a recipe together with its ingredient lines.
	Create(ctx context.Context, recipe *entity.Recipe, lines []*entity.IngredientLine) error

	// FindByID retrieves a recipe with its lines, products and categories resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecipeWithLines, error)

	// FindAll retrieves recipes ordered by name. An empty userID returns
	// every recipe.
	FindAll(ctx context.Context, userID string) ([]*entity.Recipe, error)

	// Replace renames a recipe and replaces its ingredient lines
	// wholesale (delete-all, re-insert) in one transaction.
	Replace(ctx context.Context, recipe *entity.Recipe, lines []*entity.IngredientLine) error

	// Delete removes a recipe, its ingredient lines and any selection
	// entries referencing it, in one transaction. Products are untouched.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of recipes.
	Count(ctx context.Context) (int64, error)

	// CountUsingProduct returns how many ingredient lines reference the product.
	CountUsingProduct(ctx context.Context, productID uuid.UUID) (int64, error)

	// FindUsingProduct retrieves the distinct recipes referencing the product.
	FindUsingProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Recipe, error)
}
