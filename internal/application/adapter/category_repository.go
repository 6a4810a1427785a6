// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves a category by exact name, or nil when absent.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindAll retrieves every category ordered by display order.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Update updates an existing category (rename, reorder).
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of categories.
	Count(ctx context.Context) (int64, error)

	// CountProducts returns the number of products assigned to the category.
	CountProducts(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// ExistsByName checks whether a category with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
