package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create creates a new product in the database.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product with its category by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductWithCategory, error)

	// FindByName retrieves a product with its category by exact,
	// case-sensitive name, or nil when absent.
	FindByName(ctx context.Context, name string) (*entity.ProductWithCategory, error)

	// FindAll retrieves every product with its category, ordered by
	// category display order then product name.
	FindAll(ctx context.Context) ([]*entity.ProductWithCategory, error)

	// UpdateName renames a product in place.
	UpdateName(ctx context.Context, id uuid.UUID, name string) error

	// Delete removes a product together with its recipe ingredient lines
	// and shopping list rows, in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)

	// ExistsByName checks whether a product with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
