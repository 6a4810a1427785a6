package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// ShoppingListRepository defines the interface for the per-user persisted
// shopping list.
type ShoppingListRepository interface {
	// FindByUser retrieves the user's shopping rows with products and
	// categories resolved, ordered by category display order then
	// product name.
	FindByUser(ctx context.Context, userID string) ([]*entity.ShoppingItemWithProduct, error)

	// FindByUserAndProductName retrieves the first row whose product has
	// the given name, or nil when absent. The unit is deliberately not
	// part of the key; the append path merges on product name alone.
	FindByUserAndProductName(ctx context.Context, userID, productName string) (*entity.ShoppingItem, error)

	// Create inserts a single shopping row.
	Create(ctx context.Context, item *entity.ShoppingItem) error

	// Update saves a modified row (quantity, bought flag).
	Update(ctx context.Context, item *entity.ShoppingItem) error

	// FindByIDAndUser retrieves one row scoped to the user.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.ShoppingItem, error)

	// Delete removes one row.
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearByUser removes every row for the user.
	ClearByUser(ctx context.Context, userID string) error

	// CommitAggregation atomically replaces the user's shopping list with
	// the aggregated rows and clears the user's selection set. The
	// selection is destructively consumed: either everything commits or
	// nothing does.
	CommitAggregation(ctx context.Context, userID string, items []*entity.ShoppingItem) error
}
