package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// SelectionRepository defines the interface for the per-user recipe
// selection set.
type SelectionRepository interface {
	// FindByUser retrieves the user's selection entries with recipes resolved.
	FindByUser(ctx context.Context, userID string) ([]*entity.SelectionWithRecipe, error)

	// FindByUserAndRecipe retrieves one entry, or nil when absent.
	FindByUserAndRecipe(ctx context.Context, userID string, recipeID uuid.UUID) (*entity.SelectionEntry, error)

	// Create inserts a new selection entry.
	Create(ctx context.Context, entry *entity.SelectionEntry) error

	// UpdateCount sets the repeat count of an existing entry.
	UpdateCount(ctx context.Context, id uuid.UUID, count int) error

	// Delete removes one selection entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearByUser removes every selection entry for the user.
	ClearByUser(ctx context.Context, userID string) error
}
