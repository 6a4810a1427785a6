package entity

import (
	"github.com/google/uuid"
)

// SelectionEntry is one recipe queued for the user's next shopping list,
// with a repeat count. Count is always at least 1; an entry whose count
// would drop to zero is removed instead.
type SelectionEntry struct {
	ID       uuid.UUID
	UserID   string
	RecipeID uuid.UUID
	Count    int
}

// NewSelectionEntry creates a selection entry at count 1.
func NewSelectionEntry(userID string, recipeID uuid.UUID) *SelectionEntry {
	return &SelectionEntry{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
		Count:    1,
	}
}

// SelectionWithRecipe is a selection entry joined with its recipe.
type SelectionWithRecipe struct {
	Entry  *SelectionEntry
	Recipe *Recipe
}
