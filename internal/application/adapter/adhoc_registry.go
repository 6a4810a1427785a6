package adapter

import (
	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// AdHocRegistry defines the interface for the per-user ad-hoc product
// list. The production implementation is process memory only: entries do
// not survive a restart and there is no persistence contract.
type AdHocRegistry interface {
	// List returns the user's ad-hoc entries in insertion order.
	List(userID string) []*entity.AdHocItem

	// Add appends an entry to the user's list.
	Add(userID string, item *entity.AdHocItem)

	// Toggle flips the bought flag of one entry. Returns false when the
	// entry does not exist for the user.
	Toggle(userID string, id uuid.UUID) bool

	// Remove deletes one entry. Returns false when the entry does not
	// exist for the user.
	Remove(userID string, id uuid.UUID) bool

	// Clear removes every entry for the user.
	Clear(userID string)
}
