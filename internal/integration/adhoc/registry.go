// Package adhoc keeps the per-user ad-hoc shopping entries in process
// memory.
package adhoc

import (
	"sync"

	"github.com/google/uuid"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
)

// registry implements adapter.AdHocRegistry with a mutex-guarded map of
// user ID to entries. Entries do not survive a restart.
type registry struct {
	mu    sync.Mutex
	items map[string][]*entity.AdHocItem
}

// NewRegistry creates a new in-memory ad-hoc registry.
func NewRegistry() adapter.AdHocRegistry {
	return &registry{
		items: make(map[string][]*entity.AdHocItem),
	}
}

// List returns copies of the user's entries in insertion order.
func (r *registry) List(userID string) []*entity.AdHocItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.items[userID]
	out := make([]*entity.AdHocItem, len(entries))
	for i, item := range entries {
		copied := *item
		out[i] = &copied
	}
	return out
}

// Add appends an entry to the user's list.
func (r *registry) Add(userID string, item *entity.AdHocItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *item
	r.items[userID] = append(r.items[userID], &copied)
}

// Toggle flips the bought flag of one entry.
func (r *registry) Toggle(userID string, id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items[userID] {
		if item.ID == id {
			item.IsBought = !item.IsBought
			return true
		}
	}
	return false
}

// Remove deletes one entry.
func (r *registry) Remove(userID string, id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.items[userID]
	for i, item := range entries {
		if item.ID == id {
			r.items[userID] = append(entries[:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every entry for the user.
func (r *registry) Clear(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, userID)
}
