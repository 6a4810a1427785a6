package adapter

import (
	"context"

	"github.com/pantry-bot/backend/internal/domain/entity"
)

// SessionStore defines the interface for per-user conversation state.
// The store is volatile scratch space keyed by user id, not durable
// storage: implementations may drop sessions at any time (TTL, restart)
// and the conversation layer must treat a missing session as idle.
type SessionStore interface {
	// Load retrieves the user's session. A user without a stored session
	// gets a fresh idle session, not an error.
	Load(ctx context.Context, userID string) (*entity.Session, error)

	// Save persists the user's session.
	Save(ctx context.Context, userID string, session *entity.Session) error

	// Clear discards the user's session.
	Clear(ctx context.Context, userID string) error
}
