// Package session stores per-user conversation state in Redis.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pantry-bot/backend/internal/application/adapter"
	"github.com/pantry-bot/backend/internal/domain/entity"
)

// redisStore implements adapter.SessionStore on a Redis key per user.
// Sessions expire after the configured TTL; an expired or missing key
// reads back as a fresh idle session.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a new Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) adapter.SessionStore {
	return &redisStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(userID string) string {
	return "session:" + userID
}

// Load retrieves the user's session, or a fresh idle one.
func (s *redisStore) Load(ctx context.Context, userID string) (*entity.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.NewSession(), nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// A corrupt session is unrecoverable scratch state; start over.
		return entity.NewSession(), nil
	}
	return &session, nil
}

// Save persists the user's session with the store TTL.
func (s *redisStore) Save(ctx context.Context, userID string, session *entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear discards the user's session.
func (s *redisStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
