package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopnexus/storefront/internal/core/domain"
)

const defaultSessionTTL = time.Hour

// SessionStore persists upstream session tokens keyed by visitor session ID.
// Key format: session:<session_id>. Every Save resets the TTL so a token
// lives for sessionTTL past its last successful use; upstream token expiry
// is still detected by the profile fetch and handled by the caller.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// A ttl <= 0 falls back to one hour, matching the identity service's own
// token lifetime.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Token returns the persisted token for the session, or domain.ErrNoSession
// when none is stored.
func (s *SessionStore) Token(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("session token read: %w", err)
	}
	return token, nil
}

// Save persists the token and resets its TTL.
func (s *SessionStore) Save(ctx context.Context, sessionID, token string) error {
	if err := s.client.Set(ctx, s.key(sessionID), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("session token write: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing an absent session is a no-op.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("session token delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sessionID string) string {
	return "session:" + sessionID
}
