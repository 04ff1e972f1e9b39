// Package session provides the server-side session store: opaque session
// identifiers mapped to user IDs with a TTL. The client only ever holds
// the identifier (in a cookie); destroying the server-side entry
// invalidates the session immediately.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medlmo/gcpRSM/pkg/redis"
)

const keyPrefix = "session:"

// Store is the session persistence contract. Create mints a fresh opaque
// identifier; Get resolves it to a user ID; Destroy removes it.
// Destroying an unknown identifier is not an error (logout is idempotent).
type Store interface {
	Create(ctx context.Context, userID string) (string, error)
	Get(ctx context.Context, sessionID string) (userID string, found bool, err error)
	Destroy(ctx context.Context, sessionID string) error
}

// RedisStore keeps sessions in Redis under session:<id> keys.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+id, userID, s.ttl); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (string, bool, error) {
	return s.client.Get(ctx, keyPrefix+sessionID)
}

func (s *RedisStore) Destroy(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, keyPrefix+sessionID)
}
