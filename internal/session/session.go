// Package session stores login sessions in Redis, keyed by an opaque token.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// DefaultTTL is applied when no TTL is configured.
const DefaultTTL = 24 * time.Hour

// ErrNotFound means the token does not resolve to a live session.
var ErrNotFound = errors.New("session not found")

// Store manages sessions in Redis. The value under each token is the
// owning user's email.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a session store with the given TTL.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// Create stores a new session for email and returns its token.
func (s *Store) Create(ctx context.Context, email string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+token, email, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Resolve returns the email behind the token, refreshing the TTL on use.
func (s *Store) Resolve(ctx context.Context, token string) (string, error) {
	email, err := s.rdb.GetEx(ctx, keyPrefix+token, s.ttl).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}
	return email, nil
}

// Delete removes the session behind the token. Deleting an unknown token
// is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
