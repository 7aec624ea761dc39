package redis

// Package redis provides the Redis-backed token store for the activities
// frontend. It is the server-side stand-in for the browser's single
// localStorage key: one opaque token per browser session id.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mergington/activities-ui/internal/ports"
)

const defaultTokenTTL = 8 * time.Hour // matches the backend's access token lifetime

// TokenStore persists bearer tokens in Redis with a TTL. Tokens expire
// server-side anyway; the TTL just keeps dead keys from accumulating.
type TokenStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// Options configures a TokenStore beyond its defaults.
type Options struct {
	Prefix string
	TTL    time.Duration
}

// NewTokenStore creates a Redis-backed token store with default options.
func NewTokenStore(client redis.UniversalClient) *TokenStore {
	return NewTokenStoreWithOptions(client, Options{})
}

// NewTokenStoreWithOptions creates a token store with a custom key prefix and TTL.
func NewTokenStoreWithOptions(client redis.UniversalClient, opts Options) *TokenStore {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "authtoken:"
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Save persists the token for the given browser session id.
func (s *TokenStore) Save(ctx context.Context, sid, token string) error {
	if sid == "" {
		return errors.New("session id cannot be empty")
	}
	if token == "" {
		return errors.New("token cannot be empty")
	}

	if err := s.client.Set(ctx, s.prefix+sid, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Get returns the persisted token, or ports.ErrTokenNotFound when none exists.
func (s *TokenStore) Get(ctx context.Context, sid string) (string, error) {
	if sid == "" {
		return "", ports.ErrTokenNotFound
	}

	token, err := s.client.Get(ctx, s.prefix+sid).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrTokenNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}

	return token, nil
}

// Delete removes the persisted token. Deleting a missing token is not an error.
func (s *TokenStore) Delete(ctx context.Context, sid string) error {
	if sid == "" {
		return nil // Nothing to delete
	}

	if err := s.client.Del(ctx, s.prefix+sid).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

var _ ports.TokenStore = (*TokenStore)(nil)
