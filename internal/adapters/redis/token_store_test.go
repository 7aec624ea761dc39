package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities-ui/internal/ports"
	"github.com/mergington/activities-ui/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *goredis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestTokenStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewTokenStore(client)
	ctx := context.Background()

	err := store.Save(ctx, "sid-1", "opaque-token-abc")
	require.NoError(t, err)

	token, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "opaque-token-abc", token)
}

func TestTokenStore_GetNonExistent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewTokenStore(client)
	ctx := context.Background()

	_, err := store.Get(ctx, "non-existent")
	assert.ErrorIs(t, err, ports.ErrTokenNotFound)
}

func TestTokenStore_GetEmptySID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewTokenStore(client)

	_, err := store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ports.ErrTokenNotFound)
}

func TestTokenStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewTokenStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-del", "token"))
	require.NoError(t, store.Delete(ctx, "sid-del"))

	_, err := store.Get(ctx, "sid-del")
	assert.ErrorIs(t, err, ports.ErrTokenNotFound)

	// Deleting again is a no-op, not an error.
	assert.NoError(t, store.Delete(ctx, "sid-del"))
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestTokenStore_SaveValidation(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewTokenStore(client)
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "", "token"))
	assert.Error(t, store.Save(ctx, "sid", ""))
}

func TestTokenStore_TTL(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewTokenStoreWithOptions(client, Options{TTL: time.Hour})
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-ttl", "token"))

	ttl, err := client.TTL(ctx, "authtoken:sid-ttl").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestTokenStore_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewTokenStoreWithOptions(client, Options{Prefix: "ui:token:"})
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-2", "token"))

	exists, err := client.Exists(ctx, "ui:token:sid-2").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}
