package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
)

// setupTestRedis creates a miniredis server and returns a RedisMenuCache instance
func setupTestRedis(t *testing.T) (*RedisMenuCache, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewRedisMenuCache(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return cache, mr, cleanup
}

func sampleMenu() []domain.FoodItem {
	half := 8.99
	return []domain.FoodItem{
		{ID: "1", Name: "Classic Burger", Category: "burgers", Price: domain.Price{Half: &half, Full: 12.99}, IsAvailable: true},
		{ID: "2", Name: "Chicken Fried Rice", Category: "fried-rice", Price: domain.Price{Full: 14.99}, IsAvailable: true},
	}
}

func TestGet_Success(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	data, _ := json.Marshal(sampleMenu())
	mr.Set(menuKey, string(data))

	items, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Classic Burger", items[0].Name)
	require.NotNil(t, items[0].Price.Half)
	assert.Equal(t, 8.99, *items[0].Price.Half)
}

func TestGet_CacheMiss(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	items, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, items)
}

func TestGet_InvalidJSON(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	mr.Set(menuKey, "not-json")

	_, err := cache.Get(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestSet_StoresWithTTL(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, cache.Set(context.Background(), sampleMenu()))

	assert.True(t, mr.Exists(menuKey))
	ttl := mr.TTL(menuKey)
	assert.GreaterOrEqual(t, ttl, cache.baseTTL)
}

func TestInvalidate_RemovesKey(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, cache.Set(context.Background(), sampleMenu()))
	require.NoError(t, cache.Invalidate(context.Background()))

	assert.False(t, mr.Exists(menuKey))

	// Invalidating an empty cache is fine.
	require.NoError(t, cache.Invalidate(context.Background()))
}
