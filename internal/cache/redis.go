package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
)

const menuKey = "menu:catalog"

func NewRedisMenuCache(client *redis.Client) *RedisMenuCache {
	return &RedisMenuCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisMenuCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r RedisMenuCache) Get(ctx context.Context) ([]domain.FoodItem, error) {
	data, err := r.client.Get(ctx, menuKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []domain.FoodItem
	if err2 := json.Unmarshal(data, &items); err2 != nil {
		return nil, fmt.Errorf("unmarshal menu failed: %w", err2)
	}

	return items, nil
}

func (r RedisMenuCache) Set(ctx context.Context, items []domain.FoodItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal menu failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	ttl := r.baseTTL + jitter
	if err := r.client.Set(ctx, menuKey, string(data), ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r RedisMenuCache) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, menuKey).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
