package cache

import (
	"context"
	"errors"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
)

// MenuCache holds the full food catalog so menu reads skip MongoDB.
type MenuCache interface {
	Get(ctx context.Context) ([]domain.FoodItem, error)
	Set(ctx context.Context, items []domain.FoodItem) error
	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
