package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type indexer interface {
	CreateIndexes(ctx context.Context) error
}

// EnsureIndexes bootstraps the indexes every deployment needs: the unique
// cart identity with its expiry, and the unique category slug. Safe to run
// on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	repos := []indexer{
		&mongoCartRepository{collection: db.Collection("carts")},
		&mongoCategoryRepository{collection: db.Collection("categories")},
	}
	for _, r := range repos {
		if err := r.CreateIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}
	}
	return nil
}
