package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultMaxPoolSize = 100
	defaultMinPoolSize = 10
)

// ConnectMongoDB opens a client for the given database and verifies the
// deployment is reachable before handing it out. Pool bounds come from
// config; zero values fall back to the defaults above.
func ConnectMongoDB(ctx context.Context, uri, database string, maxPool, minPool uint64) (*mongo.Database, error) {
	if maxPool == 0 {
		maxPool = defaultMaxPoolSize
	}
	if minPool == 0 {
		minPool = defaultMinPoolSize
	}

	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(maxPool).
		SetMinPoolSize(minPool)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	return client.Database(database), nil
}
