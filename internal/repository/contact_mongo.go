package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
)

type mongoContactRepository struct {
	collection *mongo.Collection
}

func NewMongoContactRepository(db *mongo.Database) ContactRepository {
	return &mongoContactRepository{collection: db.Collection("contact_messages")}
}

func (m *mongoContactRepository) Insert(ctx context.Context, msg *domain.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	msg.CreatedAt = time.Now()

	if _, err := m.collection.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

func (m *mongoContactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []domain.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}
	return messages, nil
}
