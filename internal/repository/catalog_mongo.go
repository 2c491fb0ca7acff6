package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/domain"
)

type mongoFoodRepository struct {
	collection *mongo.Collection
}

func NewMongoFoodRepository(db *mongo.Database) FoodRepository {
	return &mongoFoodRepository{collection: db.Collection("foods")}
}

func (m *mongoFoodRepository) List(ctx context.Context) ([]domain.FoodItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	defer cursor.Close(ctx)

	var items []domain.FoodItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode foods: %w", err)
	}
	return items, nil
}

func (m *mongoFoodRepository) GetByID(ctx context.Context, id string) (*domain.FoodItem, error) {
	var item domain.FoodItem
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFoodNotFound
		}
		return nil, fmt.Errorf("failed to get food item: %w", err)
	}
	return &item, nil
}

func (m *mongoFoodRepository) Insert(ctx context.Context, item *domain.FoodItem) error {
	now := time.Now()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := m.collection.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to insert food item: %w", err)
	}
	return nil
}

func (m *mongoFoodRepository) Update(ctx context.Context, item *domain.FoodItem) error {
	item.UpdatedAt = time.Now()

	result, err := m.collection.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return fmt.Errorf("failed to update food item: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrFoodNotFound
	}
	return nil
}

func (m *mongoFoodRepository) Delete(ctx context.Context, id string) error {
	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete food item: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrFoodNotFound
	}
	return nil
}

type mongoCategoryRepository struct {
	collection *mongo.Collection
}

func NewMongoCategoryRepository(db *mongo.Database) CategoryRepository {
	return &mongoCategoryRepository{collection: db.Collection("categories")}
}

func (m *mongoCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []domain.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

func (m *mongoCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var category domain.Category
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

func (m *mongoCategoryRepository) Insert(ctx context.Context, category *domain.Category) error {
	now := time.Now()
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	category.CreatedAt = now
	category.UpdatedAt = now

	if _, err := m.collection.InsertOne(ctx, category); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (m *mongoCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	category.UpdatedAt = time.Now()

	result, err := m.collection.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (m *mongoCategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (m *mongoCategoryRepository) CreateIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.collection.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
