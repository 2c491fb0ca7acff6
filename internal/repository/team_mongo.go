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

type mongoTeamRepository struct {
	collection *mongo.Collection
}

func NewMongoTeamRepository(db *mongo.Database) TeamRepository {
	return &mongoTeamRepository{collection: db.Collection("team_members")}
}

func (m *mongoTeamRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer cursor.Close(ctx)

	var members []domain.TeamMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode team members: %w", err)
	}
	return members, nil
}

func (m *mongoTeamRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	var member domain.TeamMember
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return &member, nil
}

func (m *mongoTeamRepository) Insert(ctx context.Context, member *domain.TeamMember) error {
	now := time.Now()
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	member.CreatedAt = now
	member.UpdatedAt = now

	if _, err := m.collection.InsertOne(ctx, member); err != nil {
		return fmt.Errorf("failed to insert team member: %w", err)
	}
	return nil
}

func (m *mongoTeamRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	member.UpdatedAt = time.Now()

	result, err := m.collection.ReplaceOne(ctx, bson.M{"_id": member.ID}, member)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}

func (m *mongoTeamRepository) Delete(ctx context.Context, id string) error {
	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}
