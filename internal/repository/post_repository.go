package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/saikrishna1605/foliofinds/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrPostNotFound = errors.New("post not found")

type mongoPostRepository struct {
	collection *mongo.Collection
}

func NewMongoPostRepository(db *mongo.Database) PostRepository {
	return &mongoPostRepository{
		collection: db.Collection("posts"),
	}
}

func (m *mongoPostRepository) Create(ctx context.Context, post *domain.Post) (string, error) {
	result, err := m.collection.InsertOne(ctx, post)
	if err != nil {
		return "", fmt.Errorf("failed to create post: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (m *mongoPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPostNotFound
	}

	var post domain.Post
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (m *mongoPostRepository) ListRecent(ctx context.Context, limit int64) ([]domain.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	return decodePosts(ctx, cursor)
}

func (m *mongoPostRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := m.collection.Find(ctx, bson.M{"author.id": authorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list author posts: %w", err)
	}
	defer cursor.Close(ctx)

	return decodePosts(ctx, cursor)
}

func (m *mongoPostRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrPostNotFound
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (m *mongoPostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrPostNotFound
	}

	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrPostNotFound
	}

	return nil
}

func decodePosts(ctx context.Context, cursor *mongo.Cursor) ([]domain.Post, error) {
	posts := []domain.Post{}
	for cursor.Next(ctx) {
		var post domain.Post
		if err := cursor.Decode(&post); err != nil {
			return nil, fmt.Errorf("failed to decode post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return posts, nil
}
