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

var ErrBookNotFound = errors.New("book not found")

type mongoBookRepository struct {
	collection *mongo.Collection
}

func NewMongoBookRepository(db *mongo.Database) BookRepository {
	return &mongoBookRepository{
		collection: db.Collection("books"),
	}
}

func (m *mongoBookRepository) Create(ctx context.Context, book *domain.Book) (string, error) {
	result, err := m.collection.InsertOne(ctx, book)
	if err != nil {
		return "", fmt.Errorf("failed to create listing: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (m *mongoBookRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id reads the same as a missing listing.
		return nil, ErrBookNotFound
	}

	var book domain.Book
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return &book, nil
}

func (m *mongoBookRepository) ListRecent(ctx context.Context, limit int64) ([]domain.Book, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeBooks(ctx, cursor)
}

func (m *mongoBookRepository) ListBySeller(ctx context.Context, sellerID string) ([]domain.Book, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := m.collection.Find(ctx, bson.M{"seller.id": sellerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller books: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeBooks(ctx, cursor)
}

// Search runs a case-insensitive substring match over title, author and
// description, newest listings first.
func (m *mongoBookRepository) Search(ctx context.Context, query string, limit int64) ([]domain.Book, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"title": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"author": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": query, "$options": "i"}},
		},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeBooks(ctx, cursor)
}

func (m *mongoBookRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrBookNotFound
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrBookNotFound
	}

	return nil
}

func (m *mongoBookRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrBookNotFound
	}

	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrBookNotFound
	}

	return nil
}

func decodeBooks(ctx context.Context, cursor *mongo.Cursor) ([]domain.Book, error) {
	books := []domain.Book{}
	for cursor.Next(ctx) {
		var book domain.Book
		if err := cursor.Decode(&book); err != nil {
			return nil, fmt.Errorf("failed to decode book: %w", err)
		}
		books = append(books, book)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return books, nil
}
