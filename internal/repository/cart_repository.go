package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/saikrishna1605/foliofinds/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrCartNotFound  = errors.New("cart not found")
	ErrMissingItemID = errors.New("cart item must carry a book id")
)

type mongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) CartRepository {
	return &mongoCartRepository{
		collection: db.Collection("carts"),
	}
}

func (m *mongoCartRepository) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart domain.Cart

	filter := bson.M{"user_id": userID}
	err := m.collection.FindOne(ctx, filter).Decode(&cart)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &cart, nil
}

// AddItem inserts the snapshot into the user's cart unless an item with the
// same book id is already present. The existence check and the insert are a
// single atomic update: the filter only matches a cart that does not hold the
// book, so two concurrent adds of the same book cannot both push. When the
// filter misses because the cart already holds the book, the upsert collides
// with the unique user_id index instead of creating a second cart, and that
// duplicate-key error is the "already in cart" no-op.
func (m *mongoCartRepository) AddItem(ctx context.Context, userID string, item domain.CartItem) error {
	if item.BookID == "" {
		return ErrMissingItemID
	}

	now := time.Now()
	item.AddedAt = now

	filter := bson.M{
		"user_id":       userID,
		"items.book_id": bson.M{"$ne": item.BookID},
	}
	update := bson.M{
		"$push":        bson.M{"items": item},
		"$set":         bson.M{"updated_at": now},
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.Update().SetUpsert(true)

	_, err := m.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Cart exists and already holds this book.
			return nil
		}
		return fmt.Errorf("failed to add item to cart: %w", err)
	}

	return nil
}

// RemoveItem pulls the matching snapshot out of the cart. A missing cart or a
// missing item is a no-op, not an error.
func (m *mongoCartRepository) RemoveItem(ctx context.Context, userID string, bookID string) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$pull": bson.M{
			"items": bson.M{"book_id": bookID},
		},
		"$set": bson.M{"updated_at": time.Now()},
	}

	_, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}

	return nil
}

func (m *mongoCartRepository) DeleteCart(ctx context.Context, userID string) error {
	filter := bson.M{"user_id": userID}

	result, err := m.collection.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrCartNotFound
	}

	return nil
}
