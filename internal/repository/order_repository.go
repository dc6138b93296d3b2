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

var ErrOrderNotFound = errors.New("order not found")

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

// SaveOrder persists the order keyed on the provider's payment id. The write
// is an upsert with $setOnInsert only, so retrying the save after a capture
// (the unrecorded-payment failure mode) cannot create a second order record.
func (m *mongoOrderRepository) SaveOrder(ctx context.Context, order *domain.Order) (string, error) {
	if order.PaymentID == "" {
		return "", errors.New("order must carry a payment id")
	}

	filter := bson.M{"payment_id": order.PaymentID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"user_id":      order.UserID,
			"items":        order.Items,
			"total_amount": order.TotalAmount,
			"status":       order.Status,
			"created_at":   order.CreatedAt,
		},
	}
	opts := options.Update().SetUpsert(true)

	result, err := m.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return "", fmt.Errorf("failed to save order: %w", err)
	}

	if result.UpsertedID != nil {
		if oid, ok := result.UpsertedID.(primitive.ObjectID); ok {
			return oid.Hex(), nil
		}
	}

	// The order was already recorded for this payment id; return the
	// existing record's id.
	var existing domain.Order
	if err := m.collection.FindOne(ctx, filter).Decode(&existing); err != nil {
		return "", fmt.Errorf("failed to load existing order: %w", err)
	}
	return existing.ID, nil
}

func (m *mongoOrderRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	var order domain.Order
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}
