package repository

import (
	"context"
	"testing"
	"time"

	"github.com/saikrishna1605/foliofinds/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func testOrder(paymentID string) *domain.Order {
	return &domain.Order{
		UserID: "user123",
		Items: []domain.CartItem{
			testItem("book-2", 300),
		},
		TotalAmount: 300,
		PaymentID:   paymentID,
		Status:      domain.OrderStatusPaid,
		CreatedAt:   time.Now(),
	}
}

func TestSaveOrder_AndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoOrderRepository(db)
	ctx := context.Background()

	id, err := repo.SaveOrder(ctx, testOrder("PAY-1"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	order, err := repo.GetOrder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "user123", order.UserID)
	assert.Equal(t, int64(300), order.TotalAmount)
	assert.Equal(t, "PAY-1", order.PaymentID)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "book-2", order.Items[0].BookID)
}

func TestSaveOrder_SamePaymentID_Idempotent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoOrderRepository(db)
	ctx := context.Background()

	first, err := repo.SaveOrder(ctx, testOrder("PAY-1"))
	require.NoError(t, err)

	// A retried save for the same provider order must not create a second
	// record and must return the original id.
	second, err := repo.SaveOrder(ctx, testOrder("PAY-1"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	count, err := db.Collection("orders").CountDocuments(ctx, bson.M{"payment_id": "PAY-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSaveOrder_MissingPaymentID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoOrderRepository(db)

	order := testOrder("")
	_, err := repo.SaveOrder(context.Background(), order)
	assert.Error(t, err)
}

func TestGetOrder_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoOrderRepository(db)
	ctx := context.Background()

	_, err := repo.GetOrder(ctx, "65f000000000000000000000")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// Malformed ids read as not-found, never as a server error.
	_, err = repo.GetOrder(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
