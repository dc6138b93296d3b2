package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/saikrishna1605/foliofinds/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

func setupTestDB(t *testing.T) (*mongo.Database, func()) {
	ctx := context.Background()

	// Start MongoDB container
	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := ConnectMongoDB(ctx, uri, "testdb")
	require.NoError(t, err)

	err = EnsureIndexes(ctx, db)
	require.NoError(t, err)

	cleanup := func() {
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return db, cleanup
}

func testItem(bookID string, price int64) domain.CartItem {
	return domain.CartItem{
		BookID:    bookID,
		Title:     "The Go Programming Language",
		Author:    "Donovan & Kernighan",
		Condition: domain.ConditionGood,
		Price:     price,
		Seller:    domain.Seller{ID: "seller-1", Name: "Asha"},
	}
}

func TestGetCart_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()

	cart, err := repo.GetCart(ctx, "nonexistent")

	assert.ErrorIs(t, err, ErrCartNotFound)
	assert.Nil(t, cart)
}

func TestAddItem_CreatesCartLazily(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	userID := "user123"

	err := repo.AddItem(ctx, userID, testItem("book-1", 500))
	require.NoError(t, err)

	cart, err := repo.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, cart.UserID)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "book-1", cart.Items[0].BookID)
	assert.False(t, cart.CreatedAt.IsZero())
	assert.False(t, cart.Items[0].AddedAt.IsZero())
}

func TestAddItem_SameBookTwice_SingleCopy(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	userID := "user123"

	err := repo.AddItem(ctx, userID, testItem("book-1", 500))
	require.NoError(t, err)

	// Second add of the same book is a silent no-op.
	err = repo.AddItem(ctx, userID, testItem("book-1", 500))
	require.NoError(t, err)

	cart, err := repo.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestAddItem_ConcurrentSameBook_SingleCopy(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	userID := "user123"

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.AddItem(ctx, userID, testItem("book-1", 500))
		}()
	}
	wg.Wait()

	cart, err := repo.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestAddItem_MissingBookID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()

	err := repo.AddItem(ctx, "user123", domain.CartItem{Title: "no id"})
	assert.ErrorIs(t, err, ErrMissingItemID)

	_, err = repo.GetCart(ctx, "user123")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestRemoveItem(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	userID := "user123"

	require.NoError(t, repo.AddItem(ctx, userID, testItem("book-1", 500)))
	require.NoError(t, repo.AddItem(ctx, userID, testItem("book-2", 300)))

	err := repo.RemoveItem(ctx, userID, "book-1")
	require.NoError(t, err)

	cart, err := repo.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "book-2", cart.Items[0].BookID)
}

func TestRemoveItem_AbsentItem_NoOp(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	userID := "user123"

	require.NoError(t, repo.AddItem(ctx, userID, testItem("book-1", 500)))

	err := repo.RemoveItem(ctx, userID, "never-added")
	require.NoError(t, err)

	cart, err := repo.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestRemoveItem_NoCart_NoOp(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)

	err := repo.RemoveItem(context.Background(), "nobody", "book-1")
	assert.NoError(t, err)
}

func TestDeleteCart(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoCartRepository(db)
	ctx := context.Background()
	userID := "user123"

	require.NoError(t, repo.AddItem(ctx, userID, testItem("book-1", 500)))

	err := repo.DeleteCart(ctx, userID)
	require.NoError(t, err)

	_, err = repo.GetCart(ctx, userID)
	assert.ErrorIs(t, err, ErrCartNotFound)

	err = repo.DeleteCart(ctx, userID)
	assert.ErrorIs(t, err, ErrCartNotFound)
}
