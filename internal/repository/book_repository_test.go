package repository

import (
	"context"
	"testing"
	"time"

	"github.com/saikrishna1605/foliofinds/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBook(title, sellerID string) *domain.Book {
	return &domain.Book{
		Title:       title,
		Author:      "Ursula K. Le Guin",
		Condition:   domain.ConditionLikeNew,
		Price:       450,
		Description: "A well-kept paperback",
		Seller:      domain.Seller{ID: sellerID, Name: "Ravi"},
		CreatedAt:   time.Now(),
	}
}

func TestBookCreateAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoBookRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, testBook("A Wizard of Earthsea", "seller-1"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	book, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "A Wizard of Earthsea", book.Title)
	assert.Equal(t, "seller-1", book.Seller.ID)
	assert.Equal(t, id, book.ID)
}

func TestBookGet_MalformedID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoBookRepository(db)

	_, err := repo.GetByID(context.Background(), "not-an-object-id")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookSearch(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoBookRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testBook("The Dispossessed", "seller-1"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBook("Go in Action", "seller-2"))
	require.NoError(t, err)

	// Case-insensitive match on the title.
	books, err := repo.Search(ctx, "dispossessed", 20)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "The Dispossessed", books[0].Title)

	// Author matches too.
	books, err = repo.Search(ctx, "le guin", 20)
	require.NoError(t, err)
	assert.Len(t, books, 2)

	books, err = repo.Search(ctx, "no such book", 20)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestBookListBySeller(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoBookRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testBook("Book A", "seller-1"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBook("Book B", "seller-1"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBook("Book C", "seller-2"))
	require.NoError(t, err)

	books, err := repo.ListBySeller(ctx, "seller-1")
	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestBookUpdateAndDelete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewMongoBookRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, testBook("Old Title", "seller-1"))
	require.NoError(t, err)

	err = repo.Update(ctx, id, map[string]interface{}{"title": "New Title", "price": int64(999)})
	require.NoError(t, err)

	book, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New Title", book.Title)
	assert.Equal(t, int64(999), book.Price)

	err = repo.Delete(ctx, id)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, ErrBookNotFound)

	err = repo.Delete(ctx, id)
	assert.ErrorIs(t, err, ErrBookNotFound)
}
