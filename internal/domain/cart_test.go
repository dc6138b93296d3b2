package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotOf_FreezesListing(t *testing.T) {
	book := Book{
		ID:        "book-1",
		Title:     "The Go Programming Language",
		Author:    "Donovan & Kernighan",
		Condition: ConditionGood,
		Price:     500,
		ImageURL:  "https://img.example/book-1.jpg",
		Seller:    Seller{ID: "seller-1", Name: "Asha"},
	}

	item := SnapshotOf(book)

	assert.Equal(t, "book-1", item.BookID)
	assert.Equal(t, int64(500), item.Price)
	assert.Equal(t, "seller-1", item.Seller.ID)

	// The snapshot does not follow later listing edits.
	book.Price = 900
	assert.Equal(t, int64(500), item.Price)
}

func TestCartTotal(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{BookID: "b1", Price: 500},
			{BookID: "b2", Price: 300},
		},
	}
	assert.Equal(t, int64(800), cart.Total())

	empty := Cart{}
	assert.Zero(t, empty.Total())
}

func TestConditionIsValid(t *testing.T) {
	assert.True(t, ConditionLikeNew.IsValid())
	assert.False(t, Condition("Mint").IsValid())
}
