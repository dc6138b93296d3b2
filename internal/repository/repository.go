package repository

import (
	"context"

	"github.com/saikrishna1605/foliofinds/internal/domain"
)

// Consumers define these interfaces, not the MongoDB implementations.

type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, item domain.CartItem) error
	RemoveItem(ctx context.Context, userID string, bookID string) error
	DeleteCart(ctx context.Context, userID string) error
}

type OrderRepository interface {
	SaveOrder(ctx context.Context, order *domain.Order) (string, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	ListRecent(ctx context.Context, limit int64) ([]domain.Book, error)
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Book, error)
	Search(ctx context.Context, query string, limit int64) ([]domain.Book, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	ListRecent(ctx context.Context, limit int64) ([]domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
