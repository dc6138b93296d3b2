package domain

import "time"

// CartItem is a snapshot of a Book frozen at the moment it was added.
// Later edits to the listing do not propagate into carts or past orders.
type CartItem struct {
	BookID      string    `bson:"book_id" json:"book_id"`
	Title       string    `bson:"title" json:"title"`
	Author      string    `bson:"author" json:"author"`
	Condition   Condition `bson:"condition" json:"condition"`
	Price       int64     `bson:"price" json:"price"`
	ImageURL    string    `bson:"image_url" json:"image_url"`
	Description string    `bson:"description" json:"description"`
	Seller      Seller    `bson:"seller" json:"seller"`
	AddedAt     time.Time `bson:"added_at" json:"added_at"`
}

// SnapshotOf freezes a listing into a cart item.
func SnapshotOf(b Book) CartItem {
	return CartItem{
		BookID:      b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Condition:   b.Condition,
		Price:       b.Price,
		ImageURL:    b.ImageURL,
		Description: b.Description,
		Seller:      b.Seller,
	}
}

// Cart holds at most one entry per book id. There is at most one cart per user.
type Cart struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Items     []CartItem `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// Total sums item prices in minor units.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}
