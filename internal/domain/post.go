package domain

import "time"

// Post is a blog entry written by a marketplace user.
type Post struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	ImageURL  string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Author    Seller    `bson:"author" json:"author"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
