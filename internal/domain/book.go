package domain

import "time"

// Condition describes the physical state of a listed book.
type Condition string

const (
	ConditionNew     Condition = "New"
	ConditionLikeNew Condition = "Like New"
	ConditionGood    Condition = "Good"
	ConditionFair    Condition = "Fair"
)

func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair:
		return true
	}
	return false
}

// Seller is embedded by value in listings and posts. The ID matches the
// identity provider's user id, it is not a foreign key into a users collection.
type Seller struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	AvatarURL string `bson:"avatar_url" json:"avatar_url"`
}

// Book is a single used-book listing. Price is in display-currency minor units.
type Book struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Author      string    `bson:"author" json:"author"`
	Condition   Condition `bson:"condition" json:"condition"`
	Price       int64     `bson:"price" json:"price"`
	ImageURL    string    `bson:"image_url" json:"image_url"`
	Description string    `bson:"description" json:"description"`
	Seller      Seller    `bson:"seller" json:"seller"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
