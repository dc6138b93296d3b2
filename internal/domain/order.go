package domain

import "time"

// OrderStatusPaid is the only status the system models; an order record is
// written only after the payment provider confirms capture.
const OrderStatusPaid = "paid"

// Order is the permanent record of a completed checkout. Items and total are
// copied from the cart at capture time and never mutated afterwards.
// PaymentID is the provider's order id and doubles as the idempotency key for
// order persistence.
type Order struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	UserID      string     `bson:"user_id" json:"user_id"`
	Items       []CartItem `bson:"items" json:"items"`
	TotalAmount int64      `bson:"total_amount" json:"total_amount"`
	PaymentID   string     `bson:"payment_id" json:"payment_id"`
	Status      string     `bson:"status" json:"status"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
}
