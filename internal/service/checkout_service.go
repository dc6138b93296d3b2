package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/saikrishna1605/foliofinds/internal/domain"
	"github.com/saikrishna1605/foliofinds/internal/repository"
)

// PaymentGateway is the slice of the provider client checkout needs.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, totalAmount int64) (string, error)
	CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error)
}

// CartAccess is the slice of the cart service checkout needs.
type CartAccess interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

// CheckoutService runs the capture -> persist -> clear-cart sequence. The
// provider's order id is the idempotency key for persistence, so a retried
// capture after a save failure cannot record the payment twice.
type CheckoutService struct {
	carts   CartAccess
	orders  repository.OrderRepository
	gateway PaymentGateway
}

func NewCheckoutService(carts CartAccess, orders repository.OrderRepository, gateway PaymentGateway) *CheckoutService {
	return &CheckoutService{
		carts:   carts,
		orders:  orders,
		gateway: gateway,
	}
}

// CreatePaymentOrder opens a capture-intent order at the provider for the
// given cart total and returns the provider's order id. The buyer approves
// the payment in the provider's own UI before capture.
func (s *CheckoutService) CreatePaymentOrder(ctx context.Context, totalAmount int64) (string, error) {
	return s.gateway.CreateOrder(ctx, totalAmount)
}

// CapturePaymentOrder captures an approved provider order and finalizes the
// checkout: the cart contents are frozen into an order record and the cart is
// deleted. On capture failure nothing is written and the cart is untouched.
func (s *CheckoutService) CapturePaymentOrder(ctx context.Context, userID, providerOrderID string) (string, error) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return "", ErrEmptyCart
	}

	if _, err := s.gateway.CaptureOrder(ctx, providerOrderID); err != nil {
		return "", err
	}

	order := &domain.Order{
		UserID:      userID,
		Items:       cart.Items,
		TotalAmount: cart.Total(),
		PaymentID:   providerOrderID,
		Status:      domain.OrderStatusPaid,
		CreatedAt:   time.Now(),
	}

	orderID, err := s.orders.SaveOrder(ctx, order)
	if err != nil {
		// The payment is captured but unrecorded. The save is an idempotent
		// upsert on the provider order id, so the client can retry capture;
		// log loudly for manual reconciliation in the meantime.
		log.Printf("ALERT: captured payment %s for user %s has no order record: %v",
			providerOrderID, userID, err)
		return "", fmt.Errorf("could not save your order: %w", err)
	}

	if err := s.carts.ClearCart(ctx, userID); err != nil {
		// The order is recorded; a stale cart is recoverable on its own.
		log.Printf("failed to clear cart for user %s after order %s: %v", userID, orderID, err)
	}

	return orderID, nil
}

// OrderDetails loads a finalized order, for the order-success page.
func (s *CheckoutService) OrderDetails(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orders.GetOrder(ctx, orderID)
}
