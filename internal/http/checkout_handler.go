package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/saikrishna1605/foliofinds/internal/domain"
)

// CheckoutService is the slice of the checkout orchestrator the handler needs.
type CheckoutService interface {
	CreatePaymentOrder(ctx context.Context, totalAmount int64) (string, error)
	CapturePaymentOrder(ctx context.Context, userID, providerOrderID string) (string, error)
	OrderDetails(ctx context.Context, orderID string) (*domain.Order, error)
}

type CheckoutHandler struct {
	checkout CheckoutService
	timeout  time.Duration
}

func NewCheckoutHandler(checkout CheckoutService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		timeout:  timeout,
	}
}

type createPaymentOrderDTO struct {
	TotalAmount int64 `json:"total_amount"`
}

// CreatePaymentOrder opens a provider order for the cart total. The buyer
// then approves the payment in the provider's UI before capture is requested.
func (h *CheckoutHandler) CreatePaymentOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if _, ok := requireUser(w, r); !ok {
		return
	}

	var req createPaymentOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.TotalAmount <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_amount", "total_amount must be positive")
		return
	}

	orderID, err := h.checkout.CreatePaymentOrder(ctx, req.TotalAmount)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"order_id": orderID})
}

// CapturePaymentOrder captures the approved provider order and persists the
// resulting order record.
func (h *CheckoutHandler) CapturePaymentOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	providerOrderID := chi.URLParam(r, "providerOrderID")
	if providerOrderID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "missing provider order id")
		return
	}

	orderID, err := h.checkout.CapturePaymentOrder(ctx, userID, providerOrderID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"order_id": orderID})
}

func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if _, ok := requireUser(w, r); !ok {
		return
	}

	order, err := h.checkout.OrderDetails(ctx, chi.URLParam(r, "orderID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}
