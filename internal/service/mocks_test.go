package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/saikrishna1605/foliofinds/internal/cache"
	"github.com/saikrishna1605/foliofinds/internal/domain"
	"github.com/saikrishna1605/foliofinds/internal/repository"
)

// mockCartRepository mirrors the real repository's semantics: lazy cart
// creation, one copy per book id, no-op removes.
type mockCartRepository struct {
	m     sync.RWMutex
	carts map[string]*domain.Cart
	err   error
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{carts: map[string]*domain.Cart{}}
}

func (m *mockCartRepository) GetCart(_ context.Context, userID string) (*domain.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	cart, ok := m.carts[userID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	copied := *cart
	copied.Items = append([]domain.CartItem{}, cart.Items...)
	return &copied, nil
}

func (m *mockCartRepository) AddItem(_ context.Context, userID string, item domain.CartItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if item.BookID == "" {
		return repository.ErrMissingItemID
	}
	cart, ok := m.carts[userID]
	if !ok {
		cart = &domain.Cart{UserID: userID}
		m.carts[userID] = cart
	}
	for _, existing := range cart.Items {
		if existing.BookID == item.BookID {
			return nil
		}
	}
	cart.Items = append(cart.Items, item)
	return nil
}

func (m *mockCartRepository) RemoveItem(_ context.Context, userID string, bookID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	cart, ok := m.carts[userID]
	if !ok {
		return nil
	}
	for i, item := range cart.Items {
		if item.BookID == bookID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockCartRepository) DeleteCart(_ context.Context, userID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.carts[userID]; !ok {
		return repository.ErrCartNotFound
	}
	delete(m.carts, userID)
	return nil
}

type mockCache struct {
	m    sync.RWMutex
	cart *domain.Cart
	err  error
}

func (m *mockCache) Get(context.Context, string) (*domain.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.cart == nil {
		return nil, cache.ErrCacheMiss
	}
	return m.cart, nil
}

func (m *mockCache) Set(_ context.Context, _ string, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cart = cart
	return m.err
}

func (m *mockCache) Delete(context.Context, string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cart = nil
	return nil
}

// noopCache never stores anything, keeping the repository authoritative in
// tests that interleave reads and mutations.
type noopCache struct{}

func (noopCache) Get(context.Context, string) (*domain.Cart, error) {
	return nil, cache.ErrCacheMiss
}

func (noopCache) Set(context.Context, string, *domain.Cart) error { return nil }

func (noopCache) Delete(context.Context, string) error { return nil }

// mockOrderRepository is idempotent on payment id like the real one.
type mockOrderRepository struct {
	m       sync.Mutex
	orders  map[string]*domain.Order // keyed by payment id
	nextID  int
	saveErr error
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: map[string]*domain.Order{}}
}

func (m *mockOrderRepository) SaveOrder(_ context.Context, order *domain.Order) (string, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.saveErr != nil {
		return "", m.saveErr
	}
	if existing, ok := m.orders[order.PaymentID]; ok {
		return existing.ID, nil
	}
	m.nextID++
	stored := *order
	stored.ID = string(rune('a' + m.nextID))
	m.orders[order.PaymentID] = &stored
	return stored.ID, nil
}

func (m *mockOrderRepository) GetOrder(_ context.Context, orderID string) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for _, order := range m.orders {
		if order.ID == orderID {
			return order, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

type mockGateway struct {
	m            sync.Mutex
	createdID    string
	createErr    error
	captureErr   error
	captureCalls []string
}

func (m *mockGateway) CreateOrder(_ context.Context, totalAmount int64) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	return m.createdID, nil
}

func (m *mockGateway) CaptureOrder(_ context.Context, orderID string) (json.RawMessage, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.captureCalls = append(m.captureCalls, orderID)
	if m.captureErr != nil {
		return nil, m.captureErr
	}
	return json.RawMessage(`{"status":"COMPLETED"}`), nil
}
