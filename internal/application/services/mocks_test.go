package services_test

import (
	"context"
	"sync"

	"github.com/acquira/payment-gateway/internal/application"
	"github.com/acquira/payment-gateway/internal/domain"
)

// MockBankClient records authorization calls; AuthorizeFn overrides the
// default authorized response.
type MockBankClient struct {
	mu          sync.Mutex
	AuthorizeFn func(ctx context.Context, req application.AuthorizationRequest) (*application.AuthorizationResult, error)

	Calls   int
	LastReq application.AuthorizationRequest
}

func (m *MockBankClient) Authorize(ctx context.Context, req application.AuthorizationRequest) (*application.AuthorizationResult, error) {
	m.mu.Lock()
	m.Calls++
	m.LastReq = req
	m.mu.Unlock()

	if m.AuthorizeFn != nil {
		return m.AuthorizeFn(ctx, req)
	}
	return &application.AuthorizationResult{Authorized: true, AuthorizationCode: "auth-code"}, nil
}

// MockPaymentStore is a map-backed store with overridable operations and an
// insert counter.
type MockPaymentStore struct {
	mu       sync.RWMutex
	payments map[string]domain.Payment

	InsertFn func(ctx context.Context, payment *domain.Payment) error
	GetFn    func(ctx context.Context, id string) (*domain.Payment, error)

	Inserts int
}

func NewMockPaymentStore() *MockPaymentStore {
	return &MockPaymentStore{
		payments: make(map[string]domain.Payment),
	}
}

func (m *MockPaymentStore) Insert(ctx context.Context, payment *domain.Payment) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Inserts++
	m.payments[payment.ID] = *payment
	return nil
}

func (m *MockPaymentStore) Get(ctx context.Context, id string) (*domain.Payment, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.payments[id]; ok {
		return &p, nil
	}
	return nil, domain.NewPaymentNotFoundError(id)
}

func (m *MockPaymentStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.payments)
}
