package stockorder

import (
	"context"
	"sync"
	"time"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/erp/stockflow/internal/domain/stockorder"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockEventPublisher records published events
type MockEventPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{events: make([]shared.DomainEvent, 0)}
}

func (m *MockEventPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	return nil
}

func (m *MockEventPublisher) GetEventsByType(eventType string) []shared.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []shared.DomainEvent
	for _, e := range m.events {
		if e.EventType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

// MockOrderRepository is a mock implementation of stockorder.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*stockorder.StockOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stockorder.StockOrder), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *stockorder.StockOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveWithLock(ctx context.Context, order *stockorder.StockOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, filter stockorder.OrderFilter) ([]stockorder.StockOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stockorder.StockOrder), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter stockorder.OrderFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, filter stockorder.OrderFilter) ([]stockorder.StatusCount, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stockorder.StatusCount), args.Error(1)
}

func (m *MockOrderRepository) PendingSummary(ctx context.Context) ([]stockorder.PendingCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stockorder.PendingCount), args.Error(1)
}

func (m *MockOrderRepository) GenerateOrderNumber(ctx context.Context, t stockorder.OrderType) (string, error) {
	args := m.Called(ctx, t)
	return args.String(0), args.Error(1)
}

// MockInventoryStore is a mock implementation of stockorder.InventoryStore
type MockInventoryStore struct {
	mock.Mock
}

func (m *MockInventoryStore) FindProduct(ctx context.Context, productID uuid.UUID) (*stockorder.ProductStock, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stockorder.ProductStock), args.Error(1)
}

func (m *MockInventoryStore) ApplyDelta(ctx context.Context, productID uuid.UUID, delta decimal.Decimal) (*stockorder.QuantityChange, error) {
	args := m.Called(ctx, productID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stockorder.QuantityChange), args.Error(1)
}

// MockMovementRepository is a mock implementation of stockorder.MovementRepository
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Create(ctx context.Context, movement *stockorder.InventoryMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]stockorder.InventoryMovement, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stockorder.InventoryMovement), args.Error(1)
}

// MockLinkedOrderSource is a mock implementation of stockorder.LinkedOrderSource
type MockLinkedOrderSource struct {
	mock.Mock
}

func (m *MockLinkedOrderSource) FindByID(ctx context.Context, id uuid.UUID) (*stockorder.LinkedOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stockorder.LinkedOrder), args.Error(1)
}

func (m *MockLinkedOrderSource) Search(ctx context.Context, query string, limit int) ([]stockorder.LinkedOrder, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stockorder.LinkedOrder), args.Error(1)
}

// MockIdempotencyStore is a mock implementation of shared.IdempotencyStore
type MockIdempotencyStore struct {
	mock.Mock
}

func (m *MockIdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (*shared.IdempotencyRecord, error) {
	args := m.Called(ctx, key, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.IdempotencyRecord), args.Error(1)
}

func (m *MockIdempotencyStore) Complete(ctx context.Context, key, resourceID string, ttl time.Duration) error {
	args := m.Called(ctx, key, resourceID, ttl)
	return args.Error(0)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockIdempotencyStore) Close() error {
	return nil
}
