package stockorder

import (
	"context"
	"time"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderFilter narrows a list query
type OrderFilter struct {
	Type   OrderType
	Status Status
	Search string
	Page   shared.Page
}

// StatusCount is the number of orders in one status
type StatusCount struct {
	Status Status
	Count  int64
}

// PendingCount is the number of non-terminal orders for one (type, status)
type PendingCount struct {
	Type   OrderType
	Status Status
	Count  int64
}

// OrderRepository persists stock orders together with items and history
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StockOrder, error)
	// Save inserts a new order
	Save(ctx context.Context, order *StockOrder) error
	// SaveWithLock persists changes to an existing order if its stored
	// version still equals order.Version, then increments order.Version.
	// It returns shared.ErrConcurrencyConflict when another writer won.
	SaveWithLock(ctx context.Context, order *StockOrder) error
	List(ctx context.Context, filter OrderFilter) ([]StockOrder, error)
	Count(ctx context.Context, filter OrderFilter) (int64, error)
	// CountByStatus groups the filter's matches by status, ignoring filter.Status
	CountByStatus(ctx context.Context, filter OrderFilter) ([]StatusCount, error)
	PendingSummary(ctx context.Context) ([]PendingCount, error)
	GenerateOrderNumber(ctx context.Context, t OrderType) (string, error)
}

// ProductStock is the slice of a catalog product this engine reads
type ProductStock struct {
	ProductID uuid.UUID
	Name      string
	Quantity  decimal.Decimal
}

// QuantityChange is the result of applying a delta to a product
type QuantityChange struct {
	ProductID   uuid.UUID
	ProductName string
	OldQuantity decimal.Decimal
	NewQuantity decimal.Decimal
}

// InventoryStore reads and mutates on-hand quantity
type InventoryStore interface {
	FindProduct(ctx context.Context, productID uuid.UUID) (*ProductStock, error)
	// ApplyDelta atomically sets quantity = max(0, quantity + delta).
	// It returns shared.ErrNotFound when the product does not exist.
	ApplyDelta(ctx context.Context, productID uuid.UUID, delta decimal.Decimal) (*QuantityChange, error)
}

// MovementRepository is the append-only movement ledger
type MovementRepository interface {
	Create(ctx context.Context, movement *InventoryMovement) error
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]InventoryMovement, error)
}

// LinkedOrder is an existing customer order a return can reference
type LinkedOrder struct {
	ID           uuid.UUID
	OrderNumber  string
	CustomerName string
	Status       string
	CreatedAt    time.Time
}

// LinkedOrderSource looks up existing customer orders
type LinkedOrderSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LinkedOrder, error)
	Search(ctx context.Context, query string, limit int) ([]LinkedOrder, error)
}
