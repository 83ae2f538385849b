package stockorder

import (
	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event type constants
const (
	EventTypeStockOrderCreated      = "stock_order.created"
	EventTypeStockOrderTransitioned = "stock_order.transitioned"
	EventTypeStockApplied           = "stock_order.stock_applied"
)

// StockOrderCreatedEvent is raised when a new order is registered
type StockOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string    `json:"order_number"`
	OrderType   OrderType `json:"order_type"`
	Status      Status    `json:"status"`
	ItemCount   int       `json:"item_count"`
	ActorID     string    `json:"actor_id"`
}

// NewStockOrderCreatedEvent creates the event for a freshly built order
func NewStockOrderCreatedEvent(o *StockOrder) *StockOrderCreatedEvent {
	return &StockOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockOrderCreated, AggregateTypeStockOrder, o.ID),
		OrderNumber:     o.OrderNumber,
		OrderType:       o.Type,
		Status:          o.Status,
		ItemCount:       len(o.Items),
		ActorID:         o.CreatedBy.ID,
	}
}

// StockOrderTransitionedEvent is raised on every successful status change
type StockOrderTransitionedEvent struct {
	shared.BaseDomainEvent
	OrderNumber   string    `json:"order_number"`
	OrderType     OrderType `json:"order_type"`
	FromStatus    Status    `json:"from_status"`
	ToStatus      Status    `json:"to_status"`
	StockApplying bool      `json:"stock_applying"`
	ActorID       string    `json:"actor_id"`
}

// NewStockOrderTransitionedEvent creates the event for a status change
func NewStockOrderTransitionedEvent(o *StockOrder, from Status, actor Actor, stockApplying bool) *StockOrderTransitionedEvent {
	return &StockOrderTransitionedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockOrderTransitioned, AggregateTypeStockOrder, o.ID),
		OrderNumber:     o.OrderNumber,
		OrderType:       o.Type,
		FromStatus:      from,
		ToStatus:        o.Status,
		StockApplying:   stockApplying,
		ActorID:         actor.ID,
	}
}

// AppliedMovement summarises one ledger entry for event consumers
type AppliedMovement struct {
	ProductID      uuid.UUID       `json:"product_id"`
	Direction      Direction       `json:"direction"`
	QuantityChange decimal.Decimal `json:"quantity_change"`
}

// StockAppliedEvent is raised after the stock-applying edge committed
type StockAppliedEvent struct {
	shared.BaseDomainEvent
	OrderNumber  string            `json:"order_number"`
	OrderType    OrderType         `json:"order_type"`
	Reason       MovementReason    `json:"reason"`
	Movements    []AppliedMovement `json:"movements"`
	WarningCount int               `json:"warning_count"`
}

// NewStockAppliedEvent creates the event from the movements written for o
func NewStockAppliedEvent(o *StockOrder, reason MovementReason, movements []*InventoryMovement, warnings int) *StockAppliedEvent {
	applied := make([]AppliedMovement, 0, len(movements))
	for _, m := range movements {
		applied = append(applied, AppliedMovement{
			ProductID:      m.ProductID,
			Direction:      m.Direction,
			QuantityChange: m.QuantityChange,
		})
	}
	return &StockAppliedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockApplied, AggregateTypeStockOrder, o.ID),
		OrderNumber:     o.OrderNumber,
		OrderType:       o.Type,
		Reason:          reason,
		Movements:       applied,
		WarningCount:    warnings,
	}
}
